package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/anchorage/pkg/errors"
	"github.com/matzehuels/anchorage/pkg/scenario"
)

// runOptions holds flags for the run command.
type runOptions struct {
	failFast bool
	show     bool
	watch    bool
	debounce time.Duration
}

// runCommand creates the run command for playing scenarios.
func (c *CLI) runCommand() *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run [scenario.toml...]",
		Short: "Play scenarios and check their expectations",
		Long: `Play one or more scenario files against the engine and a simulated host.

Every step is played in order. Failed expectations are reported and the
command exits non-zero if any scenario has a failing step.

Directories expand to every .toml file below them and quoted patterns may use
** to match across directories. With --watch the scenarios are played again
each time one of them is saved, until interrupted.`,
		Example: `  anchorage run examples/card.toml
  anchorage run --fail-fast --show "scenarios/**/*.toml"
  anchorage run --watch examples`,
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: completeScenarioFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := expandScenarioPaths(args)
			if err != nil {
				return err
			}
			if opts.watch {
				return c.watchScenarios(cmd.Context(), paths, opts)
			}
			return c.runScenarios(cmd.Context(), paths, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.failFast, "fail-fast", false, "stop a scenario at its first failing step")
	cmd.Flags().BoolVar(&opts.show, "show", false, "print the active constraints after each scenario")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "play again when a scenario file changes")
	cmd.Flags().DurationVar(&opts.debounce, "debounce", defaultDebounce, "quiet period before replaying in watch mode")

	return cmd
}

// runScenarios plays every path and fails if any scenario failed. A file
// that cannot be loaded is reported and skipped; the first such error is
// returned once the remaining files have been played.
func (c *CLI) runScenarios(ctx context.Context, paths []string, opts runOptions) error {
	var loadErr error
	failed := 0
	for _, path := range paths {
		ok, err := c.runScenario(ctx, path, opts)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, errors.ErrCodeCanceled) {
				return err
			}
			printError("%s: %s", path, errors.UserMessage(err))
			if loadErr == nil {
				loadErr = err
			}
			continue
		}
		if !ok {
			failed++
		}
	}
	if loadErr != nil {
		return loadErr
	}
	if failed > 0 {
		return errors.New(errors.ErrCodeExpectationFailed, "%d of %d scenarios failed", failed, len(paths))
	}
	return nil
}

// watchScenarios plays paths once, then replays the files that change.
// Scenario failures are printed and never end the loop.
func (c *CLI) watchScenarios(ctx context.Context, paths []string, opts runOptions) error {
	logger := loggerFromContext(ctx)

	w, err := newScenarioWatcher(paths, opts.debounce, logger)
	if err != nil {
		return err
	}
	defer w.Close()

	replay := func(ctx context.Context, changed []string) {
		if err := c.runScenarios(ctx, changed, opts); err != nil {
			printError("%s", errors.UserMessage(err))
		}
		printInfo("%s", StyleDim.Render(fmt.Sprintf("watching %d scenarios, ctrl+c to stop", len(paths))))
	}

	replay(ctx, paths)
	return w.Run(ctx, replay)
}

// runScenario plays one file and prints its report.
func (c *CLI) runScenario(ctx context.Context, path string, opts runOptions) (bool, error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	s, err := scenario.Load(path)
	if err != nil {
		return false, fmt.Errorf("load scenario %s: %w", path, err)
	}

	spinner := newSpinner(ctx, fmt.Sprintf("Playing %s...", s.Name))
	spinner.Start()
	report, err := c.newRunner(opts.failFast).Run(ctx, s)
	if err != nil {
		spinner.StopWithError("Playback failed")
		return false, fmt.Errorf("play %s: %w", path, err)
	}
	spinner.Stop()

	printReport(report)
	if opts.show {
		for _, desc := range report.Active {
			printConstraint(desc)
		}
	}
	printNewline()
	prog.done(fmt.Sprintf("Played %d steps of %s", len(report.Steps), path))
	return report.Passed(), nil
}

// printReport prints one line per step and a summary.
func printReport(r *scenario.Report) {
	printInfo("%s", StyleTitle.Render(r.Name))
	for _, f := range r.Findings {
		printWarning("step %d (%s): %s", f.Step+1, f.View, f.Message)
	}
	for _, st := range r.Steps {
		label := fmt.Sprintf("%2d %-10s %-12s", st.Index+1, st.Action, st.View)
		if st.Failed() {
			printError("%s %s", label, StyleError.Render(errors.UserMessage(st.Err)))
			continue
		}
		printSuccess("%s %s", label, formatChanges(st.Activated, st.Deactivated))
	}
	printStats(len(r.Steps), len(r.Failures()), r.Solves, len(r.Active))
}
