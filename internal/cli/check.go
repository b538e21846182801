package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/anchorage/pkg/errors"
	"github.com/matzehuels/anchorage/pkg/scenario"
)

// checkCommand creates the check command for validating scenarios.
func (c *CLI) checkCommand() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check [scenario.toml...]",
		Short: "Validate and lint scenarios without playing them",
		Long: `Decode and validate scenario files, then report declarations that
silently evict each other within a single layout step.

With --strict, lint findings make the command fail.`,
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: completeScenarioFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			paths, err := expandScenarioPaths(args)
			if err != nil {
				return err
			}
			findings := 0
			for _, path := range paths {
				s, err := scenario.Load(path)
				if err != nil {
					printError("%s: %s", path, errors.UserMessage(err))
					return fmt.Errorf("check %s: %w", path, err)
				}
				lint := scenario.Lint(s)
				findings += len(lint)
				if len(lint) == 0 {
					printSuccess("%s %s", path, StyleDim.Render(fmt.Sprintf("(%d views, %d steps)", len(s.Views), len(s.Steps))))
					continue
				}
				printWarning("%s: %d findings", path, len(lint))
				for _, f := range lint {
					printDetail("step %d (%s): %s", f.Step+1, f.View, f.Message)
				}
				logger.Debug("lint findings", "path", path, "count", len(lint))
			}
			if strict && findings > 0 {
				return errors.New(errors.ErrCodeInvalidScenario, "%d lint findings", findings)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "treat lint findings as errors")

	return cmd
}
