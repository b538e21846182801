package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/anchorage/pkg/scenario"
)

// stepCommand creates the interactive stepper command.
func (c *CLI) stepCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "step <scenario.toml>",
		Short: "Step through a scenario interactively",
		Long: `Open an interactive view that plays a scenario one step at a time and
shows the node map of each element as declarations are installed, evicted
and re-evaluated.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeScenarioFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scenario.Load(args[0])
			if err != nil {
				return fmt.Errorf("load scenario %s: %w", args[0], err)
			}

			// Engine logging would corrupt the alternate screen.
			quiet := c.Logger.With()
			quiet.SetLevel(log.FatalLevel)

			pb, err := scenario.NewPlayback(s, quiet)
			if err != nil {
				return err
			}

			final, err := tea.NewProgram(NewStepModel(cmd.Context(), pb), tea.WithAltScreen()).Run()
			if err != nil {
				return err
			}
			if fm, ok := final.(StepModel); ok {
				failed := 0
				for _, r := range fm.Results {
					if r.Failed() {
						failed++
					}
				}
				printInfo("%s: played %d of %d steps, %d failed", s.Name, len(fm.Results), len(s.Steps), failed)
			}
			return nil
		},
	}
}
