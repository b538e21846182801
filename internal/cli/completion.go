package cli

import (
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"
)

// shellCompletion writes the completion script of one shell and says where
// to install it.
type shellCompletion struct {
	generate func(root *cobra.Command, w io.Writer) error
	install  string
}

var completions = map[string]shellCompletion{
	"bash": {
		generate: func(root *cobra.Command, w io.Writer) error { return root.GenBashCompletionV2(w, true) },
		install:  "source <(" + appName + " completion bash)",
	},
	"zsh": {
		generate: func(root *cobra.Command, w io.Writer) error { return root.GenZshCompletion(w) },
		install:  appName + ` completion zsh > "${fpath[1]}/_` + appName + `"`,
	},
	"fish": {
		generate: func(root *cobra.Command, w io.Writer) error { return root.GenFishCompletion(w, true) },
		install:  appName + " completion fish > ~/.config/fish/completions/" + appName + ".fish",
	},
	"powershell": {
		generate: func(root *cobra.Command, w io.Writer) error { return root.GenPowerShellCompletionWithDesc(w) },
		install:  appName + " completion powershell | Out-String | Invoke-Expression",
	},
}

func completionShells() []string {
	shells := make([]string, 0, len(completions))
	for name := range completions {
		shells = append(shells, name)
	}
	slices.Sort(shells)
	return shells
}

func completionHelp() string {
	var b strings.Builder
	b.WriteString("Print a completion script for " + appName + ". Scenario file arguments\ncomplete to .toml files.\n\nInstall with:\n")
	for _, name := range completionShells() {
		b.WriteString("\n  " + name + ":\n    $ " + completions[name].install + "\n")
	}
	return b.String()
}

// completionCommand creates the completion command.
func (c *CLI) completionCommand() *cobra.Command {
	shells := completionShells()
	return &cobra.Command{
		Use:                   "completion [" + strings.Join(shells, "|") + "]",
		Short:                 "Generate shell completion scripts",
		Long:                  completionHelp(),
		DisableFlagsInUseLine: true,
		ValidArgs:             shells,
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return completions[args[0]].generate(cmd.Root(), cmd.OutOrStdout())
		},
	}
}

// completeScenarioFiles restricts argument completion to scenario files.
func completeScenarioFiles(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return []string{"toml"}, cobra.ShellCompDirectiveFilterFileExt
}
