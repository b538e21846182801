package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/anchorage/pkg/anchor"
	"github.com/matzehuels/anchorage/pkg/scenario"
)

// attributesCommand creates the attributes command that prints the anchor
// taxonomy.
func (c *CLI) attributesCommand() *cobra.Command {
	var conflicts bool

	cmd := &cobra.Command{
		Use:     "attributes",
		Aliases: []string{"attrs"},
		Short:   "Print the anchor attribute taxonomy",
		Long: `Print every anchor attribute with its axis, node slot, opposite anchor
and signature axis key. With --conflicts, list the anchors each attribute
competes with for the same position.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(renderAttributeTable(conflicts))
			return nil
		},
	}

	cmd.Flags().BoolVar(&conflicts, "conflicts", false, "include the conflict set of each attribute")

	return cmd
}

// renderAttributeTable renders the taxonomy as a lipgloss table.
func renderAttributeTable(withConflicts bool) string {
	headers := []string{"Attribute", "Axis", "Slot", "Opposite", "Key", "Inverts"}
	if withConflicts {
		headers = append(headers, "Competes with")
	}

	var rows [][]string
	for _, a := range anchor.All() {
		inverts := ""
		if anchor.InvertsConstant(a) {
			inverts = "yes"
		}
		row := []string{
			a.String(),
			anchor.OrientationOf(a).String(),
			anchor.SlotOf(a).String(),
			anchor.Opposite(a).String(),
			anchor.AxisKey(a),
			inverts,
		}
		if withConflicts {
			var names []string
			for _, b := range anchor.ConflictSet(a) {
				if b != a {
					names = append(names, b.String())
				}
			}
			row = append(row, strings.Join(names, ", "))
		}
		rows = append(rows, row)
	}

	return newTable(headers, rows, func(row, col int) lipgloss.Style {
		if col == 0 {
			return lipgloss.NewStyle().Foreground(colorCyan)
		}
		return lipgloss.NewStyle().Foreground(colorWhite)
	})
}

// renderNodeTable renders the node map of one element. Inactive declarations
// are dimmed.
func renderNodeTable(rows []scenario.NodeRow) string {
	data := make([][]string, len(rows))
	for i, r := range rows {
		data[i] = []string{r.Signature, r.Slot, r.Declaration, r.Constraint}
	}
	return newTable([]string{"Signature", "Slot", "Declaration", "Constraint"}, data, func(row, col int) lipgloss.Style {
		if row < 0 || row >= len(rows) {
			return lipgloss.NewStyle()
		}
		if !rows[row].Active {
			return lipgloss.NewStyle().Foreground(colorDim)
		}
		if col == 1 {
			return lipgloss.NewStyle().Foreground(colorGreen)
		}
		return lipgloss.NewStyle().Foreground(colorWhite)
	})
}

func newTable(headers []string, rows [][]string, style func(row, col int) lipgloss.Style) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			return style(row, col).Padding(0, 1)
		})
	return t.Render()
}
