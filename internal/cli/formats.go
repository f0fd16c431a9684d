package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tikznet/pkg/render"
)

// formatsCommand lists the output formats.
func (c *CLI) formatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List output formats",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(formatsTable(render.Formats()))
		},
	}
}

func formatsTable(formats []render.Info) string {
	rows := make([][]string, len(formats))
	for i, info := range formats {
		output := "<name>." + string(info.Format)
		if info.Split {
			output = fmt.Sprintf("<name>_nodes.%[1]s, <name>_edges.%[1]s", info.Format)
		}
		rows[i] = []string{string(info.Format), info.Description, output}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Format", "Description", "Files").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 0:
				return StyleHighlight
			}
			return StyleValue
		}).
		Render()
}
