package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/tikznet/pkg/render"
)

var listDimStyle = lipgloss.NewStyle().Foreground(colorDim)

// =============================================================================
// FormatListModel - Interactive output format selection
// =============================================================================

// FormatListModel is the bubbletea model for picking an output format.
type FormatListModel struct {
	Formats  []render.Info
	Cursor   int
	Selected *render.Info
}

// NewFormatListModel creates a format picker over formats.
func NewFormatListModel(formats []render.Info) FormatListModel {
	return FormatListModel{Formats: formats}
}

func (m FormatListModel) Init() tea.Cmd {
	return nil
}

func (m FormatListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Formats)-1 {
			m.Cursor++
		}
	case "enter":
		if len(m.Formats) == 0 {
			return m, tea.Quit
		}
		selected := m.Formats[m.Cursor]
		m.Selected = &selected
		return m, tea.Quit
	}
	return m, nil
}

func (m FormatListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Output Format"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	rows := make([][]string, len(m.Formats))
	for i, info := range m.Formats {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		files := "1"
		if info.Split {
			files = "2"
		}
		rows[i] = []string{cursor, "." + string(info.Format), info.Description, files}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Format", "Description", "Files").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case row == m.Cursor:
				return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
			case col == 2:
				return lipgloss.NewStyle().Foreground(colorGray)
			}
			return lipgloss.NewStyle()
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Formats))))
	return b.String()
}
