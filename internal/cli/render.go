package cli

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/GregMSThompson/dashboard-layout/internal/models"
)

var (
	colorGray  = lipgloss.Color("245")
	colorDim   = lipgloss.Color("240")
	colorGreen = lipgloss.Color("42")

	headerStyle   = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	enabledStyle  = lipgloss.NewStyle().Foreground(colorGreen)
	disabledStyle = lipgloss.NewStyle().Foreground(colorDim)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func renderLayouts(st models.LayoutState) string {
	rows := make([][]string, 0, len(st.Layouts))
	for _, l := range st.Layouts {
		enabled := 0
		for _, w := range l.Widgets {
			if w.Enabled {
				enabled++
			}
		}
		active := ""
		if l.ID == st.CurrentLayoutID {
			active = "*"
		}
		rows = append(rows, []string{
			active, l.ID, l.Name, strconv.Itoa(enabled) + "/" + strconv.Itoa(len(l.Widgets)),
			yesNo(l.IsDefault), l.LastModified.Format("2006-01-02 15:04"),
		})
	}
	return newTable("", "ID", "Name", "Widgets", "Default", "Modified").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return lipgloss.NewStyle()
		}).
		Render()
}

func renderWidgets(l models.DashboardLayout) string {
	rows := make([][]string, 0, len(l.Widgets))
	for _, w := range l.Widgets {
		rows = append(rows, []string{
			string(w.Type), yesNo(w.Enabled),
			strconv.Itoa(w.Position.X), strconv.Itoa(w.Position.Y),
			strconv.Itoa(w.Size.Width), strconv.Itoa(w.Size.Height),
		})
	}
	return newTable("Type", "Enabled", "X", "Y", "W", "H").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if row < len(l.Widgets) && l.Widgets[row].Enabled {
				return enabledStyle
			}
			return disabledStyle
		}).
		Render()
}

func renderPresets(presets []models.Preset) string {
	rows := make([][]string, 0, len(presets))
	for _, p := range presets {
		types := make([]string, len(p.Widgets))
		for i, t := range p.Widgets {
			types[i] = string(t)
		}
		rows = append(rows, []string{p.Name, p.Description, strings.Join(types, ", ")})
	}
	return newTable("Name", "Description", "Widgets").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return lipgloss.NewStyle()
		}).
		Render()
}
