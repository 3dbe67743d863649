package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// helpSection represents a group of keybindings for display.
type helpSection struct {
	title string
	rows  [][]string // each row: [keys, description]
}

// getHelpSections returns the help content organized into sections. Text is
// derived from binding.Help() so the overlay and the bindings cannot drift.
func getHelpSections(keys KeyMap) []helpSection {
	return []helpSection{
		{
			title: "NAVIGATION",
			rows: [][]string{
				{keys.Up.Help().Key, keys.Up.Help().Desc},
				{keys.Home.Help().Key, keys.Home.Help().Desc},
				{keys.End.Help().Key, keys.End.Help().Desc},
			},
		},
		{
			title: "ITEMS",
			rows: [][]string{
				{keys.Add.Help().Key, keys.Add.Help().Desc},
				{keys.Toggle.Help().Key, keys.Toggle.Help().Desc},
				{keys.EditItem.Help().Key, keys.EditItem.Help().Desc},
				{keys.Delete.Help().Key, keys.Delete.Help().Desc},
				{keys.Grab.Help().Key, keys.Grab.Help().Desc},
			},
		},
		{
			title: "LIST",
			rows: [][]string{
				{keys.EditTitle.Help().Key, keys.EditTitle.Help().Desc},
				{keys.Color.Help().Key, keys.Color.Help().Desc},
				{keys.Category.Help().Key, keys.Category.Help().Desc},
				{keys.Yank.Help().Key, keys.Yank.Help().Desc},
				{keys.Preview.Help().Key, keys.Preview.Help().Desc},
				{keys.CycleTheme.Help().Key, keys.CycleTheme.Help().Desc},
			},
		},
		{
			title: "SUGGESTIONS",
			rows: [][]string{
				{keys.Tab.Help().Key, keys.Tab.Help().Desc},
				{keys.AcceptRight.Help().Key, keys.AcceptRight.Help().Desc},
				{keys.Escape.Help().Key, "Clear draft"},
			},
		},
	}
}

// renderHelpOverlay creates the centered help modal.
func renderHelpOverlay(keys KeyMap) string {
	sections := getHelpSections(keys)

	leftCol := lipgloss.JoinVertical(lipgloss.Left,
		renderHelpSectionTable(sections[0]),
		"",
		renderHelpSectionTable(sections[3]),
	)
	rightCol := lipgloss.JoinVertical(lipgloss.Left,
		renderHelpSectionTable(sections[1]),
		"",
		renderHelpSectionTable(sections[2]),
	)
	columns := lipgloss.JoinHorizontal(lipgloss.Top, leftCol, "    ", rightCol)

	title := styleHelpTitle().Render("✦ TICKLIST HELP ✦")
	dividerWidth := lipgloss.Width(columns)
	if dividerWidth < 40 {
		dividerWidth = 40
	}
	divider := styleHelpDivider().Render(strings.Repeat("─", dividerWidth))
	footer := styleHelpFooter().Render("Press any key to close")

	content := lipgloss.JoinVertical(lipgloss.Center,
		title,
		divider,
		"",
		columns,
		"",
		footer,
	)
	return styleOverlayBox().Render(content)
}

// renderHelpSectionTable renders a single help section using lipgloss/table.
func renderHelpSectionTable(section helpSection) string {
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return styleHelpKey().Width(14)
			}
			return styleHelpDesc()
		}).
		Rows(section.rows...)

	header := styleHelpSectionHeader().Render(section.title)
	underline := styleHelpDivider().Render(strings.Repeat("─", len(section.title)))

	// Hidden border adds an empty top row.
	tableStr := strings.TrimPrefix(t.String(), "\n")

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		underline,
		tableStr,
	)
}
