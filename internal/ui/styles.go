package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"ticklist/internal/ui/theme"
)

// Styles are functions rather than package vars so theme cycling takes
// effect on the next render.

func styleAppHeader() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Background).
		Background(theme.Current().Primary).
		Bold(true).
		Padding(0, 1)
}

func styleHeaderInfo() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().TextMuted)
}

func styleCategoryBadge() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Text).
		Background(theme.Current().BackgroundDarker).
		Padding(0, 1)
}

func styleItemText() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Text)
}

func styleItemDone() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().TextMuted).Strikethrough(true)
}

func styleItemSelected() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(theme.Current().BackgroundSecondary).
		Foreground(theme.Current().Text).
		Bold(true)
}

func styleItemGrabbed() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(theme.Current().Accent).
		Foreground(theme.Current().Background).
		Bold(true)
}

func styleCheckDone() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Success)
}

func styleCheckOpen() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().TextMuted)
}

func styleDraftInput() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Current().BorderDim).
		Padding(0, 1)
}

func styleDraftInputFocused() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Current().BorderFocused).
		Padding(0, 1)
}

func styleGhostText() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().TextMuted)
}

// styleGhostCursor: muted text on muted background (inverted block cursor).
func styleGhostCursor() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Background).
		Background(theme.Current().TextMuted)
}

func styleErrorToast() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Current().Error).
		Foreground(theme.Current().Text).
		Padding(0, 1)
}

func styleInfoToast() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Current().Success).
		Foreground(theme.Current().Text).
		Padding(0, 1)
}

func styleOverlayBox() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Current().BorderFocused).
		Padding(1, 2)
}

func styleOverlayTitle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Accent).Bold(true)
}

func styleSwatchSelected() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(theme.Current().BorderFocused)
}

func styleSwatch() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.HiddenBorder())
}

func stylePickerOption() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Text).PaddingLeft(2)
}

func stylePickerHighlight() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Secondary).Bold(true).PaddingLeft(1)
}

func stylePickerHint() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().TextMuted)
}

func styleKeyPill() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(theme.Current().Primary).
		Foreground(theme.Current().Background).
		Bold(true)
}

func styleKeyDesc() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().TextMuted)
}

func styleHelpTitle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Accent).Bold(true)
}

func styleHelpDivider() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Primary)
}

func styleHelpSectionHeader() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Secondary).Bold(true)
}

func styleHelpKey() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Info).Bold(true)
}

func styleHelpDesc() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().TextMuted)
}

func styleHelpFooter() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().TextMuted).Italic(true)
}

func buildMarkdownRenderer(format string, width int) func(string) string {
	fallback := func(input string) string {
		return wordwrap.String(input, width)
	}

	style := strings.ToLower(strings.TrimSpace(format))
	if style == "" || style == "rich" || style == "dark" {
		style = "dark"
	}
	if style == "plain" {
		return fallback
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fallback
	}
	return func(input string) string {
		out, err := renderer.Render(input)
		if err != nil {
			return fallback(input)
		}
		return strings.TrimSpace(out)
	}
}
