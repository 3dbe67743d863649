package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"ticklist/internal/domain"
	"ticklist/internal/ui/theme"
)

func (m *App) View() string {
	if !m.ready {
		return "Initializing..."
	}

	header := m.renderHeader()
	body := m.renderItems()
	footer := m.renderFooter()

	frame := fmt.Sprintf("%s\n%s\n%s", header, body, footer)

	overlay := m.renderOverlay()
	toast := m.renderToast()
	if overlay == "" && toast == "" {
		return frame
	}

	c := newCanvas(m.width, m.height)
	c.fill(theme.Current().Background)
	c.drawAt(0, 0, frame)
	if overlay != "" {
		c.drawCentered(overlay)
	}
	if toast != "" {
		c.drawBottomRight(toast, 1)
	}
	return c.render()
}

func (m *App) renderHeader() string {
	title := m.list.Title()
	if title == "" {
		title = "Untitled"
	}

	swatch := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.displayColor())).
		Render("■")

	done, total := 0, len(m.list.Items())
	for _, it := range m.list.Items() {
		if it.Completed {
			done++
		}
	}
	progress := styleHeaderInfo().Render(fmt.Sprintf("%d/%d · %.0f%%",
		done, total, domain.Progress(m.list.Items())))

	parts := []string{swatch, styleAppHeader().Render(title), progress}
	if cat := m.list.Category(); cat != "" {
		parts = append(parts, styleCategoryBadge().Render(cat))
	}
	if m.savesInFly > 0 {
		parts = append(parts, styleHeaderInfo().Render("· saving"))
	}
	if m.version != "" {
		parts = append(parts, styleHeaderInfo().Render("ticklist v"+m.version))
	}
	return strings.Join(parts, " ")
}

func (m *App) renderItems() string {
	items := m.list.Items()
	if len(items) == 0 && m.mode != modeAdding {
		return styleHeaderInfo().Render("  Nothing here yet. Press a to add an item.")
	}

	grabbedID := ""
	if m.reorder != nil {
		grabbedID = m.reorder.itemID
	}

	var b strings.Builder
	for i, item := range items {
		check := styleCheckOpen().Render("☐")
		text := styleItemText().Render(item.Text)
		if item.Completed {
			check = styleCheckDone().Render("☑")
			text = styleItemDone().Render(item.Text)
		}
		line := fmt.Sprintf(" %s %s", check, text)

		switch {
		case item.ID == grabbedID:
			line = styleItemGrabbed().Render("↕" + line)
		case i == m.cursor && m.mode != modeAdding:
			line = styleItemSelected().Render("▸" + line)
		default:
			line = " " + line
		}

		if m.mode == modeEditItem && m.edit.itemID == item.ID {
			line = "  " + m.edit.input.View()
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.mode == modeEditTitle {
		return "  " + m.edit.input.View() + "\n" + b.String()
	}
	if m.mode == modeAdding {
		b.WriteString("\n")
		b.WriteString(m.draft.View(m.engine.Ghost()))
		if m.engine.Loading() {
			b.WriteString("\n")
			b.WriteString(styleHeaderInfo().Render("  thinking..."))
		}
		if alts := m.engine.Alternatives(); len(alts) > 0 {
			b.WriteString("\n")
			b.WriteString(styleGhostText().Render("  also: " + strings.Join(alts, " · ")))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *App) renderFooter() string {
	pill := func(k, desc string) string {
		return styleKeyPill().Render(" "+k+" ") + " " + styleKeyDesc().Render(desc)
	}

	var hints []string
	switch m.mode {
	case modeAdding:
		hints = []string{pill("⇥", "accept"), pill("⏎", "add"), pill("Esc", "clear")}
	case modeReorder:
		hints = []string{pill("j/k", "move"), pill("⏎", "drop"), pill("Esc", "cancel")}
	case modeEditItem, modeEditTitle:
		hints = []string{pill("⏎", "commit"), pill("Esc", "back")}
	default:
		hints = []string{pill("a", "add"), pill("Space", "done"), pill("m", "move"), pill("?", "help"), pill("q", "quit")}
	}
	return strings.Join(hints, "  ")
}

func (m *App) renderOverlay() string {
	switch m.mode {
	case modeColor:
		return m.picker.View()
	case modeCategory:
		return m.catPick.View()
	case modeHelp:
		return renderHelpOverlay(m.keys)
	case modePreview:
		width := m.width - 8
		if width < 20 {
			width = 20
		}
		render := buildMarkdownRenderer(m.outputFormat, width)
		return styleOverlayBox().Render(render(m.listMarkdown()))
	}
	return ""
}

// listMarkdown renders the list as GitHub-flavored task list markdown, the
// shape used for both clipboard yanks and the preview overlay.
func (m *App) listMarkdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", m.list.Title())
	if cat := m.list.Category(); cat != "" {
		fmt.Fprintf(&b, "_%s_\n\n", cat)
	}
	for _, item := range m.list.Items() {
		mark := " "
		if item.Completed {
			mark = "x"
		}
		fmt.Fprintf(&b, "- [%s] %s\n", mark, item.Text)
	}
	return b.String()
}

func (m *App) renderToast() string {
	if m.toastText == "" {
		return ""
	}
	if m.toastIsErr {
		return styleErrorToast().Render("⚠ " + m.toastText)
	}
	return styleInfoToast().Render(m.toastText)
}
