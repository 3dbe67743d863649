package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// categoryPicker assigns the list to an existing category or creates a new
// one from the typed text. Typing filters; the highlighted match can be
// taken with Enter, or the raw text registered when nothing matches.
type categoryPicker struct {
	options   []string
	filtered  []string
	highlight int
	input     textinput.Model
}

func newCategoryPicker(options []string, current string) (categoryPicker, tea.Cmd) {
	ti := textinput.New()
	ti.CharLimit = 60
	ti.Prompt = "> "
	ti.Placeholder = "Category name..."
	cmd := ti.Focus()

	p := categoryPicker{options: options, filtered: options, input: ti}
	for i, opt := range options {
		if opt == current {
			p.highlight = i
			break
		}
	}
	return p, cmd
}

func (p categoryPicker) Update(msg tea.Msg) (categoryPicker, tea.Cmd) {
	before := p.input.Value()
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	if p.input.Value() != before {
		p.filter()
	}
	return p, cmd
}

func (p *categoryPicker) filter() {
	typed := strings.ToLower(strings.TrimSpace(p.input.Value()))
	if typed == "" {
		p.filtered = p.options
		p.highlight = 0
		return
	}
	p.filtered = nil
	for _, opt := range p.options {
		if strings.Contains(strings.ToLower(opt), typed) {
			p.filtered = append(p.filtered, opt)
		}
	}
	p.highlight = 0
}

func (p *categoryPicker) Move(delta int) {
	if len(p.filtered) == 0 {
		return
	}
	p.highlight += delta
	if p.highlight < 0 {
		p.highlight = 0
	}
	if p.highlight >= len(p.filtered) {
		p.highlight = len(p.filtered) - 1
	}
}

// Choice returns the selected name and whether it is new (typed, not an
// existing option). ok=false when there is nothing to commit.
func (p categoryPicker) Choice() (name string, isNew, ok bool) {
	if p.highlight >= 0 && p.highlight < len(p.filtered) {
		return p.filtered[p.highlight], false, true
	}
	typed := strings.TrimSpace(p.input.Value())
	if typed == "" {
		return "", false, false
	}
	return typed, true, true
}

func (p categoryPicker) View() string {
	var b strings.Builder
	b.WriteString(styleOverlayTitle().Render("Category"))
	b.WriteString("\n\n")
	b.WriteString(p.input.View())
	b.WriteString("\n")

	if len(p.filtered) == 0 {
		if strings.TrimSpace(p.input.Value()) != "" {
			b.WriteString(stylePickerHint().Render("  ⏎ to create new"))
		} else {
			b.WriteString(stylePickerHint().Render("  No categories yet"))
		}
	} else {
		for i, opt := range p.filtered {
			if i == p.highlight {
				b.WriteString(stylePickerHighlight().Render("▸ " + opt))
			} else {
				b.WriteString(stylePickerOption().Render(opt))
			}
			if i < len(p.filtered)-1 {
				b.WriteString("\n")
			}
		}
	}

	b.WriteString("\n\n")
	b.WriteString(stylePickerHint().Render("↑/↓ choose · ⏎ apply · Esc close"))
	return styleOverlayBox().Render(lipgloss.NewStyle().Render(b.String()))
}
