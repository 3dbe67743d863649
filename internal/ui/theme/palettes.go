package theme

import "github.com/charmbracelet/lipgloss"

// The built-in palettes. Tokyo Night registers first and is therefore the
// default.
func init() {
	Register(tokyoNight)
	Register(catppuccin)
	Register(gruvbox)
	Register(nordPalette)
}

func adaptive(dark, light string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: dark, Light: light}
}

// Tokyo Night (moon variant for dark, day for light).
var tokyoNight = Palette{
	Name:                "tokyonight",
	Primary:             adaptive("#82aaff", "#2e7de9"),
	Secondary:           adaptive("#c099ff", "#9854f1"),
	Accent:              adaptive("#ff966c", "#b15c00"),
	Error:               adaptive("#ff757f", "#f52a65"),
	Warning:             adaptive("#ff966c", "#b15c00"),
	Success:             adaptive("#c3e88d", "#587539"),
	Info:                adaptive("#7dcfff", "#0db9d7"),
	Text:                adaptive("#c8d3f5", "#3760bf"),
	TextMuted:           adaptive("#636da6", "#848cb5"),
	TextEmphasized:      adaptive("#ffc777", "#8c6c3e"),
	Background:          adaptive("#222436", "#e1e2e7"),
	BackgroundSecondary: adaptive("#2f334d", "#c8c9ce"),
	BackgroundDarker:    adaptive("#1e2030", "#d5d6db"),
	BorderNormal:        adaptive("#3b4261", "#a8aecb"),
	BorderFocused:       adaptive("#82aaff", "#2e7de9"),
	BorderDim:           adaptive("#292e42", "#c8c9ce"),
}

// Catppuccin (Mocha for dark, Latte for light).
var catppuccin = Palette{
	Name:                "catppuccin",
	Primary:             adaptive("#89b4fa", "#1e66f5"),
	Secondary:           adaptive("#cba6f7", "#8839ef"),
	Accent:              adaptive("#fab387", "#fe640b"),
	Error:               adaptive("#f38ba8", "#d20f39"),
	Warning:             adaptive("#fab387", "#fe640b"),
	Success:             adaptive("#a6e3a1", "#40a02b"),
	Info:                adaptive("#89b4fa", "#1e66f5"),
	Text:                adaptive("#cdd6f4", "#4c4f69"),
	TextMuted:           adaptive("#6c7086", "#9ca0b0"),
	TextEmphasized:      adaptive("#f5e0dc", "#dc8a78"),
	Background:          adaptive("#1e1e2e", "#eff1f5"),
	BackgroundSecondary: adaptive("#313244", "#e6e9ef"),
	BackgroundDarker:    adaptive("#181825", "#dce0e8"),
	BorderNormal:        adaptive("#6c7086", "#9ca0b0"),
	BorderFocused:       adaptive("#89b4fa", "#1e66f5"),
	BorderDim:           adaptive("#45475a", "#ccd0da"),
}

var gruvbox = Palette{
	Name:                "gruvbox",
	Primary:             adaptive("#83a598", "#076678"),
	Secondary:           adaptive("#d3869b", "#8f3f71"),
	Accent:              adaptive("#fabd2f", "#b57614"),
	Error:               adaptive("#fb4934", "#9d0006"),
	Warning:             adaptive("#fe8019", "#af3a03"),
	Success:             adaptive("#b8bb26", "#79740e"),
	Info:                adaptive("#83a598", "#076678"),
	Text:                adaptive("#ebdbb2", "#3c3836"),
	TextMuted:           adaptive("#a89984", "#7c6f64"),
	TextEmphasized:      adaptive("#fabd2f", "#b57614"),
	Background:          adaptive("#282828", "#fbf1c7"),
	BackgroundSecondary: adaptive("#504945", "#ebdbb2"),
	BackgroundDarker:    adaptive("#1d2021", "#d5c4a1"),
	BorderNormal:        adaptive("#504945", "#bdae93"),
	BorderFocused:       adaptive("#83a598", "#076678"),
	BorderDim:           adaptive("#3c3836", "#d5c4a1"),
}

// Nord, https://www.nordtheme.com/docs/colors-and-palettes
var nordPalette = Palette{
	Name:                "nord",
	Primary:             adaptive("#88C0D0", "#5E81AC"),
	Secondary:           adaptive("#81A1C1", "#81A1C1"),
	Accent:              adaptive("#8FBCBB", "#8FBCBB"),
	Error:               adaptive("#BF616A", "#BF616A"),
	Warning:             adaptive("#D08770", "#D08770"),
	Success:             adaptive("#A3BE8C", "#A3BE8C"),
	Info:                adaptive("#88C0D0", "#5E81AC"),
	Text:                adaptive("#ECEFF4", "#2E3440"),
	TextMuted:           adaptive("#8B95A7", "#3B4252"),
	TextEmphasized:      adaptive("#ECEFF4", "#000000"),
	Background:          adaptive("#2E3440", "#ECEFF4"),
	BackgroundSecondary: adaptive("#3B4252", "#E5E9F0"),
	BackgroundDarker:    adaptive("#434C5E", "#D8DEE9"),
	BorderNormal:        adaptive("#434C5E", "#4C566A"),
	BorderFocused:       adaptive("#4C566A", "#434C5E"),
	BorderDim:           adaptive("#434C5E", "#4C566A"),
}
