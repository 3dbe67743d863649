package ui

import "github.com/charmbracelet/x/ansi"

func stripANSI(s string) string {
	return ansi.Strip(s)
}

func displayWidth(s string) int {
	return ansi.StringWidth(s)
}
