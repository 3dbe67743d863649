package ui

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/cellbuf"
)

// canvas composes lipgloss-rendered blocks into a cell buffer so overlays
// can be painted over the list body before the frame goes back to Bubble
// Tea as a string.
type canvas struct {
	screen *cellbuf.Screen
	writer *cellbuf.ScreenWriter
	width  int
	height int
}

func newCanvas(width, height int) *canvas {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	screen := cellbuf.NewScreen(io.Discard, width, height, &cellbuf.ScreenOptions{
		ShowCursor: false,
		AltScreen:  false,
	})
	return &canvas{
		screen: screen,
		writer: cellbuf.NewScreenWriter(screen),
		width:  width,
		height: height,
	}
}

// fill paints the whole canvas with the given background color.
func (c *canvas) fill(bg lipgloss.TerminalColor) {
	if c == nil {
		return
	}
	block := lipgloss.NewStyle().
		Background(bg).
		Width(c.width).
		Height(c.height).
		Render("")
	c.drawAt(0, 0, block)
}

// drawAt writes the block starting at x,y. Newlines are normalized so each
// line begins at column 0 relative to x.
func (c *canvas) drawAt(x, y int, content string) {
	if content == "" || c == nil || c.writer == nil {
		return
	}
	content = strings.ReplaceAll(content, "\r\n", "\n")
	c.writer.PrintCropAt(x, y, strings.ReplaceAll(content, "\n", "\r\n"), "")
}

// drawCentered paints the overlay centered inside the canvas.
func (c *canvas) drawCentered(overlay string) {
	lines := overlayLines(overlay)
	if len(lines) == 0 || c == nil {
		return
	}

	w := maxLineWidth(lines)
	if w > c.width {
		w = c.width
	}
	x := (c.width - w) / 2
	if x < 0 {
		x = 0
	}
	y := (c.height - len(lines)) / 2
	if y < 0 {
		y = 0
	}
	c.drawLinesAt(x, y, lines)
}

// drawBottomRight anchors the overlay to the bottom-right corner with the
// given padding.
func (c *canvas) drawBottomRight(overlay string, padding int) {
	lines := overlayLines(overlay)
	if len(lines) == 0 || c == nil {
		return
	}
	if padding < 0 {
		padding = 0
	}

	y := c.height - len(lines) - padding
	if y < 0 {
		y = 0
	}
	x := c.width - maxLineWidth(lines) - padding
	if x < 0 {
		x = 0
	}
	c.drawLinesAt(x, y, lines)
}

func (c *canvas) drawLinesAt(x, y int, lines []string) {
	for i, line := range lines {
		row := y + i
		if row >= c.height {
			break
		}
		if line == "" {
			continue
		}
		c.writer.PrintCropAt(x, row, line, "")
	}
}

// render returns the composed frame as a newline-delimited string.
func (c *canvas) render() string {
	if c == nil || c.screen == nil {
		return ""
	}
	raw := cellbuf.Render(c.screen)
	_ = c.screen.Close()
	return strings.ReplaceAll(raw, "\r\n", "\n")
}

func overlayLines(content string) []string {
	if content == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
}

func maxLineWidth(lines []string) int {
	w := 0
	for _, line := range lines {
		if lw := displayWidth(line); lw > w {
			w = lw
		}
	}
	return w
}
