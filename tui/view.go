package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/setanarut/pastel"
)

const (
	inputTitle = "Image Path"
	// Label contrast switches to black above this luminance.
	lightLuminance = 0.4
)

// View draws the input box and, once a palette exists, five equal-width
// swatches filling the rest of the screen.
func (m *Model) View() string {
	// appStyle margin takes one cell on every side.
	w := max(m.width-2, 1)
	h := max(m.height-2, 1)

	input := inputBoxStyle.Width(max(w-2, 1)).Render(m.path)
	top := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(inputTitle),
		input,
		m.help.View(m.keys),
	)
	if !m.hasPalette {
		return appStyle.Render(top)
	}

	swatchHeight := max(h-lipgloss.Height(top), 1)
	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		top,
		renderSwatches(m.palette, w, swatchHeight),
	))
}

func renderSwatches(p pastel.DisplayPalette, width, height int) string {
	sw := max(width/len(p), 1)
	blocks := make([]string, len(p))
	for i, c := range p {
		label := c.Hex()
		if lipgloss.Width(label) > sw {
			label = ""
		}
		fg := labelLight
		if c.Luminance() > lightLuminance {
			fg = labelDark
		}
		blocks[i] = swatchStyle.
			Width(sw).
			Height(height).
			Background(lipgloss.Color(c.Hex())).
			Foreground(fg).
			Render(label)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}
