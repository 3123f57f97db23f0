package viewer

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cubeview/internal/cube"
	"github.com/SeamusWaldron/cubeview/internal/render"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	phaseStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	edgeStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236"))
)

// stickerStyles maps sticker colours to cell backgrounds.
var stickerStyles = map[cube.Color]lipgloss.Style{
	cube.White:  lipgloss.NewStyle().Background(lipgloss.Color("255")),
	cube.Yellow: lipgloss.NewStyle().Background(lipgloss.Color("226")),
	cube.Red:    lipgloss.NewStyle().Background(lipgloss.Color("196")),
	cube.Orange: lipgloss.NewStyle().Background(lipgloss.Color("208")),
	cube.Blue:   lipgloss.NewStyle().Background(lipgloss.Color("21")),
	cube.Green:  lipgloss.NewStyle().Background(lipgloss.Color("34")),
}

func cellStyle(c render.Cell) (lipgloss.Style, bool) {
	switch c.Kind {
	case render.Sticker:
		st, ok := stickerStyles[c.Color]
		return st, ok
	case render.Edge:
		return edgeStyle, true
	}
	return lipgloss.Style{}, false
}

// drawCanvas renders the canvas as rows of styled spaces. Runs of equal
// cells share one styled span.
func drawCanvas(cv *render.Canvas) string {
	var b strings.Builder
	for y := 0; y < cv.Height; y++ {
		row := cv.Row(y)
		for x := 0; x < len(row); {
			run := 1
			for x+run < len(row) && row[x+run] == row[x] {
				run++
			}
			span := strings.Repeat(" ", run)
			if st, ok := cellStyle(row[x]); ok {
				span = st.Render(span)
			}
			b.WriteString(span)
			x += run
		}
		if y < cv.Height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// drawNet renders the unfolded net with coloured stickers.
func drawNet(c *cube.Cube) string {
	var b strings.Builder
	writeRow := func(f cube.Face, row int) {
		for col := 0; col < cube.Size; col++ {
			color := c.Sticker(f, row, col)
			text := " " + color.String() + " "
			if st, ok := stickerStyles[color]; ok {
				text = st.Foreground(lipgloss.Color("0")).Render(text)
			}
			b.WriteString(text)
		}
	}
	indent := strings.Repeat(" ", 3*cube.Size)

	for row := 0; row < cube.Size; row++ {
		b.WriteString(indent)
		writeRow(cube.Top, row)
		b.WriteByte('\n')
	}
	for row := 0; row < cube.Size; row++ {
		for _, f := range []cube.Face{cube.Left, cube.Front, cube.Right, cube.Back} {
			writeRow(f, row)
		}
		b.WriteByte('\n')
	}
	for row := 0; row < cube.Size; row++ {
		b.WriteString(indent)
		writeRow(cube.Bottom, row)
		b.WriteByte('\n')
	}
	return b.String()
}
