package render

import (
	"strings"

	"github.com/SeamusWaldron/cubeview/internal/cube"
)

// CellKind says what covers a canvas cell.
type CellKind uint8

const (
	Empty   CellKind = iota // background
	Sticker                 // coloured part of a face
	Edge                    // dark rim around a sticker
)

// Cell is one character cell of the canvas.
type Cell struct {
	Kind  CellKind
	Color cube.Color
}

// Canvas is a depth-buffered grid of cells, row-major.
type Canvas struct {
	Width, Height int

	cells []Cell
	depth []float32
}

// NewCanvas creates an empty canvas.
func NewCanvas(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cv := &Canvas{
		Width:  width,
		Height: height,
		cells:  make([]Cell, width*height),
		depth:  make([]float32, width*height),
	}
	cv.Clear()
	return cv
}

// Clear empties every cell and resets the depth buffer.
func (cv *Canvas) Clear() {
	for i := range cv.cells {
		cv.cells[i] = Cell{Kind: Empty, Color: cube.None}
		cv.depth[i] = 2 // beyond the far plane in NDC
	}
}

// At returns the cell at column x, row y.
func (cv *Canvas) At(x, y int) Cell {
	if x < 0 || x >= cv.Width || y < 0 || y >= cv.Height {
		return Cell{Kind: Empty, Color: cube.None}
	}
	return cv.cells[y*cv.Width+x]
}

// plot writes c at (x, y) if z is nearer than what is already there.
func (cv *Canvas) plot(x, y int, z float32, c Cell) {
	i := y*cv.Width + x
	if z >= cv.depth[i] {
		return
	}
	cv.depth[i] = z
	cv.cells[i] = c
}

// Count returns how many cells show a sticker of colour col.
func (cv *Canvas) Count(col cube.Color) int {
	n := 0
	for _, c := range cv.cells {
		if c.Kind == Sticker && c.Color == col {
			n++
		}
	}
	return n
}

// Filled returns how many cells are covered by any face.
func (cv *Canvas) Filled() int {
	n := 0
	for _, c := range cv.cells {
		if c.Kind != Empty {
			n++
		}
	}
	return n
}

// Row returns row y.
func (cv *Canvas) Row(y int) []Cell {
	if y < 0 || y >= cv.Height {
		return nil
	}
	return cv.cells[y*cv.Width : (y+1)*cv.Width]
}

// String draws the canvas with colour letters, '#' for edges and spaces
// for the background.
func (cv *Canvas) String() string {
	var b strings.Builder
	for y := 0; y < cv.Height; y++ {
		for _, c := range cv.Row(y) {
			switch c.Kind {
			case Sticker:
				b.WriteString(c.Color.String())
			case Edge:
				b.WriteByte('#')
			default:
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
