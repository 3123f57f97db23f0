// Package cube models a 3x3x3 Rubik's cube as 27 positioned cubies.
//
// Every cubie keeps its own position and six colour slots. Layers are
// selected geometrically by an origin and an axis, and a quarter turn moves
// and recolours the nine cubies of one layer before the grid index is
// rebuilt from the new positions.
package cube

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Color represents a sticker colour.
type Color int8

const (
	None   Color = -1 // Interior face, no sticker
	White  Color = 0  // Front face when solved
	Yellow Color = 1  // Back face when solved
	Red    Color = 2  // Left face when solved
	Orange Color = 3  // Right face when solved
	Blue   Color = 4  // Top face when solved
	Green  Color = 5  // Bottom face when solved
)

func (c Color) String() string {
	switch c {
	case None:
		return "."
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Red:
		return "R"
	case Orange:
		return "O"
	case Blue:
		return "B"
	case Green:
		return "G"
	default:
		return "?"
	}
}

// Face is one of the six fixed slot directions of a cubie.
type Face int

const (
	Front  Face = 0 // +Z
	Back   Face = 1 // -Z
	Left   Face = 2 // -X
	Right  Face = 3 // +X
	Top    Face = 4 // +Y
	Bottom Face = 5 // -Y
)

// NumFaces is the number of colour slots on a cubie.
const NumFaces = 6

func (f Face) String() string {
	switch f {
	case Front:
		return "front"
	case Back:
		return "back"
	case Left:
		return "left"
	case Right:
		return "right"
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	default:
		return "?"
	}
}

// Normal returns the outward unit normal of the face.
func (f Face) Normal() mgl32.Vec3 {
	switch f {
	case Front:
		return mgl32.Vec3{0, 0, 1}
	case Back:
		return mgl32.Vec3{0, 0, -1}
	case Left:
		return mgl32.Vec3{-1, 0, 0}
	case Right:
		return mgl32.Vec3{1, 0, 0}
	case Top:
		return mgl32.Vec3{0, 1, 0}
	case Bottom:
		return mgl32.Vec3{0, -1, 0}
	default:
		return mgl32.Vec3{}
	}
}

// Axis returns the axis the face normal lies on and the sign of the normal.
func (f Face) Axis() (Axis, float32) {
	n := f.Normal()
	for a := AxisX; a <= AxisZ; a++ {
		if n[a] != 0 {
			return a, n[a]
		}
	}
	return AxisX, 0
}

// SolvedColor returns the sticker colour a face carries on a fresh cube.
func (f Face) SolvedColor() Color {
	switch f {
	case Front:
		return White
	case Back:
		return Yellow
	case Left:
		return Red
	case Right:
		return Orange
	case Top:
		return Blue
	case Bottom:
		return Green
	default:
		return None
	}
}

// Axis is a rotation axis.
type Axis int

const (
	AxisX Axis = 0
	AxisY Axis = 1
	AxisZ Axis = 2
)

// Valid reports whether a is one of AxisX, AxisY or AxisZ.
func (a Axis) Valid() bool {
	return a >= AxisX && a <= AxisZ
}

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "?"
	}
}

// Unit returns the unit vector along the axis.
func (a Axis) Unit() mgl32.Vec3 {
	var v mgl32.Vec3
	if a.Valid() {
		v[a] = 1
	}
	return v
}

// Cubie is one of the 27 sub-cubes.
type Cubie struct {
	ID       int
	Position mgl32.Vec3
	Colors   [NumFaces]Color
}

// Colored reports whether the face slot carries a sticker.
func (c *Cubie) Colored(f Face) bool {
	return c.Colors[f] != None
}

// Size is the number of cubies along each axis.
const Size = 3

// NumCubies is the number of cubies in the cube.
const NumCubies = Size * Size * Size

// LayerSize is the number of cubies in one layer.
const LayerSize = Size * Size

// Grid indexes cubies by their integer cell (i, j, k).
type Grid [Size][Size][Size]*Cubie

// Cube is a 3x3x3 arrangement of cubies.
type Cube struct {
	spacing   float32
	tolerance float32

	// cubies is the fixed arena; grid points into it.
	cubies [NumCubies]Cubie
	grid   Grid
}

// New creates a cube in the solved arrangement.
func New(opts ...Option) (*Cube, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	c := &Cube{
		spacing:   cfg.spacing,
		tolerance: cfg.tolerance,
	}
	id := 0
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			for k := 0; k < Size; k++ {
				cb := &c.cubies[id]
				cb.ID = id
				c.grid[i][j][k] = cb
				id++
			}
		}
	}
	c.Reset()
	return c, nil
}

// MustNew is like New but panics on an invalid option set.
func MustNew(opts ...Option) *Cube {
	c, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Spacing returns the distance between neighbouring cubie centres.
func (c *Cube) Spacing() float32 {
	return c.spacing
}

// Tolerance returns the layer membership tolerance.
func (c *Cube) Tolerance() float32 {
	return c.tolerance
}

// HomePosition returns the solved position of grid cell (i, j, k).
func (c *Cube) HomePosition(i, j, k int) mgl32.Vec3 {
	return mgl32.Vec3{
		float32(i-1) * c.spacing,
		float32(j-1) * c.spacing,
		float32(k-1) * c.spacing,
	}
}

// solvedColors returns the colour slots for a cubie sitting at pos.
func (c *Cube) solvedColors(pos mgl32.Vec3) [NumFaces]Color {
	var colors [NumFaces]Color
	for f := Face(0); f < NumFaces; f++ {
		if c.onSurface(pos, f) {
			colors[f] = f.SolvedColor()
		} else {
			colors[f] = None
		}
	}
	return colors
}

// onSurface reports whether a cubie at pos has face f on the outside.
func (c *Cube) onSurface(pos mgl32.Vec3, f Face) bool {
	axis, sign := f.Axis()
	return pos[axis]*sign > c.spacing/2
}

// Reset restores every cubie to the home position and solved colours of
// the cell it currently occupies.
func (c *Cube) Reset() {
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			for k := 0; k < Size; k++ {
				cb := c.grid[i][j][k]
				if cb == nil {
					continue
				}
				cb.Position = c.HomePosition(i, j, k)
				cb.Colors = c.solvedColors(cb.Position)
			}
		}
	}
}

// At returns the cubie occupying cell (i, j, k), or nil if the indices are
// out of range.
func (c *Cube) At(i, j, k int) *Cubie {
	if i < 0 || i >= Size || j < 0 || j >= Size || k < 0 || k >= Size {
		return nil
	}
	return c.grid[i][j][k]
}

// Cubie returns the cubie with the given ID.
func (c *Cube) Cubie(id int) *Cubie {
	if id < 0 || id >= NumCubies {
		return nil
	}
	return &c.cubies[id]
}

// Cubies returns all cubies in grid order (i outermost, k innermost).
func (c *Cube) Cubies() []*Cubie {
	out := make([]*Cubie, 0, NumCubies)
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			for k := 0; k < Size; k++ {
				if cb := c.grid[i][j][k]; cb != nil {
					out = append(out, cb)
				}
			}
		}
	}
	return out
}

// Grid returns a copy of the cell index.
func (c *Cube) Grid() Grid {
	return c.grid
}

// Snapshot returns the state of every cubie ordered by ID.
func (c *Cube) Snapshot() []Cubie {
	out := make([]Cubie, NumCubies)
	copy(out, c.cubies[:])
	return out
}

// Clone creates a deep copy of the cube.
func (c *Cube) Clone() *Cube {
	clone := &Cube{
		spacing:   c.spacing,
		tolerance: c.tolerance,
		cubies:    c.cubies,
	}
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			for k := 0; k < Size; k++ {
				if cb := c.grid[i][j][k]; cb != nil {
					clone.grid[i][j][k] = &clone.cubies[cb.ID]
				}
			}
		}
	}
	return clone
}

// Check verifies the grid invariants: every cell holds exactly one distinct
// cubie, each cubie sits on its cell's lattice point, and stickers appear
// on outer faces only.
func (c *Cube) Check() error {
	var seen [NumCubies]bool
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			for k := 0; k < Size; k++ {
				cb := c.grid[i][j][k]
				if cb == nil {
					return fmt.Errorf("%w: cell (%d,%d,%d) is empty", ErrGridCorrupt, i, j, k)
				}
				if seen[cb.ID] {
					return fmt.Errorf("%w: cubie %d occupies more than one cell", ErrGridCorrupt, cb.ID)
				}
				seen[cb.ID] = true

				if home := c.HomePosition(i, j, k); cb.Position != home {
					return fmt.Errorf("%w: cubie %d at %v, cell (%d,%d,%d) expects %v",
						ErrGridCorrupt, cb.ID, cb.Position, i, j, k, home)
				}
				for f := Face(0); f < NumFaces; f++ {
					if cb.Colored(f) != c.onSurface(cb.Position, f) {
						return fmt.Errorf("%w: cubie %d has %s face %s on the wrong side",
							ErrGridCorrupt, cb.ID, f, cb.Colors[f])
					}
				}
			}
		}
	}
	return nil
}

// facelet maps a sticker on an unfolded face to its grid cell.
// row and col run top-left to bottom-right as seen from outside the cube,
// with the top face viewed from above (back edge up) and the bottom face
// viewed from below (front edge up).
func facelet(f Face, row, col int) (i, j, k int) {
	switch f {
	case Top:
		return col, 2, row
	case Bottom:
		return col, 0, 2 - row
	case Front:
		return col, 2 - row, 2
	case Back:
		return 2 - col, 2 - row, 0
	case Left:
		return 0, 2 - row, col
	case Right:
		return 2, 2 - row, 2 - col
	}
	return 0, 0, 0
}

// Sticker returns the colour showing on face f at (row, col) of its
// unfolded 3x3 view.
func (c *Cube) Sticker(f Face, row, col int) Color {
	cb := c.At(facelet(f, row, col))
	if cb == nil {
		return None
	}
	return cb.Colors[f]
}

// String returns the unfolded net of the six outer faces.
func (c *Cube) String() string {
	var b strings.Builder

	writeRow := func(f Face, row int) {
		for col := 0; col < Size; col++ {
			b.WriteString(c.Sticker(f, row, col).String())
			b.WriteString(" ")
		}
	}

	// Top face (indented)
	for row := 0; row < Size; row++ {
		b.WriteString("      ")
		writeRow(Top, row)
		b.WriteString("\n")
	}

	// Left, front, right, back (side by side)
	for row := 0; row < Size; row++ {
		for _, f := range []Face{Left, Front, Right, Back} {
			writeRow(f, row)
		}
		b.WriteString("\n")
	}

	// Bottom face (indented)
	for row := 0; row < Size; row++ {
		b.WriteString("      ")
		writeRow(Bottom, row)
		b.WriteString("\n")
	}

	return b.String()
}
