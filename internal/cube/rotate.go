package cube

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// quarterTurn rotates v by 90 degrees about axis, right-handed.
// Clockwise is -90 degrees, counter-clockwise +90.
func quarterTurn(v mgl32.Vec3, axis Axis, clockwise bool) mgl32.Vec3 {
	// sin of the turn angle; cos is zero
	s := float32(1)
	if clockwise {
		s = -1
	}
	switch axis {
	case AxisX:
		return mgl32.Vec3{v[0], -s * v[2], s * v[1]}
	case AxisY:
		return mgl32.Vec3{s * v[2], v[1], -s * v[0]}
	case AxisZ:
		return mgl32.Vec3{-s * v[1], s * v[0], v[2]}
	}
	return v
}

// faceFromNormal returns the face whose normal is n.
func faceFromNormal(n mgl32.Vec3) (Face, bool) {
	for f := Face(0); f < NumFaces; f++ {
		if f.Normal() == n {
			return f, true
		}
	}
	return 0, false
}

// faceCycle[axis][cw][f] is the slot that face f's colour moves to when a
// cubie turns a quarter about axis (cw: 0 = counter-clockwise, 1 = clockwise).
// The two faces on the axis map to themselves; the other four form a 4-cycle.
var faceCycle = buildFaceCycles()

func buildFaceCycles() [3][2][NumFaces]Face {
	var table [3][2][NumFaces]Face
	for axis := AxisX; axis <= AxisZ; axis++ {
		for dir := 0; dir < 2; dir++ {
			for f := Face(0); f < NumFaces; f++ {
				to, ok := faceFromNormal(quarterTurn(f.Normal(), axis, dir == 1))
				if !ok {
					panic(fmt.Sprintf("cube: no face for rotated %s normal", f))
				}
				table[axis][dir][f] = to
			}
		}
	}
	return table
}

// FaceCycle returns where each face slot's colour ends up after a quarter
// turn about axis.
func FaceCycle(axis Axis, clockwise bool) [NumFaces]Face {
	return faceCycle[axis][dirIndex(clockwise)]
}

func dirIndex(clockwise bool) int {
	if clockwise {
		return 1
	}
	return 0
}

// rotateColors permutes the colour slots for a quarter turn.
func rotateColors(colors [NumFaces]Color, axis Axis, clockwise bool) [NumFaces]Color {
	cycle := &faceCycle[axis][dirIndex(clockwise)]
	var out [NumFaces]Color
	for f := Face(0); f < NumFaces; f++ {
		out[cycle[f]] = colors[f]
	}
	return out
}

// snap rounds every coordinate to the nearest multiple of spacing.
func snap(v mgl32.Vec3, spacing float32) mgl32.Vec3 {
	for a := range v {
		v[a] = math32.Floor(v[a]/spacing+0.5) * spacing
	}
	return v
}

// cellIndex returns the grid index along one axis for a coordinate.
func cellIndex(x, spacing float32) int {
	return int(math32.Floor(x/spacing+0.5)) + 1
}

// InLayer reports whether cb belongs to the layer through origin along axis.
func (c *Cube) InLayer(cb *Cubie, origin mgl32.Vec3, axis Axis) bool {
	if !axis.Valid() {
		return false
	}
	return math32.Abs(cb.Position[axis]-origin[axis]) < c.tolerance
}

// Layer returns the cubies of the layer through origin along axis, in grid
// order.
func (c *Cube) Layer(origin mgl32.Vec3, axis Axis) []*Cubie {
	layer, _ := c.Partition(origin, axis)
	return layer
}

// Partition splits the cubies into those inside the layer through origin
// along axis and the rest.
func (c *Cube) Partition(origin mgl32.Vec3, axis Axis) (in, out []*Cubie) {
	in = make([]*Cubie, 0, LayerSize)
	out = make([]*Cubie, 0, NumCubies-LayerSize)
	for _, cb := range c.Cubies() {
		if c.InLayer(cb, origin, axis) {
			in = append(in, cb)
		} else {
			out = append(out, cb)
		}
	}
	return in, out
}

// RotateLayer turns the layer through origin along axis by a quarter turn.
// Positions are rotated about origin and snapped to the lattice, colour
// slots follow the same rotation, and the grid is rebuilt. On error the
// cube is left unchanged.
func (c *Cube) RotateLayer(origin mgl32.Vec3, axis Axis, clockwise bool) error {
	if !axis.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidAxis, axis)
	}

	layer := c.Layer(origin, axis)
	if len(layer) != LayerSize {
		return fmt.Errorf("%w: %d cubies at %v along %s", ErrInvalidLayer, len(layer), origin, axis)
	}

	moved := make(map[*Cubie]mgl32.Vec3, len(layer))
	for _, cb := range layer {
		p := quarterTurn(cb.Position.Sub(origin), axis, clockwise).Add(origin)
		moved[cb] = snap(p, c.spacing)
	}

	grid, err := RecomputeGrid(c.grid, moved, c.spacing)
	if err != nil {
		return fmt.Errorf("rotating %s layer at %v: %w", axis, origin, err)
	}

	for cb, p := range moved {
		cb.Position = p
		cb.Colors = rotateColors(cb.Colors, axis, clockwise)
	}
	c.grid = grid
	return nil
}

// Apply performs a named layer move.
func (c *Cube) Apply(m Move) error {
	origin, axis, err := c.LayerOrigin(m.Layer)
	if err != nil {
		return err
	}
	return c.RotateLayer(origin, axis, m.Clockwise)
}

// RecomputeGrid builds a fresh grid from the cubies in old. Cubies listed in
// moved are placed by their new position, the rest by their current one.
// It fails if any cell index falls outside the grid, two cubies land in the
// same cell, or old has an empty cell.
func RecomputeGrid(old Grid, moved map[*Cubie]mgl32.Vec3, spacing float32) (Grid, error) {
	var grid Grid
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			for k := 0; k < Size; k++ {
				cb := old[i][j][k]
				if cb == nil {
					return Grid{}, fmt.Errorf("%w: cell (%d,%d,%d) is empty", ErrGridCorrupt, i, j, k)
				}
				pos, ok := moved[cb]
				if !ok {
					pos = cb.Position
				}

				ni := cellIndex(pos[0], spacing)
				nj := cellIndex(pos[1], spacing)
				nk := cellIndex(pos[2], spacing)
				if ni < 0 || ni >= Size || nj < 0 || nj >= Size || nk < 0 || nk >= Size {
					return Grid{}, fmt.Errorf("%w: cubie %d at %v maps to cell (%d,%d,%d)",
						ErrGridCorrupt, cb.ID, pos, ni, nj, nk)
				}
				if other := grid[ni][nj][nk]; other != nil {
					return Grid{}, fmt.Errorf("%w: cubies %d and %d both map to cell (%d,%d,%d)",
						ErrGridCorrupt, other.ID, cb.ID, ni, nj, nk)
				}
				grid[ni][nj][nk] = cb
			}
		}
	}
	return grid, nil
}
