package cube

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func newTestCube(t *testing.T) *Cube {
	t.Helper()
	c, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestNewCubeIsValid(t *testing.T) {
	c := newTestCube(t)
	if err := c.Check(); err != nil {
		t.Fatalf("new cube fails check: %v", err)
	}
	if got := len(c.Cubies()); got != NumCubies {
		t.Errorf("expected %d cubies, got %d", NumCubies, got)
	}
}

func TestNewCubeHomePositions(t *testing.T) {
	c := newTestCube(t)
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			for k := 0; k < Size; k++ {
				want := mgl32.Vec3{float32(i-1) * 1.1, float32(j-1) * 1.1, float32(k-1) * 1.1}
				if got := c.At(i, j, k).Position; got != want {
					t.Errorf("cell (%d,%d,%d): position %v, want %v", i, j, k, got, want)
				}
			}
		}
	}
}

func TestNewCubeStickers(t *testing.T) {
	c := newTestCube(t)

	stickers := 0
	for _, cb := range c.Cubies() {
		for f := Face(0); f < NumFaces; f++ {
			if cb.Colored(f) {
				stickers++
				if cb.Colors[f] != f.SolvedColor() {
					t.Errorf("cubie %d %s face is %s, want %s", cb.ID, f, cb.Colors[f], f.SolvedColor())
				}
			}
		}
	}
	if stickers != 54 {
		t.Errorf("expected 54 stickers, got %d", stickers)
	}

	// The core has no stickers at all
	core := c.At(1, 1, 1)
	for f := Face(0); f < NumFaces; f++ {
		if core.Colored(f) {
			t.Errorf("core cubie has a %s sticker on %s", core.Colors[f], f)
		}
	}
}

func TestNewRejectsBadOptions(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want error
	}{
		{"zero spacing", []Option{WithSpacing(0)}, ErrInvalidSpacing},
		{"negative spacing", []Option{WithSpacing(-1)}, ErrInvalidSpacing},
		{"zero tolerance", []Option{WithTolerance(0)}, ErrInvalidTolerance},
		{"negative tolerance", []Option{WithTolerance(-0.1)}, ErrInvalidTolerance},
		{"tolerance at half spacing", []Option{WithTolerance(0.55)}, ErrInvalidTolerance},
		{"tolerance above spacing", []Option{WithTolerance(2)}, ErrInvalidTolerance},
		{"tolerance too wide for spacing", []Option{WithSpacing(1), WithTolerance(0.6)}, ErrInvalidTolerance},
		{"infinite spacing", []Option{WithSpacing(math32.Inf(1))}, ErrInvalidSpacing},
		{"nan spacing", []Option{WithSpacing(math32.NaN())}, ErrInvalidSpacing},
		{"nan tolerance", []Option{WithTolerance(math32.NaN())}, ErrInvalidTolerance},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.opts...)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}

	if _, err := New(WithSpacing(2), WithTolerance(0.9)); err != nil {
		t.Errorf("valid options rejected: %v", err)
	}
}

func TestLayerSelectionSelectsNine(t *testing.T) {
	c := newTestCube(t)
	for id := LayerID(0); id < NumLayers; id++ {
		origin, axis, err := c.LayerOrigin(id)
		if err != nil {
			t.Fatalf("LayerOrigin(%s): %v", id, err)
		}
		layer := c.Layer(origin, axis)
		if len(layer) != LayerSize {
			t.Errorf("%s layer: expected %d cubies, got %d", id, LayerSize, len(layer))
		}
		for _, cb := range layer {
			if cb.Position[axis] != origin[axis] {
				t.Errorf("%s layer: cubie %d at %v is off the layer", id, cb.ID, cb.Position)
			}
		}
	}
}

func TestLayerSelectionUnscaledOrigins(t *testing.T) {
	// Origins one unit out instead of one spacing out still pick a layer.
	c := newTestCube(t)
	tests := []struct {
		origin mgl32.Vec3
		axis   Axis
	}{
		{mgl32.Vec3{0, 1, 0}, AxisY},
		{mgl32.Vec3{0, -1, 0}, AxisY},
		{mgl32.Vec3{-1, 0, 0}, AxisX},
		{mgl32.Vec3{1, 0, 0}, AxisX},
		{mgl32.Vec3{0, 0, 1}, AxisZ},
		{mgl32.Vec3{0, 0, -1}, AxisZ},
	}
	for _, tt := range tests {
		if got := len(c.Layer(tt.origin, tt.axis)); got != LayerSize {
			t.Errorf("origin %v axis %s: expected %d cubies, got %d", tt.origin, tt.axis, LayerSize, got)
		}
	}
}

func TestPartitionCoversAllCubies(t *testing.T) {
	c := newTestCube(t)
	origin, axis, _ := c.LayerOrigin(LayerRight)
	in, out := c.Partition(origin, axis)
	if len(in) != LayerSize || len(out) != NumCubies-LayerSize {
		t.Fatalf("partition sizes %d/%d", len(in), len(out))
	}
	seen := map[int]bool{}
	for _, cb := range append(in, out...) {
		if seen[cb.ID] {
			t.Errorf("cubie %d appears twice", cb.ID)
		}
		seen[cb.ID] = true
	}
}

func TestFourQuarterTurnsAreIdentity(t *testing.T) {
	for _, m := range AllMoves {
		c := newTestCube(t)
		before := c.Snapshot()
		for i := 0; i < 4; i++ {
			if err := c.Apply(m); err != nil {
				t.Fatalf("%s: %v", m, err)
			}
		}
		if !sameState(before, c.Snapshot()) {
			t.Errorf("%s x 4 should restore every cubie", m)
			t.Log(c.String())
		}
	}
}

func TestMoveThenInverseIsIdentity(t *testing.T) {
	for _, m := range AllMoves {
		c := newTestCube(t)
		before := c.Snapshot()
		if err := c.Apply(m); err != nil {
			t.Fatalf("%s: %v", m, err)
		}
		if sameState(before, c.Snapshot()) {
			t.Errorf("%s should change the cube", m)
		}
		if err := c.Apply(m.Inverse()); err != nil {
			t.Fatalf("%s: %v", m.Inverse(), err)
		}
		if !sameState(before, c.Snapshot()) {
			t.Errorf("%s then %s should restore every cubie", m, m.Inverse())
			t.Log(c.String())
		}
	}
}

func TestRotateLeavesOtherCubiesUntouched(t *testing.T) {
	for _, m := range AllMoves {
		c := newTestCube(t)
		// Scramble a little so the check is not only against the solved state
		for _, s := range []Move{RightCW, TopCCW, FrontCW} {
			if err := c.Apply(s); err != nil {
				t.Fatal(err)
			}
		}

		origin, axis, _ := c.LayerOrigin(m.Layer)
		_, outside := c.Partition(origin, axis)
		before := make(map[int]Cubie, len(outside))
		for _, cb := range outside {
			before[cb.ID] = *cb
		}

		if err := c.Apply(m); err != nil {
			t.Fatalf("%s: %v", m, err)
		}
		for id, want := range before {
			if got := *c.Cubie(id); got != want {
				t.Errorf("%s moved cubie %d outside the layer: %+v -> %+v", m, id, want, got)
			}
		}
	}
}

func TestRandomMovesKeepBijection(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	c := newTestCube(t)
	for i := 0; i < 500; i++ {
		m := AllMoves[rng.Intn(len(AllMoves))]
		if err := c.Apply(m); err != nil {
			t.Fatalf("move %d (%s): %v", i, m, err)
		}
		if err := c.Check(); err != nil {
			t.Fatalf("after move %d (%s): %v", i, m, err)
		}
	}

	seen := map[int]bool{}
	for _, cb := range c.Cubies() {
		seen[cb.ID] = true
	}
	if len(seen) != NumCubies {
		t.Errorf("expected %d distinct cubies, got %d", NumCubies, len(seen))
	}
}

func TestTopClockwiseCyclesSideColors(t *testing.T) {
	c := newTestCube(t)
	origin := mgl32.Vec3{0, c.Spacing(), 0}

	before := map[int][NumFaces]Color{}
	for _, cb := range c.Layer(origin, AxisY) {
		before[cb.ID] = cb.Colors
	}
	if err := c.RotateLayer(origin, AxisY, true); err != nil {
		t.Fatalf("RotateLayer: %v", err)
	}

	// Front -> Left -> Back -> Right -> Front
	for id, b := range before {
		a := c.Cubie(id).Colors
		if a[Left] != b[Front] || a[Back] != b[Left] || a[Right] != b[Back] || a[Front] != b[Right] {
			t.Errorf("cubie %d side colours %v -> %v do not follow the cycle", id, b, a)
		}
		if a[Top] != b[Top] || a[Bottom] != b[Bottom] {
			t.Errorf("cubie %d top/bottom changed: %v -> %v", id, b, a)
		}
	}

	// The front face's top row now shows what was on the right.
	for col := 0; col < Size; col++ {
		if got := c.Sticker(Front, 0, col); got != Orange {
			t.Errorf("front top row col %d: got %s, want O", col, got)
		}
		if got := c.Sticker(Left, 0, col); got != White {
			t.Errorf("left top row col %d: got %s, want W", col, got)
		}
	}
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if got := c.Sticker(Top, row, col); got != Blue {
				t.Errorf("top (%d,%d): got %s, want B", row, col, got)
			}
		}
	}
	if err := c.Check(); err != nil {
		t.Error(err)
	}
}

func TestFaceCycleShape(t *testing.T) {
	for axis := AxisX; axis <= AxisZ; axis++ {
		cw := FaceCycle(axis, true)
		ccw := FaceCycle(axis, false)
		for f := Face(0); f < NumFaces; f++ {
			fa, _ := f.Axis()
			if fa == axis {
				if cw[f] != f {
					t.Errorf("axis %s: %s should stay put, goes to %s", axis, f, cw[f])
				}
				continue
			}
			if cw[f] == f {
				t.Errorf("axis %s: %s should move", axis, f)
			}
			if cw[cw[cw[cw[f]]]] != f {
				t.Errorf("axis %s: %s is not on a 4-cycle", axis, f)
			}
			if ccw[cw[f]] != f {
				t.Errorf("axis %s: counter-clockwise does not invert clockwise for %s", axis, f)
			}
		}
	}

	want := [NumFaces]Face{Front: Left, Left: Back, Back: Right, Right: Front, Top: Top, Bottom: Bottom}
	if got := FaceCycle(AxisY, true); got != want {
		t.Errorf("y clockwise cycle %v, want %v", got, want)
	}
}

func TestRotateRejectsEmptyLayer(t *testing.T) {
	c := newTestCube(t)
	before := c.Snapshot()
	err := c.RotateLayer(mgl32.Vec3{0, 0.55, 0}, AxisY, true)
	if !errors.Is(err, ErrInvalidLayer) {
		t.Fatalf("expected ErrInvalidLayer, got %v", err)
	}
	if !sameState(before, c.Snapshot()) {
		t.Error("failed rotation changed the cube")
	}
}

func TestRotateRejectsBadAxis(t *testing.T) {
	c := newTestCube(t)
	if err := c.RotateLayer(mgl32.Vec3{}, Axis(3), true); !errors.Is(err, ErrInvalidAxis) {
		t.Errorf("expected ErrInvalidAxis, got %v", err)
	}
}

func TestRotateRejectsOffCentrePivot(t *testing.T) {
	c := newTestCube(t)
	before := c.Snapshot()
	err := c.RotateLayer(mgl32.Vec3{2.2, c.Spacing(), 0}, AxisY, true)
	if !errors.Is(err, ErrGridCorrupt) {
		t.Fatalf("expected ErrGridCorrupt, got %v", err)
	}
	if !sameState(before, c.Snapshot()) {
		t.Error("failed rotation changed the cube")
	}
	if err := c.Check(); err != nil {
		t.Error(err)
	}
}

func TestRecomputeGrid(t *testing.T) {
	c := newTestCube(t)
	grid := c.Grid()

	same, err := RecomputeGrid(grid, nil, c.Spacing())
	if err != nil {
		t.Fatalf("unchanged grid: %v", err)
	}
	if same != grid {
		t.Error("recomputing without moves should reproduce the grid")
	}

	a, b := c.At(0, 0, 0), c.At(2, 2, 2)
	swapped, err := RecomputeGrid(grid, map[*Cubie]mgl32.Vec3{a: b.Position, b: a.Position}, c.Spacing())
	if err != nil {
		t.Fatalf("swap: %v", err)
	}
	if swapped[0][0][0] != b || swapped[2][2][2] != a {
		t.Error("swap not reflected in the new grid")
	}

	_, err = RecomputeGrid(grid, map[*Cubie]mgl32.Vec3{a: b.Position}, c.Spacing())
	if !errors.Is(err, ErrGridCorrupt) {
		t.Errorf("duplicate cell: expected ErrGridCorrupt, got %v", err)
	}

	_, err = RecomputeGrid(grid, map[*Cubie]mgl32.Vec3{a: {3.3, 0, 0}}, c.Spacing())
	if !errors.Is(err, ErrGridCorrupt) {
		t.Errorf("out of range: expected ErrGridCorrupt, got %v", err)
	}

	holed := grid
	holed[1][1][1] = nil
	if _, err := RecomputeGrid(holed, nil, c.Spacing()); !errors.Is(err, ErrGridCorrupt) {
		t.Errorf("empty cell: expected ErrGridCorrupt, got %v", err)
	}
}

func TestResetRestoresHomeState(t *testing.T) {
	c := newTestCube(t)
	solved := c.String()

	for _, m := range []Move{RightCW, TopCW, FrontCCW, MiddleCW, BackCW, EquatorCCW} {
		if err := c.Apply(m); err != nil {
			t.Fatal(err)
		}
	}
	if c.String() == solved {
		t.Fatal("moves should change the net")
	}

	c.Reset()
	if got := c.String(); got != solved {
		t.Errorf("reset net differs:\n%s\nwant:\n%s", got, solved)
	}
	if err := c.Check(); err != nil {
		t.Error(err)
	}
	for _, cb := range c.Cubies() {
		for f := Face(0); f < NumFaces; f++ {
			if cb.Colored(f) && cb.Colors[f] != f.SolvedColor() {
				t.Errorf("cubie %d %s is %s after reset", cb.ID, f, cb.Colors[f])
			}
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	c := newTestCube(t)
	clone := c.Clone()
	if err := clone.Apply(RightCW); err != nil {
		t.Fatal(err)
	}
	if err := clone.Check(); err != nil {
		t.Errorf("clone fails check: %v", err)
	}
	if sameState(c.Snapshot(), clone.Snapshot()) {
		t.Error("moving the clone changed the source cube")
	}
}

func TestStringSolvedNet(t *testing.T) {
	c := newTestCube(t)
	lines := strings.Split(strings.TrimRight(c.String(), "\n"), "\n")
	if len(lines) != 9 {
		t.Fatalf("expected 9 lines, got %d", len(lines))
	}
	if lines[0] != "      B B B " {
		t.Errorf("top row %q", lines[0])
	}
	if lines[3] != "R R R W W W O O O Y Y Y " {
		t.Errorf("middle band %q", lines[3])
	}
	if lines[8] != "      G G G " {
		t.Errorf("bottom row %q", lines[8])
	}
}

func TestParseLayer(t *testing.T) {
	for id := LayerID(0); id < NumLayers; id++ {
		got, err := ParseLayer(id.String())
		if err != nil || got != id {
			t.Errorf("ParseLayer(%q) = %v, %v", id.String(), got, err)
		}
	}
	if _, err := ParseLayer("spin"); !errors.Is(err, ErrUnknownLayer) {
		t.Errorf("expected ErrUnknownLayer, got %v", err)
	}
}

func sameState(a, b []Cubie) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
