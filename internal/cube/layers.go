package cube

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// LayerID names one of the nine turnable layers.
type LayerID int

const (
	LayerTop      LayerID = iota // y = +spacing
	LayerEquator                 // y = 0
	LayerBottom                  // y = -spacing
	LayerLeft                    // x = -spacing
	LayerMiddle                  // x = 0
	LayerRight                   // x = +spacing
	LayerFront                   // z = +spacing
	LayerStanding                // z = 0
	LayerBack                    // z = -spacing
)

// NumLayers is the number of named layers.
const NumLayers = 9

var layerDefs = [NumLayers]struct {
	name  string
	axis  Axis
	index int // -1, 0 or +1 along axis
}{
	LayerTop:      {"top", AxisY, 1},
	LayerEquator:  {"equator", AxisY, 0},
	LayerBottom:   {"bottom", AxisY, -1},
	LayerLeft:     {"left", AxisX, -1},
	LayerMiddle:   {"middle", AxisX, 0},
	LayerRight:    {"right", AxisX, 1},
	LayerFront:    {"front", AxisZ, 1},
	LayerStanding: {"standing", AxisZ, 0},
	LayerBack:     {"back", AxisZ, -1},
}

// Valid reports whether l names a layer.
func (l LayerID) Valid() bool {
	return l >= 0 && l < NumLayers
}

func (l LayerID) String() string {
	if !l.Valid() {
		return "?"
	}
	return layerDefs[l].name
}

// Axis returns the rotation axis of the layer.
func (l LayerID) Axis() Axis {
	if !l.Valid() {
		return -1
	}
	return layerDefs[l].axis
}

// ParseLayer returns the layer with the given name.
func ParseLayer(name string) (LayerID, error) {
	for id, def := range layerDefs {
		if def.name == name {
			return LayerID(id), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLayer, name)
}

// LayerOrigin returns the rotation origin and axis of a named layer.
func (c *Cube) LayerOrigin(l LayerID) (mgl32.Vec3, Axis, error) {
	if !l.Valid() {
		return mgl32.Vec3{}, 0, fmt.Errorf("%w: %d", ErrUnknownLayer, l)
	}
	def := layerDefs[l]
	var origin mgl32.Vec3
	origin[def.axis] = float32(def.index) * c.spacing
	return origin, def.axis, nil
}

// Move is a quarter turn of a named layer.
type Move struct {
	Layer     LayerID
	Clockwise bool
}

// Inverse returns the move that undoes m.
func (m Move) Inverse() Move {
	m.Clockwise = !m.Clockwise
	return m
}

func (m Move) String() string {
	dir := "ccw"
	if m.Clockwise {
		dir = "cw"
	}
	return m.Layer.String() + " " + dir
}

// Predefined moves, one per layer and direction.
var (
	TopCW       = Move{Layer: LayerTop, Clockwise: true}
	TopCCW      = Move{Layer: LayerTop}
	EquatorCW   = Move{Layer: LayerEquator, Clockwise: true}
	EquatorCCW  = Move{Layer: LayerEquator}
	BottomCW    = Move{Layer: LayerBottom, Clockwise: true}
	BottomCCW   = Move{Layer: LayerBottom}
	LeftCW      = Move{Layer: LayerLeft, Clockwise: true}
	LeftCCW     = Move{Layer: LayerLeft}
	MiddleCW    = Move{Layer: LayerMiddle, Clockwise: true}
	MiddleCCW   = Move{Layer: LayerMiddle}
	RightCW     = Move{Layer: LayerRight, Clockwise: true}
	RightCCW    = Move{Layer: LayerRight}
	FrontCW     = Move{Layer: LayerFront, Clockwise: true}
	FrontCCW    = Move{Layer: LayerFront}
	StandingCW  = Move{Layer: LayerStanding, Clockwise: true}
	StandingCCW = Move{Layer: LayerStanding}
	BackCW      = Move{Layer: LayerBack, Clockwise: true}
	BackCCW     = Move{Layer: LayerBack}
)

// AllMoves lists every quarter turn.
var AllMoves = []Move{
	TopCW, TopCCW, EquatorCW, EquatorCCW, BottomCW, BottomCCW,
	LeftCW, LeftCCW, MiddleCW, MiddleCCW, RightCW, RightCCW,
	FrontCW, FrontCCW, StandingCW, StandingCCW, BackCW, BackCCW,
}
