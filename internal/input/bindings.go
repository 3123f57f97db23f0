package input

import (
	"fmt"
	"sort"
	"strings"

	"github.com/SeamusWaldron/cubeview/internal/cube"
)

// Bindings maps key names, as reported by bubbletea's KeyMsg.String, to
// commands.
type Bindings map[string]Command

// DefaultBindings returns the standard key layout.
//
//	z x c   top, equator, bottom clockwise     q w e  counter-clockwise
//	v b n   left, middle, right clockwise      a s d  counter-clockwise
//	f g     front, back clockwise              t y    counter-clockwise
func DefaultBindings() Bindings {
	return Bindings{
		"z": RotateCommand(cube.TopCW),
		"x": RotateCommand(cube.EquatorCW),
		"c": RotateCommand(cube.BottomCW),
		"q": RotateCommand(cube.TopCCW),
		"w": RotateCommand(cube.EquatorCCW),
		"e": RotateCommand(cube.BottomCCW),

		"v": RotateCommand(cube.LeftCW),
		"b": RotateCommand(cube.MiddleCW),
		"n": RotateCommand(cube.RightCW),
		"a": RotateCommand(cube.LeftCCW),
		"s": RotateCommand(cube.MiddleCCW),
		"d": RotateCommand(cube.RightCCW),

		"f": RotateCommand(cube.FrontCW),
		"g": RotateCommand(cube.BackCW),
		"t": RotateCommand(cube.FrontCCW),
		"y": RotateCommand(cube.BackCCW),

		"left":  OrbitCommand(-OrbitStep, 0),
		"right": OrbitCommand(OrbitStep, 0),
		"up":    OrbitCommand(0, OrbitStep),
		"down":  OrbitCommand(0, -OrbitStep),
		"+":     ZoomCommand(-ZoomStep),
		"=":     ZoomCommand(-ZoomStep),
		"-":     ZoomCommand(ZoomStep),
		"_":     ZoomCommand(ZoomStep),

		"r":      {Kind: ResetCamera},
		"R":      {Kind: ResetCube},
		"h":      {Kind: Help},
		"?":      {Kind: Debug},
		"esc":    {Kind: Quit},
		"ctrl+c": {Kind: Quit},
	}
}

// Lookup returns the command bound to key.
func (b Bindings) Lookup(key string) (Command, bool) {
	cmd, ok := b[key]
	return cmd, ok
}

// Override rebinds keys from a key to action-name map. An empty action
// or "none" unbinds the key. On error b is left unchanged.
func (b Bindings) Override(keys map[string]string) error {
	parsed := make(map[string]Command, len(keys))
	for key, action := range keys {
		if key == "" {
			return fmt.Errorf("input: empty key bound to %q", action)
		}
		if action == "" || action == "none" {
			parsed[key] = Command{}
			continue
		}
		cmd, err := ParseAction(action)
		if err != nil {
			return fmt.Errorf("binding %q: %w", key, err)
		}
		parsed[key] = cmd
	}

	for key, cmd := range parsed {
		if cmd.Kind == None {
			delete(b, key)
			continue
		}
		b[key] = cmd
	}
	return nil
}

// Scale multiplies the orbit and zoom steps of every binding.
func (b Bindings) Scale(orbit, zoom float32) {
	for key, cmd := range b {
		switch cmd.Kind {
		case Orbit:
			cmd.DAzimuth *= orbit
			cmd.DElevation *= orbit
		case Zoom:
			cmd.DDistance *= zoom
		default:
			continue
		}
		b[key] = cmd
	}
}

// Keys returns the keys bound to the given action, sorted.
func (b Bindings) Keys(action string) []string {
	var keys []string
	for key, cmd := range b {
		if cmd.Action() == action {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

// helpOrder is the order actions appear in the controls listing.
var helpOrder = []string{
	"top_cw", "top_ccw", "equator_cw", "equator_ccw", "bottom_cw", "bottom_ccw",
	"left_cw", "left_ccw", "middle_cw", "middle_ccw", "right_cw", "right_ccw",
	"front_cw", "front_ccw", "standing_cw", "standing_ccw", "back_cw", "back_ccw",
	"orbit_left", "orbit_right", "orbit_up", "orbit_down", "zoom_in", "zoom_out",
	"reset_camera", "reset_cube", "help", "debug", "quit",
}

// Help returns a controls listing, one bound action per line.
func (b Bindings) Help() string {
	var sb strings.Builder
	sb.WriteString("Controls:\n")
	for _, action := range helpOrder {
		keys := b.Keys(action)
		if len(keys) == 0 {
			continue
		}
		cmd, err := ParseAction(action)
		if err != nil {
			continue
		}
		fmt.Fprintf(&sb, "  %-12s %s\n", strings.Join(keys, " "), cmd.Describe())
	}
	sb.WriteString("  Mouse drag   Orbit camera\n")
	sb.WriteString("  Mouse wheel  Zoom\n")
	sb.WriteString("  Right click  Reset camera\n")
	return sb.String()
}
