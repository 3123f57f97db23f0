// Package input maps key presses and mouse events to viewer commands.
//
// Input only produces requests. Rotations go through the animation
// controller; nothing here touches the cube directly.
package input

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SeamusWaldron/cubeview/internal/cube"
)

// ErrUnknownAction is returned for an action name with no command.
var ErrUnknownAction = errors.New("input: unknown action")

// Kind is the type of a command.
type Kind int

const (
	None        Kind = iota
	Rotate           // request a layer quarter turn
	ResetCube        // restore the solved arrangement
	ResetCamera      // restore the default view
	Orbit            // move the camera around the target
	Zoom             // move the camera along its view axis
	Help             // toggle the controls overlay
	Debug            // toggle the unfolded net overlay
	Quit
)

func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case Rotate:
		return "rotate"
	case ResetCube:
		return "reset_cube"
	case ResetCamera:
		return "reset_camera"
	case Orbit:
		return "orbit"
	case Zoom:
		return "zoom"
	case Help:
		return "help"
	case Debug:
		return "debug"
	case Quit:
		return "quit"
	default:
		return "?"
	}
}

// Command is a single request from the user.
type Command struct {
	Kind Kind

	Move cube.Move // Rotate

	DAzimuth   float32 // Orbit, degrees
	DElevation float32 // Orbit, degrees
	DDistance  float32 // Zoom
}

// Steps used by the keyboard bindings.
const (
	OrbitStep float32 = 5
	ZoomStep  float32 = 0.5
)

// RotateCommand requests the move m.
func RotateCommand(m cube.Move) Command {
	return Command{Kind: Rotate, Move: m}
}

// OrbitCommand requests a camera orbit.
func OrbitCommand(dAzimuth, dElevation float32) Command {
	return Command{Kind: Orbit, DAzimuth: dAzimuth, DElevation: dElevation}
}

// ZoomCommand requests a camera zoom.
func ZoomCommand(dDistance float32) Command {
	return Command{Kind: Zoom, DDistance: dDistance}
}

// Action returns the configuration name of the command.
func (c Command) Action() string {
	switch c.Kind {
	case Rotate:
		return moveAction(c.Move)
	case Orbit:
		switch {
		case c.DAzimuth < 0:
			return "orbit_left"
		case c.DAzimuth > 0:
			return "orbit_right"
		case c.DElevation > 0:
			return "orbit_up"
		case c.DElevation < 0:
			return "orbit_down"
		}
	case Zoom:
		if c.DDistance < 0 {
			return "zoom_in"
		}
		return "zoom_out"
	}
	return c.Kind.String()
}

// Describe returns a short human description of the command.
func (c Command) Describe() string {
	switch c.Kind {
	case Rotate:
		dir := "counter-clockwise"
		if c.Move.Clockwise {
			dir = "clockwise"
		}
		return fmt.Sprintf("Rotate %s layer %s", c.Move.Layer, dir)
	case ResetCube:
		return "Reset cube"
	case ResetCamera:
		return "Reset camera"
	case Orbit:
		return "Orbit camera " + strings.TrimPrefix(c.Action(), "orbit_")
	case Zoom:
		return "Zoom " + strings.TrimPrefix(c.Action(), "zoom_")
	case Help:
		return "Show controls"
	case Debug:
		return "Show unfolded net"
	case Quit:
		return "Quit"
	default:
		return ""
	}
}

func moveAction(m cube.Move) string {
	if m.Clockwise {
		return m.Layer.String() + "_cw"
	}
	return m.Layer.String() + "_ccw"
}

// ParseAction returns the command for an action name such as "top_cw",
// "reset_camera" or "zoom_in".
func ParseAction(name string) (Command, error) {
	switch name {
	case "reset_cube":
		return Command{Kind: ResetCube}, nil
	case "reset_camera":
		return Command{Kind: ResetCamera}, nil
	case "orbit_left":
		return OrbitCommand(-OrbitStep, 0), nil
	case "orbit_right":
		return OrbitCommand(OrbitStep, 0), nil
	case "orbit_up":
		return OrbitCommand(0, OrbitStep), nil
	case "orbit_down":
		return OrbitCommand(0, -OrbitStep), nil
	case "zoom_in":
		return ZoomCommand(-ZoomStep), nil
	case "zoom_out":
		return ZoomCommand(ZoomStep), nil
	case "help":
		return Command{Kind: Help}, nil
	case "debug":
		return Command{Kind: Debug}, nil
	case "quit":
		return Command{Kind: Quit}, nil
	}

	layer, dir, ok := strings.Cut(name, "_")
	if ok && (dir == "cw" || dir == "ccw") {
		id, err := cube.ParseLayer(layer)
		if err == nil {
			return RotateCommand(cube.Move{Layer: id, Clockwise: dir == "cw"}), nil
		}
	}
	return Command{}, fmt.Errorf("%w: %q", ErrUnknownAction, name)
}
