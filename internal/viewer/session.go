// Package viewer runs the interactive cube viewer.
//
// A Session owns one cube, one animation controller and one camera. The
// bubbletea Model drives a Session from terminal events and draws each
// frame into coloured cells.
package viewer

import (
	"fmt"
	"io"
	"log"

	"github.com/SeamusWaldron/cubeview/internal/anim"
	"github.com/SeamusWaldron/cubeview/internal/camera"
	"github.com/SeamusWaldron/cubeview/internal/config"
	"github.com/SeamusWaldron/cubeview/internal/cube"
	"github.com/SeamusWaldron/cubeview/internal/input"
	"github.com/SeamusWaldron/cubeview/internal/render"
)

// Session holds the viewer state.
type Session struct {
	cube     *cube.Cube
	ctrl     *anim.Controller
	cam      *camera.Camera
	renderer *render.Renderer
	bindings input.Bindings
	mouse    *input.Mouse
	logger   *log.Logger

	turning cube.Move // move behind the running animation
	lastErr error
	verbose bool
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithLogger sets the session and animation logger.
func WithLogger(l *log.Logger) SessionOption {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithVerbose logs every applied command.
func WithVerbose(v bool) SessionOption {
	return func(s *Session) {
		s.verbose = v
	}
}

// NewSession creates a session with a solved cube and the default camera.
func NewSession(cfg config.Config, opts ...SessionOption) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c, err := cube.New(cfg.CubeOptions()...)
	if err != nil {
		return nil, fmt.Errorf("creating cube: %w", err)
	}
	bindings, err := cfg.KeyBindings()
	if err != nil {
		return nil, err
	}

	s := &Session{
		cube:     c,
		cam:      camera.New(),
		renderer: render.New(0, 0),
		bindings: bindings,
		mouse: &input.Mouse{
			Sensitivity: cfg.Camera.MouseSensitivity,
			WheelStep:   cfg.Camera.WheelStep,
		},
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.ctrl = anim.NewController(c,
		anim.WithSpeed(cfg.Animation.Speed),
		anim.WithTarget(cfg.Animation.Target),
		anim.WithLogger(s.logger),
		anim.WithOnComplete(func(_ anim.Animation, err error) {
			s.lastErr = err
		}),
	)
	return s, nil
}

// Cube returns the session's cube.
func (s *Session) Cube() *cube.Cube { return s.cube }

// Controller returns the animation controller.
func (s *Session) Controller() *anim.Controller { return s.ctrl }

// Camera returns the orbit camera.
func (s *Session) Camera() *camera.Camera { return s.cam }

// Bindings returns the active key bindings.
func (s *Session) Bindings() input.Bindings { return s.bindings }

// Mouse returns the mouse handler.
func (s *Session) Mouse() *input.Mouse { return s.mouse }

// Err returns the last rotation or command error.
func (s *Session) Err() error { return s.lastErr }

// Turning returns the move being animated, if any.
func (s *Session) Turning() (cube.Move, bool) {
	return s.turning, s.ctrl.Active()
}

// Apply carries out a command. Rotations are only requested: they start an
// animation and the cube changes when it completes. A rotation requested
// while another is running is ignored. Help, Debug and Quit are left to
// the caller.
func (s *Session) Apply(cmd input.Command) error {
	if s.verbose {
		s.logger.Printf("command %s", cmd.Action())
	}

	switch cmd.Kind {
	case input.Rotate:
		if s.ctrl.Active() {
			return nil
		}
		origin, axis, err := s.cube.LayerOrigin(cmd.Move.Layer)
		if err != nil {
			s.lastErr = err
			return err
		}
		if s.ctrl.Start(origin, axis, cmd.Move.Clockwise) {
			s.turning = cmd.Move
			s.lastErr = nil
		}

	case input.ResetCube:
		s.ctrl.Stop()
		s.cube.Reset()
		s.lastErr = nil
		s.logger.Printf("cube reset")

	case input.ResetCamera:
		s.cam.Reset()

	case input.Orbit:
		s.cam.Orbit(cmd.DAzimuth, cmd.DElevation)

	case input.Zoom:
		s.cam.Zoom(cmd.DDistance)
	}
	return nil
}

// Frame runs one frame: it takes the camera view, advances the animation
// and renders the cube onto a width x height canvas.
func (s *Session) Frame(width, height int) (*render.Canvas, error) {
	view := s.cam.View()
	err := s.ctrl.Tick()

	s.renderer.Width = width
	s.renderer.Height = height
	items := render.Instances(s.cube, s.ctrl.Current())
	return s.renderer.Render(view, items), err
}
