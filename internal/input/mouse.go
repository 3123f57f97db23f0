package input

import tea "github.com/charmbracelet/bubbletea"

// Mouse defaults. A terminal cell is roughly eight pixels wide, so the
// drag sensitivity is per cell rather than per pixel.
const (
	DefaultMouseSensitivity float32 = 4
	DefaultWheelStep        float32 = 0.5
)

// Mouse turns mouse events into camera commands. Dragging with the left
// button orbits, the wheel zooms and a right click resets the camera.
type Mouse struct {
	Sensitivity float32 // degrees per cell of drag
	WheelStep   float32 // distance per wheel notch

	dragging     bool
	lastX, lastY int
}

// NewMouse returns a mouse handler with the default sensitivity.
func NewMouse() *Mouse {
	return &Mouse{
		Sensitivity: DefaultMouseSensitivity,
		WheelStep:   DefaultWheelStep,
	}
}

// Dragging reports whether a left-button drag is in progress.
func (m *Mouse) Dragging() bool {
	return m.dragging
}

// Handle processes one mouse event and returns the resulting command, if
// any.
func (m *Mouse) Handle(msg tea.MouseMsg) (Command, bool) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		return ZoomCommand(-m.WheelStep), true
	case tea.MouseButtonWheelDown:
		return ZoomCommand(m.WheelStep), true
	}

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.dragging = true
			m.lastX, m.lastY = msg.X, msg.Y
		case tea.MouseButtonRight:
			m.dragging = false
			return Command{Kind: ResetCamera}, true
		}

	case tea.MouseActionRelease:
		m.dragging = false

	case tea.MouseActionMotion:
		if !m.dragging {
			return Command{}, false
		}
		dx := msg.X - m.lastX
		dy := msg.Y - m.lastY
		m.lastX, m.lastY = msg.X, msg.Y
		if dx == 0 && dy == 0 {
			return Command{}, false
		}
		return OrbitCommand(float32(dx)*m.Sensitivity, float32(dy)*m.Sensitivity), true
	}
	return Command{}, false
}
