package viewer

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/SeamusWaldron/cubeview/internal/input"
	"github.com/SeamusWaldron/cubeview/internal/render"
)

// Lines used around the canvas: title and blank above, status, error and
// key hints below.
const (
	headerLines = 2
	footerLines = 3
)

// DefaultTick is the frame interval.
const DefaultTick = 16 * time.Millisecond

type tickMsg time.Time

// Model is the bubbletea model for the viewer.
type Model struct {
	session *Session
	tick    time.Duration

	width, height int
	canvas        *render.Canvas

	hint      string
	showHelp  bool
	showDebug bool
	err       error
	quitting  bool
}

// NewModel creates a model that advances s every tick.
func NewModel(s *Session, tick time.Duration) *Model {
	if tick <= 0 {
		tick = DefaultTick
	}
	return &Model{
		session: s,
		tick:    tick,
		canvas:  render.NewCanvas(0, 0),
		hint:    keyHint(s.Bindings()),
	}
}

func (m *Model) Init() tea.Cmd {
	return m.tickCmd()
}

func (m *Model) tickCmd() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd, ok := m.session.Bindings().Lookup(msg.String())
		if !ok {
			return m, nil
		}
		return m, m.handle(cmd)

	case tea.MouseMsg:
		cmd, ok := m.session.Mouse().Handle(msg)
		if !ok {
			return m, nil
		}
		return m, m.handle(cmd)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		canvas, err := m.session.Frame(m.canvasSize())
		m.canvas = canvas
		if err != nil {
			m.err = err
		}
		return m, m.tickCmd()
	}

	return m, nil
}

// handle applies a command, keeping the overlay and quit commands local.
func (m *Model) handle(cmd input.Command) tea.Cmd {
	switch cmd.Kind {
	case input.Quit:
		m.quitting = true
		return tea.Quit
	case input.Help:
		m.showHelp = !m.showHelp
		m.showDebug = false
	case input.Debug:
		m.showDebug = !m.showDebug
		m.showHelp = false
	default:
		if err := m.session.Apply(cmd); err != nil {
			m.err = err
		} else if cmd.Kind == input.Rotate || cmd.Kind == input.ResetCube {
			m.err = nil
		}
	}
	return nil
}

// canvasSize returns the cells left for the cube drawing.
func (m *Model) canvasSize() (int, int) {
	h := m.height - headerLines - footerLines
	if h < 0 {
		h = 0
	}
	return m.width, h
}

func (m *Model) View() string {
	if m.quitting {
		return "Bye.\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Cube Viewer"))
	b.WriteString("\n\n")

	switch {
	case m.showHelp:
		b.WriteString(helpStyle.Render(m.session.Bindings().Help()))
	case m.showDebug:
		b.WriteString(statusStyle.Render("DEBUG - Cube State:"))
		b.WriteString("\n")
		b.WriteString(drawNet(m.session.Cube()))
	default:
		b.WriteString(drawCanvas(m.canvas))
	}
	b.WriteString("\n")

	b.WriteString(m.statusLine())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}
	b.WriteString("\n")

	b.WriteString(helpStyle.Render(m.hint))
	return b.String()
}

// hintActions are the actions listed in the footer, with their labels.
var hintActions = []struct{ action, label string }{
	{"help", "help"},
	{"reset_camera", "camera"},
	{"reset_cube", "reset"},
	{"debug", "net"},
	{"quit", "quit"},
}

// keyHint builds the footer from the bound keys. Unbound actions are left
// out.
func keyHint(b input.Bindings) string {
	parts := []string{"drag=orbit", "wheel=zoom"}
	for _, h := range hintActions {
		if keys := b.Keys(h.action); len(keys) > 0 {
			parts = append(parts, strings.Join(keys, "/")+"="+h.label)
		}
	}
	return strings.Join(parts, "  ")
}

func (m *Model) statusLine() string {
	cam := m.session.Camera()
	status := statusStyle.Render(fmt.Sprintf("Camera: dist %.1f  az %.0f  el %.0f",
		cam.Distance(), cam.Azimuth(), cam.Elevation()))

	if mv, ok := m.session.Turning(); ok {
		progress := m.session.Controller().Current().Progress()
		return status + "  " + phaseStyle.Render("TURNING") + " " +
			moveStyle.Render(fmt.Sprintf("%s (%.0f%%)", mv, progress*100))
	}
	return status + "  " + phaseStyle.Render("READY")
}
