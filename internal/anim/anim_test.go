package anim

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/SeamusWaldron/cubeview/internal/cube"
)

type rotation struct {
	origin    mgl32.Vec3
	axis      cube.Axis
	clockwise bool
}

type recorder struct {
	calls []rotation
	err   error
}

func (r *recorder) RotateLayer(origin mgl32.Vec3, axis cube.Axis, clockwise bool) error {
	r.calls = append(r.calls, rotation{origin, axis, clockwise})
	return r.err
}

func TestNewControllerIsIdle(t *testing.T) {
	c := NewController(&recorder{})
	if c.Active() {
		t.Error("new controller should be idle")
	}
	if err := c.Tick(); err != nil {
		t.Errorf("idle tick: %v", err)
	}
}

func TestFullTurnTakesThirtyTicks(t *testing.T) {
	r := &recorder{}
	c := NewController(r)
	origin := mgl32.Vec3{0, 1.1, 0}

	if !c.Start(origin, cube.AxisY, true) {
		t.Fatal("Start on an idle controller should succeed")
	}

	for i := 1; i < 30; i++ {
		if err := c.Tick(); err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
		if !c.Active() {
			t.Fatalf("animation finished early at tick %d", i)
		}
		if got := c.Current().Angle; got != float32(i)*3 {
			t.Fatalf("tick %d: angle %v, want %v", i, got, float32(i)*3)
		}
	}
	if len(r.calls) != 0 {
		t.Fatalf("rotation committed before the animation finished")
	}

	if err := c.Tick(); err != nil {
		t.Fatalf("final tick: %v", err)
	}
	if c.Active() {
		t.Error("animation should be idle after 30 ticks")
	}
	if got := c.Current().Angle; got != 90 {
		t.Errorf("final angle %v, want 90", got)
	}
	if len(r.calls) != 1 {
		t.Fatalf("expected one commit, got %d", len(r.calls))
	}
	if want := (rotation{origin, cube.AxisY, true}); r.calls[0] != want {
		t.Errorf("committed %+v, want %+v", r.calls[0], want)
	}

	// Further ticks are no-ops
	for i := 0; i < 5; i++ {
		c.Tick()
	}
	if len(r.calls) != 1 {
		t.Errorf("idle ticks committed again: %d commits", len(r.calls))
	}
}

func TestAngleClampsToTarget(t *testing.T) {
	r := &recorder{}
	c := NewController(r, WithSpeed(7))
	c.Start(mgl32.Vec3{}, cube.AxisX, false)

	ticks := 0
	for c.Active() {
		c.Tick()
		ticks++
		if ticks > 100 {
			t.Fatal("animation never finished")
		}
	}
	if ticks != 13 {
		t.Errorf("expected 13 ticks at speed 7, got %d", ticks)
	}
	if got := c.Current().Angle; got != 90 {
		t.Errorf("angle %v should clamp to 90", got)
	}
	if len(r.calls) != 1 {
		t.Errorf("expected one commit, got %d", len(r.calls))
	}
}

func TestStartWhileRunningIsIgnored(t *testing.T) {
	r := &recorder{}
	c := NewController(r)
	origin := mgl32.Vec3{-1.1, 0, 0}
	c.Start(origin, cube.AxisX, true)
	c.Tick()
	c.Tick()
	before := c.Current()

	if c.Start(mgl32.Vec3{0, 0, 1.1}, cube.AxisZ, false) {
		t.Error("Start while running should report false")
	}
	if got := c.Current(); got != before {
		t.Errorf("Start while running changed the animation: %+v -> %+v", before, got)
	}

	for c.Active() {
		c.Tick()
	}
	if len(r.calls) != 1 || r.calls[0].axis != cube.AxisX {
		t.Errorf("expected only the first rotation committed, got %+v", r.calls)
	}
}

func TestSignedAngle(t *testing.T) {
	a := Animation{Angle: 30, Clockwise: true}
	if got := a.SignedAngle(); got != -30 {
		t.Errorf("clockwise signed angle %v, want -30", got)
	}
	a.Clockwise = false
	if got := a.SignedAngle(); got != 30 {
		t.Errorf("counter-clockwise signed angle %v, want 30", got)
	}
}

func TestCommitErrorIsReturned(t *testing.T) {
	wantErr := errors.New("boom")
	r := &recorder{err: wantErr}

	var completed []error
	c := NewController(r, WithSpeed(45), WithOnComplete(func(a Animation, err error) {
		completed = append(completed, err)
	}))
	c.Start(mgl32.Vec3{}, cube.AxisY, true)
	c.Tick()
	err := c.Tick()
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected commit error, got %v", err)
	}
	if c.Active() {
		t.Error("controller should be idle after a failed commit")
	}
	if len(completed) != 1 || !errors.Is(completed[0], wantErr) {
		t.Errorf("completion callback got %v", completed)
	}
}

func TestStopDoesNotCommit(t *testing.T) {
	r := &recorder{}
	c := NewController(r)
	c.Start(mgl32.Vec3{}, cube.AxisZ, true)
	c.Tick()
	c.Stop()
	if c.Active() {
		t.Error("Stop should make the controller idle")
	}
	for i := 0; i < 40; i++ {
		c.Tick()
	}
	if len(r.calls) != 0 {
		t.Errorf("stopped animation committed %d rotations", len(r.calls))
	}
	if !c.Start(mgl32.Vec3{}, cube.AxisZ, true) {
		t.Error("Start after Stop should succeed")
	}
}

func TestDrivesRealCube(t *testing.T) {
	cb := cube.MustNew()
	c := NewController(cb)
	origin, axis, _ := cb.LayerOrigin(cube.LayerTop)
	c.Start(origin, axis, true)
	for c.Active() {
		if err := c.Tick(); err != nil {
			t.Fatal(err)
		}
	}
	if err := cb.Check(); err != nil {
		t.Error(err)
	}
	if got := cb.Sticker(cube.Front, 0, 0); got != cube.Orange {
		t.Errorf("front top-left after top cw: %s, want O", got)
	}
}
