package frame_test

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"town-explorer/internal/camera"
	"town-explorer/internal/frame"
	"town-explorer/internal/input"
)

type recorder struct {
	calls []string
	views []camera.View
	dts   []float32
}

type fakeDecor struct{ r *recorder }

func (d fakeDecor) Advance(dt float32) {
	d.r.calls = append(d.r.calls, "decor")
	d.r.dts = append(d.r.dts, dt)
}

type fakePicker struct{ r *recorder }

func (p fakePicker) Update(v camera.View, vp camera.Viewport, f input.Frame) {
	p.r.calls = append(p.r.calls, "pick")
	p.r.views = append(p.r.views, v)
}

func (p fakePicker) Select() { p.r.calls = append(p.r.calls, "select") }

func newScheduler(r *recorder, ctrl camera.Controller) *frame.Scheduler {
	return &frame.Scheduler{
		Controller: ctrl,
		Decor:      []frame.Decor{fakeDecor{r}},
		Picker:     fakePicker{r},
		Render: func(v camera.View) {
			r.calls = append(r.calls, "render")
			r.views = append(r.views, v)
		},
		Labels: func(v camera.View, vp camera.Viewport) {
			r.calls = append(r.calls, "labels")
			r.views = append(r.views, v)
		},
		EveryNFrames: 3,
	}
}

func TestTickOrderAndThrottle(t *testing.T) {
	r := &recorder{}
	s := newScheduler(r, camera.NewDesktop(camera.DefaultDesktopConfig()))
	vp := camera.Viewport{Width: 640, Height: 480}
	for i := 0; i < 4; i++ {
		s.Tick(input.Frame{}, 1.0/60, vp)
	}
	assert.Equal(t, []string{
		"decor", "pick", "render", "labels",
		"decor", "render", "labels",
		"decor", "render", "labels",
		"decor", "pick", "render", "labels",
	}, r.calls)
	assert.Equal(t, uint64(4), s.Frames())
}

func TestTickUsesSameFramePose(t *testing.T) {
	r := &recorder{}
	desk := camera.NewDesktop(camera.DefaultDesktopConfig())
	s := newScheduler(r, desk)
	f := input.Frame{Captured: true}
	f.Keys[input.KeyForward] = true

	v := s.Tick(f, 1.0/60, camera.Viewport{Width: 640, Height: 480})
	require.Len(t, r.views, 3)
	for _, got := range r.views {
		assert.Equal(t, v, got)
	}
	assert.Equal(t, desk.View(), v)
	assert.NotEqual(t, rl.NewVector3(0, 6, 70), v.Eye)
}

func TestClickForcesPickThenSelect(t *testing.T) {
	r := &recorder{}
	s := newScheduler(r, camera.NewOrbit(camera.DefaultOrbitConfig()))
	vp := camera.Viewport{Width: 640, Height: 480}
	s.Tick(input.Frame{}, 0.016, vp)
	r.calls = nil
	s.Tick(input.Frame{Clicked: true}, 0.016, vp)
	assert.Equal(t, []string{"decor", "pick", "select", "render", "labels"}, r.calls)
}

func TestTickClampsDelta(t *testing.T) {
	r := &recorder{}
	s := newScheduler(r, camera.NewOrbit(camera.DefaultOrbitConfig()))
	vp := camera.Viewport{Width: 640, Height: 480}
	s.Tick(input.Frame{}, 5, vp)
	s.Tick(input.Frame{}, -1, vp)
	s.MaxDelta = 0.5
	s.Tick(input.Frame{}, 0.3, vp)
	assert.Equal(t, []float32{frame.DefaultMaxDelta, 0, 0.3}, r.dts)
}
