package input_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"town-explorer/internal/input"
)

func TestCaptureLossReleasesKeys(t *testing.T) {
	s := input.New()
	s.SetCaptured(true)
	s.Press(input.KeyForward)
	s.Press(input.KeyLeft)
	s.Press(input.KeySprint)
	assert.True(t, s.Frame().Keys.Any())

	s.SetCaptured(false)
	f := s.Frame()
	assert.False(t, f.Keys.Any())
	assert.False(t, f.Captured)
	for k := input.KeyForward; k <= input.KeySprint; k++ {
		assert.False(t, s.Held(k))
	}
}

func TestCaptureAcquireKeepsKeys(t *testing.T) {
	s := input.New()
	s.Press(input.KeyBack)
	s.SetCaptured(true)
	assert.True(t, s.Frame().Keys.Has(input.KeyBack))
}

func TestCaptureTransitionsNotify(t *testing.T) {
	s := input.New()
	var seen [][2]input.Capture
	s.OnCaptureChange = func(from, to input.Capture) {
		seen = append(seen, [2]input.Capture{from, to})
	}
	s.SetCaptured(true)
	s.SetCaptured(true)
	s.SetCaptured(false)
	s.SetCaptured(false)
	assert.Equal(t, [][2]input.Capture{{input.Free, input.Captured}, {input.Captured, input.Free}}, seen)
	assert.Equal(t, "free", s.Capture().String())
}

func TestFrameResetsAccumulators(t *testing.T) {
	s := input.New()
	s.MovePointer(10, 20, 3, -1)
	s.MovePointer(12, 19, 2, -1)
	s.Click()
	s.Pan(4, 5)
	s.Pinch(-8)
	s.Twist(0.25)

	f := s.Frame()
	assert.Equal(t, input.Vec2{X: 5, Y: -2}, f.PointerDelta)
	assert.Equal(t, input.Vec2{X: 12, Y: 19}, f.Pointer)
	assert.True(t, f.Clicked)
	assert.True(t, f.Touch.Active())
	assert.Equal(t, float32(-8), f.Touch.Pinch)

	next := s.Frame()
	assert.Equal(t, input.Vec2{}, next.PointerDelta)
	assert.Equal(t, input.Vec2{X: 12, Y: 19}, next.Pointer)
	assert.False(t, next.Clicked)
	assert.False(t, next.Touch.Active())
}

func TestReleaseAndBounds(t *testing.T) {
	s := input.New()
	s.Press(input.KeyUp)
	s.Release(input.KeyUp)
	assert.False(t, s.Held(input.KeyUp))
	s.Press(input.Key(200))
	assert.False(t, s.Held(input.Key(200)))
}
