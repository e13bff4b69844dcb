package frame

import (
	"town-explorer/internal/camera"
	"town-explorer/internal/input"
)

// DefaultMaxDelta caps a single step (seconds) so a stalled frame does not fling the camera.
const DefaultMaxDelta = 0.1

// Decor is a continuously animated decoration (e.g. drifting clouds).
type Decor interface {
	Advance(dt float32)
}

// Picker resolves hover against the camera pose of the current frame.
type Picker interface {
	Update(v camera.View, vp camera.Viewport, f input.Frame)
	Select()
}

// Scheduler runs one frame in a fixed order: camera, decor, picking, render, labels.
// Picking and labels read the pose produced by the same frame's camera update.
type Scheduler struct {
	Controller camera.Controller
	Decor      []Decor
	Picker     Picker
	Render     func(v camera.View)
	Labels     func(v camera.View, vp camera.Viewport)

	// EveryNFrames is the picking cadence; values below 1 pick every frame.
	EveryNFrames int
	// MaxDelta caps dt; zero uses DefaultMaxDelta.
	MaxDelta float32

	frame uint64
}

// Frames returns the number of completed ticks.
func (s *Scheduler) Frames() uint64 {
	return s.frame
}

// Tick advances one frame by dt seconds and returns the pose used for it.
// Picking runs on every EveryNFrames-th frame, and on any frame with a click so the selection
// uses the current hover.
func (s *Scheduler) Tick(f input.Frame, dt float32, vp camera.Viewport) camera.View {
	dt = s.clamp(dt)

	s.Controller.Update(f, dt)
	v := s.Controller.View()

	for _, d := range s.Decor {
		d.Advance(dt)
	}

	if s.Picker != nil {
		n := uint64(1)
		if s.EveryNFrames > 1 {
			n = uint64(s.EveryNFrames)
		}
		if s.frame%n == 0 || f.Clicked {
			s.Picker.Update(v, vp, f)
		}
		if f.Clicked {
			s.Picker.Select()
		}
	}

	if s.Render != nil {
		s.Render(v)
	}
	if s.Labels != nil {
		s.Labels(v, vp)
	}
	s.frame++
	return v
}

func (s *Scheduler) clamp(dt float32) float32 {
	limit := s.MaxDelta
	if limit <= 0 {
		limit = DefaultMaxDelta
	}
	if dt < 0 {
		return 0
	}
	if dt > limit {
		return limit
	}
	return dt
}
