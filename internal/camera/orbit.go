package camera

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"town-explorer/internal/input"
)

// OrbitConfig tunes the touch orbit camera.
type OrbitConfig struct {
	Radius     float32 `mapstructure:"radius"`
	MinRadius  float32 `mapstructure:"minRadius"`
	MaxRadius  float32 `mapstructure:"maxRadius"`
	Height     float32 `mapstructure:"height"`
	LookHeight float32 `mapstructure:"lookHeight"` // look target sits this far above the center
	StartAngle float32 `mapstructure:"startAngle"`
	AutoSpeed  float32 `mapstructure:"autoSpeed"`  // radians per second once idle
	IdleResume float32 `mapstructure:"idleResume"` // seconds without gestures before auto-rotation resumes
	RampWindow float32 `mapstructure:"rampWindow"` // seconds to ramp auto-rotation from 0 to full speed
	PanSpeed   float32 `mapstructure:"panSpeed"`   // world units per pixel per unit of radius
	PinchSpeed float32 `mapstructure:"pinchSpeed"` // radius units per pixel of spread
	PanLimit   float32 `mapstructure:"panLimit"`   // max distance of the center from the origin
}

// DefaultOrbitConfig returns the mobile defaults.
func DefaultOrbitConfig() OrbitConfig {
	return OrbitConfig{
		Radius:     95,
		MinRadius:  35,
		MaxRadius:  170,
		Height:     55,
		LookHeight: 4,
		StartAngle: math32.Pi / 2,
		AutoSpeed:  0.08,
		IdleResume: 4,
		RampWindow: 1.5,
		PanSpeed:   0.0025,
		PinchSpeed: 0.25,
		PanLimit:   90,
	}
}

// OrbitState is the orbit camera state. Times are seconds on the controller's own clock.
type OrbitState struct {
	CenterX         float32
	CenterZ         float32
	Radius          float32
	Height          float32
	Angle           float32
	LastInteraction float32
}

// Orbit circles a center point. Gestures pan, zoom and rotate; after a quiet period it resumes
// rotating on its own, easing in over RampWindow.
type Orbit struct {
	cfg   OrbitConfig
	state OrbitState
	clock float32
}

// NewOrbit returns an orbit controller already rotating at full speed.
func NewOrbit(cfg OrbitConfig) *Orbit {
	o := &Orbit{cfg: cfg}
	o.state = OrbitState{
		Radius:          clamp(cfg.Radius, cfg.MinRadius, cfg.MaxRadius),
		Height:          cfg.Height,
		Angle:           cfg.StartAngle,
		LastInteraction: -(cfg.IdleResume + cfg.RampWindow),
	}
	return o
}

func (*Orbit) controller() {}

// Mode returns ModeOrbit.
func (*Orbit) Mode() Mode { return ModeOrbit }

// State returns a copy of the orbit state.
func (o *Orbit) State() OrbitState {
	return o.state
}

// AutoFactor returns the current auto-rotation factor in [0,1].
func (o *Orbit) AutoFactor() float32 {
	idle := o.clock - o.state.LastInteraction
	if idle < o.cfg.IdleResume {
		return 0
	}
	if o.cfg.RampWindow <= 0 {
		return 1
	}
	return clamp((idle-o.cfg.IdleResume)/o.cfg.RampWindow, 0, 1)
}

// Update applies this frame's gestures and advances auto-rotation by dt seconds.
func (o *Orbit) Update(f input.Frame, dt float32) {
	if dt < 0 {
		dt = 0
	}
	o.clock += dt
	s := &o.state

	t := f.Touch
	if t.Active() {
		s.LastInteraction = o.clock
		if t.Pan != (input.Vec2{}) {
			o.pan(t.Pan)
		}
		if t.Pinch != 0 {
			s.Radius = clamp(s.Radius-t.Pinch*o.cfg.PinchSpeed, o.cfg.MinRadius, o.cfg.MaxRadius)
		}
		if t.Twist != 0 {
			s.Angle += t.Twist
		}
	}

	s.Angle += o.cfg.AutoSpeed * o.AutoFactor() * dt
}

// pan moves the center opposite to the finger, relative to the current view direction.
func (o *Orbit) pan(d input.Vec2) {
	s := &o.state
	scale := o.cfg.PanSpeed * s.Radius
	sin, cos := math32.Sincos(s.Angle)
	// Horizontal forward points from the eye toward the center; right is forward turned -90 degrees.
	fx, fz := -cos, -sin
	rx, rz := -fz, fx
	s.CenterX += -rx*d.X*scale + fx*d.Y*scale
	s.CenterZ += -rz*d.X*scale + fz*d.Y*scale

	if o.cfg.PanLimit > 0 {
		dist := math32.Hypot(s.CenterX, s.CenterZ)
		if dist > o.cfg.PanLimit {
			k := o.cfg.PanLimit / dist
			s.CenterX *= k
			s.CenterZ *= k
		}
	}
}

// View places the eye on the orbit circle and looks slightly above the center.
func (o *Orbit) View() View {
	s := o.state
	sin, cos := math32.Sincos(s.Angle)
	return View{
		Eye:    rl.NewVector3(s.CenterX+s.Radius*cos, s.Height, s.CenterZ+s.Radius*sin),
		Target: rl.NewVector3(s.CenterX, o.cfg.LookHeight, s.CenterZ),
		Up:     rl.NewVector3(0, 1, 0),
	}
}

// Focus recenters the orbit on (x, z) and counts as an interaction.
func (o *Orbit) Focus(x, z float32) {
	o.state.CenterX = x
	o.state.CenterZ = z
	o.state.Radius = clamp(o.cfg.MinRadius*1.5, o.cfg.MinRadius, o.cfg.MaxRadius)
	o.state.LastInteraction = o.clock
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
