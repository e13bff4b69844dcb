package camera

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"town-explorer/internal/input"
)

// Pitch limits: looking down is allowed further than looking up.
const (
	MinPitch = -math32.Pi / 2.5
	MaxPitch = math32.Pi / 3
)

// DesktopConfig tunes first-person movement.
type DesktopConfig struct {
	LookSpeed        float32 `mapstructure:"lookSpeed"`        // radians per pixel of pointer motion
	WalkSpeed        float32 `mapstructure:"walkSpeed"`        // units per second
	SprintMultiplier float32 `mapstructure:"sprintMultiplier"` // applied while the sprint key is held
	Smoothing        float32 `mapstructure:"smoothing"`        // k in 1 - e^(-k*dt)
	StopEpsilon      float32 `mapstructure:"stopEpsilon"`      // speeds below this snap to zero once input stops
	EyeHeight        float32 `mapstructure:"eyeHeight"`        // altitude floor
	StartX           float32 `mapstructure:"startX"`
	StartY           float32 `mapstructure:"startY"`
	StartZ           float32 `mapstructure:"startZ"`
	StartYaw         float32 `mapstructure:"startYaw"`
	StartPitch       float32 `mapstructure:"startPitch"`
}

// DefaultDesktopConfig returns the walking defaults: start south of the square looking north.
func DefaultDesktopConfig() DesktopConfig {
	return DesktopConfig{
		LookSpeed:        0.002,
		WalkSpeed:        12,
		SprintMultiplier: 2.5,
		Smoothing:        10,
		StopEpsilon:      0.01,
		EyeHeight:        1.7,
		StartX:           0,
		StartY:           6,
		StartZ:           70,
		StartYaw:         0,
		StartPitch:       -0.08,
	}
}

// Pose is the desktop camera state. Velocity is used only for smoothing.
type Pose struct {
	Position rl.Vector3
	Yaw      float32
	Pitch    float32
	Velocity rl.Vector3
}

// Desktop is the first-person controller: pointer look while captured, keyboard movement with
// exponential velocity smoothing.
type Desktop struct {
	cfg  DesktopConfig
	pose Pose
}

// NewDesktop returns a desktop controller at the configured start pose.
func NewDesktop(cfg DesktopConfig) *Desktop {
	d := &Desktop{cfg: cfg}
	d.pose.Position = rl.NewVector3(cfg.StartX, math32.Max(cfg.StartY, cfg.EyeHeight), cfg.StartZ)
	d.pose.Yaw = cfg.StartYaw
	d.pose.Pitch = clampPitch(cfg.StartPitch)
	return d
}

func (*Desktop) controller() {}

// Mode returns ModeDesktop.
func (*Desktop) Mode() Mode { return ModeDesktop }

// Pose returns a copy of the current pose.
func (d *Desktop) Pose() Pose {
	return d.pose
}

// SetPose replaces the pose; pitch is clamped and the altitude floor applied.
func (d *Desktop) SetPose(p Pose) {
	p.Pitch = clampPitch(p.Pitch)
	if p.Position.Y < d.cfg.EyeHeight {
		p.Position.Y = d.cfg.EyeHeight
	}
	d.pose = p
}

// Update advances the pose by dt seconds.
func (d *Desktop) Update(f input.Frame, dt float32) {
	if dt < 0 {
		dt = 0
	}
	p := &d.pose

	if f.Captured {
		p.Yaw -= f.PointerDelta.X * d.cfg.LookSpeed
		p.Pitch = clampPitch(p.Pitch - f.PointerDelta.Y*d.cfg.LookSpeed)
	}

	forward, right := d.basis()
	target := d.desiredVelocity(f.Keys, forward, right)

	prev := p.Velocity
	alpha := 1 - math32.Exp(-d.cfg.Smoothing*dt)
	p.Velocity = rl.Vector3Lerp(p.Velocity, target, alpha)
	if target == (rl.Vector3{}) && rl.Vector3Length(p.Velocity) < d.cfg.StopEpsilon {
		p.Velocity = rl.Vector3{}
	}

	// Position advances by the mean of the old and new velocity (trapezoidal), not velocity*dt as
	// plain Euler would; the distance covered then barely depends on frame rate.
	avg := rl.Vector3Scale(rl.Vector3Add(prev, p.Velocity), 0.5)
	p.Position = rl.Vector3Add(p.Position, rl.Vector3Scale(avg, dt))
	if p.Position.Y < d.cfg.EyeHeight {
		p.Position.Y = d.cfg.EyeHeight
		if p.Velocity.Y < 0 {
			p.Velocity.Y = 0
		}
	}
}

// basis returns the horizontal forward and right unit vectors. Vertical look is removed so
// walking never changes altitude.
func (d *Desktop) basis() (forward, right rl.Vector3) {
	look := direction(d.pose.Yaw, d.pose.Pitch)
	look.Y = 0
	if rl.Vector3Length(look) < 1e-6 {
		look = direction(d.pose.Yaw, 0)
	}
	forward = rl.Vector3Normalize(look)
	right = rl.NewVector3(-forward.Z, 0, forward.X)
	return forward, right
}

func (d *Desktop) desiredVelocity(keys input.KeySet, forward, right rl.Vector3) rl.Vector3 {
	var dir rl.Vector3
	if keys.Has(input.KeyForward) {
		dir = rl.Vector3Add(dir, forward)
	}
	if keys.Has(input.KeyBack) {
		dir = rl.Vector3Subtract(dir, forward)
	}
	if keys.Has(input.KeyRight) {
		dir = rl.Vector3Add(dir, right)
	}
	if keys.Has(input.KeyLeft) {
		dir = rl.Vector3Subtract(dir, right)
	}
	if keys.Has(input.KeyUp) {
		dir.Y++
	}
	if keys.Has(input.KeyDown) {
		dir.Y--
	}
	if rl.Vector3Length(dir) < 1e-6 {
		return rl.Vector3{}
	}
	speed := d.cfg.WalkSpeed
	if keys.Has(input.KeySprint) {
		speed *= d.cfg.SprintMultiplier
	}
	return rl.Vector3Scale(rl.Vector3Normalize(dir), speed)
}

// View returns the eye and a look target one unit ahead.
func (d *Desktop) View() View {
	return View{
		Eye:    d.pose.Position,
		Target: rl.Vector3Add(d.pose.Position, direction(d.pose.Yaw, d.pose.Pitch)),
		Up:     rl.NewVector3(0, 1, 0),
	}
}

// Focus moves the camera to stand back from (x, z) and look at it.
func (d *Desktop) Focus(x, z float32) {
	const standOff = 22
	d.pose.Position = rl.NewVector3(x, math32.Max(8, d.cfg.EyeHeight), z+standOff)
	d.pose.Yaw = 0
	d.pose.Pitch = clampPitch(-math32.Atan2(8, standOff))
	d.pose.Velocity = rl.Vector3{}
}

func clampPitch(p float32) float32 {
	if p < MinPitch {
		return MinPitch
	}
	if p > MaxPitch {
		return MaxPitch
	}
	return p
}
