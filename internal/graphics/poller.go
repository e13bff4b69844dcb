package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"town-explorer/internal/input"
)

// bindings maps each logical key to the physical keys that drive it.
var bindings = [...]struct {
	key  input.Key
	keys []int32
}{
	{input.KeyForward, []int32{rl.KeyW, rl.KeyUp}},
	{input.KeyBack, []int32{rl.KeyS, rl.KeyDown}},
	{input.KeyLeft, []int32{rl.KeyA, rl.KeyLeft}},
	{input.KeyRight, []int32{rl.KeyD, rl.KeyRight}},
	{input.KeyUp, []int32{rl.KeySpace}},
	{input.KeyDown, []int32{rl.KeyC, rl.KeyLeftControl}},
	{input.KeySprint, []int32{rl.KeyLeftShift, rl.KeyRightShift}},
}

// Poller reads raylib's device state once per frame and feeds it into an input.State.
// With CaptureOnClick a click locks the pointer; losing window focus releases it.
type Poller struct {
	State          *input.State
	CaptureOnClick bool
	// Blocked, if set and true, suppresses keyboard and pointer input (e.g. console open).
	Blocked func() bool

	touches []input.Vec2
	prev    []input.Vec2
}

// NewPoller returns a poller feeding s.
func NewPoller(s *input.State, captureOnClick bool) *Poller {
	return &Poller{State: s, CaptureOnClick: captureOnClick}
}

// Release unlocks the pointer and tells the state capture is gone.
func (p *Poller) Release() {
	if p.State.Capture() == input.Captured {
		rl.EnableCursor()
	}
	p.State.SetCaptured(false)
}

// Poll samples keys, pointer and touch for this frame.
func (p *Poller) Poll() {
	if p.State.Capture() == input.Captured && !rl.IsWindowFocused() {
		p.Release()
	}
	blocked := p.Blocked != nil && p.Blocked()

	for _, b := range bindings {
		down := false
		for _, k := range b.keys {
			if rl.IsKeyDown(k) {
				down = true
				break
			}
		}
		if down && !blocked {
			p.State.Press(b.key)
		} else {
			p.State.Release(b.key)
		}
	}

	pos, delta := rl.GetMousePosition(), rl.GetMouseDelta()
	if blocked {
		delta = rl.Vector2{}
	}
	p.State.MovePointer(pos.X, pos.Y, delta.X, delta.Y)

	if !blocked && rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		p.State.Click()
		if p.CaptureOnClick && p.State.Capture() == input.Free {
			rl.DisableCursor()
			p.State.SetCaptured(true)
		}
	}

	p.pollTouch()
}

func (p *Poller) pollTouch() {
	p.prev, p.touches = p.touches, p.prev[:0]
	n := int(rl.GetTouchPointCount())
	for i := 0; i < n && i < 2; i++ {
		t := rl.GetTouchPosition(int32(i))
		p.touches = append(p.touches, input.Vec2{X: t.X, Y: t.Y})
	}
	g := Diff(p.prev, p.touches)
	if g.Pan != (input.Vec2{}) {
		p.State.Pan(g.Pan.X, g.Pan.Y)
	}
	if g.Pinch != 0 {
		p.State.Pinch(g.Pinch)
	}
	if g.Twist != 0 {
		p.State.Twist(g.Twist)
	}
}
