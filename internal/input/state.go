package input

// Capture is the pointer-capture mode.
type Capture uint8

const (
	// Free: the pointer moves a cursor; hover follows the cursor.
	Free Capture = iota
	// Captured: pointer motion turns the camera; hover follows the screen center.
	Captured
)

func (c Capture) String() string {
	if c == Captured {
		return "captured"
	}
	return "free"
}

// State accumulates raw device signals between frames. Platform code calls the event methods
// as signals arrive; the frame loop calls Frame once per frame.
type State struct {
	keys    KeySet
	capture Capture

	pointer      Vec2
	pointerDelta Vec2
	clicked      bool
	touch        Touch

	// OnCaptureChange, if set, is called after every capture transition.
	OnCaptureChange func(from, to Capture)
}

// New returns a State in Free mode with nothing held.
func New() *State {
	return &State{}
}

// Press marks k as held.
func (s *State) Press(k Key) {
	if k < keyCount {
		s.keys[k] = true
	}
}

// Release marks k as released.
func (s *State) Release(k Key) {
	if k < keyCount {
		s.keys[k] = false
	}
}

// Held reports whether k is currently held.
func (s *State) Held(k Key) bool {
	return s.keys.Has(k)
}

// MovePointer records the absolute pointer position and accumulates the motion delta.
func (s *State) MovePointer(x, y, dx, dy float32) {
	s.pointer = Vec2{X: x, Y: y}
	s.pointerDelta.X += dx
	s.pointerDelta.Y += dy
}

// Click records a primary-button press this frame.
func (s *State) Click() {
	s.clicked = true
}

// Pan accumulates a single-finger drag.
func (s *State) Pan(dx, dy float32) {
	s.touch.Pan.X += dx
	s.touch.Pan.Y += dy
}

// Pinch accumulates a change in two-finger spread.
func (s *State) Pinch(d float32) {
	s.touch.Pinch += d
}

// Twist accumulates a change in two-finger angle.
func (s *State) Twist(d float32) {
	s.touch.Twist += d
}

// Capture returns the current capture mode.
func (s *State) Capture() Capture {
	return s.capture
}

// SetCaptured applies a capture change notification.
//
// Free -> Captured has no side effect. Captured -> Free clears every held key: the release
// events for keys held at that moment may never arrive (focus loss, console opened), and
// movement must not stay stuck down. Repeated notifications of the same mode are ignored.
func (s *State) SetCaptured(captured bool) {
	to := Free
	if captured {
		to = Captured
	}
	from := s.capture
	if from == to {
		return
	}
	s.capture = to
	if from == Captured && to == Free {
		s.keys = KeySet{}
		s.pointerDelta = Vec2{}
	}
	if s.OnCaptureChange != nil {
		s.OnCaptureChange(from, to)
	}
}

// Frame returns the snapshot for this frame and resets the per-frame accumulators
// (pointer delta, click, touch). Held keys and capture mode persist.
func (s *State) Frame() Frame {
	f := Frame{
		Keys:         s.keys,
		PointerDelta: s.pointerDelta,
		Pointer:      s.pointer,
		Captured:     s.capture == Captured,
		Clicked:      s.clicked,
		Touch:        s.touch,
	}
	s.pointerDelta = Vec2{}
	s.clicked = false
	s.touch = Touch{}
	return f
}
