package input

// Key is a logical movement key. Device key codes are mapped to Keys by the platform poller.
type Key uint8

const (
	KeyForward Key = iota
	KeyBack
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeySprint
	keyCount
)

// KeySet is a fixed-size set of held keys.
type KeySet [keyCount]bool

// Has reports whether k is held.
func (s KeySet) Has(k Key) bool {
	return k < keyCount && s[k]
}

// Any reports whether any key is held.
func (s KeySet) Any() bool {
	for _, v := range s {
		if v {
			return true
		}
	}
	return false
}

// Vec2 is a 2D delta or position in pixels.
type Vec2 struct {
	X, Y float32
}

// Touch holds the multi-touch gesture deltas accumulated since the last frame.
// Pan is the single-finger drag in pixels, Pinch the change in finger spread in pixels
// (positive = fingers moving apart), Twist the change in two-finger angle in radians.
type Touch struct {
	Pan   Vec2
	Pinch float32
	Twist float32
}

// Active reports whether any gesture moved this frame.
func (t Touch) Active() bool {
	return t.Pan != (Vec2{}) || t.Pinch != 0 || t.Twist != 0
}

// Frame is the per-frame snapshot every consumer reads. It is a value; consumers cannot
// change the accumulating State through it.
type Frame struct {
	Keys         KeySet
	PointerDelta Vec2
	Pointer      Vec2
	Captured     bool
	Clicked      bool
	Touch        Touch
}
