package graphics

import (
	"github.com/chewxy/math32"

	"town-explorer/internal/input"
)

// Gesture is the change between two touch samples.
type Gesture struct {
	Pan   input.Vec2
	Pinch float32 // change in finger spread, pixels
	Twist float32 // change in finger angle, radians
}

// Diff compares the touch points of the previous and current frame. One finger pans;
// two fingers pan by their midpoint, pinch and twist. A change in finger count yields
// nothing so lifting a finger never jumps the camera.
func Diff(prev, cur []input.Vec2) Gesture {
	if len(prev) != len(cur) || len(cur) == 0 {
		return Gesture{}
	}
	if len(cur) == 1 {
		return Gesture{Pan: input.Vec2{X: cur[0].X - prev[0].X, Y: cur[0].Y - prev[0].Y}}
	}
	pm, cm := mid(prev[0], prev[1]), mid(cur[0], cur[1])
	return Gesture{
		Pan:   input.Vec2{X: cm.X - pm.X, Y: cm.Y - pm.Y},
		Pinch: spread(cur[0], cur[1]) - spread(prev[0], prev[1]),
		Twist: wrapAngle(angle(cur[0], cur[1]) - angle(prev[0], prev[1])),
	}
}

func mid(a, b input.Vec2) input.Vec2 {
	return input.Vec2{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

func spread(a, b input.Vec2) float32 {
	return math32.Hypot(b.X-a.X, b.Y-a.Y)
}

func angle(a, b input.Vec2) float32 {
	return math32.Atan2(b.Y-a.Y, b.X-a.X)
}

func wrapAngle(a float32) float32 {
	for a > math32.Pi {
		a -= 2 * math32.Pi
	}
	for a < -math32.Pi {
		a += 2 * math32.Pi
	}
	return a
}
