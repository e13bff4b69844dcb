package graphics

import (
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// TouchCapable reports whether the device should use the touch controller.
// Desktop builds only count as touch devices once a touch point has been seen.
func TouchCapable() bool {
	return touchCapable(runtime.GOOS, rl.GetTouchPointCount())
}

func touchCapable(goos string, touches int32) bool {
	switch goos {
	case "android", "ios":
		return true
	}
	return touches > 0
}
