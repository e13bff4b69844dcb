package graphics

import (
	"errors"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ErrNoRenderTarget is returned when the window or its GL context cannot be created.
var ErrNoRenderTarget = errors.New("graphics: no render target")

// Window describes the window to open. Zero Width or Height uses the primary monitor's size.
type Window struct {
	Width      int
	Height     int
	Title      string
	TargetFPS  int
	Fullscreen bool
}

// Open creates the window. Call Close when done, including after an error.
func Open(w Window) error {
	flags := uint32(rl.FlagWindowResizable | rl.FlagMsaa4xHint | rl.FlagVsyncHint)
	if w.Fullscreen {
		flags |= rl.FlagFullscreenMode
	}
	rl.SetConfigFlags(flags)
	rl.SetTraceLogLevel(rl.LogWarning)
	width, height := w.Width, w.Height
	if width <= 0 || height <= 0 {
		width, height = rl.GetMonitorWidth(0), rl.GetMonitorHeight(0)
	}
	rl.InitWindow(int32(width), int32(height), w.Title)
	if !rl.IsWindowReady() {
		return ErrNoRenderTarget
	}
	// ESC opens the console; the window closes through its close button.
	rl.SetExitKey(rl.KeyNull)
	if w.TargetFPS > 0 {
		rl.SetTargetFPS(int32(w.TargetFPS))
	}
	return nil
}

// Close destroys the window if it was created.
func Close() {
	if rl.IsWindowReady() {
		rl.CloseWindow()
	}
}

// Run drives the frame loop until the window is closed. update receives the frame time in
// seconds; draw runs between BeginDrawing and EndDrawing and must clear the background itself.
func Run(update func(dt float32), draw func()) error {
	if !rl.IsWindowReady() {
		return ErrNoRenderTarget
	}
	for !rl.WindowShouldClose() {
		update(rl.GetFrameTime())
		rl.BeginDrawing()
		draw()
		rl.EndDrawing()
	}
	return nil
}

// ScreenSize is the drawable size in pixels.
func ScreenSize() (w, h float32) {
	return float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
}
