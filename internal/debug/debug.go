package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"

	"town-explorer/internal/camera"
)

const (
	fontSize   = 18
	padding    = 12
	lineHeight = fontSize + 4
	// refresh: text is rebuilt every N frames to keep allocations down.
	refresh = 30
)

// Stats is what the overlay reports for one frame.
type Stats struct {
	FPS      int32
	HeapMiB  float64
	Mode     camera.Mode
	Eye      rl.Vector3
	Hovered  string
	Selected string
}

// Debug draws runtime readouts in the top-left corner. Everything is off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowCamera   bool

	frames  uint32
	lines   []string
	mem     runtime.MemStats
	readMem func(*runtime.MemStats)
}

// New returns a Debug with all readouts hidden.
func New() *Debug {
	return &Debug{readMem: runtime.ReadMemStats}
}

// Enabled reports whether any readout is on.
func (d *Debug) Enabled() bool {
	return d.ShowFPS || d.ShowMemAlloc || d.ShowCamera
}

// Lines formats s according to which readouts are enabled.
func (d *Debug) Lines(s Stats) []string {
	var out []string
	if d.ShowFPS {
		out = append(out, fmt.Sprintf("FPS: %d", s.FPS))
	}
	if d.ShowMemAlloc {
		out = append(out, fmt.Sprintf("Mem: %.2f MiB", s.HeapMiB))
	}
	if d.ShowCamera {
		out = append(out,
			fmt.Sprintf("Camera: %s (%.1f, %.1f, %.1f)", s.Mode, s.Eye.X, s.Eye.Y, s.Eye.Z),
			fmt.Sprintf("Hover: %s  Selected: %s", orDash(s.Hovered), orDash(s.Selected)))
	}
	return out
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// Draw renders the enabled readouts. mode, eye and the ids come from the running viewer.
// Heap stats stop the world, so they are only read while the memory readout is on.
func (d *Debug) Draw(mode camera.Mode, eye rl.Vector3, hovered, selected string) {
	if !d.Enabled() {
		d.lines = nil
		return
	}
	d.frames++
	if d.frames%refresh == 1 || d.lines == nil {
		if d.ShowMemAlloc && d.readMem != nil {
			d.readMem(&d.mem)
		}
		d.lines = d.Lines(Stats{
			FPS:      rl.GetFPS(),
			HeapMiB:  float64(d.mem.Alloc) / (1024 * 1024),
			Mode:     mode,
			Eye:      eye,
			Hovered:  hovered,
			Selected: selected,
		})
	}
	for i, line := range d.lines {
		rl.DrawText(line, padding, int32(padding+i*lineHeight), fontSize, rl.Green)
	}
}
