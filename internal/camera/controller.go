package camera

import "town-explorer/internal/input"

// Mode names the active controller.
type Mode uint8

const (
	ModeDesktop Mode = iota
	ModeOrbit
)

func (m Mode) String() string {
	if m == ModeOrbit {
		return "orbit"
	}
	return "desktop"
}

// Controller is either *Desktop or *Orbit. Exactly one is created per session by Select;
// the unexported method keeps the set closed.
type Controller interface {
	Update(f input.Frame, dt float32)
	View() View
	Mode() Mode
	Focus(x, z float32)
	controller()
}

// Config holds the settings for both controllers.
type Config struct {
	Lens    Lens          `mapstructure:"lens"`
	Desktop DesktopConfig `mapstructure:"desktop"`
	Orbit   OrbitConfig   `mapstructure:"orbit"`
}

// DefaultConfig returns default lens and controller settings.
func DefaultConfig() Config {
	return Config{Lens: DefaultLens(), Desktop: DefaultDesktopConfig(), Orbit: DefaultOrbitConfig()}
}

// Select picks the controller for this session: orbit on touch-capable devices, first-person otherwise.
func Select(cfg Config, touchCapable bool) Controller {
	if touchCapable {
		return NewOrbit(cfg.Orbit)
	}
	return NewDesktop(cfg.Desktop)
}
