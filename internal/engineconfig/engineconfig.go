package engineconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"

	"town-explorer/internal/camera"
	"town-explorer/internal/labels"
	"town-explorer/internal/picking"
	"town-explorer/internal/scatter"
	"town-explorer/internal/world"
)

// DefaultPath is the config file looked up when no --config flag is given.
const DefaultPath = "config/engine.yaml"

// EnvPrefix prefixes environment overrides, e.g. TOWN_DATA_ENTITIES.
const EnvPrefix = "TOWN"

// Config is the root configuration.
type Config struct {
	Window  WindowConfig   `mapstructure:"window"`
	Data    DataConfig     `mapstructure:"data"`
	Camera  camera.Config  `mapstructure:",squash"`
	Picking picking.Config `mapstructure:"picking"`
	Labels  LabelsConfig   `mapstructure:"labels"`
	Scatter ScatterConfig  `mapstructure:"scatter"`
	Log     LogConfig      `mapstructure:"log"`
	Mobile  MobileConfig   `mapstructure:"mobile"`
	Debug   DebugConfig    `mapstructure:"debug"`
}

// WindowConfig sizes the window. Zero width or height means the primary monitor's size.
type WindowConfig struct {
	Width      int    `mapstructure:"width"`
	Height     int    `mapstructure:"height"`
	Title      string `mapstructure:"title"`
	TargetFPS  int    `mapstructure:"targetFPS"`
	Fullscreen bool   `mapstructure:"fullscreen"`
	Font       string `mapstructure:"font"` // family under assets/fonts; empty uses raylib's font
}

// DataConfig locates the entity list and the palette.
type DataConfig struct {
	Entities      string        `mapstructure:"entities"` // file path or http(s) URL
	FetchAttempts uint          `mapstructure:"fetchAttempts"`
	FetchDelay    time.Duration `mapstructure:"fetchDelay"`
	FetchTimeout  time.Duration `mapstructure:"fetchTimeout"`
	Palette       string        `mapstructure:"palette"`
	WatchPalette  bool          `mapstructure:"watchPalette"`
}

// Fetch returns the retry settings for world.LoadRecords.
func (d DataConfig) Fetch() world.FetchOptions {
	return world.FetchOptions{Attempts: d.FetchAttempts, Delay: d.FetchDelay, Timeout: d.FetchTimeout}
}

// LabelsConfig adds an on/off switch to the projector settings.
type LabelsConfig struct {
	labels.Config `mapstructure:",squash"`
	Enabled       bool `mapstructure:"enabled"`
}

// ScatterPass is one decoration pass as written in the config file.
type ScatterPass struct {
	Kind         string  `mapstructure:"kind"`
	Seed         int64   `mapstructure:"seed"`
	Count        int     `mapstructure:"count"`
	CenterX      float64 `mapstructure:"centerX"`
	CenterZ      float64 `mapstructure:"centerZ"`
	Width        float64 `mapstructure:"width"`
	Depth        float64 `mapstructure:"depth"`
	CenterRadius float64 `mapstructure:"centerRadius"`
	PlotRadius   float64 `mapstructure:"plotRadius"`
	MinScale     float64 `mapstructure:"minScale"`
	MaxScale     float64 `mapstructure:"maxScale"`
	Variants     int     `mapstructure:"variants"`
}

// Options converts the pass into planner options excluding the given plots.
func (p ScatterPass) Options(occupied []scatter.Point) scatter.Options {
	return scatter.Options{
		Kind:         p.Kind,
		Seed:         p.Seed,
		Count:        p.Count,
		Center:       scatter.Point{X: p.CenterX, Z: p.CenterZ},
		Width:        p.Width,
		Depth:        p.Depth,
		CenterRadius: p.CenterRadius,
		PlotRadius:   p.PlotRadius,
		Occupied:     occupied,
		MinScale:     p.MinScale,
		MaxScale:     p.MaxScale,
		Variants:     p.Variants,
	}
}

// ScatterConfig lists the decoration passes, run in order.
type ScatterConfig struct {
	Passes []ScatterPass `mapstructure:"passes"`
}

// Options converts every pass.
func (s ScatterConfig) Options(occupied []scatter.Point) []scatter.Options {
	out := make([]scatter.Options, len(s.Passes))
	for i, p := range s.Passes {
		out[i] = p.Options(occupied)
	}
	return out
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Path  string `mapstructure:"path"`
	Level string `mapstructure:"level"`
}

// MobileConfig forces the touch controller on devices that do not report touch support.
type MobileConfig struct {
	Force bool `mapstructure:"force"`
}

// DebugConfig sets the initial state of the debug overlays.
type DebugConfig struct {
	ShowFPS      bool `mapstructure:"showFPS"`
	ShowMemAlloc bool `mapstructure:"showMemAlloc"`
	ShowCamera   bool `mapstructure:"showCamera"`
	Grid         bool `mapstructure:"grid"`
}

// DefaultPasses are the four decoration passes of the town: flowers in the countryside, grass
// in the village, trees and rocks around the edges.
func DefaultPasses() []ScatterPass {
	return []ScatterPass{
		{Kind: "flower", Seed: 42, Count: 600, Width: 250, Depth: 250, CenterRadius: 48, PlotRadius: 6, MinScale: 0.6, MaxScale: 1.4, Variants: 3},
		{Kind: "grass", Seed: 1337, Count: 400, Width: 100, Depth: 100, PlotRadius: 6, MinScale: 0.8, MaxScale: 1.6, Variants: 2},
		{Kind: "tree", Seed: 2024, Count: 140, Width: 240, Depth: 240, CenterRadius: 56, PlotRadius: 9, MinScale: 0.8, MaxScale: 1.8, Variants: 3},
		{Kind: "rock", Seed: 7, Count: 80, Width: 240, Depth: 240, CenterRadius: 50, PlotRadius: 7, MinScale: 0.5, MaxScale: 1.5, Variants: 2},
	}
}

// Default returns the built-in configuration; Load starts from the same values.
func Default() *Config {
	cfg, err := decode(newViper())
	if err != nil {
		panic(fmt.Sprintf("engineconfig: defaults do not decode: %v", err))
	}
	return cfg
}

// Load reads configuration from path (DefaultPath when empty) and the environment.
// A missing file is not an error; the defaults apply.
func Load(path string) (*Config, error) {
	v := newViper()
	if path == "" {
		path = DefaultPath
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !isNotExist(err) {
			return nil, fmt.Errorf("engineconfig: read %s: %w", path, err)
		}
	}
	return decode(v)
}

// isNotExist reports a missing explicit config file; viper only returns
// ConfigFileNotFoundError when searching config paths.
func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

func decode(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("engineconfig: %w", err)
	}
	if len(cfg.Scatter.Passes) == 0 {
		cfg.Scatter.Passes = DefaultPasses()
	}
	return cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 800)
	v.SetDefault("window.title", "Town Explorer")
	v.SetDefault("window.targetFPS", 60)
	v.SetDefault("window.fullscreen", false)
	v.SetDefault("window.font", "")

	fetch := world.DefaultFetchOptions()
	v.SetDefault("data.entities", "data/buildings.json")
	v.SetDefault("data.fetchAttempts", fetch.Attempts)
	v.SetDefault("data.fetchDelay", fetch.Delay)
	v.SetDefault("data.fetchTimeout", fetch.Timeout)
	v.SetDefault("data.palette", "assets/primitives/palette.yaml")
	v.SetDefault("data.watchPalette", false)

	lens := camera.DefaultLens()
	v.SetDefault("lens.fovY", lens.FovY)
	v.SetDefault("lens.near", lens.Near)
	v.SetDefault("lens.far", lens.Far)

	d := camera.DefaultDesktopConfig()
	v.SetDefault("desktop.lookSpeed", d.LookSpeed)
	v.SetDefault("desktop.walkSpeed", d.WalkSpeed)
	v.SetDefault("desktop.sprintMultiplier", d.SprintMultiplier)
	v.SetDefault("desktop.smoothing", d.Smoothing)
	v.SetDefault("desktop.stopEpsilon", d.StopEpsilon)
	v.SetDefault("desktop.eyeHeight", d.EyeHeight)
	v.SetDefault("desktop.startX", d.StartX)
	v.SetDefault("desktop.startY", d.StartY)
	v.SetDefault("desktop.startZ", d.StartZ)
	v.SetDefault("desktop.startYaw", d.StartYaw)
	v.SetDefault("desktop.startPitch", d.StartPitch)

	o := camera.DefaultOrbitConfig()
	v.SetDefault("orbit.radius", o.Radius)
	v.SetDefault("orbit.minRadius", o.MinRadius)
	v.SetDefault("orbit.maxRadius", o.MaxRadius)
	v.SetDefault("orbit.height", o.Height)
	v.SetDefault("orbit.lookHeight", o.LookHeight)
	v.SetDefault("orbit.startAngle", o.StartAngle)
	v.SetDefault("orbit.autoSpeed", o.AutoSpeed)
	v.SetDefault("orbit.idleResume", o.IdleResume)
	v.SetDefault("orbit.rampWindow", o.RampWindow)
	v.SetDefault("orbit.panSpeed", o.PanSpeed)
	v.SetDefault("orbit.pinchSpeed", o.PinchSpeed)
	v.SetDefault("orbit.panLimit", o.PanLimit)

	p := picking.DefaultConfig()
	v.SetDefault("picking.maxDistance", p.MaxDistance)
	v.SetDefault("picking.everyNFrames", p.EveryNFrames)
	v.SetDefault("picking.highlightDelta", p.HighlightDelta)

	l := labels.DefaultConfig()
	v.SetDefault("labels.enabled", true)
	v.SetDefault("labels.near", l.Near)
	v.SetDefault("labels.far", l.Far)
	v.SetDefault("labels.cutoff", l.Cutoff)
	v.SetDefault("labels.minOpacity", l.MinOpacity)

	v.SetDefault("log.path", "logs/town.log")
	v.SetDefault("log.level", "info")

	v.SetDefault("mobile.force", false)

	v.SetDefault("debug.showFPS", false)
	v.SetDefault("debug.showMemAlloc", false)
	v.SetDefault("debug.showCamera", false)
	v.SetDefault("debug.grid", false)
}
