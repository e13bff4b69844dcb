package labels

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"town-explorer/internal/camera"
	"town-explorer/internal/world"
)

// Config controls label culling and fading. Distances are world units from the eye to the anchor.
type Config struct {
	Near       float32 `mapstructure:"near"`       // fully opaque up to here
	Far        float32 `mapstructure:"far"`        // MinOpacity from here on
	Cutoff     float32 `mapstructure:"cutoff"`     // hidden beyond this
	MinOpacity float32 `mapstructure:"minOpacity"` // floor of the fade
}

// DefaultConfig returns the label defaults.
func DefaultConfig() Config {
	return Config{Near: 35, Far: 110, Cutoff: 140, MinOpacity: 0.25}
}

// Label is the screen placement of one entity's anchor.
type Label struct {
	ID       string
	X, Y     float32
	Visible  bool
	Opacity  float32
	Distance float32
}

// Projector maps entity anchors to screen positions. The output slice is reused between frames.
type Projector struct {
	cfg  Config
	lens camera.Lens
	out  []Label
}

// New returns a projector.
func New(cfg Config, lens camera.Lens) *Projector {
	return &Projector{cfg: cfg, lens: lens}
}

// Project computes a Label for every entity, in entity order. The returned slice is only valid
// until the next call.
func (p *Projector) Project(v camera.View, vp camera.Viewport, entities []*world.Entity) []Label {
	p.out = p.out[:0]
	for _, e := range entities {
		p.out = append(p.out, p.label(v, vp, e))
	}
	return p.out
}

func (p *Projector) label(v camera.View, vp camera.Viewport, e *world.Entity) Label {
	anchor := e.AnchorWorld()
	l := Label{ID: e.ID, Distance: rl.Vector3Distance(v.Eye, anchor)}
	// Distance is checked in world space; projected depth is distorted near the near plane.
	if l.Distance > p.cfg.Cutoff {
		return l
	}
	pr := camera.WorldToScreen(anchor, v, p.lens, vp)
	if pr.Behind() {
		return l
	}
	l.X, l.Y = pr.X, pr.Y
	l.Visible = true
	l.Opacity = p.Opacity(l.Distance)
	return l
}

// Opacity returns the fade for distance d: 1 up to Near, falling linearly to MinOpacity at Far.
func (p *Projector) Opacity(d float32) float32 {
	c := p.cfg
	if d <= c.Near {
		return 1
	}
	if d >= c.Far || c.Far <= c.Near {
		return c.MinOpacity
	}
	t := (d - c.Near) / (c.Far - c.Near)
	o := 1 - t
	if o < c.MinOpacity {
		return c.MinOpacity
	}
	return o
}
