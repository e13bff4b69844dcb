package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"town-explorer/internal/camera"
	"town-explorer/internal/picking"
	"town-explorer/internal/primitives"
	"town-explorer/internal/scatter"
	"town-explorer/internal/world"
)

const (
	groundExtent  = 260
	gridExtent    = 120
	gridStep      = 10
	gridAlpha     = 60
	cloudCount    = 18
	cloudAltitude = 48
	cloudSeed     = 7
)

// prop is a scatter instance resolved to a mesh once at build time.
type prop struct {
	shape     primitives.Shape
	transform rl.Matrix
	color     rl.Color
}

// Scene owns the raylib camera and everything drawn in 3D: ground, buildings, props and clouds.
type Scene struct {
	Camera      rl.Camera3D
	GridVisible bool
	Clouds      *Clouds

	lens      camera.Lens
	palette   primitives.PaletteDef
	prims     *primitives.Registry
	hl        *picking.Highlighter
	entities  []*world.Entity
	instances []scatter.Instance
	parts     []Part
	props     []prop
}

// New builds the static town. Building parts are registered with reg for picking and each
// entity's baseline emissive is recorded in hl. Nothing touches the GPU until the first Draw.
func New(lens camera.Lens, palette primitives.PaletteDef, entities []*world.Entity, instances []scatter.Instance, reg *picking.Registry, hl *picking.Highlighter) *Scene {
	s := &Scene{
		lens:      lens,
		palette:   palette,
		prims:     primitives.NewRegistry(),
		hl:        hl,
		entities:  entities,
		instances: instances,
		Clouds:    NewClouds(cloudSeed, cloudCount, groundExtent, cloudAltitude),
	}
	for _, e := range entities {
		style := palette.Building(e.Record.Category)
		parts := BuildingParts(e, style)
		RegisterParts(parts, reg)
		hl.SetBaseline(e.ID, style.Emissive)
		s.parts = append(s.parts, parts...)
	}
	s.props = buildProps(palette, instances)
	return s
}

func buildProps(palette primitives.PaletteDef, instances []scatter.Instance) []prop {
	out := make([]prop, 0, len(instances))
	for _, in := range instances {
		style, ok := palette.Props[in.Kind]
		if !ok {
			continue
		}
		shape, err := primitives.ParseShape(style.Shape)
		if err != nil {
			continue
		}
		size := style.Size * float32(in.Scale)
		out = append(out, prop{
			shape: shape,
			transform: primitives.Transform(shape,
				rl.NewVector3(float32(in.X), size/2, float32(in.Z)),
				rl.NewVector3(size*0.6, size, size*0.6),
				float32(in.Rotation)),
			color: palette.PropColor(in.Kind, in.Variant),
		})
	}
	return out
}

// SetPalette recolors buildings and props and resets each entity's emissive baseline.
// Building geometry and pick bounds stay as built.
func (s *Scene) SetPalette(p primitives.PaletteDef) {
	s.palette = p
	i := 0
	for _, e := range s.entities {
		style := p.Building(e.Record.Category)
		s.rebase(e.ID, style.Emissive)
		for _, part := range BuildingParts(e, style) {
			if i < len(s.parts) {
				s.parts[i].Color = part.Color
			}
			i++
		}
	}
	s.props = buildProps(p, s.instances)
}

// rebase moves id's baseline to v, keeping a hover boost in place.
func (s *Scene) rebase(id string, v float32) {
	lit := s.hl.Emissive(id).Highlighted()
	s.hl.SetBaseline(id, v)
	if lit {
		s.hl.Highlight(id)
	}
}

// Sync copies the controller's pose into the raylib camera.
func (s *Scene) Sync(v camera.View) {
	s.Camera = v.Camera3D(s.lens)
}

// Advance drifts the clouds.
func (s *Scene) Advance(dt float32) {
	s.Clouds.Advance(dt)
}

// Sky is the clear color for the frame.
func (s *Scene) Sky() rl.Color {
	return primitives.ParseColor(s.palette.Sky)
}

// Draw clears to the sky color and renders the town from the last synced camera.
func (s *Scene) Draw() {
	rl.ClearBackground(s.Sky())
	eye := s.Camera.Position
	s.prims.SetView([3]float32{eye.X, eye.Y, eye.Z}, [3]float32{0.4, 1, 0.25})

	rl.BeginMode3D(s.Camera)
	s.prims.Draw(primitives.Plane, primitives.Transform(primitives.Plane, rl.Vector3{}, rl.NewVector3(groundExtent, 1, groundExtent), 0),
		primitives.ParseColor(s.palette.Ground), 0)
	if s.GridVisible {
		drawGrid()
	}
	for _, p := range s.parts {
		var glow float32
		if p.Owner != "" {
			glow = s.hl.Emissive(p.Owner).Current
		}
		s.prims.Draw(p.Shape, p.Transform, p.Color, glow)
	}
	for _, p := range s.props {
		s.prims.Draw(p.shape, p.transform, p.color, 0)
	}
	cloud := primitives.ParseColor(s.palette.Cloud)
	for _, c := range s.Clouds.Items {
		s.prims.Draw(primitives.Sphere, primitives.Transform(primitives.Sphere, c.Position, c.Size, 0), cloud, 0.4)
	}
	rl.EndMode3D()
}

// Unload frees GPU resources.
func (s *Scene) Unload() {
	s.prims.Unload()
}

// drawGrid draws a coarse layout grid on the ground, useful when placing plots.
func drawGrid() {
	c := rl.NewColor(40, 60, 30, gridAlpha)
	var a, b rl.Vector3
	for i := -gridExtent; i <= gridExtent; i += gridStep {
		a.X, a.Y, a.Z = float32(i), 0.05, -gridExtent
		b.X, b.Y, b.Z = float32(i), 0.05, gridExtent
		rl.DrawLine3D(a, b, c)
		a.X, a.Z = -gridExtent, float32(i)
		b.X, b.Z = gridExtent, float32(i)
		rl.DrawLine3D(a, b, c)
	}
}
