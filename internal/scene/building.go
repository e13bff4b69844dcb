package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"town-explorer/internal/picking"
	"town-explorer/internal/primitives"
	"town-explorer/internal/world"
)

// Part is one mesh of a building, already placed in world space.
// Owner is empty for decoration that picking must ignore.
type Part struct {
	Owner     string
	Shape     primitives.Shape
	Transform rl.Matrix
	Color     rl.Color
}

var (
	doorColor  = rl.NewColor(92, 64, 44, 255)
	pathColor  = rl.NewColor(196, 184, 160, 255)
	frameColor = rl.NewColor(240, 236, 228, 255)
)

// local is a part described in the entity's own frame (door faces +Z).
type local struct {
	shape  primitives.Shape
	center rl.Vector3
	size   rl.Vector3
	color  rl.Color
	tagged bool
}

func layout(style primitives.BuildingStyle) []local {
	w, d, h := style.Size[0], style.Size[1], style.Size[2]
	roof := style.RoofHeight
	if roof <= 0 {
		roof = 2
	}
	return []local{
		{primitives.Cube, rl.NewVector3(0, h/2, 0), rl.NewVector3(w, h, d), primitives.ParseColor(style.Body), true},
		{primitives.Cone, rl.NewVector3(0, h+roof/2, 0), rl.NewVector3(w*1.2, roof, d*1.2), primitives.ParseColor(style.Roof), true},
		{primitives.Cube, rl.NewVector3(0, 1.1, d/2+0.05), rl.NewVector3(1.4, 2.2, 0.2), doorColor, true},
		{primitives.Cube, rl.NewVector3(0, 2.35, d/2+0.08), rl.NewVector3(1.8, 0.3, 0.2), frameColor, false},
		{primitives.Plane, rl.NewVector3(0, 0.02, d/2+2.5), rl.NewVector3(2, 1, 4), pathColor, false},
	}
}

// BuildingParts lays out an entity's meshes. Walls, roof and door belong to the entity; the door
// frame and the front path are untagged so they never resolve to an entity.
func BuildingParts(e *world.Entity, style primitives.BuildingStyle) []Part {
	root := e.Transform()
	parts := make([]Part, 0, 5)
	for _, l := range layout(style) {
		p := Part{
			Shape:     l.shape,
			Transform: rl.MatrixMultiply(primitives.Transform(l.shape, l.center, l.size, 0), root),
			Color:     l.color,
		}
		if l.tagged {
			p.Owner = e.ID
		}
		parts = append(parts, p)
	}
	return parts
}

// RegisterParts adds every part as a pick leaf. Untagged parts are added without an owner.
func RegisterParts(parts []Part, reg *picking.Registry) []picking.LeafID {
	ids := make([]picking.LeafID, len(parts))
	for i, p := range parts {
		ids[i] = reg.Add(p.Owner, p.Shape.LocalBounds(), p.Transform)
	}
	return ids
}
