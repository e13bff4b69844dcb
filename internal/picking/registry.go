package picking

import (
	"sort"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// LeafID identifies one piece of pickable geometry (a wall, a roof, a sign).
type LeafID uint32

type leaf struct {
	id        LeafID
	entity    string
	local     rl.BoundingBox
	transform rl.Matrix
	inverse   rl.Matrix
	box       rl.BoundingBox // world AABB, used to reject misses early
}

// Registry maps every geometry leaf to the entity that owns it. Leaves are registered when an
// entity's geometry is built, so resolving a hit is a map lookup rather than a walk up a scene graph.
type Registry struct {
	leaves []leaf
	owner  map[LeafID]string
	next   LeafID
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{owner: make(map[LeafID]string)}
}

// Add registers a leaf with local bounds placed by transform and returns its handle.
// An empty entityID registers untagged geometry: it is hit-tested but never resolves to an entity.
func (r *Registry) Add(entityID string, local rl.BoundingBox, transform rl.Matrix) LeafID {
	r.next++
	id := r.next
	r.leaves = append(r.leaves, leaf{
		id:        id,
		entity:    entityID,
		local:     local,
		transform: transform,
		inverse:   rl.MatrixInvert(transform),
		box:       worldBox(local, transform),
	})
	if entityID != "" {
		r.owner[id] = entityID
	}
	return id
}

// Owner returns the entity that owns leaf id.
func (r *Registry) Owner(id LeafID) (string, bool) {
	e, ok := r.owner[id]
	return e, ok
}

// Bounds returns the axis-aligned world bounds of leaf id. For a rotated leaf this is larger
// than the leaf itself; Raycast tests the oriented box.
func (r *Registry) Bounds(id LeafID) (rl.BoundingBox, bool) {
	for _, l := range r.leaves {
		if l.id == id {
			return l.box, true
		}
	}
	return rl.BoundingBox{}, false
}

// Len returns the number of registered leaves.
func (r *Registry) Len() int {
	return len(r.leaves)
}

// Hit is one ray intersection.
type Hit struct {
	Leaf     LeafID
	Distance float32
	Point    rl.Vector3
}

// Raycast returns every leaf the ray crosses, nearest first. An empty registry yields no hits.
// Each leaf is tested as an oriented box: the ray is moved into the leaf's local space and the
// hit is mapped back, so distances are world units.
func (r *Registry) Raycast(ray rl.Ray) []Hit {
	var hits []Hit
	for _, l := range r.leaves {
		if !rl.GetRayCollisionBox(ray, l.box).Hit {
			continue
		}
		if h, ok := l.intersect(ray); ok {
			hits = append(hits, h)
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Distance < hits[j].Distance })
	return hits
}

func (l leaf) intersect(ray rl.Ray) (Hit, bool) {
	origin := rl.Vector3Transform(ray.Position, l.inverse)
	dir := rl.Vector3Subtract(rl.Vector3Transform(ray.Direction, l.inverse), rl.Vector3Transform(rl.Vector3Zero(), l.inverse))
	c := rl.GetRayCollisionBox(rl.NewRay(origin, dir), l.local)
	if !c.Hit {
		return Hit{}, false
	}
	p := rl.Vector3Transform(c.Point, l.transform)
	d := rl.Vector3Distance(ray.Position, p)
	if c.Distance < 0 {
		d = -d
	}
	return Hit{Leaf: l.id, Distance: d, Point: p}, true
}

// worldBox returns the axis-aligned bounds of the transformed corners of local.
func worldBox(local rl.BoundingBox, m rl.Matrix) rl.BoundingBox {
	lo, hi := local.Min, local.Max
	corners := [8]rl.Vector3{
		{X: lo.X, Y: lo.Y, Z: lo.Z}, {X: hi.X, Y: lo.Y, Z: lo.Z},
		{X: lo.X, Y: hi.Y, Z: lo.Z}, {X: hi.X, Y: hi.Y, Z: lo.Z},
		{X: lo.X, Y: lo.Y, Z: hi.Z}, {X: hi.X, Y: lo.Y, Z: hi.Z},
		{X: lo.X, Y: hi.Y, Z: hi.Z}, {X: hi.X, Y: hi.Y, Z: hi.Z},
	}
	first := rl.Vector3Transform(corners[0], m)
	box := rl.BoundingBox{Min: first, Max: first}
	for _, c := range corners[1:] {
		p := rl.Vector3Transform(c, m)
		box.Min = rl.NewVector3(min(box.Min.X, p.X), min(box.Min.Y, p.Y), min(box.Min.Z, p.Z))
		box.Max = rl.NewVector3(max(box.Max.X, p.X), max(box.Max.Y, p.Y), max(box.Max.Z, p.Z))
	}
	return box
}
