package scatter

import (
	"math"

	"town-explorer/internal/rng"
)

// Point is a world-space (x, z) position on the ground plane.
type Point struct {
	X float64 `json:"x"`
	Z float64 `json:"z"`
}

// Instance is one decorative placement. It is generated once and never mutated.
type Instance struct {
	Kind     string  `json:"kind"`
	X        float64 `json:"x"`
	Z        float64 `json:"z"`
	Scale    float64 `json:"scale"`
	Variant  int     `json:"variant"`
	Rotation float64 `json:"rotation"`
}

// Options controls one scatter pass.
// Candidates are drawn uniformly in a Width x Depth rectangle centered on Center.
// CenterRadius excludes a disc around Center; PlotRadius excludes a disc around each Occupied point.
// A zero radius disables that exclusion.
type Options struct {
	Kind  string
	Seed  int64
	Count int

	Center Point
	Width  float64
	Depth  float64

	CenterRadius float64
	PlotRadius   float64
	Occupied     []Point

	MinScale float64
	MaxScale float64
	Variants int
}

// DefaultOptions returns a flower pass over a 250x250 region around the origin.
func DefaultOptions() Options {
	return Options{
		Kind:         "flower",
		Seed:         42,
		Count:        600,
		Width:        250,
		Depth:        250,
		CenterRadius: 48,
		PlotRadius:   6,
		MinScale:     0.6,
		MaxScale:     1.4,
		Variants:     3,
	}
}

// Plan draws Count candidates and keeps the ones outside every exclusion zone.
// A rejected candidate is skipped, never resampled, so len(result) <= Count and the arrangement
// depends only on the seed and the exclusions. Per candidate the generator is drawn for x then z;
// accepted candidates draw scale, variant and rotation in that order.
func Plan(opts Options) []Instance {
	if opts.Count <= 0 || opts.Width <= 0 || opts.Depth <= 0 {
		return nil
	}
	if opts.MaxScale < opts.MinScale {
		opts.MinScale, opts.MaxScale = opts.MaxScale, opts.MinScale
	}
	if opts.Variants <= 0 {
		opts.Variants = 1
	}

	g := rng.New(opts.Seed)
	minX := opts.Center.X - opts.Width/2
	minZ := opts.Center.Z - opts.Depth/2
	out := make([]Instance, 0, opts.Count)
	for i := 0; i < opts.Count; i++ {
		x := minX + g.Next()*opts.Width
		z := minZ + g.Next()*opts.Depth
		if excluded(opts, x, z) {
			continue
		}
		out = append(out, Instance{
			Kind:     opts.Kind,
			X:        x,
			Z:        z,
			Scale:    g.Range(opts.MinScale, opts.MaxScale),
			Variant:  g.Intn(opts.Variants),
			Rotation: g.Next() * 2 * math.Pi,
		})
	}
	return out
}

// PlanAll runs each pass independently and concatenates the results in pass order.
func PlanAll(passes []Options) []Instance {
	var out []Instance
	for _, p := range passes {
		out = append(out, Plan(p)...)
	}
	return out
}

// excluded reports whether (x, z) lies strictly inside the center disc or any plot disc.
// Points exactly on a boundary are allowed.
func excluded(opts Options, x, z float64) bool {
	if opts.CenterRadius > 0 && within(x, z, opts.Center, opts.CenterRadius) {
		return true
	}
	if opts.PlotRadius <= 0 {
		return false
	}
	for _, p := range opts.Occupied {
		if within(x, z, p, opts.PlotRadius) {
			return true
		}
	}
	return false
}

func within(x, z float64, p Point, r float64) bool {
	dx := x - p.X
	dz := z - p.Z
	return dx*dx+dz*dz < r*r
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Z-b.Z)
}
