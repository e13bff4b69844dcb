package world

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"town-explorer/internal/logger"
	"town-explorer/internal/scatter"
)

// DefaultAnchor is the local label anchor: centered above the roof line.
var DefaultAnchor = rl.NewVector3(0, 9, 0)

// Entity is an interactive building bound to one plot. It is created once at world-build time
// and never changes afterwards; highlight state lives in the picking package, keyed by ID.
type Entity struct {
	ID        string
	Record    Record
	PlotIndex int
	Position  rl.Vector3
	Yaw       float32
	Anchor    rl.Vector3
}

// Transform returns the local-to-world matrix: rotate about Y by Yaw, then translate to Position.
func (e *Entity) Transform() rl.Matrix {
	return rl.MatrixMultiply(rl.MatrixRotateY(e.Yaw), rl.MatrixTranslate(e.Position.X, e.Position.Y, e.Position.Z))
}

// AnchorWorld returns the label anchor in world space.
func (e *Entity) AnchorWorld() rl.Vector3 {
	return rl.Vector3Transform(e.Anchor, e.Transform())
}

// Build creates one entity per record. Records with an empty or duplicate id are skipped;
// an out-of-range plot index falls back to plot 0. Both cases are logged, never surfaced.
func Build(records []Record, log *logger.Logger) []*Entity {
	out := make([]*Entity, 0, len(records))
	seen := make(map[string]bool, len(records))
	for _, r := range records {
		if r.ID == "" {
			log.Warn("entity record without id skipped", zap.String("name", r.Name))
			continue
		}
		if seen[r.ID] {
			log.Warn("duplicate entity id skipped", zap.String("id", r.ID))
			continue
		}
		seen[r.ID] = true

		p, ok := PlotAt(r.Plot)
		index := r.Plot
		if !ok {
			log.Warn("plot index out of range, using plot 0",
				zap.String("id", r.ID), zap.Int("plot", r.Plot), zap.Int("plots", PlotCount()))
			index = 0
		}
		out = append(out, &Entity{
			ID:        r.ID,
			Record:    r,
			PlotIndex: index,
			Position:  rl.NewVector3(p.X, 0, p.Z),
			Yaw:       p.Facing,
			Anchor:    DefaultAnchor,
		})
	}
	return out
}

// Occupied returns the ground positions of the plots the entities sit on, for scatter exclusion.
func Occupied(entities []*Entity) []scatter.Point {
	out := make([]scatter.Point, 0, len(entities))
	for _, e := range entities {
		out = append(out, scatter.Point{X: float64(e.Position.X), Z: float64(e.Position.Z)})
	}
	return out
}

// ByID indexes entities by id.
func ByID(entities []*Entity) map[string]*Entity {
	m := make(map[string]*Entity, len(entities))
	for _, e := range entities {
		m[e.ID] = e
	}
	return m
}
