package picking

import (
	"town-explorer/internal/camera"
	"town-explorer/internal/input"
	"town-explorer/internal/world"
)

// Config tunes hover resolution.
type Config struct {
	MaxDistance    float32 `mapstructure:"maxDistance"`    // hits farther than this are ignored
	EveryNFrames   int     `mapstructure:"everyNFrames"`   // picking cadence used by the frame scheduler
	HighlightDelta float32 `mapstructure:"highlightDelta"` // emissive boost on hover
}

// DefaultConfig returns a 60 unit reach, picking every third frame.
func DefaultConfig() Config {
	return Config{MaxDistance: 60, EveryNFrames: 3, HighlightDelta: 0.35}
}

// HoverSelection is the current hover and selection. An empty id means none.
type HoverSelection struct {
	Hovered  string
	Selected string
}

// Service resolves which entity lies under the query point and keeps highlight state in step.
type Service struct {
	cfg      Config
	reg      *Registry
	hl       *Highlighter
	entities map[string]*world.Entity
	lens     camera.Lens
	sel      HoverSelection

	// OnSelectionChanged is called whenever the resolved entity changes, with its record or nil.
	OnSelectionChanged func(rec *world.Record)
}

// NewService returns a picking service over the leaves in reg. Every entity gets a zero
// emissive baseline unless hl already holds one.
func NewService(cfg Config, lens camera.Lens, reg *Registry, hl *Highlighter, entities []*world.Entity) *Service {
	s := &Service{
		cfg:      cfg,
		reg:      reg,
		hl:       hl,
		entities: world.ByID(entities),
		lens:     lens,
	}
	for id := range s.entities {
		if _, ok := hl.state[id]; !ok {
			hl.SetBaseline(id, 0)
		}
	}
	return s
}

// State returns the current hover and selection.
func (s *Service) State() HoverSelection {
	return s.sel
}

// Highlighter returns the highlight state shared with the renderer.
func (s *Service) Highlighter() *Highlighter {
	return s.hl
}

// QueryPoint returns the pixel picking uses: the screen center while captured, the pointer otherwise.
func QueryPoint(f input.Frame, vp camera.Viewport) (x, y float32) {
	if f.Captured {
		return vp.Center()
	}
	return f.Pointer.X, f.Pointer.Y
}

// Resolve casts a ray through pixel (x, y) and returns the first tagged entity within reach.
// The nearest hits are checked first; anything beyond MaxDistance ends the search.
func (s *Service) Resolve(v camera.View, vp camera.Viewport, x, y float32) (string, bool) {
	if s.reg == nil || s.reg.Len() == 0 || vp.Width <= 0 || vp.Height <= 0 {
		return "", false
	}
	ray := camera.ScreenRay(x, y, v, s.lens, vp)
	for _, h := range s.reg.Raycast(ray) {
		if h.Distance > s.cfg.MaxDistance {
			break
		}
		if id, ok := s.reg.Owner(h.Leaf); ok {
			return id, true
		}
	}
	return "", false
}

// Update resolves the hover for this frame and applies the change, if any.
func (s *Service) Update(v camera.View, vp camera.Viewport, f input.Frame) {
	x, y := QueryPoint(f, vp)
	id, _ := s.Resolve(v, vp, x, y)
	s.SetHovered(id)
}

// SetHovered moves the hover to id ("" clears it). On change the previous entity is restored
// before the new one is boosted, then OnSelectionChanged fires.
func (s *Service) SetHovered(id string) {
	if id == s.sel.Hovered {
		return
	}
	if s.sel.Hovered != "" {
		s.hl.Restore(s.sel.Hovered)
	}
	s.sel.Hovered = id
	if id != "" {
		s.hl.Highlight(id)
	}
	if s.OnSelectionChanged != nil {
		s.OnSelectionChanged(s.record(id))
	}
}

// Select pins the selection to the current hover (clearing it when nothing is hovered).
// Capture changes never call this, so losing capture keeps the selection.
func (s *Service) Select() {
	s.sel.Selected = s.sel.Hovered
}

// SelectID pins the selection to a known entity id. Unknown ids are ignored.
func (s *Service) SelectID(id string) bool {
	if _, ok := s.entities[id]; !ok {
		return false
	}
	s.sel.Selected = id
	return true
}

// Selected returns the selected entity, if any.
func (s *Service) Selected() (*world.Entity, bool) {
	e, ok := s.entities[s.sel.Selected]
	return e, ok
}

// Hovered returns the hovered entity, if any.
func (s *Service) Hovered() (*world.Entity, bool) {
	e, ok := s.entities[s.sel.Hovered]
	return e, ok
}

func (s *Service) record(id string) *world.Record {
	e, ok := s.entities[id]
	if !ok {
		return nil
	}
	rec := e.Record
	return &rec
}
