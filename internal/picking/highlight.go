package picking

// Emissive is an entity's highlight state: the value it was built with and the value it shows now.
// Current equals Baseline whenever the entity is not highlighted.
type Emissive struct {
	Baseline float32
	Current  float32
}

// Highlighted reports whether the boost is applied.
func (e Emissive) Highlighted() bool {
	return e.Current != e.Baseline
}

// Highlighter owns the emissive pair of every entity. Restoring writes Baseline back, so any
// number of highlight/restore cycles leaves the baseline untouched.
type Highlighter struct {
	delta float32
	state map[string]Emissive
}

// NewHighlighter returns a highlighter that boosts by delta.
func NewHighlighter(delta float32) *Highlighter {
	return &Highlighter{delta: delta, state: make(map[string]Emissive)}
}

// SetBaseline records the emissive value an entity was built with.
func (h *Highlighter) SetBaseline(id string, v float32) {
	h.state[id] = Emissive{Baseline: v, Current: v}
}

// Emissive returns the pair for id; unknown ids read as zero.
func (h *Highlighter) Emissive(id string) Emissive {
	return h.state[id]
}

// Highlight applies the boost. Highlighting an already highlighted entity changes nothing.
func (h *Highlighter) Highlight(id string) {
	e := h.state[id]
	e.Current = e.Baseline + h.delta
	h.state[id] = e
}

// Restore removes the boost.
func (h *Highlighter) Restore(id string) {
	e, ok := h.state[id]
	if !ok {
		return
	}
	e.Current = e.Baseline
	h.state[id] = e
}
