package overlay

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"town-explorer/internal/input"
	"town-explorer/internal/labels"
	"town-explorer/internal/world"
)

const (
	fontSize      = 18
	padding       = 8
	lineHeight    = fontSize + 4
	crosshairSize = 8
	panelWidth    = 360
	tooltipOffset = 16
)

var (
	labelBg   = rl.NewColor(20, 24, 30, 200)
	panelBg   = rl.NewColor(24, 28, 36, 225)
	tooltipBg = rl.NewColor(10, 10, 10, 210)
	accent    = rl.NewColor(250, 210, 90, 255)
)

// Element is one screen-space label box. Elements are created the first time their entity
// needs a label and then reused every frame.
type Element struct {
	ID      string
	Text    string
	Anchor  rl.Vector2
	Alpha   float32
	Visible bool
}

// Overlay is the 2D layer drawn over the 3D view: crosshair, tooltip, entity labels and
// the info panel for the selected entity.
type Overlay struct {
	LabelsEnabled bool

	elements map[string]*Element
	order    []*Element
	byID     map[string]*world.Entity
	font     rl.Font

	crosshair bool
	tooltip   string
	tipX      float32
	tipY      float32
	panel     []string
}

// New returns an overlay for entities with labels enabled.
func New(entities []*world.Entity) *Overlay {
	return &Overlay{
		LabelsEnabled: true,
		elements:      make(map[string]*Element),
		byID:          world.ByID(entities),
	}
}

// SetFont sets the font used for text. A zero texture id keeps raylib's default font.
func (o *Overlay) SetFont(f rl.Font) {
	o.font = f
}

// Element returns the label element for id, creating it on first use.
func (o *Overlay) Element(id string) *Element {
	if el, ok := o.elements[id]; ok {
		return el
	}
	el := &Element{ID: id, Text: id}
	if e, ok := o.byID[id]; ok && e.Record.Name != "" {
		el.Text = e.Record.Name
	}
	o.elements[id] = el
	o.order = append(o.order, el)
	return el
}

// Elements is the number of label elements created so far.
func (o *Overlay) Elements() int {
	return len(o.elements)
}

// Update lays out the overlay for this frame. hovered and selected may be nil.
func (o *Overlay) Update(f input.Frame, ls []labels.Label, hovered, selected *world.Entity) {
	o.crosshair = f.Captured

	o.tooltip = ""
	if !f.Captured && hovered != nil {
		o.tooltip = displayName(hovered)
		o.tipX, o.tipY = f.Pointer.X+tooltipOffset, f.Pointer.Y+tooltipOffset
	}

	for _, el := range o.order {
		el.Visible = false
	}
	if o.LabelsEnabled {
		for _, l := range ls {
			if !l.Visible {
				if el, ok := o.elements[l.ID]; ok {
					el.Visible = false
				}
				continue
			}
			el := o.Element(l.ID)
			el.Anchor = rl.NewVector2(l.X, l.Y)
			el.Alpha = l.Opacity
			el.Visible = true
		}
	}

	o.panel = PanelLines(selected)
}

// CrosshairVisible reports whether the crosshair is drawn this frame.
func (o *Overlay) CrosshairVisible() bool {
	return o.crosshair
}

// Tooltip returns the tooltip text and where it is drawn; empty text means hidden.
func (o *Overlay) Tooltip() (text string, x, y float32) {
	return o.tooltip, o.tipX, o.tipY
}

// PanelLines formats the info panel for e; nil yields no panel.
func PanelLines(e *world.Entity) []string {
	if e == nil {
		return nil
	}
	r := e.Record
	lines := []string{displayName(e)}
	if r.Category != "" {
		lines = append(lines, "["+r.Category+"]")
	}
	if r.Description != "" {
		lines = append(lines, wrap(r.Description, 44)...)
	}
	if r.Contributor.Handle != "" {
		lines = append(lines, fmt.Sprintf("by @%s", r.Contributor.Handle))
	}
	return lines
}

func displayName(e *world.Entity) string {
	if e.Record.Name != "" {
		return e.Record.Name
	}
	return e.ID
}

func wrap(s string, width int) []string {
	var out []string
	var line strings.Builder
	for _, w := range strings.Fields(s) {
		if line.Len() > 0 && line.Len()+1+len(w) > width {
			out = append(out, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(w)
	}
	if line.Len() > 0 {
		out = append(out, line.String())
	}
	return out
}

// Draw renders the overlay laid out by the last Update.
func (o *Overlay) Draw() {
	for _, el := range o.order {
		if !el.Visible {
			continue
		}
		w := o.measure(el.Text) + 2*padding
		box := rl.NewRectangle(el.Anchor.X-w/2, el.Anchor.Y-lineHeight, w, lineHeight)
		rl.DrawRectangleRec(box, rl.Fade(labelBg, el.Alpha))
		o.text(el.Text, box.X+padding, box.Y+2, rl.Fade(rl.White, el.Alpha))
	}

	if o.crosshair {
		cx, cy := int32(rl.GetScreenWidth()/2), int32(rl.GetScreenHeight()/2)
		rl.DrawLine(cx-crosshairSize, cy, cx+crosshairSize, cy, rl.White)
		rl.DrawLine(cx, cy-crosshairSize, cx, cy+crosshairSize, rl.White)
	}

	if o.tooltip != "" {
		w := o.measure(o.tooltip) + 2*padding
		rl.DrawRectangleRec(rl.NewRectangle(o.tipX, o.tipY, w, lineHeight+4), tooltipBg)
		o.text(o.tooltip, o.tipX+padding, o.tipY+3, rl.White)
	}

	if len(o.panel) > 0 {
		x := float32(rl.GetScreenWidth() - panelWidth - padding)
		h := float32(len(o.panel)*lineHeight + 2*padding)
		rl.DrawRectangleRec(rl.NewRectangle(x, padding, panelWidth, h), panelBg)
		for i, line := range o.panel {
			c := rl.LightGray
			if i == 0 {
				c = accent
			}
			o.text(line, x+padding, float32(padding+padding+i*lineHeight), c)
		}
	}
}

func (o *Overlay) text(s string, x, y float32, c rl.Color) {
	if o.font.Texture.ID != 0 {
		rl.DrawTextEx(o.font, s, rl.NewVector2(x, y), fontSize, 1, c)
		return
	}
	rl.DrawText(s, int32(x), int32(y), fontSize, c)
}

func (o *Overlay) measure(s string) float32 {
	if o.font.Texture.ID != 0 {
		return rl.MeasureTextEx(o.font, s, fontSize, 1).X
	}
	return float32(rl.MeasureText(s, fontSize))
}
