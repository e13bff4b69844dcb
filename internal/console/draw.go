package console

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	barHeight  = 40
	fontSize   = 20
	padding    = 8
	maxLines   = 14
	lineHeight = fontSize + 4
	maxChars   = 200
)

var (
	barColor     = rl.NewColor(40, 40, 40, 255)
	ruleColor    = rl.NewColor(80, 80, 80, 255)
	historyColor = rl.NewColor(24, 24, 24, 240)
)

// SetFont sets the font for the prompt and history. A zero texture id keeps raylib's default.
func (c *Console) SetFont(f rl.Font) {
	c.font = f
}

func (c *Console) text(s string, x, y int32, col rl.Color) {
	if c.font.Texture.ID != 0 {
		rl.DrawTextEx(c.font, s, rl.NewVector2(float32(x), float32(y)), fontSize, 1, col)
		return
	}
	rl.DrawText(s, x, y, fontSize, col)
}

// Poll feeds this frame's keyboard events into the console. ESC toggles it; the rest is
// only read while open.
func (c *Console) Poll() {
	if rl.IsKeyPressed(rl.KeyEscape) {
		c.Toggle()
	}
	if !c.open {
		return
	}
	ctrl := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) ||
		rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)
	if ctrl && rl.IsKeyPressed(rl.KeyV) {
		c.Type(rl.GetClipboardText())
	} else {
		for r := rl.GetCharPressed(); r != 0; r = rl.GetCharPressed() {
			c.Type(string(rune(r)))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) {
		c.Backspace()
	}
	if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter) {
		_ = c.Submit()
	}
}

// Draw renders the history and the input bar along the bottom edge.
func (c *Console) Draw() {
	if !c.open {
		return
	}
	w := int32(rl.GetScreenWidth())
	barY := int32(rl.GetScreenHeight()) - barHeight

	histY := barY - maxLines*lineHeight
	if histY < 0 {
		histY = 0
	}
	rl.DrawRectangle(0, histY, w, barY-histY, historyColor)
	lines := c.log.Lines()
	if len(lines) > maxLines {
		lines = lines[len(lines)-maxLines:]
	}
	for i, line := range lines {
		if len(line) > maxChars {
			line = line[:maxChars-3] + "..."
		}
		c.text(line, padding, histY+int32(i*lineHeight)+padding/2, rl.LightGray)
	}

	rl.DrawRectangle(0, barY, w, barHeight, barColor)
	rl.DrawRectangle(0, barY, w, 1, ruleColor)
	c.text("> "+c.buf+"|", padding, barY+padding, rl.White)
}
