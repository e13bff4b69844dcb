package console

import (
	"unicode/utf8"

	rl "github.com/gen2brain/raylib-go/raylib"

	"town-explorer/internal/commands"
	"town-explorer/internal/logger"
)

// Console is the text prompt opened with ESC. While it is open it owns the keyboard, so the
// viewer releases pointer capture through OnOpen. Lines starting with "cmd " run through the
// command registry; anything else is echoed to the log.
type Console struct {
	OnOpen  func()
	OnClose func()

	log  *logger.Logger
	reg  *commands.Registry
	buf  string
	open bool
	font rl.Font
}

// New returns a closed console.
func New(log *logger.Logger, reg *commands.Registry) *Console {
	return &Console{log: log, reg: reg}
}

// IsOpen reports whether the prompt is visible.
func (c *Console) IsOpen() bool {
	return c.open
}

// Input is the text typed so far.
func (c *Console) Input() string {
	return c.buf
}

// Toggle opens a closed console and closes an open one.
func (c *Console) Toggle() {
	if c.open {
		c.Close()
		return
	}
	c.Open()
}

// Open shows the prompt.
func (c *Console) Open() {
	if c.open {
		return
	}
	c.open = true
	if c.OnOpen != nil {
		c.OnOpen()
	}
}

// Close hides the prompt and keeps whatever was typed.
func (c *Console) Close() {
	if !c.open {
		return
	}
	c.open = false
	if c.OnClose != nil {
		c.OnClose()
	}
}

// Type appends text to the input line. Ignored while closed.
func (c *Console) Type(s string) {
	if c.open {
		c.buf += s
	}
}

// Backspace removes the last rune.
func (c *Console) Backspace() {
	if c.buf == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(c.buf)
	c.buf = c.buf[:len(c.buf)-size]
}

// Submit runs the current line and clears it. Command errors are logged and returned.
func (c *Console) Submit() error {
	line := c.buf
	if line == "" {
		return nil
	}
	c.buf = ""
	c.log.Log("> " + line)
	args, ok := commands.Parse(line)
	if !ok {
		return nil
	}
	if len(args) == 0 || args[0] == "help" {
		for _, h := range c.reg.Help() {
			c.log.Log(h)
		}
		return nil
	}
	if err := c.reg.Execute(args); err != nil {
		c.log.Log(err.Error())
		return err
	}
	return nil
}
