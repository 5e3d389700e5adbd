package ui

import (
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Colour modes accepted by ColorEnabled.
const (
	ModeAuto   = "auto"
	ModeAlways = "always"
	ModeNever  = "never"
)

// Palette holds the colours used by the prompt and diagnostics. Each
// Palette owns its color.Color values, so enabling one does not touch
// the package-level color.NoColor switch.
type Palette struct {
	User    func(a ...interface{}) string
	Host    func(a ...interface{}) string
	Path    func(a ...interface{}) string
	Error   func(a ...interface{}) string
	Warning func(a ...interface{}) string
	Header  func(a ...interface{}) string
}

// NewPalette returns a palette whose colours are forced on or off.
func NewPalette(enabled bool) Palette {
	mk := func(attrs ...color.Attribute) func(a ...interface{}) string {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c.SprintFunc()
	}
	return Palette{
		User:    mk(color.FgCyan),
		Host:    mk(color.FgGreen),
		Path:    mk(color.FgYellow),
		Error:   mk(color.FgRed),
		Warning: mk(color.FgYellow),
		Header:  mk(color.FgGreen, color.Bold),
	}
}

// ColorEnabled resolves a colour mode against the file descriptor the
// output goes to. Unknown modes behave like auto.
func ColorEnabled(mode string, fd uintptr) bool {
	switch mode {
	case ModeAlways:
		return true
	case ModeNever:
		return false
	default:
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
}
