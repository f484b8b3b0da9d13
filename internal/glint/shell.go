// Shell non-printing marker modes for escape wrapping.
package glint

import "fmt"

// ShellMode selects the non-printing-character markers wrapped around every
// escape sequence so the shell's line editor can compute visible width.
type ShellMode int

const (
	ShellNone ShellMode = iota // raw escapes, no markers
	ShellZsh                   // %{ ... %}
	ShellBash                  // \[ ... \]
)

// ParseShellMode maps a --shell flag (or GLINT_SHELL) value to a mode.
func ParseShellMode(value string) (ShellMode, error) {
	switch value {
	case "", "none", "raw":
		return ShellNone, nil
	case "zsh":
		return ShellZsh, nil
	case "bash":
		return ShellBash, nil
	default:
		return ShellNone, fmt.Errorf("unknown shell mode %q (use none, zsh, or bash)", value)
	}
}

// wrap returns the marker pair bracketing escape insertions.
func (m ShellMode) wrap() (prefix, suffix string) {
	switch m {
	case ShellZsh:
		return "%{", "%}"
	case ShellBash:
		return `\[`, `\]`
	}
	return "", ""
}
