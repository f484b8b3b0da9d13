// CLI option types, verbose logging, and terminal detection helpers.
package glint

import (
	"fmt"
	"os"
)

// GlobalOptions carries flags shared across commands.
type GlobalOptions struct {
	StartDir string
	Quiet    bool
	Verbose  bool
	JSON     bool
	NoColor  bool

	// Render options (render and prompt commands).
	Width int
	Shell string
	Seed  int64
}

func debugf(opts GlobalOptions, format string, args ...any) {
	if !opts.Verbose {
		return
	}
	fmt.Fprintf(os.Stderr, "debug: "+format+"\n", args...)
}

// stdinIsPiped reports whether render should read markup from stdin.
// Stat errors read as not-piped so the command falls back to usage help.
func stdinIsPiped() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice == 0
}

// stdoutIsTTY reports whether stdout can take styled output.
func stdoutIsTTY() bool {
	info, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
