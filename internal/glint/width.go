// Terminal width resolution.
package glint

import (
	"os"
	"strconv"

	"golang.org/x/term"
)

const defaultWidth = 80

// ResolveWidth picks the terminal width for this invocation, resolved once
// and reused for every line. Priority: explicit flag, COLUMNS, a live
// terminal query, then the 80-column default.
func ResolveWidth(explicit int) int {
	if explicit > 0 {
		return explicit
	}
	if cols := os.Getenv("COLUMNS"); cols != "" {
		if n, err := strconv.Atoi(cols); err == nil && n > 0 {
			return n
		}
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return defaultWidth
}
