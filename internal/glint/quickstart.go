// quickstart command handler.
package glint

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

//go:embed quickstart.md
var quickstartRaw string

// RunQuickstart prints the markup tour, glamour-rendered on a TTY.
func RunQuickstart(args []string) error {
	if len(args) != 0 {
		return errors.New("usage: glint quickstart")
	}
	if stdoutIsTTY() {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(80),
		)
		if err == nil {
			if out, err := r.Render(quickstartRaw); err == nil {
				fmt.Print(out)
				return nil
			}
		}
	}
	fmt.Print(quickstartRaw)
	if !strings.HasSuffix(quickstartRaw, "\n") {
		fmt.Println()
	}
	return nil
}
