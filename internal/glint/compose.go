// Purpose: Assemble the full prompt markup from resolved inputs.
// Exports: PromptInputs, GatherInputs, ComposePrompt, DefaultAccent.
// Role: Glue between the color allocator and the markup renderer.
// Invariants: ComposePrompt is a pure function over its inputs and always
// emits balanced { } pairs; all environment lookups live in GatherInputs.
package glint

import (
	"fmt"
	"os"
	"os/user"
	"strings"
	"time"
)

// PromptInputs carries the already-resolved values the composer needs.
// Keeping lookups out of ComposePrompt makes prompts testable byte-for-byte.
type PromptInputs struct {
	User   string
	Host   string
	Clock  string // HH:MM
	Dir    string // display path, home-contracted
	Branch string // empty outside a git checkout
	Status int    // previous command's exit status
	Accent PaletteEntry
}

// DefaultAccent colors prompts outside any known repository.
var DefaultAccent = PaletteEntry{"slate", "#8f9fb7", "#2e3440"}

// GatherInputs resolves user, host, clock, directory, branch, and the
// repository accent color for the current invocation.
func GatherInputs(opts GlobalOptions, status int) (PromptInputs, error) {
	in := PromptInputs{
		Status: status,
		Clock:  time.Now().Format("15:04"),
		Accent: DefaultAccent,
	}
	if u, err := user.Current(); err == nil {
		in.User = u.Username
	} else {
		in.User = os.Getenv("USER")
	}
	if host, err := os.Hostname(); err == nil {
		in.Host, _, _ = strings.Cut(host, ".")
	}

	start, err := repoStart(opts)
	if err != nil {
		return in, err
	}
	in.Dir = ContractHome(start)

	root, err := FindRepoRoot(start)
	if err != nil {
		// No repo is the common case outside checkouts; keep the default.
		debugf(opts, "prompt: %v", err)
		return in, nil
	}
	in.Branch = GitBranch(root)
	cache, err := OpenColorCache()
	if err != nil {
		return in, err
	}
	idx, err := cache.Assign(root)
	if err != nil {
		return in, err
	}
	debugf(opts, "prompt: root=%s accent=%s", root, Palette[idx].Name)
	in.Accent = Palette[idx]
	return in, nil
}

// ComposePrompt renders the inputs into markup: two accent bubbles
// (identity, location) with the clock filled to the right edge, then a
// status-colored sigil on its own line.
func ComposePrompt(in PromptInputs) string {
	dim := in.Accent.Dim
	var b strings.Builder

	b.WriteString("0S(e0b6,e0b4)")
	fmt.Fprintf(&b, "{:%s!#e8e8e8%s}", dim, quoteLiteral(" "+in.User+"@"+in.Host+" "))
	b.WriteString(" ")
	fmt.Fprintf(&b, "{:%s%s%s", dim, in.Accent.Bright, quoteLiteral(" "+in.Dir+" "))
	if in.Branch != "" {
		fmt.Fprintf(&b, "/%s", quoteLiteral("("+in.Branch+") "))
	}
	b.WriteString("}")
	b.WriteString("*")
	fmt.Fprintf(&b, "{:%s#e8e8e8%s}", dim, quoteLiteral(" "+in.Clock+" "))

	sigil := "g"
	if in.Status != 0 {
		sigil = "r"
	}
	fmt.Fprintf(&b, "|!%s%s0", sigil, quoteLiteral("❯ "))
	return b.String()
}

// quoteLiteral wraps s in markup string-literal quotes, escaping as needed.
func quoteLiteral(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}

// ContractHome replaces the home directory prefix with ~.
func ContractHome(path string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if path == home {
		return "~"
	}
	if rest, ok := strings.CutPrefix(path, home+string(os.PathSeparator)); ok {
		return "~" + string(os.PathSeparator) + rest
	}
	return path
}
