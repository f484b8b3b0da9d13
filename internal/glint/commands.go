// Purpose: Implement the user-facing commands on top of the core pieces.
// Exports: RunRender, RunColor, RunPrompt, RunWhere.
// Role: Command layer invoked by the cobra wrappers in cmd/glint.
// Invariants: commands write results to stdout and diagnostics to stderr;
// every error path returns (the cmd package owns exit codes).
package glint

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
)

// RunRender renders a markup string (argument, or stdin when piped).
func RunRender(args []string, opts GlobalOptions) error {
	var markup string
	switch {
	case len(args) == 1:
		markup = args[0]
	case len(args) == 0 && stdinIsPiped():
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		markup = strings.TrimSuffix(string(data), "\n")
	default:
		return errors.New("usage: glint render <markup>")
	}
	return renderToStdout(markup, opts)
}

// renderToStdout resolves shell mode and width, renders, and terminates the
// shell line. The renderer itself never emits a trailing newline.
func renderToStdout(markup string, opts GlobalOptions) error {
	mode, err := shellMode(opts)
	if err != nil {
		return err
	}
	width := ResolveWidth(opts.Width)
	debugf(opts, "render: width=%d shell=%q", width, opts.Shell)
	var rng *rand.Rand
	if opts.Seed != 0 {
		rng = rand.New(rand.NewSource(opts.Seed))
	}
	renderer := NewRenderer(os.Stdout, width, mode, rng)
	if err := renderer.Render(markup); err != nil {
		return err
	}
	fmt.Println()
	return nil
}

func shellMode(opts GlobalOptions) (ShellMode, error) {
	value := opts.Shell
	if value == "" {
		value = os.Getenv("GLINT_SHELL")
	}
	return ParseShellMode(value)
}

// RunColor resolves the repository root, assigns (or recalls) its accent
// color, and prints it in the requested format.
func RunColor(format string, opts GlobalOptions) error {
	start, err := repoStart(opts)
	if err != nil {
		return err
	}
	root, err := FindRepoRoot(start)
	if err != nil {
		return err
	}
	cache, err := OpenColorCache()
	if err != nil {
		return err
	}
	idx, err := cache.Assign(root)
	if err != nil {
		return err
	}
	entry := Palette[idx]
	debugf(opts, "color: root=%s index=%d name=%s", root, idx, entry.Name)

	if opts.JSON {
		return writeJSON(os.Stdout, colorOutput{
			RepoDir: root,
			Index:   idx,
			Name:    entry.Name,
			Hex:     entry.Bright,
			DimHex:  entry.Dim,
		})
	}
	switch format {
	case "", "index":
		fmt.Println(idx)
	case "name":
		fmt.Println(entry.Name)
	case "hex":
		fmt.Println(entry.Bright)
	case "dim-hex":
		fmt.Println(entry.Dim)
	default:
		return fmt.Errorf("unknown format %q (use index, name, hex, or dim-hex)", format)
	}
	return nil
}

// RunPrompt composes and renders the full prompt.
func RunPrompt(status int, opts GlobalOptions) error {
	in, err := GatherInputs(opts, status)
	if err != nil {
		return err
	}
	markup := ComposePrompt(in)
	debugf(opts, "prompt: markup=%s", markup)
	return renderToStdout(markup, opts)
}

// RunWhere prints the resolved repository root and its cache entry path.
func RunWhere(opts GlobalOptions) error {
	start, err := repoStart(opts)
	if err != nil {
		return err
	}
	root, err := FindRepoRoot(start)
	if err != nil {
		return err
	}
	cache, err := OpenColorCache()
	if err != nil {
		return err
	}
	if opts.JSON {
		return writeJSON(os.Stdout, whereOutput{
			RepoDir:   root,
			CacheDir:  cache.Dir(),
			CacheFile: cache.EntryPath(root),
		})
	}
	fmt.Println("repo:", root)
	fmt.Println("cache:", cache.EntryPath(root))
	return nil
}
