// Purpose: Provide CLI error formatting, hints, and version output.
// Exports: none (package-private helpers).
// Role: Shared error/exit utilities for the cmd package.
// Invariants: exitErr always exits with code 1 after printing.
// Notes: Hints depend on error classification and global options.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sandover/glint/internal/glint"
)

func printVersion() {
	fmt.Println("glint " + version)
}

func exitErr(err error, opts *glint.GlobalOptions) {
	fmt.Fprintln(os.Stderr, "error:", err)
	if opts == nil || !opts.Quiet {
		if strings.HasPrefix(err.Error(), "usage:") {
			fmt.Fprintln(os.Stderr, "hint: run `glint --help`")
		} else if strings.HasPrefix(err.Error(), "markup:") {
			fmt.Fprintln(os.Stderr, "hint: run `glint quickstart` for the markup grammar")
		} else if errors.Is(err, glint.ErrNoRepo) {
			fmt.Fprintln(os.Stderr, "hint: run inside a repository, or create a .glintroot marker file")
		} else if os.IsPermission(err) || errors.Is(err, os.ErrPermission) {
			fmt.Fprintln(os.Stderr, "hint: permission error accessing the color cache; check ~/.cache/glint")
		}
	}
	os.Exit(1)
}
