// Repository root discovery by walking parent directories for markers.
package glint

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoRepo means no repository marker was found between the start
// directory and the filesystem root.
var ErrNoRepo = errors.New("no repository root found")

// repoMarkers are the directory entries that identify a repository root,
// checked in order at each level.
var repoMarkers = []string{".git", ".hg", ".svn", ".glintroot"}

// FindRepoRoot walks from start toward the filesystem root and returns the
// first directory containing a repository marker.
func FindRepoRoot(start string) (string, error) {
	current, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
	for {
		for _, marker := range repoMarkers {
			// .git may be a plain file in worktrees; any entry counts.
			_, err := os.Stat(filepath.Join(current, marker))
			if err == nil {
				return current, nil
			}
			if !errors.Is(err, os.ErrNotExist) {
				return "", err
			}
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", fmt.Errorf("%w (searched from %s)", ErrNoRepo, start)
		}
		current = parent
	}
}

// repoStart resolves the directory discovery begins from.
func repoStart(opts GlobalOptions) (string, error) {
	if opts.StartDir != "" {
		return opts.StartDir, nil
	}
	return os.Getwd()
}

// GitBranch reads the checked-out branch name from .git/HEAD, or a short
// hash for a detached head. Returns "" when nothing is readable (not a git
// repo, bare worktree pointer file, and so on).
func GitBranch(root string) string {
	data, err := os.ReadFile(filepath.Join(root, ".git", "HEAD"))
	if err != nil {
		return ""
	}
	head := strings.TrimSpace(string(data))
	if ref, ok := strings.CutPrefix(head, "ref: "); ok {
		return strings.TrimPrefix(ref, "refs/heads/")
	}
	if len(head) >= 7 {
		return head[:7]
	}
	return head
}
