// Tests for repository root discovery and branch reading.
package glint

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFindRepoRoot_WalksParents(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, ".git"), 0755); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}
	got, err := FindRepoRoot(nested)
	if err != nil {
		t.Fatalf("FindRepoRoot failed: %v", err)
	}
	if got != root {
		t.Errorf("FindRepoRoot = %s, want %s", got, root)
	}
}

func TestFindRepoRoot_GlintrootMarkerFile(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, ".glintroot"), nil, 0644); err != nil {
		t.Fatal(err)
	}
	got, err := FindRepoRoot(root)
	if err != nil {
		t.Fatalf("FindRepoRoot failed: %v", err)
	}
	if got != root {
		t.Errorf("FindRepoRoot = %s, want %s", got, root)
	}
}

func TestFindRepoRoot_NoMarker(t *testing.T) {
	_, err := FindRepoRoot(t.TempDir())
	if !errors.Is(err, ErrNoRepo) {
		t.Errorf("err = %v, want ErrNoRepo", err)
	}
}

func TestGitBranch(t *testing.T) {
	root := t.TempDir()
	gitDir := filepath.Join(root, ".git")
	if err := os.MkdirAll(gitDir, 0755); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(filepath.Join(gitDir, "HEAD"), []byte("ref: refs/heads/main\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if got := GitBranch(root); got != "main" {
		t.Errorf("GitBranch = %q, want main", got)
	}

	// Detached head: short hash.
	if err := os.WriteFile(filepath.Join(gitDir, "HEAD"), []byte("0123456789abcdef0123456789abcdef01234567\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if got := GitBranch(root); got != "0123456" {
		t.Errorf("GitBranch detached = %q, want 0123456", got)
	}

	if got := GitBranch(t.TempDir()); got != "" {
		t.Errorf("GitBranch outside git = %q, want empty", got)
	}
}
