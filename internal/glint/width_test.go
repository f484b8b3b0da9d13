// Tests for terminal width resolution priority.
package glint

import "testing"

func TestResolveWidth_ExplicitWins(t *testing.T) {
	t.Setenv("COLUMNS", "120")
	if got := ResolveWidth(42); got != 42 {
		t.Errorf("ResolveWidth(42) = %d, want 42", got)
	}
}

func TestResolveWidth_ColumnsEnv(t *testing.T) {
	t.Setenv("COLUMNS", "123")
	if got := ResolveWidth(0); got != 123 {
		t.Errorf("ResolveWidth = %d, want 123", got)
	}
}

func TestResolveWidth_IgnoresBadColumns(t *testing.T) {
	// Garbage or non-positive COLUMNS falls through; under `go test`
	// stdout is not a terminal, so the 80-column default applies.
	for _, bad := range []string{"abc", "-3", "0"} {
		t.Setenv("COLUMNS", bad)
		if got := ResolveWidth(0); got != defaultWidth {
			t.Errorf("COLUMNS=%q: ResolveWidth = %d, want %d", bad, got, defaultWidth)
		}
	}
}
