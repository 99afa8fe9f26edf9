package settings

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestNormalizePath(t *testing.T) {
	base := resolvedTempDir(t)
	existing := filepath.Join(base, "existing")
	if err := os.MkdirAll(existing, 0o755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}

	t.Run("relative against base", func(t *testing.T) {
		got, err := normalizePath("./existing", base, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != existing {
			t.Fatalf("expected %s, got %s", existing, got)
		}
	})

	t.Run("absolute kept", func(t *testing.T) {
		got, err := normalizePath(existing, filepath.Join(base, "elsewhere"), true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != existing {
			t.Fatalf("expected %s, got %s", existing, got)
		}
	})

	t.Run("dotdot collapsed without existence", func(t *testing.T) {
		got, err := normalizePath("../nowhere", filepath.Join(base, "deploy"), false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := filepath.Join(base, "nowhere"); got != want {
			t.Fatalf("expected %s, got %s", want, got)
		}
	})

	t.Run("missing target fails when required", func(t *testing.T) {
		if _, err := normalizePath("./nowhere", base, true); err == nil {
			t.Fatalf("expected error for missing path")
		}
	})

	t.Run("symlink resolved", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("symlink creation requires privileges on windows")
		}
		link := filepath.Join(base, "link")
		if err := os.Symlink(existing, link); err != nil {
			t.Fatalf("failed to create symlink: %v", err)
		}

		got, err := normalizePath("./link", base, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != existing {
			t.Fatalf("expected symlink target %s, got %s", existing, got)
		}
	})
}
