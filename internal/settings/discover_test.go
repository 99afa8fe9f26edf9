package settings

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDiscoverFramework(t *testing.T) {
	t.Run("marker in start directory", func(t *testing.T) {
		root := resolvedTempDir(t)
		makeFramework(t, root)

		found, err := DiscoverFramework(root)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found != root {
			t.Fatalf("expected %s, got %s", root, found)
		}
	})

	t.Run("marker in ancestor", func(t *testing.T) {
		root := resolvedTempDir(t)
		makeFramework(t, root)
		nested := filepath.Join(root, "Ref", "SignalGen", "test")
		if err := os.MkdirAll(nested, 0o755); err != nil {
			t.Fatalf("failed to create nested dir: %v", err)
		}

		found, err := DiscoverFramework(nested)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found != root {
			t.Fatalf("expected %s, got %s", root, found)
		}
	})

	t.Run("marker must be a regular file", func(t *testing.T) {
		root := resolvedTempDir(t)
		makeFramework(t, root)
		// A directory named like the marker does not count; the walk must
		// continue upward to the real root.
		child := filepath.Join(root, "child")
		if err := os.MkdirAll(filepath.Join(child, frameworkMarker), 0o755); err != nil {
			t.Fatalf("failed to create decoy dir: %v", err)
		}

		found, err := DiscoverFramework(child)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found != root {
			t.Fatalf("expected %s, got %s", root, found)
		}
	})

	t.Run("not found", func(t *testing.T) {
		root := resolvedTempDir(t)

		_, err := DiscoverFramework(root)

		var locErr *FrameworkLocationError
		if !errors.As(err, &locErr) {
			t.Fatalf("expected FrameworkLocationError, got %v", err)
		}
		if locErr.Start != root {
			t.Fatalf("expected error to record start %s, got %s", root, locErr.Start)
		}
	})
}
