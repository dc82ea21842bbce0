// Package testutil provides shared fakes and staging helpers for tests.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/avifio/yuvgen/internal/artifact"
)

// FakeRegistry is an in-memory system package registry. Probe answers
// from the Packages map; unknown names fail like a missing package.
type FakeRegistry struct {
	Packages map[string]*artifact.Package

	// Probes records the names probed, in order.
	Probes []string
}

// Probe implements artifact.Registry.
func (r *FakeRegistry) Probe(name string) (*artifact.Package, error) {
	r.Probes = append(r.Probes, name)
	if pkg, ok := r.Packages[name]; ok {
		return pkg, nil
	}
	return nil, fmt.Errorf("package %q not found", name)
}

// EmptyRegistry returns a registry that knows no packages.
func EmptyRegistry() *FakeRegistry {
	return &FakeRegistry{Packages: map[string]*artifact.Package{}}
}

// StageProject creates a temp project root containing the given files.
// Paths use forward slashes relative to the root; file contents are
// placeholders unless specified in contents.
func StageProject(t *testing.T, files ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("staging %s: %v", f, err)
		}
		if err := os.WriteFile(path, []byte("placeholder\n"), 0o644); err != nil {
			t.Fatalf("staging %s: %v", f, err)
		}
	}
	return root
}

// StageFile writes one file with explicit contents under root.
func StageFile(t *testing.T, root, rel, contents string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("staging %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("staging %s: %v", rel, err)
	}
	return path
}
