package harness

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avifio/yuvgen/internal/artifact"
	"github.com/avifio/yuvgen/internal/cli"
	"github.com/avifio/yuvgen/internal/config"
	"github.com/avifio/yuvgen/internal/testutil"
)

// Run executes one scenario: stage the project tree, resolve, assert.
func Run(t *testing.T, s *Scenario) {
	t.Helper()

	root := testutil.StageProject(t, s.Stage...)

	registry := testutil.EmptyRegistry()
	for name, reply := range s.Registry {
		registry.Packages[name] = &artifact.Package{
			Libs:         reply.Libs,
			LinkPaths:    reply.LinkPaths,
			IncludePaths: reply.IncludePaths,
		}
	}

	cfg := config.Config{
		Target:   s.Target,
		Root:     root,
		Enabled:  true,
		HostOS:   s.HostOS,
		Manifest: config.DefaultManifest(),
	}

	res, err := cli.ResolveArtifact(cfg, registry)

	if s.Expect.ErrorContains != "" {
		require.Error(t, err, "scenario %s expected an error", s.Name)
		assert.Contains(t, err.Error(), s.Expect.ErrorContains)
		return
	}
	require.NoError(t, err, "scenario %s", s.Name)

	if s.Expect.Source != "" {
		assert.Equal(t, s.Expect.Source, res.Source)
	}
	if s.Expect.BuildDir != "" {
		assert.Equal(t, s.Expect.BuildDir, res.BuildDir)
	}
	if s.Expect.IncludeCount != nil {
		assert.Len(t, res.Includes, *s.Expect.IncludeCount)
	}
	if len(s.Expect.Directives) > 0 {
		require.Len(t, res.Directives, len(s.Expect.Directives),
			"scenario %s directive count", s.Name)
		for i, want := range s.Expect.Directives {
			got := res.Directives[i].String()
			// Search paths land under the temp root; match by suffix.
			if strings.HasPrefix(want, "search-path=") {
				assert.True(t, matchSearchPath(got, want),
					"scenario %s directive %d: got %s, want suffix %s", s.Name, i, got, want)
				continue
			}
			assert.Equal(t, want, got, "scenario %s directive %d", s.Name, i)
		}
	}
}

// RunDir loads and runs every scenario under dir as a subtest.
func RunDir(t *testing.T, dir string) {
	t.Helper()
	scenarios, err := LoadDir(dir)
	require.NoError(t, err)
	for _, s := range scenarios {
		t.Run(s.Name, func(t *testing.T) {
			Run(t, s)
		})
	}
}

// matchSearchPath compares a search-path directive against an expected
// value whose path part may be a suffix of the actual (staged) path.
func matchSearchPath(got, want string) bool {
	gotPath := strings.TrimPrefix(got, "search-path=")
	wantPath := strings.TrimPrefix(want, "search-path=")
	if gotPath == got || wantPath == want {
		return false // not search-path directives
	}
	norm := strings.ReplaceAll(gotPath, "\\", "/")
	return strings.HasSuffix(norm, wantPath)
}
