package bindgen

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avifio/yuvgen/internal/artifact"
	"github.com/avifio/yuvgen/internal/decl"
	"github.com/avifio/yuvgen/internal/include"
	"github.com/avifio/yuvgen/internal/link"
)

func stubParse(hdr *decl.Header, err error) ParseFunc {
	return func(string, include.Paths, *AllowList) (*decl.Header, error) {
		return hdr, err
	}
}

func newGenerator(t *testing.T, parse ParseFunc) *Generator {
	t.Helper()
	return &Generator{
		Header:   "wrapper.h",
		Includes: include.Paths{"/proj/libyuv", "/proj/libyuv/include"},
		Directives: []link.Directive{
			{Kind: link.LinkStatic, Value: "yuv"},
			{Kind: link.SearchPath, Value: "/proj/libyuv/build"},
		},
		OutDir:   t.TempDir(),
		OutFile:  "libyuv_bindings.go",
		Package:  "yuv",
		BuildTag: "libyuv",
		Parse:    parse,
	}
}

func TestRunWritesBindings(t *testing.T) {
	g := newGenerator(t, stubParse(sampleHeader(), nil))
	loc := artifact.LocalStaticLibrary{SourceDir: "/proj/libyuv"}

	path, err := g.Run(loc)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(g.OutDir, "libyuv_bindings.go"), path)

	src, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(src)
	assert.Contains(t, out, "// Code generated by yuvgen. DO NOT EDIT.")
	assert.Contains(t, out, "#cgo LDFLAGS: -lyuv -L/proj/libyuv/build")
	assert.Contains(t, out, "func ARGBToI420(")
}

func TestRunRerunIsByteIdentical(t *testing.T) {
	g := newGenerator(t, stubParse(sampleHeader(), nil))
	loc := artifact.LocalStaticLibrary{SourceDir: "/proj/libyuv"}

	path, err := g.Run(loc)
	require.NoError(t, err)
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	_, err = g.Run(loc)
	require.NoError(t, err)
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRunOverwritesStaleOutput(t *testing.T) {
	g := newGenerator(t, stubParse(sampleHeader(), nil))
	path := filepath.Join(g.OutDir, g.OutFile)
	require.NoError(t, os.WriteFile(path, []byte("stale leftover content"), 0o644))

	_, err := g.Run(artifact.LocalStaticLibrary{SourceDir: "/proj/libyuv"})
	require.NoError(t, err)

	src, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(src), "stale")
}

func TestRunCreatesOutputDirectory(t *testing.T) {
	g := newGenerator(t, stubParse(sampleHeader(), nil))
	g.OutDir = filepath.Join(g.OutDir, "nested", "out")

	path, err := g.Run(artifact.LocalStaticLibrary{SourceDir: "/proj/libyuv"})
	require.NoError(t, err)
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestRunUnresolvedHintReplacesParseError(t *testing.T) {
	parseErr := &GenerationError{Code: ErrCodeParseFailed, Message: "parsing wrapper.h", Err: errors.New("libyuv.h: no such file")}
	g := newGenerator(t, stubParse(nil, parseErr))

	_, err := g.Run(artifact.Unresolved{Hint: artifact.UnresolvedHint})
	require.Error(t, err)

	var ge *GenerationError
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, ErrCodeParseFailed, ge.Code)
	assert.Contains(t, ge.Message, "YUVGEN_LIBYUV=0")
	assert.Contains(t, ge.Message, "libyuv-dev")
	assert.Contains(t, ge.Message, "CMake")
	assert.NotContains(t, ge.Message, "no such file")
}

func TestRunParseErrorPassesThroughWhenResolved(t *testing.T) {
	parseErr := &GenerationError{Code: ErrCodeSymbolMissing, Message: "allow-listed symbols not found in header: ARGBToI420"}
	g := newGenerator(t, stubParse(nil, parseErr))

	_, err := g.Run(artifact.LocalStaticLibrary{SourceDir: "/proj/libyuv"})
	require.Error(t, err)

	var ge *GenerationError
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, ErrCodeSymbolMissing, ge.Code)
	assert.Contains(t, ge.Message, "ARGBToI420")
}

func TestRunWriteFailure(t *testing.T) {
	g := newGenerator(t, stubParse(sampleHeader(), nil))

	// Point the output directory at an existing file so MkdirAll fails.
	blocker := filepath.Join(g.OutDir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))
	g.OutDir = blocker

	_, err := g.Run(artifact.LocalStaticLibrary{SourceDir: "/proj/libyuv"})
	require.Error(t, err)
	assert.True(t, IsWriteFailure(err))
}

func TestIsWriteFailure(t *testing.T) {
	assert.False(t, IsWriteFailure(nil))
	assert.False(t, IsWriteFailure(errors.New("plain")))
	assert.False(t, IsWriteFailure(&GenerationError{Code: ErrCodeParseFailed}))
	assert.True(t, IsWriteFailure(&GenerationError{Code: ErrCodeWriteFailed}))
}
