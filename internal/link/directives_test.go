package link

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avifio/yuvgen/internal/artifact"
)

func TestEmitLocal(t *testing.T) {
	loc := artifact.LocalStaticLibrary{
		LibraryFile: "/proj/libyuv/build/libyuv.a",
		ObjectDir:   "/proj/libyuv/build",
		SourceDir:   "/proj/libyuv",
	}

	got := Emit(loc, "linux")
	want := []Directive{
		{Kind: LinkStatic, Value: "yuv"},
		{Kind: SearchPath, Value: "/proj/libyuv/build"},
	}
	assert.Equal(t, want, got)
}

func TestEmitLocalWindowsRuntimeSet(t *testing.T) {
	loc := artifact.LocalStaticLibrary{ObjectDir: `C:\proj\libyuv\build`}

	got := Emit(loc, "windows")
	require.Len(t, got, 5)
	assert.Equal(t, Directive{Kind: LinkStatic, Value: "yuv"}, got[0])
	assert.Equal(t, []Directive{
		{Kind: LinkDynamic, Value: "msvcrt"},
		{Kind: LinkDynamic, Value: "mingw32"},
		{Kind: LinkDynamic, Value: "gcc"},
	}, got[2:])
}

func TestEmitSystemPreservesOrder(t *testing.T) {
	loc := artifact.SystemPackage{
		Libs:      []string{"yuv", "jpeg", "m"},
		LinkPaths: []string{"/opt/lib", "/usr/lib"},
	}

	got := Emit(loc, "linux")
	want := []Directive{
		{Kind: Link, Value: "yuv"},
		{Kind: Link, Value: "jpeg"},
		{Kind: Link, Value: "m"},
		{Kind: SearchPath, Value: "/opt/lib"},
		{Kind: SearchPath, Value: "/usr/lib"},
	}
	assert.Equal(t, want, got)
}

func TestEmitSystemCounts(t *testing.T) {
	loc := artifact.SystemPackage{
		Libs:      []string{"yuv"},
		LinkPaths: []string{"/a", "/b", "/c"},
	}

	got := Emit(loc, "linux")
	links, paths := 0, 0
	for _, d := range got {
		switch d.Kind {
		case SearchPath:
			paths++
		case Link:
			links++
		}
	}
	assert.Equal(t, 1, links)
	assert.Equal(t, 3, paths)
}

func TestEmitUnresolvedBareLink(t *testing.T) {
	got := Emit(artifact.Unresolved{Hint: "nope"}, "linux")
	assert.Equal(t, []Directive{{Kind: Link, Value: "yuv"}}, got)
}

func TestDirectiveString(t *testing.T) {
	assert.Equal(t, "link-static=yuv", Directive{Kind: LinkStatic, Value: "yuv"}.String())
	assert.Equal(t, "search-path=/opt/lib", Directive{Kind: SearchPath, Value: "/opt/lib"}.String())
}

func TestLDFlags(t *testing.T) {
	flags := LDFlags([]Directive{
		{Kind: LinkStatic, Value: "yuv"},
		{Kind: SearchPath, Value: "/proj/libyuv/build"},
		{Kind: LinkDynamic, Value: "msvcrt"},
	})
	assert.Equal(t, "-lyuv -L/proj/libyuv/build -lmsvcrt", flags)
}

func TestLDFlagsNormalizesSeparators(t *testing.T) {
	flags := LDFlags([]Directive{{Kind: SearchPath, Value: `C:\proj\libyuv\build`}})
	assert.Equal(t, "-LC:/proj/libyuv/build", flags)
}

func TestLDFlagsEmpty(t *testing.T) {
	assert.Equal(t, "", LDFlags(nil))
}
