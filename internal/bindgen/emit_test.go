package bindgen

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avifio/yuvgen/internal/decl"
)

// sampleHeader is a small but representative slice of the extracted
// libyuv surface: a macro, a tagged enum, a struct tag, a matrix table
// and three function shapes (scalar result, struct-pointer parameter,
// void result with an enum parameter).
func sampleHeader() *decl.Header {
	return &decl.Header{
		Macros: []decl.MacroConst{
			{Name: "LIBYUV_VERSION", Value: 1914},
		},
		Enums: []decl.Enum{
			{
				Tag: "FilterMode",
				Consts: []decl.EnumConst{
					{Name: "kFilterNone", Value: 0},
					{Name: "kFilterBilinear", Value: 2},
				},
			},
		},
		Structs: []decl.Struct{
			{Tag: "YuvConstants"},
		},
		ConstTables: []decl.ConstTable{
			{Name: "kYuvI601Constants", StructTag: "YuvConstants"},
		},
		Functions: []decl.Function{
			{
				Name: "ARGBToI420",
				Params: []decl.Param{
					{Name: "src_argb", Type: "uint8_t *"},
					{Name: "src_stride_argb", Type: "int"},
					{Name: "dst_y", Type: "uint8_t *"},
					{Name: "dst_stride_y", Type: "int"},
					{Name: "width", Type: "int"},
					{Name: "height", Type: "int"},
				},
				Result: "int",
			},
			{
				Name: "I420ToARGBMatrix",
				Params: []decl.Param{
					{Name: "src_y", Type: "uint8_t *"},
					{Name: "src_stride_y", Type: "int"},
					{Name: "dst_argb", Type: "uint8_t *"},
					{Name: "dst_stride_argb", Type: "int"},
					{Name: "yuvconstants", Type: "struct YuvConstants *"},
					{Name: "width", Type: "int"},
					{Name: "height", Type: "int"},
				},
				Result: "int",
			},
			{
				Name: "ScalePlane",
				Params: []decl.Param{
					{Name: "src", Type: "uint8_t *"},
					{Name: "src_stride", Type: "int"},
					{Name: "src_width", Type: "int"},
					{Name: "src_height", Type: "int"},
					{Name: "dst", Type: "uint8_t *"},
					{Name: "dst_stride", Type: "int"},
					{Name: "dst_width", Type: "int"},
					{Name: "dst_height", Type: "int"},
					{Name: "filtering", Type: "enum FilterMode"},
				},
				Result: "void",
			},
		},
	}
}

func sampleOptions() RenderOptions {
	return RenderOptions{
		Package:  "yuv",
		BuildTag: "libyuv",
		Header:   "wrapper.h",
		CFlags:   []string{"-I/proj/libyuv", "-I/proj/libyuv/include"},
		LDFlags:  "-lyuv -L/proj/libyuv/build",
	}
}

func TestRenderGolden(t *testing.T) {
	src, err := Render(sampleHeader(), sampleOptions())
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "bindings", src)
}

func TestRenderDeterministic(t *testing.T) {
	first, err := Render(sampleHeader(), sampleOptions())
	require.NoError(t, err)
	second, err := Render(sampleHeader(), sampleOptions())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRenderWithoutBuildTag(t *testing.T) {
	opts := sampleOptions()
	opts.BuildTag = ""
	src, err := Render(sampleHeader(), opts)
	require.NoError(t, err)
	assert.NotContains(t, string(src), "//go:build")
}

func TestRenderWithoutFlags(t *testing.T) {
	opts := sampleOptions()
	opts.CFlags = nil
	opts.LDFlags = ""
	src, err := Render(sampleHeader(), opts)
	require.NoError(t, err)

	out := string(src)
	assert.NotContains(t, out, "#cgo CFLAGS")
	assert.NotContains(t, out, "#cgo LDFLAGS")
	assert.Contains(t, out, `#include "wrapper.h"`)
}

func TestRenderAnonymousEnum(t *testing.T) {
	hdr := &decl.Header{
		Enums: []decl.Enum{
			{Consts: []decl.EnumConst{{Name: "kCpuHasNEON", Value: 4}}},
		},
	}
	src, err := Render(hdr, sampleOptions())
	require.NoError(t, err)

	out := string(src)
	assert.Contains(t, out, "kCpuHasNEON = 4")
	assert.NotContains(t, out, "type  =")
}

func TestRenderKeywordParameter(t *testing.T) {
	hdr := &decl.Header{
		Functions: []decl.Function{
			{
				Name:   "HalfFloatPlane",
				Params: []decl.Param{{Name: "range", Type: "float"}},
				Result: "int",
			},
		},
	}
	src, err := Render(hdr, sampleOptions())
	require.NoError(t, err)

	out := string(src)
	assert.Contains(t, out, "range_ float32")
	assert.Contains(t, out, "C.float(range_)")
}

func TestRenderUnsupportedTypeFails(t *testing.T) {
	hdr := &decl.Header{
		Functions: []decl.Function{
			{Name: "Broken", Params: []decl.Param{{Name: "x", Type: "double"}}, Result: "void"},
		},
	}
	_, err := Render(hdr, sampleOptions())
	require.Error(t, err)

	var ge *GenerationError
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, ErrCodeParseFailed, ge.Code)
	assert.True(t, strings.Contains(ge.Message, "Broken"))
}
