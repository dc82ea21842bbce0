// Package link turns a resolved artifact location into linker
// directives for the generated cgo file.
package link

import (
	"fmt"
	"strings"

	"github.com/avifio/yuvgen/internal/artifact"
)

// DirectiveKind distinguishes the linker instruction variants.
type DirectiveKind string

const (
	// LinkStatic links a library statically (-l with static preference).
	LinkStatic DirectiveKind = "link-static"

	// LinkDynamic links a library dynamically.
	LinkDynamic DirectiveKind = "link-dynamic"

	// Link links a library with no binding preference.
	Link DirectiveKind = "link"

	// SearchPath adds a linker library search path.
	SearchPath DirectiveKind = "search-path"
)

// Directive is one linker instruction. Value is a library name for the
// link kinds and a directory for SearchPath.
type Directive struct {
	Kind  DirectiveKind `json:"kind"`
	Value string        `json:"value"`
}

// String renders the directive for diagnostics, in the
// kind=value form the build log shows.
func (d Directive) String() string {
	return fmt.Sprintf("%s=%s", d.Kind, d.Value)
}

// windowsRuntimeLibs are linked dynamically on Windows alongside a local
// static archive. The archive is built with a MinGW toolchain and
// references C runtime and GCC-compatibility symbols these provide.
var windowsRuntimeLibs = []string{"msvcrt", "mingw32", "gcc"}

// Emit produces the linker directives for a resolved location.
//
//   - LocalStaticLibrary: static link plus the archive's directory as a
//     search path; on a Windows host, the MinGW runtime set is appended.
//   - SystemPackage: one link per reported library and one search path
//     per reported link path, in registry order.
//   - Unresolved: a single bare link by conventional name. The final
//     link may fail, but a missing-symbol error beats silence.
func Emit(loc artifact.Location, hostOS string) []Directive {
	switch l := loc.(type) {
	case artifact.LocalStaticLibrary:
		out := []Directive{
			{Kind: LinkStatic, Value: artifact.LibraryName},
			{Kind: SearchPath, Value: l.ObjectDir},
		}
		if hostOS == "windows" {
			for _, lib := range windowsRuntimeLibs {
				out = append(out, Directive{Kind: LinkDynamic, Value: lib})
			}
		}
		return out

	case artifact.SystemPackage:
		out := make([]Directive, 0, len(l.Libs)+len(l.LinkPaths))
		for _, lib := range l.Libs {
			out = append(out, Directive{Kind: Link, Value: lib})
		}
		for _, path := range l.LinkPaths {
			out = append(out, Directive{Kind: SearchPath, Value: path})
		}
		return out

	case artifact.Unresolved:
		return []Directive{{Kind: Link, Value: artifact.LibraryName}}

	default:
		// Location is a closed sum; a new variant is a programming error.
		panic(fmt.Sprintf("link: unknown location variant %T", loc))
	}
}

// LDFlags renders directives as a cgo LDFLAGS value. Search paths are
// normalized to forward slashes so the generated file is host-agnostic.
func LDFlags(directives []Directive) string {
	var b strings.Builder
	for i, d := range directives {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch d.Kind {
		case SearchPath:
			b.WriteString("-L")
			b.WriteString(strings.ReplaceAll(d.Value, `\`, "/"))
		default:
			b.WriteString("-l")
			b.WriteString(d.Value)
		}
	}
	return b.String()
}
