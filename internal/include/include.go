// Package include composes the header search paths handed to the
// C-parsing front end.
package include

import (
	"strings"

	"github.com/avifio/yuvgen/internal/artifact"
)

// Paths is the ordered header search path set. It stays a structured
// sequence end to end; paths are never joined into one string and
// re-split, so whitespace in a path cannot corrupt the flag list.
type Paths []string

// FromLocation derives the include paths for a resolved location.
//
// A local build contributes both the vendored source root and its
// include subdirectory, so headers resolve whether they are referenced
// as "libyuv.h" or "libyuv/basic_types.h". A system package contributes
// the registry's include paths in reported order. Unresolved contributes
// nothing; the parser will fail and the deferred hint takes over.
func FromLocation(loc artifact.Location) Paths {
	switch l := loc.(type) {
	case artifact.LocalStaticLibrary:
		root := Normalize(l.SourceDir)
		return Paths{root, root + "/include"}
	case artifact.SystemPackage:
		out := make(Paths, 0, len(l.IncludePaths))
		for _, p := range l.IncludePaths {
			out = append(out, Normalize(p))
		}
		return out
	default:
		return nil
	}
}

// Normalize rewrites path separators to forward slashes. The downstream
// parser expects POSIX-style include flags on every host, so backslashes
// are rewritten unconditionally rather than via filepath.ToSlash.
func Normalize(path string) string {
	return strings.ReplaceAll(path, `\`, "/")
}

// Flags returns one -I<path> token per path, preserving order. Each
// token is passed to the parser individually, never as a combined
// string.
func (p Paths) Flags() []string {
	out := make([]string, len(p))
	for i, path := range p {
		out[i] = "-I" + path
	}
	return out
}

// String renders the flags space-joined, for diagnostics only.
func (p Paths) String() string {
	return strings.Join(p.Flags(), " ")
}
