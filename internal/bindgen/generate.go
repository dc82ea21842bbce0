// Package bindgen parses the wrapper header and generates the typed cgo
// binding surface, restricted to a fixed allow-list of symbols.
package bindgen

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/avifio/yuvgen/internal/artifact"
	"github.com/avifio/yuvgen/internal/decl"
	"github.com/avifio/yuvgen/internal/include"
	"github.com/avifio/yuvgen/internal/link"
)

// Generator runs one binding generation for a resolved artifact
// location. Failure is fatal for the whole build invocation; there is no
// partial output.
type Generator struct {
	// Header is the wrapper header path.
	Header string

	// Includes are the composed header search paths.
	Includes include.Paths

	// Directives are the emitted linker instructions.
	Directives []link.Directive

	// Allow is the symbol allow-list. Nil means Default().
	Allow *AllowList

	// OutDir is the build output directory.
	OutDir string

	// OutFile is the generated file name within OutDir.
	OutFile string

	// Package and BuildTag shape the generated file.
	Package  string
	BuildTag string

	// Parse overrides the header parser, for tests. Nil means Parse.
	Parse ParseFunc
}

// Run parses, renders and writes the bindings file. The returned path is
// the written output file.
//
// When parsing fails and the location is Unresolved, the location's
// deferred hint replaces the raw parser error: "header not found" is
// true but not actionable, while the hint names the three remedies.
func (g *Generator) Run(loc artifact.Location) (string, error) {
	hdr, err := g.parse()
	if err != nil {
		if u, ok := loc.(artifact.Unresolved); ok {
			return "", &GenerationError{Code: ErrCodeParseFailed, Message: u.Hint}
		}
		return "", err
	}

	src, err := Render(hdr, RenderOptions{
		Package:  g.Package,
		BuildTag: g.BuildTag,
		Header:   include.Normalize(g.Header),
		CFlags:   g.Includes.Flags(),
		LDFlags:  link.LDFlags(g.Directives),
	})
	if err != nil {
		return "", err
	}

	outPath := filepath.Join(g.OutDir, g.OutFile)
	if err := os.MkdirAll(g.OutDir, 0o755); err != nil {
		return "", &GenerationError{Code: ErrCodeWriteFailed, Message: fmt.Sprintf("creating output directory %s", g.OutDir), Err: err}
	}
	// Full overwrite on every invocation, never an append.
	if err := os.WriteFile(outPath, src, 0o644); err != nil {
		return "", &GenerationError{Code: ErrCodeWriteFailed, Message: fmt.Sprintf("writing %s", outPath), Err: err}
	}
	return outPath, nil
}

func (g *Generator) parse() (*decl.Header, error) {
	parse := g.Parse
	if parse == nil {
		parse = Parse
	}
	allow := g.Allow
	if allow == nil {
		allow = Default()
	}
	return parse(g.Header, g.Includes, allow)
}
