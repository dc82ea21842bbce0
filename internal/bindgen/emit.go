package bindgen

import (
	"fmt"
	"go/format"
	"strings"

	"github.com/avifio/yuvgen/internal/decl"
)

// RenderOptions carries everything the emitter needs besides the
// declarations themselves.
type RenderOptions struct {
	// Package is the Go package name the generated file declares.
	Package string

	// BuildTag gates the file (//go:build <tag>). Empty omits the tag.
	BuildTag string

	// Header is the include path written into the cgo preamble.
	Header string

	// CFlags are the -I tokens for the preamble, in order.
	CFlags []string

	// LDFlags is the rendered linker directive line.
	LDFlags string
}

// goKeywords guards generated parameter names. Header parameter names
// are kept verbatim otherwise.
var goKeywords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true,
	"continue": true, "default": true, "defer": true, "else": true,
	"fallthrough": true, "for": true, "func": true, "go": true,
	"goto": true, "if": true, "import": true, "interface": true,
	"map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true,
	"var": true,
}

// Render produces the generated bindings file. Output is deterministic:
// declarations are emitted in the order they appear in the extracted
// header model, which itself follows allow-list order.
func Render(hdr *decl.Header, opts RenderOptions) ([]byte, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "// Code generated by yuvgen. DO NOT EDIT.\n")
	fmt.Fprintf(&b, "//\n// Binding surface for libyuv, restricted to the yuvgen allow-list.\n")
	fmt.Fprintf(&b, "// Symbols outside this file must not be assumed present.\n\n")
	if opts.BuildTag != "" {
		fmt.Fprintf(&b, "//go:build %s\n\n", opts.BuildTag)
	}
	fmt.Fprintf(&b, "package %s\n\n", opts.Package)

	b.WriteString("/*\n")
	if len(opts.CFlags) > 0 {
		fmt.Fprintf(&b, "#cgo CFLAGS: %s\n", strings.Join(opts.CFlags, " "))
	}
	if opts.LDFlags != "" {
		fmt.Fprintf(&b, "#cgo LDFLAGS: %s\n", opts.LDFlags)
	}
	fmt.Fprintf(&b, "#include \"%s\"\n", opts.Header)
	b.WriteString("*/\n")
	b.WriteString("import \"C\"\n\n")

	for _, m := range hdr.Macros {
		fmt.Fprintf(&b, "const %s = %d\n\n", m.Name, m.Value)
	}

	for _, e := range hdr.Enums {
		if e.Tag != "" {
			fmt.Fprintf(&b, "type %s = C.enum_%s\n\n", e.Tag, e.Tag)
		}
		if len(e.Consts) == 0 {
			continue
		}
		b.WriteString("const (\n")
		for _, c := range e.Consts {
			if e.Tag != "" {
				fmt.Fprintf(&b, "\t%s %s = %d\n", c.Name, e.Tag, c.Value)
			} else {
				fmt.Fprintf(&b, "\t%s = %d\n", c.Name, c.Value)
			}
		}
		b.WriteString(")\n\n")
	}

	for _, s := range hdr.Structs {
		fmt.Fprintf(&b, "type %s = C.struct_%s\n\n", s.Tag, s.Tag)
	}

	for _, tbl := range hdr.ConstTables {
		fmt.Fprintf(&b, "var %s = &C.%s\n\n", tbl.Name, tbl.Name)
	}

	for _, fn := range hdr.Functions {
		if err := renderFunction(&b, fn); err != nil {
			return nil, &GenerationError{Code: ErrCodeParseFailed, Message: fmt.Sprintf("translating %s", fn.Name), Err: err}
		}
	}

	src, err := format.Source([]byte(b.String()))
	if err != nil {
		return nil, &GenerationError{Code: ErrCodeParseFailed, Message: "formatting generated bindings", Err: err}
	}
	return src, nil
}

// renderFunction emits one typed wrapper around the C function.
func renderFunction(b *strings.Builder, fn decl.Function) error {
	type arg struct {
		name string
		bind goBinding
	}

	args := make([]arg, 0, len(fn.Params))
	for _, p := range fn.Params {
		bind, err := translateType(p.Type)
		if err != nil {
			return fmt.Errorf("parameter %s: %w", p.Name, err)
		}
		name := p.Name
		if goKeywords[name] {
			name += "_"
		}
		args = append(args, arg{name: name, bind: bind})
	}

	result, err := translateType(fn.Result)
	if err != nil {
		return fmt.Errorf("result: %w", err)
	}

	var sig []string
	var call []string
	for _, a := range args {
		sig = append(sig, a.name+" "+a.bind.goType)
		expr := a.name
		if a.bind.convert != nil {
			expr = a.bind.convert(expr)
		}
		call = append(call, expr)
	}

	fmt.Fprintf(b, "func %s(%s)", fn.Name, strings.Join(sig, ", "))
	if result.goType != "" {
		fmt.Fprintf(b, " %s", result.goType)
	}
	b.WriteString(" {\n")

	callExpr := fmt.Sprintf("C.%s(%s)", fn.Name, strings.Join(call, ", "))
	switch {
	case result.goType == "":
		fmt.Fprintf(b, "\t%s\n", callExpr)
	case result.fromC != nil:
		fmt.Fprintf(b, "\treturn %s\n", result.fromC(callExpr))
	default:
		fmt.Fprintf(b, "\treturn %s\n", callExpr)
	}
	b.WriteString("}\n\n")
	return nil
}
