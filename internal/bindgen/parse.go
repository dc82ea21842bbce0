package bindgen

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"

	cc "modernc.org/cc/v4"

	"github.com/avifio/yuvgen/internal/decl"
	"github.com/avifio/yuvgen/internal/include"
)

// ParseFunc parses the wrapper header into the declaration model,
// restricted to the allow-list. The production implementation is Parse;
// tests substitute a stub so they can run without a C toolchain.
type ParseFunc func(header string, includes include.Paths, allow *AllowList) (*decl.Header, error)

// Parse runs the C front end over the wrapper header and extracts the
// allow-listed declarations.
//
// Each include path is handed to the front end as its own search-path
// entry, never as one pre-joined argument string, so paths containing
// whitespace survive intact. Comments are not retained and no self-test
// code is produced; the output is the declaration model only.
func Parse(header string, includes include.Paths, allow *AllowList) (*decl.Header, error) {
	cfg, err := cc.NewConfig(runtime.GOOS, runtime.GOARCH)
	if err != nil {
		return nil, &GenerationError{Code: ErrCodeParseFailed, Message: "configuring C front end", Err: err}
	}
	for _, p := range includes {
		cfg.IncludePaths = append(cfg.IncludePaths, p)
		cfg.SysIncludePaths = append(cfg.SysIncludePaths, p)
	}

	sources := []cc.Source{
		{Name: "<predefined>", Value: cfg.Predefined},
		{Name: "<builtin>", Value: cc.Builtin},
		{Name: header},
	}
	ast, err := cc.Translate(cfg, sources)
	if err != nil {
		return nil, &GenerationError{Code: ErrCodeParseFailed, Message: fmt.Sprintf("parsing %s", header), Err: err}
	}

	return extract(ast, allow)
}

// extract walks the allow-list in its fixed order and classifies each
// name against the translated AST. Any name that does not resolve fails
// generation; missing names are collected so the operator sees all of
// them at once.
func extract(ast *cc.AST, allow *AllowList) (*decl.Header, error) {
	hdr := &decl.Header{}
	enums := map[string]*decl.Enum{}
	tags := enumeratorTags(ast)
	var enumOrder []string
	var looseConsts []decl.EnumConst
	var missing []string

	for _, name := range allow.Names() {
		if m, ok := ast.Macros[name]; ok {
			if v, ok := macroValue(m); ok {
				hdr.Macros = append(hdr.Macros, decl.MacroConst{Name: name, Value: v})
				continue
			}
		}

		if !classify(ast, name, tags, hdr, enums, &enumOrder, &looseConsts) {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		return nil, &GenerationError{
			Code:    ErrCodeSymbolMissing,
			Message: fmt.Sprintf("allow-listed symbols not found in header: %s", strings.Join(missing, ", ")),
		}
	}

	for _, tag := range enumOrder {
		hdr.Enums = append(hdr.Enums, *enums[tag])
	}
	// Enumerators whose tag is not itself allow-listed are emitted as
	// plain integer constants under an anonymous enum.
	if len(looseConsts) > 0 {
		hdr.Enums = append(hdr.Enums, decl.Enum{Consts: looseConsts})
	}
	return hdr, nil
}

// enumeratorTags maps every enumerator name declared in the file scope
// to the tag of its enclosing enum. The enumerator's own type reports
// the underlying integer, not the enum, so membership comes from the
// specifier's enumerator list instead.
func enumeratorTags(ast *cc.AST) map[string]string {
	tags := map[string]string{}
	for tag, nodes := range ast.Scope.Nodes {
		for _, node := range nodes {
			es, ok := node.(*cc.EnumSpecifier)
			if !ok {
				continue
			}
			for l := es.EnumeratorList; l != nil; l = l.EnumeratorList {
				if l.Enumerator != nil {
					tags[l.Enumerator.Token.SrcStr()] = tag
				}
			}
		}
	}
	return tags
}

// classify resolves one allow-listed name in the AST's file scope.
// Returns false when the name is absent or has a shape the generator
// cannot model.
func classify(ast *cc.AST, name string, tags map[string]string, hdr *decl.Header, enums map[string]*decl.Enum, enumOrder *[]string, loose *[]decl.EnumConst) bool {
	for _, node := range ast.Scope.Nodes[name] {
		switch n := node.(type) {
		case *cc.Declarator:
			switch n.Type().Kind() {
			case cc.Function:
				fn, err := extractFunction(name, n.Type())
				if err != nil {
					return false
				}
				hdr.Functions = append(hdr.Functions, *fn)
				return true
			case cc.Struct:
				tag := structTag(n.Type())
				if tag == "" {
					return false
				}
				hdr.ConstTables = append(hdr.ConstTables, decl.ConstTable{Name: name, StructTag: tag})
				return true
			}

		case *cc.Enumerator:
			v, ok := enumeratorValue(n)
			if !ok {
				return false
			}
			ec := decl.EnumConst{Name: name, Value: v}
			if tag := tags[name]; tag != "" {
				if e, ok := enums[tag]; ok {
					e.Consts = append(e.Consts, ec)
					return true
				}
			}
			*loose = append(*loose, ec)
			return true

		case *cc.EnumSpecifier:
			if _, ok := enums[name]; !ok {
				enums[name] = &decl.Enum{Tag: name}
				*enumOrder = append(*enumOrder, name)
			}
			return true

		case *cc.StructOrUnionSpecifier:
			hdr.Structs = append(hdr.Structs, decl.Struct{Tag: name})
			return true
		}
	}
	return false
}

// extractFunction models a C function prototype. Parameter names absent
// from the prototype are synthesized as p0, p1, ...
func extractFunction(name string, t cc.Type) (*decl.Function, error) {
	ft, ok := t.(*cc.FunctionType)
	if !ok {
		return nil, fmt.Errorf("%s: not a function type", name)
	}

	result, err := cSpelling(ft.Result())
	if err != nil {
		return nil, fmt.Errorf("%s: result: %w", name, err)
	}

	fn := &decl.Function{Name: name, Result: result}
	for i, p := range ft.Parameters() {
		spelling, err := cSpelling(p.Type())
		if err != nil {
			return nil, fmt.Errorf("%s: parameter %d: %w", name, i, err)
		}
		if spelling == "void" {
			// void parameter list
			continue
		}
		pname := p.Name()
		if pname == "" {
			pname = fmt.Sprintf("p%d", i)
		}
		fn.Params = append(fn.Params, decl.Param{Name: pname, Type: spelling})
	}
	return fn, nil
}

// cSpelling produces the canonical C spelling for the limited type
// vocabulary of the libyuv surface. Qualifiers are dropped. An
// unrecognized type fails generation; the allow-list is versioned with
// the header and a new type shape means the list is stale.
func cSpelling(t cc.Type) (string, error) {
	switch t.Kind() {
	case cc.Void:
		return "void", nil
	case cc.Int:
		return "int", nil
	case cc.UInt:
		return "uint32_t", nil
	case cc.Short:
		return "int16_t", nil
	case cc.UShort:
		return "uint16_t", nil
	case cc.Char, cc.SChar:
		return "int8_t", nil
	case cc.UChar:
		return "uint8_t", nil
	case cc.Float:
		return "float", nil
	case cc.Double:
		return "double", nil
	case cc.Enum:
		tag := enumTag(t)
		if tag == "" {
			return "", fmt.Errorf("anonymous enum type")
		}
		return "enum " + tag, nil
	case cc.Struct:
		tag := structTag(t)
		if tag == "" {
			return "", fmt.Errorf("anonymous struct type")
		}
		return "struct " + tag, nil
	case cc.Ptr:
		pt, ok := t.(*cc.PointerType)
		if !ok {
			return "", fmt.Errorf("unexpected pointer representation %T", t)
		}
		inner, err := cSpelling(pt.Elem())
		if err != nil {
			return "", err
		}
		return inner + " *", nil
	default:
		return "", fmt.Errorf("unsupported C type %v", t)
	}
}

func enumTag(t cc.Type) string {
	if et, ok := t.(*cc.EnumType); ok {
		tok := et.Tag()
		return tok.SrcStr()
	}
	return ""
}

func structTag(t cc.Type) string {
	if st, ok := t.(*cc.StructType); ok {
		tok := st.Tag()
		return tok.SrcStr()
	}
	return ""
}

func enumeratorValue(n *cc.Enumerator) (int64, bool) {
	switch v := n.Value().(type) {
	case cc.Int64Value:
		return int64(v), true
	case cc.UInt64Value:
		return int64(v), true
	default:
		return 0, false
	}
}

// macroValue resolves an object-like macro to an integer constant.
func macroValue(m *cc.Macro) (int64, bool) {
	if m.IsFnLike {
		return 0, false
	}
	var b strings.Builder
	for _, tok := range m.ReplacementList() {
		b.WriteString(tok.SrcStr())
	}
	s := strings.TrimSpace(b.String())
	s = strings.TrimPrefix(strings.TrimSuffix(s, ")"), "(")
	v, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
