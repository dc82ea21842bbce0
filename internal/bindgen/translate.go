package bindgen

import (
	"fmt"
	"strings"
)

// goBinding describes how one C type crosses the cgo boundary.
type goBinding struct {
	// goType is the type spelled in the generated Go signature.
	goType string

	// convert wraps a Go expression into the C argument expression.
	convert func(expr string) string

	// fromC wraps a C call expression into the Go result expression.
	// Nil means the value needs no conversion.
	fromC func(expr string) string
}

// scalarBindings maps the C scalar spellings of the libyuv surface to
// their cgo counterparts.
var scalarBindings = map[string]goBinding{
	"int": {
		goType:  "int32",
		convert: func(e string) string { return "C.int(" + e + ")" },
		fromC:   func(e string) string { return "int32(" + e + ")" },
	},
	"uint32_t": {
		goType:  "uint32",
		convert: func(e string) string { return "C.uint32_t(" + e + ")" },
		fromC:   func(e string) string { return "uint32(" + e + ")" },
	},
	"int16_t": {
		goType:  "int16",
		convert: func(e string) string { return "C.int16_t(" + e + ")" },
		fromC:   func(e string) string { return "int16(" + e + ")" },
	},
	"uint16_t": {
		goType:  "uint16",
		convert: func(e string) string { return "C.uint16_t(" + e + ")" },
		fromC:   func(e string) string { return "uint16(" + e + ")" },
	},
	"int8_t": {
		goType:  "int8",
		convert: func(e string) string { return "C.int8_t(" + e + ")" },
		fromC:   func(e string) string { return "int8(" + e + ")" },
	},
	"uint8_t": {
		goType:  "uint8",
		convert: func(e string) string { return "C.uint8_t(" + e + ")" },
		fromC:   func(e string) string { return "uint8(" + e + ")" },
	},
	"float": {
		goType:  "float32",
		convert: func(e string) string { return "C.float(" + e + ")" },
		fromC:   func(e string) string { return "float32(" + e + ")" },
	},
}

// translateType maps a canonical C spelling from the declaration model
// to its Go binding. Enum and struct tags translate to the generated
// alias types, so values pass through the boundary unconverted.
func translateType(cType string) (goBinding, error) {
	if b, ok := scalarBindings[cType]; ok {
		return b, nil
	}

	switch {
	case cType == "void":
		return goBinding{goType: ""}, nil

	case strings.HasSuffix(cType, " *"):
		elem := strings.TrimSuffix(cType, " *")
		if tag, ok := tagOf(elem); ok {
			// *Tag aliases *C.struct_Tag / *C.enum_Tag directly.
			return goBinding{goType: "*" + tag}, nil
		}
		eb, ok := scalarBindings[elem]
		if !ok {
			return goBinding{}, fmt.Errorf("unsupported pointer element type %q", elem)
		}
		cPtr := "(*C." + cName(elem) + ")"
		return goBinding{
			goType:  "*" + eb.goType,
			convert: func(e string) string { return cPtr + "(" + e + ")" },
		}, nil

	default:
		if tag, ok := tagOf(cType); ok {
			return goBinding{goType: tag}, nil
		}
		return goBinding{}, fmt.Errorf("unsupported C type %q", cType)
	}
}

// tagOf extracts the tag from "struct Tag" / "enum Tag" spellings.
func tagOf(cType string) (string, bool) {
	if tag, ok := strings.CutPrefix(cType, "struct "); ok {
		return tag, true
	}
	if tag, ok := strings.CutPrefix(cType, "enum "); ok {
		return tag, true
	}
	return "", false
}

// cName maps a scalar spelling to the cgo identifier suffix.
func cName(cType string) string {
	if cType == "int" {
		return "int"
	}
	return cType
}
