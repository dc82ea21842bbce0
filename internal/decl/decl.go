package decl

// Param is a single function parameter.
type Param struct {
	// Name is the parameter name from the header, or a synthesized
	// p<N> name when the prototype omits it.
	Name string `json:"name"`

	// Type is the canonical C type spelling (e.g. "uint8_t *", "int").
	// Qualifiers are dropped; the binding surface has no use for const.
	Type string `json:"type"`
}

// Function is an allow-listed C function prototype.
type Function struct {
	Name   string  `json:"name"`
	Params []Param `json:"params"`

	// Result is the C result type spelling, "void" for none.
	Result string `json:"result"`
}

// EnumConst is a single enumerator with its resolved value.
type EnumConst struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// Enum is an enum tag together with its allow-listed enumerators, in
// allow-list order.
type Enum struct {
	Tag    string      `json:"tag"`
	Consts []EnumConst `json:"consts"`
}

// Struct is a bare struct tag exposed as a type (e.g. YuvConstants).
type Struct struct {
	Tag string `json:"tag"`
}

// ConstTable is an extern const struct object, such as kYuvI601Constants.
type ConstTable struct {
	Name string `json:"name"`

	// StructTag is the tag of the struct type (e.g. "YuvConstants").
	StructTag string `json:"struct_tag"`
}

// MacroConst is an object-like macro that expands to an integer
// constant, such as LIBYUV_VERSION.
type MacroConst struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// Header aggregates every declaration extracted for the allow-list.
// Order within each category follows allow-list order, which makes the
// generated output deterministic.
type Header struct {
	Functions   []Function   `json:"functions"`
	Enums       []Enum       `json:"enums"`
	Structs     []Struct     `json:"structs"`
	ConstTables []ConstTable `json:"const_tables"`
	Macros      []MacroConst `json:"macros"`
}

// Count returns the total number of extracted declarations, counting
// each enumerator individually.
func (h *Header) Count() int {
	n := len(h.Functions) + len(h.Structs) + len(h.ConstTables) + len(h.Macros)
	for _, e := range h.Enums {
		n += 1 + len(e.Consts)
	}
	return n
}
