package contract

// Type is the sum of Calor types a contract expression or parameter may
// carry. Only the primitive and single-level array shapes are supported by
// the verifier (spec.md §3); f32/f64 and nested arrays parse fine but the
// translator always rejects them.
type Type interface {
	TypeName() string
	typeNode()
}

// Primitive is one of the fixed scalar type names.
type Primitive string

const (
	I8     Primitive = "i8"
	I16    Primitive = "i16"
	I32    Primitive = "i32"
	I64    Primitive = "i64"
	U8     Primitive = "u8"
	U16    Primitive = "u16"
	U32    Primitive = "u32"
	U64    Primitive = "u64"
	Bool   Primitive = "bool"
	String Primitive = "string"
	F32    Primitive = "f32"
	F64    Primitive = "f64"
)

func (p Primitive) TypeName() string { return string(p) }
func (Primitive) typeNode()          {}

// Array is a single-level array type T[]. Array{Elem: Array{...}} (i.e. T[][])
// is syntactically representable but never a supported declaration.
type Array struct {
	Elem Type
}

func (a Array) TypeName() string { return a.Elem.TypeName() + "[]" }
func (Array) typeNode()          {}

// IsNested reports whether a is an array of arrays, which Calor's verifier
// never supports (spec.md §3: "single level only").
func (a Array) IsNested() bool {
	_, ok := a.Elem.(Array)
	return ok
}

// Param is one declared function parameter: a name and its Calor type.
type Param struct {
	Name string
	Type Type
}
