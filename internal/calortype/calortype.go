// Package calortype is the Translator's type metadata table: for each
// primitive Calor type it records the SMT bit width and a small set of
// flags that drive the width-coercion and mixed-sign comparison policy of
// the Contract Translator (spec.md §4.B).
//
// The shape is modeled on the teacher library's internal/ops type table
// (Types/BinOps/UnOps, keyed by flag bits) which drives its own code
// generator; here the same shape drives a coercion policy instead of
// codegen, so there is no generator and no StName/ConType/SymType split —
// just the parts the Translator actually consults.
package calortype

import "github.com/calorlang/contractverify/contract"

// Flag is a bitmask describing a primitive type's arithmetic shape.
type Flag uint8

const (
	IsInteger Flag = 1 << iota
	IsSigned
	IsUnsigned
	IsBool
	IsString
)

// Info is one row of the primitive type table.
type Info struct {
	Name  contract.Primitive
	Bits  uint
	Flags Flag
}

// Table lists every primitive Calor type the verifier knows about,
// including the unsupported f32/f64 (no flags) so lookups for them
// succeed and declare() can reject them with a precise reason rather than
// an "unknown type" message.
var Table = []Info{
	{contract.I8, 8, IsInteger | IsSigned},
	{contract.I16, 16, IsInteger | IsSigned},
	{contract.I32, 32, IsInteger | IsSigned},
	{contract.I64, 64, IsInteger | IsSigned},
	{contract.U8, 8, IsInteger | IsUnsigned},
	{contract.U16, 16, IsInteger | IsUnsigned},
	{contract.U32, 32, IsInteger | IsUnsigned},
	{contract.U64, 64, IsInteger | IsUnsigned},
	{contract.Bool, 1, IsBool},
	{contract.String, 0, IsString},
	{contract.F32, 32, 0},
	{contract.F64, 64, 0},
}

var byName = func() map[contract.Primitive]Info {
	m := make(map[contract.Primitive]Info, len(Table))
	for _, info := range Table {
		m[info.Name] = info
	}
	return m
}()

// Lookup returns the metadata row for a primitive type name.
func Lookup(name contract.Primitive) (Info, bool) {
	info, ok := byName[name]
	return info, ok
}

// Supported reports whether a primitive is one the SMT layer can represent:
// every integer width, bool, and string, but not f32/f64.
func (i Info) Supported() bool {
	return i.Flags&(IsInteger|IsBool|IsString) != 0
}

// ResultWidth is the width policy for a binary arithmetic or comparison op
// over two integer operands of widths a and b: the wider of the two
// (spec.md §4.B).
func ResultWidth(a, b uint) uint {
	if a > b {
		return a
	}
	return b
}

// UnsignedCompare reports whether a comparison between operands with these
// two flag sets should use unsigned semantics. Per spec.md §4.B this is an
// intentional, narrow rule: only when BOTH operands are declared unsigned.
// Two unsigned operands compare unsigned whatever their widths; any mix
// with a signed operand uses signed comparison.
func UnsignedCompare(a, b Flag) bool {
	return a&IsUnsigned != 0 && b&IsUnsigned != 0
}

// SignedForWidth returns the signed primitive type name of the given width.
func SignedForWidth(bits uint) contract.Primitive {
	switch bits {
	case 8:
		return contract.I8
	case 16:
		return contract.I16
	case 32:
		return contract.I32
	default:
		return contract.I64
	}
}

// UnsignedForWidth returns the unsigned primitive type name of the given
// width.
func UnsignedForWidth(bits uint) contract.Primitive {
	switch bits {
	case 8:
		return contract.U8
	case 16:
		return contract.U16
	case 32:
		return contract.U32
	default:
		return contract.U64
	}
}

// NarrowestSignedWidth returns the narrowest of i8/i16/i32/i64 whose signed
// range contains v, per the literal-width policy in spec.md §4.B. Every
// int64 fits in 64 bits, so the returned width always holds v and no
// literal is truncated.
func NarrowestSignedWidth(v int64) uint {
	switch {
	case v >= -1<<7 && v <= 1<<7-1:
		return 8
	case v >= -1<<15 && v <= 1<<15-1:
		return 16
	case v >= -1<<31 && v <= 1<<31-1:
		return 32
	default:
		return 64
	}
}
