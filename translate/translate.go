// Package translate is the Contract Translator (spec.md §4.B): it lowers a
// contract-expression AST into a typed Z3 term, owns the symbol table for
// one obligation, manages quantifier scoping and synthetic array-length
// variables, and never throws — a failed lowering returns a diagnostic
// instead.
//
// The term-construction style follows the teacher's per-kind wrapper files
// (z3/string.go, z3/array.go, z3/char.go): one small function per AST node
// kind, building the term with the matching z3 method and nothing else.
package translate

import (
	"fmt"
	"sort"

	"github.com/calorlang/contractverify/contract"
	"github.com/calorlang/contractverify/internal/calortype"
	"github.com/calorlang/contractverify/internal/smtctx"

	"github.com/ralscha/go-z3/z3"
)

// indexWidth is the fixed width used for array indices and array/string
// length variables (spec.md §3: "len(a) always yields an unsigned 32-bit
// term").
const indexWidth = 32

// lengthSuffix names the synthetic companion variable an array declaration
// creates.
const lengthSuffix = "$length"

// symbol is one symbol-table entry.
type symbol struct {
	typ  contract.Type
	sort z3.Sort
	expr z3.Value
}

// Translator lowers contract expressions to Z3 terms for a single
// obligation. It is not safe for concurrent use — it owns one symbol table
// bound to one smtctx.Context (spec.md §5).
type Translator struct {
	ctx     *smtctx.Context
	z3ctx   *z3.Context
	symbols map[string]symbol
	warns   []string
}

// New returns a Translator bound to ctx. The Translator does not take
// ownership of ctx; the caller closes it.
func New(ctx *smtctx.Context) *Translator {
	return &Translator{
		ctx:     ctx,
		z3ctx:   ctx.Z3(),
		symbols: make(map[string]symbol),
	}
}

// Declare inserts name into the symbol table with the given Calor type. For
// array types it also inserts a synthetic `<name>$length` unsigned-32-bit
// companion, logically decoupled from the array's element mapping
// (spec.md §3). It returns false, without inserting anything, if typ is not
// supported (f32/f64, or an array of arrays).
func (t *Translator) Declare(name string, typ contract.Type) bool {
	sort, ok := t.sortOf(typ)
	if !ok {
		return false
	}
	t.symbols[name] = symbol{typ: typ, sort: sort, expr: t.z3ctx.Const(name, sort)}
	if arr, isArray := typ.(contract.Array); isArray {
		lenName := name + lengthSuffix
		lenSort := t.z3ctx.BVSort(indexWidth)
		t.symbols[lenName] = symbol{
			typ:  contract.U32,
			sort: lenSort,
			expr: t.z3ctx.Const(lenName, lenSort),
		}
		_ = arr // the element type only matters for the range sort above
	}
	return true
}

// sortOf computes the Z3 sort for a Calor type, reporting false for
// unsupported shapes: f32/f64, and T[][] (spec.md §3/§4.B).
func (t *Translator) sortOf(typ contract.Type) (z3.Sort, bool) {
	switch tt := typ.(type) {
	case contract.Primitive:
		info, ok := calortype.Lookup(tt)
		if !ok || !info.Supported() {
			return z3.Sort{}, false
		}
		switch {
		case info.Flags&calortype.IsBool != 0:
			return t.z3ctx.BoolSort(), true
		case info.Flags&calortype.IsString != 0:
			return t.z3ctx.StringSort(), true
		default:
			return t.z3ctx.BVSort(info.Bits), true
		}
	case contract.Array:
		if tt.IsNested() {
			return z3.Sort{}, false
		}
		elemSort, ok := t.sortOf(tt.Elem)
		if !ok {
			return z3.Sort{}, false
		}
		return t.z3ctx.ArraySort(t.z3ctx.BVSort(indexWidth), elemSort), true
	default:
		return z3.Sort{}, false
	}
}

// Declared is one entry in the Translator's symbol table, exported so the
// Verifier can evaluate every declared variable (including synthetic
// `$length` companions) against a counterexample model without reaching
// into the Translator's private state.
type Declared struct {
	Name string
	Typ  contract.Type
	Expr z3.Value
}

// Declared lists every declared symbol in a stable, name-sorted order.
func (t *Translator) Declared() []Declared {
	out := make([]Declared, 0, len(t.symbols))
	for name, sym := range t.symbols {
		out = append(out, Declared{Name: name, Typ: sym.typ, Expr: sym.expr})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Warnings returns every warning accumulated since the Translator was
// created or last cleared.
func (t *Translator) Warnings() []string {
	return t.warns
}

// ClearWarnings empties the accumulated warning list.
func (t *Translator) ClearWarnings() {
	t.warns = nil
}

func (t *Translator) warnf(format string, args ...any) {
	t.warns = append(t.warns, fmt.Sprintf(format, args...))
}

// term is the internal result of lowering one contract.Expr: the SMT value
// together with the Calor type it denotes. Carrying typ alongside val is
// what lets binary/unary/array/string lowering apply the width-coercion and
// mixed-sign policy (spec.md §4.B) without a second, parallel type-checking
// pass over the AST.
type term struct {
	val z3.Value
	typ contract.Type
}

// Translate lowers expr to an SMT term of its inferred sort, or returns
// ok=false if any part of expr is unsupported. It never asserts anything:
// lowering is pure with respect to the solver (spec.md §3 invariants). The
// only symbol it may add is the `$length` companion of a declared array
// that lacks one, created by len() on first reference.
func (t *Translator) Translate(expr contract.Expr) (z3.Value, bool) {
	tm, diag := t.lowerTerm(expr)
	return tm.val, diag == ""
}

// TranslateBool lowers expr and asserts that its sort is boolean.
func (t *Translator) TranslateBool(expr contract.Expr) (z3.Bool, bool) {
	tm, diag := t.lowerTerm(expr)
	if diag != "" {
		return z3.Bool{}, false
	}
	b, ok := tm.val.(z3.Bool)
	return b, ok
}

// DiagnoseFailure re-walks expr and returns a single-sentence, human
// readable reason it failed to translate. It names the smallest
// sub-expression that was unsupported: nested-failure recursion stops at
// the first failing child (spec.md §4.B).
func (t *Translator) DiagnoseFailure(expr contract.Expr) string {
	_, diag := t.lowerTerm(expr)
	if diag == "" {
		return "expression translated successfully"
	}
	return diag
}

// isInteger reports whether typ is a primitive with the integer flag.
func isInteger(typ contract.Type) bool {
	_, ok := integerInfo(typ)
	return ok
}

// integerInfo returns the calortype metadata for typ if it is an integer
// primitive.
func integerInfo(typ contract.Type) (calortype.Info, bool) {
	prim, ok := typ.(contract.Primitive)
	if !ok {
		return calortype.Info{}, false
	}
	info, ok := calortype.Lookup(prim)
	if !ok || info.Flags&calortype.IsInteger == 0 {
		return calortype.Info{}, false
	}
	return info, true
}

// widenBV sign-extends v up to target width. It is a no-op if v is already
// that width; per spec.md §4.B binary arithmetic never truncates, so target
// is always >= the current width here.
func widenBV(v z3.BV, target uint) z3.BV {
	cur := v.Sort().BVSize()
	if cur >= target {
		return v
	}
	return v.SignExtend(target - cur)
}

// toIndexWidth coerces v to the fixed unsigned indexWidth used for array
// indices and length variables (spec.md §3). Narrower values are
// zero-extended; wider values are truncated to their low bits.
func toIndexWidth(v z3.BV) z3.BV {
	cur := v.Sort().BVSize()
	switch {
	case cur == indexWidth:
		return v
	case cur < indexWidth:
		return v.ZeroExtend(indexWidth - cur)
	default:
		return v.Extract(indexWidth-1, 0)
	}
}

func unknownVariable(name string) string {
	return fmt.Sprintf("Unknown variable `%s`", name)
}

func unsupported(what string) string {
	return fmt.Sprintf("unsupported construct: %s", what)
}

func mismatch(op fmt.Stringer, expected string) string {
	return fmt.Sprintf("operator `%s` expects %s operands", op, expected)
}
