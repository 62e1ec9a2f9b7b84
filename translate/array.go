package translate

import (
	"fmt"

	"github.com/calorlang/contractverify/contract"

	"github.com/ralscha/go-z3/z3"
)

// lowerIndex translates a[i]. No bounds assertion is generated — the
// synthetic `<name>$length` variable is deliberately decoupled from the
// array's element mapping (spec.md §3), so an out-of-range index is a
// valid, unconstrained select rather than a translation error.
func (t *Translator) lowerIndex(n *contract.Index) (term, string) {
	arrTerm, diag := t.lowerTerm(n.Array)
	if diag != "" {
		return term{}, diag
	}
	arrType, ok := arrTerm.typ.(contract.Array)
	if !ok {
		return term{}, unsupported("index operator applied to a non-array expression")
	}
	idxTerm, diag := t.lowerTerm(n.At)
	if diag != "" {
		return term{}, diag
	}
	if !isInteger(idxTerm.typ) {
		return term{}, mismatchGeneric("array index", "integer")
	}
	idx := toIndexWidth(idxTerm.val.(z3.BV))
	arr := arrTerm.val.(z3.Array)
	return term{val: arr.Select(idx), typ: arrType.Elem}, ""
}

// lowerLen translates len(a). Calor arrays only appear as direct parameter
// references, so the array operand must itself be a Ref; the companion
// length variable is declared on first reference if it was not already
// created by Declare (spec.md §9 open question: the source auto-declares
// it, so this mirrors that rather than guessing a stricter rule).
func (t *Translator) lowerLen(n *contract.Len) (term, string) {
	ref, ok := n.Array.(*contract.Ref)
	if !ok {
		return term{}, unsupported("len() applied to an expression that is not a direct array reference")
	}
	arrSym, ok := t.symbols[ref.Name]
	if !ok {
		return term{}, unknownVariable(ref.Name)
	}
	if _, isArray := arrSym.typ.(contract.Array); !isArray {
		return term{}, unsupported(fmt.Sprintf("len() applied to non-array `%s`", ref.Name))
	}

	lenName := ref.Name + lengthSuffix
	lenSym, ok := t.symbols[lenName]
	if !ok {
		sort := t.z3ctx.BVSort(indexWidth)
		lenSym = symbol{typ: contract.U32, sort: sort, expr: t.z3ctx.Const(lenName, sort)}
		t.symbols[lenName] = lenSym
	}
	return term{val: lenSym.expr, typ: contract.U32}, ""
}
