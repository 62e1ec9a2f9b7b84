package translate

import (
	"fmt"

	"github.com/calorlang/contractverify/contract"

	"github.com/ralscha/go-z3/z3"
)

// savedBinding records a symbol-table entry a quantifier scope shadowed, so
// it can be restored on scope exit.
type savedBinding struct {
	name string
	prev symbol
	had  bool
}

// restore undoes a sequence of bindings in LIFO order. Opening and then
// closing a quantifier scope is a no-op on the outer symbol table
// (spec.md §3 invariant) — restore runs unconditionally, on both the
// success and the failure path of the body lowering.
func (t *Translator) restore(saved []savedBinding) {
	for i := len(saved) - 1; i >= 0; i-- {
		sb := saved[i]
		if sb.had {
			t.symbols[sb.name] = sb.prev
		} else {
			delete(t.symbols, sb.name)
		}
	}
}

// lowerQuantified opens a scope for the bound variables, lowers the body,
// then restores the scope before returning either the quantified term or a
// diagnostic.
//
// The ctx.ForAll/ctx.Exists calls below follow the binding's otherwise
// universal ctx.X(...) constructor convention (ctx.ArraySort, ctx.ConstArray,
// ctx.StringConst, ctx.RESort, ...); no quantifier usage appears in the
// retrieved slice of the teacher package, so this shape is a best-effort
// extension rather than a directly observed call site.
func (t *Translator) lowerQuantified(n *contract.Quantified) (term, string) {
	if len(n.Bound) == 0 {
		return term{}, unsupported("quantifier with no bound variables")
	}

	bound := make([]z3.Value, 0, len(n.Bound))
	var saved []savedBinding
	for _, bv := range n.Bound {
		sort, ok := t.sortOf(bv.Type)
		if !ok {
			t.restore(saved)
			return term{}, unsupported(fmt.Sprintf(
				"quantifier bound variable `%s` has unsupported type %s", bv.Name, bv.Type.TypeName()))
		}
		prev, had := t.symbols[bv.Name]
		saved = append(saved, savedBinding{name: bv.Name, prev: prev, had: had})
		boundExpr := t.z3ctx.Const(bv.Name, sort)
		t.symbols[bv.Name] = symbol{typ: bv.Type, sort: sort, expr: boundExpr}
		bound = append(bound, boundExpr)
	}

	bodyTerm, diag := t.lowerTerm(n.Body)
	t.restore(saved)
	if diag != "" {
		return term{}, diag
	}
	body, ok := bodyTerm.val.(z3.Bool)
	if !ok {
		return term{}, mismatchGeneric("quantifier body", "boolean")
	}

	var result z3.Bool
	if n.Kind == contract.ForAll {
		result = t.z3ctx.ForAll(bound, body)
	} else {
		result = t.z3ctx.Exists(bound, body)
	}
	return term{val: result, typ: contract.Bool}, ""
}
