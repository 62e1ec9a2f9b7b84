package translate

import (
	"fmt"

	"github.com/calorlang/contractverify/contract"
	"github.com/calorlang/contractverify/internal/calortype"

	"github.com/ralscha/go-z3/z3"
)

// lowerTerm is the single recursive entry point every AST node kind lowers
// through. A non-empty diagnostic means val is the zero term and must not
// be used.
func (t *Translator) lowerTerm(expr contract.Expr) (term, string) {
	switch n := expr.(type) {
	case *contract.IntLit:
		return t.lowerIntLit(n)
	case *contract.BoolLit:
		return term{val: t.z3ctx.FromBool(n.Value), typ: contract.Bool}, ""
	case *contract.StringLit:
		return term{val: t.z3ctx.FromString(n.Value), typ: contract.String}, ""
	case *contract.FloatLit:
		return term{}, unsupported("floating-point literal")
	case *contract.Ref:
		return t.lowerRef(n)
	case *contract.Binary:
		return t.lowerBinary(n)
	case *contract.Unary:
		return t.lowerUnary(n)
	case *contract.If:
		return t.lowerIf(n)
	case *contract.Quantified:
		return t.lowerQuantified(n)
	case *contract.Index:
		return t.lowerIndex(n)
	case *contract.Len:
		return t.lowerLen(n)
	case *contract.StringOp:
		return t.lowerStringOp(n)
	case *contract.Call:
		return term{}, unsupported(fmt.Sprintf("call to external function `%s`", n.Name))
	default:
		return term{}, unsupported(fmt.Sprintf("AST node %T", expr))
	}
}

func (t *Translator) lowerIntLit(n *contract.IntLit) (term, string) {
	width := calortype.NarrowestSignedWidth(n.Value)
	val := t.z3ctx.FromInt(n.Value, t.z3ctx.BVSort(width))
	return term{val: val, typ: calortype.SignedForWidth(width)}, ""
}

func (t *Translator) lowerRef(n *contract.Ref) (term, string) {
	sym, ok := t.symbols[n.Name]
	if !ok {
		return term{}, unknownVariable(n.Name)
	}
	return term{val: sym.expr, typ: sym.typ}, ""
}

func (t *Translator) lowerIf(n *contract.If) (term, string) {
	condTerm, diag := t.lowerTerm(n.Cond)
	if diag != "" {
		return term{}, diag
	}
	cond, ok := condTerm.val.(z3.Bool)
	if !ok {
		return term{}, mismatchGeneric("if condition", "boolean")
	}
	thenTerm, diag := t.lowerTerm(n.Then)
	if diag != "" {
		return term{}, diag
	}
	elseTerm, diag := t.lowerTerm(n.Else)
	if diag != "" {
		return term{}, diag
	}
	if !sameType(thenTerm.typ, elseTerm.typ) {
		return term{}, fmt.Sprintf(
			"if-then-else branches have mismatched types: %s vs %s",
			thenTerm.typ.TypeName(), elseTerm.typ.TypeName())
	}
	return term{val: cond.IfThenElse(thenTerm.val, elseTerm.val), typ: thenTerm.typ}, ""
}

func sameType(a, b contract.Type) bool {
	return a.TypeName() == b.TypeName()
}

func mismatchGeneric(what, expected string) string {
	return fmt.Sprintf("%s must be %s", what, expected)
}
