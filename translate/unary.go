package translate

import (
	"github.com/calorlang/contractverify/contract"

	"github.com/ralscha/go-z3/z3"
)

func (t *Translator) lowerUnary(n *contract.Unary) (term, string) {
	operand, diag := t.lowerTerm(n.Operand)
	if diag != "" {
		return term{}, diag
	}
	switch n.Op {
	case contract.Not:
		b, ok := operand.val.(z3.Bool)
		if !ok {
			return term{}, mismatch(n.Op, "boolean")
		}
		return term{val: b.Not(), typ: contract.Bool}, ""
	case contract.Neg:
		if !isInteger(operand.typ) {
			return term{}, mismatch(n.Op, "integer")
		}
		bv := operand.val.(z3.BV)
		return term{val: bv.Neg(), typ: operand.typ}, ""
	default:
		return term{}, unsupported("unary operator " + n.Op.String())
	}
}
