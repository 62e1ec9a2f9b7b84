package translate

import (
	"github.com/calorlang/contractverify/contract"
	"github.com/calorlang/contractverify/internal/calortype"

	"github.com/ralscha/go-z3/z3"
)

func (t *Translator) lowerBinary(n *contract.Binary) (term, string) {
	left, diag := t.lowerTerm(n.Left)
	if diag != "" {
		return term{}, diag
	}
	right, diag := t.lowerTerm(n.Right)
	if diag != "" {
		return term{}, diag
	}
	// A non-negative integer literal facing an unsigned operand is typed
	// unsigned at its own width, so `len(a) >= 0` compares unsigned instead
	// of falling under the mixed-sign rule. Its narrowest signed width keeps
	// the top bit clear, so sign-extending it later changes nothing.
	rInfo, _ := integerInfo(right.typ)
	if lit, ok := n.Left.(*contract.IntLit); ok && lit.Value >= 0 && rInfo.Flags&calortype.IsUnsigned != 0 {
		left.typ = calortype.UnsignedForWidth(calortype.NarrowestSignedWidth(lit.Value))
	}
	lInfo, _ := integerInfo(left.typ)
	if lit, ok := n.Right.(*contract.IntLit); ok && lit.Value >= 0 && lInfo.Flags&calortype.IsUnsigned != 0 {
		right.typ = calortype.UnsignedForWidth(calortype.NarrowestSignedWidth(lit.Value))
	}
	switch {
	case n.Op.IsArithmetic():
		return t.binaryArith(n.Op, left, right)
	case n.Op.IsComparison():
		return t.binaryCompare(n.Op, left, right)
	case n.Op.IsLogical():
		return t.binaryLogical(n.Op, left, right)
	default:
		return term{}, unsupported("binary operator " + n.Op.String())
	}
}

// binaryArith implements Add/Sub/Mul/Div/Mod over two integer operands.
// Per spec.md §4.B the narrower operand is always sign-extended to
// max(widthL, widthR) regardless of declared signedness; division and
// modulo additionally pick signed vs. unsigned semantics using the same
// both-unsigned rule the comparison operators use (an implementer decision
// — spec.md is silent on division/modulo signedness specifically).
func (t *Translator) binaryArith(op contract.BinOp, left, right term) (term, string) {
	lInfo, lok := integerInfo(left.typ)
	rInfo, rok := integerInfo(right.typ)
	if !lok || !rok {
		return term{}, mismatch(op, "integer")
	}
	width := calortype.ResultWidth(lInfo.Bits, rInfo.Bits)
	lbv := widenBV(left.val.(z3.BV), width)
	rbv := widenBV(right.val.(z3.BV), width)
	unsigned := calortype.UnsignedCompare(lInfo.Flags, rInfo.Flags)

	var res z3.BV
	switch op {
	case contract.Add:
		res = lbv.Add(rbv)
	case contract.Sub:
		res = lbv.Sub(rbv)
	case contract.Mul:
		res = lbv.Mul(rbv)
	case contract.Div:
		if unsigned {
			res = lbv.UDiv(rbv)
		} else {
			res = lbv.SDiv(rbv)
		}
	case contract.Mod:
		if unsigned {
			res = lbv.URem(rbv)
		} else {
			res = lbv.SRem(rbv)
		}
	default:
		return term{}, unsupported("arithmetic operator " + op.String())
	}

	var resTyp contract.Primitive
	if unsigned {
		resTyp = calortype.UnsignedForWidth(width)
	} else {
		resTyp = calortype.SignedForWidth(width)
	}
	return term{val: res, typ: resTyp}, ""
}

// binaryCompare implements Eq/Ne (integer, string, or boolean operands) and
// Lt/Le/Gt/Ge (integer operands only), per the literal reading of
// spec.md §4.B: "Comparison operators accept integer/integer,
// string/string ..., or boolean/boolean" for equality, with ordering
// restricted to integers.
func (t *Translator) binaryCompare(op contract.BinOp, left, right term) (term, string) {
	if op == contract.Eq || op == contract.Ne {
		switch {
		case isInteger(left.typ) && isInteger(right.typ):
			return t.compareInt(op, left, right)
		case left.typ == contract.String && right.typ == contract.String:
			return t.compareString(op, left, right)
		case left.typ == contract.Bool && right.typ == contract.Bool:
			return t.compareBool(op, left, right)
		default:
			return term{}, mismatch(op, "matching integer, string, or boolean")
		}
	}
	if !isInteger(left.typ) || !isInteger(right.typ) {
		return term{}, mismatch(op, "integer")
	}
	return t.compareInt(op, left, right)
}

func (t *Translator) compareInt(op contract.BinOp, left, right term) (term, string) {
	lInfo, _ := integerInfo(left.typ)
	rInfo, _ := integerInfo(right.typ)
	width := calortype.ResultWidth(lInfo.Bits, rInfo.Bits)
	lbv := widenBV(left.val.(z3.BV), width)
	rbv := widenBV(right.val.(z3.BV), width)
	unsigned := calortype.UnsignedCompare(lInfo.Flags, rInfo.Flags)

	var b z3.Bool
	switch op {
	case contract.Eq:
		b = lbv.Eq(rbv)
	case contract.Ne:
		b = lbv.NE(rbv)
	case contract.Lt:
		if unsigned {
			b = lbv.ULT(rbv)
		} else {
			b = lbv.SLT(rbv)
		}
	case contract.Le:
		if unsigned {
			b = lbv.ULE(rbv)
		} else {
			b = lbv.SLE(rbv)
		}
	case contract.Gt:
		if unsigned {
			b = lbv.UGT(rbv)
		} else {
			b = lbv.SGT(rbv)
		}
	case contract.Ge:
		if unsigned {
			b = lbv.UGE(rbv)
		} else {
			b = lbv.SGE(rbv)
		}
	default:
		return term{}, unsupported("comparison operator " + op.String())
	}
	return term{val: b, typ: contract.Bool}, ""
}

func (t *Translator) compareString(op contract.BinOp, left, right term) (term, string) {
	ls := left.val.(z3.String)
	rs := right.val.(z3.String)
	var b z3.Bool
	if op == contract.Eq {
		b = ls.Eq(rs)
	} else {
		b = ls.NE(rs)
	}
	return term{val: b, typ: contract.Bool}, ""
}

func (t *Translator) compareBool(op contract.BinOp, left, right term) (term, string) {
	lb := left.val.(z3.Bool)
	rb := right.val.(z3.Bool)
	var b z3.Bool
	if op == contract.Eq {
		b = lb.Eq(rb)
	} else {
		b = lb.NE(rb)
	}
	return term{val: b, typ: contract.Bool}, ""
}

func (t *Translator) binaryLogical(op contract.BinOp, left, right term) (term, string) {
	lb, lok := left.val.(z3.Bool)
	rb, rok := right.val.(z3.Bool)
	if !lok || !rok {
		return term{}, mismatch(op, "boolean")
	}
	var b z3.Bool
	switch op {
	case contract.And:
		b = lb.And(rb)
	case contract.Or:
		b = lb.Or(rb)
	case contract.Implies:
		b = lb.Implies(rb)
	default:
		return term{}, unsupported("logical operator " + op.String())
	}
	return term{val: b, typ: contract.Bool}, ""
}
