package translate

import (
	"fmt"

	"github.com/calorlang/contractverify/contract"

	"github.com/ralscha/go-z3/z3"
)

// lowerStringOp translates the eleven supported string operations
// (spec.md §4.B) and rejects the rest with a diagnostic naming the
// operation. A non-Ordinal comparison mode is accepted but collapsed to
// ordinal semantics with a warning, per the "Unsupported is total" /
// warning-accumulation properties (spec.md §8).
func (t *Translator) lowerStringOp(n *contract.StringOp) (term, string) {
	if !n.Op.Supported() {
		return term{}, unsupported(fmt.Sprintf("string operation `%s`", n.Op))
	}
	if n.Mode != contract.Ordinal {
		t.warnf("comparison mode `%s` is ignored; verification uses ordinal comparison", n.Mode)
	}

	args := make([]term, len(n.Args))
	for i, a := range n.Args {
		at, diag := t.lowerTerm(a)
		if diag != "" {
			return term{}, diag
		}
		args[i] = at
	}

	switch n.Op {
	case contract.StrLength:
		s, ok := stringArg(args, 0)
		if !ok {
			return term{}, stringArgErr(n.Op)
		}
		return term{val: s.Length().ToBV(indexWidth), typ: contract.U32}, ""

	case contract.StrContains:
		s, sub, ok := stringArgs2(args)
		if !ok {
			return term{}, stringArgErr(n.Op)
		}
		return term{val: s.Contains(sub), typ: contract.Bool}, ""

	case contract.StrStartsWith:
		s, prefix, ok := stringArgs2(args)
		if !ok {
			return term{}, stringArgErr(n.Op)
		}
		return term{val: prefix.PrefixOf(s), typ: contract.Bool}, ""

	case contract.StrEndsWith:
		s, suffix, ok := stringArgs2(args)
		if !ok {
			return term{}, stringArgErr(n.Op)
		}
		return term{val: suffix.SuffixOf(s), typ: contract.Bool}, ""

	case contract.StrEquals:
		s, other, ok := stringArgs2(args)
		if !ok {
			return term{}, stringArgErr(n.Op)
		}
		return term{val: s.Eq(other), typ: contract.Bool}, ""

	case contract.StrIsEmpty:
		s, ok := stringArg(args, 0)
		if !ok {
			return term{}, stringArgErr(n.Op)
		}
		return term{val: s.Eq(t.z3ctx.EmptySeq(t.z3ctx.StringSort())), typ: contract.Bool}, ""

	case contract.StrConcat:
		if len(args) < 2 {
			return term{}, unsupported("concat requires at least two arguments")
		}
		first, ok := stringArg(args, 0)
		if !ok {
			return term{}, stringArgErr(n.Op)
		}
		rest := make([]z3.String, 0, len(args)-1)
		for i := 1; i < len(args); i++ {
			s, ok := stringArg(args, i)
			if !ok {
				return term{}, stringArgErr(n.Op)
			}
			rest = append(rest, s)
		}
		return term{val: first.Concat(rest...), typ: contract.String}, ""

	case contract.StrIndexOf:
		s, sub, ok := stringArgs2(args)
		if !ok {
			return term{}, stringArgErr(n.Op)
		}
		offset := t.z3ctx.FromInt(0, t.z3ctx.IntSort()).(z3.Int)
		if len(args) >= 3 {
			offBV, ok := args[2].val.(z3.BV)
			if !ok {
				return term{}, stringArgErr(n.Op)
			}
			offset = offBV.SToInt()
		}
		return term{val: s.IndexOf(sub, offset).ToBV(indexWidth), typ: contract.I32}, ""

	case contract.StrSubstring:
		s, ok := stringArg(args, 0)
		if !ok || len(args) != 3 {
			return term{}, stringArgErr(n.Op)
		}
		offBV, ok1 := args[1].val.(z3.BV)
		lenBV, ok2 := args[2].val.(z3.BV)
		if !ok1 || !ok2 {
			return term{}, stringArgErr(n.Op)
		}
		return term{val: s.Extract(offBV.SToInt(), lenBV.SToInt()), typ: contract.String}, ""

	case contract.StrSubstringFrom:
		s, ok := stringArg(args, 0)
		if !ok || len(args) != 2 {
			return term{}, stringArgErr(n.Op)
		}
		offBV, ok := args[1].val.(z3.BV)
		if !ok {
			return term{}, stringArgErr(n.Op)
		}
		off := offBV.SToInt()
		remaining := s.Length().Sub(off)
		return term{val: s.Extract(off, remaining), typ: contract.String}, ""

	case contract.StrReplace:
		if len(args) != 3 {
			return term{}, stringArgErr(n.Op)
		}
		s, ok1 := stringArg(args, 0)
		oldS, ok2 := stringArg(args, 1)
		newS, ok3 := stringArg(args, 2)
		if !ok1 || !ok2 || !ok3 {
			return term{}, stringArgErr(n.Op)
		}
		return term{val: s.Replace(oldS, newS), typ: contract.String}, ""

	default:
		return term{}, unsupported(fmt.Sprintf("string operation `%s`", n.Op))
	}
}

func stringArg(args []term, i int) (z3.String, bool) {
	if i >= len(args) {
		return z3.String{}, false
	}
	s, ok := args[i].val.(z3.String)
	return s, ok
}

func stringArgs2(args []term) (z3.String, z3.String, bool) {
	if len(args) < 2 {
		return z3.String{}, z3.String{}, false
	}
	a, ok1 := stringArg(args, 0)
	b, ok2 := stringArg(args, 1)
	return a, b, ok1 && ok2
}

func stringArgErr(op contract.StringOpKind) string {
	return fmt.Sprintf("string operation `%s` called with the wrong argument types or count", op)
}
