package verify

import (
	"strconv"
	"strings"

	"github.com/calorlang/contractverify/contract"
	"github.com/calorlang/contractverify/translate"

	"github.com/ralscha/go-z3/z3"
)

// renderCounterexample formats one line per declared variable, including
// synthetic `$length` companions, in the fixed shape spec.md §4.C requires:
// integers in decimal under their width's signed interpretation, booleans
// as true/false, strings as quoted literals.
func renderCounterexample(model *z3.Model, declared []translate.Declared) string {
	var b strings.Builder
	for i, d := range declared {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(d.Name)
		b.WriteString(" = ")
		b.WriteString(renderValue(model, d.Typ, d.Expr))
	}
	return b.String()
}

func renderValue(model *z3.Model, typ contract.Type, expr z3.Value) string {
	val := model.Eval(expr, true)
	switch tv := val.(type) {
	case z3.Bool:
		if tv.AsBool() {
			return "true"
		}
		return "false"
	case z3.BV:
		i, ok := tv.AsInt64()
		if !ok {
			return tv.String()
		}
		return strconv.FormatInt(i, 10)
	case z3.String:
		return strconv.Quote(tv.AsString())
	default:
		_ = typ
		return val.String()
	}
}
