package verify

import (
	"strings"
	"testing"

	"github.com/calorlang/contractverify/config"
	"github.com/calorlang/contractverify/contract"
)

func newTestVerifier() *Verifier {
	return New(config.Options{Verify: true, TimeoutMS: 5000})
}

func ref(name string) *contract.Ref       { return &contract.Ref{Name: name} }
func intLit(v int64) *contract.IntLit     { return &contract.IntLit{Value: v} }
func strLit(v string) *contract.StringLit { return &contract.StringLit{Value: v} }

func bin(op contract.BinOp, l, r contract.Expr) *contract.Binary {
	return &contract.Binary{Op: op, Left: l, Right: r}
}

func un(op contract.UnOp, e contract.Expr) *contract.Unary {
	return &contract.Unary{Op: op, Operand: e}
}

func param(name string, typ contract.Type) contract.Param {
	return contract.Param{Name: name, Type: typ}
}

// TestScenarios exercises the spec's S1-S8 end-to-end scenario table.
func TestScenarios(t *testing.T) {
	v := newTestVerifier()

	t.Run("S1", func(t *testing.T) {
		params := []contract.Param{param("x", contract.I32)}
		pre := []contract.Expr{
			bin(contract.Ge, ref("x"), intLit(0)),
			bin(contract.Le, ref("x"), intLit(46340)),
		}
		q := bin(contract.Ge, bin(contract.Mul, ref("x"), ref("x")), intLit(0))
		r := v.VerifyPostcondition(params, contract.Bool, pre, q)
		if r.Status != Proven {
			t.Errorf("S1: got %s, want Proven (reason=%s, counterexample=%s)", r.Status, r.Reason, r.Counterexample)
		}
	})

	t.Run("S2", func(t *testing.T) {
		params := []contract.Param{param("a", contract.I32), param("b", contract.I32)}
		q := bin(contract.Eq, bin(contract.Add, ref("a"), ref("b")), bin(contract.Add, ref("b"), ref("a")))
		r := v.VerifyPostcondition(params, contract.I32, nil, q)
		if r.Status != Proven {
			t.Errorf("S2: got %s, want Proven", r.Status)
		}
	})

	t.Run("S3", func(t *testing.T) {
		params := []contract.Param{param("a", contract.I32), param("b", contract.I32)}
		pre := []contract.Expr{bin(contract.Ne, ref("b"), intLit(0))}
		q := bin(contract.Gt, bin(contract.Div, ref("a"), ref("b")), ref("a"))
		r := v.VerifyPostcondition(params, contract.I32, pre, q)
		if r.Status != Disproven {
			t.Errorf("S3: got %s, want Disproven", r.Status)
		}
		if r.Counterexample == "" {
			t.Error("S3: expected a counterexample")
		}
	})

	t.Run("S4", func(t *testing.T) {
		params := []contract.Param{param("x", contract.I32)}
		q := bin(contract.Gt, bin(contract.Add, ref("x"), intLit(1)), ref("x"))
		r := v.VerifyPostcondition(params, contract.I32, nil, q)
		if r.Status != Disproven {
			t.Errorf("S4: got %s, want Disproven", r.Status)
		}
	})

	t.Run("S5", func(t *testing.T) {
		params := []contract.Param{param("s", contract.String)}
		pre := []contract.Expr{
			&contract.StringOp{Op: contract.StrStartsWith, Args: []contract.Expr{ref("s"), strLit("hello")}},
		}
		q := un(contract.Not, &contract.StringOp{Op: contract.StrIsEmpty, Args: []contract.Expr{ref("s")}})
		r := v.VerifyPostcondition(params, contract.Bool, pre, q)
		if r.Status != Proven {
			t.Errorf("S5: got %s, want Proven", r.Status)
		}
	})

	t.Run("S6", func(t *testing.T) {
		params := []contract.Param{param("arr", contract.Array{Elem: contract.I32})}
		q := bin(contract.Ge, &contract.Len{Array: ref("arr")}, intLit(0))
		r := v.VerifyPostcondition(params, contract.Bool, nil, q)
		if r.Status != Proven {
			t.Errorf("S6: got %s, want Proven", r.Status)
		}
	})

	t.Run("S7", func(t *testing.T) {
		params := []contract.Param{param("arr", contract.Array{Elem: contract.I32}), param("i", contract.I32)}
		pre := []contract.Expr{
			bin(contract.And, bin(contract.Ge, ref("i"), intLit(0)), bin(contract.Lt, ref("i"), &contract.Len{Array: ref("arr")})),
		}
		q := bin(contract.Lt, ref("i"), &contract.Len{Array: ref("arr")})
		r := v.VerifyPostcondition(params, contract.Bool, pre, q)
		if r.Status != Proven {
			t.Errorf("S7: got %s, want Proven", r.Status)
		}
	})

	t.Run("S8", func(t *testing.T) {
		params := []contract.Param{param("s", contract.String)}
		q := bin(contract.Gt, &contract.Call{Name: "strlen", Args: []contract.Expr{ref("s")}}, intLit(0))
		r := v.VerifyPostcondition(params, contract.Bool, nil, q)
		if r.Status != Unsupported {
			t.Errorf("S8: got %s, want Unsupported", r.Status)
		}
	})
}

// TestTautologySafety is testable property 1.
func TestTautologySafety(t *testing.T) {
	v := newTestVerifier()
	params := []contract.Param{param("p", contract.Bool)}
	r := v.VerifyPostcondition(params, contract.Bool, nil, bin(contract.Implies, ref("p"), ref("p")))
	if r.Status != Proven {
		t.Errorf("got %s, want Proven", r.Status)
	}
}

// TestContradictionSafety is testable property 2.
func TestContradictionSafety(t *testing.T) {
	v := newTestVerifier()
	params := []contract.Param{param("x", contract.I32)}
	p := bin(contract.And, bin(contract.Gt, ref("x"), intLit(0)), bin(contract.Lt, ref("x"), intLit(0)))
	r := v.VerifyPrecondition(params, p)
	if r.Status != Disproven {
		t.Errorf("got %s, want Disproven", r.Status)
	}
}

// TestLengthDecoupling is testable property 4.
func TestLengthDecoupling(t *testing.T) {
	v := newTestVerifier()
	params := []contract.Param{param("a", contract.Array{Elem: contract.I32})}
	for _, k := range []int64{0, 1, 42} {
		q := bin(contract.Eq, &contract.Len{Array: ref("a")}, intLit(k))
		r := v.VerifyPostcondition(params, contract.Bool, nil, q)
		if r.Status != Disproven {
			t.Errorf("len(a) == %d: got %s, want Disproven", k, r.Status)
		}
	}
}

// TestLSPWeakening is testable property 6.
func TestLSPWeakening(t *testing.T) {
	v := newTestVerifier()
	params := []contract.Param{param("x", contract.I32)}

	accepted := v.CheckPreconditionWeakening(params,
		bin(contract.Ge, ref("x"), intLit(0)),
		bin(contract.Ge, ref("x"), intLit(-10)))
	if accepted.Status != Proven {
		t.Errorf("widened precondition: got %s, want Proven", accepted.Status)
	}

	rejected := v.CheckPreconditionWeakening(params,
		bin(contract.Ge, ref("x"), intLit(0)),
		bin(contract.Ge, ref("x"), intLit(10)))
	if rejected.Status != Disproven {
		t.Errorf("narrowed precondition: got %s, want Disproven", rejected.Status)
	}
}

// TestLSPStrengthening is testable property 7.
func TestLSPStrengthening(t *testing.T) {
	v := newTestVerifier()
	params := []contract.Param{}

	strengthened := v.CheckPostconditionStrengthening(params, contract.I32,
		bin(contract.Gt, ref("result"), intLit(0)),
		bin(contract.Ge, ref("result"), intLit(10)))
	if strengthened.Status != Proven {
		t.Errorf("strengthened postcondition: got %s, want Proven", strengthened.Status)
	}

	weakened := v.CheckPostconditionStrengthening(params, contract.I32,
		bin(contract.Ge, ref("result"), intLit(10)),
		bin(contract.Gt, ref("result"), intLit(0)))
	if weakened.Status != Disproven {
		t.Errorf("weakened postcondition: got %s, want Disproven", weakened.Status)
	}
}

// TestUnsupportedIsTotal is testable property 8.
func TestUnsupportedIsTotal(t *testing.T) {
	v := newTestVerifier()

	floatParam := v.VerifyPostcondition([]contract.Param{param("f", contract.F32)}, contract.Bool, nil,
		bin(contract.Gt, ref("f"), intLit(0)))
	if floatParam.Status != Unsupported {
		t.Errorf("f32 parameter: got %s, want Unsupported", floatParam.Status)
	}

	floatLit := v.VerifyPostcondition(nil, contract.Bool, nil, &contract.FloatLit{Value: 1.0})
	if floatLit.Status != Unsupported {
		t.Errorf("float literal: got %s, want Unsupported", floatLit.Status)
	}

	nestedArray := v.VerifyPostcondition([]contract.Param{param("m", contract.Array{Elem: contract.Array{Elem: contract.I32}})},
		contract.Bool, nil, &contract.BoolLit{Value: true})
	if nestedArray.Status != Unsupported {
		t.Errorf("nested array parameter: got %s, want Unsupported", nestedArray.Status)
	}

	userCall := v.VerifyPostcondition([]contract.Param{param("s", contract.String)}, contract.Bool, nil,
		bin(contract.Gt, &contract.Call{Name: "strlen", Args: []contract.Expr{ref("s")}}, intLit(0)))
	if userCall.Status != Unsupported {
		t.Errorf("user function call: got %s, want Unsupported", userCall.Status)
	}
}

// TestWarningAccumulation is testable property 9.
func TestWarningAccumulation(t *testing.T) {
	v := newTestVerifier()
	params := []contract.Param{param("s", contract.String)}
	q := &contract.StringOp{
		Op:   contract.StrContains,
		Args: []contract.Expr{ref("s"), strLit("h")},
		Mode: contract.IgnoreCase,
	}
	r := v.VerifyPostcondition(params, contract.Bool, nil, q)
	if len(r.Warnings) != 1 {
		t.Fatalf("got %d warnings, want exactly 1: %v", len(r.Warnings), r.Warnings)
	}
	if !strings.Contains(r.Warnings[0], "IgnoreCase") {
		t.Errorf("warning %q does not mention IgnoreCase", r.Warnings[0])
	}
}

func TestDeadPreconditionNamesConjunct(t *testing.T) {
	v := newTestVerifier()
	params := []contract.Param{param("x", contract.I32)}
	p := bin(contract.And,
		bin(contract.Ge, ref("x"), intLit(0)),
		bin(contract.Lt, ref("x"), intLit(0)))
	r := v.VerifyPrecondition(params, p)
	if r.Status != Disproven {
		t.Fatalf("got %s, want Disproven", r.Status)
	}
	if len(r.DeadConjuncts) == 0 {
		t.Error("expected at least one named dead conjunct")
	}
}
