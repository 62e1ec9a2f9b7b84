package verify

import (
	"fmt"
	"strings"
	"time"

	"github.com/calorlang/contractverify/config"
	"github.com/calorlang/contractverify/contract"
	"github.com/calorlang/contractverify/internal/smtctx"
	"github.com/calorlang/contractverify/translate"

	"github.com/ralscha/go-z3/z3"
)

// Verifier discharges proof obligations against a fresh smtctx.Context per
// call (spec.md §5: "every obligation acquires and releases its own
// Context"). It holds no solver state between calls and is safe to reuse
// for any number of independent obligations, including concurrently — each
// call opens its own Context.
type Verifier struct {
	timeout time.Duration
}

// New builds a Verifier from the host compiler's options, applying the
// default timeout when opts.TimeoutMS is zero.
func New(opts config.Options) *Verifier {
	return &Verifier{timeout: opts.Timeout()}
}

// question distinguishes the two shapes of solver query an obligation can
// be (spec.md §4.C step 6).
type question int

const (
	// satisfiability asks whether assumptions ∧ goal is satisfiable.
	satisfiability question = iota
	// validity asks whether assumptions ⇒ goal holds in every model.
	validity
)

// VerifyPrecondition reports whether p admits at least one caller.
func (v *Verifier) VerifyPrecondition(params []contract.Param, p contract.Expr) Result {
	return v.run(params, nil, false, nil, p, satisfiability)
}

// VerifyPostcondition reports whether preconditions ⇒ q is valid.
func (v *Verifier) VerifyPostcondition(
	params []contract.Param, resultType contract.Type, preconditions []contract.Expr, q contract.Expr,
) Result {
	return v.run(params, resultType, true, preconditions, q, validity)
}

// ProveImplication reports whether a ⇒ c is valid.
func (v *Verifier) ProveImplication(params []contract.Param, a, c contract.Expr) Result {
	return v.run(params, nil, false, []contract.Expr{a}, c, validity)
}

// CheckPreconditionWeakening is an LSP check: Proven iff the implementer's
// precondition accepts every input the interface's precondition accepts
// (pIface ⇒ pImpl).
func (v *Verifier) CheckPreconditionWeakening(params []contract.Param, pIface, pImpl contract.Expr) Result {
	return v.run(params, nil, false, []contract.Expr{pIface}, pImpl, validity)
}

// CheckPostconditionStrengthening is an LSP check: Proven iff the
// implementer's postcondition implies the interface's (qImpl ⇒ qIface).
func (v *Verifier) CheckPostconditionStrengthening(
	params []contract.Param, resultType contract.Type, qIface, qImpl contract.Expr,
) Result {
	return v.run(params, resultType, true, []contract.Expr{qImpl}, qIface, validity)
}

// run implements the shared algorithm every entry point follows
// (spec.md §4.C): declare, translate, assert, query, classify. It never
// panics out to its caller — a recovered panic becomes Unproven{"internal"}.
func (v *Verifier) run(
	params []contract.Param, resultType contract.Type, declareResult bool,
	assumptions []contract.Expr, goal contract.Expr, kind question,
) (result Result) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			result = unproven(fmt.Sprintf("internal: %v", r), nil, time.Since(start))
		}
	}()

	ctx, err := smtctx.CreateWithTimeout(v.timeout)
	if err != nil {
		return unsupported("SMT backend unavailable: "+err.Error(), time.Since(start))
	}
	defer ctx.Close()

	tr := translate.New(ctx)
	for _, p := range params {
		if !tr.Declare(p.Name, p.Type) {
			return unsupported(fmt.Sprintf("parameter `%s` has unsupported type %s", p.Name, p.Type.TypeName()), time.Since(start))
		}
	}
	if declareResult {
		// spec.md §9 open question (ii): the source always declares
		// `result`, even when the postcondition never mentions it.
		if resultType == nil {
			return unsupported("postcondition obligation requires a result type", time.Since(start))
		}
		if !tr.Declare(contract.ResultName, resultType) {
			return unsupported(fmt.Sprintf("result type %s is unsupported", resultType.TypeName()), time.Since(start))
		}
	}

	assumptionTerms := make([]z3.Bool, 0, len(assumptions))
	for _, a := range assumptions {
		b, ok := tr.TranslateBool(a)
		if !ok {
			return unsupported(tr.DiagnoseFailure(a), time.Since(start))
		}
		assumptionTerms = append(assumptionTerms, b)
	}
	goalTerm, ok := tr.TranslateBool(goal)
	if !ok {
		return unsupported(tr.DiagnoseFailure(goal), time.Since(start))
	}

	solver := z3.NewSolver(ctx.Z3())
	for _, a := range assumptionTerms {
		solver.Assert(a)
	}
	switch kind {
	case validity:
		solver.Assert(goalTerm.Not())
	case satisfiability:
		solver.Assert(goalTerm)
	}

	sat, checkErr := solver.Check()
	warnings := tr.Warnings()
	if checkErr != nil {
		if unk, ok := checkErr.(*z3.ErrSatUnknown); ok {
			return unproven(classifyUnknown(unk.Reason), warnings, time.Since(start))
		}
		return unproven("internal: "+checkErr.Error(), warnings, time.Since(start))
	}

	switch kind {
	case validity:
		if !sat {
			return proven(warnings, time.Since(start))
		}
		return disproven(renderCounterexample(solver.Model(), tr.Declared()), warnings, time.Since(start))
	default: // satisfiability
		if sat {
			return proven(warnings, time.Since(start))
		}
		// UNSAT on a satisfiability question means the assumption itself
		// is a dead contract; there is no satisfying model to cite, but
		// the unsat core can often name which conjunct killed it. The core
		// is taken on a fresh solver: this one already holds the whole goal,
		// so its core over the conjuncts would be empty.
		r := disproven("", warnings, time.Since(start))
		r.DeadConjuncts = explainDeadPrecondition(tr, z3.NewSolver(ctx.Z3()), goal)
		return r
	}
}

// classifyUnknown maps the solver's free-text "reason unknown" string to
// the two reasons spec.md §7 names explicitly.
func classifyUnknown(reason string) string {
	lower := strings.ToLower(reason)
	if strings.Contains(lower, "timeout") || strings.Contains(lower, "cancel") {
		return "timeout"
	}
	return "internal: " + reason
}
