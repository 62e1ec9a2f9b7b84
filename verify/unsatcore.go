package verify

import (
	"fmt"

	"github.com/calorlang/contractverify/contract"
	"github.com/calorlang/contractverify/translate"

	"github.com/ralscha/go-z3/z3"
)

// explainDeadPrecondition names which top-level conjunct(s) of an
// unsatisfiable precondition the solver's unsat core blames, using
// Solver.CheckAssumptions/UnsatCore (the teacher's own st package exercises
// both; see z3/solver.go). It is best-effort: any unexpected shape — fewer
// than two conjuncts, a conjunct that itself fails to translate, or a core
// the solver declines to compute — yields nil rather than a guess.
func explainDeadPrecondition(tr *translate.Translator, solver *z3.Solver, goal contract.Expr) []string {
	conjuncts := splitConjuncts(goal)
	if len(conjuncts) < 2 {
		return nil
	}

	trackers := make([]z3.Bool, 0, len(conjuncts))
	for _, c := range conjuncts {
		b, ok := tr.TranslateBool(c)
		if !ok {
			return nil
		}
		trackers = append(trackers, b)
	}

	sat, err := solver.CheckAssumptions(trackers...)
	if err != nil || sat {
		return nil
	}

	core := solver.UnsatCore()
	inCore := make(map[z3.Bool]bool, len(core))
	for _, b := range core {
		inCore[b] = true
	}

	var dead []string
	for i, tracker := range trackers {
		if inCore[tracker] {
			dead = append(dead, describeConjunct(conjuncts[i], i))
		}
	}
	return dead
}

// splitConjuncts flattens a top-level chain of `&&` into its leaf clauses.
func splitConjuncts(e contract.Expr) []contract.Expr {
	if b, ok := e.(*contract.Binary); ok && b.Op == contract.And {
		return append(splitConjuncts(b.Left), splitConjuncts(b.Right)...)
	}
	return []contract.Expr{e}
}

func describeConjunct(e contract.Expr, idx int) string {
	sp := e.Span()
	if sp.File == "" {
		return fmt.Sprintf("conjunct %d", idx+1)
	}
	return fmt.Sprintf("conjunct %d (%s:%d:%d)", idx+1, sp.File, sp.Line, sp.Col)
}
