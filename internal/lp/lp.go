// Package lp defines the binary linear program consumed by the optimizer
// collaborator: an arena of 0/1 decision variables addressed by integer
// handle, a list of linear upper-bound constraints over them, and a
// maximization objective.
package lp

// Var is an integer handle into a model's variable arena.
type Var int

// Term is one weighted variable inside a constraint.
type Term struct {
	Var  Var
	Coef float64
}

// Constraint is the linear inequality: sum of Terms <= Bound.
type Constraint struct {
	Name  string
	Terms []Term
	Bound float64
}

// Model is an immutable binary program. Every variable in [0, Variables) is
// binary; Objective holds one maximization coefficient per variable.
type Model struct {
	Variables   int
	Constraints []Constraint
	Objective   []float64
}

// Solution assigns a value to every variable handle of a solved model.
type Solution []float64

type Status int

const (
	StatusOptimal Status = iota
	StatusFeasible
	StatusInfeasible
	StatusUnbounded
	StatusUnknown
)

func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusFeasible:
		return "feasible"
	case StatusInfeasible:
		return "infeasible"
	case StatusUnbounded:
		return "unbounded"
	default:
		return "unknown"
	}
}

// Solved reports whether the status carries a usable variable assignment.
func (s Status) Solved() bool {
	return s == StatusOptimal || s == StatusFeasible
}
