package lp

// Solver solves a binary linear program. The solution is nil whenever the
// status carries no assignment (infeasible, unbounded or unknown); these are
// valid outputs where error shall be nil.
type Solver interface {
	Solve(model Model) (Solution, Status, error)
}
