package lp

import (
	"fmt"
	"slices"
)

type greedySolver struct{}

// NewGreedySolver returns a deterministic heuristic solver: variables are
// taken in descending objective weight (ascending handle on ties) and set to
// one whenever no constraint bound would be exceeded. Every upper-bound
// constraint with nonnegative coefficients is honored, so the result is
// always feasible, though not necessarily optimal.
func NewGreedySolver() Solver {
	return &greedySolver{}
}

func (solver *greedySolver) Solve(model Model) (Solution, Status, error) {
	if len(model.Objective) != model.Variables {
		return nil, StatusUnknown, fmt.Errorf("objective has %v coefficients for %v variables", len(model.Objective), model.Variables)
	}

	//** Index constraint membership per variable
	membership := make([][]int, model.Variables)
	usage := make([]float64, len(model.Constraints))
	for i, constraint := range model.Constraints {
		if constraint.Bound < 0 {
			// A negative bound over 0/1 variables with nonnegative
			// coefficients cannot be met even by the zero assignment.
			return nil, StatusInfeasible, nil
		}
		for _, term := range constraint.Terms {
			if term.Var < 0 || int(term.Var) >= model.Variables {
				return nil, StatusUnknown, fmt.Errorf("constraint %v references unknown variable %v", constraint.Name, term.Var)
			}
			membership[term.Var] = append(membership[term.Var], i)
		}
	}

	//** Order candidates by weight, then by handle for determinism
	order := make([]Var, model.Variables)
	for i := range order {
		order[i] = Var(i)
	}
	slices.SortStableFunc(order, func(a, b Var) int {
		switch {
		case model.Objective[a] > model.Objective[b]:
			return -1
		case model.Objective[a] < model.Objective[b]:
			return 1
		default:
			return int(a) - int(b)
		}
	})

	//** Assign greedily
	solution := make(Solution, model.Variables)
	for _, variable := range order {
		if model.Objective[variable] <= 0 {
			continue
		}

		admissible := true
		for _, i := range membership[variable] {
			if usage[i]+coefficient(model.Constraints[i], variable) > model.Constraints[i].Bound {
				admissible = false
				break
			}
		}
		if !admissible {
			continue
		}

		solution[variable] = 1
		for _, i := range membership[variable] {
			usage[i] += coefficient(model.Constraints[i], variable)
		}
	}

	if model.Variables == 0 {
		return solution, StatusOptimal, nil
	}
	return solution, StatusFeasible, nil
}

func coefficient(constraint Constraint, variable Var) float64 {
	for _, term := range constraint.Terms {
		if term.Var == variable {
			return term.Coef
		}
	}
	return 0
}
