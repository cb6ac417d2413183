package lp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGreedySolve(t *testing.T) {
	solver := NewGreedySolver()

	t.Run("Unconstrained positive weights all set", func(t *testing.T) {
		// Arrange
		model := Model{Variables: 3, Objective: []float64{1, 2, 3}}

		// Act
		solution, status, err := solver.Solve(model)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, StatusFeasible, status)
		assert.Equal(t, Solution{1, 1, 1}, solution)
	})

	t.Run("Heavier variable wins a shared bound", func(t *testing.T) {
		// Arrange
		model := Model{
			Variables: 2,
			Constraints: []Constraint{
				{Name: "pick_one", Terms: []Term{{Var: 0, Coef: 1}, {Var: 1, Coef: 1}}, Bound: 1},
			},
			Objective: []float64{1, 5},
		}

		// Act
		solution, status, err := solver.Solve(model)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, StatusFeasible, status)
		assert.Equal(t, Solution{0, 1}, solution)
	})

	t.Run("Ties break toward the lower handle", func(t *testing.T) {
		// Arrange
		model := Model{
			Variables: 2,
			Constraints: []Constraint{
				{Name: "pick_one", Terms: []Term{{Var: 0, Coef: 1}, {Var: 1, Coef: 1}}, Bound: 1},
			},
			Objective: []float64{5, 5},
		}

		// Act
		solution, _, err := solver.Solve(model)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, Solution{1, 0}, solution)
	})

	t.Run("Zero-weight variables stay unset", func(t *testing.T) {
		// Arrange
		model := Model{Variables: 2, Objective: []float64{0, 1}}

		// Act
		solution, _, err := solver.Solve(model)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, Solution{0, 1}, solution)
	})

	t.Run("Fractional bound limits coverage", func(t *testing.T) {
		// Arrange: bound 1.2 admits one unit-coefficient variable, not two
		model := Model{
			Variables: 2,
			Constraints: []Constraint{
				{Name: "capacity", Terms: []Term{{Var: 0, Coef: 1}, {Var: 1, Coef: 1}}, Bound: 1.2},
			},
			Objective: []float64{3, 2},
		}

		// Act
		solution, _, err := solver.Solve(model)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, Solution{1, 0}, solution)
	})

	t.Run("Empty model is trivially optimal", func(t *testing.T) {
		// Act
		solution, status, err := solver.Solve(Model{})

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, StatusOptimal, status)
		assert.Empty(t, solution)
	})

	t.Run("Negative bound is infeasible", func(t *testing.T) {
		// Arrange
		model := Model{
			Variables:   1,
			Constraints: []Constraint{{Name: "impossible", Bound: -1}},
			Objective:   []float64{1},
		}

		// Act
		solution, status, err := solver.Solve(model)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, StatusInfeasible, status)
		assert.Nil(t, solution)
	})

	t.Run("Mismatched objective is rejected", func(t *testing.T) {
		// Act
		_, status, err := solver.Solve(Model{Variables: 2, Objective: []float64{1}})

		// Assert
		assert.Error(t, err)
		assert.Equal(t, StatusUnknown, status)
	})

	t.Run("Unknown variable reference is rejected", func(t *testing.T) {
		// Arrange
		model := Model{
			Variables:   1,
			Constraints: []Constraint{{Name: "dangling", Terms: []Term{{Var: 7, Coef: 1}}, Bound: 1}},
			Objective:   []float64{1},
		}

		// Act
		_, status, err := solver.Solve(model)

		// Assert
		assert.Error(t, err)
		assert.Equal(t, StatusUnknown, status)
	})
}
