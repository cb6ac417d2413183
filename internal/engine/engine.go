// Package engine builds the combinatorial decision model for student course
// requests, hands it to an optimizer, and decodes the solved variables into a
// queryable schedule with aggregate fulfillment statistics.
package engine

import (
	"go.uber.org/zap"

	"github.com/mfigueredo/blocksched/internal/catalog"
	"github.com/mfigueredo/blocksched/internal/lp"
)

type Scheduler interface {
	// Build runs one whole solve over a freshly built model: preprocess the
	// request list, generate variables and constraints, invoke the solver
	// and decode its output. An infeasible or inconclusive solve returns an
	// InfeasibleError; the caller is expected to relax constraints and
	// resubmit, not to retry the same model.
	Build(cat *catalog.Catalog) (*Schedule, error)
}

// NewScheduler wires a scheduler to an optimizer, an ordered block set and a
// section capacity overflow factor.
func NewScheduler(solver lp.Solver, blocks []string, overflow float64, logger *zap.Logger) Scheduler {
	return &lpScheduler{
		preprocessor: NewPreprocessor(),
		builder:      NewModelBuilder(overflow),
		solver:       solver,
		blocks:       blocks,
		logger:       logger,
	}
}
