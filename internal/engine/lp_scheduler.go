package engine

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mfigueredo/blocksched/internal/catalog"
	"github.com/mfigueredo/blocksched/internal/lp"
)

// InfeasibleError is the terminal, non-retryable outcome of a solve that
// produced no usable assignment.
type InfeasibleError struct {
	Status lp.Status
}

func (err *InfeasibleError) Error() string {
	return fmt.Sprintf("no feasible assignment exists (solver status: %v)", err.Status)
}

type lpScheduler struct {
	//** Dependencies
	preprocessor Preprocessor
	builder      ModelBuilder
	solver       lp.Solver
	logger       *zap.Logger

	blocks []string
}

func (scheduler *lpScheduler) Build(cat *catalog.Catalog) (*Schedule, error) {
	//** Preprocess requests
	valid := scheduler.preprocessor.ValidRequests(cat.Requests, cat.Courses)
	scheduler.logger.Info("preprocessed requests",
		zap.Int("total", len(cat.Requests)),
		zap.Int("valid", len(valid)),
	)

	//** Build decision model
	model, indexer, err := scheduler.builder.Build(valid, cat.Courses, scheduler.blocks)
	if err != nil {
		return nil, fmt.Errorf("building model: %w", err)
	}
	scheduler.logger.Info("built model",
		zap.Int("variables", model.Variables),
		zap.Int("constraints", len(model.Constraints)),
	)

	//** Solve
	solution, status, err := scheduler.solver.Solve(model)
	if err != nil {
		return nil, fmt.Errorf("solving model: %w", err)
	} else if !status.Solved() {
		return nil, &InfeasibleError{Status: status}
	}
	scheduler.logger.Info("solved model", zap.Stringer("status", status))

	//** Decode solution and aggregate statistics
	schedule, fulfilled := newDecoder(cat.Rooms, cat.Lecturers).decode(solution, indexer, valid, scheduler.blocks)
	schedule.Stats = aggregateStats(cat.Requests, valid, fulfilled)

	return schedule, nil
}
