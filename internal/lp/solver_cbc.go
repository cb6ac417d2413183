package lp

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

const cbcPath = "cbc"

type cbcSolver struct {
	timeout time.Duration
}

// NewCBCSolver returns a solver backed by the external cbc binary. A zero
// timeout means no bound on the solve; when the timeout elapses the result is
// StatusUnknown, never an error, so callers can treat it as "no usable
// assignment" and resubmit a relaxed model.
func NewCBCSolver(timeout time.Duration) Solver {
	return &cbcSolver{timeout: timeout}
}

func (solver *cbcSolver) Solve(model Model) (Solution, Status, error) {
	dir, err := os.MkdirTemp("", "blocksched-cbc-")
	if err != nil {
		return nil, StatusUnknown, fmt.Errorf("cannot create working directory: %w", err)
	}
	defer os.RemoveAll(dir)

	modelFile := filepath.Join(dir, "model.lp")
	solutionFile := filepath.Join(dir, "solution.txt")
	if err := os.WriteFile(modelFile, []byte(model.ToLP()), 0644); err != nil {
		return nil, StatusUnknown, fmt.Errorf("cannot write model file: %w", err)
	}

	ctx := context.Background()
	if solver.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, solver.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, cbcPath, modelFile, "solve", "solution", solutionFile)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, StatusUnknown, nil
		}
		return nil, StatusUnknown, fmt.Errorf("an error occurred during cbc execution: %v : %v", err.Error(), stderr.String())
	}

	output, err := os.ReadFile(solutionFile)
	if err != nil {
		return nil, StatusUnknown, fmt.Errorf("cannot read cbc solution file: %w", err)
	}

	return ParseCBCSolution(string(output), model.Variables)
}
