package lp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// ToLP renders the model in CPLEX LP file format. Variables are named by
// handle (x0, x1, ...), constraint names are sanitized to the character set
// the format allows.
func (m Model) ToLP() string {
	var builder strings.Builder

	builder.WriteString("Maximize\n obj:")
	wrote := false
	for i, weight := range m.Objective {
		if weight == 0 {
			continue
		}
		fmt.Fprintf(&builder, " %+g x%d", weight, i)
		wrote = true
	}
	if !wrote {
		builder.WriteString(" 0 x0")
	}
	builder.WriteString("\nSubject To\n")

	for i, constraint := range m.Constraints {
		name := sanitizeName(constraint.Name)
		if name == "" {
			name = "c" + strconv.Itoa(i)
		}
		fmt.Fprintf(&builder, " %v:", name)
		for _, term := range constraint.Terms {
			fmt.Fprintf(&builder, " %+g x%d", term.Coef, term.Var)
		}
		fmt.Fprintf(&builder, " <= %g\n", constraint.Bound)
	}

	builder.WriteString("Binary\n")
	for i := 0; i < m.Variables; i++ {
		fmt.Fprintf(&builder, " x%d", i)
	}
	builder.WriteString("\nEnd\n")
	return builder.String()
}

func sanitizeName(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
}

// ParseCBCSolution reads the solution file written by "cbc <model> solve
// solution <file>". The first line carries the status, the remaining lines
// one "<index> <name> <value> <reduced cost>" record per nonzero variable.
func ParseCBCSolution(output string, variables int) (Solution, Status, error) {
	lines := lo.Filter(strings.Split(output, "\n"), func(line string, _ int) bool {
		return strings.TrimSpace(line) != ""
	})
	if len(lines) == 0 {
		return nil, StatusUnknown, fmt.Errorf("empty solver output")
	}

	header := strings.ToLower(lines[0])
	var status Status
	switch {
	case strings.Contains(header, "infeasible"):
		return nil, StatusInfeasible, nil
	case strings.Contains(header, "unbounded"):
		return nil, StatusUnbounded, nil
	case strings.Contains(header, "optimal"):
		status = StatusOptimal
	case strings.Contains(header, "stopped"), strings.Contains(header, "feasible"):
		status = StatusFeasible
	default:
		return nil, StatusUnknown, fmt.Errorf("unrecognized solver status: %v", lines[0])
	}

	solution := make(Solution, variables)
	for _, line := range lines[1:] {
		fields := strings.Fields(line)
		if len(fields) < 3 || !strings.HasPrefix(fields[1], "x") {
			continue
		}
		index, err := strconv.Atoi(fields[1][1:])
		if err != nil || index < 0 || index >= variables {
			return nil, StatusUnknown, fmt.Errorf("invalid variable in solver output: %v", fields[1])
		}
		value, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, StatusUnknown, fmt.Errorf("invalid value in solver output: %v", fields[2])
		}
		solution[index] = value
	}

	return solution, status, nil
}
