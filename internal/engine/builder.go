package engine

import (
	"fmt"
	"sync"

	"github.com/mfigueredo/blocksched/internal/catalog"
	"github.com/mfigueredo/blocksched/internal/lp"
)

// ModelError reports course data that prevents variable generation. The whole
// build fails rather than silently skipping the course, since a partially
// built model produces misleading statistics.
type ModelError struct {
	CourseID string
	Reason   string
}

func (err *ModelError) Error() string {
	return fmt.Sprintf("cannot model course %v: %v", err.CourseID, err.Reason)
}

// ModelBuilder derives the decision variables, the three constraint families
// and the priority-weighted objective from a catalog, a block set and the
// valid-request list.
type ModelBuilder interface {
	Build(requests []catalog.Request, courses map[string]catalog.Course, blocks []string) (lp.Model, Indexer, error)
}

// NewModelBuilder returns a builder applying the given capacity overflow
// factor (1.2 allows 20% above each course's declared maximum section size).
func NewModelBuilder(overflow float64) ModelBuilder {
	return &modelBuilder{overflow: overflow}
}

type modelBuilder struct {
	overflow float64
}

func (builder *modelBuilder) Build(requests []catalog.Request, courses map[string]catalog.Course, blocks []string) (lp.Model, Indexer, error) {
	for _, request := range requests {
		course, ok := courses[request.CourseID]
		if !ok {
			return lp.Model{}, nil, &ModelError{CourseID: request.CourseID, Reason: "course is missing from the catalog"}
		}
		if course.SectionCount <= 0 {
			return lp.Model{}, nil, &ModelError{CourseID: request.CourseID, Reason: fmt.Sprintf("non-positive section count (%v)", course.SectionCount)}
		}
	}

	indexer := NewIndexer(requests, courses, len(blocks))

	// The three families are independent; generate each on its own
	// goroutine and concatenate in a fixed order so the model content does
	// not depend on scheduling.
	families := make([][]lp.Constraint, 3)
	generators := []func() []lp.Constraint{
		func() []lp.Constraint { return builder.blockConflictConstraints(requests, indexer, blocks) },
		func() []lp.Constraint { return builder.capacityConstraints(requests, courses, indexer, blocks) },
		func() []lp.Constraint { return builder.sectionChoiceConstraints(requests, indexer, blocks) },
	}

	var wg sync.WaitGroup
	for i, generate := range generators {
		wg.Add(1)
		go func(slot int, generate func() []lp.Constraint) {
			defer wg.Done()
			families[slot] = generate()
		}(i, generate)
	}
	wg.Wait()

	constraints := make([]lp.Constraint, 0, len(families[0])+len(families[1])+len(families[2]))
	for _, family := range families {
		constraints = append(constraints, family...)
	}

	model := lp.Model{
		Variables:   indexer.Len(),
		Constraints: constraints,
		Objective:   builder.objective(requests, indexer, blocks),
	}
	return model, indexer, nil
}

// No-double-booking: for each student and each block, at most one of the
// student's variables at that block may be set.
func (builder *modelBuilder) blockConflictConstraints(requests []catalog.Request, indexer Indexer, blocks []string) []lp.Constraint {
	students, requestsPerStudent := groupIndices(requests, func(request catalog.Request) string { return request.StudentID })

	constraints := make([]lp.Constraint, 0, len(students)*len(blocks))
	for _, student := range students {
		for block, blockName := range blocks {
			terms := []lp.Term{}
			for _, i := range requestsPerStudent[student] {
				for section := 0; section < indexer.Sections(i); section++ {
					terms = append(terms, lp.Term{Var: indexer.Index(i, section, block), Coef: 1})
				}
			}
			constraints = append(constraints, lp.Constraint{
				Name:  fmt.Sprintf("block_%v_%v", student, blockName),
				Terms: terms,
				Bound: 1,
			})
		}
	}
	return constraints
}

// Relaxed section capacity: for each (course, section), the number of
// students placed into it across every block must stay within the fractional
// bound maxSize * overflow. The enrollment sum is integral, so the effective
// limit is the bound's floor: maxSize 1 with overflow 1.2 still admits one
// student, not two.
func (builder *modelBuilder) capacityConstraints(requests []catalog.Request, courses map[string]catalog.Course, indexer Indexer, blocks []string) []lp.Constraint {
	courseIDs, requestsPerCourse := groupIndices(requests, func(request catalog.Request) string { return request.CourseID })

	constraints := []lp.Constraint{}
	for _, courseID := range courseIDs {
		course := courses[courseID]
		bound := float64(course.MaxSize) * builder.overflow

		for section := 0; section < course.SectionCount; section++ {
			terms := []lp.Term{}
			for _, i := range requestsPerCourse[courseID] {
				for block := range blocks {
					terms = append(terms, lp.Term{Var: indexer.Index(i, section, block), Coef: 1})
				}
			}
			constraints = append(constraints, lp.Constraint{
				Name:  fmt.Sprintf("capacity_%v_%v", courseID, section),
				Terms: terms,
				Bound: bound,
			})
		}
	}
	return constraints
}

// At-most-one-section-per-course: for each student and each requested course,
// at most one variable across all of that course's sections and blocks may be
// set. Duplicate requests for the same (student, course) share one
// constraint, so at most one of them can ever be fulfilled.
func (builder *modelBuilder) sectionChoiceConstraints(requests []catalog.Request, indexer Indexer, blocks []string) []lp.Constraint {
	pairs, requestsPerPair := groupIndices(requests, func(request catalog.Request) [2]string {
		return [2]string{request.StudentID, request.CourseID}
	})

	constraints := make([]lp.Constraint, 0, len(pairs))
	for _, pair := range pairs {
		terms := []lp.Term{}
		for _, i := range requestsPerPair[pair] {
			for section := 0; section < indexer.Sections(i); section++ {
				for block := range blocks {
					terms = append(terms, lp.Term{Var: indexer.Index(i, section, block), Coef: 1})
				}
			}
		}
		constraints = append(constraints, lp.Constraint{
			Name:  fmt.Sprintf("one_section_%v_%v", pair[0], pair[1]),
			Terms: terms,
			Bound: 1,
		})
	}
	return constraints
}

// The objective maximizes the weighted sum of set variables, weighting every
// variable of a request by the request's priority.
func (builder *modelBuilder) objective(requests []catalog.Request, indexer Indexer, blocks []string) []float64 {
	objective := make([]float64, indexer.Len())
	for i, request := range requests {
		weight := catalog.ParsePriority(request.Priority).Weight()
		for section := 0; section < indexer.Sections(i); section++ {
			for block := range blocks {
				objective[indexer.Index(i, section, block)] = weight
			}
		}
	}
	return objective
}

// groupIndices buckets request indices by key, returning keys in first
// appearance order so constraint generation stays deterministic.
func groupIndices[K comparable](requests []catalog.Request, key func(catalog.Request) K) ([]K, map[K][]int) {
	keys := []K{}
	buckets := make(map[K][]int)
	for i, request := range requests {
		k := key(request)
		if _, ok := buckets[k]; !ok {
			keys = append(keys, k)
		}
		buckets[k] = append(buckets[k], i)
	}
	return keys, buckets
}
