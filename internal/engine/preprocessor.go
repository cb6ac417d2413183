package engine

import (
	"github.com/samber/lo"

	"github.com/mfigueredo/blocksched/internal/catalog"
)

type Preprocessor interface {
	// ValidRequests keeps the requests whose course exists in the catalog,
	// preserving input order. Requests naming unknown courses are dropped
	// silently; the drop is intentional, not a validation failure.
	ValidRequests(requests []catalog.Request, courses map[string]catalog.Course) []catalog.Request
}

func NewPreprocessor() Preprocessor {
	return &preprocessorImplementation{}
}

type preprocessorImplementation struct{}

func (preprocessor *preprocessorImplementation) ValidRequests(requests []catalog.Request, courses map[string]catalog.Course) []catalog.Request {
	return lo.Filter(requests, func(request catalog.Request, _ int) bool {
		_, ok := courses[request.CourseID]
		return ok
	})
}
