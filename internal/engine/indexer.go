package engine

import (
	"github.com/mfigueredo/blocksched/internal/catalog"
	"github.com/mfigueredo/blocksched/internal/lp"
)

// Indexer gives a unique variable handle to a combination of decision
// variable's attributes (request, section, block) and vice versa. Each valid
// request owns a contiguous span of handles, one per (section, block) pair of
// its requested course, so the variable space covers exactly the cross
// product needed to satisfy the requests and nothing more.
type Indexer interface {
	// Returns the variable handle for the request's (section, block) pair.
	Index(request, section, block int) lp.Var
	// Returns the attributes addressed by a variable handle.
	Attributes(variable lp.Var) (request, section, block int)
	// Sections returns the section count of the request's course.
	Sections(request int) int
	// Len is the total number of variable handles.
	Len() int
}

func NewIndexer(requests []catalog.Request, courses map[string]catalog.Course, blocks int) Indexer {
	offsets := make([]int, len(requests)+1)
	sections := make([]int, len(requests))
	for i, request := range requests {
		sections[i] = courses[request.CourseID].SectionCount
		offsets[i+1] = offsets[i] + sections[i]*blocks
	}
	return &offsetIndexer{
		offsets:  offsets,
		sections: sections,
		blocks:   blocks,
	}
}

type offsetIndexer struct {
	offsets  []int // offsets[i] is the first handle of request i; offsets[len] is the arena size
	sections []int
	blocks   int
}

func (indexer *offsetIndexer) Index(request, section, block int) lp.Var {
	return lp.Var(indexer.offsets[request] + section*indexer.blocks + block)
}

func (indexer *offsetIndexer) Attributes(variable lp.Var) (request int, section int, block int) {
	index := int(variable)

	// offsets is sorted, so locate the owning request by bisection
	low, high := 0, len(indexer.offsets)-1
	for low+1 < high {
		mid := (low + high) / 2
		if indexer.offsets[mid] <= index {
			low = mid
		} else {
			high = mid
		}
	}
	request = low

	index -= indexer.offsets[request]
	section = index / indexer.blocks
	block = index % indexer.blocks
	return request, section, block
}

func (indexer *offsetIndexer) Sections(request int) int {
	return indexer.sections[request]
}

func (indexer *offsetIndexer) Len() int {
	return indexer.offsets[len(indexer.offsets)-1]
}
