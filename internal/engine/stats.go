package engine

import (
	"strconv"

	"github.com/mfigueredo/blocksched/internal/catalog"
)

// aggregateStats computes fulfillment counts. The overall denominator is the
// original request list, dropped requests included; the per-priority
// denominators count only the modeled (valid) requests. Unrecognized priority
// labels fall into the default bucket of the closed enumeration.
func aggregateStats(all, valid, fulfilled []catalog.Request) Stats {
	stats := Stats{
		TotalRequests:     len(all),
		FulfilledRequests: len(fulfilled),
		PriorityStats:     make(map[string]*PriorityStat, len(catalog.Priorities)),
	}
	for _, priority := range catalog.Priorities {
		stats.PriorityStats[priority.String()] = &PriorityStat{}
	}

	for _, request := range valid {
		stats.PriorityStats[catalog.ParsePriority(request.Priority).String()].Total++
	}
	for _, request := range fulfilled {
		stats.PriorityStats[catalog.ParsePriority(request.Priority).String()].Fulfilled++
	}

	return stats
}

// sectionLabel is the textual section index used by the room catalog's
// cross-reference field.
func sectionLabel(section int) string {
	return strconv.Itoa(section)
}
