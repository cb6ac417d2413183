package catalog

// Priority is the closed set of request/course priority labels. Any label
// outside the set is treated as PriorityRequested.
type Priority int

const (
	PriorityCore Priority = iota
	PriorityRequired
	PriorityRequested
	PriorityRecommended
)

// Priorities lists every priority in reporting order.
var Priorities = []Priority{PriorityCore, PriorityRequired, PriorityRequested, PriorityRecommended}

func ParsePriority(label string) Priority {
	switch label {
	case "Core course":
		return PriorityCore
	case "Required":
		return PriorityRequired
	case "Requested":
		return PriorityRequested
	case "Recommended":
		return PriorityRecommended
	default:
		return PriorityRequested
	}
}

func (p Priority) String() string {
	switch p {
	case PriorityCore:
		return "Core course"
	case PriorityRequired:
		return "Required"
	case PriorityRecommended:
		return "Recommended"
	default:
		return "Requested"
	}
}

// Weight returns the objective coefficient used when maximizing fulfillment.
func (p Priority) Weight() float64 {
	switch p {
	case PriorityCore:
		return 100
	case PriorityRequired:
		return 90
	case PriorityRecommended:
		return 25
	default:
		return 50
	}
}
