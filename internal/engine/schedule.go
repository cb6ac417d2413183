package engine

// Assignment places one student into one section of a course at one time
// block. Room and Teacher stay nil when no catalog record resolves them.
type Assignment struct {
	Course  string  `json:"course"`
	Section int     `json:"section"`
	Block   string  `json:"block"`
	Room    *string `json:"room"`
	Teacher *string `json:"teacher"`
}

// PriorityStat counts modeled and fulfilled requests for one priority label.
type PriorityStat struct {
	Total     int `json:"total"`
	Fulfilled int `json:"fulfilled"`
}

// Stats aggregates fulfillment over one solve. TotalRequests counts the
// original, unfiltered request list; the per-priority totals count only the
// requests that survived preprocessing and were modeled.
type Stats struct {
	TotalRequests     int                      `json:"total_requests"`
	FulfilledRequests int                      `json:"fulfilled_requests"`
	PriorityStats     map[string]*PriorityStat `json:"priority_stats"`
}

// FulfillmentRate returns the overall fulfillment fraction, or 0 when no
// requests were submitted at all.
func (s Stats) FulfillmentRate() float64 {
	if s.TotalRequests == 0 {
		return 0
	}
	return float64(s.FulfilledRequests) / float64(s.TotalRequests)
}

// Schedule is the queryable result of one solve. The teacher and room views
// share Assignment values with the student view by pointer. A schedule is
// never mutated after construction; a new solve produces a new schedule.
type Schedule struct {
	Student map[string][]*Assignment `json:"student"`
	Teacher map[string][]*Assignment `json:"teacher"`
	Room    map[string][]*Assignment `json:"room"`
	Stats   Stats                    `json:"stats"`
}
