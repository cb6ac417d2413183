package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePriority(t *testing.T) {
	t.Run("Known labels round-trip", func(t *testing.T) {
		for _, priority := range Priorities {
			assert.Equal(t, priority, ParsePriority(priority.String()))
		}
	})

	t.Run("Unknown labels default to requested", func(t *testing.T) {
		assert.Equal(t, PriorityRequested, ParsePriority("Elective"))
		assert.Equal(t, PriorityRequested, ParsePriority(""))
	})
}

func TestPriorityWeight(t *testing.T) {
	// Arrange
	expected := map[Priority]float64{
		PriorityCore:        100,
		PriorityRequired:    90,
		PriorityRequested:   50,
		PriorityRecommended: 25,
	}

	// Act & Assert
	for priority, weight := range expected {
		assert.Equal(t, weight, priority.Weight(), priority.String())
	}
	assert.Equal(t, float64(50), Priority(42).Weight())
}
