package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromJSON(t *testing.T) {
	t.Run("Decodes the consolidated document", func(t *testing.T) {
		// Arrange
		file := writeFile(t, t.TempDir(), "data.json", `{
			"lecturers": {
				"L1": {"title": "Calculus I", "code": "MATH101", "section": "0"}
			},
			"rooms": {
				"R101": {"course_code": "MATH101", "section": "0", "prof_id": "L1"}
			},
			"courses": {
				"MATH101": {"title": "Calculus I", "length": "1", "priority": "Core course", "min_size": "5", "max_size": "30", "num_sections": "2"}
			},
			"student_requests": [
				{"student_id": "S1", "course_code": "MATH101", "priority": "Core course"}
			]
		}`)

		// Act
		cat, err := FromJSON(file)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "MATH101", cat.Courses["MATH101"].ID)
		assert.Equal(t, 30, cat.Courses["MATH101"].MaxSize)
		assert.Equal(t, 2, cat.Courses["MATH101"].SectionCount)
		assert.Equal(t, "MATH101", cat.Rooms["R101"].CourseCode)
		assert.Equal(t, "L1", cat.Lecturers["L1"].ID)
		require.Len(t, cat.Requests, 1)
		assert.Equal(t, "S1", cat.Requests[0].StudentID)
	})

	t.Run("Numeric fields may arrive as numbers too", func(t *testing.T) {
		// Arrange
		file := writeFile(t, t.TempDir(), "data.json", `{
			"courses": {"C1": {"length": 1, "max_size": 25, "num_sections": 1}}
		}`)

		// Act
		cat, err := FromJSON(file)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 25, cat.Courses["C1"].MaxSize)
	})

	t.Run("Missing file is an error", func(t *testing.T) {
		// Act
		_, err := FromJSON("nonexistent.json")

		// Assert
		assert.Error(t, err)
	})

	t.Run("Malformed document is an error", func(t *testing.T) {
		// Arrange
		file := writeFile(t, t.TempDir(), "data.json", "{not json")

		// Act
		_, err := FromJSON(file)

		// Assert
		assert.Error(t, err)
	})
}
