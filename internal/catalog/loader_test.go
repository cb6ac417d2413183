package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func fixturePaths(t *testing.T) Paths {
	dir := t.TempDir()
	return Paths{
		Courses: writeFile(t, dir, "courses.csv",
			"Course code,Title,Length,Priority,Minimum section size,Target section size,Maximum section size,Number of sections,Total credits\n"+
				"MATH101,Calculus I,1,Core course,5,20,30,2,4\n"+
				"HIST210,World History,1,Recommended,5,15,25,1,3\n"),
		Rooms: writeFile(t, dir, "rooms.csv",
			"Room Number,Course Title,Section number,Course Code,prof ID,Term Description\n"+
				"R101,Calculus I,0,MATH101,L1,Fall\n"),
		Lecturers: writeFile(t, dir, "lecturers.csv",
			"Lecturer ID,Lecture Title,lecture Code,Start Term,Section number\n"+
				"L1,Calculus I,MATH101,Fall,0\n"),
		Requests: writeFile(t, dir, "requests.csv",
			"student ID,Course code,Priority,Type,College Year,Department(s),Credits\n"+
				"S1,MATH101,Core course,Academic,Freshman,Mathematics,4\n"+
				"S2,HIST210,Recommended,Academic,Sophomore,History,3\n"),
	}
}

func TestLoadCSV(t *testing.T) {
	t.Run("Loads all four catalogs", func(t *testing.T) {
		// Arrange
		paths := fixturePaths(t)

		// Act
		cat, err := LoadCSV(paths)

		// Assert
		require.NoError(t, err)
		assert.Len(t, cat.Courses, 2)
		assert.Equal(t, 30, cat.Courses["MATH101"].MaxSize)
		assert.Equal(t, 2, cat.Courses["MATH101"].SectionCount)
		assert.Equal(t, "MATH101", cat.Rooms["R101"].CourseCode)
		assert.Equal(t, "MATH101", cat.Lecturers["L1"].CourseCode)
		require.Len(t, cat.Requests, 2)
		assert.Equal(t, "S1", cat.Requests[0].StudentID)
		assert.Equal(t, "Core course", cat.Requests[0].Priority)
	})

	t.Run("Missing file is an error", func(t *testing.T) {
		// Arrange
		paths := fixturePaths(t)
		paths.Requests = filepath.Join(t.TempDir(), "absent.csv")

		// Act
		_, err := LoadCSV(paths)

		// Assert
		assert.Error(t, err)
	})

	t.Run("Malformed rows are an error", func(t *testing.T) {
		// Arrange
		paths := fixturePaths(t)
		paths.Courses = writeFile(t, t.TempDir(), "courses.csv",
			"Course code,Length\nMATH101,not-a-number\n")

		// Act
		_, err := LoadCSV(paths)

		// Assert
		assert.Error(t, err)
	})
}

func TestCatalogValidate(t *testing.T) {
	t.Run("Clean catalog yields no findings", func(t *testing.T) {
		// Arrange
		cat, err := LoadCSV(fixturePaths(t))
		require.NoError(t, err)

		// Act & Assert
		assert.Empty(t, cat.Validate())
	})

	t.Run("Reports inverted size bounds, bad lengths and orphan rooms", func(t *testing.T) {
		// Arrange
		cat := &Catalog{
			Courses: map[string]Course{
				"C1": {ID: "C1", Length: 1, MinSize: 40, MaxSize: 30},
				"C2": {ID: "C2", Length: 0, MinSize: 5, MaxSize: 30},
			},
			Rooms: map[string]Room{
				"R1": {ID: "R1"},
			},
		}

		// Act
		findings := cat.Validate()

		// Assert
		assert.Len(t, findings, 3)
	})

	t.Run("Reports findings in ascending ID order on every run", func(t *testing.T) {
		// Arrange
		cat := &Catalog{
			Courses: map[string]Course{
				"C3": {ID: "C3", Length: 0, MinSize: 5, MaxSize: 30},
				"C1": {ID: "C1", Length: 0, MinSize: 5, MaxSize: 30},
				"C2": {ID: "C2", Length: 0, MinSize: 5, MaxSize: 30},
			},
			Rooms: map[string]Room{
				"R2": {ID: "R2"},
				"R1": {ID: "R1"},
			},
		}

		// Act
		findings := cat.Validate()

		// Assert
		expected := []string{
			"course C1: invalid length value (0)",
			"course C2: invalid length value (0)",
			"course C3: invalid length value (0)",
			"room R1: no course assigned",
			"room R2: no course assigned",
		}
		assert.Equal(t, expected, findings)
		assert.Equal(t, findings, cat.Validate())
	})
}
