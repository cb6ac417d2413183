package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/gocarina/gocsv"
	"github.com/samber/lo"
)

func init() {
	// Institutional spreadsheets carry stray padding around cells.
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		reader := csv.NewReader(in)
		reader.TrimLeadingSpace = true
		return reader
	})
}

// Paths locates the four CSV source files.
type Paths struct {
	Courses   string
	Rooms     string
	Lecturers string
	Requests  string
}

// LoadCSV reads the four catalogs from CSV files. Column headers follow the
// institutional spreadsheet layout.
func LoadCSV(paths Paths) (*Catalog, error) {
	courses, err := loadRecords[Course](paths.Courses)
	if err != nil {
		return nil, fmt.Errorf("loading courses: %w", err)
	}
	rooms, err := loadRecords[Room](paths.Rooms)
	if err != nil {
		return nil, fmt.Errorf("loading rooms: %w", err)
	}
	lecturers, err := loadRecords[Lecturer](paths.Lecturers)
	if err != nil {
		return nil, fmt.Errorf("loading lecturers: %w", err)
	}
	requests, err := loadRecords[Request](paths.Requests)
	if err != nil {
		return nil, fmt.Errorf("loading requests: %w", err)
	}

	return &Catalog{
		Courses:   lo.SliceToMap(courses, func(c Course) (string, Course) { return c.ID, c }),
		Rooms:     lo.SliceToMap(rooms, func(r Room) (string, Room) { return r.ID, r }),
		Lecturers: lo.SliceToMap(lecturers, func(l Lecturer) (string, Lecturer) { return l.ID, l }),
		Requests:  requests,
	}, nil
}

func loadRecords[T any](path string) ([]T, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	records := []T{}
	if err := gocsv.UnmarshalFile(file, &records); err != nil {
		return nil, fmt.Errorf("cannot parse %v: %w", path, err)
	}
	return records, nil
}

// Validate reports non-fatal data quality findings mirroring those surfaced
// during ingestion of the source spreadsheet. Findings come out in ascending
// ID order so repeated runs report them identically.
func (c *Catalog) Validate() []string {
	findings := []string{}
	for _, id := range sortedKeys(c.Courses) {
		course := c.Courses[id]
		if course.MinSize > course.MaxSize {
			findings = append(findings, fmt.Sprintf("course %v: minimum section size (%v) greater than maximum (%v)", id, course.MinSize, course.MaxSize))
		}
		if course.Length <= 0 {
			findings = append(findings, fmt.Sprintf("course %v: invalid length value (%v)", id, course.Length))
		}
	}
	for _, id := range sortedKeys(c.Rooms) {
		if c.Rooms[id].CourseCode == "" {
			findings = append(findings, fmt.Sprintf("room %v: no course assigned", id))
		}
	}
	return findings
}

func sortedKeys[V any](m map[string]V) []string {
	keys := lo.Keys(m)
	slices.Sort(keys)
	return keys
}
