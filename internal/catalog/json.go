package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
)

// FromJSON loads a catalog from the consolidated cleaned-data document
// produced by the ingestion step: lecturers, rooms and courses keyed by
// identifier, plus a flat request list. Numeric fields may be carried as
// strings in the document and are converted while decoding.
func FromJSON(file string) (*Catalog, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("cannot read %v: %w", file, err)
	}

	var document struct {
		Lecturers       map[string]map[string]any `json:"lecturers"`
		Rooms           map[string]map[string]any `json:"rooms"`
		Courses         map[string]map[string]any `json:"courses"`
		StudentRequests []map[string]any          `json:"student_requests"`
	}
	if err := json.Unmarshal(bytes, &document); err != nil {
		return nil, fmt.Errorf("cannot parse %v: %w", file, err)
	}

	cat := &Catalog{
		Courses:   make(map[string]Course, len(document.Courses)),
		Rooms:     make(map[string]Room, len(document.Rooms)),
		Lecturers: make(map[string]Lecturer, len(document.Lecturers)),
		Requests:  make([]Request, 0, len(document.StudentRequests)),
	}

	for id, fields := range document.Courses {
		var course Course
		if err := decode(fields, &course); err != nil {
			return nil, fmt.Errorf("course %v: %w", id, err)
		}
		course.ID = id
		cat.Courses[id] = course
	}
	for id, fields := range document.Rooms {
		var room Room
		if err := decode(fields, &room); err != nil {
			return nil, fmt.Errorf("room %v: %w", id, err)
		}
		room.ID = id
		cat.Rooms[id] = room
	}
	for id, fields := range document.Lecturers {
		var lecturer Lecturer
		if err := decode(fields, &lecturer); err != nil {
			return nil, fmt.Errorf("lecturer %v: %w", id, err)
		}
		lecturer.ID = id
		cat.Lecturers[id] = lecturer
	}
	for i, fields := range document.StudentRequests {
		var request Request
		if err := decode(fields, &request); err != nil {
			return nil, fmt.Errorf("request %v: %w", i, err)
		}
		cat.Requests = append(cat.Requests, request)
	}

	return cat, nil
}

func decode(fields map[string]any, target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           target,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(fields)
}
