package engine

import (
	"github.com/mfigueredo/blocksched/internal/catalog"
	"github.com/mfigueredo/blocksched/internal/lp"
)

// acceptThreshold guards against fractional noise in solver output.
const acceptThreshold = 0.5

type roomKey struct {
	course  string
	section string
}

// decoder resolves accepted assignments to rooms and teachers. Both lookup
// indexes are built once per solve; when several catalog records match the
// same key the record with the lowest identifier wins, so resolution never
// depends on map iteration order.
type decoder struct {
	roomIndex    map[roomKey]string
	teacherIndex map[string]string
}

func newDecoder(rooms map[string]catalog.Room, lecturers map[string]catalog.Lecturer) *decoder {
	roomIndex := make(map[roomKey]string, len(rooms))
	for id, room := range rooms {
		key := roomKey{course: room.CourseCode, section: room.Section}
		if current, ok := roomIndex[key]; !ok || id < current {
			roomIndex[key] = id
		}
	}

	teacherIndex := make(map[string]string, len(lecturers))
	for id, lecturer := range lecturers {
		if current, ok := teacherIndex[lecturer.CourseCode]; !ok || id < current {
			teacherIndex[lecturer.CourseCode] = id
		}
	}

	return &decoder{roomIndex: roomIndex, teacherIndex: teacherIndex}
}

// decode walks every valid request's variables in ascending (section, block)
// order and accepts the first set one, then stops for that request: the model
// permits at most one, but the decoder does not rely on it. The returned
// fulfilled slice holds the requests whose assignment was accepted.
func (d *decoder) decode(solution lp.Solution, indexer Indexer, validRequests []catalog.Request, blocks []string) (*Schedule, []catalog.Request) {
	schedule := &Schedule{
		Student: make(map[string][]*Assignment),
		Teacher: make(map[string][]*Assignment),
		Room:    make(map[string][]*Assignment),
	}
	fulfilled := []catalog.Request{}

	for i, request := range validRequests {
		assignment := d.accept(solution, indexer, i, request, blocks)
		if assignment == nil {
			continue
		}

		schedule.Student[request.StudentID] = append(schedule.Student[request.StudentID], assignment)
		if assignment.Teacher != nil {
			schedule.Teacher[*assignment.Teacher] = append(schedule.Teacher[*assignment.Teacher], assignment)
		}
		if assignment.Room != nil {
			schedule.Room[*assignment.Room] = append(schedule.Room[*assignment.Room], assignment)
		}
		fulfilled = append(fulfilled, request)
	}

	return schedule, fulfilled
}

func (d *decoder) accept(solution lp.Solution, indexer Indexer, request int, record catalog.Request, blocks []string) *Assignment {
	for section := 0; section < indexer.Sections(request); section++ {
		for block, blockName := range blocks {
			if solution[indexer.Index(request, section, block)] <= acceptThreshold {
				continue
			}

			assignment := &Assignment{
				Course:  record.CourseID,
				Section: section,
				Block:   blockName,
			}
			if room, ok := d.resolveRoom(record.CourseID, section); ok {
				assignment.Room = &room
			}
			if teacher, ok := d.resolveTeacher(record.CourseID); ok {
				assignment.Teacher = &teacher
			}
			return assignment
		}
	}
	return nil
}

func (d *decoder) resolveRoom(course string, section int) (string, bool) {
	room, ok := d.roomIndex[roomKey{course: course, section: sectionLabel(section)}]
	return room, ok
}

func (d *decoder) resolveTeacher(course string) (string, bool) {
	teacher, ok := d.teacherIndex[course]
	return teacher, ok
}
