package engine

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/samber/lo"

	"github.com/mfigueredo/blocksched/internal/catalog"
)

// Auditor recomputes conflicts and violations from an already-produced
// schedule. It shares the constraint vocabulary with the model builder but
// runs independently of any solve, so it can vet schedules from any source.
type Auditor struct {
	overflow float64
}

func NewAuditor(overflow float64) *Auditor {
	return &Auditor{overflow: overflow}
}

// Audit runs every check and returns the collected findings, empty when the
// schedule is clean.
func (auditor *Auditor) Audit(schedule *Schedule, courses map[string]catalog.Course) []string {
	findings := []string{}
	findings = append(findings, auditor.BlockConflicts(schedule)...)
	findings = append(findings, auditor.SectionChoiceViolations(schedule)...)
	findings = append(findings, auditor.CapacityViolations(schedule, courses)...)
	findings = append(findings, auditor.TeacherConflicts(schedule)...)
	return findings
}

// BlockConflicts reports students holding more than one assignment in the
// same time block.
func (auditor *Auditor) BlockConflicts(schedule *Schedule) []string {
	findings := []string{}
	for student, assignments := range schedule.Student {
		occupied := make(map[string]string)
		for _, assignment := range assignments {
			if course, ok := occupied[assignment.Block]; ok {
				findings = append(findings, fmt.Sprintf("student %v has a conflict in block %v: %v vs %v", student, assignment.Block, course, assignment.Course))
			}
			occupied[assignment.Block] = assignment.Course
		}
	}
	return findings
}

// SectionChoiceViolations reports students enrolled in more than one section
// of the same course.
func (auditor *Auditor) SectionChoiceViolations(schedule *Schedule) []string {
	findings := []string{}
	for student, assignments := range schedule.Student {
		perCourse := make(map[string]int)
		for _, assignment := range assignments {
			perCourse[assignment.Course]++
		}
		for course, count := range perCourse {
			if count > 1 {
				findings = append(findings, fmt.Sprintf("student %v holds %v sections of course %v", student, count, course))
			}
		}
	}
	return findings
}

// CapacityViolations reports sections whose enrollment exceeds the overflow
// bound over the course's declared maximum size. Findings come out in
// ascending (course, section) order so repeated audits report identically.
func (auditor *Auditor) CapacityViolations(schedule *Schedule, courses map[string]catalog.Course) []string {
	enrollment := make(map[[2]string]int)
	for _, assignments := range schedule.Student {
		for _, assignment := range assignments {
			enrollment[[2]string{assignment.Course, sectionLabel(assignment.Section)}]++
		}
	}
	keys := lo.Keys(enrollment)
	slices.SortFunc(keys, func(a, b [2]string) int {
		if c := cmp.Compare(a[0], b[0]); c != 0 {
			return c
		}
		return cmp.Compare(a[1], b[1])
	})

	findings := []string{}
	for _, key := range keys {
		count := enrollment[key]
		course, ok := courses[key[0]]
		if !ok {
			findings = append(findings, fmt.Sprintf("section %v_%v references a course missing from the catalog", key[0], key[1]))
			continue
		}
		bound := float64(course.MaxSize) * auditor.overflow
		if float64(count) > bound {
			findings = append(findings, fmt.Sprintf("section %v_%v exceeded capacity: %v > %g", key[0], key[1], count, bound))
		}
	}
	return findings
}

// TeacherConflicts reports teachers assigned to two different course-sections
// in the same block. A teacher repeated at one block for the same
// course-section is one class seen through several students, not a conflict.
func (auditor *Auditor) TeacherConflicts(schedule *Schedule) []string {
	findings := []string{}
	for teacher, assignments := range schedule.Teacher {
		occupied := make(map[string]string)
		for _, assignment := range assignments {
			courseSection := fmt.Sprintf("%v_%v", assignment.Course, assignment.Section)
			if current, ok := occupied[assignment.Block]; ok && current != courseSection {
				findings = append(findings, fmt.Sprintf("teacher %v has a conflict in block %v: %v vs %v", teacher, assignment.Block, current, courseSection))
			}
			occupied[assignment.Block] = courseSection
		}
	}
	return findings
}
