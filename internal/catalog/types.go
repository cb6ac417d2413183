package catalog

// Course describes one schedulable course. Immutable once loaded.
type Course struct {
	ID           string `csv:"Course code" mapstructure:"id"`
	Title        string `csv:"Title" mapstructure:"title"`
	Length       int    `csv:"Length" mapstructure:"length"`
	Priority     string `csv:"Priority" mapstructure:"priority"`
	MinSize      int    `csv:"Minimum section size" mapstructure:"min_size"`
	TargetSize   int    `csv:"Target section size" mapstructure:"target_size"`
	MaxSize      int    `csv:"Maximum section size" mapstructure:"max_size"`
	SectionCount int    `csv:"Number of sections" mapstructure:"num_sections"`
	TotalCredits string `csv:"Total credits" mapstructure:"total_credits"`
}

// Room cross-references a physical room with the course/section it hosts.
type Room struct {
	ID          string `csv:"Room Number" mapstructure:"id"`
	CourseTitle string `csv:"Course Title" mapstructure:"course_title"`
	Section     string `csv:"Section number" mapstructure:"section"`
	CourseCode  string `csv:"Course Code" mapstructure:"course_code"`
	ProfID      string `csv:"prof ID" mapstructure:"prof_id"`
	Term        string `csv:"Term Description" mapstructure:"term"`
}

// Lecturer cross-references a teacher with the course they teach.
type Lecturer struct {
	ID         string `csv:"Lecturer ID" mapstructure:"id"`
	Title      string `csv:"Lecture Title" mapstructure:"title"`
	CourseCode string `csv:"lecture Code" mapstructure:"code"`
	StartTerm  string `csv:"Start Term" mapstructure:"start_term"`
	Section    string `csv:"Section number" mapstructure:"section"`
}

// Request is one student's request for one course. Descriptive fields are
// carried through the engine unchanged.
type Request struct {
	StudentID   string `csv:"student ID" mapstructure:"student_id"`
	CourseID    string `csv:"Course code" mapstructure:"course_code"`
	Priority    string `csv:"Priority" mapstructure:"priority"`
	Type        string `csv:"Type" mapstructure:"type"`
	CollegeYear string `csv:"College Year" mapstructure:"college_year"`
	Departments string `csv:"Department(s)" mapstructure:"departments"`
	Credits     string `csv:"Credits" mapstructure:"credits"`
}

// Catalog bundles every input collection the engine consumes.
type Catalog struct {
	Courses   map[string]Course
	Rooms     map[string]Room
	Lecturers map[string]Lecturer
	Requests  []Request
}
