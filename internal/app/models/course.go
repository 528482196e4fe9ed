package models

// Course represents one catalog entry as read from the data file.
type Course struct {
	CourseNum  string `json:"courseNum" yaml:"course_num"`
	CourseName string `json:"courseName" yaml:"course_name"`
	// Prerequisites holds identifiers as written in the source file (not normalized).
	Prerequisites []string `json:"prerequisites,omitempty" yaml:"prerequisites,omitempty"`
}

// PrerequisiteRef is one prerequisite of a found course after lookup.
// When Resolved is false, CourseNum is the literal text from the file and CourseName is empty.
type PrerequisiteRef struct {
	CourseNum  string `json:"courseNum"`
	CourseName string `json:"courseName,omitempty"`
	Resolved   bool   `json:"resolved"`
}

// CourseDetail is the result of a single-course lookup.
type CourseDetail struct {
	Found         bool              `json:"found"`
	Course        Course            `json:"course"`
	Prerequisites []PrerequisiteRef `json:"prerequisites,omitempty"`
}

// HasPrerequisites distinguishes "no prerequisites" from a list of (possibly unresolved) ones.
func (d CourseDetail) HasPrerequisites() bool {
	return len(d.Prerequisites) > 0
}
