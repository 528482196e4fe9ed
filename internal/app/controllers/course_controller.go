package controllers

import (
	"fmt"
	"io"
	"strings"

	"github.com/courseplanner/planner/internal/app/models"
	"github.com/courseplanner/planner/internal/app/services"
)

// Console messages
const (
	MsgScheduleHeader = "Here is a sample schedule:"
	MsgNotFound       = "Course does not exist."
	MsgNoPrereqs      = "Prerequisites: None"
	unknownTag        = "Unknown"
)

// CourseController renders course queries as console text
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// PrintCourseList writes every course, one "<num>, <name>" per line, sorted.
func (c *CourseController) PrintCourseList(w io.Writer) {
	fmt.Fprintln(w, MsgScheduleHeader)
	fmt.Fprintln(w)
	for _, course := range c.courseService.ListAll() {
		fmt.Fprintf(w, "%s, %s\n", course.CourseNum, course.CourseName)
	}
}

// PrintCourse writes one course and its resolved prerequisites.
func (c *CourseController) PrintCourse(w io.Writer, query string) {
	fmt.Fprint(w, FormatCourseDetail(c.courseService.Find(query)))
}

// FormatCourseDetail renders a lookup result.
func FormatCourseDetail(detail models.CourseDetail) string {
	if !detail.Found {
		return MsgNotFound + "\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s, %s\n", detail.Course.CourseNum, detail.Course.CourseName)
	if !detail.HasPrerequisites() {
		b.WriteString(MsgNoPrereqs + "\n")
		return b.String()
	}

	parts := make([]string, 0, len(detail.Prerequisites))
	for _, p := range detail.Prerequisites {
		name := p.CourseName
		if !p.Resolved {
			name = unknownTag
		}
		parts = append(parts, fmt.Sprintf("%s (%s)", p.CourseNum, name))
	}
	b.WriteString("Prerequisites: " + strings.Join(parts, ", ") + "\n")
	return b.String()
}
