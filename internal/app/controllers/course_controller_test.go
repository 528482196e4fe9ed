package controllers

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/courseplanner/planner/internal/app/models"
	"github.com/courseplanner/planner/internal/app/repositories"
	"github.com/courseplanner/planner/internal/app/services"
)

func newController() *CourseController {
	repo := repositories.NewCourseRepository()
	repo.Replace([]models.Course{
		{CourseNum: "CS101", CourseName: "Intro to CS"},
		{CourseNum: "CS201", CourseName: "Data Structures", Prerequisites: []string{"CS101"}},
		{CourseNum: "CS301", CourseName: "Algorithms", Prerequisites: []string{"CS201", "MATH200"}},
	}, "test")
	return NewCourseController(services.NewCourseService(repo))
}

func TestPrintCourseList(t *testing.T) {
	var buf bytes.Buffer
	newController().PrintCourseList(&buf)

	assert.Equal(t, "Here is a sample schedule:\n\nCS101, Intro to CS\nCS201, Data Structures\nCS301, Algorithms\n", buf.String())
}

func TestPrintCourse_Table(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"with-unknown", "cs301", "CS301, Algorithms\nPrerequisites: CS201 (Data Structures), MATH200 (Unknown)\n"},
		{"no-prereqs", "cs101", "CS101, Intro to CS\nPrerequisites: None\n"},
		{"absent", "cs999", "Course does not exist.\n"},
	}

	ctrl := newController()
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			ctrl.PrintCourse(&buf, tc.query)
			assert.Equal(t, tc.want, buf.String())
		})
	}
}
