package repositories

import (
	"github.com/courseplanner/planner/internal/app/models"
	"github.com/courseplanner/planner/internal/pkg/helpers"
)

// CourseRepository is the in-memory course table, keyed by normalized course number.
// It is owned by the shell and accessed from a single goroutine, so it carries no lock.
type CourseRepository struct {
	courses map[string]models.Course
	loaded  bool
	loadID  string
}

// NewCourseRepository creates an empty, not-yet-loaded table.
func NewCourseRepository() *CourseRepository {
	return &CourseRepository{
		courses: make(map[string]models.Course),
	}
}

// Replace clears the table and installs courses in order; a later entry with the
// same normalized key overwrites an earlier one.
func (r *CourseRepository) Replace(courses []models.Course, loadID string) {
	r.courses = make(map[string]models.Course, len(courses))
	for _, c := range courses {
		r.courses[helpers.NormalizeKey(c.CourseNum)] = c
	}
	r.loaded = true
	r.loadID = loadID
}

// Get looks a course up by any spelling of its identifier.
func (r *CourseRepository) Get(courseNum string) (models.Course, bool) {
	c, ok := r.courses[helpers.NormalizeKey(courseNum)]
	return c, ok
}

// All returns the courses in map order.
func (r *CourseRepository) All() []models.Course {
	out := make([]models.Course, 0, len(r.courses))
	for _, c := range r.courses {
		out = append(out, c)
	}
	return out
}

// Len returns the number of entries.
func (r *CourseRepository) Len() int {
	return len(r.courses)
}

// Loaded reports whether a load has succeeded at least once, independent of size.
func (r *CourseRepository) Loaded() bool {
	return r.loaded
}

// LoadID returns the id of the load that produced the current contents.
func (r *CourseRepository) LoadID() string {
	return r.loadID
}
