package services

import (
	"slices"
	"strings"

	"github.com/courseplanner/planner/internal/app/models"
	"github.com/courseplanner/planner/internal/app/repositories"
)

// CourseService defines the interface for course queries
type CourseService interface {
	// ListAll returns every course ordered by course number (byte-wise, ascending).
	ListAll() []models.Course
	// Find looks a course up by any spelling of its identifier and resolves its prerequisites.
	Find(query string) models.CourseDetail
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courseRepo *repositories.CourseRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo *repositories.CourseRepository) CourseService {
	return &courseServiceImpl{
		courseRepo: courseRepo,
	}
}

func (s *courseServiceImpl) ListAll() []models.Course {
	courses := s.courseRepo.All()
	SortCourses(courses)
	return courses
}

func (s *courseServiceImpl) Find(query string) models.CourseDetail {
	course, ok := s.courseRepo.Get(query)
	if !ok {
		return models.CourseDetail{}
	}

	detail := models.CourseDetail{Found: true, Course: course}
	for _, p := range course.Prerequisites {
		if pre, ok := s.courseRepo.Get(p); ok {
			detail.Prerequisites = append(detail.Prerequisites, models.PrerequisiteRef{
				CourseNum:  pre.CourseNum,
				CourseName: pre.CourseName,
				Resolved:   true,
			})
			continue
		}
		detail.Prerequisites = append(detail.Prerequisites, models.PrerequisiteRef{CourseNum: p})
	}
	return detail
}

// SortCourses orders courses by CourseNum in place. Equal keys keep their relative order.
func SortCourses(courses []models.Course) {
	slices.SortStableFunc(courses, func(a, b models.Course) int {
		return strings.Compare(a.CourseNum, b.CourseNum)
	})
}
