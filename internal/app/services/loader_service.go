package services

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/courseplanner/planner/internal/app/models"
	"github.com/courseplanner/planner/internal/app/repositories"
	"github.com/courseplanner/planner/internal/pkg/apperrors"
	"github.com/courseplanner/planner/internal/pkg/filestorage"
	"github.com/courseplanner/planner/internal/pkg/helpers"
	"github.com/courseplanner/planner/internal/pkg/validation"
)

const fieldDelimiter = ","

// LoadResult summarizes one load operation.
type LoadResult struct {
	LoadID  string
	Lines   int
	Blank   int
	Skipped int
	Courses int // distinct entries in the table after the load
}

// LoaderService defines the interface for loading the course table
type LoaderService interface {
	// Load replaces the table contents with the records in the named file.
	// On an unreadable file it returns an error wrapping apperrors.ErrSourceUnreadable
	// and leaves the table untouched.
	Load(path string) (*LoadResult, error)
}

// loaderServiceImpl implements the LoaderService interface
type loaderServiceImpl struct {
	courseRepo *repositories.CourseRepository
	storage    filestorage.FileStorage
	logger     zerolog.Logger
}

// NewLoaderService creates a new loader service instance
func NewLoaderService(courseRepo *repositories.CourseRepository, storage filestorage.FileStorage, logger zerolog.Logger) LoaderService {
	return &loaderServiceImpl{
		courseRepo: courseRepo,
		storage:    storage,
		logger:     logger,
	}
}

func (s *loaderServiceImpl) Load(path string) (*LoadResult, error) {
	result := &LoadResult{LoadID: uuid.New().String()}
	lgr := s.logger.With().Str("load_id", result.LoadID).Str("path", path).Logger()

	rc, err := s.storage.Open(path)
	if err != nil {
		lgr.Warn().Err(err).Msg("Course data file could not be opened")
		return nil, apperrors.NewSourceUnreadableError(path, err)
	}
	defer rc.Close()

	courses, err := ParseCourses(rc, result, lgr)
	if err != nil {
		lgr.Warn().Err(err).Msg("Course data file could not be read")
		return nil, apperrors.NewSourceReadError(path, err)
	}

	s.courseRepo.Replace(courses, result.LoadID)
	result.Courses = s.courseRepo.Len()

	lgr.Info().
		Int("lines", result.Lines).
		Int("blank", result.Blank).
		Int("skipped", result.Skipped).
		Int("courses", result.Courses).
		Msg("Course table loaded")
	return result, nil
}

// ParseCourses reads course records line by line. Lines have no length limit.
// Blank and malformed lines are counted in stats and skipped; only a read
// failure returns an error.
func ParseCourses(r io.Reader, stats *LoadResult, lgr zerolog.Logger) ([]models.Course, error) {
	reader := bufio.NewReader(r)

	var courses []models.Course
	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to read course data: %w", err)
		}
		if line == "" && err != nil {
			break
		}
		stats.Lines++

		if helpers.TrimField(line) == "" {
			stats.Blank++
			continue
		}

		course, err := parseRecord(line)
		if err != nil {
			stats.Skipped++
			lgr.Debug().Err(err).Int("line", stats.Lines).Msg("Skipping course record")
			continue
		}
		courses = append(courses, course)
	}

	return courses, nil
}

// parseRecord turns one non-blank line into a Course. Empty prerequisite
// fields (for example from a trailing comma) are dropped.
func parseRecord(line string) (models.Course, error) {
	raw := strings.Split(line, fieldDelimiter)
	fields := make([]string, len(raw))
	for i, f := range raw {
		fields[i] = helpers.TrimField(f)
	}

	if !validation.ValidRecord(fields) {
		return models.Course{}, apperrors.NewMalformedRecordError(
			fmt.Sprintf("record needs a course number and name, got %d field(s)", len(fields)))
	}

	course := models.Course{
		CourseNum:  fields[0],
		CourseName: fields[1],
	}
	for _, p := range fields[2:] {
		if p == "" {
			continue
		}
		course.Prerequisites = append(course.Prerequisites, p)
	}
	return course, nil
}
