package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/coursecatalog/catalog/internal/models"
	"go.uber.org/zap"
)

// ErrInvalidCourseChanges is returned when a partial course update cannot be applied
var ErrInvalidCourseChanges = errors.New("invalid course changes")

// CourseRepository is the interface that wraps methods for courses table data access
type CourseRepository interface {
	// GetAll retrieves all courses ordered by sequence number
	GetAll(ctx context.Context) ([]models.Course, error)
	// GetByID retrieves a course by its ID
	//
	// Returns models.ErrCourseNotFound when no course has the given ID.
	GetByID(ctx context.Context, id int) (*models.Course, error)
	// Update applies a partial update to a course
	Update(ctx context.Context, id int, changes models.CourseChanges) error
	// Count returns the number of courses
	Count(ctx context.Context) (int, error)
	// Seed inserts courses and lessons keeping their IDs
	//
	// Either every row is written or none is.
	Seed(ctx context.Context, courses []models.Course, lessons []models.Lesson) error
}

// LessonRepository is the interface that wraps methods for lessons table data access
type LessonRepository interface {
	// Find retrieves one page of a course's lessons filtered and sorted as the query describes
	Find(ctx context.Context, query models.LessonsQuery) ([]models.Lesson, error)
}

type catalogService struct {
	courseRepo CourseRepository
	lessonRepo LessonRepository
	logger     *zap.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(courseRepo CourseRepository, lessonRepo LessonRepository, logger *zap.Logger) *catalogService {
	return &catalogService{
		courseRepo: courseRepo,
		lessonRepo: lessonRepo,
		logger:     logger,
	}
}

// GetAllCourses retrieves all courses
func (s *catalogService) GetAllCourses(ctx context.Context) ([]models.Course, error) {
	courses, err := s.courseRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("failed to get all courses", zap.Error(err))
		return nil, fmt.Errorf("failed to get courses: %w", err)
	}

	return courses, nil
}

// GetCourseByID retrieves a course by its ID
func (s *catalogService) GetCourseByID(ctx context.Context, id int) (*models.Course, error) {
	if id <= 0 {
		return nil, fmt.Errorf("invalid course id")
	}

	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, models.ErrCourseNotFound) {
			s.logger.Error("failed to get course by id", zap.Error(err), zap.Int("id", id))
		}
		return nil, fmt.Errorf("failed to get course: %w", err)
	}

	return course, nil
}

// UpdateCourse applies a partial update to a course and returns the updated course
//
// Empty changes and unknown categories are rejected with ErrInvalidCourseChanges.
// A missing course is reported with models.ErrCourseNotFound.
func (s *catalogService) UpdateCourse(ctx context.Context, id int, changes models.CourseChanges) (*models.Course, error) {
	if id <= 0 {
		return nil, fmt.Errorf("invalid course id")
	}
	if changes.IsEmpty() {
		return nil, fmt.Errorf("%w: no fields to update", ErrInvalidCourseChanges)
	}
	if changes.Category != nil && !changes.Category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidCourseChanges, *changes.Category)
	}
	if changes.Titles != nil && changes.Titles.Description != nil && *changes.Titles.Description == "" {
		return nil, fmt.Errorf("%w: description must not be empty", ErrInvalidCourseChanges)
	}

	if _, err := s.courseRepo.GetByID(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to update course: %w", err)
	}

	if err := s.courseRepo.Update(ctx, id, changes); err != nil {
		s.logger.Error("failed to update course", zap.Error(err), zap.Int("id", id))
		return nil, fmt.Errorf("failed to update course: %w", err)
	}

	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to reload updated course", zap.Error(err), zap.Int("id", id))
		return nil, fmt.Errorf("failed to get updated course: %w", err)
	}

	s.logger.Info("course updated", zap.Int("id", id))

	return course, nil
}

// FindLessons retrieves one page of a course's lessons
func (s *catalogService) FindLessons(ctx context.Context, query models.LessonsQuery) ([]models.Lesson, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	lessons, err := s.lessonRepo.Find(ctx, query)
	if err != nil {
		s.logger.Error("failed to find lessons", zap.Error(err), zap.Int("courseId", query.CourseID))
		return nil, fmt.Errorf("failed to find lessons: %w", err)
	}

	return lessons, nil
}

// SeedIfEmpty inserts the given courses and lessons when the courses table is empty
//
// Returns true when the data was inserted.
func (s *catalogService) SeedIfEmpty(ctx context.Context, courses []models.Course, lessons []models.Lesson) (bool, error) {
	count, err := s.courseRepo.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check catalog: %w", err)
	}
	if count > 0 {
		s.logger.Debug("catalog already seeded", zap.Int("courses", count))
		return false, nil
	}

	if err := s.courseRepo.Seed(ctx, courses, lessons); err != nil {
		s.logger.Error("failed to seed catalog", zap.Error(err))
		return false, fmt.Errorf("failed to seed catalog: %w", err)
	}

	s.logger.Info("catalog seeded", zap.Int("courses", len(courses)), zap.Int("lessons", len(lessons)))

	return true, nil
}
