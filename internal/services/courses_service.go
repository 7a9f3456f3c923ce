package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/coursecatalog/catalog/internal/models"
	"go.uber.org/zap"
)

// HTTPClient is the interface that wraps the Do method.
//
// The standard *http.Client satisfies this interface.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

const (
	coursesPath = "/api/courses"
	lessonsPath = "/api/lessons"

	// maxErrorMessageSize bounds how much of a failed response body ends up in HTTPError.Message
	maxErrorMessageSize = 4 * 1024
)

// ErrEmptyCourse is returned when a successful course response has no course in it
var ErrEmptyCourse = errors.New("response carries no course")

type coursesService struct {
	client  HTTPClient
	baseURL string
	logger  *zap.Logger
}

// NewCoursesService creates a new client of the catalog REST API.
//
// "baseURL" is the scheme and host of the API (e.g. "http://localhost:9000"); an empty
// value issues requests with relative paths, which is only useful with a custom HTTPClient.
func NewCoursesService(client HTTPClient, baseURL string, logger *zap.Logger) *coursesService {
	return &coursesService{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}
}

// FindAllCourses retrieves all courses
//
// Issues GET /api/courses and unwraps the "payload" envelope.
func (s *coursesService) FindAllCourses(ctx context.Context) ([]models.Course, error) {
	resp, err := s.do(ctx, http.MethodGet, coursesPath, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to find all courses: %w", err)
	}
	defer resp.Body.Close()

	courses, err := models.DecodeEnvelope[[]models.Course](resp.Body)
	if err != nil {
		s.logger.Error("failed to decode courses", zap.Error(err))
		return nil, fmt.Errorf("failed to decode courses: %w", err)
	}

	return courses, nil
}

// FindCourseByID retrieves a course by its ID
//
// Issues GET /api/courses/{id}. A non-2xx answer is returned as *HTTPError.
func (s *coursesService) FindCourseByID(ctx context.Context, id int) (*models.Course, error) {
	resp, err := s.do(ctx, http.MethodGet, coursePath(id), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to find course %d: %w", id, err)
	}
	defer resp.Body.Close()

	course, err := decodeCourse(resp.Body)
	if err != nil {
		s.logger.Error("failed to decode course", zap.Error(err), zap.Int("id", id))
		return nil, fmt.Errorf("failed to decode course %d: %w", id, err)
	}

	return course, nil
}

// SaveCourse sends a partial update of a course
//
// Issues PUT /api/courses/{id} with "changes" as JSON body and returns the updated course.
// A non-2xx answer is returned as *HTTPError carrying the status code.
func (s *coursesService) SaveCourse(ctx context.Context, id int, changes models.CourseChanges) (*models.Course, error) {
	body, err := json.Marshal(changes)
	if err != nil {
		return nil, fmt.Errorf("failed to encode course changes: %w", err)
	}

	resp, err := s.do(ctx, http.MethodPut, coursePath(id), nil, body)
	if err != nil {
		return nil, fmt.Errorf("failed to save course %d: %w", id, err)
	}
	defer resp.Body.Close()

	course, err := decodeCourse(resp.Body)
	if err != nil {
		s.logger.Error("failed to decode saved course", zap.Error(err), zap.Int("id", id))
		return nil, fmt.Errorf("failed to decode course %d: %w", id, err)
	}

	return course, nil
}

// FindLessons retrieves a page of lessons of a course
//
// Issues GET /api/lessons with courseId, filter, sortOrder, pageNumber and pageSize query
// parameters, all of them always present. Use models.NewLessonsQuery for the defaults.
// An invalid query is rejected before any request is sent.
func (s *coursesService) FindLessons(ctx context.Context, query models.LessonsQuery) ([]models.Lesson, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	resp, err := s.do(ctx, http.MethodGet, lessonsPath, query.Values(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to find lessons of course %d: %w", query.CourseID, err)
	}
	defer resp.Body.Close()

	lessons, err := models.DecodeEnvelope[[]models.Lesson](resp.Body)
	if err != nil {
		s.logger.Error("failed to decode lessons", zap.Error(err), zap.Int("courseId", query.CourseID))
		return nil, fmt.Errorf("failed to decode lessons: %w", err)
	}

	return lessons, nil
}

// do sends one request and returns the response when its status is 2xx.
// On any other status the body is consumed and an *HTTPError is returned.
func (s *coursesService) do(ctx context.Context, method, path string, query url.Values, body []byte) (*http.Response, error) {
	target := s.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Error("request failed", zap.String("method", method), zap.String("url", target), zap.Error(err))
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		message, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorMessageSize))
		httpErr := &HTTPError{
			StatusCode: resp.StatusCode,
			StatusText: http.StatusText(resp.StatusCode),
			Method:     method,
			URL:        target,
			Message:    strings.TrimSpace(string(message)),
		}
		s.logger.Warn("unexpected response status",
			zap.String("method", method),
			zap.String("url", target),
			zap.Int("status", resp.StatusCode),
		)
		return nil, httpErr
	}

	s.logger.Debug("request completed",
		zap.String("method", method),
		zap.String("url", target),
		zap.Int("status", resp.StatusCode),
	)

	return resp, nil
}

// decodeCourse reads a bare course object. A null or ID-less body is ErrEmptyCourse.
func decodeCourse(r io.Reader) (*models.Course, error) {
	var course *models.Course
	if err := json.NewDecoder(r).Decode(&course); err != nil {
		return nil, err
	}
	if course == nil || course.ID == 0 {
		return nil, ErrEmptyCourse
	}
	return course, nil
}

func coursePath(id int) string {
	return coursesPath + "/" + strconv.Itoa(id)
}
