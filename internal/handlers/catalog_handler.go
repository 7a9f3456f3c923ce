package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/coursecatalog/catalog/internal/models"
	"github.com/coursecatalog/catalog/internal/services"
)

// CatalogService is the interface that wraps methods for the catalog business logic.
type CatalogService interface {
	// Method GetAllCourses retrieves every course of the catalog.
	GetAllCourses(ctx context.Context) ([]models.Course, error)
	// Method GetCourseByID retrieves a single course.
	//
	// models.ErrCourseNotFound is returned (possibly wrapped) when no course has the given ID.
	GetCourseByID(ctx context.Context, id int) (*models.Course, error)
	// Method UpdateCourse applies a partial update and returns the updated course.
	//
	// Invalid changes are reported with services.ErrInvalidCourseChanges,
	// a missing course with models.ErrCourseNotFound.
	UpdateCourse(ctx context.Context, id int, changes models.CourseChanges) (*models.Course, error)
	// Method FindLessons retrieves one page of lessons matching the query.
	//
	// An invalid query is reported with models.ErrInvalidLessonsQuery.
	FindLessons(ctx context.Context, query models.LessonsQuery) ([]models.Lesson, error)
}

// CatalogHandler handles HTTP requests of the catalog JSON API
type CatalogHandler struct {
	BaseHandler
	service CatalogService
	writes  func(http.Handler) http.Handler
}

// NewCatalogHandler creates a new catalog handler.
// writeGuard wraps the routes that modify data; nil leaves them open.
func NewCatalogHandler(svc CatalogService, writeGuard func(http.Handler) http.Handler, logger *zap.Logger) *CatalogHandler {
	if writeGuard == nil {
		writeGuard = func(next http.Handler) http.Handler { return next }
	}
	return &CatalogHandler{
		BaseHandler: BaseHandler{logger: logger},
		service:     svc,
		writes:      writeGuard,
	}
}

// RegisterRoutes registers all catalog handler routes
func (h *CatalogHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Route("/courses", func(r chi.Router) {
			r.Get("/", h.GetAllCourses)
			r.Get("/{id}", h.GetCourseByID)
			r.With(h.writes).Put("/{id}", h.SaveCourse)
		})
		r.Get("/lessons", h.FindLessons)
	})
}

// GetAllCourses handles GET /api/courses
// @Summary Get all courses
// @Description Get every course of the catalog wrapped in a payload envelope
// @Tags courses
// @Produce json
// @Success 200 {object} models.Envelope[[]models.Course]
// @Failure 500 {object} map[string]string
// @Router /api/courses [get]
func (h *CatalogHandler) GetAllCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.service.GetAllCourses(r.Context())
	if err != nil {
		h.logger.Error("failed to get all courses", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to get courses")
		return
	}

	if courses == nil {
		courses = []models.Course{}
	}
	h.respondJSON(w, http.StatusOK, models.NewEnvelope(courses))
}

// GetCourseByID handles GET /api/courses/{id}
// @Summary Get course by ID
// @Description Get a single course
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} models.Course
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/courses/{id} [get]
func (h *CatalogHandler) GetCourseByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.courseID(w, r)
	if !ok {
		return
	}

	course, err := h.service.GetCourseByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrCourseNotFound) {
			h.respondError(w, http.StatusNotFound, "course not found")
			return
		}
		h.logger.Error("failed to get course by id", zap.Error(err), zap.Int("id", id))
		h.respondError(w, http.StatusInternalServerError, "failed to get course")
		return
	}

	h.respondJSON(w, http.StatusOK, course)
}

// SaveCourse handles PUT /api/courses/{id}
// @Summary Update course
// @Description Apply a partial update to a course and return the updated course
// @Tags courses
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Param X-API-Key header string false "API key, required when the server has one configured"
// @Param changes body models.CourseChanges true "Fields to change"
// @Success 200 {object} models.Course
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/courses/{id} [put]
func (h *CatalogHandler) SaveCourse(w http.ResponseWriter, r *http.Request) {
	id, ok := h.courseID(w, r)
	if !ok {
		return
	}

	var changes models.CourseChanges
	if err := json.NewDecoder(r.Body).Decode(&changes); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	course, err := h.service.UpdateCourse(r.Context(), id, changes)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCourseChanges):
			h.respondError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, models.ErrCourseNotFound):
			h.respondError(w, http.StatusNotFound, "course not found")
		default:
			h.logger.Error("failed to update course", zap.Error(err), zap.Int("id", id))
			h.respondError(w, http.StatusInternalServerError, "failed to update course")
		}
		return
	}

	h.respondJSON(w, http.StatusOK, course)
}

// FindLessons handles GET /api/lessons
// @Summary Find lessons
// @Description Get one page of a course's lessons wrapped in a payload envelope
// @Tags lessons
// @Produce json
// @Param courseId query int true "Course ID"
// @Param filter query string false "Substring of the lesson description"
// @Param sortOrder query string false "asc or desc by sequence number, default: asc"
// @Param pageNumber query int false "Zero-based page index, default: 0"
// @Param pageSize query int false "Page size, default: 3"
// @Success 200 {object} models.Envelope[[]models.Lesson]
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/lessons [get]
func (h *CatalogHandler) FindLessons(w http.ResponseWriter, r *http.Request) {
	query, err := models.ParseLessonsQuery(r.URL.Query())
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	lessons, err := h.service.FindLessons(r.Context(), query)
	if err != nil {
		if errors.Is(err, models.ErrInvalidLessonsQuery) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("failed to find lessons", zap.Error(err), zap.Int("courseId", query.CourseID))
		h.respondError(w, http.StatusInternalServerError, "failed to find lessons")
		return
	}

	if lessons == nil {
		lessons = []models.Lesson{}
	}
	h.respondJSON(w, http.StatusOK, models.NewEnvelope(lessons))
}

// courseID parses the {id} path parameter, answering 400 when it is not a positive integer
func (h *CatalogHandler) courseID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		h.respondError(w, http.StatusBadRequest, "invalid id parameter")
		return 0, false
	}
	return id, true
}
