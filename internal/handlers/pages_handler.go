package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/coursecatalog/catalog/internal/models"
	"github.com/coursecatalog/catalog/internal/services"
	"github.com/coursecatalog/catalog/internal/views"
)

// CoursesClient is the interface that wraps the read methods of the catalog API client.
type CoursesClient interface {
	// Method FindAllCourses retrieves every course from the catalog API.
	FindAllCourses(ctx context.Context) ([]models.Course, error)
	// Method FindCourseByID retrieves a single course from the catalog API.
	//
	// A non-2xx answer is reported with *services.HTTPError.
	FindCourseByID(ctx context.Context, id int) (*models.Course, error)
	// Method FindLessons retrieves one page of lessons from the catalog API.
	FindLessons(ctx context.Context, query models.LessonsQuery) ([]models.Lesson, error)
}

// PagesHandler serves the HTML front end
type PagesHandler struct {
	BaseHandler
	client   CoursesClient
	renderer *views.Renderer
}

// NewPagesHandler creates a new pages handler
func NewPagesHandler(client CoursesClient, renderer *views.Renderer, logger *zap.Logger) *PagesHandler {
	return &PagesHandler{
		BaseHandler: BaseHandler{logger: logger},
		client:      client,
		renderer:    renderer,
	}
}

// RegisterRoutes registers all page routes
func (h *PagesHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Home)
	r.Get("/courses/{id}", h.Course)
	r.Get("/partials/courses-card-list", h.CoursesCardList)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(views.StaticFS()))))
}

// Home handles GET / with beginner and advanced course lists
func (h *PagesHandler) Home(w http.ResponseWriter, r *http.Request) {
	courses, err := h.client.FindAllCourses(r.Context())
	if err != nil {
		h.upstreamError(w, err, "failed to load courses", "")
		return
	}

	page := views.NewHomePage(courses)
	h.respondHTML(w, http.StatusOK, func(out io.Writer) error {
		return h.renderer.RenderHome(out, page)
	})
}

// CoursesCardList handles GET /partials/courses-card-list.
// The optional category parameter narrows the list to one category.
func (h *PagesHandler) CoursesCardList(w http.ResponseWriter, r *http.Request) {
	category := models.Category(r.URL.Query().Get("category"))
	if category != "" && !category.Valid() {
		h.errorPage(w, http.StatusBadRequest, "unknown category")
		return
	}

	courses, err := h.client.FindAllCourses(r.Context())
	if err != nil {
		h.upstreamError(w, err, "failed to load courses", "")
		return
	}

	courses = models.SortCoursesBySeqNo(courses)
	if category != "" {
		courses = models.FilterByCategory(courses, category)
	}

	h.respondHTML(w, http.StatusOK, func(out io.Writer) error {
		return h.renderer.RenderCoursesCardList(out, courses)
	})
}

// Course handles GET /courses/{id}. The course and its lessons page are fetched concurrently.
func (h *PagesHandler) Course(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		h.errorPage(w, http.StatusBadRequest, "invalid course id")
		return
	}

	values := r.URL.Query()
	values.Set("courseId", strconv.Itoa(id))
	query, err := models.ParseLessonsQuery(values)
	if err != nil {
		h.errorPage(w, http.StatusBadRequest, err.Error())
		return
	}

	var (
		course  *models.Course
		lessons []models.Lesson
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		course, err = h.client.FindCourseByID(ctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		lessons, err = h.client.FindLessons(ctx, query)
		return err
	})
	if err := g.Wait(); err != nil {
		h.upstreamError(w, err, "failed to load course", "course not found")
		return
	}

	page := views.CoursePage{Course: *course, Lessons: lessons, Query: query}
	h.respondHTML(w, http.StatusOK, func(out io.Writer) error {
		return h.renderer.RenderCourse(out, page)
	})
}

// upstreamError maps a catalog API failure to an error page.
// A 404 stays 404 with notFound as its message when notFound is set. Anything else is 502.
func (h *PagesHandler) upstreamError(w http.ResponseWriter, err error, message, notFound string) {
	if notFound != "" && services.IsNotFound(err) {
		h.errorPage(w, http.StatusNotFound, notFound)
		return
	}

	var httpErr *services.HTTPError
	if errors.As(err, &httpErr) {
		h.logger.Warn(message, zap.Error(err), zap.Int("upstream_status", httpErr.StatusCode))
	} else {
		h.logger.Error(message, zap.Error(err))
	}
	h.errorPage(w, http.StatusBadGateway, message)
}

func (h *PagesHandler) errorPage(w http.ResponseWriter, status int, message string) {
	h.respondHTML(w, status, func(out io.Writer) error {
		return h.renderer.RenderError(out, views.ErrorPage{Status: status, Message: message})
	})
}
