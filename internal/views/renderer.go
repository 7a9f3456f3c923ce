// Package views renders the catalog HTML pages
package views

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/url"
	"strconv"

	"github.com/coursecatalog/catalog/internal/models"
)

//go:embed templates/*.html
var templates embed.FS

//go:embed static/*
var static embed.FS

// StaticFS returns the stylesheets served under /static/
func StaticFS() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// HomePage is the data of the all-courses page
type HomePage struct {
	Beginner []models.Course
	Advanced []models.Course
}

// NewHomePage sorts courses by sequence number and splits them by category
func NewHomePage(courses []models.Course) HomePage {
	sorted := models.SortCoursesBySeqNo(courses)
	return HomePage{
		Beginner: models.FilterByCategory(sorted, models.CategoryBeginner),
		Advanced: models.FilterByCategory(sorted, models.CategoryAdvanced),
	}
}

// CoursePage is the data of a single course page with one page of its lessons
type CoursePage struct {
	Course  models.Course
	Lessons []models.Lesson
	Query   models.LessonsQuery
}

// PageLabel is the one-based number of the displayed lessons page
func (p CoursePage) PageLabel() int {
	return p.Query.PageNumber + 1
}

// PrevURL links to the previous lessons page, empty on the first page
func (p CoursePage) PrevURL() string {
	if p.Query.PageNumber == 0 {
		return ""
	}
	q := p.Query
	q.PageNumber--
	return coursePageURL(q)
}

// NextURL links to the next lessons page, empty when the current page is not full
func (p CoursePage) NextURL() string {
	if len(p.Lessons) < p.Query.PageSize {
		return ""
	}
	q := p.Query
	q.PageNumber++
	return coursePageURL(q)
}

// SortURL links to the first page in the opposite sort order
func (p CoursePage) SortURL() string {
	q := p.Query
	q.PageNumber = 0
	if q.SortOrder == models.SortOrderDesc {
		q.SortOrder = models.SortOrderAsc
	} else {
		q.SortOrder = models.SortOrderDesc
	}
	return coursePageURL(q)
}

func coursePageURL(q models.LessonsQuery) string {
	values := url.Values{}
	if q.Filter != "" {
		values.Set("filter", q.Filter)
	}
	values.Set("sortOrder", string(q.SortOrder))
	values.Set("pageNumber", strconv.Itoa(q.PageNumber))
	values.Set("pageSize", strconv.Itoa(q.PageSize))
	return "/courses/" + strconv.Itoa(q.CourseID) + "?" + values.Encode()
}

// ErrorPage is the data of an error page
type ErrorPage struct {
	Status  int
	Message string
}

// Renderer executes the embedded templates
type Renderer struct {
	cardList *template.Template
	pages    map[string]*template.Template
}

// NewRenderer parses the embedded templates
func NewRenderer() (*Renderer, error) {
	base, err := template.ParseFS(templates, "templates/layout.html", "templates/courses_card_list.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse base templates: %w", err)
	}

	r := &Renderer{
		cardList: base.Lookup("courses-card-list"),
		pages:    make(map[string]*template.Template),
	}

	for _, page := range []string{"home", "course", "error"} {
		clone, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("failed to clone base templates: %w", err)
		}
		tmpl, err := clone.ParseFS(templates, "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", page, err)
		}
		r.pages[page] = tmpl
	}

	return r, nil
}

// RenderCoursesCardList writes one card per course, in the given order.
// Ordering is the caller's responsibility; an empty slice renders an empty list.
func (r *Renderer) RenderCoursesCardList(w io.Writer, courses []models.Course) error {
	return r.cardList.Execute(w, courses)
}

// RenderHome writes the all-courses page
func (r *Renderer) RenderHome(w io.Writer, page HomePage) error {
	return r.render(w, "home", page)
}

// RenderCourse writes a course page
func (r *Renderer) RenderCourse(w io.Writer, page CoursePage) error {
	return r.render(w, "course", page)
}

// RenderError writes an error page
func (r *Renderer) RenderError(w io.Writer, page ErrorPage) error {
	return r.render(w, "error", page)
}

func (r *Renderer) render(w io.Writer, name string, data any) error {
	if err := r.pages[name].ExecuteTemplate(w, "layout", data); err != nil {
		return fmt.Errorf("failed to render %s page: %w", name, err)
	}
	return nil
}
