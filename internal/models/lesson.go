package models

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"
)

// DefaultLessonsPageSize is the page size used by NewLessonsQuery
const DefaultLessonsPageSize = 3

// MaxLessonsPageSize is the largest accepted page size
const MaxLessonsPageSize = 100

// ErrInvalidLessonsQuery is returned when lesson filtering, sorting or paging state is invalid
var ErrInvalidLessonsQuery = errors.New("invalid lessons query")

// SortOrder represents the ordering of lessons by sequence number
type SortOrder string

const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

// Valid reports whether the sort order is one of the known values
func (s SortOrder) Valid() bool {
	return s == SortOrderAsc || s == SortOrderDesc
}

// Lesson represents a lesson of a course
type Lesson struct {
	ID          int    `json:"id" yaml:"id"`
	Description string `json:"description" yaml:"description"`
	Duration    string `json:"duration" yaml:"duration"`
	SeqNo       int    `json:"seqNo" yaml:"seqNo"`
	CourseID    int    `json:"courseId" yaml:"courseId"`
}

// LessonsQuery carries filtering, sorting and paging state for a lessons request
type LessonsQuery struct {
	CourseID   int
	Filter     string
	SortOrder  SortOrder
	PageNumber int
	PageSize   int
}

// NewLessonsQuery creates a query for the first page of a course's lessons
// with an empty filter, ascending order and the default page size.
func NewLessonsQuery(courseID int) LessonsQuery {
	return LessonsQuery{
		CourseID:   courseID,
		Filter:     "",
		SortOrder:  SortOrderAsc,
		PageNumber: 0,
		PageSize:   DefaultLessonsPageSize,
	}
}

// Validate checks that the query can be sent to the server as is
func (q LessonsQuery) Validate() error {
	if q.CourseID <= 0 {
		return fmt.Errorf("%w: courseId must be positive", ErrInvalidLessonsQuery)
	}
	if !q.SortOrder.Valid() {
		return fmt.Errorf("%w: sortOrder must be 'asc' or 'desc', got %q", ErrInvalidLessonsQuery, q.SortOrder)
	}
	if q.PageNumber < 0 {
		return fmt.Errorf("%w: pageNumber must not be negative", ErrInvalidLessonsQuery)
	}
	if q.PageSize <= 0 {
		return fmt.Errorf("%w: pageSize must be positive", ErrInvalidLessonsQuery)
	}
	if q.PageSize > MaxLessonsPageSize {
		return fmt.Errorf("%w: pageSize must not exceed %d", ErrInvalidLessonsQuery, MaxLessonsPageSize)
	}
	// the offset of the next page must still fit in an int
	if q.PageNumber >= math.MaxInt/q.PageSize {
		return fmt.Errorf("%w: pageNumber is too large", ErrInvalidLessonsQuery)
	}
	return nil
}

// Offset returns the number of lessons preceding the requested page
func (q LessonsQuery) Offset() int {
	return q.PageNumber * q.PageSize
}

// Values encodes the query as URL parameters. All five parameters are always present.
func (q LessonsQuery) Values() url.Values {
	values := url.Values{}
	values.Set("courseId", strconv.Itoa(q.CourseID))
	values.Set("filter", q.Filter)
	values.Set("sortOrder", string(q.SortOrder))
	values.Set("pageNumber", strconv.Itoa(q.PageNumber))
	values.Set("pageSize", strconv.Itoa(q.PageSize))
	return values
}

// ParseLessonsQuery decodes URL parameters into a query.
// Missing filter, sortOrder, pageNumber and pageSize fall back to the NewLessonsQuery defaults.
func ParseLessonsQuery(values url.Values) (LessonsQuery, error) {
	courseIDStr := values.Get("courseId")
	if courseIDStr == "" {
		return LessonsQuery{}, fmt.Errorf("%w: courseId is required", ErrInvalidLessonsQuery)
	}
	courseID, err := strconv.Atoi(courseIDStr)
	if err != nil {
		return LessonsQuery{}, fmt.Errorf("%w: invalid courseId", ErrInvalidLessonsQuery)
	}

	query := NewLessonsQuery(courseID)
	query.Filter = values.Get("filter")

	if sortOrder := values.Get("sortOrder"); sortOrder != "" {
		query.SortOrder = SortOrder(sortOrder)
	}

	if pageNumberStr := values.Get("pageNumber"); pageNumberStr != "" {
		query.PageNumber, err = strconv.Atoi(pageNumberStr)
		if err != nil {
			return LessonsQuery{}, fmt.Errorf("%w: invalid pageNumber", ErrInvalidLessonsQuery)
		}
	}

	if pageSizeStr := values.Get("pageSize"); pageSizeStr != "" {
		query.PageSize, err = strconv.Atoi(pageSizeStr)
		if err != nil {
			return LessonsQuery{}, fmt.Errorf("%w: invalid pageSize", ErrInvalidLessonsQuery)
		}
	}

	if err := query.Validate(); err != nil {
		return LessonsQuery{}, err
	}

	return query, nil
}
