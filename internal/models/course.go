package models

import (
	"slices"
)

// Category represents the difficulty bucket a course is listed under
type Category string

const (
	CategoryBeginner Category = "BEGINNER"
	CategoryAdvanced Category = "ADVANCED"
)

// Valid reports whether the category is one of the known values
func (c Category) Valid() bool {
	return c == CategoryBeginner || c == CategoryAdvanced
}

// Titles holds the displayable texts of a course
type Titles struct {
	Description     string `json:"description" yaml:"description"`
	LongDescription string `json:"longDescription,omitempty" yaml:"longDescription"`
}

// Course represents a course in the catalog
type Course struct {
	ID             int      `json:"id" yaml:"id"`
	Titles         Titles   `json:"titles" yaml:"titles"`
	IconURL        string   `json:"iconUrl" yaml:"iconUrl"`
	CourseListIcon string   `json:"courseListIcon,omitempty" yaml:"courseListIcon"`
	LessonsCount   int      `json:"lessonsCount" yaml:"lessonsCount"`
	Category       Category `json:"category" yaml:"category"`
	SeqNo          int      `json:"seqNo" yaml:"seqNo"`
	URL            string   `json:"url,omitempty" yaml:"url"`
}

// TitlesChanges represents a partial update of course titles
type TitlesChanges struct {
	Description     *string `json:"description,omitempty"`
	LongDescription *string `json:"longDescription,omitempty"`
}

// CourseChanges represents a partial update of a course.
// Only non-nil fields are sent to the server and applied.
type CourseChanges struct {
	Titles         *TitlesChanges `json:"titles,omitempty"`
	IconURL        *string        `json:"iconUrl,omitempty"`
	CourseListIcon *string        `json:"courseListIcon,omitempty"`
	LessonsCount   *int           `json:"lessonsCount,omitempty"`
	Category       *Category      `json:"category,omitempty"`
	SeqNo          *int           `json:"seqNo,omitempty"`
	URL            *string        `json:"url,omitempty"`
}

// IsEmpty reports whether no field is set
func (c CourseChanges) IsEmpty() bool {
	titlesEmpty := c.Titles == nil || (c.Titles.Description == nil && c.Titles.LongDescription == nil)
	return titlesEmpty &&
		c.IconURL == nil &&
		c.CourseListIcon == nil &&
		c.LessonsCount == nil &&
		c.Category == nil &&
		c.SeqNo == nil &&
		c.URL == nil
}

// Apply merges the set fields into the course
func (c CourseChanges) Apply(course *Course) {
	if c.Titles != nil {
		if c.Titles.Description != nil {
			course.Titles.Description = *c.Titles.Description
		}
		if c.Titles.LongDescription != nil {
			course.Titles.LongDescription = *c.Titles.LongDescription
		}
	}
	if c.IconURL != nil {
		course.IconURL = *c.IconURL
	}
	if c.CourseListIcon != nil {
		course.CourseListIcon = *c.CourseListIcon
	}
	if c.LessonsCount != nil {
		course.LessonsCount = *c.LessonsCount
	}
	if c.Category != nil {
		course.Category = *c.Category
	}
	if c.SeqNo != nil {
		course.SeqNo = *c.SeqNo
	}
	if c.URL != nil {
		course.URL = *c.URL
	}
}

// SortCoursesBySeqNo returns a copy of courses ordered by sequence number.
// Courses with equal sequence numbers keep their relative order.
func SortCoursesBySeqNo(courses []Course) []Course {
	sorted := slices.Clone(courses)
	slices.SortStableFunc(sorted, func(a, b Course) int {
		return a.SeqNo - b.SeqNo
	})
	return sorted
}

// FilterByCategory returns the courses of the given category, preserving order
func FilterByCategory(courses []Course, category Category) []Course {
	filtered := make([]Course, 0, len(courses))
	for _, course := range courses {
		if course.Category == category {
			filtered = append(filtered, course)
		}
	}
	return filtered
}
