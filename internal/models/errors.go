package models

import "errors"

// ErrCourseNotFound is returned when no course has the requested id
var ErrCourseNotFound = errors.New("course not found")
