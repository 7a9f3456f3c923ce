// Package fixtures provides the seed course catalog
package fixtures

import (
	_ "embed"
	"fmt"
	"sort"
	"sync"

	"github.com/coursecatalog/catalog/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Catalog is the layout of the embedded seed file
type Catalog struct {
	Courses []models.Course `yaml:"courses"`
	Lessons []models.Lesson `yaml:"lessons"`
}

var (
	loadOnce sync.Once
	catalog  Catalog
	loadErr  error
)

// Load parses the embedded seed file. The result is cached.
func Load() (Catalog, error) {
	loadOnce.Do(func() {
		if err := yaml.Unmarshal(catalogYAML, &catalog); err != nil {
			loadErr = fmt.Errorf("failed to parse fixtures: %w", err)
		}
	})
	return catalog, loadErr
}

func mustLoad() Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// Courses returns a copy of all seed courses in id order
func Courses() []models.Course {
	courses := mustLoad().Courses
	result := make([]models.Course, len(courses))
	copy(result, courses)
	return result
}

// Course returns the seed course with the given id
func Course(id int) (models.Course, bool) {
	for _, course := range mustLoad().Courses {
		if course.ID == id {
			return course, true
		}
	}
	return models.Course{}, false
}

// Lessons returns a copy of all seed lessons
func Lessons() []models.Lesson {
	lessons := mustLoad().Lessons
	result := make([]models.Lesson, len(lessons))
	copy(result, lessons)
	return result
}

// FindLessonsForCourse returns the seed lessons of a course ordered by sequence number
func FindLessonsForCourse(courseID int) []models.Lesson {
	var result []models.Lesson
	for _, lesson := range mustLoad().Lessons {
		if lesson.CourseID == courseID {
			result = append(result, lesson)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].SeqNo < result[j].SeqNo
	})
	return result
}
