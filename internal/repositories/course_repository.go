package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/coursecatalog/catalog/internal/models"
)

const courseColumns = "id, description, long_description, icon_url, course_list_icon, lessons_count, category, seq_no, url"

type courseRepository struct {
	db *sql.DB
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *sql.DB) *courseRepository {
	return &courseRepository{
		db: db,
	}
}

// GetAll retrieves all courses ordered by sequence number
func (r *courseRepository) GetAll(ctx context.Context) ([]models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses ORDER BY seq_no, id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	courses := []models.Course{}
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		courses = append(courses, *course)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating courses: %w", err)
	}

	return courses, nil
}

// GetByID retrieves a course by its ID
func (r *courseRepository) GetByID(ctx context.Context, id int) (*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE id = ? LIMIT 1`

	course, err := scanCourse(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrCourseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get course by id: %w", err)
	}

	return course, nil
}

// Seed inserts courses and their lessons in a single transaction, keeping their IDs
//
// Nothing is written when any insert fails.
func (r *courseRepository) Seed(ctx context.Context, courses []models.Course, lessons []models.Lesson) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for i := range courses {
		if err := insertCourse(ctx, tx, &courses[i]); err != nil {
			return err
		}
	}
	for i := range lessons {
		if err := insertLesson(ctx, tx, &lessons[i]); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// execer is implemented by *sql.DB and *sql.Tx
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertCourse(ctx context.Context, ex execer, course *models.Course) error {
	query := `
		INSERT INTO courses (` + courseColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := ex.ExecContext(ctx, query,
		course.ID,
		course.Titles.Description,
		course.Titles.LongDescription,
		course.IconURL,
		course.CourseListIcon,
		course.LessonsCount,
		course.Category,
		course.SeqNo,
		course.URL,
	)
	if err != nil {
		return fmt.Errorf("failed to create course %d: %w", course.ID, err)
	}

	return nil
}

// Update applies a partial update to a course. Only set fields are written.
func (r *courseRepository) Update(ctx context.Context, id int, changes models.CourseChanges) error {
	var setParts []string
	var args []any

	if changes.Titles != nil {
		if changes.Titles.Description != nil {
			setParts = append(setParts, "description = ?")
			args = append(args, *changes.Titles.Description)
		}
		if changes.Titles.LongDescription != nil {
			setParts = append(setParts, "long_description = ?")
			args = append(args, *changes.Titles.LongDescription)
		}
	}
	if changes.IconURL != nil {
		setParts = append(setParts, "icon_url = ?")
		args = append(args, *changes.IconURL)
	}
	if changes.CourseListIcon != nil {
		setParts = append(setParts, "course_list_icon = ?")
		args = append(args, *changes.CourseListIcon)
	}
	if changes.LessonsCount != nil {
		setParts = append(setParts, "lessons_count = ?")
		args = append(args, *changes.LessonsCount)
	}
	if changes.Category != nil {
		setParts = append(setParts, "category = ?")
		args = append(args, *changes.Category)
	}
	if changes.SeqNo != nil {
		setParts = append(setParts, "seq_no = ?")
		args = append(args, *changes.SeqNo)
	}
	if changes.URL != nil {
		setParts = append(setParts, "url = ?")
		args = append(args, *changes.URL)
	}

	if len(setParts) == 0 {
		return fmt.Errorf("no fields to update")
	}

	query := fmt.Sprintf(`
		UPDATE courses
		SET %s
		WHERE id = ?
	`, strings.Join(setParts, ", "))

	args = append(args, id)

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update course: %w", err)
	}

	return nil
}

// Count returns the number of courses
func (r *courseRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM courses").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count courses: %w", err)
	}
	return count, nil
}

// rowScanner is implemented by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanCourse(row rowScanner) (*models.Course, error) {
	var course models.Course
	var longDescription, courseListIcon, url sql.NullString

	err := row.Scan(
		&course.ID,
		&course.Titles.Description,
		&longDescription,
		&course.IconURL,
		&courseListIcon,
		&course.LessonsCount,
		&course.Category,
		&course.SeqNo,
		&url,
	)
	if err != nil {
		return nil, err
	}

	course.Titles.LongDescription = longDescription.String
	course.CourseListIcon = courseListIcon.String
	course.URL = url.String

	return &course, nil
}
