package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/coursecatalog/catalog/internal/models"
)

// likeEscaper makes LIKE wildcards in a filter match literally
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

type lessonRepository struct {
	db *sql.DB
}

// NewLessonRepository creates a new lesson repository
func NewLessonRepository(db *sql.DB) *lessonRepository {
	return &lessonRepository{
		db: db,
	}
}

// Find retrieves one page of a course's lessons
//
// Lessons are matched by course, optionally filtered by a description substring,
// ordered by sequence number in the query's sort order and paged by the query's page number and size.
func (r *lessonRepository) Find(ctx context.Context, q models.LessonsQuery) ([]models.Lesson, error) {
	args := []any{q.CourseID}
	where := "WHERE course_id = ?"

	if q.Filter != "" {
		where += ` AND description LIKE ? ESCAPE '\\'`
		args = append(args, "%"+likeEscaper.Replace(q.Filter)+"%")
	}

	order := "ASC"
	if q.SortOrder == models.SortOrderDesc {
		order = "DESC"
	}

	query := fmt.Sprintf(`
		SELECT id, description, duration, seq_no, course_id
		FROM lessons
		%s
		ORDER BY seq_no %s
		LIMIT ? OFFSET ?
	`, where, order)

	args = append(args, q.PageSize, q.Offset())

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query lessons: %w", err)
	}
	defer rows.Close()

	lessons := []models.Lesson{}
	for rows.Next() {
		var lesson models.Lesson
		if err := rows.Scan(
			&lesson.ID,
			&lesson.Description,
			&lesson.Duration,
			&lesson.SeqNo,
			&lesson.CourseID,
		); err != nil {
			return nil, fmt.Errorf("failed to scan lesson: %w", err)
		}
		lessons = append(lessons, lesson)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating lessons: %w", err)
	}

	return lessons, nil
}

func insertLesson(ctx context.Context, ex execer, lesson *models.Lesson) error {
	query := `
		INSERT INTO lessons (id, description, duration, seq_no, course_id)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := ex.ExecContext(ctx, query,
		lesson.ID,
		lesson.Description,
		lesson.Duration,
		lesson.SeqNo,
		lesson.CourseID,
	)
	if err != nil {
		return fmt.Errorf("failed to create lesson %d: %w", lesson.ID, err)
	}

	return nil
}
