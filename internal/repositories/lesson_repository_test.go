package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/coursecatalog/catalog/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var lessonRowColumns = []string{"id", "description", "duration", "seq_no", "course_id"}

// setupLessonTestRepository creates a lesson repository with a mock database
func setupLessonTestRepository(t *testing.T) (*lessonRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewLessonRepository(db)

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func TestNewLessonRepository(t *testing.T) {
	db := &sql.DB{}

	repo := NewLessonRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestLessonRepository_Find(t *testing.T) {
	tests := []struct {
		name          string
		query         models.LessonsQuery
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		expectedCount int
	}{
		{
			name:  "first page ascending",
			query: models.NewLessonsQuery(12),
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(lessonRowColumns).
					AddRow(27, "Angular Testing Course - Helicopter View", "3:57", 1, 12).
					AddRow(28, "Setting Up the Development Environment", "5:44", 2, 12).
					AddRow(29, "Angular Testing Fundamentals", "4:21", 3, 12)
				mock.ExpectQuery(`SELECT id, description, duration, seq_no, course_id\s+FROM lessons\s+WHERE course_id = \?\s+ORDER BY seq_no ASC\s+LIMIT \? OFFSET \?`).
					WithArgs(12, 3, 0).
					WillReturnRows(rows)
			},
			expectedCount: 3,
		},
		{
			name:  "filtered second page descending",
			query: models.LessonsQuery{CourseID: 12, Filter: "Testing", SortOrder: models.SortOrderDesc, PageNumber: 1, PageSize: 2},
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(lessonRowColumns).
					AddRow(31, "Introduction to Service Testing", "5:02", 5, 12)
				mock.ExpectQuery(`WHERE course_id = \? AND description LIKE \? ESCAPE '\\\\'\s+ORDER BY seq_no DESC\s+LIMIT \? OFFSET \?`).
					WithArgs(12, "%Testing%", 2, 2).
					WillReturnRows(rows)
			},
			expectedCount: 1,
		},
		{
			name:  "filter wildcards match literally",
			query: models.LessonsQuery{CourseID: 12, Filter: `100%_\`, SortOrder: models.SortOrderAsc, PageSize: 3},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`description LIKE \? ESCAPE`).
					WithArgs(12, `%100\%\_\\%`, 3, 0).
					WillReturnRows(sqlmock.NewRows(lessonRowColumns))
			},
			expectedCount: 0,
		},
		{
			name:  "single underscore is not a wildcard",
			query: models.LessonsQuery{CourseID: 12, Filter: "_", SortOrder: models.SortOrderAsc, PageSize: 3},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`description LIKE \? ESCAPE`).
					WithArgs(12, `%\_%`, 3, 0).
					WillReturnRows(sqlmock.NewRows(lessonRowColumns))
			},
			expectedCount: 0,
		},
		{
			name:  "empty page",
			query: models.LessonsQuery{CourseID: 12, SortOrder: models.SortOrderAsc, PageNumber: 10, PageSize: 3},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM lessons`).
					WithArgs(12, 3, 30).
					WillReturnRows(sqlmock.NewRows(lessonRowColumns))
			},
			expectedCount: 0,
		},
		{
			name:  "database error",
			query: models.NewLessonsQuery(12),
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM lessons`).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
		{
			name:  "scan error",
			query: models.NewLessonsQuery(12),
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(lessonRowColumns).
					AddRow("not-a-number", "Lesson", "1:00", 1, 12)
				mock.ExpectQuery(`FROM lessons`).
					WillReturnRows(rows)
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupLessonTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			result, err := repo.Find(context.Background(), tt.query)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, result)
				assert.Len(t, result, tt.expectedCount)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
