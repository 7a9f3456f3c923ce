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

var courseRowColumns = []string{"id", "description", "long_description", "icon_url", "course_list_icon", "lessons_count", "category", "seq_no", "url"}

// setupCourseTestRepository creates a course repository with a mock database
func setupCourseTestRepository(t *testing.T) (*courseRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewCourseRepository(db)

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func TestNewCourseRepository(t *testing.T) {
	db := &sql.DB{}

	repo := NewCourseRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestCourseRepository_GetAll(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		expectedCount int
	}{
		{
			name: "success",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(courseRowColumns).
					AddRow(4, "NgRx (with NgRx Data) - The Complete Guide", "Learn the modern Ngrx Ecosystem", "https://static.test/ngrx.png", "https://static.test/list/ngrx.png", 4, "BEGINNER", 0, "ngrx-course").
					AddRow(12, "Angular Testing Course", nil, "https://static.test/testing.png", nil, 10, "BEGINNER", 3, nil)
				mock.ExpectQuery(`SELECT .* FROM courses ORDER BY seq_no, id`).
					WillReturnRows(rows)
			},
			expectedError: false,
			expectedCount: 2,
		},
		{
			name: "empty result",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT .* FROM courses ORDER BY seq_no, id`).
					WillReturnRows(sqlmock.NewRows(courseRowColumns))
			},
			expectedError: false,
			expectedCount: 0,
		},
		{
			name: "database error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT .* FROM courses`).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
		{
			name: "row error",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(courseRowColumns).
					AddRow(1, "Course", "", "", "", 0, "BEGINNER", 0, "").
					RowError(0, errors.New("row error"))
				mock.ExpectQuery(`SELECT .* FROM courses`).
					WillReturnRows(rows)
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupCourseTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			result, err := repo.GetAll(context.Background())

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

func TestCourseRepository_GetAll_MapsColumns(t *testing.T) {
	repo, mock, cleanup := setupCourseTestRepository(t)
	defer cleanup()

	rows := sqlmock.NewRows(courseRowColumns).
		AddRow(12, "Angular Testing Course", nil, "https://static.test/testing.png", nil, 10, "BEGINNER", 3, "angular-testing-course")
	mock.ExpectQuery(`SELECT .* FROM courses`).WillReturnRows(rows)

	result, err := repo.GetAll(context.Background())

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, models.Course{
		ID:           12,
		Titles:       models.Titles{Description: "Angular Testing Course"},
		IconURL:      "https://static.test/testing.png",
		LessonsCount: 10,
		Category:     models.CategoryBeginner,
		SeqNo:        3,
		URL:          "angular-testing-course",
	}, result[0])
}

func TestCourseRepository_GetByID(t *testing.T) {
	tests := []struct {
		name          string
		id            int
		setupMock     func(sqlmock.Sqlmock)
		expectedError error
		wantError     bool
	}{
		{
			name: "success",
			id:   12,
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(courseRowColumns).
					AddRow(12, "Angular Testing Course", "In-depth guide", "https://static.test/testing.png", "", 10, "BEGINNER", 3, "angular-testing-course")
				mock.ExpectQuery(`SELECT .* FROM courses WHERE id = \? LIMIT 1`).
					WithArgs(12).
					WillReturnRows(rows)
			},
		},
		{
			name: "not found",
			id:   999,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT .* FROM courses WHERE id = \?`).
					WithArgs(999).
					WillReturnError(sql.ErrNoRows)
			},
			expectedError: models.ErrCourseNotFound,
			wantError:     true,
		},
		{
			name: "database error",
			id:   12,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT .* FROM courses WHERE id = \?`).
					WithArgs(12).
					WillReturnError(errors.New("database error"))
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupCourseTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			result, err := repo.GetByID(context.Background(), tt.id)

			if tt.wantError {
				assert.Error(t, err)
				assert.Nil(t, result)
				if tt.expectedError != nil {
					assert.ErrorIs(t, err, tt.expectedError)
				}
			} else {
				require.NoError(t, err)
				require.NotNil(t, result)
				assert.Equal(t, tt.id, result.ID)
				assert.Equal(t, "In-depth guide", result.Titles.LongDescription)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCourseRepository_Seed(t *testing.T) {
	courses := []models.Course{
		{
			ID:           12,
			Titles:       models.Titles{Description: "Angular Testing Course", LongDescription: "In-depth guide"},
			IconURL:      "https://static.test/testing.png",
			LessonsCount: 2,
			Category:     models.CategoryBeginner,
			SeqNo:        3,
			URL:          "angular-testing-course",
		},
	}
	lessons := []models.Lesson{
		{ID: 27, Description: "Angular Testing Course - Helicopter View", Duration: "3:57", SeqNo: 1, CourseID: 12},
		{ID: 28, Description: "Setting Up the Development Environment", Duration: "5:44", SeqNo: 2, CourseID: 12},
	}

	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
	}{
		{
			name: "all rows committed together",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`INSERT INTO courses`).
					WithArgs(12, "Angular Testing Course", "In-depth guide", "https://static.test/testing.png", "", 2, "BEGINNER", 3, "angular-testing-course").
					WillReturnResult(sqlmock.NewResult(12, 1))
				mock.ExpectExec(`INSERT INTO lessons`).
					WithArgs(27, "Angular Testing Course - Helicopter View", "3:57", 1, 12).
					WillReturnResult(sqlmock.NewResult(27, 1))
				mock.ExpectExec(`INSERT INTO lessons`).
					WithArgs(28, "Setting Up the Development Environment", "5:44", 2, 12).
					WillReturnResult(sqlmock.NewResult(28, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "failing lesson rolls back earlier inserts",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`INSERT INTO courses`).
					WillReturnResult(sqlmock.NewResult(12, 1))
				mock.ExpectExec(`INSERT INTO lessons`).
					WithArgs(27, "Angular Testing Course - Helicopter View", "3:57", 1, 12).
					WillReturnResult(sqlmock.NewResult(27, 1))
				mock.ExpectExec(`INSERT INTO lessons`).
					WithArgs(28, "Setting Up the Development Environment", "5:44", 2, 12).
					WillReturnError(errors.New("duplicate entry"))
				mock.ExpectRollback()
			},
			expectedError: true,
		},
		{
			name: "failing course rolls back",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`INSERT INTO courses`).
					WillReturnError(errors.New("duplicate entry"))
				mock.ExpectRollback()
			},
			expectedError: true,
		},
		{
			name: "transaction begin error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin().WillReturnError(errors.New("begin error"))
			},
			expectedError: true,
		},
		{
			name: "transaction commit error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`INSERT INTO courses`).
					WillReturnResult(sqlmock.NewResult(12, 1))
				mock.ExpectExec(`INSERT INTO lessons`).
					WillReturnResult(sqlmock.NewResult(27, 1))
				mock.ExpectExec(`INSERT INTO lessons`).
					WillReturnResult(sqlmock.NewResult(28, 1))
				mock.ExpectCommit().WillReturnError(errors.New("commit error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupCourseTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			err := repo.Seed(context.Background(), courses, lessons)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCourseRepository_Update(t *testing.T) {
	description := "Testing Course"
	seqNo := 7
	category := models.CategoryAdvanced

	tests := []struct {
		name          string
		changes       models.CourseChanges
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
	}{
		{
			name:    "title only",
			changes: models.CourseChanges{Titles: &models.TitlesChanges{Description: &description}},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE courses\s+SET description = \?\s+WHERE id = \?`).
					WithArgs("Testing Course", 12).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name:    "several fields",
			changes: models.CourseChanges{Category: &category, SeqNo: &seqNo},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE courses\s+SET category = \?, seq_no = \?\s+WHERE id = \?`).
					WithArgs("ADVANCED", 7, 12).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name:          "no fields",
			changes:       models.CourseChanges{},
			setupMock:     func(mock sqlmock.Sqlmock) {},
			expectedError: true,
		},
		{
			name:    "database error",
			changes: models.CourseChanges{SeqNo: &seqNo},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE courses`).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupCourseTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			err := repo.Update(context.Background(), 12, tt.changes)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCourseRepository_Count(t *testing.T) {
	repo, mock, cleanup := setupCourseTestRepository(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM courses`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	count, err := repo.Count(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 12, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
