package models

import (
	"math"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLessonsQuery(t *testing.T) {
	query := NewLessonsQuery(12)

	assert.Equal(t, 12, query.CourseID)
	assert.Equal(t, "", query.Filter)
	assert.Equal(t, SortOrderAsc, query.SortOrder)
	assert.Equal(t, 0, query.PageNumber)
	assert.Equal(t, DefaultLessonsPageSize, query.PageSize)
	assert.NoError(t, query.Validate())
}

func TestLessonsQuery_Values(t *testing.T) {
	values := NewLessonsQuery(12).Values()

	for _, key := range []string{"courseId", "filter", "sortOrder", "pageNumber", "pageSize"} {
		assert.True(t, values.Has(key), "missing %s", key)
	}
	assert.Equal(t, "12", values.Get("courseId"))
	assert.Equal(t, "", values.Get("filter"))
	assert.Equal(t, "asc", values.Get("sortOrder"))
	assert.Equal(t, "0", values.Get("pageNumber"))
	assert.Equal(t, "3", values.Get("pageSize"))
}

func TestLessonsQuery_Validate(t *testing.T) {
	tests := []struct {
		name          string
		modify        func(q *LessonsQuery)
		expectedError bool
	}{
		{name: "defaults", modify: func(q *LessonsQuery) {}},
		{name: "descending second page", modify: func(q *LessonsQuery) { q.SortOrder = SortOrderDesc; q.PageNumber = 1 }},
		{name: "zero course", modify: func(q *LessonsQuery) { q.CourseID = 0 }, expectedError: true},
		{name: "unknown sort order", modify: func(q *LessonsQuery) { q.SortOrder = "random" }, expectedError: true},
		{name: "empty sort order", modify: func(q *LessonsQuery) { q.SortOrder = "" }, expectedError: true},
		{name: "negative page", modify: func(q *LessonsQuery) { q.PageNumber = -1 }, expectedError: true},
		{name: "missing page size", modify: func(q *LessonsQuery) { q.PageSize = 0 }, expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := NewLessonsQuery(12)
			tt.modify(&query)

			err := query.Validate()

			if tt.expectedError {
				assert.ErrorIs(t, err, ErrInvalidLessonsQuery)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseLessonsQuery(t *testing.T) {
	tests := []struct {
		name          string
		raw           string
		expected      LessonsQuery
		expectedError bool
	}{
		{
			name:     "all parameters",
			raw:      "courseId=12&filter=Intro&sortOrder=desc&pageNumber=2&pageSize=5",
			expected: LessonsQuery{CourseID: 12, Filter: "Intro", SortOrder: SortOrderDesc, PageNumber: 2, PageSize: 5},
		},
		{
			name:     "defaults applied",
			raw:      "courseId=12",
			expected: NewLessonsQuery(12),
		},
		{
			name:          "missing course",
			raw:           "filter=x",
			expectedError: true,
		},
		{
			name:          "invalid page size",
			raw:           "courseId=12&pageSize=abc",
			expectedError: true,
		},
		{
			name:          "zero page size",
			raw:           "courseId=12&pageSize=0",
			expectedError: true,
		},
		{
			name:          "invalid sort order",
			raw:           "courseId=12&sortOrder=up",
			expectedError: true,
		},
		{
			name:          "page size above maximum",
			raw:           "courseId=12&pageSize=101",
			expectedError: true,
		},
		{
			name:     "page size at maximum",
			raw:      "courseId=12&pageSize=100",
			expected: LessonsQuery{CourseID: 12, SortOrder: SortOrderAsc, PageSize: MaxLessonsPageSize},
		},
		{
			name:          "offset overflows",
			raw:           "courseId=12&pageNumber=4611686018427387904&pageSize=2",
			expectedError: true,
		},
		{
			name:          "page number beyond int",
			raw:           "courseId=12&pageNumber=99999999999999999999",
			expectedError: true,
		},
		{
			name:          "negative page number",
			raw:           "courseId=12&pageNumber=-1",
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.raw)
			require.NoError(t, err)

			query, err := ParseLessonsQuery(values)

			if tt.expectedError {
				assert.ErrorIs(t, err, ErrInvalidLessonsQuery)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, query)
			}
		})
	}
}

func TestLessonsQuery_RoundTrip(t *testing.T) {
	query := LessonsQuery{CourseID: 3, Filter: "RxJs & more", SortOrder: SortOrderDesc, PageNumber: 1, PageSize: 10}

	parsed, err := ParseLessonsQuery(query.Values())

	require.NoError(t, err)
	assert.Equal(t, query, parsed)
	assert.Equal(t, 10, parsed.Offset())
}

func TestLessonsQuery_Validate_OffsetBound(t *testing.T) {
	for _, size := range []int{1, 2, 3, MaxLessonsPageSize} {
		largest := math.MaxInt/size - 1
		q := LessonsQuery{CourseID: 12, SortOrder: SortOrderAsc, PageNumber: largest, PageSize: size}
		require.NoError(t, q.Validate(), "page size %d", size)
		assert.GreaterOrEqual(t, q.Offset(), 0)
		assert.GreaterOrEqual(t, (q.PageNumber+1)*q.PageSize, 0)

		q.PageNumber++
		assert.ErrorIs(t, q.Validate(), ErrInvalidLessonsQuery, "page size %d", size)
	}
}
