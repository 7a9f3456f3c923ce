package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFiles_ArePaired(t *testing.T) {
	entries, err := fs.ReadDir(files, ".")
	require.NoError(t, err)

	ups := map[string]bool{}
	downs := map[string]bool{}
	for _, e := range entries {
		name := e.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		}
	}

	require.NotEmpty(t, ups)
	assert.Equal(t, ups, downs)
}

func TestFiles_CreateCatalogTables(t *testing.T) {
	tests := []struct {
		file    string
		columns []string
	}{
		{
			file:    "000001_create_courses_table.up.sql",
			columns: []string{"description", "long_description", "icon_url", "course_list_icon", "lessons_count", "category", "seq_no", "url"},
		},
		{
			file:    "000002_create_lessons_table.up.sql",
			columns: []string{"description", "duration", "seq_no", "course_id"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			data, err := fs.ReadFile(files, tt.file)
			require.NoError(t, err)
			for _, column := range tt.columns {
				assert.Contains(t, string(data), column)
			}
		})
	}
}
