package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEnvelope(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		expectedError bool
		expectedCount int
	}{
		{
			name:          "success",
			body:          `{"payload":[{"id":1,"description":"Intro","duration":"4:17","seqNo":1,"courseId":12}]}`,
			expectedError: false,
			expectedCount: 1,
		},
		{
			name:          "empty payload",
			body:          `{"payload":[]}`,
			expectedError: false,
			expectedCount: 0,
		},
		{
			name:          "missing payload",
			body:          `{"items":[]}`,
			expectedError: true,
		},
		{
			name:          "null payload",
			body:          `{"payload":null}`,
			expectedError: true,
		},
		{
			name:          "null body",
			body:          `null`,
			expectedError: true,
		},
		{
			name:          "bare array",
			body:          `[{"id":1}]`,
			expectedError: true,
		},
		{
			name:          "payload of wrong type",
			body:          `{"payload":{"id":1}}`,
			expectedError: true,
		},
		{
			name:          "not json",
			body:          `Save course failed`,
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lessons, err := DecodeEnvelope[[]Lesson](strings.NewReader(tt.body))

			if tt.expectedError {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrMalformedEnvelope)
				assert.Nil(t, lessons)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, lessons)
				assert.Len(t, lessons, tt.expectedCount)
			}
		})
	}
}
