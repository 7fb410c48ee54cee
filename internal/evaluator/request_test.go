package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRequest(t *testing.T) {
	t.Run("inline criteria", func(t *testing.T) {
		req, err := DecodeRequest(map[string]any{
			"submission": "Role: analyst",
			"criteria":   []any{"Defines a role", "Gives context"},
		})
		require.NoError(t, err)

		assert.Equal(t, "Role: analyst", req.Submission)
		assert.Equal(t, []string{"Defines a role", "Gives context"}, req.Criteria)
		assert.True(t, req.Inline())
	})

	t.Run("typed string slice", func(t *testing.T) {
		req, err := DecodeRequest(map[string]any{
			"submission": "text",
			"criteria":   []string{"One"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"One"}, req.Criteria)
	})

	t.Run("catalog reference", func(t *testing.T) {
		req, err := DecodeRequest(map[string]any{
			"submission":  "",
			"pack":        "prompt-basics",
			"exercise_id": "role-prompting",
		})
		require.NoError(t, err)

		assert.False(t, req.Inline())
		assert.Equal(t, "prompt-basics", req.Pack)
		assert.Equal(t, "role-prompting", req.ExerciseID)
	})

	t.Run("empty criteria list is inline", func(t *testing.T) {
		req, err := DecodeRequest(map[string]any{
			"submission": "text",
			"criteria":   []any{},
		})
		require.NoError(t, err)
		assert.True(t, req.Inline())
		assert.Empty(t, req.Criteria)
	})
}

func TestDecodeRequestInvalid(t *testing.T) {
	tests := []struct {
		name   string
		args   map[string]any
		field  string
		reason string
	}{
		{
			name:   "nil arguments",
			args:   nil,
			field:  "submission",
			reason: "is required",
		},
		{
			name:   "missing submission",
			args:   map[string]any{"criteria": []any{"x"}},
			field:  "submission",
			reason: "is required",
		},
		{
			name:   "submission not a string",
			args:   map[string]any{"submission": 42},
			field:  "submission",
			reason: "must be a string",
		},
		{
			name:   "criteria not a list",
			args:   map[string]any{"submission": "text", "criteria": "Defines a role"},
			field:  "criteria",
			reason: "must be an array of strings",
		},
		{
			name:   "criteria with non-string item",
			args:   map[string]any{"submission": "text", "criteria": []any{"ok", 3}},
			field:  "criteria/1",
			reason: "must be an array of strings",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeRequest(tt.args)
			require.Error(t, err)

			var invalid *InvalidInputError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tt.field, invalid.Field)
			assert.Equal(t, tt.reason, invalid.Reason)
		})
	}
}

func TestInvalidInputErrorMessage(t *testing.T) {
	assert.Equal(t, "invalid input: criteria must be an array of strings",
		(&InvalidInputError{Field: "criteria", Reason: "must be an array of strings"}).Error())
	assert.Equal(t, "invalid input: arguments must be an object",
		(&InvalidInputError{Reason: "arguments must be an object"}).Error())
}
