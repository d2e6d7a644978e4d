package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseParams(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected Params
	}{
		{name: "empty", raw: "", expected: nil},
		{
			name:     "keeps submission order",
			raw:      "b=2&a=1",
			expected: Params{{Name: "b", Value: "2"}, {Name: "a", Value: "1"}},
		},
		{
			name:     "unescapes names and values",
			raw:      "image%20hash=H+1&vote=Category1Vote",
			expected: Params{{Name: "image hash", Value: "H 1"}, {Name: "vote", Value: "Category1Vote"}},
		},
		{
			name:     "keeps bad escapes verbatim",
			raw:      "a=%zz",
			expected: Params{{Name: "a", Value: "%zz"}},
		},
		{
			name:     "flag without value",
			raw:      "a&&=x",
			expected: Params{{Name: "a", Value: ""}},
		},
		{
			name:     "semicolons belong to the value",
			raw:      "a=1;2&b=3",
			expected: Params{{Name: "a", Value: "1;2"}, {Name: "b", Value: "3"}},
		},
		{
			name:     "repeated names",
			raw:      "a=1&a=2",
			expected: Params{{Name: "a", Value: "1"}, {Name: "a", Value: "2"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseParams(tt.raw))
		})
	}
}

func TestParamsFromMap(t *testing.T) {
	assert.Nil(t, ParamsFromMap(nil))

	params := ParamsFromMap(map[string]string{"vote": "Category2Vote", "category1": "hat"})
	assert.Equal(t, Params{{Name: "category1", Value: "hat"}, {Name: "vote", Value: "Category2Vote"}}, params)
	assert.Equal(t, []string{"hat", "Category2Vote"}, params.Values())
	assert.Equal(t, "hat", params.Get("category1"))
	assert.Equal(t, "", params.Get("missing"))
	assert.False(t, params.Empty())
}
