package sdk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRevision(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		null     bool
		segments []int
		str      string
	}{
		{name: "three segments", input: "33.0.1", segments: []int{33, 0, 1}, str: "33.0.1"},
		{name: "surrounding whitespace", input: "  30.0.3 ", segments: []int{30, 0, 3}, str: "30.0.3"},
		{name: "single segment is padded", input: "4", segments: []int{4, 0, 0}, str: "4"},
		{name: "long ndk build", input: "25.1.8937393", segments: []int{25, 1, 8937393}, str: "25.1.8937393"},
		{name: "trailing qualifier ignored", input: "33.0.0 rc1", segments: []int{33, 0, 0}, str: "33.0.0"},
		{name: "empty", input: "", null: true},
		{name: "no leading digit", input: "v4", null: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ParseRevision(tt.input)
			assert.Equal(t, tt.null, r.IsNull())
			assert.Equal(t, tt.segments, r.Segments())
			assert.Equal(t, tt.str, r.String())
		})
	}
}

func TestRevision_EqualAndCompare(t *testing.T) {
	assert.True(t, ParseRevision("33.0.1").Equal(ParseRevision("33.0.1")))
	assert.False(t, ParseRevision("33.0.1").Equal(ParseRevision("33.0.2")))
	assert.True(t, Revision{}.Equal(ParseRevision("")))
	assert.False(t, Revision{}.Equal(ParseRevision("1")))

	assert.Equal(t, -1, ParseRevision("30.0.3").Compare(ParseRevision("33.0.1")))
	assert.Equal(t, 1, ParseRevision("8.0").Compare(ParseRevision("7.0")))
	assert.Equal(t, 0, ParseRevision("1.0").Compare(ParseRevision("1.0")))
	assert.Equal(t, -1, Revision{}.Compare(ParseRevision("1")))
}
