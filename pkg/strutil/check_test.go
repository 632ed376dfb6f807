package strutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/essentials/pkg/strutil"
)

func TestIsFloat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected bool
	}{
		{"1.5", true},
		{"-0.25", true},
		{"42", true},
		{"1,000.25", true},
		{" 3 ", true},
		{"1e3", true},
		{"abc", false},
		{"", false},
		{"1.2.3", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, strutil.IsFloat(tt.input))
		})
	}
}

func TestIsNumeric(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected bool
	}{
		{"42", true},
		{"-42", true},
		{"+7", true},
		{" 12 ", true},
		{"1.5", false},
		{"9223372036854775808", false},
		{"", false},
		{"12a", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, strutil.IsNumeric(tt.input))
		})
	}
}

func TestIsAlphanumeric(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected bool
	}{
		{"abc123", true},
		{"ABC", true},
		{"", false},
		{"abc 123", false},
		{"abc_123", false},
		{"rød", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, strutil.IsAlphanumeric(tt.input))
		})
	}
}

func TestWordCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{name: "empty", input: "", expected: 0},
		{name: "whitespace only", input: " \t\n ", expected: 0},
		{name: "single", input: "hello", expected: 1},
		{name: "padded", input: "  hello   world  ", expected: 2},
		{name: "newlines", input: "one\ntwo\r\nthree", expected: 3},
		{name: "punctuation stays attached", input: "Hi, there!", expected: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, strutil.WordCount(tt.input))
		})
	}
}
