package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollectImports(t *testing.T) {
	testCases := []struct {
		name     string
		lines    []string
		expected []string
	}{
		{
			name:     "no imports",
			lines:    []string{"#start", "foo", "#end"},
			expected: []string{},
		},
		{
			name:     "imports in order",
			lines:    []string{"#import io", "#import net", "#start", "#end"},
			expected: []string{"io", "net"},
		},
		{
			name:     "duplicates keep first position",
			lines:    []string{"#import X", "#import Y", "#import X", "#import Z"},
			expected: []string{"X", "Y", "Z"},
		},
		{
			name:     "prefix requires the trailing space",
			lines:    []string{"#import", "#importio", "#import io"},
			expected: []string{"io"},
		},
		{
			name:     "identifiers are not trimmed",
			lines:    []string{"#import  io ", "#import io"},
			expected: []string{" io ", "io"},
		},
		{
			name:     "empty identifier is kept once",
			lines:    []string{"#import ", "#import "},
			expected: []string{""},
		},
		{
			name:     "imports inside a block are collected too",
			lines:    []string{"#start", "#import io", "#end"},
			expected: []string{"io"},
		},
		{
			name:     "indented import is not an import",
			lines:    []string{" #import io"},
			expected: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, CollectImports(tc.lines))
		})
	}
}
