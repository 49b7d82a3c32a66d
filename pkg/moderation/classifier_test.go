package moderation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfanityClassifierExtraTerms(t *testing.T) {
	c := NewProfanityClassifier([]string{" Frobnicate ", ""}, false)

	tests := []struct {
		text    string
		flagged bool
	}{
		{"this is clean text", false},
		{"frobnicate", true},
		{"you FROBNICATE too much", true},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.flagged, c.IsFlagged(tt.text), tt.text)
	}
}

func TestProfanityClassifierDefaults(t *testing.T) {
	c := NewProfanityClassifier(nil, true)

	tests := []struct {
		text    string
		flagged bool
	}{
		{"fuck", true},
		{"this is clean text", false},
		{"this exam was hard", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.flagged, c.IsFlagged(tt.text), tt.text)
	}
}
