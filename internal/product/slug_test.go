package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"Learn Go":              "learn-go",
		"  Crème   brûlée 101 ": "creme-brulee-101",
		"Rock & Roll!":          "rock-roll",
		"snake_case-name":       "snake-case-name",
		"日本":                    "",
	}
	for in, want := range tests {
		assert.Equal(t, want, Slugify(in), in)
	}
}

func TestSlugCandidate(t *testing.T) {
	assert.Equal(t, "learn-go", SlugCandidate("learn-go", 0))
	assert.Equal(t, "2-learn-go", SlugCandidate("learn-go", 2))
}
