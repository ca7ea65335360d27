package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComplaintDetection(t *testing.T) {
	detector := NewComplaintDetector()

	cases := []struct {
		name string
		text string
		want bool
	}{
		{"keyword", "The food was terrible.", true},
		{"keyword uppercase", "TERRIBLE experience", true},
		{"keyword with punctuation", "Awful!", true},
		{"phrase", "It was not worth the money.", true},
		{"phrase never again", "Never again.", true},
		{"phrase mixed case", "I would NOT recommend this place", true},
		{"clean positive", "Great service and friendly staff!", false},
		{"keyword inside word does not match", "This place is badass", false},
		{"empty", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, detector.Detect(tc.text))
		})
	}
}

func TestComplaintDetectorOptions(t *testing.T) {
	detector := NewComplaintDetector(
		WithKeywords("gross"),
		WithPhrases("took forever"),
	)

	assert.True(t, detector.Detect("The soup was gross."))
	assert.True(t, detector.Detect("Our order took forever to arrive"))
	// Defaults survive extension.
	assert.True(t, detector.Detect("worst meal ever"))
	assert.False(t, detector.Detect("lovely evening"))
}
