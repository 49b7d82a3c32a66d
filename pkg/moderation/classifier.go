package moderation

import (
	"strings"

	goaway "github.com/TwiN/go-away"
)

type Classifier interface {
	IsFlagged(text string) bool
}

type ProfanityClassifier struct {
	detector *goaway.ProfanityDetector
}

// NewProfanityClassifier builds a classifier over the extra terms, on top of
// the go-away dictionary when includeDefaults is set.
// Spaces are kept while matching so terms never span two words.
func NewProfanityClassifier(extraTerms []string, includeDefaults bool) *ProfanityClassifier {
	var profanities, falsePositives, falseNegatives []string
	if includeDefaults {
		profanities = append(profanities, goaway.DefaultProfanities...)
		falsePositives = goaway.DefaultFalsePositives
		falseNegatives = goaway.DefaultFalseNegatives
	}
	for _, term := range extraTerms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term != "" {
			profanities = append(profanities, term)
		}
	}
	return &ProfanityClassifier{
		detector: goaway.NewProfanityDetector().
			WithSanitizeSpaces(false).
			WithCustomDictionary(profanities, falsePositives, falseNegatives),
	}
}

func (c *ProfanityClassifier) IsFlagged(text string) bool {
	return c.detector.IsProfane(text)
}
