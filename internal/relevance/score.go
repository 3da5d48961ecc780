// Package relevance scores sections against a persona profile and
// assigns importance ranks across the whole document set.
package relevance

import (
	"math"

	"github.com/dgallion1/docsight/internal/persona"
	"github.com/dgallion1/docsight/internal/section"
)

// ScoredSubsection is one scored sentence chunk of a section body.
type ScoredSubsection struct {
	Text  string
	Index int // position within the section
	Score float64
}

// ScoredSection is a section with its relevance score, sub-chunk
// analysis, and (after ranking) its importance rank.
type ScoredSection struct {
	Section     section.Section
	Score       float64
	Rank        int
	Subsections []ScoredSubsection
}

// Scorer computes normalized weighted term frequencies against a fixed
// profile. It is deterministic: identical text always yields an
// identical score.
type Scorer struct {
	profile *persona.Profile
}

func NewScorer(profile *persona.Profile) *Scorer {
	return &Scorer{profile: profile}
}

// Score returns the non-negative relevance of a text: the weighted sum
// of keyword occurrences, normalized by log(e + token count) so long
// sections cannot win on raw frequency alone. The floor at e keeps the
// divisor at least 1, so short on-topic text is never inflated either.
func (s *Scorer) Score(text string) float64 {
	tokens := persona.Tokenize(text)
	if len(tokens) == 0 {
		return 0
	}

	var raw float64
	for _, t := range tokens {
		raw += s.profile.Weight(t)
	}
	if raw == 0 {
		return 0
	}
	return raw / math.Log(math.E+float64(len(tokens)))
}
