package relevance

import (
	"testing"

	"github.com/dgallion1/docsight/internal/persona"
	"github.com/stretchr/testify/assert"
)

func testProfile() *persona.Profile {
	return &persona.Profile{
		PersonaCategory: "analyst",
		JobCategory:     "financial_analysis",
		PersonaKeywords: map[string]struct{}{"analysis": {}},
		JobKeywords:     map[string]struct{}{"financial": {}},
		RawJobTerms:     map[string]struct{}{"quarterly": {}},
	}
}

func TestScore_WeightedAndNormalized(t *testing.T) {
	s := NewScorer(testProfile())

	// Two job keyword hits (1.5 each), one persona keyword hit (1.0)
	// and one raw term hit (1.0) over four tokens:
	// 5.0 / ln(e + 4) ≈ 2.625.
	score := s.Score("financial analysis quarterly financial")
	assert.InDelta(t, 2.625, score, 0.01)
}

func TestScore_ZeroForNoMatches(t *testing.T) {
	s := NewScorer(testProfile())
	assert.Zero(t, s.Score("completely unrelated prose about gardening"))
}

func TestScore_ZeroForEmptyText(t *testing.T) {
	s := NewScorer(testProfile())
	assert.Zero(t, s.Score(""))
	assert.Zero(t, s.Score("   \n\t  "))
}

func TestScore_Deterministic(t *testing.T) {
	s := NewScorer(testProfile())
	text := "The financial analysis covered quarterly performance in detail."

	first := s.Score(text)
	assert.Positive(t, first)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, s.Score(text))
	}
}

func TestScore_LengthNormalizationPenalizesPadding(t *testing.T) {
	s := NewScorer(testProfile())

	terse := s.Score("financial analysis")
	padded := s.Score("financial analysis alongside many other words that add nothing relevant at all here")
	assert.Greater(t, terse, padded)
}
