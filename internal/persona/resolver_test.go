package persona

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := LoadCatalog("")
	require.NoError(t, err)
	return c
}

func TestResolve_MatchesPersonaSynonym(t *testing.T) {
	r := NewResolver(testCatalog(t))

	p := r.Resolve("PhD Researcher in Computational Biology", "Prepare a literature review on GNNs")
	assert.Equal(t, "researcher", p.PersonaCategory)
	assert.Equal(t, "literature_review", p.JobCategory)
}

func TestResolve_FallsBackOnUnmatchedText(t *testing.T) {
	r := NewResolver(testCatalog(t))

	p := r.Resolve("Underwater basket weaver", "Fold origami cranes")
	assert.Equal(t, "researcher", p.PersonaCategory)
	assert.Equal(t, "literature_review", p.JobCategory)
}

func TestResolve_JobCategoryFromSynonym(t *testing.T) {
	r := NewResolver(testCatalog(t))

	p := r.Resolve("Investment Analyst", "Summarize quarterly revenue trends")
	assert.Equal(t, "analyst", p.PersonaCategory)
	assert.Equal(t, "financial_analysis", p.JobCategory)
}

func TestResolve_TechnicalReviewIsNotLiteratureReview(t *testing.T) {
	r := NewResolver(testCatalog(t))

	// "technical review" must reach the technical_review category; a
	// bare "review" synonym on literature_review would shadow it.
	p := r.Resolve("Software Architect", "Conduct a technical review of the system architecture")
	assert.Equal(t, "technical_review", p.JobCategory)

	p = r.Resolve("PhD Researcher", "Prepare a literature review on GNNs")
	assert.Equal(t, "literature_review", p.JobCategory)
}

func TestResolve_RawJobTermsExtracted(t *testing.T) {
	r := NewResolver(testCatalog(t))

	p := r.Resolve("Student", "Study the key concepts for the final exam")
	assert.Contains(t, p.RawJobTerms, "concepts")
	assert.Contains(t, p.RawJobTerms, "final")
	// Stopwords and short tokens never become raw terms.
	assert.NotContains(t, p.RawJobTerms, "the")
	assert.NotContains(t, p.RawJobTerms, "key")
}

func TestProfileWeight_JobKeywordsOutrankPersonaKeywords(t *testing.T) {
	p := &Profile{
		PersonaKeywords: map[string]struct{}{"analysis": {}, "shared": {}},
		JobKeywords:     map[string]struct{}{"financial": {}, "shared": {}},
		RawJobTerms:     map[string]struct{}{"quarterly": {}},
	}

	assert.Equal(t, JobKeywordWeight, p.Weight("financial"))
	assert.Equal(t, JobKeywordWeight, p.Weight("shared"))
	assert.Equal(t, PersonaKeywordWeight, p.Weight("analysis"))
	assert.Equal(t, RawTermWeight, p.Weight("quarterly"))
	assert.Zero(t, p.Weight("unrelated"))
}

func TestTokenize(t *testing.T) {
	assert.Equal(t,
		[]string{"graph", "neural", "networks", "gnns"},
		Tokenize("Graph Neural-Networks (GNNs)!"))
	assert.Empty(t, Tokenize("  ... "))
}
