package relevance

import (
	"testing"

	"github.com/dgallion1/docsight/internal/section"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scored(docID string, page, pos int, score float64) ScoredSection {
	return ScoredSection{
		Section: section.Section{DocumentID: docID, Page: page, Position: pos},
		Score:   score,
	}
}

func TestRank_DenseRanksByDescendingScore(t *testing.T) {
	ranked := Rank([]ScoredSection{
		scored("a.pdf", 1, 0, 1.2),
		scored("a.pdf", 2, 5, 4.8),
		scored("b.pdf", 1, 0, 3.0),
	})
	require.Len(t, ranked, 3)

	assert.Equal(t, 4.8, ranked[0].Score)
	assert.Equal(t, 3.0, ranked[1].Score)
	assert.Equal(t, 1.2, ranked[2].Score)
	for i, s := range ranked {
		assert.Equal(t, i+1, s.Rank)
	}
}

func TestRank_TiesBreakOnDocumentPagePosition(t *testing.T) {
	ranked := Rank([]ScoredSection{
		scored("doc1.pdf", 3, 0, 5.0),
		scored("doc2.pdf", 1, 0, 5.0),
		scored("doc1.pdf", 1, 0, 5.0),
		scored("doc1.pdf", 1, 4, 5.0),
	})
	require.Len(t, ranked, 4)

	assert.Equal(t, "doc1.pdf", ranked[0].Section.DocumentID)
	assert.Equal(t, 1, ranked[0].Section.Page)
	assert.Equal(t, 0, ranked[0].Section.Position)
	assert.Equal(t, 4, ranked[1].Section.Position)
	assert.Equal(t, 3, ranked[2].Section.Page)
	assert.Equal(t, "doc2.pdf", ranked[3].Section.DocumentID)

	// Ranks stay dense even when every score is equal.
	assert.Equal(t, []int{1, 2, 3, 4}, []int{ranked[0].Rank, ranked[1].Rank, ranked[2].Rank, ranked[3].Rank})
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	in := []ScoredSection{
		scored("a.pdf", 1, 0, 1.0),
		scored("a.pdf", 1, 1, 2.0),
	}
	Rank(in)
	assert.Equal(t, 1.0, in[0].Score)
	assert.Zero(t, in[0].Rank)
}

func TestRank_Empty(t *testing.T) {
	assert.Empty(t, Rank(nil))
}
