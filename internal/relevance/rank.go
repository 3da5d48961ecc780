package relevance

import "sort"

// Rank sorts scored sections by relevance (descending) and assigns
// dense importance ranks 1..N with no gaps. Equal scores keep their
// original (document, page, position) order, so ranking is
// deterministic across runs.
func Rank(sections []ScoredSection) []ScoredSection {
	ranked := make([]ScoredSection, len(sections))
	copy(ranked, sections)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		a, b := ranked[i].Section, ranked[j].Section
		if a.DocumentID != b.DocumentID {
			return a.DocumentID < b.DocumentID
		}
		if a.Page != b.Page {
			return a.Page < b.Page
		}
		return a.Position < b.Position
	})

	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}
