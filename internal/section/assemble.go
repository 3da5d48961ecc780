// Package section groups the text between consecutive headings into
// sections and splits section bodies into sentence-bounded subsections.
package section

import (
	"strings"

	"github.com/dgallion1/docsight/internal/fragment"
	"github.com/dgallion1/docsight/internal/outline"
)

// UntitledSection names sections that have no heading to borrow a
// title from.
const UntitledSection = "Untitled"

// Section is a titled slice of a document's fragment stream.
type Section struct {
	DocumentID string
	Title      string
	Page       int
	Position   int // reading-order position where the section starts
	Body       string
}

// Assemble partitions a document's fragments into sections: each
// heading owns every fragment strictly between it and the next heading.
// Fragments before the first heading become a preamble section, and a
// document with no headings at all becomes one whole-document section,
// both titled with the document title. The partition is exact: no
// fragment is lost or duplicated across titles and bodies.
func Assemble(doc *fragment.Document, title string, headings []outline.Heading) []Section {
	if len(doc.Fragments) == 0 {
		return nil
	}
	if title == "" {
		title = UntitledSection
	}

	if len(headings) == 0 {
		return []Section{{
			DocumentID: doc.ID,
			Title:      title,
			Page:       doc.Fragments[0].Page,
			Position:   doc.Fragments[0].Position,
			Body:       joinFragments(doc.Fragments),
		}}
	}

	var sections []Section

	// Preamble: text before the first heading.
	if first := headings[0].Start; first > 0 {
		pre := fragmentsInRange(doc.Fragments, 0, first)
		if len(pre) > 0 {
			sections = append(sections, Section{
				DocumentID: doc.ID,
				Title:      title,
				Page:       pre[0].Page,
				Position:   pre[0].Position,
				Body:       joinFragments(pre),
			})
		}
	}

	for i, h := range headings {
		end := len(doc.Fragments)
		if i+1 < len(headings) {
			end = headings[i+1].Start
		}
		body := fragmentsInRange(doc.Fragments, h.End+1, end)
		sections = append(sections, Section{
			DocumentID: doc.ID,
			Title:      h.Text,
			Page:       h.Page,
			Position:   h.Start,
			Body:       joinFragments(body),
		})
	}
	return sections
}

// fragmentsInRange returns fragments with Position in [start, end).
func fragmentsInRange(frags []fragment.Fragment, start, end int) []fragment.Fragment {
	var out []fragment.Fragment
	for _, f := range frags {
		if f.Position >= start && f.Position < end {
			out = append(out, f)
		}
	}
	return out
}

func joinFragments(frags []fragment.Fragment) string {
	parts := make([]string, 0, len(frags))
	for _, f := range frags {
		if t := strings.TrimSpace(f.Text); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}
