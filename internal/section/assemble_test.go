package section

import (
	"strings"
	"testing"

	"github.com/dgallion1/docsight/internal/fragment"
	"github.com/dgallion1/docsight/internal/outline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doc(id string, texts ...string) *fragment.Document {
	d := &fragment.Document{ID: id, Name: id}
	for i, t := range texts {
		d.Fragments = append(d.Fragments, fragment.Fragment{
			Text:     t,
			FontSize: fragment.BodySize,
			Page:     1,
			Position: i,
		})
	}
	return d
}

func TestAssemble_BodiesBetweenHeadings(t *testing.T) {
	d := doc("report.pdf",
		"Methods",
		"We surveyed twelve labs.",
		"Each lab ran three trials.",
		"Results",
		"Nine labs reproduced the effect.",
	)
	headings := []outline.Heading{
		{Text: "Methods", Level: 1, Page: 1, Start: 0, End: 0},
		{Text: "Results", Level: 1, Page: 1, Start: 3, End: 3},
	}

	sections := Assemble(d, "Reproducibility Study", headings)
	require.Len(t, sections, 2)

	assert.Equal(t, "Methods", sections[0].Title)
	assert.Equal(t, "We surveyed twelve labs. Each lab ran three trials.", sections[0].Body)
	assert.Equal(t, 0, sections[0].Position)

	assert.Equal(t, "Results", sections[1].Title)
	assert.Equal(t, "Nine labs reproduced the effect.", sections[1].Body)
	assert.Equal(t, 3, sections[1].Position)
}

func TestAssemble_PreambleBeforeFirstHeading(t *testing.T) {
	d := doc("notes.md",
		"An opening remark before any heading.",
		"Background",
		"Some background text.",
	)
	headings := []outline.Heading{
		{Text: "Background", Level: 1, Page: 1, Start: 1, End: 1},
	}

	sections := Assemble(d, "Field Notes", headings)
	require.Len(t, sections, 2)

	assert.Equal(t, "Field Notes", sections[0].Title)
	assert.Equal(t, "An opening remark before any heading.", sections[0].Body)
	assert.Equal(t, "Background", sections[1].Title)
	assert.Equal(t, "Some background text.", sections[1].Body)
}

func TestAssemble_NoHeadingsProducesWholeDocumentSection(t *testing.T) {
	d := doc("plain.txt", "First paragraph.", "Second paragraph.")

	sections := Assemble(d, "Plain Document", nil)
	require.Len(t, sections, 1)
	assert.Equal(t, "Plain Document", sections[0].Title)
	assert.Equal(t, "First paragraph. Second paragraph.", sections[0].Body)
}

func TestAssemble_UntitledFallback(t *testing.T) {
	d := doc("anon.txt", "Content without any title.")

	sections := Assemble(d, "", nil)
	require.Len(t, sections, 1)
	assert.Equal(t, UntitledSection, sections[0].Title)
}

func TestAssemble_EmptyDocument(t *testing.T) {
	assert.Nil(t, Assemble(&fragment.Document{ID: "empty"}, "Anything", nil))
}

// Every non-heading fragment must land in exactly one section body, and
// every heading fragment in exactly one section title, so the combined
// word count of titles and bodies equals the word count of the input.
func TestAssemble_PartitionIsExact(t *testing.T) {
	d := doc("whitepaper.pdf",
		"Executive summary sentence one.",
		"Overview",
		"The overview body text.",
		"Details",
		"Detail body one.",
		"Detail body two.",
		"Conclusion",
		"The closing body text.",
	)
	headings := []outline.Heading{
		{Text: "Overview", Level: 1, Page: 1, Start: 1, End: 1},
		{Text: "Details", Level: 2, Page: 1, Start: 3, End: 3},
		{Text: "Conclusion", Level: 1, Page: 1, Start: 6, End: 6},
	}

	sections := Assemble(d, "Whitepaper", headings)
	require.Len(t, sections, 4)

	var inputWords int
	for _, f := range d.Fragments {
		inputWords += len(strings.Fields(f.Text))
	}

	var sectionWords int
	for _, s := range sections[1:] {
		sectionWords += len(strings.Fields(s.Title))
	}
	for _, s := range sections {
		sectionWords += len(strings.Fields(s.Body))
	}
	assert.Equal(t, inputWords, sectionWords)
}
