// Package report assembles the two JSON output shapes: the document
// outline and the persona-driven analysis.
package report

import (
	"math"
	"time"

	"github.com/dgallion1/docsight/internal/outline"
	"github.com/dgallion1/docsight/internal/relevance"
)

// Outline is the outline extraction output for one document.
type Outline struct {
	Title    string           `json:"title"`
	Headings []OutlineHeading `json:"headings"`
}

// OutlineHeading is one outline entry.
type OutlineHeading struct {
	Text  string `json:"text"`
	Level int    `json:"level"`
	Page  int    `json:"page"`
}

// BuildOutline converts classified headings into the outline shape.
// Headings is always a non-nil list, even when empty.
func BuildOutline(title string, headings []outline.Heading) Outline {
	out := Outline{
		Title:    title,
		Headings: make([]OutlineHeading, 0, len(headings)),
	}
	for _, h := range headings {
		out.Headings = append(out.Headings, OutlineHeading{
			Text:  h.Text,
			Level: h.Level,
			Page:  h.Page,
		})
	}
	return out
}

// Analysis is the persona-driven analysis output for a document set.
type Analysis struct {
	Metadata           Metadata          `json:"metadata"`
	ExtractedSections  []RankedSection   `json:"extracted_sections"`
	SubsectionAnalysis []SubsectionEntry `json:"subsection_analysis"`
}

// Metadata describes the analysis request.
type Metadata struct {
	Persona             string   `json:"persona"`
	JobToBeDone         string   `json:"job_to_be_done"`
	InputDocuments      []string `json:"input_documents"`
	TotalDocuments      int      `json:"total_documents"`
	TotalSections       int      `json:"total_sections_analyzed"`
	ProcessingTimestamp string   `json:"processing_timestamp"`
}

// RankedSection is one section of the relevance-ordered reading list.
type RankedSection struct {
	Document       string            `json:"document"`
	PageNumber     int               `json:"page_number"`
	SectionTitle   string            `json:"section_title"`
	ImportanceRank int               `json:"importance_rank"`
	RelevanceScore float64           `json:"relevance_score"`
	Subsections    []SubsectionEntry `json:"subsections"`
}

// SubsectionEntry is one scored sentence chunk.
type SubsectionEntry struct {
	Document       string  `json:"document"`
	RefinedText    string  `json:"refined_text"`
	PageNumber     int     `json:"page_number"`
	SubsectionRank int     `json:"subsection_rank"`
	RelevanceScore float64 `json:"relevance_score"`
}

// BuildAnalysis assembles the analysis output. Ranked sections must
// already carry importance ranks; topN limits how many appear in the
// output (0 = all). Subsection entries are embedded per section and
// flattened into subsection_analysis in reading order.
func BuildAnalysis(personaText, jobText string, documents []string, ranked []relevance.ScoredSection, topN int, now time.Time) Analysis {
	if documents == nil {
		documents = []string{}
	}

	top := ranked
	if topN > 0 && len(top) > topN {
		top = top[:topN]
	}

	analysis := Analysis{
		Metadata: Metadata{
			Persona:             personaText,
			JobToBeDone:         jobText,
			InputDocuments:      documents,
			TotalDocuments:      len(documents),
			TotalSections:       len(ranked),
			ProcessingTimestamp: now.Format(time.RFC3339),
		},
		ExtractedSections:  make([]RankedSection, 0, len(top)),
		SubsectionAnalysis: []SubsectionEntry{},
	}

	for _, s := range top {
		rs := RankedSection{
			Document:       s.Section.DocumentID,
			PageNumber:     s.Section.Page,
			SectionTitle:   s.Section.Title,
			ImportanceRank: s.Rank,
			RelevanceScore: round3(s.Score),
			Subsections:    make([]SubsectionEntry, 0, len(s.Subsections)),
		}
		for i, sub := range s.Subsections {
			entry := SubsectionEntry{
				Document:       s.Section.DocumentID,
				RefinedText:    sub.Text,
				PageNumber:     s.Section.Page,
				SubsectionRank: i + 1,
				RelevanceScore: round3(sub.Score),
			}
			rs.Subsections = append(rs.Subsections, entry)
			analysis.SubsectionAnalysis = append(analysis.SubsectionAnalysis, entry)
		}
		analysis.ExtractedSections = append(analysis.ExtractedSections, rs)
	}

	return analysis
}

func round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}
