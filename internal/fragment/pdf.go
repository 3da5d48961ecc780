package fragment

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"sort"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
)

// PDFSource extracts styled text fragments from PDF files. It tries the
// Go library first, then falls back to pdftotext if available. The
// fallback loses styling, so everything it produces is body-size text.
type PDFSource struct {
	FallbackPdftotext bool
}

// yTolerance groups text runs on the same visual line despite small
// baseline jitter.
const yTolerance = 2.0

func (s *PDFSource) Extract(r io.Reader, filename string) (*Document, error) {
	// ledongthuc/pdf requires a ReadSeeker+size, so we write to a temp file.
	tmp, err := os.CreateTemp("", "docsight-pdf-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	frags, err := extractStyledRuns(tmpPath)
	if err != nil && s.FallbackPdftotext {
		frags, err = extractPdftotext(tmpPath)
	}
	if err != nil {
		return nil, fmt.Errorf("extract pdf text: %w", err)
	}

	return &Document{
		ID:        baseName(filename),
		Name:      filename,
		Fragments: renumber(frags),
	}, nil
}

// extractStyledRuns reads per-page text runs with font metadata and
// groups them into line fragments in reading order.
func extractStyledRuns(path string) ([]Fragment, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var frags []Fragment
	numPages := reader.NumPage()
	for pageNum := 1; pageNum <= numPages; pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		content := page.Content()
		frags = append(frags, groupRuns(content.Text, pageNum)...)
	}
	return frags, nil
}

// groupRuns sorts raw text runs into reading order (top to bottom, left
// to right) and merges same-styled runs on the same line into one
// fragment per style run.
func groupRuns(runs []pdflib.Text, pageNum int) []Fragment {
	if len(runs) == 0 {
		return nil
	}

	sorted := make([]pdflib.Text, len(runs))
	copy(sorted, runs)
	sort.SliceStable(sorted, func(i, j int) bool {
		// PDF Y grows upward, so larger Y comes first.
		if diff := sorted[i].Y - sorted[j].Y; diff > yTolerance || diff < -yTolerance {
			return sorted[i].Y > sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	var frags []Fragment
	var buf strings.Builder
	var cur pdflib.Text
	started := false

	flush := func() {
		text := strings.TrimSpace(buf.String())
		if text != "" {
			frags = append(frags, Fragment{
				Text:     text,
				FontSize: cur.FontSize,
				Bold:     isBoldFont(cur.Font),
				Italic:   isItalicFont(cur.Font),
				Page:     pageNum,
			})
		}
		buf.Reset()
	}

	for _, run := range sorted {
		if run.S == "" {
			continue
		}
		sameLine := started && run.Y > cur.Y-yTolerance && run.Y < cur.Y+yTolerance
		sameStyle := started && run.FontSize == cur.FontSize && run.Font == cur.Font
		if !started || !sameLine || !sameStyle {
			if started {
				flush()
			}
			cur = run
			started = true
		}
		buf.WriteString(run.S)
	}
	if started {
		flush()
	}
	return frags
}

func isBoldFont(font string) bool {
	f := strings.ToLower(font)
	return strings.Contains(f, "bold") || strings.Contains(f, "black") || strings.Contains(f, "heavy")
}

func isItalicFont(font string) bool {
	f := strings.ToLower(font)
	return strings.Contains(f, "italic") || strings.Contains(f, "oblique")
}

// extractPdftotext shells out to pdftotext and synthesizes body-size
// fragments, one per line, with form feeds as page breaks.
func extractPdftotext(path string) ([]Fragment, error) {
	cmd := exec.Command("pdftotext", "-layout", path, "-")
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("pdftotext: %w", err)
	}

	var frags []Fragment
	for pageIdx, page := range strings.Split(string(out), "\f") {
		for _, line := range strings.Split(page, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			frags = append(frags, Fragment{
				Text:     line,
				FontSize: BodySize,
				Page:     pageIdx + 1,
			})
		}
	}
	return frags, nil
}
