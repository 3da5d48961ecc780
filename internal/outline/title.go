package outline

import (
	"strings"

	"github.com/dgallion1/docsight/internal/fragment"
)

// DetectTitle extracts the document title from page-1 fragments: the
// first contiguous run of fragments whose font size is within
// TitleTolerance of the page-1 maximum, space-joined in reading order.
// Soft-fails to the single largest fragment's text, then to "".
func DetectTitle(frags []fragment.Fragment, cfg Config) string {
	cfg = cfg.withDefaults()

	var firstPage []fragment.Fragment
	for _, f := range frags {
		if f.Page == 1 && strings.TrimSpace(f.Text) != "" {
			firstPage = append(firstPage, f)
		}
	}
	if len(firstPage) == 0 {
		return ""
	}

	maxSize := firstPage[0].FontSize
	largest := firstPage[0]
	for _, f := range firstPage[1:] {
		if f.FontSize > maxSize {
			maxSize = f.FontSize
			largest = f
		}
	}

	// Collect the first contiguous qualifying run from the top of the page.
	var parts []string
	inRun := false
	for _, f := range firstPage {
		if f.FontSize >= maxSize-cfg.TitleTolerance {
			parts = append(parts, strings.TrimSpace(f.Text))
			inRun = true
		} else if inRun {
			break
		}
	}

	if len(parts) == 0 {
		return strings.TrimSpace(largest.Text)
	}
	return strings.Join(parts, " ")
}
