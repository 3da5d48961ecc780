package outline

import (
	"math"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dgallion1/docsight/internal/fragment"
)

// Pattern families for heading text. Numbering depth maps to level,
// keyword families pin level 1.
var (
	keywordRe  = regexp.MustCompile(`^(?:Chapter|CHAPTER|Section|SECTION|Appendix|APPENDIX)\b`)
	cjkRe      = regexp.MustCompile(`^第\d+[章节]`)
	numberedRe = regexp.MustCompile(`^(\d+(?:\.\d+)*)[．.)]?\s+(\S)`)
	letteredRe = regexp.MustCompile(`^[A-Za-z][.)]\s+\S`)
	allCapsRe  = regexp.MustCompile(`^[A-Z][A-Z0-9\s]{5,59}$`)
)

const maxPatternDepth = 6

// line is a merged run of adjacent same-styled fragments, the unit of
// heading classification.
type line struct {
	text   string
	size   float64
	bold   bool
	italic bool
	page   int
	start  int
	end    int
}

// Classify runs the heading heuristic over the full fragment sequence
// and returns the ordered outline. Zero headings is a valid result.
func Classify(frags []fragment.Fragment, cfg Config) []Heading {
	cfg = cfg.withDefaults()

	lines := mergeLines(frags)
	body := bodySizeMode(frags)

	var headings []Heading
	prevLevel := 0
	for _, ln := range lines {
		level := classifyLine(ln, body, cfg)
		if level == 0 {
			continue
		}
		// Outline discipline: a heading may open at most one level
		// deeper than the one before it, but may close any number.
		if level > prevLevel+1 {
			level = prevLevel + 1
		}
		prevLevel = level
		headings = append(headings, Heading{
			Text:  ln.text,
			Level: level,
			Page:  ln.page,
			Start: ln.start,
			End:   ln.end,
		})
	}
	return headings
}

// classifyLine returns the heading level for a line, or 0 for body
// text. The pattern signal takes precedence over the style signal:
// explicit numbering is a stronger structural cue than font size.
func classifyLine(ln line, bodySize float64, cfg Config) int {
	text := strings.TrimSpace(ln.text)
	if text == "" {
		return 0
	}
	runes := utf8.RuneCountInString(text)
	if runes < 3 || runes > cfg.MaxHeadingRunes {
		return 0
	}
	// A long line ending in a period reads as a body sentence.
	if strings.HasSuffix(text, ".") && runes > cfg.MaxSentenceRunes {
		return 0
	}

	if level := patternLevel(text); level > 0 {
		return level
	}
	if level := styleLevel(ln, bodySize, cfg); level > 0 {
		return level
	}
	// An ALL-CAPS line at body size still reads as a heading.
	if allCapsRe.MatchString(text) {
		return 2
	}
	return 0
}

// patternLevel matches the leading text against the numbering and
// keyword families. Returns 0 when no pattern fires.
func patternLevel(text string) int {
	if keywordRe.MatchString(text) || cjkRe.MatchString(text) {
		return 1
	}
	if m := numberedRe.FindStringSubmatch(text); m != nil {
		if !headingFollows(m[2]) {
			return 0
		}
		depth := strings.Count(m[1], ".") + 1
		if depth > maxPatternDepth {
			depth = maxPatternDepth
		}
		return depth
	}
	if letteredRe.MatchString(text) {
		return 1
	}
	return 0
}

// headingFollows checks that the text after a numbering marker starts
// like a heading (uppercase letter or CJK), not a list item.
func headingFollows(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r) || unicode.Is(unicode.Han, r) ||
		unicode.Is(unicode.Hiragana, r) || unicode.Is(unicode.Katakana, r)
}

// styleLevel maps the line's font-size ratio against the body size onto
// the level ladder. Bold text at body size qualifies as the deepest
// level when it is visually a label: short, or terminated by a colon.
func styleLevel(ln line, bodySize float64, cfg Config) int {
	if bodySize <= 0 {
		return 0
	}
	ratio := ln.size / bodySize
	for i, min := range cfg.LevelRatios {
		if ratio >= min {
			return i + 1
		}
	}
	if ln.bold {
		if strings.HasSuffix(ln.text, ":") {
			return len(cfg.LevelRatios)
		}
		words := len(strings.Fields(ln.text))
		if words <= cfg.MaxLabelWords && !strings.HasSuffix(ln.text, ".") {
			return len(cfg.LevelRatios)
		}
	}
	return 0
}

// mergeLines joins adjacent fragments that together form one visual
// line: same page, consecutive positions, identical size and style. A
// continuation fragment therefore never classifies on its own.
func mergeLines(frags []fragment.Fragment) []line {
	var lines []line
	for _, f := range frags {
		if strings.TrimSpace(f.Text) == "" {
			continue
		}
		if n := len(lines); n > 0 {
			last := &lines[n-1]
			if f.Page == last.page && f.Position == last.end+1 &&
				f.FontSize == last.size && f.Bold == last.bold && f.Italic == last.italic &&
				isAllCaps(last.text) == isAllCaps(f.Text) {
				last.text += " " + strings.TrimSpace(f.Text)
				last.end = f.Position
				continue
			}
		}
		lines = append(lines, line{
			text:   strings.TrimSpace(f.Text),
			size:   f.FontSize,
			bold:   f.Bold,
			italic: f.Italic,
			page:   f.Page,
			start:  f.Position,
			end:    f.Position,
		})
	}
	return lines
}

// isAllCaps reports whether the text has uppercase letters and no
// lowercase ones. An ALL-CAPS line never absorbs mixed-case
// continuation text, and vice versa, so caps headings at body size
// survive line merging.
func isAllCaps(s string) bool {
	hasUpper := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasUpper = true
		}
	}
	return hasUpper
}

// bodySizeMode finds the document's body font size: the most common
// size across all fragments, quantized to half points. Ties resolve to
// the smaller size.
func bodySizeMode(frags []fragment.Fragment) float64 {
	counts := make(map[float64]int)
	for _, f := range frags {
		if strings.TrimSpace(f.Text) == "" {
			continue
		}
		q := math.Round(f.FontSize*2) / 2
		counts[q]++
	}

	var mode float64
	best := 0
	for size, n := range counts {
		if n > best || (n == best && size < mode) {
			best = n
			mode = size
		}
	}
	return mode
}
