// Package outline turns a flat sequence of styled text fragments into a
// document title and a hierarchical heading outline.
package outline

// Heading is one classified outline entry. Start and End are the
// reading-order positions of the first and last fragment that formed
// the heading line, so the section assembler can carve bodies around it.
type Heading struct {
	Text  string
	Level int // 1 (shallowest) to 6 (deepest)
	Page  int
	Start int
	End   int
}

// Config holds the tunable classification thresholds. These are
// heuristics calibrated against typical report/paper layouts, not
// contracts; recalibrate per corpus if needed.
type Config struct {
	// TitleTolerance is how far below the page-1 maximum font size (in
	// points) a fragment may be and still count as part of the title.
	TitleTolerance float64

	// LevelRatios maps font-size ratios (fragment size / body size) to
	// levels 1-6: the first entry whose ratio the fragment meets wins.
	LevelRatios [6]float64

	// MaxHeadingRunes is the length above which a line is assumed to be
	// body text regardless of styling.
	MaxHeadingRunes int

	// MaxSentenceRunes: a line ending in a period longer than this is
	// treated as a body sentence, not a heading.
	MaxSentenceRunes int

	// MaxLabelWords caps the word count for the bold-at-body-size rule:
	// a short bold line (or one ending in a colon) qualifies as the
	// deepest level even without a size bump.
	MaxLabelWords int
}

const (
	defaultTitleTolerance   = 0.5
	defaultMaxHeadingRunes  = 150
	defaultMaxSentenceRunes = 50
	defaultMaxLabelWords    = 8
)

// defaultLevelRatios is the size-to-level ladder: 1.5x body size and up
// reads as a top-level heading, with diminishing steps down to barely
// enlarged text at level 6.
var defaultLevelRatios = [6]float64{1.50, 1.35, 1.20, 1.10, 1.05, 1.02}

// DefaultConfig returns the calibrated defaults.
func DefaultConfig() Config {
	return Config{
		TitleTolerance:   defaultTitleTolerance,
		LevelRatios:      defaultLevelRatios,
		MaxHeadingRunes:  defaultMaxHeadingRunes,
		MaxSentenceRunes: defaultMaxSentenceRunes,
		MaxLabelWords:    defaultMaxLabelWords,
	}
}

func (c Config) withDefaults() Config {
	if c.TitleTolerance <= 0 {
		c.TitleTolerance = defaultTitleTolerance
	}
	if c.LevelRatios == ([6]float64{}) {
		c.LevelRatios = defaultLevelRatios
	}
	if c.MaxHeadingRunes <= 0 {
		c.MaxHeadingRunes = defaultMaxHeadingRunes
	}
	if c.MaxSentenceRunes <= 0 {
		c.MaxSentenceRunes = defaultMaxSentenceRunes
	}
	if c.MaxLabelWords <= 0 {
		c.MaxLabelWords = defaultMaxLabelWords
	}
	return c
}
