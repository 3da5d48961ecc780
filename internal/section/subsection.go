package section

import "strings"

// Config controls subsection chunking.
type Config struct {
	SentencesPerChunk int // target sentences per subsection
	MaxSubsections    int // cap per section, 0 = unlimited
	MinSentenceRunes  int // sentences shorter than this are dropped
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		SentencesPerChunk: 2,
		MaxSubsections:    3,
		MinSentenceRunes:  20,
	}
}

// Subsections splits a section body into sentence-bounded chunks,
// ordered by position within the body.
func Subsections(body string, cfg Config) []string {
	if cfg.SentencesPerChunk <= 0 {
		cfg.SentencesPerChunk = 2
	}
	if cfg.MinSentenceRunes <= 0 {
		cfg.MinSentenceRunes = 20
	}

	var sentences []string
	for _, s := range splitSentences(body) {
		if len(strings.TrimSpace(s)) >= cfg.MinSentenceRunes {
			sentences = append(sentences, strings.TrimSpace(s))
		}
	}

	var chunks []string
	for start := 0; start < len(sentences); start += cfg.SentencesPerChunk {
		end := start + cfg.SentencesPerChunk
		if end > len(sentences) {
			end = len(sentences)
		}
		chunks = append(chunks, strings.Join(sentences[start:end], " "))
	}

	if cfg.MaxSubsections > 0 && len(chunks) > cfg.MaxSubsections {
		chunks = chunks[:cfg.MaxSubsections]
	}
	return chunks
}

// splitSentences does basic sentence splitting on terminal punctuation
// followed by a space.
func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	for i, r := range text {
		current.WriteRune(r)
		if (r == '.' || r == '!' || r == '?') && i+1 < len(text) && text[i+1] == ' ' {
			sentences = append(sentences, strings.TrimSpace(current.String()))
			current.Reset()
		}
	}
	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}

	return sentences
}
