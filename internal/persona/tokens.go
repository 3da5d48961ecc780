package persona

import (
	"regexp"
	"strings"
)

// nonAlphanumericRegex matches sequences of non-alphanumeric characters.
var nonAlphanumericRegex = regexp.MustCompile(`[^a-zA-Z0-9]+`)

var alphabeticRegex = regexp.MustCompile(`^[a-z]+$`)

// stopwords excluded from raw job term extraction.
var stopwords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "from": true,
	"that": true, "this": true, "into": true, "have": true, "will": true,
	"your": true, "their": true, "them": true, "then": true, "than": true,
	"about": true, "based": true, "using": true, "been": true, "were": true,
	"what": true, "when": true, "where": true, "which": true, "while": true,
}

// Tokenize lowercases text and splits it on non-alphanumeric runs.
func Tokenize(text string) []string {
	split := nonAlphanumericRegex.Split(strings.ToLower(text), -1)
	tokens := make([]string, 0, len(split))
	for _, s := range split {
		if s != "" {
			tokens = append(tokens, s)
		}
	}
	return tokens
}

// rawTerms extracts the task-specific vocabulary of a job description:
// alphabetic tokens longer than three characters that are not
// stopwords.
func rawTerms(jobText string) map[string]struct{} {
	terms := make(map[string]struct{})
	for _, t := range Tokenize(jobText) {
		if len(t) > 3 && alphabeticRegex.MatchString(t) && !stopwords[t] {
			terms[t] = struct{}{}
		}
	}
	return terms
}
