package fragment

import (
	"bufio"
	"io"
	"strings"
)

// TextSource handles plain text files. Every paragraph becomes a
// body-size fragment, so a text document classifies with zero headings
// and falls back to a single whole-document section downstream.
type TextSource struct{}

func (s *TextSource) Extract(r io.Reader, filename string) (*Document, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var frags []Fragment
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			frags = append(frags, Fragment{
				Text:     current.String(),
				FontSize: BodySize,
				Page:     1,
			})
			current.Reset()
		}
	}

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			flush()
		} else {
			if current.Len() > 0 {
				current.WriteString("\n")
			}
			current.WriteString(line)
		}
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return &Document{
		ID:        baseName(filename),
		Name:      filename,
		Fragments: renumber(frags),
	}, nil
}
