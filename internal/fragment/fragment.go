package fragment

// Fragment is one contiguous run of styled text at a known reading-order
// position, the smallest unit a source provides.
type Fragment struct {
	Text     string
	FontSize float64
	Bold     bool
	Italic   bool
	Page     int // 1-based page number
	Position int // reading-order index within the document
}

// Document is a named, ordered fragment stream.
type Document struct {
	ID        string
	Name      string
	Fragments []Fragment
}

// BodySize is the synthetic font size assigned to ordinary text by
// sources that carry structural heading levels instead of visual
// styling (Markdown, HTML, DOCX).
const BodySize = 12.0

// headingSizes maps structural heading levels 1-6 to synthetic font
// sizes. The ladder is spaced so the outline classifier recovers the
// original level from the size ratio against BodySize.
var headingSizes = [6]float64{19, 17, 15, 13.5, 12.75, 12.5}

// HeadingSize returns the synthetic font size for a structural heading
// level. Levels outside 1-6 are clamped.
func HeadingSize(level int) float64 {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return headingSizes[level-1]
}

// renumber assigns sequential reading-order positions.
func renumber(frags []Fragment) []Fragment {
	for i := range frags {
		frags[i].Position = i
	}
	return frags
}
