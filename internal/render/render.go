// Package render turns the plan, schedule and review text returned by the
// planning service into display blocks, and wraps the service-built HTML
// document as a downloadable or previewable artifact.
//
// The markup understood here is deliberately small: three heading levels,
// bullet lines, **bold** spans and blank-line paragraph breaks. Anything else
// is shown as plain paragraph text.
package render

import (
	"regexp"
	"strings"
)

// Kind classifies a rendered block.
type Kind int

const (
	// KindParagraph is an ordinary text line.
	KindParagraph Kind = iota
	// KindHeading is a "#", "##" or "###" line; Block.Level holds 1-3.
	KindHeading
	// KindBullet is a "* " or "- " line.
	KindBullet
	// KindSeparator marks a paragraph break (one or more blank lines).
	KindSeparator
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindParagraph:
		return "paragraph"
	case KindHeading:
		return "heading"
	case KindBullet:
		return "bullet"
	case KindSeparator:
		return "separator"
	default:
		return "unknown"
	}
}

// Span is a run of inline text.
type Span struct {
	Text   string
	Strong bool
}

// Block is one rendered line.
type Block struct {
	Kind  Kind
	Level int
	Spans []Span
}

// Text returns the block's content without emphasis markers.
func (b Block) Text() string {
	var sb strings.Builder
	for _, s := range b.Spans {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// line prefixes in match order; "### " must be tried before "## " and "# ".
var linePrefixes = []struct {
	prefix string
	kind   Kind
	level  int
}{
	{"### ", KindHeading, 3},
	{"## ", KindHeading, 2},
	{"# ", KindHeading, 1},
	{"* ", KindBullet, 0},
	{"- ", KindBullet, 0},
}

var strongPattern = regexp.MustCompile(`\*\*(.*?)\*\*`)

// Render converts text into blocks, one per non-empty source line, in source
// order. A run of empty lines between content becomes a single separator;
// leading and trailing empty lines are dropped. A line holding only spaces is
// not empty: it renders as a paragraph, and "* " as an empty bullet.
func Render(text string) []Block {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	blocks := make([]Block, 0, len(lines))
	pendingBreak := false
	for _, line := range lines {
		if line == "" {
			pendingBreak = len(blocks) > 0
			continue
		}
		if pendingBreak {
			blocks = append(blocks, Block{Kind: KindSeparator})
			pendingBreak = false
		}
		blocks = append(blocks, classify(line))
	}
	return blocks
}

func classify(line string) Block {
	for _, p := range linePrefixes {
		if rest, ok := strings.CutPrefix(line, p.prefix); ok {
			return Block{Kind: p.kind, Level: p.level, Spans: inline(rest)}
		}
	}
	return Block{Kind: KindParagraph, Spans: inline(line)}
}

// inline splits s into plain and strong spans. Matches are non-greedy and do
// not nest; empty spans are omitted.
func inline(s string) []Span {
	matches := strongPattern.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return []Span{{Text: s}}
	}

	spans := make([]Span, 0, len(matches)*2+1)
	last := 0
	for _, m := range matches {
		if m[0] > last {
			spans = append(spans, Span{Text: s[last:m[0]]})
		}
		if m[3] > m[2] {
			spans = append(spans, Span{Text: s[m[2]:m[3]], Strong: true})
		}
		last = m[1]
	}
	if last < len(s) {
		spans = append(spans, Span{Text: s[last:]})
	}
	return spans
}

// PlainText flattens blocks back into text: headings and bullets lose their
// markers, strong spans lose their asterisks and separators become blank
// lines.
func PlainText(blocks []Block) string {
	lines := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if b.Kind == KindSeparator {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, b.Text())
	}
	return strings.Join(lines, "\n")
}
