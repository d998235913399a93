package result_card

import "strings"

// BlockKind classifies one rendered line of a localization result.
type BlockKind string

const (
	KindHeading   BlockKind = "heading"
	KindListItem  BlockKind = "list_item"
	KindParagraph BlockKind = "paragraph"
	KindSpacer    BlockKind = "spacer"
)

const (
	headingPrefix  = "## "
	listItemPrefix = "- "
)

type Block struct {
	Kind BlockKind `json:"kind"`
	Text string    `json:"text,omitempty"`
}

// Document is a localization result split into typed blocks, one per input line.
type Document struct {
	Blocks []Block `json:"blocks"`
}

// Parse splits text on line breaks and classifies every line.
// Headings lose their "## " marker; list items keep the full line.
func Parse(text string) Document {
	lines := strings.Split(text, "\n")
	doc := Document{Blocks: make([]Block, 0, len(lines))}
	for _, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		doc.Blocks = append(doc.Blocks, classify(line))
	}
	return doc
}

func classify(line string) Block {
	switch {
	case strings.HasPrefix(line, headingPrefix):
		return Block{Kind: KindHeading, Text: strings.TrimPrefix(line, headingPrefix)}
	case strings.HasPrefix(line, listItemPrefix):
		return Block{Kind: KindListItem, Text: line}
	case strings.TrimSpace(line) != "":
		return Block{Kind: KindParagraph, Text: line}
	default:
		return Block{Kind: KindSpacer}
	}
}

// Headings returns the heading texts in document order.
func (d Document) Headings() []string {
	var headings []string
	for _, b := range d.Blocks {
		if b.Kind == KindHeading {
			headings = append(headings, strings.TrimSpace(b.Text))
		}
	}
	return headings
}

// MissingSections reports which of want do not appear as a heading.
func (d Document) MissingSections(want []string) []string {
	have := make(map[string]struct{})
	for _, h := range d.Headings() {
		have[strings.ToLower(h)] = struct{}{}
	}

	var missing []string
	for _, w := range want {
		if _, ok := have[strings.ToLower(w)]; !ok {
			missing = append(missing, w)
		}
	}
	return missing
}
