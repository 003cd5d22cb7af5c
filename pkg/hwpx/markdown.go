package hwpx

import "strings"

// TextSpan is a formatted slice of inline text as produced by a Markdown
// front end. It is deliberately decoupled from Segment so parsers do not
// depend on builder internals.
type TextSpan struct {
	Text   string
	Bold   bool
	Italic bool
	Code   bool
	Strike bool
	Link   string
}

func (s TextSpan) segment() Segment {
	return Segment{
		Text:   s.Text,
		Bold:   s.Bold,
		Italic: s.Italic,
		Code:   s.Code,
		Strike: s.Strike,
		Link:   s.Link,
	}
}

func spansToSegments(spans []TextSpan) []Segment {
	segs := make([]Segment, 0, len(spans))
	for _, sp := range spans {
		segs = append(segs, sp.segment())
	}
	return segs
}

func spansText(spans []TextSpan) string {
	var sb strings.Builder
	for _, sp := range spans {
		sb.WriteString(sp.Text)
	}
	return sb.String()
}

// Node is one block-level piece of parsed document content.
type Node interface {
	apply(doc *Document)
}

// Heading is a level 1..6 heading.
type Heading struct {
	Level int
	Spans []TextSpan
}

func (n Heading) apply(doc *Document) {
	doc.AddHeading(spansText(n.Spans), n.Level)
}

// ParagraphNode is a body paragraph with inline formatting.
type ParagraphNode struct {
	Spans []TextSpan
}

func (n ParagraphNode) apply(doc *Document) {
	doc.AddMixedParagraph(spansToSegments(n.Spans))
}

// TableNode is a header row plus data rows of plain cell text.
type TableNode struct {
	Headers []string
	Rows    [][]string
}

func (n TableNode) apply(doc *Document) {
	doc.AddTable(n.Headers, n.Rows)
}

// CodeBlockNode is a fenced code block. Language is informational only;
// no highlighting is applied.
type CodeBlockNode struct {
	Code     string
	Language string
}

func (n CodeBlockNode) apply(doc *Document) {
	doc.AddCodeBlock(n.Code)
}

// ListNodeItem is one list entry with a nesting level.
type ListNodeItem struct {
	Spans []TextSpan
	Level int
}

func listItems(items []ListNodeItem) []ListItem {
	out := make([]ListItem, 0, len(items))
	for _, it := range items {
		out = append(out, ListItem{Segments: spansToSegments(it.Spans), Level: it.Level})
	}
	return out
}

// BulletListNode is an unordered list.
type BulletListNode struct {
	Items []ListNodeItem
}

func (n BulletListNode) apply(doc *Document) {
	doc.AddBulletList(listItems(n.Items))
}

// OrderedListNode is a numbered list.
type OrderedListNode struct {
	Items []ListNodeItem
}

func (n OrderedListNode) apply(doc *Document) {
	doc.AddOrderedList(listItems(n.Items))
}

// RuleNode is a horizontal rule.
type RuleNode struct{}

func (RuleNode) apply(doc *Document) {
	doc.AddHorizontalRule()
}

// BlockQuoteNode is a quoted paragraph.
type BlockQuoteNode struct {
	Spans []TextSpan
}

func (n BlockQuoteNode) apply(doc *Document) {
	doc.AddBlockQuote(spansToSegments(n.Spans))
}

// Apply appends each node to the document in order. Nodes are independent
// of one another; dispatch never looks ahead.
func Apply(doc *Document, nodes []Node) {
	for _, node := range nodes {
		node.apply(doc)
	}
}
