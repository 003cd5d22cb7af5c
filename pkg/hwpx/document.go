package hwpx

import (
	"os"
	"strings"

	"go.uber.org/zap"
)

// Element is any top-level piece of document content: a paragraph, a
// table, or an image.
type Element interface {
	isElement()
}

// Run is a span of text referencing one character property by ID.
type Run struct {
	Text        string
	CharPrIDRef int
}

// Paragraph is an ordered run list referencing paragraph property and
// style records by ID.
type Paragraph struct {
	Runs        []Run
	ParaPrIDRef int
	StyleIDRef  int
	PageBreak   bool
}

func (p *Paragraph) isElement() {}

// Text returns the concatenated text of all runs.
func (p *Paragraph) Text() string {
	var sb strings.Builder
	for _, run := range p.Runs {
		sb.WriteString(run.Text)
	}
	return sb.String()
}

// TableCell holds a paragraph list at a zero-based column/row address.
type TableCell struct {
	Paragraphs      []*Paragraph
	ColAddr         int
	RowAddr         int
	ColSpan         int
	RowSpan         int
	Width           int
	Height          int
	BorderFillIDRef int
	Header          bool
}

// TableRow is an ordered cell list.
type TableRow struct {
	Cells []*TableCell
}

// Table is an ordered row list with declared dimensions.
type Table struct {
	Rows            []*TableRow
	RowCnt          int
	ColCnt          int
	Width           int
	BorderFillIDRef int
	CellSpacing     int
}

func (t *Table) isElement() {}

// Image is an embedded picture. Width and Height are HWPUNIT.
type Image struct {
	BinaryItemID string // "imageN", sequential per document
	Width        int
	Height       int
	Data         []byte
	MediaType    string
}

func (i *Image) isElement() {}

// PageApply selects which pages a header or footer applies to.
type PageApply string

const (
	PagesBoth PageApply = "BOTH"
	PagesOdd  PageApply = "ODD"
	PagesEven PageApply = "EVEN"
)

// HeaderFooter is a page header or footer region.
type HeaderFooter struct {
	Paragraphs []*Paragraph
	Pages      PageApply
}

// PageSetup is the per-document page geometry. Orientation "WIDELY" is
// portrait, "NARROWLY" landscape, per the consumer's convention.
type PageSetup struct {
	Width        int
	Height       int
	MarginLeft   int
	MarginRight  int
	MarginTop    int
	MarginBottom int
	MarginHeader int
	MarginFooter int
	MarginGutter int
	Orientation  string
}

// A4 returns A4 (210 x 297 mm) page setup.
func A4(landscape bool) PageSetup {
	ps := PageSetup{
		Width:        DefaultPageWidth,
		Height:       DefaultPageHeight,
		MarginLeft:   DefaultMarginLeft,
		MarginRight:  DefaultMarginRight,
		MarginTop:    DefaultMarginTop,
		MarginBottom: DefaultMarginBottom,
		MarginHeader: DefaultMarginHeader,
		MarginFooter: DefaultMarginFooter,
		MarginGutter: DefaultMarginGutter,
		Orientation:  "WIDELY",
	}
	if landscape {
		ps.Width, ps.Height = ps.Height, ps.Width
		ps.Orientation = "NARROWLY"
	}
	return ps
}

// A3 returns A3 (297 x 420 mm) page setup.
func A3(landscape bool) PageSetup {
	ps := A4(false)
	ps.Width, ps.Height = MmToUnit(297), MmToUnit(420)
	if landscape {
		ps.Width, ps.Height = ps.Height, ps.Width
		ps.Orientation = "NARROWLY"
	}
	return ps
}

// Letter returns US Letter (216 x 279 mm) page setup.
func Letter(landscape bool) PageSetup {
	ps := A4(false)
	ps.Width, ps.Height = MmToUnit(216), MmToUnit(279)
	if landscape {
		ps.Width, ps.Height = ps.Height, ps.Width
		ps.Orientation = "NARROWLY"
	}
	return ps
}

// UsableWidth is the content area width: page width minus the left and
// right margins.
func (ps PageSetup) UsableWidth() int {
	return ps.Width - ps.MarginLeft - ps.MarginRight
}

// Segment is one formatted span of a mixed paragraph. When several flags
// are set, resolution order is: code, then strikethrough, superscript,
// subscript, link, then bold+italic, bold, italic.
type Segment struct {
	Text        string
	Bold        bool
	Italic      bool
	Code        bool
	Strike      bool
	Superscript bool
	Subscript   bool
	Link        string
}

// ListItem is one entry of a bullet or ordered list. Level is clamped to
// 0..2; each level maps to a pre-registered paragraph property with
// level-specific indentation.
type ListItem struct {
	Segments []Segment
	Level    int
}

// Item is the ListItem convenience constructor for plain text.
func Item(text string, level int) ListItem {
	return ListItem{Segments: []Segment{{Text: text}}, Level: level}
}

// Document is an in-memory HWPX document: the style registry, the ordered
// content elements, optional header/footer regions, and page geometry.
// It is mutated only through the Add* builder operations and consumed by
// Save/Bytes; no entity is changed after serialization begins.
type Document struct {
	Registry *Registry
	Page     PageSetup
	Elements []Element
	Header   *HeaderFooter
	Footer   *HeaderFooter
	Images   []*Image

	ids *IDGenerator
}

// NewDocument creates an empty document with the default registry, A4
// portrait geometry, and randomized structural IDs.
func NewDocument() *Document {
	return &Document{
		Registry: NewRegistry(),
		Page:     A4(false),
		ids:      NewIDGenerator(),
	}
}

// NewSeededDocument creates a document whose structural IDs are drawn
// from a deterministic sequence, making saved output reproducible.
func NewSeededDocument(seed uint64) *Document {
	doc := NewDocument()
	doc.ids = NewSeededIDGenerator(seed)
	return doc
}

// SetStyle rebuilds the registry from cfg. See StyleConfig for the
// pass-through (no validation) contract.
func (d *Document) SetStyle(cfg StyleConfig) *Document {
	d.Registry.ApplyConfig(cfg)
	return d
}

// SetPageSetup replaces the page geometry.
func (d *Document) SetPageSetup(ps PageSetup) *Document {
	d.Page = ps
	return d
}

var headingMap = [6]struct{ charPr, paraPr, style int }{
	{CharPrH1, ParaPrH1, StyleH1},
	{CharPrH2, ParaPrH2, StyleH2},
	{CharPrH3, ParaPrH3, StyleH3},
	{CharPrH4, ParaPrH4, StyleH4},
	{CharPrH5, ParaPrH5, StyleH5},
	{CharPrH6, ParaPrH6, StyleH6},
}

// AddHeading appends a heading paragraph. The level is clamped to 1..6.
func (d *Document) AddHeading(text string, level int) *Paragraph {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	m := headingMap[level-1]
	para := &Paragraph{
		Runs:        []Run{{Text: text, CharPrIDRef: m.charPr}},
		ParaPrIDRef: m.paraPr,
		StyleIDRef:  m.style,
	}
	d.Elements = append(d.Elements, para)
	return para
}

// AddParagraph appends a body paragraph, optionally bold and/or italic
// for the whole text.
func (d *Document) AddParagraph(text string, bold, italic bool) *Paragraph {
	var runs []Run
	if text != "" {
		runs = []Run{{Text: text, CharPrIDRef: charPrFor(Segment{Bold: bold, Italic: italic})}}
	}
	para := &Paragraph{Runs: runs, ParaPrIDRef: ParaPrBody, StyleIDRef: StyleBody}
	d.Elements = append(d.Elements, para)
	return para
}

// AddMixedParagraph appends a paragraph with per-segment formatting; each
// segment becomes exactly one run.
func (d *Document) AddMixedParagraph(segments []Segment) *Paragraph {
	runs := make([]Run, 0, len(segments))
	for _, seg := range segments {
		runs = append(runs, Run{Text: seg.Text, CharPrIDRef: charPrFor(seg)})
	}
	para := &Paragraph{Runs: runs, ParaPrIDRef: ParaPrBody, StyleIDRef: StyleBody}
	d.Elements = append(d.Elements, para)
	return para
}

// charPrFor resolves a segment's formatting flags to a built-in charPr ID.
func charPrFor(seg Segment) int {
	switch {
	case seg.Code:
		return CharPrInlineCode
	case seg.Strike:
		return CharPrStrikethrough
	case seg.Superscript:
		return CharPrSuperscript
	case seg.Subscript:
		return CharPrSubscript
	case seg.Link != "":
		return CharPrLink
	case seg.Bold && seg.Italic:
		return CharPrBoldItalic
	case seg.Bold:
		return CharPrBold
	case seg.Italic:
		return CharPrItalic
	}
	return CharPrBody
}

// AddTable appends a table. Column width is the usable page width divided
// by the header count (integer division). The first row carries the header
// fill and header flag. Data rows shorter than the header count are padded
// with empty cells on the right; longer rows are truncated to the header
// count so colCnt always matches the grid.
func (d *Document) AddTable(headers []string, rows [][]string) *Table {
	colCnt := len(headers)
	if colCnt == 0 {
		return nil
	}
	usable := d.Page.UsableWidth()
	colWidth := usable / colCnt

	cell := func(text string, col, row, charPr, fill int, header bool) *TableCell {
		return &TableCell{
			Paragraphs: []*Paragraph{{
				Runs:        []Run{{Text: text, CharPrIDRef: charPr}},
				ParaPrIDRef: ParaPrTable,
				StyleIDRef:  StyleBody,
			}},
			ColAddr:         col,
			RowAddr:         row,
			ColSpan:         1,
			RowSpan:         1,
			Width:           colWidth,
			Height:          1000,
			BorderFillIDRef: fill,
			Header:          header,
		}
	}

	table := &Table{
		RowCnt:          1 + len(rows),
		ColCnt:          colCnt,
		Width:           usable,
		BorderFillIDRef: BorderFillTable,
	}

	headerRow := &TableRow{}
	for ci, h := range headers {
		headerRow.Cells = append(headerRow.Cells,
			cell(h, ci, 0, CharPrTableHeader, BorderFillTableHeader, true))
	}
	table.Rows = append(table.Rows, headerRow)

	for ri, rowData := range rows {
		if len(rowData) > colCnt {
			Logger().Debug("table row truncated to column count",
				zap.Int("row", ri), zap.Int("cells", len(rowData)), zap.Int("columns", colCnt))
			rowData = rowData[:colCnt]
		}
		row := &TableRow{}
		for ci := 0; ci < colCnt; ci++ {
			text := ""
			if ci < len(rowData) {
				text = rowData[ci]
			}
			row.Cells = append(row.Cells,
				cell(text, ci, ri+1, CharPrTableBody, BorderFillTable, false))
		}
		table.Rows = append(table.Rows, row)
	}

	d.Elements = append(d.Elements, table)
	return table
}

// AddCodeBlock appends the code as one paragraph per source line. An empty
// line becomes a single-space run so vertical spacing survives.
func (d *Document) AddCodeBlock(code string) []*Paragraph {
	lines := strings.Split(code, "\n")
	paras := make([]*Paragraph, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			line = " "
		}
		para := &Paragraph{
			Runs:        []Run{{Text: line, CharPrIDRef: CharPrCodeBlock}},
			ParaPrIDRef: ParaPrCode,
			StyleIDRef:  StyleBody,
		}
		d.Elements = append(d.Elements, para)
		paras = append(paras, para)
	}
	return paras
}

var bulletParaPrs = [3]int{ParaPrBullet, ParaPrBulletL2, ParaPrBulletL3}
var orderedParaPrs = [3]int{ParaPrOrdered, ParaPrOrderedL2, ParaPrOrderedL3}

// AddBulletList appends one paragraph per item, mapped to the bullet
// paragraph property for the item's nesting level (clamped to 0..2).
func (d *Document) AddBulletList(items []ListItem) []*Paragraph {
	return d.addList(items, bulletParaPrs)
}

// AddOrderedList is AddBulletList with numbered paragraph properties.
func (d *Document) AddOrderedList(items []ListItem) []*Paragraph {
	return d.addList(items, orderedParaPrs)
}

func (d *Document) addList(items []ListItem, paraPrs [3]int) []*Paragraph {
	paras := make([]*Paragraph, 0, len(items))
	for _, item := range items {
		level := item.Level
		if level < 0 {
			level = 0
		}
		if level > 2 {
			level = 2
		}
		runs := make([]Run, 0, len(item.Segments))
		for _, seg := range item.Segments {
			runs = append(runs, Run{Text: seg.Text, CharPrIDRef: charPrFor(seg)})
		}
		para := &Paragraph{Runs: runs, ParaPrIDRef: paraPrs[level], StyleIDRef: StyleBody}
		d.Elements = append(d.Elements, para)
		paras = append(paras, para)
	}
	return paras
}

// AddHorizontalRule appends a thin-line paragraph drawn with the rule
// border fill.
func (d *Document) AddHorizontalRule() *Paragraph {
	para := &Paragraph{
		Runs:        []Run{{Text: "", CharPrIDRef: CharPrBody}},
		ParaPrIDRef: ParaPrRule,
		StyleIDRef:  StyleBody,
	}
	d.Elements = append(d.Elements, para)
	return para
}

// AddBlockQuote appends a quoted paragraph with the left-bar border fill.
func (d *Document) AddBlockQuote(segments []Segment) *Paragraph {
	runs := make([]Run, 0, len(segments))
	for _, seg := range segments {
		runs = append(runs, Run{Text: seg.Text, CharPrIDRef: charPrFor(seg)})
	}
	para := &Paragraph{Runs: runs, ParaPrIDRef: ParaPrBlockQuote, StyleIDRef: StyleBody}
	d.Elements = append(d.Elements, para)
	return para
}

// AddPageBreak appends an empty paragraph that starts a new page.
func (d *Document) AddPageBreak() *Paragraph {
	para := &Paragraph{ParaPrIDRef: ParaPrBody, StyleIDRef: StyleBody, PageBreak: true}
	d.Elements = append(d.Elements, para)
	return para
}

// AddHeader sets the page header region. At most one header exists; a
// second call replaces it.
func (d *Document) AddHeader(text string, pages PageApply) *HeaderFooter {
	d.Header = headerFooter(text, pages)
	return d.Header
}

// AddFooter sets the page footer region.
func (d *Document) AddFooter(text string, pages PageApply) *HeaderFooter {
	d.Footer = headerFooter(text, pages)
	return d.Footer
}

func headerFooter(text string, pages PageApply) *HeaderFooter {
	if pages == "" {
		pages = PagesBoth
	}
	return &HeaderFooter{
		Paragraphs: []*Paragraph{{
			Runs:        []Run{{Text: text, CharPrIDRef: CharPrBody}},
			ParaPrIDRef: ParaPrBody,
			StyleIDRef:  StyleBody,
		}},
		Pages: pages,
	}
}

// AddImage embeds an image from raw bytes. The media type is resolved
// from magic bytes, pixel dimensions from the format header; width and
// height override the derived size when positive (HWPUNIT).
func (d *Document) AddImage(data []byte, width, height int) *Image {
	return d.addImage(data, sniffMediaType(data), width, height)
}

// AddImageFile embeds an image read from path. The media type is resolved
// from the file extension, falling back to magic-byte sniffing.
func (d *Document) AddImageFile(path string, width, height int) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewDocumentError("read", path, err)
	}
	mediaType := mediaTypeFromExtension(path)
	if mediaType == "" {
		mediaType = sniffMediaType(data)
	}
	return d.addImage(data, mediaType, width, height), nil
}

func (d *Document) addImage(data []byte, mediaType string, width, height int) *Image {
	w, h := imageSize(data, mediaType)
	if width > 0 {
		w = width
	}
	if height > 0 {
		h = height
	}
	img := &Image{
		BinaryItemID: binaryItemID(len(d.Images) + 1),
		Width:        w,
		Height:       h,
		Data:         data,
		MediaType:    mediaType,
	}
	d.Images = append(d.Images, img)
	d.Elements = append(d.Elements, img)
	return img
}

// AddTOC appends a table-of-contents built from the headings appended so
// far (recognized by their style ID): a heading paragraph for the title,
// then one body paragraph per heading, indented two spaces per level
// beyond the first.
func (d *Document) AddTOC(title string) []*Paragraph {
	type entry struct {
		text  string
		level int
	}
	var entries []entry
	for _, elem := range d.Elements {
		para, ok := elem.(*Paragraph)
		if !ok {
			continue
		}
		if para.StyleIDRef >= StyleH1 && para.StyleIDRef <= StyleH6 {
			entries = append(entries, entry{text: para.Text(), level: para.StyleIDRef - StyleH1 + 1})
		}
	}

	paras := []*Paragraph{d.AddHeading(title, 1)}
	for _, e := range entries {
		indent := strings.Repeat("  ", e.level-1)
		paras = append(paras, d.AddParagraph(indent+e.text, false, false))
	}
	return paras
}

// PreviewText returns the plain-text preview written to
// Preview/PrvText.txt: run and cell text joined by spaces, truncated to
// the configured limit.
func (d *Document) PreviewText() string {
	limit := GetGlobalConfig().PreviewLimit
	var texts []string
	collect := func(p *Paragraph) {
		for _, run := range p.Runs {
			if strings.TrimSpace(run.Text) != "" {
				texts = append(texts, run.Text)
			}
		}
	}
	for _, elem := range d.Elements {
		switch el := elem.(type) {
		case *Paragraph:
			collect(el)
		case *Table:
			for _, row := range el.Rows {
				for _, c := range row.Cells {
					for _, p := range c.Paragraphs {
						collect(p)
					}
				}
			}
		}
	}
	preview := strings.Join(texts, " ")
	if preview == "" {
		return " "
	}
	runes := []rune(preview)
	if len(runes) > limit {
		return string(runes[:limit])
	}
	return preview
}
