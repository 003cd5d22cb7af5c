package hwpx

import (
	"strings"
	"testing"
)

func TestAddHeadingClampsLevel(t *testing.T) {
	tests := []struct {
		name       string
		level      int
		wantCharPr int
		wantParaPr int
		wantStyle  int
	}{
		{"below range", 0, CharPrH1, ParaPrH1, StyleH1},
		{"level 1", 1, CharPrH1, ParaPrH1, StyleH1},
		{"level 3", 3, CharPrH3, ParaPrH3, StyleH3},
		{"level 6", 6, CharPrH6, ParaPrH6, StyleH6},
		{"above range", 9, CharPrH6, ParaPrH6, StyleH6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := NewDocument()
			para := doc.AddHeading("제목", tt.level)
			if para.Runs[0].CharPrIDRef != tt.wantCharPr {
				t.Errorf("charPr = %d, want %d", para.Runs[0].CharPrIDRef, tt.wantCharPr)
			}
			if para.ParaPrIDRef != tt.wantParaPr {
				t.Errorf("paraPr = %d, want %d", para.ParaPrIDRef, tt.wantParaPr)
			}
			if para.StyleIDRef != tt.wantStyle {
				t.Errorf("style = %d, want %d", para.StyleIDRef, tt.wantStyle)
			}
		})
	}
}

func TestSegmentCharPrPrecedence(t *testing.T) {
	tests := []struct {
		name string
		seg  Segment
		want int
	}{
		{"plain", Segment{}, CharPrBody},
		{"bold", Segment{Bold: true}, CharPrBold},
		{"italic", Segment{Italic: true}, CharPrItalic},
		{"bold italic", Segment{Bold: true, Italic: true}, CharPrBoldItalic},
		{"code wins over bold", Segment{Code: true, Bold: true}, CharPrInlineCode},
		{"code wins over everything", Segment{Code: true, Strike: true, Bold: true, Italic: true}, CharPrInlineCode},
		{"strike wins over bold italic", Segment{Strike: true, Bold: true, Italic: true}, CharPrStrikethrough},
		{"superscript wins over bold", Segment{Superscript: true, Bold: true}, CharPrSuperscript},
		{"subscript wins over italic", Segment{Subscript: true, Italic: true}, CharPrSubscript},
		{"link wins over bold", Segment{Link: "https://example.com", Bold: true}, CharPrLink},
		{"strike wins over link", Segment{Strike: true, Link: "https://example.com"}, CharPrStrikethrough},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := charPrFor(tt.seg); got != tt.want {
				t.Errorf("charPrFor(%+v) = %d, want %d", tt.seg, got, tt.want)
			}
		})
	}
}

func TestAddMixedParagraphOneRunPerSegment(t *testing.T) {
	doc := NewDocument()
	para := doc.AddMixedParagraph([]Segment{
		{Text: "plain "},
		{Text: "bold", Bold: true},
		{Text: " and "},
		{Text: "code", Code: true},
	})

	if len(para.Runs) != 4 {
		t.Fatalf("runs = %d, want 4", len(para.Runs))
	}
	if para.Runs[1].CharPrIDRef != CharPrBold {
		t.Errorf("run 1 charPr = %d, want %d", para.Runs[1].CharPrIDRef, CharPrBold)
	}
	if para.Runs[3].CharPrIDRef != CharPrInlineCode {
		t.Errorf("run 3 charPr = %d, want %d", para.Runs[3].CharPrIDRef, CharPrInlineCode)
	}
	if para.Text() != "plain bold and code" {
		t.Errorf("Text() = %q", para.Text())
	}
}

func TestAddTableGridShape(t *testing.T) {
	doc := NewDocument()
	table := doc.AddTable(
		[]string{"이름", "나이", "직업"},
		[][]string{
			{"김철수", "30", "개발자"},
			{"이영희", "25"},                      // short row, padded
			{"박민수", "40", "디자이너", "초과", "초과"}, // long row, truncated
		},
	)

	if table.RowCnt != 4 || table.ColCnt != 3 {
		t.Fatalf("grid = %dx%d, want 4x3", table.RowCnt, table.ColCnt)
	}
	for ri, row := range table.Rows {
		if len(row.Cells) != 3 {
			t.Errorf("row %d has %d cells, want 3", ri, len(row.Cells))
		}
		for ci, cell := range row.Cells {
			if cell.ColAddr != ci || cell.RowAddr != ri {
				t.Errorf("cell (%d,%d) addressed as (%d,%d)", ri, ci, cell.RowAddr, cell.ColAddr)
			}
		}
	}

	// Header row formatting.
	for _, cell := range table.Rows[0].Cells {
		if !cell.Header {
			t.Error("header cell not flagged")
		}
		if cell.BorderFillIDRef != BorderFillTableHeader {
			t.Errorf("header fill = %d, want %d", cell.BorderFillIDRef, BorderFillTableHeader)
		}
		if cell.Paragraphs[0].Runs[0].CharPrIDRef != CharPrTableHeader {
			t.Error("header cell not using table header charPr")
		}
	}

	// Padded cell is empty, truncated content gone.
	if got := table.Rows[2].Cells[2].Paragraphs[0].Text(); got != "" {
		t.Errorf("padded cell text = %q, want empty", got)
	}
	if got := table.Rows[3].Cells[2].Paragraphs[0].Text(); got != "디자이너" {
		t.Errorf("last kept cell = %q, want 디자이너", got)
	}

	// Equal column widths from the usable page width.
	wantWidth := doc.Page.UsableWidth() / 3
	for _, cell := range table.Rows[1].Cells {
		if cell.Width != wantWidth {
			t.Errorf("cell width = %d, want %d", cell.Width, wantWidth)
		}
	}
}

func TestAddTableEmptyHeaders(t *testing.T) {
	doc := NewDocument()
	if table := doc.AddTable(nil, nil); table != nil {
		t.Error("expected nil table for empty headers")
	}
	if len(doc.Elements) != 0 {
		t.Error("element appended for empty table")
	}
}

func TestAddCodeBlockEmptyLineBecomesSpace(t *testing.T) {
	doc := NewDocument()
	paras := doc.AddCodeBlock("func main() {\n\n}")

	if len(paras) != 3 {
		t.Fatalf("paragraphs = %d, want 3", len(paras))
	}
	if paras[1].Runs[0].Text != " " {
		t.Errorf("empty line run = %q, want single space", paras[1].Runs[0].Text)
	}
	for _, p := range paras {
		if p.ParaPrIDRef != ParaPrCode {
			t.Errorf("paraPr = %d, want %d", p.ParaPrIDRef, ParaPrCode)
		}
		if p.Runs[0].CharPrIDRef != CharPrCodeBlock {
			t.Errorf("charPr = %d, want %d", p.Runs[0].CharPrIDRef, CharPrCodeBlock)
		}
	}
}

func TestListLevelsClampAndMap(t *testing.T) {
	doc := NewDocument()
	paras := doc.AddBulletList([]ListItem{
		Item("최상위", 0),
		Item("둘째 수준", 1),
		Item("셋째 수준", 2),
		Item("과도한 수준", 7),
		Item("음수 수준", -1),
	})

	want := []int{ParaPrBullet, ParaPrBulletL2, ParaPrBulletL3, ParaPrBulletL3, ParaPrBullet}
	for i, p := range paras {
		if p.ParaPrIDRef != want[i] {
			t.Errorf("item %d paraPr = %d, want %d", i, p.ParaPrIDRef, want[i])
		}
	}

	ordered := doc.AddOrderedList([]ListItem{Item("첫째", 0), Item("둘째", 1)})
	if ordered[0].ParaPrIDRef != ParaPrOrdered || ordered[1].ParaPrIDRef != ParaPrOrderedL2 {
		t.Errorf("ordered paraPrs = %d, %d", ordered[0].ParaPrIDRef, ordered[1].ParaPrIDRef)
	}
}

func TestAddTOCIndentsByLevel(t *testing.T) {
	doc := NewDocument()
	doc.AddHeading("개요", 1)
	doc.AddParagraph("본문", false, false)
	doc.AddHeading("배경", 2)
	doc.AddHeading("세부사항", 3)

	paras := doc.AddTOC("목차")

	if len(paras) != 4 {
		t.Fatalf("TOC paragraphs = %d, want title + 3 entries", len(paras))
	}
	if paras[0].StyleIDRef != StyleH1 {
		t.Error("TOC title is not a level 1 heading")
	}
	wants := []string{"개요", "  배경", "    세부사항"}
	for i, want := range wants {
		if got := paras[i+1].Text(); got != want {
			t.Errorf("entry %d = %q, want %q", i, got, want)
		}
	}
}

func TestAddHeaderFooterReplaces(t *testing.T) {
	doc := NewDocument()
	doc.AddHeader("첫 머리말", PagesBoth)
	doc.AddHeader("둘째 머리말", PagesOdd)
	doc.AddFooter("꼬리말", "")

	if doc.Header.Pages != PagesOdd {
		t.Errorf("header pages = %s, want ODD", doc.Header.Pages)
	}
	if got := doc.Header.Paragraphs[0].Text(); got != "둘째 머리말" {
		t.Errorf("header text = %q", got)
	}
	if doc.Footer.Pages != PagesBoth {
		t.Errorf("footer default pages = %s, want BOTH", doc.Footer.Pages)
	}
}

func TestAddPageBreak(t *testing.T) {
	doc := NewDocument()
	para := doc.AddPageBreak()
	if !para.PageBreak {
		t.Error("PageBreak flag not set")
	}
	if len(para.Runs) != 0 {
		t.Error("page break paragraph should be empty")
	}
}

func TestPageSetupVariants(t *testing.T) {
	tests := []struct {
		name        string
		ps          PageSetup
		wantW       int
		wantH       int
		orientation string
	}{
		{"a4 portrait", A4(false), 59530, 84190, "WIDELY"},
		{"a4 landscape", A4(true), 84190, 59530, "NARROWLY"},
		{"a3 portrait", A3(false), MmToUnit(297), MmToUnit(420), "WIDELY"},
		{"letter landscape", Letter(true), MmToUnit(279), MmToUnit(216), "NARROWLY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.ps.Width != tt.wantW || tt.ps.Height != tt.wantH {
				t.Errorf("size = %dx%d, want %dx%d", tt.ps.Width, tt.ps.Height, tt.wantW, tt.wantH)
			}
			if tt.ps.Orientation != tt.orientation {
				t.Errorf("orientation = %s, want %s", tt.ps.Orientation, tt.orientation)
			}
			if tt.ps.UsableWidth() != tt.ps.Width-tt.ps.MarginLeft-tt.ps.MarginRight {
				t.Error("UsableWidth does not subtract both margins")
			}
		})
	}
}

func TestUnitConversions(t *testing.T) {
	if got := PtToUnit(10); got != 1000 {
		t.Errorf("PtToUnit(10) = %d, want 1000", got)
	}
	if got := MmToUnit(210); got != 59527 {
		t.Errorf("MmToUnit(210) = %d, want 59527", got)
	}
	if got := InchToUnit(1); got != 7200 {
		t.Errorf("InchToUnit(1) = %d, want 7200", got)
	}
	if got := UnitToPt(1000); got != 10 {
		t.Errorf("UnitToPt(1000) = %v, want 10", got)
	}
}

func TestPreviewTextJoinsAndTruncates(t *testing.T) {
	doc := NewDocument()
	doc.AddHeading("제목", 1)
	doc.AddTable([]string{"키"}, [][]string{{"값"}})
	doc.AddParagraph("본문", false, false)

	got := doc.PreviewText()
	for _, want := range []string{"제목", "키", "값", "본문"} {
		if !strings.Contains(got, want) {
			t.Errorf("preview missing %q: %q", want, got)
		}
	}

	long := NewDocument()
	long.AddParagraph(strings.Repeat("가", 500), false, false)
	if runes := []rune(long.PreviewText()); len(runes) != GetGlobalConfig().PreviewLimit {
		t.Errorf("preview length = %d runes, want %d", len(runes), GetGlobalConfig().PreviewLimit)
	}

	if empty := NewDocument().PreviewText(); empty != " " {
		t.Errorf("empty preview = %q, want single space", empty)
	}
}
