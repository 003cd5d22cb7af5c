package hwpx

import (
	"testing"
)

func TestApplyDispatchesNodes(t *testing.T) {
	doc := NewDocument()
	Apply(doc, []Node{
		Heading{Level: 1, Spans: []TextSpan{{Text: "개요"}}},
		ParagraphNode{Spans: []TextSpan{
			{Text: "이것은 "},
			{Text: "중요", Bold: true},
			{Text: "합니다."},
		}},
		TableNode{Headers: []string{"a", "b"}, Rows: [][]string{{"1", "2"}}},
		CodeBlockNode{Code: "x := 1\ny := 2", Language: "go"},
		BulletListNode{Items: []ListNodeItem{
			{Spans: []TextSpan{{Text: "항목"}}, Level: 0},
			{Spans: []TextSpan{{Text: "하위"}}, Level: 1},
		}},
		OrderedListNode{Items: []ListNodeItem{
			{Spans: []TextSpan{{Text: "첫째"}}, Level: 0},
		}},
		RuleNode{},
		BlockQuoteNode{Spans: []TextSpan{{Text: "인용문"}}},
	})

	// heading + paragraph + table + 2 code lines + 2 bullets + 1 ordered
	// + rule + quote
	if got := len(doc.Elements); got != 10 {
		t.Fatalf("elements = %d, want 10", got)
	}

	if p, ok := doc.Elements[0].(*Paragraph); !ok || p.StyleIDRef != StyleH1 {
		t.Error("first element is not a level 1 heading")
	}
	if p := doc.Elements[1].(*Paragraph); p.Runs[1].CharPrIDRef != CharPrBold {
		t.Error("bold span did not map to bold run")
	}
	if tbl, ok := doc.Elements[2].(*Table); !ok || tbl.ColCnt != 2 {
		t.Error("table node did not build a 2-column table")
	}
	if p := doc.Elements[3].(*Paragraph); p.ParaPrIDRef != ParaPrCode {
		t.Error("code block line not using code paraPr")
	}
	if p := doc.Elements[6].(*Paragraph); p.ParaPrIDRef != ParaPrBulletL2 {
		t.Error("nested bullet not using level-2 paraPr")
	}
	if p := doc.Elements[8].(*Paragraph); p.ParaPrIDRef != ParaPrRule {
		t.Error("rule node not using rule paraPr")
	}
	if p := doc.Elements[9].(*Paragraph); p.ParaPrIDRef != ParaPrBlockQuote {
		t.Error("quote node not using block quote paraPr")
	}
}

func TestTextSpanLinkMapsToLinkCharPr(t *testing.T) {
	doc := NewDocument()
	Apply(doc, []Node{
		ParagraphNode{Spans: []TextSpan{
			{Text: "문서", Link: "https://example.com"},
		}},
	})
	p := doc.Elements[0].(*Paragraph)
	if p.Runs[0].CharPrIDRef != CharPrLink {
		t.Errorf("link span charPr = %d, want %d", p.Runs[0].CharPrIDRef, CharPrLink)
	}
}

func TestHeadingNodeFlattensSpans(t *testing.T) {
	doc := NewDocument()
	Apply(doc, []Node{
		Heading{Level: 2, Spans: []TextSpan{{Text: "부록 "}, {Text: "A", Bold: true}}},
	})
	p := doc.Elements[0].(*Paragraph)
	if p.Text() != "부록 A" {
		t.Errorf("heading text = %q", p.Text())
	}
	// Headings carry their own formatting; span flags are not preserved.
	if len(p.Runs) != 1 || p.Runs[0].CharPrIDRef != CharPrH2 {
		t.Error("heading did not flatten spans into one styled run")
	}
}
