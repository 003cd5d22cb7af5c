// Package hwpx builds and edits HWPX documents, the ZIP-packaged OWPML
// format used by Hancom Office Hangul.
//
// The package covers two workflows. The builder creates documents from
// scratch:
//
//	doc := hwpx.NewDocument()
//	doc.AddHeading("분기 보고서", 1)
//	doc.AddParagraph("요약 내용입니다.", false, false)
//	doc.AddTable([]string{"항목", "값"}, [][]string{{"매출", "1.2억"}})
//	if err := doc.Save("report.hwpx"); err != nil {
//	    log.Fatal(err)
//	}
//
// The form engine opens an existing document, fills {{name}} placeholders
// and table cells, and re-packs it without disturbing anything else:
//
//	form, err := hwpx.OpenForm("양식.hwpx")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	form.Fill(map[string]string{"사업명": "AI 플랫폼 구축"}, hwpx.PolicyKeep)
//	form.FillByLabel("신청기관", "(주)예시", hwpx.MatchContains)
//	form.Save("결과.hwpx")
//
// # Document structure
//
// A HWPX file is a ZIP container whose first entry is an uncompressed
// "mimetype" holding "application/hwp+zip". Styles live in
// Contents/header.xml, content in Contents/section0.xml, and both are
// serialized with exact namespace prefixes (hh, hp, hs, hc) because the
// consuming application matches on the prefixed names.
//
// All lengths are HWPUNIT, 1/100 of a point. Use PtToUnit, MmToUnit, and
// InchToUnit to convert.
//
// # Styles
//
// Every document carries a registry of character properties, paragraph
// properties, border fills, fonts, and named styles. The built-in records
// occupy fixed IDs (CharPrBody, ParaPrH1, BorderFillTable, ...) that the
// builder operations reference; SetStyle rebuilds them from a StyleConfig
// without changing any ID.
//
// # Formatted text
//
// AddMixedParagraph, list items, and block quotes take Segment values
// whose flags select a character property per run. Markdown front ends
// can target the Node types in this package and hand the result to Apply.
package hwpx
