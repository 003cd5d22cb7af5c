package hwpx

import (
	"fmt"
	"strings"
)

// escapeText escapes characters with markup meaning in XML text content.
func escapeText(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

// escapeAttr escapes XML attribute values. Attributes are delimited with
// double quotes, so the quote must be escaped as well.
func escapeAttr(s string) string {
	return strings.ReplaceAll(escapeText(s), `"`, "&quot;")
}

// WriteMimetype returns the fixed package media type. This exact byte
// sequence is the first entry of every package.
func WriteMimetype() []byte {
	return []byte(MimeType)
}

// WriteVersionXML returns version.xml. The tagetApplication spelling is
// what Hancom Office emits and expects.
func WriteVersionXML() string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n" +
		`<hv:HCFVersion xmlns:hv="` + NSVersion + `" tagetApplication="WORDPROCESSOR"` +
		` major="5" minor="1" micro="1" buildNumber="0" os="1"` +
		` xmlVersion="1.5" application="Hancom Office Hangul"` +
		` appVersion="12.0.0.1"/>` + "\n"
}

// WriteSettingsXML returns settings.xml with default application settings.
func WriteSettingsXML() string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n" +
		`<ha:HWPApplicationSetting xmlns:ha="` + NSApp + `"` +
		` xmlns:config="urn:oasis:names:tc:opendocument:xmlns:config:1.0">` + "\n" +
		`  <ha:CaretPosition listIDRef="0" paraIDRef="0" pos="0"/>` + "\n" +
		`  <config:config-item-set name="PrintInfo">` + "\n" +
		`    <config:config-item name="PrintAutoFootNote" type="boolean">false</config:config-item>` + "\n" +
		`    <config:config-item name="PrintAutoHeadNote" type="boolean">false</config:config-item>` + "\n" +
		`    <config:config-item name="PrintCropMark" type="short">0</config:config-item>` + "\n" +
		`    <config:config-item name="BinderHoleType" type="short">0</config:config-item>` + "\n" +
		`    <config:config-item name="ZoomX" type="short">100</config:config-item>` + "\n" +
		`    <config:config-item name="ZoomY" type="short">100</config:config-item>` + "\n" +
		`  </config:config-item-set>` + "\n" +
		`</ha:HWPApplicationSetting>` + "\n"
}

// WriteContainerXML returns META-INF/container.xml pointing at the
// content manifest, preview text, and RDF metadata.
func WriteContainerXML() string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n" +
		`<ocf:container xmlns:ocf="urn:oasis:names:tc:opendocument:xmlns:container"` +
		` xmlns:hpf="http://www.hancom.co.kr/schema/2011/hpf">` + "\n" +
		`  <ocf:rootfiles>` + "\n" +
		`    <ocf:rootfile full-path="Contents/content.hpf" media-type="application/hwpml-package+xml"/>` + "\n" +
		`    <ocf:rootfile full-path="Preview/PrvText.txt" media-type="text/plain"/>` + "\n" +
		`    <ocf:rootfile full-path="META-INF/container.rdf" media-type="application/rdf+xml"/>` + "\n" +
		`  </ocf:rootfiles>` + "\n" +
		`</ocf:container>` + "\n"
}

// WriteManifestXML returns the (empty) ODF manifest.
func WriteManifestXML() string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n" +
		`<odf:manifest xmlns:odf="urn:oasis:names:tc:opendocument:xmlns:manifest:1.0"/>` + "\n"
}

// WriteContainerRDF returns META-INF/container.rdf relating the header
// and section parts to the document.
func WriteContainerRDF() string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n" +
		`<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#">` + "\n" +
		`  <rdf:Description rdf:about="">` + "\n" +
		`    <ns0:hasPart xmlns:ns0="http://www.hancom.co.kr/hwpml/2016/meta/pkg#" rdf:resource="Contents/header.xml"/>` + "\n" +
		`  </rdf:Description>` + "\n" +
		`  <rdf:Description rdf:about="Contents/header.xml">` + "\n" +
		`    <rdf:type rdf:resource="http://www.hancom.co.kr/hwpml/2016/meta/pkg#HeaderFile"/>` + "\n" +
		`  </rdf:Description>` + "\n" +
		`  <rdf:Description rdf:about="">` + "\n" +
		`    <ns0:hasPart xmlns:ns0="http://www.hancom.co.kr/hwpml/2016/meta/pkg#" rdf:resource="Contents/section0.xml"/>` + "\n" +
		`  </rdf:Description>` + "\n" +
		`  <rdf:Description rdf:about="Contents/section0.xml">` + "\n" +
		`    <rdf:type rdf:resource="http://www.hancom.co.kr/hwpml/2016/meta/pkg#SectionFile"/>` + "\n" +
		`  </rdf:Description>` + "\n" +
		`  <rdf:Description rdf:about="">` + "\n" +
		`    <rdf:type rdf:resource="http://www.hancom.co.kr/hwpml/2016/meta/pkg#Document"/>` + "\n" +
		`  </rdf:Description>` + "\n" +
		`</rdf:RDF>` + "\n"
}

// WriteContentHPF returns Contents/content.hpf. Embedded images are
// listed in the manifest with isEmbeded="1" and a BinData href.
func WriteContentHPF(images []*Image) string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="utf-8"?>` + "\n")
	sb.WriteString(`<opf:package xmlns:opf="http://www.idpf.org/2007/opf/" version="" unique-identifier="" id="">` + "\n")
	sb.WriteString(`  <opf:metadata>` + "\n")
	sb.WriteString(`    <opf:title></opf:title>` + "\n")
	sb.WriteString(`    <opf:language>ko</opf:language>` + "\n")
	sb.WriteString(`    <opf:meta name="creator" content="text"></opf:meta>` + "\n")
	sb.WriteString(`    <opf:meta name="subject" content="text"/>` + "\n")
	sb.WriteString(`    <opf:meta name="description" content="text"/>` + "\n")
	sb.WriteString(`    <opf:meta name="keyword" content="text"/>` + "\n")
	sb.WriteString(`  </opf:metadata>` + "\n")
	sb.WriteString(`  <opf:manifest>` + "\n")
	sb.WriteString(`    <opf:item id="header" href="Contents/header.xml" media-type="application/xml"/>` + "\n")
	sb.WriteString(`    <opf:item id="section0" href="Contents/section0.xml" media-type="application/xml"/>` + "\n")
	sb.WriteString(`    <opf:item id="settings" href="settings.xml" media-type="application/xml"/>` + "\n")
	for _, img := range images {
		fmt.Fprintf(&sb, `    <opf:item id="%s" href="BinData/%s.%s" media-type="%s" isEmbeded="1"/>`+"\n",
			escapeAttr(img.BinaryItemID), escapeAttr(img.BinaryItemID),
			extensionForMediaType(img.MediaType), escapeAttr(img.MediaType))
	}
	sb.WriteString(`  </opf:manifest>` + "\n")
	sb.WriteString(`  <opf:spine>` + "\n")
	sb.WriteString(`    <opf:itemref idref="header" linear="yes"/>` + "\n")
	sb.WriteString(`    <opf:itemref idref="section0" linear="yes"/>` + "\n")
	sb.WriteString(`  </opf:spine>` + "\n")
	sb.WriteString(`</opf:package>` + "\n")
	return sb.String()
}

// WritePreviewText returns Preview/PrvText.txt content. The entry must
// not be empty, so a blank document yields one space.
func WritePreviewText(text string) string {
	if text == "" {
		return " "
	}
	return text
}

// WriteHeaderXML serializes the registry into Contents/header.xml.
func WriteHeaderXML(reg *Registry) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<hh:head xmlns:hc="%s" xmlns:hh="%s" xmlns:hp="%s" version="1.5" secCnt="1">`+"\n",
		NSCore, NSHead, NSParagraph)
	sb.WriteString(`  <hh:beginNum page="1" footnote="1" endnote="1" pic="1" tbl="1" equation="1" />` + "\n")
	sb.WriteString(`  <hh:refList>` + "\n")

	fmt.Fprintf(&sb, `    <hh:fontfaces itemCnt="%d">`+"\n", len(reg.FontFaces))
	for _, ff := range reg.FontFaces {
		writeFontFace(&sb, ff)
	}
	sb.WriteString(`    </hh:fontfaces>` + "\n")

	fmt.Fprintf(&sb, `    <hh:borderFills itemCnt="%d">`+"\n", len(reg.BorderFills))
	for _, bf := range reg.BorderFills {
		writeBorderFill(&sb, bf)
	}
	sb.WriteString(`    </hh:borderFills>` + "\n")

	fmt.Fprintf(&sb, `    <hh:charProperties itemCnt="%d">`+"\n", len(reg.CharPrs))
	for _, cp := range reg.CharPrs {
		writeCharPr(&sb, cp)
	}
	sb.WriteString(`    </hh:charProperties>` + "\n")

	fmt.Fprintf(&sb, `    <hh:paraProperties itemCnt="%d">`+"\n", len(reg.ParaPrs))
	for _, pp := range reg.ParaPrs {
		writeParaPr(&sb, pp)
	}
	sb.WriteString(`    </hh:paraProperties>` + "\n")

	sb.WriteString(`    <hh:tabProperties itemCnt="2">` + "\n")
	sb.WriteString(`      <hh:tabPr id="0" autoTabLeft="0" autoTabRight="0" />` + "\n")
	sb.WriteString(`      <hh:tabPr id="1" autoTabLeft="1" autoTabRight="0" />` + "\n")
	sb.WriteString(`    </hh:tabProperties>` + "\n")

	writeNumberings(&sb)
	writeBullets(&sb)

	sb.WriteString(`  </hh:refList>` + "\n")

	fmt.Fprintf(&sb, `  <hh:styles itemCnt="%d">`+"\n", len(reg.Styles))
	for _, st := range reg.Styles {
		fmt.Fprintf(&sb, `      <hh:style id="%d" type="%s" name="%s" engName="%s"`+
			` paraPrIDRef="%d" charPrIDRef="%d" nextStyleIDRef="%d" langID="%d" lockForm="0" />`+"\n",
			st.ID, st.Type, escapeAttr(st.Name), escapeAttr(st.EngName),
			st.ParaPrIDRef, st.CharPrIDRef, st.NextStyleIDRef, st.LangID)
	}
	sb.WriteString(`  </hh:styles>` + "\n")

	sb.WriteString(`</hh:head>`)
	return sb.String()
}

func writeFontFace(sb *strings.Builder, ff FontFace) {
	fmt.Fprintf(sb, `      <hh:fontface lang="%s" fontCnt="%d">`+"\n", ff.Lang, len(ff.Fonts))
	for _, f := range ff.Fonts {
		fmt.Fprintf(sb, `        <hh:font id="%d" face="%s" type="%s" isEmbedded="0" />`+"\n",
			f.ID, escapeAttr(f.Face), f.Type)
	}
	sb.WriteString(`      </hh:fontface>` + "\n")
}

func writeBorderFill(sb *strings.Builder, bf BorderFill) {
	fmt.Fprintf(sb, `      <hh:borderFill id="%d" threeD="0" shadow="0" centerLine="NONE" breakCellSeparateLine="0">`+"\n", bf.ID)
	sb.WriteString(`        <hh:slash type="NONE" Crooked="0" isCounter="0" />` + "\n")
	sb.WriteString(`        <hh:backSlash type="NONE" Crooked="0" isCounter="0" />` + "\n")
	fmt.Fprintf(sb, `        <hh:leftBorder type="%s" width="%s" color="%s" />`+"\n",
		bf.Left.Type, bf.Left.Width, escapeAttr(bf.Left.Color))
	fmt.Fprintf(sb, `        <hh:rightBorder type="%s" width="%s" color="%s" />`+"\n",
		bf.Right.Type, bf.Right.Width, escapeAttr(bf.Right.Color))
	fmt.Fprintf(sb, `        <hh:topBorder type="%s" width="%s" color="%s" />`+"\n",
		bf.Top.Type, bf.Top.Width, escapeAttr(bf.Top.Color))
	fmt.Fprintf(sb, `        <hh:bottomBorder type="%s" width="%s" color="%s" />`+"\n",
		bf.Bottom.Type, bf.Bottom.Width, escapeAttr(bf.Bottom.Color))
	sb.WriteString(`        <hh:diagonal type="SOLID" width="0.1 mm" color="#000000" />` + "\n")
	fill := bf.FillColor
	if fill == "" {
		fill = "none"
	}
	sb.WriteString(`        <hc:fillBrush>` + "\n")
	fmt.Fprintf(sb, `          <hc:winBrush faceColor="%s" hatchColor="#000000" alpha="0" />`+"\n", escapeAttr(fill))
	sb.WriteString(`        </hc:fillBrush>` + "\n")
	sb.WriteString(`      </hh:borderFill>` + "\n")
}

func writeCharPr(sb *strings.Builder, cp CharPr) {
	fmt.Fprintf(sb, `      <hh:charPr id="%d" height="%d" textColor="%s" shadeColor="%s"`+
		` useFontSpace="0" useKerning="0" symMark="NONE" borderFillIDRef="%d">`+"\n",
		cp.ID, cp.Height, escapeAttr(cp.TextColor), escapeAttr(cp.ShadeColor), cp.BorderFillIDRef)
	fr := cp.FontRef
	fmt.Fprintf(sb, `        <hh:fontRef hangul="%d" latin="%d" hanja="%d" japanese="%d" other="%d" symbol="%d" user="%d" />`+"\n",
		fr.Hangul, fr.Latin, fr.Hanja, fr.Japanese, fr.Other, fr.Symbol, fr.User)
	sb.WriteString(`        <hh:ratio hangul="100" latin="100" hanja="100" japanese="100" other="100" symbol="100" user="100" />` + "\n")
	sb.WriteString(`        <hh:spacing hangul="0" latin="0" hanja="0" japanese="0" other="0" symbol="0" user="0" />` + "\n")
	sb.WriteString(`        <hh:relSz hangul="100" latin="100" hanja="100" japanese="100" other="100" symbol="100" user="100" />` + "\n")
	fmt.Fprintf(sb, `        <hh:offset hangul="%d" latin="%d" hanja="%d" japanese="%d" other="%d" symbol="%d" user="%d" />`+"\n",
		cp.Offset, cp.Offset, cp.Offset, cp.Offset, cp.Offset, cp.Offset, cp.Offset)
	if cp.Bold {
		sb.WriteString(`        <hh:bold />` + "\n")
	}
	if cp.Italic {
		sb.WriteString(`        <hh:italic />` + "\n")
	}
	fmt.Fprintf(sb, `        <hh:underline type="%s" shape="SOLID" color="%s" />`+"\n",
		cp.UnderlineType, escapeAttr(cp.UnderlineColor))
	fmt.Fprintf(sb, `        <hh:strikeout shape="%s" color="#000000" />`+"\n", cp.Strikeout)
	sb.WriteString(`        <hh:outline type="NONE" />` + "\n")
	sb.WriteString(`        <hh:shadow type="NONE" color="#C0C0C0" offsetX="5" offsetY="5" />` + "\n")
	sb.WriteString(`      </hh:charPr>` + "\n")
}

func writeParaPr(sb *strings.Builder, pp ParaPr) {
	fmt.Fprintf(sb, `      <hh:paraPr id="%d" tabPrIDRef="%d" condense="0" fontLineHeight="0"`+
		` snapToGrid="1" suppressLineNumbers="0" checked="0">`+"\n", pp.ID, pp.TabPrIDRef)
	fmt.Fprintf(sb, `        <hh:align horizontal="%s" vertical="BASELINE" />`+"\n", pp.AlignHorizontal)
	fmt.Fprintf(sb, `        <hh:heading type="%s" idRef="%d" level="%d" />`+"\n",
		pp.HeadingType, pp.HeadingIDRef, pp.HeadingLevel)
	fmt.Fprintf(sb, `        <hh:breakSetting breakLatinWord="KEEP_WORD" breakNonLatinWord="BREAK_WORD"`+
		` widowOrphan="0" keepWithNext="%d" keepLines="%d" pageBreakBefore="0" lineWrap="BREAK" />`+"\n",
		pp.KeepWithNext, pp.KeepLines)
	sb.WriteString(`        <hh:autoSpacing eAsianEng="0" eAsianNum="0" />` + "\n")

	// Viewer honors the HwpUnitChar branch; the default branch mirrors it
	// so both namespace resolutions see identical geometry.
	margins := func() {
		sb.WriteString(`            <hh:margin>` + "\n")
		fmt.Fprintf(sb, `              <hc:intent value="%d" unit="HWPUNIT" />`+"\n", pp.MarginIntent)
		fmt.Fprintf(sb, `              <hc:left value="%d" unit="HWPUNIT" />`+"\n", pp.MarginLeft)
		fmt.Fprintf(sb, `              <hc:right value="%d" unit="HWPUNIT" />`+"\n", pp.MarginRight)
		fmt.Fprintf(sb, `              <hc:prev value="%d" unit="HWPUNIT" />`+"\n", pp.MarginPrev)
		fmt.Fprintf(sb, `              <hc:next value="%d" unit="HWPUNIT" />`+"\n", pp.MarginNext)
		sb.WriteString(`            </hh:margin>` + "\n")
		fmt.Fprintf(sb, `            <hh:lineSpacing type="%s" value="%d" unit="HWPUNIT" />`+"\n",
			pp.LineSpacingType, pp.LineSpacingValue)
	}
	sb.WriteString(`        <hp:switch>` + "\n")
	sb.WriteString(`          <hp:case hp:required-namespace="http://www.hancom.co.kr/hwpml/2016/HwpUnitChar">` + "\n")
	margins()
	sb.WriteString(`          </hp:case>` + "\n")
	sb.WriteString(`          <hp:default>` + "\n")
	margins()
	sb.WriteString(`          </hp:default>` + "\n")
	sb.WriteString(`        </hp:switch>` + "\n")

	fmt.Fprintf(sb, `        <hh:border borderFillIDRef="%d" offsetLeft="400" offsetRight="400"`+
		` offsetTop="100" offsetBottom="100" connect="0" ignoreMargin="0" />`+"\n", pp.BorderFillIDRef)
	sb.WriteString(`      </hh:paraPr>` + "\n")
}

func writeNumberings(sb *strings.Builder) {
	sb.WriteString(`    <hh:numberings itemCnt="1">` + "\n")
	sb.WriteString(`      <hh:numbering id="1" start="0">` + "\n")
	for lvl := 1; lvl <= 10; lvl++ {
		fmt.Fprintf(sb, `        <hh:paraHead start="1" level="%d" align="LEFT" useInstWidth="1"`+
			` autoIndent="0" widthAdjust="0" textOffsetType="PERCENT" textOffset="35"`+
			` numFormat="DIGIT" charPrIDRef="1" checkable="0" />`+"\n", lvl)
	}
	sb.WriteString(`      </hh:numbering>` + "\n")
	sb.WriteString(`    </hh:numberings>` + "\n")
}

func writeBullets(sb *strings.Builder) {
	sb.WriteString(`    <hh:bullets itemCnt="1">` + "\n")
	sb.WriteString(`      <hh:bullet id="1" char="&#x25CF;" checkedChar="&#x25CF;">` + "\n")
	for lvl := 1; lvl <= 10; lvl++ {
		fmt.Fprintf(sb, `        <hh:paraHead start="1" level="%d" align="LEFT" useInstWidth="1"`+
			` autoIndent="1" widthAdjust="0" textOffsetType="PERCENT" textOffset="50"`+
			` numFormat="BULLET" charPrIDRef="0" checkable="0" />`+"\n", lvl)
	}
	sb.WriteString(`      </hh:bullet>` + "\n")
	sb.WriteString(`    </hh:bullets>` + "\n")
}

// WriteSectionXML serializes the document body into Contents/section0.xml.
// The section properties are carried by the first run of the first
// paragraph; when the leading element is a table or image, an empty
// paragraph is synthesized to hold them.
func WriteSectionXML(doc *Document) string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="utf-8"?>` + "\n")
	fmt.Fprintf(&sb, `<hs:sec xmlns:hp="%s" xmlns:hs="%s" xmlns:hc="%s">`+"\n",
		NSParagraph, NSSection, NSCore)

	elements := doc.Elements
	if len(elements) == 0 {
		elements = []Element{&Paragraph{ParaPrIDRef: ParaPrBody, StyleIDRef: StyleBody}}
	}

	for i, elem := range elements {
		first := i == 0
		switch el := elem.(type) {
		case *Paragraph:
			writeParagraph(&sb, doc, el, first)
			sb.WriteString("\n")
		case *Table:
			if first {
				writeParagraph(&sb, doc, &Paragraph{ParaPrIDRef: ParaPrBody, StyleIDRef: StyleBody}, true)
				sb.WriteString("\n")
			}
			writeTableParagraph(&sb, doc, el)
			sb.WriteString("\n")
		case *Image:
			if first {
				writeParagraph(&sb, doc, &Paragraph{ParaPrIDRef: ParaPrBody, StyleIDRef: StyleBody}, true)
				sb.WriteString("\n")
			}
			writeImageParagraph(&sb, doc, el)
			sb.WriteString("\n")
		}
	}

	sb.WriteString(`</hs:sec>`)
	return sb.String()
}

func boolAttr(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func writeParagraph(sb *strings.Builder, doc *Document, p *Paragraph, first bool) {
	fmt.Fprintf(sb, `<hp:p paraPrIDRef="%d" styleIDRef="%d" pageBreak="%s" columnBreak="0" merged="0">`,
		p.ParaPrIDRef, p.StyleIDRef, boolAttr(p.PageBreak))

	if len(p.Runs) == 0 && first {
		sb.WriteString(`<hp:run charPrIDRef="0">`)
		writeSectionOpeners(sb, doc)
		sb.WriteString(`</hp:run>`)
	}
	for i, run := range p.Runs {
		fmt.Fprintf(sb, `<hp:run charPrIDRef="%d">`, run.CharPrIDRef)
		if first && i == 0 {
			writeSectionOpeners(sb, doc)
		}
		fmt.Fprintf(sb, `<hp:t>%s</hp:t>`, escapeText(run.Text))
		sb.WriteString(`</hp:run>`)
	}

	sb.WriteString(`</hp:p>`)
}

// writeSectionOpeners emits the secPr, header/footer controls, and the
// single-column layout control carried by the document's first run.
func writeSectionOpeners(sb *strings.Builder, doc *Document) {
	writeSecPr(sb, doc.Page)
	if doc.Header != nil {
		writeHeaderFooterCtrl(sb, doc, "header", doc.Header)
	}
	if doc.Footer != nil {
		writeHeaderFooterCtrl(sb, doc, "footer", doc.Footer)
	}
	fmt.Fprintf(sb, "\n      <hp:ctrl xmlns:hp=\"%s\">\n", NSParagraph)
	sb.WriteString(`        <hp:colPr id="" type="NEWSPAPER" layout="LEFT" colCount="1" sameSz="1" sameGap="0" />` + "\n")
	sb.WriteString(`      </hp:ctrl>` + "\n    ")
}

func writeSecPr(sb *strings.Builder, ps PageSetup) {
	fmt.Fprintf(sb, `<hp:secPr xmlns:hp="%s" id="" textDirection="HORIZONTAL" spaceColumns="1134"`+
		` tabStop="8000" tabStopVal="4000" tabStopUnit="HWPUNIT" outlineShapeIDRef="1"`+
		` memoShapeIDRef="1" textVerticalWidthHead="0" masterPageCnt="0">`+"\n", NSParagraph)
	sb.WriteString(`        <hp:grid lineGrid="0" charGrid="0" wonggojiFormat="0" />` + "\n")
	sb.WriteString(`        <hp:startNum pageStartsOn="BOTH" page="0" pic="0" tbl="0" equation="0" />` + "\n")
	sb.WriteString(`        <hp:visibility hideFirstHeader="0" hideFirstFooter="0" hideFirstMasterPage="0"` +
		` border="SHOW_ALL" fill="SHOW_ALL" hideFirstPageNum="0" hideFirstEmptyLine="0" showLineNumber="0" />` + "\n")
	sb.WriteString(`        <hp:lineNumberShape restartType="0" countBy="0" distance="0" startNumber="0" />` + "\n")
	fmt.Fprintf(sb, `        <hp:pagePr landscape="%s" width="%d" height="%d" gutterType="LEFT_ONLY">`+"\n",
		ps.Orientation, ps.Width, ps.Height)
	fmt.Fprintf(sb, `          <hp:margin header="%d" footer="%d" gutter="%d" left="%d" right="%d" top="%d" bottom="%d" />`+"\n",
		ps.MarginHeader, ps.MarginFooter, ps.MarginGutter,
		ps.MarginLeft, ps.MarginRight, ps.MarginTop, ps.MarginBottom)
	sb.WriteString(`        </hp:pagePr>` + "\n")
	sb.WriteString(`        <hp:footNotePr>` + "\n")
	sb.WriteString(`          <hp:autoNumFormat type="DIGIT" userChar="" prefixChar="" suffixChar="" supscript="1" />` + "\n")
	sb.WriteString(`          <hp:noteLine length="-1" type="SOLID" width="0.25 mm" color="#000000" />` + "\n")
	sb.WriteString(`          <hp:noteSpacing betweenNotes="283" belowLine="0" aboveLine="1000" />` + "\n")
	sb.WriteString(`          <hp:numbering type="CONTINUOUS" newNum="1" />` + "\n")
	sb.WriteString(`          <hp:placement place="EACH_COLUMN" beneathText="0" />` + "\n")
	sb.WriteString(`        </hp:footNotePr>` + "\n")
	sb.WriteString(`        <hp:endNotePr>` + "\n")
	sb.WriteString(`          <hp:autoNumFormat type="ROMAN_SMALL" userChar="" prefixChar="" suffixChar="" supscript="1" />` + "\n")
	sb.WriteString(`          <hp:noteLine length="-1" type="SOLID" width="0.25 mm" color="#000000" />` + "\n")
	sb.WriteString(`          <hp:noteSpacing betweenNotes="0" belowLine="0" aboveLine="1000" />` + "\n")
	sb.WriteString(`          <hp:numbering type="CONTINUOUS" newNum="1" />` + "\n")
	sb.WriteString(`          <hp:placement place="END_OF_DOCUMENT" beneathText="0" />` + "\n")
	sb.WriteString(`        </hp:endNotePr>` + "\n")
	for _, pageType := range []string{"BOTH", "EVEN", "ODD"} {
		fmt.Fprintf(sb, `        <hp:pageBorderFill type="%s" borderFillIDRef="1" textBorder="PAPER"`+
			` headerInside="0" footerInside="0" fillArea="PAPER">`+"\n", pageType)
		sb.WriteString(`          <hp:offset left="1417" right="1417" top="1417" bottom="1417" />` + "\n")
		sb.WriteString(`        </hp:pageBorderFill>` + "\n")
	}
	sb.WriteString(`      </hp:secPr>`)
}

func writeHeaderFooterCtrl(sb *strings.Builder, doc *Document, kind string, hf *HeaderFooter) {
	fmt.Fprintf(sb, "\n      <hp:ctrl xmlns:hp=\"%s\">\n", NSParagraph)
	fmt.Fprintf(sb, `        <hp:%s id="%d" applyPageType="%s">`+"\n", kind, doc.ids.Next(), hf.Pages)
	fmt.Fprintf(sb, `          <hp:subList id="%d" textDirection="HORIZONTAL" lineWrap="BREAK" vertAlign="TOP"`+
		` linkListIDRef="0" linkListNextIDRef="0" textWidth="0" textHeight="0" hasTextRef="0" hasNumRef="0">`+"\n", doc.ids.Next())
	for _, p := range hf.Paragraphs {
		sb.WriteString("            ")
		writeParagraph(sb, doc, p, false)
		sb.WriteString("\n")
	}
	sb.WriteString(`          </hp:subList>` + "\n")
	fmt.Fprintf(sb, `        </hp:%s>`+"\n", kind)
	sb.WriteString(`      </hp:ctrl>` + "\n    ")
}

func writeTableParagraph(sb *strings.Builder, doc *Document, t *Table) {
	fmt.Fprintf(sb, `<hp:p paraPrIDRef="%d" styleIDRef="%d" pageBreak="0" columnBreak="0" merged="0">`,
		ParaPrBody, StyleBody)
	sb.WriteString(`<hp:run charPrIDRef="0">`)
	fmt.Fprintf(sb, `<hp:tbl id="%d" zOrder="0" numberingType="TABLE" textWrap="TOP_AND_BOTTOM"`+
		` textFlow="BOTH_SIDES" lock="0" dropcapstyle="None" pageBreak="CELL" repeatHeader="1"`+
		` rowCnt="%d" colCnt="%d" cellSpacing="%d" borderFillIDRef="%d" noAdjust="0">`,
		doc.ids.Next(), t.RowCnt, t.ColCnt, t.CellSpacing, t.BorderFillIDRef)
	fmt.Fprintf(sb, `<hp:sz width="%d" widthRelTo="ABSOLUTE" height="5000" heightRelTo="ABSOLUTE" protect="0"/>`, t.Width)
	sb.WriteString(`<hp:pos treatAsChar="0" affectLSpacing="0" flowWithText="1" allowOverlap="0"` +
		` holdAnchorAndSO="0" vertRelTo="PARA" horzRelTo="COLUMN" vertAlign="TOP" horzAlign="LEFT"` +
		` vertOffset="0" horzOffset="0"/>`)
	sb.WriteString(`<hp:outMargin left="0" right="0" top="0" bottom="1417"/>`)
	sb.WriteString(`<hp:inMargin left="510" right="510" top="141" bottom="141"/>`)

	for _, row := range t.Rows {
		sb.WriteString(`<hp:tr>`)
		for _, cell := range row.Cells {
			fmt.Fprintf(sb, `<hp:tc name="" header="%s" hasMargin="0" protect="0" editable="0" dirty="0" borderFillIDRef="%d">`,
				boolAttr(cell.Header), cell.BorderFillIDRef)
			fmt.Fprintf(sb, `<hp:subList id="%d" textDirection="HORIZONTAL" lineWrap="BREAK" vertAlign="TOP"`+
				` linkListIDRef="0" linkListNextIDRef="0" textWidth="0" textHeight="0" hasTextRef="0" hasNumRef="0">`,
				doc.ids.Next())
			for _, p := range cell.Paragraphs {
				writeParagraph(sb, doc, p, false)
			}
			sb.WriteString(`</hp:subList>`)
			fmt.Fprintf(sb, `<hp:cellAddr colAddr="%d" rowAddr="%d"/>`, cell.ColAddr, cell.RowAddr)
			fmt.Fprintf(sb, `<hp:cellSpan colSpan="%d" rowSpan="%d"/>`, cell.ColSpan, cell.RowSpan)
			fmt.Fprintf(sb, `<hp:cellSz width="%d" height="%d"/>`, cell.Width, cell.Height)
			sb.WriteString(`<hp:cellMargin left="510" right="510" top="141" bottom="141"/>`)
			sb.WriteString(`</hp:tc>`)
		}
		sb.WriteString(`</hp:tr>`)
	}

	sb.WriteString(`</hp:tbl>`)
	sb.WriteString(`</hp:run>`)
	sb.WriteString(`</hp:p>`)
}

func writeImageParagraph(sb *strings.Builder, doc *Document, img *Image) {
	picID := doc.ids.Next()
	fmt.Fprintf(sb, `<hp:p paraPrIDRef="%d" styleIDRef="%d" pageBreak="0" columnBreak="0" merged="0">`,
		ParaPrBody, StyleBody)
	sb.WriteString(`<hp:run charPrIDRef="0">`)
	fmt.Fprintf(sb, `<hp:pic id="%d" zOrder="0" numberingType="PICTURE" textWrap="TOP_AND_BOTTOM"`+
		` textFlow="BOTH_SIDES" lock="0" dropcapstyle="None" href="" groupLevel="0" instid="%d" reverse="0">`,
		picID, picID)
	sb.WriteString(`<hp:offset x="0" y="0"/>`)
	fmt.Fprintf(sb, `<hp:orgSz width="%d" height="%d"/>`, img.Width, img.Height)
	fmt.Fprintf(sb, `<hp:curSz width="%d" height="%d"/>`, img.Width, img.Height)
	sb.WriteString(`<hp:flip horizontal="0" vertical="0"/>`)
	fmt.Fprintf(sb, `<hp:rotationInfo angle="0" centerX="%d" centerY="%d" rotateimage="1"/>`,
		img.Width/2, img.Height/2)
	sb.WriteString(`<hp:renderingInfo>` +
		`<hc:transMatrix e1="1" e2="0" e3="0" e4="0" e5="1" e6="0"/>` +
		`<hc:scaMatrix e1="1" e2="0" e3="0" e4="0" e5="1" e6="0"/>` +
		`<hc:rotMatrix e1="1" e2="0" e3="0" e4="0" e5="1" e6="0"/>` +
		`</hp:renderingInfo>`)
	fmt.Fprintf(sb, `<hc:img binaryItemIDRef="%s" bright="0" contrast="0" effect="REAL_PIC" alpha="0"/>`,
		escapeAttr(img.BinaryItemID))
	fmt.Fprintf(sb, `<hp:imgRect><hc:pt0 x="0" y="0"/><hc:pt1 x="%d" y="0"/><hc:pt2 x="%d" y="%d"/><hc:pt3 x="0" y="%d"/></hp:imgRect>`,
		img.Width, img.Width, img.Height, img.Height)
	fmt.Fprintf(sb, `<hp:imgClip left="0" right="%d" top="0" bottom="%d"/>`, img.Width, img.Height)
	sb.WriteString(`<hp:inMargin left="0" right="0" top="0" bottom="0"/>`)
	fmt.Fprintf(sb, `<hp:imgDim dimwidth="%d" dimheight="%d"/>`, img.Width, img.Height)
	fmt.Fprintf(sb, `<hp:sz width="%d" widthRelTo="ABSOLUTE" height="%d" heightRelTo="ABSOLUTE" protect="0"/>`,
		img.Width, img.Height)
	sb.WriteString(`<hp:pos treatAsChar="1" affectLSpacing="0" flowWithText="1" allowOverlap="0"` +
		` holdAnchorAndSO="0" vertRelTo="PARA" horzRelTo="COLUMN" vertAlign="TOP" horzAlign="LEFT"` +
		` vertOffset="0" horzOffset="0"/>`)
	sb.WriteString(`<hp:outMargin left="0" right="0" top="0" bottom="0"/>`)
	sb.WriteString(`</hp:pic>`)
	sb.WriteString(`</hp:run>`)
	sb.WriteString(`</hp:p>`)
}
