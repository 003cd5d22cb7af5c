package hwpx

import "math"

// OWPML namespace URIs. HWPX consumers are strict about these exact values
// and about the prefixes used when serializing.
const (
	NSHead      = "http://www.hancom.co.kr/hwpml/2011/head"
	NSParagraph = "http://www.hancom.co.kr/hwpml/2011/paragraph"
	NSSection   = "http://www.hancom.co.kr/hwpml/2011/section"
	NSCore      = "http://www.hancom.co.kr/hwpml/2011/core"
	NSVersion   = "http://www.hancom.co.kr/hwpml/2011/version"
	NSApp       = "http://www.hancom.co.kr/hwpml/2011/app"
)

// MimeType is the fixed content of the mimetype package entry.
const MimeType = "application/hwp+zip"

// Unit conversions. HWPUNIT is the document's native length unit:
// 1 pt = 100 HWPUNIT, 1 inch = 7200 HWPUNIT, 1 mm = 283.46 HWPUNIT.
const (
	UnitPerPt   = 100
	UnitPerMm   = 283.46
	UnitPerInch = 7200
)

// PtToUnit converts points to HWPUNIT.
func PtToUnit(pt float64) int {
	return int(math.Round(pt * UnitPerPt))
}

// MmToUnit converts millimeters to HWPUNIT.
func MmToUnit(mm float64) int {
	return int(math.Round(mm * UnitPerMm))
}

// InchToUnit converts inches to HWPUNIT.
func InchToUnit(in float64) int {
	return int(math.Round(in * UnitPerInch))
}

// UnitToPt converts HWPUNIT back to points.
func UnitToPt(u int) float64 {
	return float64(u) / UnitPerPt
}

// Default page geometry (A4 portrait) in HWPUNIT.
const (
	DefaultPageWidth  = 59530 // 210mm
	DefaultPageHeight = 84190 // 297mm

	DefaultMarginLeft   = 8504
	DefaultMarginRight  = 8504
	DefaultMarginTop    = 5668
	DefaultMarginBottom = 4252
	DefaultMarginHeader = 4252
	DefaultMarginFooter = 4252
	DefaultMarginGutter = 0
)

// Default font sizes in HWPUNIT (1000 = 10pt).
const (
	FontSizeBody  = 1000
	FontSizeH1    = 2200
	FontSizeH2    = 1800
	FontSizeH3    = 1400
	FontSizeH4    = 1200
	FontSizeH5    = 1100
	FontSizeH6    = 1000
	FontSizeCode  = 900
	FontSizeTable = 900
)

// Default colors.
const (
	ColorBlack           = "#000000"
	ColorHeading         = "#323E4F"
	ColorCodeText        = "#E74C3C"
	ColorCodeBg          = "#F5F5F5"
	ColorCodeBlockText   = "#333333"
	ColorCodeBlockBg     = "#F8F8F8"
	ColorTableHeaderText = "#FFFFFF"
	ColorTableHeaderBg   = "#4472C4"
	ColorLink            = "#0000FF"
	ColorRule            = "#BFBFBF"
	ColorQuote           = "#BFBFBF"
)

// Default line spacing percentages.
const (
	LineSpacingDefault = 160
	LineSpacingCode    = 130
	LineSpacingTable   = 130
)

// Default font faces.
const (
	FontDefault = "나눔고딕"
	FontCode    = "나눔고딕코딩"
)

// Built-in charPr IDs. These entries always exist in a fresh registry,
// in exactly this order, before any custom additions.
const (
	CharPrBody = iota
	CharPrBold
	CharPrItalic
	CharPrBoldItalic
	CharPrH1
	CharPrH2
	CharPrH3
	CharPrH4
	CharPrH5
	CharPrH6
	CharPrInlineCode
	CharPrCodeBlock
	CharPrTableHeader
	CharPrTableBody
	CharPrLink
	CharPrStrikethrough
	CharPrSuperscript
	CharPrSubscript
)

// Built-in paraPr IDs.
const (
	ParaPrBody = iota
	ParaPrH1
	ParaPrH2
	ParaPrH3
	ParaPrH4
	ParaPrH5
	ParaPrH6
	ParaPrCode
	ParaPrBullet
	ParaPrTable
	ParaPrOrdered
	ParaPrBulletL2
	ParaPrBulletL3
	ParaPrOrderedL2
	ParaPrOrderedL3
	ParaPrRule
	ParaPrBlockQuote
)

// Built-in style IDs.
const (
	StyleBody = iota
	StyleH1
	StyleH2
	StyleH3
	StyleH4
	StyleH5
	StyleH6
)

// Built-in borderFill IDs. The consumer requires borderFill IDs to be
// 1-based and contiguous with no gaps.
const (
	BorderFillNone = iota + 1
	BorderFillDefault
	BorderFillTable
	BorderFillTableHeader
	BorderFillCodeBlock
	BorderFillCodeInline
	BorderFillRule
	BorderFillBlockQuote
)

// UnitsPerPixel converts image pixel dimensions to HWPUNIT when no
// explicit size is given.
const UnitsPerPixel = 75
