package hwpx

// FontRef selects a font table entry per script group.
type FontRef struct {
	Hangul   int
	Latin    int
	Hanja    int
	Japanese int
	Other    int
	Symbol   int
	User     int
}

// codeFontRef points every script group at the code font (table entry 1).
func codeFontRef() FontRef {
	return FontRef{Hangul: 1, Latin: 1, Hanja: 1, Japanese: 1, Other: 1, Symbol: 1, User: 1}
}

// Font is a single font table entry within a FontFace.
type Font struct {
	ID   int
	Face string
	Type string
}

// FontFace groups the fonts registered for one language tag.
type FontFace struct {
	Lang  string
	Fonts []Font
}

// BorderEdge describes one edge of a BorderFill.
type BorderEdge struct {
	Type  string
	Width string
	Color string
}

func noEdge() BorderEdge    { return BorderEdge{Type: "NONE", Width: "0.1 mm", Color: ColorBlack} }
func solidEdge() BorderEdge { return BorderEdge{Type: "SOLID", Width: "0.12 mm", Color: ColorBlack} }

// BorderFill is a border-and-background definition referenced by tables,
// cells, and paragraphs. IDs are 1-based and must stay contiguous.
type BorderFill struct {
	ID     int
	Left   BorderEdge
	Right  BorderEdge
	Top    BorderEdge
	Bottom BorderEdge
	// FillColor is a hex color, or "none" for no fill.
	FillColor string
}

// CharPr is a character-level formatting record referenced by runs.
type CharPr struct {
	ID              int
	Height          int // HWPUNIT, 1000 = 10pt
	TextColor       string
	ShadeColor      string
	BorderFillIDRef int
	FontRef         FontRef
	Bold            bool
	Italic          bool
	UnderlineType   string
	UnderlineColor  string
	Strikeout       string
	// Offset is the vertical offset in percent: positive for superscript,
	// negative for subscript.
	Offset int
}

// ParaPr is a paragraph-level formatting record referenced by paragraphs.
type ParaPr struct {
	ID               int
	TabPrIDRef       int
	AlignHorizontal  string
	HeadingType      string
	HeadingIDRef     int
	HeadingLevel     int
	KeepWithNext     int
	KeepLines        int
	MarginIntent     int
	MarginLeft       int
	MarginRight      int
	MarginPrev       int
	MarginNext       int
	LineSpacingType  string
	LineSpacingValue int
	BorderFillIDRef  int
}

// Style is a named bundle of one ParaPr and one CharPr.
type Style struct {
	ID             int
	Type           string
	Name           string
	EngName        string
	ParaPrIDRef    int
	CharPrIDRef    int
	NextStyleIDRef int
	LangID         int
}

// StyleConfig carries the override knobs for the default registry. All
// font sizes are HWPUNIT (1000 = 10pt), colors are hex strings, line
// spacing is a percentage.
//
// Values are not validated; arbitrary strings pass through to escaping at
// serialization time. This matches the reference behavior.
type StyleConfig struct {
	FontBody string
	FontCode string

	FontSizeBody  int
	FontSizeH1    int
	FontSizeH2    int
	FontSizeH3    int
	FontSizeH4    int
	FontSizeH5    int
	FontSizeH6    int
	FontSizeCode  int
	FontSizeTable int

	ColorBody            string
	ColorHeading         string
	ColorCodeText        string
	ColorCodeBg          string
	ColorCodeBlockText   string
	ColorCodeBlockBg     string
	ColorTableHeaderText string
	ColorTableHeaderBg   string

	LineSpacing      int
	LineSpacingCode  int
	LineSpacingTable int
}

// DefaultStyleConfig returns the stock appearance settings.
func DefaultStyleConfig() StyleConfig {
	return StyleConfig{
		FontBody:             FontDefault,
		FontCode:             FontCode,
		FontSizeBody:         FontSizeBody,
		FontSizeH1:           FontSizeH1,
		FontSizeH2:           FontSizeH2,
		FontSizeH3:           FontSizeH3,
		FontSizeH4:           FontSizeH4,
		FontSizeH5:           FontSizeH5,
		FontSizeH6:           FontSizeH6,
		FontSizeCode:         FontSizeCode,
		FontSizeTable:        FontSizeTable,
		ColorBody:            ColorBlack,
		ColorHeading:         ColorHeading,
		ColorCodeText:        ColorCodeText,
		ColorCodeBg:          ColorCodeBg,
		ColorCodeBlockText:   ColorCodeBlockText,
		ColorCodeBlockBg:     ColorCodeBlockBg,
		ColorTableHeaderText: ColorTableHeaderText,
		ColorTableHeaderBg:   ColorTableHeaderBg,
		LineSpacing:          LineSpacingDefault,
		LineSpacingCode:      LineSpacingCode,
		LineSpacingTable:     LineSpacingTable,
	}
}

// Registry holds the insertion-ordered style tables serialized into
// header.xml. Content references entries only by integer ID; the registry
// itself never checks that a referenced ID exists.
type Registry struct {
	FontFaces   []FontFace
	BorderFills []BorderFill
	CharPrs     []CharPr
	ParaPrs     []ParaPr
	Styles      []Style

	config StyleConfig
}

// NewRegistry builds the default registry: all built-in charPr, paraPr,
// style, and borderFill entries in their fixed ID order.
func NewRegistry() *Registry {
	r := &Registry{}
	r.ApplyConfig(DefaultStyleConfig())
	return r
}

// ApplyConfig rebuilds every table from cfg. Changing one knob re-derives
// all dependent entries (the heading color feeds all six heading charPrs,
// the fonts feed every font face) without disturbing entry order or IDs.
func (r *Registry) ApplyConfig(cfg StyleConfig) {
	r.config = cfg
	r.FontFaces = defaultFontFaces(cfg)
	r.BorderFills = defaultBorderFills(cfg)
	r.CharPrs = defaultCharPrs(cfg)
	r.ParaPrs = defaultParaPrs(cfg)
	r.Styles = defaultStyles()
}

// Config returns the configuration the registry was last built from.
func (r *Registry) Config() StyleConfig {
	return r.config
}

// AddBorderFill appends a custom border fill, assigning the next
// contiguous 1-based ID, and returns that ID.
func (r *Registry) AddBorderFill(bf BorderFill) int {
	bf.ID = len(r.BorderFills) + 1
	r.BorderFills = append(r.BorderFills, bf)
	return bf.ID
}

// AddCharPr appends a custom character property and returns its ID.
func (r *Registry) AddCharPr(cp CharPr) int {
	cp.ID = len(r.CharPrs)
	r.CharPrs = append(r.CharPrs, cp)
	return cp.ID
}

// AddParaPr appends a custom paragraph property and returns its ID.
func (r *Registry) AddParaPr(pp ParaPr) int {
	pp.ID = len(r.ParaPrs)
	r.ParaPrs = append(r.ParaPrs, pp)
	return pp.ID
}

// AddStyle appends a custom named style and returns its ID.
func (r *Registry) AddStyle(s Style) int {
	s.ID = len(r.Styles)
	r.Styles = append(r.Styles, s)
	return s.ID
}

var fontFaceLangs = []string{"HANGUL", "LATIN", "HANJA", "JAPANESE", "OTHER", "SYMBOL", "USER"}

func defaultFontFaces(cfg StyleConfig) []FontFace {
	faces := make([]FontFace, 0, len(fontFaceLangs))
	for _, lang := range fontFaceLangs {
		faces = append(faces, FontFace{
			Lang: lang,
			Fonts: []Font{
				{ID: 0, Face: cfg.FontBody, Type: "TTF"},
				{ID: 1, Face: cfg.FontCode, Type: "TTF"},
			},
		})
	}
	return faces
}

func defaultBorderFills(cfg StyleConfig) []BorderFill {
	plain := BorderFill{
		Left: noEdge(), Right: noEdge(), Top: noEdge(), Bottom: noEdge(),
		FillColor: "none",
	}

	none := plain
	none.ID = BorderFillNone

	def := plain
	def.ID = BorderFillDefault

	table := BorderFill{
		ID:   BorderFillTable,
		Left: solidEdge(), Right: solidEdge(), Top: solidEdge(), Bottom: solidEdge(),
		FillColor: "none",
	}

	tableHeader := table
	tableHeader.ID = BorderFillTableHeader
	tableHeader.FillColor = cfg.ColorTableHeaderBg

	codeBlock := plain
	codeBlock.ID = BorderFillCodeBlock
	codeBlock.FillColor = cfg.ColorCodeBlockBg

	codeInline := plain
	codeInline.ID = BorderFillCodeInline
	codeInline.FillColor = cfg.ColorCodeBg

	rule := plain
	rule.ID = BorderFillRule
	rule.Bottom = BorderEdge{Type: "SOLID", Width: "0.12 mm", Color: ColorRule}

	quote := plain
	quote.ID = BorderFillBlockQuote
	quote.Left = BorderEdge{Type: "SOLID", Width: "0.6 mm", Color: ColorQuote}

	return []BorderFill{none, def, table, tableHeader, codeBlock, codeInline, rule, quote}
}

func defaultCharPrs(cfg StyleConfig) []CharPr {
	body := func(id int) CharPr {
		return CharPr{
			ID:              id,
			Height:          cfg.FontSizeBody,
			TextColor:       cfg.ColorBody,
			ShadeColor:      "none",
			BorderFillIDRef: BorderFillDefault,
			UnderlineType:   "NONE",
			UnderlineColor:  ColorBlack,
			Strikeout:       "NONE",
		}
	}
	heading := func(id, height int) CharPr {
		cp := body(id)
		cp.Height = height
		cp.TextColor = cfg.ColorHeading
		cp.Bold = true
		return cp
	}

	bold := body(CharPrBold)
	bold.Bold = true

	italic := body(CharPrItalic)
	italic.Italic = true

	boldItalic := body(CharPrBoldItalic)
	boldItalic.Bold = true
	boldItalic.Italic = true

	inlineCode := body(CharPrInlineCode)
	inlineCode.Height = cfg.FontSizeCode
	inlineCode.TextColor = cfg.ColorCodeText
	inlineCode.FontRef = codeFontRef()
	inlineCode.BorderFillIDRef = BorderFillCodeInline

	codeBlock := body(CharPrCodeBlock)
	codeBlock.Height = cfg.FontSizeCode
	codeBlock.TextColor = cfg.ColorCodeBlockText
	codeBlock.FontRef = codeFontRef()

	tableHeader := body(CharPrTableHeader)
	tableHeader.Height = cfg.FontSizeTable
	tableHeader.TextColor = cfg.ColorTableHeaderText
	tableHeader.Bold = true

	tableBody := body(CharPrTableBody)
	tableBody.Height = cfg.FontSizeTable

	link := body(CharPrLink)
	link.TextColor = ColorLink
	link.UnderlineType = "BOTTOM"
	link.UnderlineColor = ColorLink

	strike := body(CharPrStrikethrough)
	strike.Strikeout = "SOLID"

	super := body(CharPrSuperscript)
	super.Offset = 40

	sub := body(CharPrSubscript)
	sub.Offset = -40

	return []CharPr{
		body(CharPrBody),
		bold,
		italic,
		boldItalic,
		heading(CharPrH1, cfg.FontSizeH1),
		heading(CharPrH2, cfg.FontSizeH2),
		heading(CharPrH3, cfg.FontSizeH3),
		heading(CharPrH4, cfg.FontSizeH4),
		heading(CharPrH5, cfg.FontSizeH5),
		heading(CharPrH6, cfg.FontSizeH6),
		inlineCode,
		codeBlock,
		tableHeader,
		tableBody,
		link,
		strike,
		super,
		sub,
	}
}

func defaultParaPrs(cfg StyleConfig) []ParaPr {
	base := func(id int) ParaPr {
		return ParaPr{
			ID:               id,
			TabPrIDRef:       1,
			AlignHorizontal:  "LEFT",
			HeadingType:      "NONE",
			LineSpacingType:  "PERCENT",
			LineSpacingValue: cfg.LineSpacing,
			BorderFillIDRef:  BorderFillDefault,
		}
	}
	heading := func(id, level, marginPrev, marginNext int) ParaPr {
		pp := base(id)
		pp.HeadingType = "OUTLINE"
		pp.HeadingLevel = level
		pp.KeepWithNext = 1
		pp.KeepLines = 1
		pp.MarginPrev = marginPrev
		pp.MarginNext = marginNext
		return pp
	}
	list := func(id int, headingType string, level int) ParaPr {
		pp := base(id)
		pp.HeadingType = headingType
		pp.HeadingIDRef = 1
		pp.HeadingLevel = level
		pp.MarginIntent = 800
		pp.MarginLeft = 800 * (level + 1)
		pp.MarginNext = 200
		return pp
	}

	body := base(ParaPrBody)
	body.MarginNext = 500

	code := base(ParaPrCode)
	code.MarginLeft = 400
	code.MarginRight = 400
	code.LineSpacingValue = cfg.LineSpacingCode
	code.BorderFillIDRef = BorderFillCodeBlock

	table := base(ParaPrTable)
	table.LineSpacingValue = cfg.LineSpacingTable
	table.AlignHorizontal = "CENTER"

	rule := base(ParaPrRule)
	rule.MarginPrev = 400
	rule.MarginNext = 400
	rule.BorderFillIDRef = BorderFillRule

	quote := base(ParaPrBlockQuote)
	quote.MarginLeft = 800
	quote.MarginNext = 500
	quote.BorderFillIDRef = BorderFillBlockQuote

	return []ParaPr{
		body,
		heading(ParaPrH1, 0, 2400, 400),
		heading(ParaPrH2, 1, 1800, 400),
		heading(ParaPrH3, 2, 1200, 300),
		heading(ParaPrH4, 3, 1000, 200),
		heading(ParaPrH5, 4, 800, 200),
		heading(ParaPrH6, 5, 600, 200),
		code,
		list(ParaPrBullet, "BULLET", 0),
		table,
		list(ParaPrOrdered, "NUMBER", 0),
		list(ParaPrBulletL2, "BULLET", 1),
		list(ParaPrBulletL3, "BULLET", 2),
		list(ParaPrOrderedL2, "NUMBER", 1),
		list(ParaPrOrderedL3, "NUMBER", 2),
		rule,
		quote,
	}
}

func defaultStyles() []Style {
	style := func(id int, name, engName string, paraPr, charPr int) Style {
		return Style{
			ID:          id,
			Type:        "PARA",
			Name:        name,
			EngName:     engName,
			ParaPrIDRef: paraPr,
			CharPrIDRef: charPr,
			LangID:      1042,
		}
	}
	return []Style{
		style(StyleBody, "본문", "Normal", ParaPrBody, CharPrBody),
		style(StyleH1, "제목 1", "Heading 1", ParaPrH1, CharPrH1),
		style(StyleH2, "제목 2", "Heading 2", ParaPrH2, CharPrH2),
		style(StyleH3, "제목 3", "Heading 3", ParaPrH3, CharPrH3),
		style(StyleH4, "제목 4", "Heading 4", ParaPrH4, CharPrH4),
		style(StyleH5, "제목 5", "Heading 5", ParaPrH5, CharPrH5),
		style(StyleH6, "제목 6", "Heading 6", ParaPrH6, CharPrH6),
	}
}
