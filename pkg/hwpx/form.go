package hwpx

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"
)

var placeholderRe = regexp.MustCompile(`\{\{([^}]+)\}\}`)

// FillPolicy controls what happens to placeholders with no value.
type FillPolicy int

const (
	// PolicyKeep leaves unmatched placeholders in place.
	PolicyKeep FillPolicy = iota
	// PolicyBlank replaces unmatched placeholders with the empty string.
	PolicyBlank
	// PolicyFail rejects the fill before any mutation when a placeholder
	// has no value.
	PolicyFail
)

// MatchMode selects how FillByLabel compares cell text against the label.
type MatchMode string

const (
	MatchContains MatchMode = "contains"
	MatchExact    MatchMode = "exact"
)

// Field is one label/value pair read from a form table: the first cell
// of a row is the label, the second its current value.
type Field struct {
	Label string
	Value string
	Table int
	Row   int
}

// Form is an opened HWPX package whose section and header XML are parsed
// for editing. Entries never touched stay as their original bytes and are
// copied verbatim on save, so a fill only rewrites what it changed.
type Form struct {
	files    map[string][]byte
	order    []string
	trees    map[string]*etree.Document
	sections []string
}

// OpenForm opens an HWPX file for placeholder filling.
func OpenForm(path string) (*Form, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewDocumentError("open", path, err)
	}
	return OpenFormBytes(data)
}

// OpenFormBytes opens an HWPX package held in memory.
func OpenFormBytes(data []byte) (*Form, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, NewDocumentError("open", "", err)
	}

	form := &Form{
		files: make(map[string][]byte),
		trees: make(map[string]*etree.Document),
	}
	for _, entry := range zr.File {
		rc, err := entry.Open()
		if err != nil {
			return nil, NewDocumentError("read", entry.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, NewDocumentError("read", entry.Name, err)
		}
		form.order = append(form.order, entry.Name)
		form.files[entry.Name] = content

		if isSectionPath(entry.Name) || entry.Name == "Contents/header.xml" {
			tree := etree.NewDocument()
			if err := tree.ReadFromBytes(content); err != nil {
				return nil, NewDocumentError("parse", entry.Name, err)
			}
			form.trees[entry.Name] = tree
			if isSectionPath(entry.Name) {
				form.sections = append(form.sections, entry.Name)
			}
		}
	}
	sort.Strings(form.sections)

	Logger().Debug("form opened",
		zap.Int("entries", len(form.order)),
		zap.Int("sections", len(form.sections)))
	return form, nil
}

func isSectionPath(name string) bool {
	return strings.HasPrefix(name, "Contents/section") && strings.HasSuffix(name, ".xml")
}

// textElements walks a tree in document order yielding every text ("t")
// element regardless of its namespace prefix.
func textElements(root *etree.Element, visit func(*etree.Element)) {
	if root.Tag == "t" {
		visit(root)
	}
	for _, child := range root.ChildElements() {
		textElements(child, visit)
	}
}

func (f *Form) eachSectionRoot(visit func(*etree.Element)) {
	for _, path := range f.sections {
		if root := f.trees[path].Root(); root != nil {
			visit(root)
		}
	}
}

// Placeholders returns the sorted unique `{{name}}` markers found in the
// document's text.
func (f *Form) Placeholders() []string {
	seen := make(map[string]bool)
	f.eachSectionRoot(func(root *etree.Element) {
		textElements(root, func(t *etree.Element) {
			for _, m := range placeholderRe.FindAllStringSubmatch(t.Text(), -1) {
				seen[m[1]] = true
			}
		})
	})
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Fill replaces `{{name}}` markers with the given values. Under
// PolicyFail the whole document is scanned before anything is replaced,
// so a missing value leaves the form untouched.
func (f *Form) Fill(values map[string]string, policy FillPolicy) error {
	if policy == PolicyFail {
		for _, name := range f.Placeholders() {
			if _, ok := values[name]; !ok {
				return NewMissingDataError(name)
			}
		}
	}

	replaced := 0
	f.eachSectionRoot(func(root *etree.Element) {
		textElements(root, func(t *etree.Element) {
			text := t.Text()
			if !strings.Contains(text, "{{") {
				return
			}
			t.SetText(placeholderRe.ReplaceAllStringFunc(text, func(marker string) string {
				name := marker[2 : len(marker)-2]
				if val, ok := values[name]; ok {
					replaced++
					return val
				}
				if policy == PolicyBlank {
					return ""
				}
				return marker
			}))
		})
	})

	Logger().Debug("form filled", zap.Int("replacements", replaced))
	return nil
}

// tables returns every table element across all sections in document
// order.
func (f *Form) tables() []*etree.Element {
	var out []*etree.Element
	var walk func(*etree.Element)
	walk = func(el *etree.Element) {
		if el.Tag == "tbl" {
			out = append(out, el)
		}
		for _, child := range el.ChildElements() {
			walk(child)
		}
	}
	f.eachSectionRoot(walk)
	return out
}

func tableRows(tbl *etree.Element) []*etree.Element {
	var rows []*etree.Element
	for _, child := range tbl.ChildElements() {
		if child.Tag == "tr" {
			rows = append(rows, child)
		}
	}
	return rows
}

func rowCells(tr *etree.Element) []*etree.Element {
	var cells []*etree.Element
	for _, child := range tr.ChildElements() {
		if child.Tag == "tc" {
			cells = append(cells, child)
		}
	}
	return cells
}

func cellText(tc *etree.Element) string {
	var sb strings.Builder
	textElements(tc, func(t *etree.Element) {
		sb.WriteString(t.Text())
	})
	return sb.String()
}

// setCellText replaces the first text node under the cell, or appends one
// to the cell's first run when the cell has no text node at all.
func setCellText(tc *etree.Element, text string) {
	var target *etree.Element
	textElements(tc, func(t *etree.Element) {
		if target == nil {
			target = t
		}
	})
	if target != nil {
		target.SetText(text)
		return
	}

	var run *etree.Element
	var findRun func(*etree.Element)
	findRun = func(el *etree.Element) {
		if run != nil {
			return
		}
		if el.Tag == "run" {
			run = el
			return
		}
		for _, child := range el.ChildElements() {
			findRun(child)
		}
	}
	findRun(tc)
	if run == nil {
		return
	}
	tag := "t"
	if run.Space != "" {
		tag = run.Space + ":t"
	}
	run.CreateElement(tag).SetText(text)
}

// FillTableCell sets the text of the cell at (row, col) of the table-th
// table in the document. All indexes are zero-based; tables are counted
// across sections in document order.
func (f *Form) FillTableCell(table, row, col int, text string) error {
	tbls := f.tables()
	if table < 0 || table >= len(tbls) {
		return NewStructuralError("table", table, "table not found")
	}
	rows := tableRows(tbls[table])
	if row < 0 || row >= len(rows) {
		return NewStructuralError("row", row, "row not found")
	}
	cells := rowCells(rows[row])
	if col < 0 || col >= len(cells) {
		return NewStructuralError("column", col, "column not found")
	}
	setCellText(cells[col], text)
	return nil
}

// FillByLabel finds the first cell whose text matches label and writes
// value into the next cell of the same row. MatchContains treats the
// label as a substring; MatchExact compares the trimmed cell text.
func (f *Form) FillByLabel(label, value string, match MatchMode) error {
	for _, tbl := range f.tables() {
		for _, tr := range tableRows(tbl) {
			cells := rowCells(tr)
			for ci, tc := range cells {
				text := cellText(tc)
				var hit bool
				switch match {
				case MatchExact:
					hit = strings.TrimSpace(text) == label
				default:
					hit = strings.Contains(text, label)
				}
				if !hit {
					continue
				}
				if ci+1 >= len(cells) {
					continue
				}
				setCellText(cells[ci+1], value)
				return nil
			}
		}
	}
	return NewStructuralError("label", 0, "no cell matching label: "+label)
}

// Fields reads the document's tables as label/value pairs: for every row
// with at least two cells, the first cell is the label and the second the
// value.
func (f *Form) Fields() []Field {
	var fields []Field
	for ti, tbl := range f.tables() {
		for ri, tr := range tableRows(tbl) {
			cells := rowCells(tr)
			if len(cells) < 2 {
				continue
			}
			fields = append(fields, Field{
				Label: cellText(cells[0]),
				Value: cellText(cells[1]),
				Table: ti,
				Row:   ri,
			})
		}
	}
	return fields
}

// Text returns all non-blank text content, one text node per line.
func (f *Form) Text() string {
	var lines []string
	f.eachSectionRoot(func(root *etree.Element) {
		textElements(root, func(t *etree.Element) {
			if text := strings.TrimSpace(t.Text()); text != "" {
				lines = append(lines, text)
			}
		})
	})
	return strings.Join(lines, "\n")
}

// TableText returns the cell text of the index-th table as rows of
// columns.
func (f *Form) TableText(index int) ([][]string, error) {
	tbls := f.tables()
	if index < 0 || index >= len(tbls) {
		return nil, NewStructuralError("table", index, "table not found")
	}
	var rows [][]string
	for _, tr := range tableRows(tbls[index]) {
		var row []string
		for _, tc := range rowCells(tr) {
			row = append(row, cellText(tc))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Bytes re-packs the form. Parsed trees are re-serialized; every other
// entry is copied verbatim in its original position, with the mimetype
// entry first and stored uncompressed.
func (f *Form) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	if content, ok := f.files["mimetype"]; ok {
		mw, err := zw.CreateHeader(&zip.FileHeader{Name: "mimetype", Method: zip.Store})
		if err != nil {
			return nil, NewDocumentError("write", "mimetype", err)
		}
		if _, err := mw.Write(content); err != nil {
			return nil, NewDocumentError("write", "mimetype", err)
		}
	}
	for _, path := range f.order {
		if path == "mimetype" {
			continue
		}
		content := f.files[path]
		if tree, ok := f.trees[path]; ok {
			serialized, err := tree.WriteToBytes()
			if err != nil {
				return nil, NewDocumentError("serialize", path, err)
			}
			content = serialized
		}
		fw, err := zw.Create(path)
		if err != nil {
			return nil, NewDocumentError("write", path, err)
		}
		if _, err := fw.Write(content); err != nil {
			return nil, NewDocumentError("write", path, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, NewDocumentError("write", "", err)
	}
	return buf.Bytes(), nil
}

// Save writes the re-packed form to path.
func (f *Form) Save(path string) error {
	data, err := f.Bytes()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return NewDocumentError("save", path, err)
	}
	return nil
}
