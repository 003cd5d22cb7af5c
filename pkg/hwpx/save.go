package hwpx

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
)

// Bytes assembles the document into a complete HWPX archive in memory.
// The package layout is fixed: mimetype first, then the metadata parts,
// the header and section, the preview text, and any embedded binaries.
func (d *Document) Bytes() ([]byte, error) {
	if GetGlobalConfig().StrictRefs {
		if err := d.checkRefs(); err != nil {
			return nil, err
		}
	}

	pkg := NewPackage()
	entries := []struct {
		path    string
		content []byte
	}{
		{"mimetype", WriteMimetype()},
		{"version.xml", []byte(WriteVersionXML())},
		{"settings.xml", []byte(WriteSettingsXML())},
		{"META-INF/container.xml", []byte(WriteContainerXML())},
		{"META-INF/manifest.xml", []byte(WriteManifestXML())},
		{"META-INF/container.rdf", []byte(WriteContainerRDF())},
		{"Contents/content.hpf", []byte(WriteContentHPF(d.Images))},
		{"Contents/header.xml", []byte(WriteHeaderXML(d.Registry))},
		{"Contents/section0.xml", []byte(WriteSectionXML(d))},
		{"Preview/PrvText.txt", []byte(WritePreviewText(d.PreviewText()))},
	}
	for _, e := range entries {
		if err := pkg.AddEntry(e.path, e.content); err != nil {
			return nil, err
		}
	}
	for _, img := range d.Images {
		path := fmt.Sprintf("BinData/%s.%s", img.BinaryItemID, extensionForMediaType(img.MediaType))
		if err := pkg.AddEntry(path, img.Data); err != nil {
			return nil, err
		}
	}

	Logger().Debug("document assembled",
		zap.Int("elements", len(d.Elements)),
		zap.Int("images", len(d.Images)))
	return pkg.Bytes()
}

// Save writes the document to path, which must carry the .hwpx extension.
func (d *Document) Save(path string) error {
	if !strings.HasSuffix(strings.ToLower(path), ".hwpx") {
		return NewValidationError("path", "output path must end in .hwpx: "+path)
	}
	data, err := d.Bytes()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return NewDocumentError("save", path, err)
	}
	return nil
}

// checkRefs verifies that every property reference held by the content
// points at a registered record. Runs only when strict reference checking
// is enabled.
func (d *Document) checkRefs() error {
	reg := d.Registry
	checkPara := func(p *Paragraph) error {
		if p.ParaPrIDRef < 0 || p.ParaPrIDRef >= len(reg.ParaPrs) {
			return NewValidationError("paraPrIDRef", fmt.Sprintf("unknown paraPr %d", p.ParaPrIDRef))
		}
		if p.StyleIDRef < 0 || p.StyleIDRef >= len(reg.Styles) {
			return NewValidationError("styleIDRef", fmt.Sprintf("unknown style %d", p.StyleIDRef))
		}
		for _, run := range p.Runs {
			if run.CharPrIDRef < 0 || run.CharPrIDRef >= len(reg.CharPrs) {
				return NewValidationError("charPrIDRef", fmt.Sprintf("unknown charPr %d", run.CharPrIDRef))
			}
		}
		return nil
	}
	checkFill := func(id int) error {
		if id < 1 || id > len(reg.BorderFills) {
			return NewValidationError("borderFillIDRef", fmt.Sprintf("unknown borderFill %d", id))
		}
		return nil
	}

	for _, elem := range d.Elements {
		switch el := elem.(type) {
		case *Paragraph:
			if err := checkPara(el); err != nil {
				return err
			}
		case *Table:
			if err := checkFill(el.BorderFillIDRef); err != nil {
				return err
			}
			for _, row := range el.Rows {
				for _, cell := range row.Cells {
					if err := checkFill(cell.BorderFillIDRef); err != nil {
						return err
					}
					for _, p := range cell.Paragraphs {
						if err := checkPara(p); err != nil {
							return err
						}
					}
				}
			}
		}
	}
	for _, hf := range []*HeaderFooter{d.Header, d.Footer} {
		if hf == nil {
			continue
		}
		for _, p := range hf.Paragraphs {
			if err := checkPara(p); err != nil {
				return err
			}
		}
	}
	return nil
}
