package hwpx

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func readZipEntries(t *testing.T, data []byte) ([]string, map[string][]byte, map[string]uint16) {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	var order []string
	contents := make(map[string][]byte)
	methods := make(map[string]uint16)
	for _, f := range zr.File {
		order = append(order, f.Name)
		methods[f.Name] = f.Method
		rc, err := f.Open()
		require.NoError(t, err)
		content, err := io.ReadAll(rc)
		rc.Close()
		require.NoError(t, err)
		contents[f.Name] = content
	}
	return order, contents, methods
}

func TestPackageMimetypeFirstAndStored(t *testing.T) {
	pkg := NewPackage()
	require.NoError(t, pkg.AddEntry("Contents/section0.xml", []byte("<hs:sec/>")))
	require.NoError(t, pkg.AddEntry("mimetype", WriteMimetype()))

	data, err := pkg.Bytes()
	require.NoError(t, err)

	order, contents, methods := readZipEntries(t, data)
	require.Equal(t, "mimetype", order[0])
	require.Equal(t, []byte("application/hwp+zip"), contents["mimetype"])
	require.Equal(t, zip.Store, methods["mimetype"])
	require.Equal(t, zip.Deflate, methods["Contents/section0.xml"])

	// The identification bytes must be readable without inflating:
	// local header (30 bytes) + name "mimetype" (8 bytes), then content.
	require.Equal(t, []byte("application/hwp+zip"), data[38:38+19])
}

func TestPackagePreservesInsertionOrder(t *testing.T) {
	pkg := NewPackage()
	paths := []string{"mimetype", "version.xml", "META-INF/container.xml", "Contents/header.xml"}
	for _, p := range paths {
		require.NoError(t, pkg.AddEntry(p, []byte(p)))
	}

	data, err := pkg.Bytes()
	require.NoError(t, err)
	order, _, _ := readZipEntries(t, data)
	require.Equal(t, paths, order)
}

func TestAddEntryRejectsHostiledPaths(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"parent traversal", "../evil.xml"},
		{"nested traversal", "Contents/../../evil.xml"},
		{"backslash traversal", `Contents\..\evil.xml`},
		{"absolute posix", "/etc/passwd"},
		{"absolute backslash", `\windows\system32`},
		{"drive letter", `C:\windows\evil.xml`},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pkg := NewPackage()
			err := pkg.AddEntry(tt.path, []byte("x"))
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("AddEntry(%q) = %v, want ValidationError", tt.path, err)
			}
			if len(pkg.Entries()) != 0 {
				t.Error("rejected entry was staged anyway")
			}
		})
	}
}

func TestAddEntryReplacementKeepsPosition(t *testing.T) {
	pkg := NewPackage()
	require.NoError(t, pkg.AddEntry("a.xml", []byte("1")))
	require.NoError(t, pkg.AddEntry("b.xml", []byte("2")))
	require.NoError(t, pkg.AddEntry("a.xml", []byte("3")))

	data, err := pkg.Bytes()
	require.NoError(t, err)
	order, contents, _ := readZipEntries(t, data)
	require.Equal(t, []string{"a.xml", "b.xml"}, order)
	require.Equal(t, []byte("3"), contents["a.xml"])
}

func TestDocumentBytesFixedLayout(t *testing.T) {
	doc := NewSeededDocument(1)
	doc.AddHeading("보고서", 1)
	doc.AddImage(makePNG(10, 10), 0, 0)

	data, err := doc.Bytes()
	require.NoError(t, err)

	order, contents, methods := readZipEntries(t, data)
	require.Equal(t, []string{
		"mimetype",
		"version.xml",
		"settings.xml",
		"META-INF/container.xml",
		"META-INF/manifest.xml",
		"META-INF/container.rdf",
		"Contents/content.hpf",
		"Contents/header.xml",
		"Contents/section0.xml",
		"Preview/PrvText.txt",
		"BinData/image1.png",
	}, order)
	require.Equal(t, zip.Store, methods["mimetype"])
	require.Contains(t, string(contents["Preview/PrvText.txt"]), "보고서")
	require.Contains(t, string(contents["Contents/content.hpf"]), "BinData/image1.png")
}

func TestDocumentSaveRequiresHwpxExtension(t *testing.T) {
	doc := NewDocument()
	err := doc.Save("output.docx")
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Save with bad extension = %v, want ValidationError", err)
	}
}

func TestDocumentSaveRoundtrip(t *testing.T) {
	doc := NewSeededDocument(1)
	doc.AddParagraph("저장 확인", false, false)
	path := t.TempDir() + "/out.hwpx"
	require.NoError(t, doc.Save(path))

	form, err := OpenForm(path)
	require.NoError(t, err)
	require.Contains(t, form.Text(), "저장 확인")
}

func TestStrictRefsCatchesDanglingReference(t *testing.T) {
	old := GetGlobalConfig()
	SetGlobalConfig(&Config{LogLevel: old.LogLevel, StrictRefs: true, PreviewLimit: old.PreviewLimit})
	defer SetGlobalConfig(old)

	doc := NewSeededDocument(1)
	para := doc.AddParagraph("text", false, false)
	para.Runs[0].CharPrIDRef = 999

	_, err := doc.Bytes()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Bytes with dangling charPr = %v, want ValidationError", err)
	}

	// A well-formed document still assembles under strict checking.
	ok := NewSeededDocument(2)
	ok.AddTable([]string{"a"}, [][]string{{"b"}})
	_, err = ok.Bytes()
	require.NoError(t, err)
}
