package hwpx

import (
	"archive/zip"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// formFixture builds an in-memory form document: placeholders in body
// text and a label/value application table.
func formFixture(t *testing.T) []byte {
	t.Helper()
	doc := NewSeededDocument(1)
	doc.AddHeading("{{사업명}} 신청서", 1)
	doc.AddParagraph("신청 기관: {{신청기관}}", false, false)
	doc.AddParagraph("담당자는 {{담당자}}이며 연락처는 {{연락처}}입니다.", false, false)
	doc.AddTable(
		[]string{"항목", "내용"},
		[][]string{
			{"사업 기간", "{{기간}}"},
			{"총 예산", ""},
		},
	)
	data, err := doc.Bytes()
	require.NoError(t, err)
	return data
}

func TestPlaceholdersSortedUnique(t *testing.T) {
	form, err := OpenFormBytes(formFixture(t))
	require.NoError(t, err)

	want := []string{"기간", "담당자", "사업명", "신청기관", "연락처"}
	require.Equal(t, want, form.Placeholders())
}

func TestFillReplacesValues(t *testing.T) {
	form, err := OpenFormBytes(formFixture(t))
	require.NoError(t, err)

	err = form.Fill(map[string]string{
		"사업명":  "AI 플랫폼 구축",
		"신청기관": "(주)예시시스템",
		"담당자":  "김철수",
		"연락처":  "02-1234-5678",
		"기간":   "2026.01 ~ 2026.12",
	}, PolicyKeep)
	require.NoError(t, err)

	text := form.Text()
	require.Contains(t, text, "AI 플랫폼 구축 신청서")
	require.Contains(t, text, "(주)예시시스템")
	require.Contains(t, text, "담당자는 김철수이며 연락처는 02-1234-5678입니다.")
	require.NotContains(t, text, "{{")
	require.Empty(t, form.Placeholders())
}

func TestFillPolicyKeepLeavesUnmatched(t *testing.T) {
	form, err := OpenFormBytes(formFixture(t))
	require.NoError(t, err)

	require.NoError(t, form.Fill(map[string]string{"사업명": "X"}, PolicyKeep))
	require.Contains(t, form.Text(), "{{신청기관}}")
	require.NotContains(t, form.Text(), "{{사업명}}")
}

func TestFillPolicyBlankRemovesUnmatched(t *testing.T) {
	form, err := OpenFormBytes(formFixture(t))
	require.NoError(t, err)

	require.NoError(t, form.Fill(map[string]string{"사업명": "X"}, PolicyBlank))
	require.NotContains(t, form.Text(), "{{")
	require.Contains(t, form.Text(), "신청 기관:")
}

func TestFillPolicyFailIsAtomic(t *testing.T) {
	form, err := OpenFormBytes(formFixture(t))
	require.NoError(t, err)

	err = form.Fill(map[string]string{"사업명": "X"}, PolicyFail)
	var merr *MissingDataError
	if !errors.As(err, &merr) {
		t.Fatalf("Fill = %v, want MissingDataError", err)
	}

	// Nothing was replaced, including names that had values.
	require.Contains(t, form.Text(), "{{사업명}}")
	require.Len(t, form.Placeholders(), 5)
}

func TestFillTableCell(t *testing.T) {
	form, err := OpenFormBytes(formFixture(t))
	require.NoError(t, err)

	require.NoError(t, form.FillTableCell(0, 2, 1, "3억 원"))

	rows, err := form.TableText(0)
	require.NoError(t, err)
	require.Equal(t, "3억 원", rows[2][1])
	require.Equal(t, "총 예산", rows[2][0])
}

func TestFillTableCellOutOfRange(t *testing.T) {
	form, err := OpenFormBytes(formFixture(t))
	require.NoError(t, err)

	tests := []struct {
		name            string
		table, row, col int
		wantKind        string
	}{
		{"bad table", 5, 0, 0, "table"},
		{"bad row", 0, 9, 0, "row"},
		{"bad column", 0, 0, 9, "column"},
		{"negative table", -1, 0, 0, "table"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := form.FillTableCell(tt.table, tt.row, tt.col, "x")
			var serr *StructuralError
			if !errors.As(err, &serr) {
				t.Fatalf("err = %v, want StructuralError", err)
			}
			if serr.Kind != tt.wantKind {
				t.Errorf("kind = %s, want %s", serr.Kind, tt.wantKind)
			}
		})
	}
}

func TestFillByLabel(t *testing.T) {
	form, err := OpenFormBytes(formFixture(t))
	require.NoError(t, err)

	require.NoError(t, form.FillByLabel("총 예산", "5억 원", MatchExact))
	require.NoError(t, form.FillByLabel("기간", "12개월", MatchContains))

	rows, err := form.TableText(0)
	require.NoError(t, err)
	require.Equal(t, "5억 원", rows[2][1])
	require.Equal(t, "12개월", rows[1][1])
}

func TestFillByLabelExactRejectsSubstring(t *testing.T) {
	form, err := OpenFormBytes(formFixture(t))
	require.NoError(t, err)

	err = form.FillByLabel("예산", "x", MatchExact)
	var serr *StructuralError
	if !errors.As(err, &serr) {
		t.Fatalf("err = %v, want StructuralError for unmatched exact label", err)
	}
}

func TestFields(t *testing.T) {
	form, err := OpenFormBytes(formFixture(t))
	require.NoError(t, err)

	fields := form.Fields()
	require.Len(t, fields, 3)
	require.Equal(t, Field{Label: "항목", Value: "내용", Table: 0, Row: 0}, fields[0])
	require.Equal(t, Field{Label: "사업 기간", Value: "{{기간}}", Table: 0, Row: 1}, fields[1])
	require.Equal(t, Field{Label: "총 예산", Value: "", Table: 0, Row: 2}, fields[2])
}

func TestFormBytesPreservesLayout(t *testing.T) {
	original := formFixture(t)
	form, err := OpenFormBytes(original)
	require.NoError(t, err)
	require.NoError(t, form.Fill(map[string]string{"사업명": "교체됨"}, PolicyKeep))

	repacked, err := form.Bytes()
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(repacked), int64(len(repacked)))
	require.NoError(t, err)

	origZr, err := zip.NewReader(bytes.NewReader(original), int64(len(original)))
	require.NoError(t, err)

	require.Equal(t, len(origZr.File), len(zr.File))
	for i, f := range zr.File {
		require.Equal(t, origZr.File[i].Name, f.Name, "entry order changed at %d", i)
	}
	require.Equal(t, "mimetype", zr.File[0].Name)
	require.Equal(t, zip.Store, zr.File[0].Method)

	// The filled form reopens cleanly with the replacement applied.
	reopened, err := OpenFormBytes(repacked)
	require.NoError(t, err)
	require.Contains(t, reopened.Text(), "교체됨 신청서")
	require.NotContains(t, reopened.Text(), "{{사업명}}")
}

func TestUntouchedEntriesCopiedVerbatim(t *testing.T) {
	original := formFixture(t)
	form, err := OpenFormBytes(original)
	require.NoError(t, err)

	repacked, err := form.Bytes()
	require.NoError(t, err)

	_, origContents, _ := readZipEntries(t, original)
	_, newContents, _ := readZipEntries(t, repacked)
	for _, name := range []string{"mimetype", "version.xml", "settings.xml", "Preview/PrvText.txt"} {
		require.Equal(t, origContents[name], newContents[name], "%s changed on repack", name)
	}
}

func TestFormSaveAndReopen(t *testing.T) {
	form, err := OpenFormBytes(formFixture(t))
	require.NoError(t, err)
	require.NoError(t, form.Fill(map[string]string{"담당자": "박영희"}, PolicyKeep))

	path := t.TempDir() + "/filled.hwpx"
	require.NoError(t, form.Save(path))

	reopened, err := OpenForm(path)
	require.NoError(t, err)
	require.Contains(t, reopened.Text(), "박영희")
}

func TestTableTextOutOfRange(t *testing.T) {
	form, err := OpenFormBytes(formFixture(t))
	require.NoError(t, err)

	_, err = form.TableText(3)
	var serr *StructuralError
	if !errors.As(err, &serr) {
		t.Fatalf("err = %v, want StructuralError", err)
	}
}

func TestTextSkipsBlankRuns(t *testing.T) {
	form, err := OpenFormBytes(formFixture(t))
	require.NoError(t, err)

	for _, line := range strings.Split(form.Text(), "\n") {
		if strings.TrimSpace(line) == "" {
			t.Error("Text() emitted a blank line")
		}
	}
}
