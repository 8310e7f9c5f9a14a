package service

import (
	"archive/zip"
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unidash/uni-dashboard-api/internal/dto"
	appErrors "github.com/unidash/uni-dashboard-api/pkg/errors"
)

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("word/document.xml")
	require.NoError(t, err)
	_, err = f.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestNotesExtractPlainText(t *testing.T) {
	svc := NewNotesService(nil, nil, 1<<20)

	resp, err := svc.Extract(context.Background(),
		[]string{"notizen.txt"}, [][]byte{[]byte("Thermodynamik Kapitel 3")})
	require.NoError(t, err)
	require.Len(t, resp.Files, 1)
	assert.Equal(t, "Thermodynamik Kapitel 3", resp.Files[0].Text)
	assert.Contains(t, resp.Combined, "##### Datei: notizen.txt #####")
	assert.Contains(t, resp.Combined, "Thermodynamik Kapitel 3")
}

func TestNotesExtractDocx(t *testing.T) {
	svc := NewNotesService(nil, nil, 1<<20)
	docx := buildDocx(t, `<w:document><w:body>`+
		`<w:p><w:r><w:t>Erster Absatz</w:t></w:r></w:p>`+
		`<w:p><w:r><w:t>Zweiter Absatz</w:t></w:r></w:p>`+
		`</w:body></w:document>`)

	resp, err := svc.Extract(context.Background(), []string{"skript.docx"}, [][]byte{docx})
	require.NoError(t, err)
	assert.Equal(t, "Erster Absatz\nZweiter Absatz", resp.Files[0].Text)
}

func TestNotesExtractDegradesPerFile(t *testing.T) {
	svc := NewNotesService(nil, nil, 1<<20)

	resp, err := svc.Extract(context.Background(),
		[]string{"bild.png", "kaputt.pdf", "kaputt.docx", "ok.txt"},
		[][]byte{[]byte("png"), []byte("kein pdf"), []byte("kein zip"), []byte("Text")})
	require.NoError(t, err)
	require.Len(t, resp.Files, 4)
	assert.Equal(t, "(Dateiformat nicht unterstützt)", resp.Files[0].Text)
	assert.Equal(t, "(PDF konnte nicht gelesen werden)", resp.Files[1].Text)
	assert.Contains(t, resp.Files[2].Text, "(Fehler beim Lesen der Word-Datei:")
	assert.Equal(t, "Text", resp.Files[3].Text)
}

func TestNotesStudySheetDefaultsTitle(t *testing.T) {
	svc := NewNotesService(nil, nil, 1<<20)

	payload, err := svc.StudySheet(context.Background(), dto.StudySheetRequest{Text: "Merksatz"})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(payload, []byte("%PDF")))
}

func TestNotesMergeRequiresTwoFiles(t *testing.T) {
	svc := NewNotesService(nil, nil, 1<<20)

	_, err := svc.MergePDFs(context.Background(), []string{"a.pdf"}, [][]byte{[]byte("x")})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestNotesMergeRejectsBrokenPDFs(t *testing.T) {
	svc := NewNotesService(nil, nil, 1<<20)

	_, err := svc.MergePDFs(context.Background(),
		[]string{"a.pdf", "b.pdf"}, [][]byte{[]byte("kein pdf"), []byte("auch nicht")})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnsupportedFormat.Code, appErrors.FromError(err).Code)
}
