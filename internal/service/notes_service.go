package service

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/ledongthuc/pdf"
	pdfcpu "github.com/pdfcpu/pdfcpu/pkg/api"
	"go.uber.org/zap"

	"github.com/unidash/uni-dashboard-api/internal/dto"
	appErrors "github.com/unidash/uni-dashboard-api/pkg/errors"
	"github.com/unidash/uni-dashboard-api/pkg/export"
)

// NotesService turns uploaded documents into editable study-sheet text,
// renders the edited text back into a PDF, and merges uploaded PDFs.
// Extraction never fails a request: unreadable files degrade to an inline
// German error string in place of their text.
type NotesService struct {
	pdfExporter *export.PDFExporter
	validator   *validator.Validate
	logger      *zap.Logger
	maxFileSize int64
}

// NewNotesService constructs a NotesService instance.
func NewNotesService(validate *validator.Validate, logger *zap.Logger, maxFileSize int64) *NotesService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotesService{
		pdfExporter: export.NewPDFExporter(),
		validator:   validate,
		logger:      logger,
		maxFileSize: maxFileSize,
	}
}

// MaxFileSize returns the per-file upload limit in bytes.
func (s *NotesService) MaxFileSize() int64 {
	return s.maxFileSize
}

// Extract pulls plain text out of each upload and combines everything into
// one draft separated by file markers.
func (s *NotesService) Extract(ctx context.Context, names []string, contents [][]byte) (*dto.ExtractResponse, error) {
	resp := &dto.ExtractResponse{Files: []dto.ExtractedFile{}}

	var combined strings.Builder
	for i, name := range names {
		text := s.extractOne(name, contents[i])
		resp.Files = append(resp.Files, dto.ExtractedFile{Name: name, Text: text})
		combined.WriteString(fmt.Sprintf("\n\n##### Datei: %s #####\n\n%s", name, text))
	}
	resp.Combined = combined.String()

	return resp, nil
}

func (s *NotesService) extractOne(name string, content []byte) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt":
		return strings.ToValidUTF8(string(content), "")
	case ".docx":
		text, err := extractDocxText(content)
		if err != nil {
			s.logger.Warn("docx extraction failed", zap.String("file", name), zap.Error(err))
			return fmt.Sprintf("(Fehler beim Lesen der Word-Datei: %v)", err)
		}
		return text
	case ".pdf":
		text, err := extractPDFText(content)
		if err != nil {
			s.logger.Warn("pdf extraction failed", zap.String("file", name), zap.Error(err))
			return "(PDF konnte nicht gelesen werden)"
		}
		return text
	default:
		return "(Dateiformat nicht unterstützt)"
	}
}

// StudySheet renders edited note text into a downloadable PDF.
func (s *NotesService) StudySheet(ctx context.Context, req dto.StudySheetRequest) ([]byte, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid study sheet payload")
	}

	title := req.Titel
	if strings.TrimSpace(title) == "" {
		title = "Lernzettel"
	}

	payload, err := s.pdfExporter.RenderText(title, req.Text)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render study sheet")
	}
	return payload, nil
}

// MergePDFs concatenates the uploads in their given order into one document.
func (s *NotesService) MergePDFs(ctx context.Context, names []string, contents [][]byte) ([]byte, error) {
	if len(contents) < 2 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "merging requires at least two PDF files")
	}

	tmpDir, err := os.MkdirTemp("", "pdf-merge-*")
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to stage merge files")
	}
	defer os.RemoveAll(tmpDir)

	inFiles := make([]string, 0, len(contents))
	for i, content := range contents {
		path := filepath.Join(tmpDir, fmt.Sprintf("in-%03d.pdf", i))
		if err := os.WriteFile(path, content, 0o600); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to stage merge files")
		}
		inFiles = append(inFiles, path)
	}

	outFile := filepath.Join(tmpDir, "merged.pdf")
	if err := pdfcpu.MergeCreateFile(inFiles, outFile, false, nil); err != nil {
		s.logger.Warn("pdf merge failed", zap.Strings("files", names), zap.Error(err))
		return nil, appErrors.Clone(appErrors.ErrUnsupportedFormat, "one of the files could not be processed as PDF")
	}

	merged, err := os.ReadFile(outFile)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to read merged PDF")
	}
	return merged, nil
}

func extractPDFText(content []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", err
	}

	var text strings.Builder
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		text.WriteString(pageText)
		text.WriteString("\n")
	}
	return text.String(), nil
}

// extractDocxText reads word/document.xml from the docx container and joins
// paragraph runs with newlines.
func extractDocxText(content []byte) (string, error) {
	reader, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("keine gültige docx-Datei")
	}

	var docXML io.ReadCloser
	for _, file := range reader.File {
		if file.Name == "word/document.xml" {
			docXML, err = file.Open()
			if err != nil {
				return "", err
			}
			break
		}
	}
	if docXML == nil {
		return "", fmt.Errorf("word/document.xml fehlt")
	}
	defer docXML.Close()

	decoder := xml.NewDecoder(docXML)
	var text strings.Builder
	var inText bool
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		switch el := token.(type) {
		case xml.StartElement:
			if el.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch el.Name.Local {
			case "t":
				inText = false
			case "p":
				text.WriteString("\n")
			}
		case xml.CharData:
			if inText && utf8.Valid(el) {
				text.Write(el)
			}
		}
	}
	return strings.TrimRight(text.String(), "\n"), nil
}
