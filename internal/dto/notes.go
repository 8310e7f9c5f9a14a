package dto

// ExtractedFile is the best-effort plain text of one uploaded document.
// Extraction failures degrade to an inline error string, never to an error.
type ExtractedFile struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// ExtractResponse bundles per-file texts plus the combined study-sheet draft.
type ExtractResponse struct {
	Files    []ExtractedFile `json:"files"`
	Combined string          `json:"combined"`
}

// StudySheetRequest renders edited note text into a downloadable PDF.
type StudySheetRequest struct {
	Titel string `json:"titel"`
	Text  string `json:"text" validate:"required"`
}
