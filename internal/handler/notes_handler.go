package handler

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unidash/uni-dashboard-api/internal/dto"
	"github.com/unidash/uni-dashboard-api/internal/service"
	appErrors "github.com/unidash/uni-dashboard-api/pkg/errors"
	"github.com/unidash/uni-dashboard-api/pkg/response"
)

// NotesHandler handles study sheet extraction, rendering and PDF merging.
type NotesHandler struct {
	service *service.NotesService
}

// NewNotesHandler constructs a notes handler.
func NewNotesHandler(svc *service.NotesService) *NotesHandler {
	return &NotesHandler{service: svc}
}

// Extract godoc
// @Summary Extract text from uploaded documents
// @Description Accepts txt, docx and pdf files. Unreadable files yield an inline error string instead of failing the request.
// @Tags Notes
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "Documents to extract"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /notes/extract [post]
func (h *NotesHandler) Extract(c *gin.Context) {
	if _, ok := currentUser(c); !ok {
		return
	}
	names, contents, ok := h.readUploads(c)
	if !ok {
		return
	}
	result, err := h.service.Extract(c.Request.Context(), names, contents)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

// StudySheet godoc
// @Summary Render study sheet PDF
// @Tags Notes
// @Accept json
// @Produce application/pdf
// @Param payload body dto.StudySheetRequest true "Sheet payload"
// @Success 200 {file} byte
// @Security BearerAuth
// @Router /notes/sheet [post]
func (h *NotesHandler) StudySheet(c *gin.Context) {
	if _, ok := currentUser(c); !ok {
		return
	}
	var req dto.StudySheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	payload, err := h.service.StudySheet(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=lernzettel.pdf")
	c.Data(http.StatusOK, "application/pdf", payload)
}

// Merge godoc
// @Summary Merge uploaded PDFs
// @Tags Notes
// @Accept multipart/form-data
// @Produce application/pdf
// @Param files formData file true "PDF files in merge order"
// @Success 200 {file} byte
// @Security BearerAuth
// @Router /notes/merge [post]
func (h *NotesHandler) Merge(c *gin.Context) {
	if _, ok := currentUser(c); !ok {
		return
	}
	names, contents, ok := h.readUploads(c)
	if !ok {
		return
	}
	merged, err := h.service.MergePDFs(c.Request.Context(), names, contents)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=zusammengefuegt.pdf")
	c.Data(http.StatusOK, "application/pdf", merged)
}

func (h *NotesHandler) readUploads(c *gin.Context) ([]string, [][]byte, bool) {
	form, err := c.MultipartForm()
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "multipart form expected"))
		return nil, nil, false
	}
	files := form.File["files"]
	if len(files) == 0 {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "no files uploaded"))
		return nil, nil, false
	}

	names := make([]string, 0, len(files))
	contents := make([][]byte, 0, len(files))
	for _, file := range files {
		if file.Size > h.service.MaxFileSize() {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation,
				fmt.Sprintf("%s exceeds the upload limit", file.Filename)))
			return nil, nil, false
		}
		content, err := readUpload(file)
		if err != nil {
			response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to read upload"))
			return nil, nil, false
		}
		names = append(names, file.Filename)
		contents = append(contents, content)
	}
	return names, contents, true
}

func readUpload(file *multipart.FileHeader) ([]byte, error) {
	f, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
