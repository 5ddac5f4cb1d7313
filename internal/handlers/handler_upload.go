package handlers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path"

	"github.com/SscSPs/cashmap/internal/core/domain"
	portssvc "github.com/SscSPs/cashmap/internal/core/ports/services"
	"github.com/SscSPs/cashmap/internal/dto"
	"github.com/SscSPs/cashmap/internal/middleware"
	"github.com/gin-gonic/gin"
)

const (
	fileField    = "file"
	mappingField = "mapping"
)

// uploadHandler handles statement detection, import and deletion.
type uploadHandler struct {
	importService portssvc.ImportSvcFacade
	maxBytes      int64
}

func newUploadHandler(svc portssvc.ImportSvcFacade, maxBytes int64) *uploadHandler {
	return &uploadHandler{importService: svc, maxBytes: maxBytes}
}

// registerUploadRoutes registers routes related to statement uploads.
func registerUploadRoutes(rg *gin.RouterGroup, svc portssvc.ImportSvcFacade, maxBytes int64) {
	h := newUploadHandler(svc, maxBytes)

	uploads := rg.Group("/uploads")
	{
		uploads.POST("/detect", h.detectFormat)
		uploads.POST("", h.importStatement)
		uploads.DELETE("/:uploadID", h.deleteUpload)
	}
}

// detectFormat godoc
// @Summary Detect the layout of a bank statement
// @Description Parses an uploaded CSV, resolves its column mapping from the format cache or the structure classifier and previews the first rows
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Statement CSV"
// @Success 200 {object} dto.DetectResponse
// @Failure 400 {object} map[string]string "Missing file or empty statement"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 413 {object} map[string]string "Statement too large"
// @Failure 422 {object} map[string]string "Classifier answer unusable"
// @Failure 502 {object} map[string]string "Classifier unavailable"
// @Security BearerAuth
// @Router /uploads/detect [post]
func (h *uploadHandler) detectFormat(c *gin.Context) {
	ownerID, ok := requireOwner(c)
	if !ok {
		return
	}

	_, content, err := h.readFile(c)
	if err != nil {
		badRequest(c, "Invalid statement upload", err)
		return
	}

	result, err := h.importService.DetectFormat(c.Request.Context(), ownerID, content)
	if err != nil {
		respondError(c, err, "Failed to detect statement format")
		return
	}

	c.JSON(http.StatusOK, dto.ToDetectResponse(result))
}

// importStatement godoc
// @Summary Import a bank statement
// @Description Normalises, deduplicates, categorises and stores every row of an uploaded CSV using the confirmed column mapping
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Statement CSV"
// @Param mapping formData string true "Column mapping JSON, as returned by detect"
// @Success 201 {object} domain.ImportSummary
// @Failure 400 {object} map[string]string "Invalid mapping, missing column or empty statement"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 413 {object} map[string]string "Statement too large"
// @Failure 500 {object} map[string]string "Failed to import statement"
// @Security BearerAuth
// @Router /uploads [post]
func (h *uploadHandler) importStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c)
	if !ok {
		return
	}

	rawMapping := c.PostForm(mappingField)
	if rawMapping == "" {
		badRequest(c, "Invalid statement upload", errors.New("mapping is required"))
		return
	}
	mapping, err := domain.ParseColumnMapping([]byte(rawMapping))
	if err != nil {
		badRequest(c, "Invalid column mapping", err)
		return
	}

	filename, content, err := h.readFile(c)
	if err != nil {
		badRequest(c, "Invalid statement upload", err)
		return
	}

	logger.Info("Received request to import statement", slog.String("filename", filename), slog.Int("bytes", len(content)))

	summary, err := h.importService.ImportStatement(c.Request.Context(), dto.ImportRequest{
		OwnerID:        ownerID,
		OrganisationID: middleware.GetOrganisationIDFromContext(c),
		Filename:       filename,
		Content:        content,
		Mapping:        mapping,
	})
	if err != nil {
		respondError(c, err, "Failed to import statement")
		return
	}

	c.JSON(http.StatusCreated, summary)
}

// deleteUpload godoc
// @Summary Delete an upload
// @Description Removes an upload batch together with every transaction it created
// @Tags uploads
// @Produce json
// @Param uploadID path string true "Upload ID"
// @Success 200 {object} dto.DeleteUploadResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Upload not found"
// @Security BearerAuth
// @Router /uploads/{uploadID} [delete]
func (h *uploadHandler) deleteUpload(c *gin.Context) {
	ownerID, ok := requireOwner(c)
	if !ok {
		return
	}
	uploadID := c.Param("uploadID")

	deleted, err := h.importService.DeleteUpload(c.Request.Context(), ownerID, uploadID)
	if err != nil {
		respondError(c, err, "Failed to delete upload")
		return
	}

	c.JSON(http.StatusOK, dto.DeleteUploadResponse{UploadID: uploadID, DeletedTransactions: deleted})
}

// readFile reads the multipart statement. At most maxBytes+1 bytes are read
// so the service can reject oversized files without buffering them whole.
func (h *uploadHandler) readFile(c *gin.Context) (string, []byte, error) {
	header, err := c.FormFile(fileField)
	if err != nil {
		return "", nil, fmt.Errorf("file is required: %w", err)
	}
	f, err := header.Open()
	if err != nil {
		return "", nil, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if h.maxBytes > 0 {
		r = io.LimitReader(f, h.maxBytes+1)
	}
	content, err := io.ReadAll(r)
	if err != nil {
		return "", nil, fmt.Errorf("read upload: %w", err)
	}
	return path.Base(header.Filename), content, nil
}
