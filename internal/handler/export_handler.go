package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/sma-dashboard-api/internal/dto"
	"github.com/noah-isme/sma-dashboard-api/internal/models"
	"github.com/noah-isme/sma-dashboard-api/internal/service"
	appErrors "github.com/noah-isme/sma-dashboard-api/pkg/errors"
	"github.com/noah-isme/sma-dashboard-api/pkg/response"
)

type exportJobService interface {
	CreateJob(ctx context.Context, req dto.ExportRequest, actorID string) (*dto.ExportJobResponse, error)
	GetStatus(ctx context.Context, id string) (*dto.ExportStatusResponse, error)
	ListMine(ctx context.Context, actorID string) ([]dto.ExportStatusResponse, error)
	ResolveDownload(ctx context.Context, id, token string) (*service.ExportDownload, error)
}

// ExportHandler exposes asynchronous list exports.
type ExportHandler struct {
	exports exportJobService
}

// NewExportHandler constructs handler.
func NewExportHandler(exports exportJobService) *ExportHandler {
	return &ExportHandler{exports: exports}
}

// Create godoc
// @Summary Queue an export of a filtered resource list
// @Tags Exports
// @Accept json
// @Produce json
// @Param payload body dto.ExportRequest true "Export request"
// @Success 202 {object} response.Envelope
// @Router /exports [post]
func (h *ExportHandler) Create(c *gin.Context) {
	var req dto.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid export payload"))
		return
	}
	job, err := h.exports.CreateJob(c.Request.Context(), req, actorFromContext(c).ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Accepted(c, job)
}

// List godoc
// @Summary Recent exports of the caller
// @Tags Exports
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /exports [get]
func (h *ExportHandler) List(c *gin.Context) {
	jobs, err := h.exports.ListMine(c.Request.Context(), actorFromContext(c).ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, jobs, nil)
}

// Status godoc
// @Summary Export job status
// @Tags Exports
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} response.Envelope
// @Router /exports/{id} [get]
func (h *ExportHandler) Status(c *gin.Context) {
	status, err := h.exports.GetStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, status, nil)
}

// Download godoc
// @Summary Download a finished export
// @Tags Exports
// @Produce octet-stream
// @Param id path string true "Job ID"
// @Param token query string true "Signed download token"
// @Success 200 {file} file
// @Router /exports/{id}/download [get]
func (h *ExportHandler) Download(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "token required"))
		return
	}
	result, err := h.exports.ResolveDownload(c.Request.Context(), c.Param("id"), token)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer result.File.Close() //nolint:errcheck

	info, err := result.File.Stat()
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to read export file"))
		return
	}
	contentType := "text/csv"
	if result.Format == models.ExportFormatPDF {
		contentType = "application/pdf"
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", result.Filename))
	c.Header("Cache-Control", "no-store")
	c.DataFromReader(http.StatusOK, info.Size(), contentType, result.File, nil)
}
