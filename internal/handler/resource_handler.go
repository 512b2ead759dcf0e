package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/sma-dashboard-api/internal/dto"
	"github.com/noah-isme/sma-dashboard-api/internal/middleware"
	"github.com/noah-isme/sma-dashboard-api/internal/service"
	appErrors "github.com/noah-isme/sma-dashboard-api/pkg/errors"
	"github.com/noah-isme/sma-dashboard-api/pkg/response"
)

type resourceCatalog interface {
	Resolve(slug string) (service.Resource, error)
	Descriptors() []dto.ResourceDescriptor
}

// ResourceHandler serves the filtered list views of every dashboard resource.
type ResourceHandler struct {
	catalog resourceCatalog
}

// NewResourceHandler constructs the handler.
func NewResourceHandler(catalog resourceCatalog) *ResourceHandler {
	return &ResourceHandler{catalog: catalog}
}

// Catalog godoc
// @Summary List available resources
// @Tags Resources
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /resources [get]
func (h *ResourceHandler) Catalog(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.catalog.Descriptors(), nil)
}

// List godoc
// @Summary Search, filter and paginate a resource
// @Tags Resources
// @Produce json
// @Param resource path string true "Resource slug"
// @Param search query string false "Case-insensitive search term"
// @Param filter[status] query string false "Exact match on a categorical field; 'all' disables it"
// @Param page query int false "Page number"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /resources/{resource} [get]
func (h *ResourceHandler) List(c *gin.Context) {
	resource, err := h.catalog.Resolve(c.Param("resource"))
	if err != nil {
		response.Error(c, err)
		return
	}
	query := dto.ListQuery{
		Search:  c.Query("search"),
		Filters: c.QueryMap("filter"),
		Page:    1,
	}
	if page, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		query.Page = page
	}

	page, cacheHit, err := resource.List(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, cacheHit)
	meta := responseMeta(c)
	meta["query"] = page.Query
	response.JSON(c, http.StatusOK, page.Items, &page.Pagination, meta)
}

// Get godoc
// @Summary Get one record with its available actions
// @Tags Resources
// @Produce json
// @Param resource path string true "Resource slug"
// @Param id path string true "Record ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /resources/{resource}/{id} [get]
func (h *ResourceHandler) Get(c *gin.Context) {
	resource, err := h.catalog.Resolve(c.Param("resource"))
	if err != nil {
		response.Error(c, err)
		return
	}
	item, err := resource.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, item, nil)
}

// Transition godoc
// @Summary Change the status of a record
// @Tags Resources
// @Accept json
// @Produce json
// @Param resource path string true "Resource slug"
// @Param id path string true "Record ID"
// @Param payload body dto.TransitionRequest true "Target status"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /resources/{resource}/{id}/status [patch]
func (h *ResourceHandler) Transition(c *gin.Context) {
	resource, err := h.catalog.Resolve(c.Param("resource"))
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid transition payload"))
		return
	}
	item, err := resource.Transition(c.Request.Context(), c.Param("id"), req, actorFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, item, nil)
}

// History godoc
// @Summary Status history of a record
// @Tags Resources
// @Produce json
// @Param resource path string true "Resource slug"
// @Param id path string true "Record ID"
// @Success 200 {object} response.Envelope
// @Router /resources/{resource}/{id}/history [get]
func (h *ResourceHandler) History(c *gin.Context) {
	resource, err := h.catalog.Resolve(c.Param("resource"))
	if err != nil {
		response.Error(c, err)
		return
	}
	entries, err := resource.History(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entries, nil)
}
