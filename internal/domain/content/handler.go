package content

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"crewsite/internal/pkg/response"
)

// Messages holds the user-facing texts of one resource.
type Messages struct {
	NotFound string
	Deleted  string
}

// Handler serves one resource collection over HTTP.
type Handler[T any, C Creator[T], U Patch] struct {
	service  *Service[T, C, U]
	messages Messages
}

func NewHandler[T any, C Creator[T], U Patch](service *Service[T, C, U], messages Messages) *Handler[T, C, U] {
	return &Handler[T, C, U]{service: service, messages: messages}
}

func (h *Handler[T, C, U]) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Internal(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

func (h *Handler[T, C, U]) Create(c *gin.Context) {
	var in C
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	rec, err := h.service.Create(c.Request.Context(), in)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, rec)
}

func (h *Handler[T, C, U]) Update(c *gin.Context) {
	var patch U
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	rec, err := h.service.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rec)
}

func (h *Handler[T, C, U]) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	response.Message(c, http.StatusOK, h.messages.Deleted)
}

func (h *Handler[T, C, U]) writeError(c *gin.Context, err error) {
	writeError(c, err, h.messages.NotFound)
}

func writeError(c *gin.Context, err error, notFound string) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", verr.Fields)
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", notFound)
	default:
		response.Internal(c, err)
	}
}

// SiteHandler serves the singleton site content.
type SiteHandler struct {
	service *SiteService
}

func NewSiteHandler(service *SiteService) *SiteHandler {
	return &SiteHandler{service: service}
}

func (h *SiteHandler) Get(c *gin.Context) {
	doc, err := h.service.Get(c.Request.Context())
	if err != nil {
		writeError(c, err, "Site content not found")
		return
	}
	response.Success(c, http.StatusOK, doc)
}

func (h *SiteHandler) Update(c *gin.Context) {
	var patch UpdateSiteContentRequest
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	doc, err := h.service.Update(c.Request.Context(), patch)
	if err != nil {
		writeError(c, err, "Site content not found")
		return
	}
	response.Success(c, http.StatusOK, doc)
}
