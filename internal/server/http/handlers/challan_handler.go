package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/printline/printdesk/internal/challan"
	domainErrors "github.com/printline/printdesk/internal/domain/errors"
	"github.com/printline/printdesk/internal/domain/model"
	"github.com/printline/printdesk/internal/server/http/dto"
	"github.com/printline/printdesk/internal/usecase"
)

// ChallanHandler manages challan generation, the working selection, and
// the challan log.
type ChallanHandler struct {
	facade ChallanFacade
}

// NewChallanHandler constructs ChallanHandler.
func NewChallanHandler(facade ChallanFacade) *ChallanHandler {
	return &ChallanHandler{facade: facade}
}

// Generate handles POST /api/challans. An empty body falls back to the
// stored working selection. The response is the printable HTML document.
func (h *ChallanHandler) Generate(c *gin.Context) {
	var req dto.ChallanSelection
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
	}
	if req.Type == "" && len(req.OrderIDs) == 0 {
		draft := h.facade.ChallanDraft()
		req = dto.ChallanSelection{Type: string(draft.Type), OrderIDs: draft.OrderIDs, Photos: draft.Photos}
	}

	doc, err := h.facade.GenerateChallan(c.Request.Context(), model.ChallanType(req.Type), req.OrderIDs, req.Photos)
	if err != nil {
		if errors.Is(err, domainErrors.ErrMissingChallanType) || errors.Is(err, domainErrors.ErrEmptySelection) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	html, err := challan.Render(*doc)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}

// List handles GET /api/challans, returning the challan log.
func (h *ChallanHandler) List(c *gin.Context) {
	challans, err := h.facade.Challans(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.ChallanResponse, 0, len(challans))
	for _, entry := range challans {
		response = append(response, toChallanResponse(entry))
	}
	c.JSON(http.StatusOK, response)
}

// Draft handles GET /api/challans/draft.
func (h *ChallanHandler) Draft(c *gin.Context) {
	draft := h.facade.ChallanDraft()
	c.JSON(http.StatusOK, dto.ChallanSelection{
		Type:     string(draft.Type),
		OrderIDs: draft.OrderIDs,
		Photos:   draft.Photos,
	})
}

// UpdateDraft handles PUT /api/challans/draft.
func (h *ChallanHandler) UpdateDraft(c *gin.Context) {
	var req dto.ChallanSelection
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	h.facade.UpdateChallanDraft(usecase.ChallanDraft{
		Type:     model.ChallanType(req.Type),
		OrderIDs: req.OrderIDs,
		Photos:   req.Photos,
	})
	c.Status(http.StatusNoContent)
}

// ClearDraft handles DELETE /api/challans/draft.
func (h *ChallanHandler) ClearDraft(c *gin.Context) {
	h.facade.ClearChallanDraft()
	c.Status(http.StatusNoContent)
}
