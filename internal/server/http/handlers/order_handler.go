package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/printline/printdesk/internal/domain/errors"
	"github.com/printline/printdesk/internal/domain/model"
	"github.com/printline/printdesk/internal/server/http/dto"
	"github.com/printline/printdesk/internal/usecase"
)

// OrderHandler manages order endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// List handles GET /api/orders. The optional q parameter filters by
// case-insensitive substring over id, client, manufacturer, and date.
func (h *OrderHandler) List(c *gin.Context) {
	orders := h.facade.Orders(c.Query("q"))

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, order := range orders {
		response = append(response, toOrderResponse(order))
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.facade.Order(c.Param("id"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.CreateOrder(c.Request.Context(), usecase.CreateOrder{
		Client:       req.Client,
		Manufacturer: req.Manufacturer,
		Quantity:     req.Quantity,
	})
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusCreated, toOrderResponse(*order))
}

// Edit handles PATCH /api/orders/:id.
func (h *OrderHandler) Edit(c *gin.Context) {
	var req dto.EditOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.EditOrder(c.Request.Context(), c.Param("id"), usecase.EditOrder{
		Client:       req.Client,
		Manufacturer: req.Manufacturer,
		Product:      req.Product,
		Quantity:     req.Quantity,
	})
	if err != nil {
		h.renderMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// Delete handles DELETE /api/orders/:id.
func (h *OrderHandler) Delete(c *gin.Context) {
	if err := h.facade.DeleteOrder(c.Request.Context(), c.Param("id")); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusNoContent)
}

// Advance handles POST /api/orders/:id/advance. Advancing a terminal order
// is a no-op and still answers 200 with the unchanged order.
func (h *OrderHandler) Advance(c *gin.Context) {
	order, _, err := h.facade.AdvanceOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// Revert handles POST /api/orders/:id/revert. Reverting an order with only
// its initial timeline entry is a no-op and still answers 200.
func (h *OrderHandler) Revert(c *gin.Context) {
	order, _, err := h.facade.RevertOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// SetStatus handles PUT /api/orders/:id/status, jumping to an explicit
// stage in either direction.
func (h *OrderHandler) SetStatus(c *gin.Context) {
	var req dto.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.SetOrderStatus(c.Request.Context(), c.Param("id"), model.OrderStatus(req.Status))
	if err != nil {
		if errors.Is(err, domainErrors.ErrUnknownStatus) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		h.renderMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

func (h *OrderHandler) renderMutationError(c *gin.Context, err error) {
	if errors.Is(err, domainErrors.ErrNotFound) {
		c.Status(http.StatusNotFound)
		return
	}
	c.Status(http.StatusInternalServerError)
}
