package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/server/http/dto"
)

// OrderHandler manages order-related endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	id := h.facade.CreateOrder(req.OwnerID, req.Item, req.Amount)
	if id == model.InvalidID {
		c.Status(http.StatusUnprocessableEntity)
		return
	}
	c.JSON(http.StatusCreated, dto.CreatedResponse{ID: id})
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	order, found := h.facade.Order(id)
	if !found {
		c.Status(http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(order))
}

// SetStatus handles PUT /api/orders/:id/status.
func (h *OrderHandler) SetStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	status, valid := model.ParseOrderStatus(req.Status)
	if !valid {
		c.Status(http.StatusBadRequest)
		return
	}

	if !h.facade.SetOrderStatus(id, status) {
		c.Status(http.StatusNotFound)
		return
	}
	c.Status(http.StatusOK)
}

// Cancel handles POST /api/orders/:id/cancel.
func (h *OrderHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	switch h.facade.CancelOrderOutcome(id) {
	case model.CancelApplied:
		c.Status(http.StatusOK)
	case model.CancelNotFound:
		c.Status(http.StatusNotFound)
	default:
		c.Status(http.StatusConflict)
	}
}
