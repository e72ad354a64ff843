package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/server/http/dto"
)

// AccountHandler manages account-related endpoints.
type AccountHandler struct {
	facade AccountFacade
}

// NewAccountHandler constructs AccountHandler.
func NewAccountHandler(facade AccountFacade) *AccountHandler {
	return &AccountHandler{facade: facade}
}

// Create handles POST /api/accounts.
func (h *AccountHandler) Create(c *gin.Context) {
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	id := h.facade.CreateAccount(req.Name, req.Contact)
	if id == model.InvalidID {
		c.Status(http.StatusUnprocessableEntity)
		return
	}
	c.JSON(http.StatusCreated, dto.CreatedResponse{ID: id})
}

// List handles GET /api/accounts.
func (h *AccountHandler) List(c *gin.Context) {
	accounts := h.facade.ActiveAccounts()
	if len(accounts) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	response := make([]dto.AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		response = append(response, toAccountResponse(a))
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/accounts/:id.
func (h *AccountHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	account, found := h.facade.Account(id)
	if !found {
		c.Status(http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, toAccountResponse(account))
}

// Deactivate handles POST /api/accounts/:id/deactivate.
func (h *AccountHandler) Deactivate(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if !h.facade.DeactivateAccount(id) {
		c.Status(http.StatusNotFound)
		return
	}
	c.Status(http.StatusOK)
}

// Orders handles GET /api/accounts/:id/orders.
func (h *AccountHandler) Orders(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	orders := h.facade.OrdersForOwner(id)
	if len(orders) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, toOrderResponses(orders))
}

// Total handles GET /api/accounts/:id/total.
func (h *AccountHandler) Total(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.TotalResponse{OwnerID: id, Total: h.facade.TotalAmount(id)})
}
