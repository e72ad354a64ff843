package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves maintenance endpoints.
type AdminHandler struct {
	facade AdminFacade
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(facade AdminFacade) *AdminHandler {
	return &AdminHandler{facade: facade}
}

// Reset handles POST /api/admin/reset.
func (h *AdminHandler) Reset(c *gin.Context) {
	h.facade.Reset()
	c.Status(http.StatusNoContent)
}
