package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/server/http/dto"
)

// pathID parses a positive identifier from the :id path parameter.
// On failure it aborts the request with 400.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.AbortWithStatus(http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func toAccountResponse(account model.Account) dto.AccountResponse {
	return dto.AccountResponse{
		ID:        account.ID,
		Name:      account.Name,
		Contact:   account.Contact,
		Active:    account.Active,
		CreatedAt: account.CreatedAt,
	}
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:        order.ID,
		OwnerID:   order.OwnerID,
		Item:      order.Item,
		Amount:    order.Amount,
		Status:    string(order.Status),
		CreatedAt: order.CreatedAt,
		UpdatedAt: order.UpdatedAt,
	}
}

func toOrderResponses(orders []model.Order) []dto.OrderResponse {
	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}
	return response
}
