package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront/internal/models"
	"storefront/internal/orders"
)

type updateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func GetOrders(ledger *orders.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /orders"
		defer handlePanic(c, route)

		all := ledger.List()
		log.Printf("[%s] returning %d orders", route, len(all))
		c.JSON(http.StatusOK, all)
	}
}

func GetOrder(ledger *orders.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /orders/:id"
		defer handlePanic(c, route)

		order, found := ledger.GetByID(strings.TrimSpace(c.Param("id")))
		if !found {
			respondWithError(c, http.StatusNotFound, route, "order not found")
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

/*
PATCH /orders/:id/status
- manual lifecycle trigger; nothing moves an order forward automatically
*/
func UpdateOrderStatus(ledger *orders.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PATCH /orders/:id/status"
		defer handlePanic(c, route)

		var req updateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		orderID := strings.TrimSpace(c.Param("id"))
		err := ledger.SetStatus(orderID, models.OrderStatus(req.Status))
		if err != nil {
			if errors.Is(err, orders.ErrNotFound) {
				respondWithError(c, http.StatusNotFound, route, "order not found")
				return
			}
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		log.Printf("[%s] order %s moved to %s", route, orderID, req.Status)
		c.JSON(http.StatusOK, gin.H{"orderId": orderID, "status": req.Status})
	}
}
