package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront/internal/cart"
	"storefront/internal/catalog"
	"storefront/internal/rates"
)

type addCartItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type updateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

func cartResponse(engine *cart.Engine) gin.H {
	total := engine.Total()
	return gin.H{
		"items":          engine.Items(),
		"total":          total,
		"totalFormatted": rates.FormatBase(total),
		"itemCount":      engine.ItemCount(),
	}
}

func GetCart(engine *cart.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /cart"
		defer handlePanic(c, route)

		c.JSON(http.StatusOK, cartResponse(engine))
	}
}

/*
POST /cart/items
- quantity defaults to 1; an existing line for the product is incremented
*/
func AddCartItem(engine *cart.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /cart/items"
		defer handlePanic(c, route)

		var req addCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}
		if req.Quantity == 0 {
			req.Quantity = 1
		}
		if req.Quantity < 1 {
			respondWithError(c, http.StatusBadRequest, route, "quantity must be a positive integer")
			return
		}

		product, found := catalog.GetByID(req.ProductID)
		if !found {
			respondWithError(c, http.StatusNotFound, route, "product not found")
			return
		}

		if err := engine.Add(product, req.Quantity); err != nil {
			respondWithError(c, http.StatusServiceUnavailable, route, "cart unavailable")
			return
		}

		log.Printf("[%s] added %s x%d", route, product.ID, req.Quantity)
		c.JSON(http.StatusOK, cartResponse(engine))
	}
}

/*
PUT /cart/items/:id
- quantity <= 0 removes the line; an absent id is a no-op
*/
func UpdateCartItem(engine *cart.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /cart/items/:id"
		defer handlePanic(c, route)

		var req updateCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		productID := strings.TrimSpace(c.Param("id"))
		if err := engine.SetQuantity(productID, *req.Quantity); err != nil {
			respondWithError(c, http.StatusServiceUnavailable, route, "cart unavailable")
			return
		}

		c.JSON(http.StatusOK, cartResponse(engine))
	}
}

func RemoveCartItem(engine *cart.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /cart/items/:id"
		defer handlePanic(c, route)

		if err := engine.Remove(strings.TrimSpace(c.Param("id"))); err != nil {
			respondWithError(c, http.StatusServiceUnavailable, route, "cart unavailable")
			return
		}

		c.JSON(http.StatusOK, cartResponse(engine))
	}
}

func ClearCart(engine *cart.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /cart"
		defer handlePanic(c, route)

		if err := engine.Clear(); err != nil {
			respondWithError(c, http.StatusServiceUnavailable, route, "cart unavailable")
			return
		}

		log.Printf("[%s] cart cleared", route)
		c.JSON(http.StatusOK, cartResponse(engine))
	}
}
