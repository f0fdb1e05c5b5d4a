package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/checkout"
	"storefront/internal/models"
)

type shippingRequest struct {
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

func BeginCheckout(orch *checkout.Orchestrator) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /checkout"
		defer handlePanic(c, route)

		result, err := orch.Begin(c.Request.Context())
		if err != nil {
			if errors.Is(err, checkout.ErrEmptyCart) {
				respondWithError(c, http.StatusConflict, route, "cart is empty")
				return
			}
			respondWithError(c, http.StatusInternalServerError, route, "checkout could not start")
			return
		}

		log.Printf("[%s] session opened for order %s", route, result.OrderID)
		c.JSON(http.StatusOK, result)
	}
}

/*
POST /checkout/shipping
- field errors come back together in one response, never one at a time
*/
func SubmitShipping(orch *checkout.Orchestrator) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /checkout/shipping"
		defer handlePanic(c, route)

		var req shippingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		fieldErrors, err := orch.SubmitShipping(models.ShippingProfile(req))
		if err != nil {
			respondCheckoutError(c, route, err)
			return
		}
		if len(fieldErrors) > 0 {
			log.Printf("[%s] rejected with %d field errors", route, len(fieldErrors))
			c.JSON(http.StatusBadRequest, gin.H{"fieldErrors": fieldErrors})
			return
		}

		c.JSON(http.StatusOK, gin.H{"step": checkout.StepPayment})
	}
}

func GetQuote(orch *checkout.Orchestrator) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /checkout/quote"
		defer handlePanic(c, route)

		quote, err := orch.Quote()
		if err != nil {
			respondCheckoutError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, quote)
	}
}

func BackToShipping(orch *checkout.Orchestrator) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /checkout/back"
		defer handlePanic(c, route)

		if err := orch.Back(); err != nil {
			respondCheckoutError(c, route, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"step": checkout.StepShipping})
	}
}

func ConfirmPayment(orch *checkout.Orchestrator) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /checkout/confirm"
		defer handlePanic(c, route)

		result, err := orch.Confirm()
		if err != nil {
			respondCheckoutError(c, route, err)
			return
		}

		log.Printf("[%s] order %s confirmed", route, result.OrderID)
		c.JSON(http.StatusCreated, result)
	}
}

// respondCheckoutError maps the orchestrator's rejected transitions onto
// statuses: precondition violations are conflicts, not server failures.
func respondCheckoutError(c *gin.Context, route string, err error) {
	switch {
	case errors.Is(err, checkout.ErrEmptyCart):
		respondWithError(c, http.StatusConflict, route, "cart is empty")
	case errors.Is(err, checkout.ErrNoSession):
		respondWithError(c, http.StatusConflict, route, "no checkout in progress")
	case errors.Is(err, checkout.ErrWrongStep):
		respondWithError(c, http.StatusConflict, route, "not allowed in current checkout step")
	case errors.Is(err, checkout.ErrConfirmed):
		respondWithError(c, http.StatusConflict, route, "checkout already confirmed")
	default:
		respondWithError(c, http.StatusInternalServerError, route, "checkout error")
	}
}
