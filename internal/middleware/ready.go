package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/cart"
)

// CartReady rejects requests until the cart engine has rehydrated its
// persisted snapshot. Letting a mutation through earlier could persist an
// empty startup cart over the stored one.
func CartReady(engine *cart.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !engine.Ready() {
			log.Println("[READY] [ERROR] request before cart load completed")
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "store is starting up"})
			return
		}
		c.Next()
	}
}
