package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"storefront/internal/cart"
	"storefront/internal/checkout"
	"storefront/internal/config"
	"storefront/internal/handlers"
	"storefront/internal/middleware"
	"storefront/internal/orders"
	"storefront/internal/rates"
	"storefront/internal/shipping"
	"storefront/internal/storage"
)

func main() {
	config.Load()

	store, err := storage.Open(config.AppEnv.DataPath)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	log.Println("local store opened at:", config.AppEnv.DataPath)

	cartEngine := cart.NewEngine(store)
	cartEngine.Load()

	shippingStore := shipping.NewStore(store)
	ledger := orders.NewLedger(store)
	rateService := rates.New(config.AppEnv.QuoteURL, config.AppEnv.FallbackBTCPrice, config.AppEnv.QuoteTimeout)

	orchestrator := checkout.New(
		cartEngine,
		shippingStore,
		ledger,
		rateService,
		config.AppEnv.BTCAddress,
		config.AppEnv.WhatsAppNumber,
	)

	r := gin.Default()

	r.GET("/products", handlers.GetProducts())
	r.GET("/products/:id", handlers.GetProduct())
	r.GET("/categories", handlers.GetCategories())

	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.CartReady(cartEngine))
	{
		cartGroup.GET("", handlers.GetCart(cartEngine))
		cartGroup.POST("/items", handlers.AddCartItem(cartEngine))
		cartGroup.PUT("/items/:id", handlers.UpdateCartItem(cartEngine))
		cartGroup.DELETE("/items/:id", handlers.RemoveCartItem(cartEngine))
		cartGroup.DELETE("", handlers.ClearCart(cartEngine))
	}

	checkoutGroup := r.Group("/checkout")
	checkoutGroup.Use(middleware.CartReady(cartEngine))
	{
		checkoutGroup.POST("", handlers.BeginCheckout(orchestrator))
		checkoutGroup.POST("/shipping", handlers.SubmitShipping(orchestrator))
		checkoutGroup.GET("/quote", handlers.GetQuote(orchestrator))
		checkoutGroup.POST("/back", handlers.BackToShipping(orchestrator))
		checkoutGroup.POST("/confirm", handlers.ConfirmPayment(orchestrator))
	}

	r.GET("/orders", handlers.GetOrders(ledger))
	r.GET("/orders/:id", handlers.GetOrder(ledger))
	r.PATCH("/orders/:id/status", handlers.UpdateOrderStatus(ledger))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
