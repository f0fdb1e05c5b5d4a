package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront/internal/catalog"
	"storefront/internal/models"
)

/*
GET /products
- category and search filters are optional and combine
*/
func GetProducts() gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /products"
		defer handlePanic(c, route)

		log.Printf("[%s] hit category=%s search=%s", route, c.Query("category"), c.Query("search"))

		products := catalog.List()

		if category := strings.TrimSpace(c.Query("category")); category != "" {
			products = catalog.ByCategory(category)
		}

		if search := strings.TrimSpace(c.Query("search")); search != "" {
			matched := make([]models.Product, 0, len(products))
			q := strings.ToLower(search)
			for _, p := range products {
				if strings.Contains(strings.ToLower(p.Name), q) {
					matched = append(matched, p)
				}
			}
			products = matched
		}

		log.Printf("[%s] returning %d products", route, len(products))
		c.JSON(http.StatusOK, products)
	}
}

func GetProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /products/:id"
		defer handlePanic(c, route)

		product, found := catalog.GetByID(strings.TrimSpace(c.Param("id")))
		if !found {
			respondWithError(c, http.StatusNotFound, route, "product not found")
			return
		}

		c.JSON(http.StatusOK, product)
	}
}

func GetCategories() gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /categories"
		defer handlePanic(c, route)

		categories := catalog.Categories()
		log.Printf("[%s] returning %d categories", route, len(categories))
		c.JSON(http.StatusOK, categories)
	}
}
