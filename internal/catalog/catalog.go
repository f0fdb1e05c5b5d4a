package catalog

import (
	"strings"

	"storefront/internal/models"
)

// GetByID returns the product with the given id. The second return is false
// when no such product exists; an unknown id is not an error.
func GetByID(id string) (models.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// List returns every product in catalog definition order.
func List() []models.Product {
	out := make([]models.Product, len(products))
	copy(out, products)
	return out
}

// ByCategory returns the products in the given category, keeping catalog
// definition order.
func ByCategory(category string) []models.Product {
	out := make([]models.Product, 0)
	for _, p := range products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Search returns the products whose name contains query, case-insensitively.
// An empty query matches everything.
func Search(query string) []models.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return List()
	}
	out := make([]models.Product, 0)
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) {
			out = append(out, p)
		}
	}
	return out
}

// Categories returns the distinct category labels in first-seen order.
func Categories() []string {
	seen := make(map[string]bool, len(products))
	out := make([]string, 0)
	for _, p := range products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}
