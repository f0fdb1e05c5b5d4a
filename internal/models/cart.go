package models

// CartLine is a product plus the quantity in the cart. A cart holds at most
// one line per product id; a line's quantity is always >= 1.
type CartLine struct {
	Product
	Quantity int `json:"quantity"`
}

func (l CartLine) LineTotal() float64 {
	return l.Price * float64(l.Quantity)
}
