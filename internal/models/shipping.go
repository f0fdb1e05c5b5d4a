package models

// ShippingProfile holds the customer's last-entered shipping details. Only
// the latest value is kept; saving overwrites the previous profile.
type ShippingProfile struct {
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}
