package shipping

import (
	"log"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"storefront/internal/models"
	"storefront/internal/storage"
)

var phonePattern = regexp.MustCompile(`^[+\d\s\-()]+$`)

// Store validates shipping profiles and persists the last accepted one so it
// can be offered back as defaults on the next checkout.
type Store struct {
	db       *storage.Store
	validate *validator.Validate
}

func NewStore(db *storage.Store) *Store {
	v := validator.New()
	v.RegisterValidation("phonechars", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	return &Store{db: db, validate: v}
}

// candidate carries the validation rules. Fields are trimmed before the
// rules run, so length limits apply to the meaningful characters only.
type candidate struct {
	FullName   string `validate:"required,min=2,max=100"`
	Email      string `validate:"required,email,max=255"`
	Phone      string `validate:"required,min=7,max=20,phonechars"`
	Address    string `validate:"required,min=5,max=200"`
	City       string `validate:"required,min=2,max=100"`
	State      string `validate:"omitempty,max=100"`
	PostalCode string `validate:"required,min=3,max=20"`
	Country    string `validate:"required,min=2,max=100"`
}

var fieldMessages = map[string]string{
	"FullName":   "Name must be between 2 and 100 characters",
	"Email":      "Please enter a valid email address",
	"Phone":      "Please enter a valid phone number",
	"Address":    "Address must be between 5 and 200 characters",
	"City":       "City must be between 2 and 100 characters",
	"State":      "State must be less than 100 characters",
	"PostalCode": "Postal code must be between 3 and 20 characters",
	"Country":    "Country must be between 2 and 100 characters",
}

var fieldNames = map[string]string{
	"FullName":   "fullName",
	"Email":      "email",
	"Phone":      "phone",
	"Address":    "address",
	"City":       "city",
	"State":      "state",
	"PostalCode": "postalCode",
	"Country":    "country",
}

// Validate trims every field and checks the whole profile, collecting one
// message per failing field rather than stopping at the first. On success
// the returned profile holds the trimmed values and the error map is empty.
func (s *Store) Validate(p models.ShippingProfile) (models.ShippingProfile, map[string]string) {
	trimmed := models.ShippingProfile{
		FullName:   strings.TrimSpace(p.FullName),
		Email:      strings.TrimSpace(p.Email),
		Phone:      strings.TrimSpace(p.Phone),
		Address:    strings.TrimSpace(p.Address),
		City:       strings.TrimSpace(p.City),
		State:      strings.TrimSpace(p.State),
		PostalCode: strings.TrimSpace(p.PostalCode),
		Country:    strings.TrimSpace(p.Country),
	}

	err := s.validate.Struct(candidate(trimmed))
	if err == nil {
		return trimmed, nil
	}

	fieldErrors := make(map[string]string)
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		log.Println("[SHIPPING] unexpected validation failure:", err)
		fieldErrors["profile"] = "invalid shipping details"
		return models.ShippingProfile{}, fieldErrors
	}
	for _, fe := range validationErrors {
		fieldErrors[fieldNames[fe.Field()]] = fieldMessages[fe.Field()]
	}
	return models.ShippingProfile{}, fieldErrors
}

// Load returns the last saved profile. Missing or corrupt storage reads as
// an empty profile, never as an error.
func (s *Store) Load() models.ShippingProfile {
	var p models.ShippingProfile
	s.db.Get(storage.KeyShipping, &p)
	return p
}

// Save overwrites the stored profile with p. No history is kept.
func (s *Store) Save(p models.ShippingProfile) error {
	return s.db.Put(storage.KeyShipping, p)
}

// FormatForMessage renders the profile as the shipping block of the outbound
// order notification. State is skipped when empty.
func FormatForMessage(p models.ShippingProfile) string {
	lines := []string{
		"*Name:* " + p.FullName,
		"*Email:* " + p.Email,
		"*Phone:* " + p.Phone,
		"*Address:* " + p.Address,
		"*City:* " + p.City,
	}
	if p.State != "" {
		lines = append(lines, "*State:* "+p.State)
	}
	lines = append(lines,
		"*Postal Code:* "+p.PostalCode,
		"*Country:* "+p.Country,
	)
	return strings.Join(lines, "\n")
}
