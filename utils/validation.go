package utils

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/Unsorted-Wings/sweet-shop/models"
	"github.com/Unsorted-Wings/sweet-shop/store"
)

// EmailRegex matches the address format accepted at registration.
var EmailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const (
	nameMinLength = 2
	nameMaxLength = 100
)

// SweetInput is a candidate sweet payload. Pointer fields distinguish
// absent fields from zero values; Quantity is a float so non-integer JSON
// numbers can be detected and rejected rather than silently truncated.
type SweetInput struct {
	Name     *string  `json:"name"`
	Category *string  `json:"category"`
	Price    *float64 `json:"price"`
	Quantity *float64 `json:"quantity"`
}

func validateName(name string, errs store.ValidationErrors) store.ValidationErrors {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return append(errs, store.FieldError{Field: "name", Message: "Name is required"})
	}
	if n := utf8.RuneCountInString(trimmed); n < nameMinLength || n > nameMaxLength {
		return append(errs, store.FieldError{Field: "name", Message: "Name must be between 2 and 100 characters"})
	}
	return errs
}

func validateCategory(category string, errs store.ValidationErrors) store.ValidationErrors {
	if category == "" {
		return append(errs, store.FieldError{Field: "category", Message: "Category is required"})
	}
	if !models.IsValidCategory(category) {
		return append(errs, store.FieldError{
			Field:   "category",
			Message: "Category must be one of: " + strings.Join(models.Categories, ", "),
		})
	}
	return errs
}

func validatePrice(price float64, errs store.ValidationErrors) store.ValidationErrors {
	if price <= 0 {
		return append(errs, store.FieldError{Field: "price", Message: "Price must be greater than 0"})
	}
	return errs
}

func validateQuantity(quantity float64, errs store.ValidationErrors) store.ValidationErrors {
	// The upper bound keeps the value inside int range; without it a huge
	// JSON number would overflow the int conversion into a negative count.
	if quantity != math.Trunc(quantity) || quantity < 0 || quantity > math.MaxInt32 {
		return append(errs, store.FieldError{Field: "quantity", Message: "Quantity must be a non-negative integer"})
	}
	return errs
}

// ValidateSweetCreate checks a create payload. All four business fields are
// required, and every violation is reported, not just the first.
func ValidateSweetCreate(in SweetInput) error {
	var errs store.ValidationErrors

	if in.Name == nil {
		errs = append(errs, store.FieldError{Field: "name", Message: "Name is required"})
	} else {
		errs = validateName(*in.Name, errs)
	}
	if in.Category == nil {
		errs = append(errs, store.FieldError{Field: "category", Message: "Category is required"})
	} else {
		errs = validateCategory(*in.Category, errs)
	}
	if in.Price == nil {
		errs = append(errs, store.FieldError{Field: "price", Message: "Price is required"})
	} else {
		errs = validatePrice(*in.Price, errs)
	}
	if in.Quantity == nil {
		errs = append(errs, store.FieldError{Field: "quantity", Message: "Quantity is required"})
	} else {
		errs = validateQuantity(*in.Quantity, errs)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateSweetUpdate checks an attribute-update payload. Fields are
// optional, but each present field must satisfy its constraint. Quantity is
// not an attribute-update concern and is rejected before this runs.
func ValidateSweetUpdate(in SweetInput) error {
	var errs store.ValidationErrors

	if in.Name != nil {
		errs = validateName(*in.Name, errs)
	}
	if in.Category != nil {
		errs = validateCategory(*in.Category, errs)
	}
	if in.Price != nil {
		errs = validatePrice(*in.Price, errs)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateRegistration checks registration data and returns the first
// violation message, or an empty string when the data is valid.
func ValidateRegistration(email, password, name string) string {
	if email == "" {
		return "Email is required"
	}
	if !EmailRegex.MatchString(email) {
		return "Invalid email format"
	}
	if password == "" {
		return "Password is required"
	}
	if len(strings.TrimSpace(password)) < 6 {
		return "Password must be at least 6 characters long"
	}
	if name == "" {
		return "Name is required"
	}
	return ""
}
