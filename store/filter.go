package store

import (
	"errors"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrInvalidPriceParams is returned when minPrice or maxPrice does not
	// parse as a number.
	ErrInvalidPriceParams = errors.New("Invalid price parameters. minPrice and maxPrice must be valid numbers.")
	// ErrInvalidPriceRange is returned when both bounds parse but minPrice
	// exceeds maxPrice.
	ErrInvalidPriceRange = errors.New("minPrice cannot be greater than maxPrice")
)

// sortColumns whitelists the fields callers may sort by, keeping raw query
// input out of the ORDER BY clause. Unknown sort fields are ignored.
var sortColumns = map[string]string{
	"name":      "name",
	"category":  "category",
	"price":     "price",
	"quantity":  "quantity",
	"createdAt": "created_at",
}

// SweetFilter is the filter specification handed to the store. Absent
// filters are the zero value and are omitted from the composed query;
// price bounds are pointers so a bound of 0 is a real bound.
type SweetFilter struct {
	Name     string
	Category string
	MinPrice *float64
	MaxPrice *float64
	Sort     string
	Order    string
}

// IsEmpty reports whether the filter applies no search criteria. Used to
// pick between the plain-listing and search-result message wording.
func (f SweetFilter) IsEmpty() bool {
	return f.Name == "" && f.Category == "" && f.MinPrice == nil && f.MaxPrice == nil
}

// ParseSweetFilter validates raw query parameters and builds the filter
// specification. Price parameters must parse as numbers, and the range is
// checked only after both bounds parse successfully.
func ParseSweetFilter(name, category, minPrice, maxPrice, sort, order string) (SweetFilter, error) {
	f := SweetFilter{
		Name:     name,
		Category: category,
		Sort:     sort,
		Order:    order,
	}

	if minPrice != "" {
		v, err := strconv.ParseFloat(minPrice, 64)
		if err != nil {
			return SweetFilter{}, ErrInvalidPriceParams
		}
		f.MinPrice = &v
	}
	if maxPrice != "" {
		v, err := strconv.ParseFloat(maxPrice, 64)
		if err != nil {
			return SweetFilter{}, ErrInvalidPriceParams
		}
		f.MaxPrice = &v
	}
	if f.MinPrice != nil && f.MaxPrice != nil && *f.MinPrice > *f.MaxPrice {
		return SweetFilter{}, ErrInvalidPriceRange
	}

	return f, nil
}

// Scope translates the filter into gorm query clauses. When Sort is absent
// no ORDER BY is applied and result order follows storage order, which is
// not guaranteed.
func Scope(f SweetFilter) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.Category != "" {
			db = db.Where("category = ?", f.Category)
		}
		if f.Name != "" {
			db = db.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(f.Name)+"%")
		}
		if f.MinPrice != nil {
			db = db.Where("price >= ?", *f.MinPrice)
		}
		if f.MaxPrice != nil {
			db = db.Where("price <= ?", *f.MaxPrice)
		}
		if col, ok := sortColumns[f.Sort]; ok {
			direction := "ASC"
			if f.Order == "desc" {
				direction = "DESC"
			}
			db = db.Order(col + " " + direction)
		}
		return db
	}
}
