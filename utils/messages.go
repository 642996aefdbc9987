package utils

import "fmt"

// Message wording below is part of the observable API contract; tests and
// clients depend on the exact phrasing, including the distinct zero-result
// wording for plain listings versus filtered searches.

func pluralSuffix(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

// ListMessage describes a plain listing result.
func ListMessage(count int) string {
	if count == 0 {
		return "No sweets found"
	}
	return fmt.Sprintf("Found %d sweet%s", count, pluralSuffix(count))
}

// SearchMessage describes a filtered search result.
func SearchMessage(count int) string {
	if count == 0 {
		return "No sweets found matching search criteria"
	}
	return fmt.Sprintf("Found %d sweet%s matching search criteria", count, pluralSuffix(count))
}

// PurchaseMessage confirms a completed purchase.
func PurchaseMessage(quantity int, name string) string {
	return fmt.Sprintf("Successfully purchased %d unit%s of %s", quantity, pluralSuffix(quantity), name)
}

// RestockMessage confirms a completed restock.
func RestockMessage(quantity int, name string) string {
	return fmt.Sprintf("Successfully restocked %d unit%s of %s", quantity, pluralSuffix(quantity), name)
}
