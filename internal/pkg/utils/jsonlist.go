package utils

import (
	"strings"

	"github.com/goccy/go-json"
)

// ListToString encodes a slice as a JSON text column value. Nil and empty both become "[]".
func ListToString[T any](items []T) string {
	if len(items) == 0 {
		return "[]"
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "[]"
	}
	return string(data)
}

// StringToList decodes a JSON text column back into a slice. Blank or invalid input yields an empty slice.
func StringToList[T any](s string) []T {
	s = strings.TrimSpace(s)
	if s == "" || s == "[]" || s == "null" {
		return []T{}
	}
	var items []T
	if err := json.Unmarshal([]byte(s), &items); err != nil {
		return []T{}
	}
	return items
}

// NormalizeEmail trims and lower-cases an address for comparison.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
