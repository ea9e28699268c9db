package models

import (
	"strings"
	"time"
)

// DateLayout is the calendar date format used in resource keys.
const DateLayout = "2006-01-02"

// ShippingEntry is one day of the shipping log: what was shipped that day.
type ShippingEntry struct {
	Date      string `json:"date"`
	Shipped   string `json:"shipped"`
	Completed bool   `json:"completed"`
}

// IsEmpty reports whether the entry carries no information. An empty entry
// is deleted remotely rather than stored.
func (e ShippingEntry) IsEmpty() bool {
	return strings.TrimSpace(e.Shipped) == "" && !e.Completed
}

// ShippingKey formats the resource key of the entry for t.
func ShippingKey(t time.Time) string {
	return t.Format(DateLayout)
}
