package models

import (
	"strings"
	"time"
)

// AnnualReview holds the answers of one year's review questionnaire,
// keyed by question id.
type AnnualReview struct {
	Year      int               `json:"year"`
	Answers   map[string]string `json:"answers"`
	UpdatedAt time.Time         `json:"updatedAt,omitzero"`
}

// IsEmpty reports whether every answer is blank.
func (r AnnualReview) IsEmpty() bool {
	for _, a := range r.Answers {
		if strings.TrimSpace(a) != "" {
			return false
		}
	}
	return true
}
