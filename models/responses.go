package models

// Envelopes wrap a resource under its name on the wire, e.g.
// {"settings": {...}}. Week documents are their own envelope.

type SettingsEnvelope struct {
	Settings Settings `json:"settings"`
}

type GoalEnvelope struct {
	Goal Goal `json:"goal"`
}

type GoalsEnvelope struct {
	Goals []Goal `json:"goals"`
}

type PlanEnvelope struct {
	Plan QuarterlyPlan `json:"plan"`
}

type ShippingEnvelope struct {
	Entry ShippingEntry `json:"entry"`
}

type ShippingListEnvelope struct {
	Entries []ShippingEntry `json:"entries"`
}

type ReviewEnvelope struct {
	Review AnnualReview `json:"review"`
}

type MemoriesEnvelope struct {
	Memories YearMemories `json:"memories"`
}

// ErrorResponse is the JSON body of every non-2xx API response.
type ErrorResponse struct {
	Error string `json:"error"`
}
