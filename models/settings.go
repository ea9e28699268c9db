package models

// Category is a user-defined time-tracking category with its colour.
type Category struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Color string `json:"color,omitempty"`
}

// Settings is the single per-user preferences document.
type Settings struct {
	StartingHour int        `json:"startingHour"`
	Timezone     string     `json:"timezone,omitempty"`
	Categories   []Category `json:"categories"`
}

// DefaultSettings is used when the server confirms no settings exist yet.
func DefaultSettings() Settings {
	return Settings{
		StartingHour: 8,
		Categories: []Category{
			{Key: "work", Label: "Work", Color: "#4f81bd"},
			{Key: "rest", Label: "Rest", Color: "#9bbb59"},
			{Key: "sleep", Label: "Sleep", Color: "#8064a2"},
		},
	}
}
