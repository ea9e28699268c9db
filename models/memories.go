package models

// Memory is a single highlighted day of a year.
type Memory struct {
	Title string `json:"title"`
	Emoji string `json:"emoji,omitempty"`
}

// YearMemories maps "MM-DD" day keys to the memory recorded for that day.
type YearMemories struct {
	Year     int               `json:"year"`
	Memories map[string]Memory `json:"memories"`
}
