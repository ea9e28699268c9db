package adapter

import (
	"fmt"
	"net/url"
	"strings"
)

// REST paths of the hi-time resources.
const (
	SettingsPath = "/api/settings"
	GoalsPath    = "/api/goals"
)

func WeekPath(key string) string {
	return "/api/weeks/" + url.PathEscape(key)
}

func GoalPath(id string) string {
	return GoalsPath + "/" + url.PathEscape(id)
}

func PlanPath(id string) string {
	return "/api/plans/" + url.PathEscape(id)
}

func ShippingYearPath(year int) string {
	return fmt.Sprintf("/api/shipping/%d", year)
}

// ShippingPath maps a YYYY-MM-DD date to /api/shipping/YYYY/MM/DD.
func ShippingPath(date string) string {
	return "/api/shipping/" + strings.ReplaceAll(date, "-", "/")
}

func ReviewPath(year int) string {
	return fmt.Sprintf("/api/reviews/%d", year)
}

func MemoriesPath(year int) string {
	return fmt.Sprintf("/api/memories/%d", year)
}
