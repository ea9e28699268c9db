package models

import (
	"fmt"
	"time"
)

// QuarterlyPlan is a week-by-week plan for one quarter.
//
// WeekNumber and StartDate of each week are derived from the week's
// position and the plan's StartDate; see [QuarterlyPlan.Normalized].
type QuarterlyPlan struct {
	ID        string     `json:"id"`
	StartDate string     `json:"startDate"`
	GoalIDs   []string   `json:"goalIds,omitempty"`
	Weeks     []PlanWeek `json:"weeks"`
}

// PlanWeek is one row of a quarterly plan.
type PlanWeek struct {
	WeekNumber int      `json:"weekNumber"`
	StartDate  string   `json:"startDate"`
	Focus      string   `json:"focus"`
	Tasks      []string `json:"tasks,omitempty"`
	Done       bool     `json:"done"`
}

// Anchor parses the plan's StartDate.
func (p QuarterlyPlan) Anchor() (time.Time, error) {
	if p.StartDate == "" {
		return time.Time{}, fmt.Errorf("plan %q has no start date", p.ID)
	}
	t, err := time.Parse(DateLayout, p.StartDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("plan %q start date: %w", p.ID, err)
	}
	return t, nil
}

// Normalized returns a copy of p whose week numbers and week start dates
// are recomputed from position. Stored values are ignored. Week start
// dates are left untouched when the anchor does not parse.
func (p QuarterlyPlan) Normalized() QuarterlyPlan {
	out := p
	out.Weeks = make([]PlanWeek, len(p.Weeks))
	anchor, err := p.Anchor()
	for i, w := range p.Weeks {
		w.WeekNumber = i + 1
		if err == nil {
			w.StartDate = anchor.AddDate(0, 0, 7*i).Format(DateLayout)
		}
		out.Weeks[i] = w
	}
	return out
}

// QuarterID formats the plan id ("2025-Q2") of the quarter containing t.
func QuarterID(t time.Time) string {
	return fmt.Sprintf("%04d-Q%d", t.Year(), (int(t.Month())-1)/3+1)
}
