package planner

import (
	"sort"
	"time"

	"studydash/backend/models"
)

// Challenges are the user's pending obligations: open tasks plus events
// from today onwards.
type Challenges struct {
	Tasks  []models.Task  `json:"tasks"`
	Events []models.Event `json:"events"`
}

// SelectChallenges filters incomplete tasks (newest created first) and
// today-or-later events (soonest first). Slices are always non-nil.
func SelectChallenges(now time.Time, tasks []models.Task, events []models.Event) Challenges {
	result := Challenges{
		Tasks:  []models.Task{},
		Events: []models.Event{},
	}

	for _, t := range tasks {
		if !t.IsCompleted {
			result.Tasks = append(result.Tasks, t)
		}
	}
	sort.SliceStable(result.Tasks, func(i, j int) bool {
		return result.Tasks[i].CreatedAt.After(result.Tasks[j].CreatedAt)
	})

	today := StartOfDay(now)
	for _, e := range events {
		if !e.Date.Before(today) {
			result.Events = append(result.Events, e)
		}
	}
	sort.SliceStable(result.Events, func(i, j int) bool {
		return result.Events[i].Date.Before(result.Events[j].Date)
	})

	return result
}
