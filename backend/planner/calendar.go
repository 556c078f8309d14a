package planner

import (
	"time"

	"studydash/backend/models"
)

// CalendarCell is one day of the month grid.
type CalendarCell struct {
	Date    string         `json:"date"` // 2006-01-02
	Day     int            `json:"day"`
	InMonth bool           `json:"inMonth"`
	IsToday bool           `json:"isToday"`
	Events  []models.Event `json:"events"`
	Tasks   []models.Task  `json:"tasks"`
}

// MonthGrid lays tasks and events onto a fixed 42-cell grid (6 weeks,
// Sunday-first) covering the month that contains `month`. A task lands on
// its due date when set, otherwise on its creation date; an event lands
// on its date. Within a cell events come before tasks, each group keeping
// the input order. Leading/trailing cells from adjacent months are marked
// with InMonth=false.
func MonthGrid(month, now time.Time, tasks []models.Task, events []models.Event) []CalendarCell {
	monthStart := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	gridStart := monthStart.AddDate(0, 0, -int(monthStart.Weekday()))

	cells := make([]CalendarCell, 0, 42)
	for i := 0; i < 42; i++ {
		day := gridStart.AddDate(0, 0, i)
		cell := CalendarCell{
			Date:    day.Format("2006-01-02"),
			Day:     day.Day(),
			InMonth: day.Month() == monthStart.Month(),
			IsToday: SameDay(day, now),
			Events:  []models.Event{},
			Tasks:   []models.Task{},
		}

		for _, e := range events {
			if SameDay(e.Date, day) {
				cell.Events = append(cell.Events, e)
			}
		}
		for _, t := range tasks {
			effective := t.CreatedAt
			if t.DueDate != nil {
				effective = *t.DueDate
			}
			if SameDay(effective, day) {
				cell.Tasks = append(cell.Tasks, t)
			}
		}

		cells = append(cells, cell)
	}
	return cells
}
