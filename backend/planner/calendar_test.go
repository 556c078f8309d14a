package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"studydash/backend/models"
)

func TestMonthGridShape(t *testing.T) {
	cells := MonthGrid(noon, noon, nil, nil)
	require.Len(t, cells, 42)

	// March 2026 starts on a Sunday, so the first cell is March 1st.
	assert.Equal(t, "2026-03-01", cells[0].Date)
	assert.True(t, cells[0].InMonth)

	// Trailing cells spill into April.
	last := cells[41]
	assert.False(t, last.InMonth)
	assert.Equal(t, "2026-04-11", last.Date)
}

func TestMonthGridLeadingDays(t *testing.T) {
	// February 2026 starts on a Sunday too; check a month that does not.
	april := time.Date(2026, time.April, 15, 0, 0, 0, 0, time.UTC)
	cells := MonthGrid(april, noon, nil, nil)
	require.Len(t, cells, 42)

	// April 1st 2026 is a Wednesday; the grid starts the preceding Sunday.
	assert.Equal(t, "2026-03-29", cells[0].Date)
	assert.False(t, cells[0].InMonth)
	assert.True(t, cells[3].InMonth)
	assert.Equal(t, 1, cells[3].Day)
}

func TestMonthGridIsToday(t *testing.T) {
	cells := MonthGrid(noon, noon, nil, nil)
	todayCount := 0
	for _, cell := range cells {
		if cell.IsToday {
			todayCount++
			assert.Equal(t, "2026-03-10", cell.Date)
		}
	}
	assert.Equal(t, 1, todayCount)
}

func TestMonthGridPlacesEveryItemExactlyOnce(t *testing.T) {
	due := time.Date(2026, time.March, 20, 9, 0, 0, 0, time.UTC)
	tasks := []models.Task{
		{Model: gorm.Model{ID: 1, CreatedAt: noon}, Title: "created today"},
		{Model: gorm.Model{ID: 2, CreatedAt: noon.AddDate(0, 0, -40)}, Title: "due in march", DueDate: &due},
	}
	events := []models.Event{
		{Model: gorm.Model{ID: 1}, Title: "exam", Date: time.Date(2026, time.March, 25, 10, 0, 0, 0, time.UTC)},
	}

	cells := MonthGrid(noon, noon, tasks, events)

	taskSeen := map[uint]int{}
	eventSeen := map[uint]int{}
	for _, cell := range cells {
		for _, task := range cell.Tasks {
			taskSeen[task.ID]++
		}
		for _, event := range cell.Events {
			eventSeen[event.ID]++
		}
	}

	assert.Equal(t, map[uint]int{1: 1, 2: 1}, taskSeen)
	assert.Equal(t, map[uint]int{1: 1}, eventSeen)
}

func TestMonthGridDueDateWinsOverCreation(t *testing.T) {
	due := time.Date(2026, time.March, 20, 0, 0, 0, 0, time.UTC)
	tasks := []models.Task{
		{Model: gorm.Model{ID: 7, CreatedAt: noon}, Title: "due later", DueDate: &due},
	}

	cells := MonthGrid(noon, noon, tasks, nil)
	for _, cell := range cells {
		if len(cell.Tasks) > 0 {
			assert.Equal(t, "2026-03-20", cell.Date)
		}
	}
}

func TestMonthGridEventsBeforeTasksKeepInputOrder(t *testing.T) {
	day := time.Date(2026, time.March, 12, 0, 0, 0, 0, time.UTC)
	tasks := []models.Task{
		{Model: gorm.Model{ID: 1, CreatedAt: day}, Title: "task a"},
		{Model: gorm.Model{ID: 2, CreatedAt: day.Add(time.Hour)}, Title: "task b"},
	}
	events := []models.Event{
		{Model: gorm.Model{ID: 1}, Title: "event a", Date: day},
		{Model: gorm.Model{ID: 2}, Title: "event b", Date: day.Add(time.Hour)},
	}

	cells := MonthGrid(noon, noon, tasks, events)
	for _, cell := range cells {
		if cell.Date == "2026-03-12" {
			require.Len(t, cell.Events, 2)
			require.Len(t, cell.Tasks, 2)
			assert.Equal(t, "event a", cell.Events[0].Title)
			assert.Equal(t, "event b", cell.Events[1].Title)
			assert.Equal(t, "task a", cell.Tasks[0].Title)
			assert.Equal(t, "task b", cell.Tasks[1].Title)
		}
	}
}
