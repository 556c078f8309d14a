package planner

import (
	"math"
	"time"

	"studydash/backend/models"
)

// DayBucket is one bar of the weekly hours chart.
type DayBucket struct {
	Day        string  `json:"day"`  // Mon, Tue, ...
	Date       string  `json:"date"` // 2006-01-02
	StudyHours float64 `json:"study"`
	ExamHours  float64 `json:"exam"`
}

// WeeklyBuckets aggregates study sessions into exactly 7 calendar-day
// buckets ending at now's day, oldest first. Durations are summed per
// session type and reported in hours rounded to one decimal. Sessions
// outside the window are ignored even if the caller passes them in.
func WeeklyBuckets(now time.Time, sessions []models.StudySession) []DayBucket {
	today := StartOfDay(now)

	var studyMinutes, examMinutes [7]int
	for _, s := range sessions {
		offset := CalendarDays(s.Date, today) // 0 for today, 6 for the oldest day
		if offset < 0 || offset > 6 {
			continue
		}
		switch s.Type {
		case "study":
			studyMinutes[6-offset] += s.DurationMinutes
		case "exam":
			examMinutes[6-offset] += s.DurationMinutes
		}
	}

	buckets := make([]DayBucket, 7)
	for i := 0; i < 7; i++ {
		day := today.AddDate(0, 0, i-6)
		buckets[i] = DayBucket{
			Day:        day.Format("Mon"),
			Date:       day.Format("2006-01-02"),
			StudyHours: roundHours(studyMinutes[i]),
			ExamHours:  roundHours(examMinutes[i]),
		}
	}
	return buckets
}

func roundHours(minutes int) float64 {
	return math.Round(float64(minutes)/60*10) / 10
}
