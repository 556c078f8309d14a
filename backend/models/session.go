package models

import (
	"time"

	"gorm.io/gorm"
)

type StudySession struct {
	gorm.Model
	UserID          uint      `gorm:"index;not null"`
	Subject         string    `gorm:"default:General"`
	DurationMinutes int       `gorm:"not null"`
	Type            string    `gorm:"default:study"` // study, exam
	Date            time.Time `gorm:"not null"`
}
