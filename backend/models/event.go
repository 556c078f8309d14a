package models

import (
	"time"

	"gorm.io/gorm"
)

type Event struct {
	gorm.Model
	UserID     uint      `gorm:"index;not null"`
	Title      string    `gorm:"not null"`
	Date       time.Time `gorm:"not null"`
	Type       string    `gorm:"default:class"` // class, exam
	CourseName string
	TimeRange  string // e.g. "10:00 - 11:30"
	Link       string
}
