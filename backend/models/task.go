package models

import (
	"time"

	"gorm.io/gorm"
)

type Task struct {
	gorm.Model
	UserID      uint   `gorm:"index;not null"`
	Title       string `gorm:"not null"`
	Subject     string // optional "subject | time" label
	IsCompleted bool   `gorm:"default:false"`
	DueDate     *time.Time
}
