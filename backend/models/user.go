package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name          string `gorm:"not null"`
	Email         string `gorm:"unique;not null"`
	PasswordHash  string `gorm:"not null"`
	CollegeName   string
	CurrentStreak int `gorm:"default:0"`
	LastLoginDate *time.Time
	HoursMode     string `gorm:"default:manual"` // manual, automatic
}
