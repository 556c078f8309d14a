package models

import "gorm.io/gorm"

type Course struct {
	gorm.Model
	UserID uint   `gorm:"index;not null"`
	Name   string `gorm:"not null"`
	Status string `gorm:"default:active"` // active, completed
}
