package model

import "gorm.io/gorm"

type Bean struct {
	gorm.Model
	Name       string `gorm:"not null"`
	Origin     *string
	RoastLevel *string
	Notes      *string
}
