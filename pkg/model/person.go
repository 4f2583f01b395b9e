package model

import "gorm.io/gorm"

type Person struct {
	gorm.Model
	Name     string `gorm:"not null"`
	Initials string `gorm:"size:2;not null"`
	Color    string `gorm:"size:7;not null"`
}
