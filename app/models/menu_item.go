package models

import "gorm.io/gorm"

// MenuItem is one entry in the catalogue. Available gates the public
// listing only; lookups by id return unavailable items too, so order
// history can always resolve its lines.
type MenuItem struct {
	gorm.Model
	Name        string  `gorm:"size:255;not null;index" json:"name"`
	Description string  `gorm:"type:text"               json:"description"`
	Price       float64 `gorm:"not null;default:0"      json:"price"`
	Category    string  `gorm:"size:100;not null;index" json:"category"`
	Image       string  `gorm:"size:255"                json:"image"`
	Available   bool    `gorm:"not null;default:true"   json:"available"`
}
