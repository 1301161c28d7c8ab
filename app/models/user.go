package models

import "gorm.io/gorm"

// User is an account holder. Password holds the bcrypt hash and is never
// serialised; the raw value is never stored anywhere.
type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password string `gorm:"size:255;not null" json:"-"`
	Name     string `gorm:"size:255;not null" json:"name"`
	Phone    string `gorm:"size:50" json:"phone"`
	Address  string `gorm:"size:255" json:"address"`
}
