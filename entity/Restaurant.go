package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name        string `gorm:"not null;index" json:"name"`
	Description string `json:"description"`
	PhoneNumber string `json:"phoneNumber"`
	Street      string `json:"street"`
	City        string `json:"city"`
	IsOpen      bool   `gorm:"default:true" json:"isOpen"`

	UserID uint `gorm:"not null;index" json:"userId"` // owner
	User   User `json:"-"`

	MenuItems []MenuItem `json:"-"`
	Orders    []Order    `json:"-"`
	Ratings   []Rating   `json:"-"`
}
