package entity

import (
	"gorm.io/gorm"
)

type Address struct {
	gorm.Model
	Title      string `json:"title"`
	Street     string `gorm:"not null" json:"street"`
	City       string `gorm:"not null" json:"city"`
	PostalCode string `json:"postalCode"`
	IsDefault  bool   `gorm:"default:false" json:"isDefault"`

	UserID uint `gorm:"not null;index" json:"userId"`
	User   User `json:"-"`
}
