package entity

import (
	"gorm.io/gorm"
)

type Rating struct {
	gorm.Model
	Score   int    `gorm:"not null;check:score BETWEEN 1 AND 5" json:"score"`
	Comment string `json:"comment"`

	UserID uint `gorm:"not null;index" json:"userId"`
	User   User `json:"-"`

	RestaurantID uint       `gorm:"not null;index" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	// one rating per order
	OrderID uint  `gorm:"uniqueIndex;not null" json:"orderId"`
	Order   Order `json:"-"`
}
