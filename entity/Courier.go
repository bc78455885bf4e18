package entity

import (
	"gorm.io/gorm"
)

type Courier struct {
	gorm.Model
	VehiclePlate string `json:"vehiclePlate"`
	License      string `json:"license"`

	UserID uint `gorm:"uniqueIndex;not null" json:"userId"`
	User   User `json:"-"`

	Assignments []CourierAssignment `json:"-"`
}
