package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Password    string `json:"-"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`

	Roles []*Role `gorm:"many2many:user_roles;" json:"roles"`

	// Relations - preload only when needed
	Addresses        []Address    `json:"-"`
	Orders           []Order      `json:"-"`
	Ratings          []Rating     `json:"-"`
	RestaurantsOwned []Restaurant `gorm:"foreignKey:UserID" json:"-"`
	CourierProfile   *Courier     `gorm:"foreignKey:UserID" json:"-"`
}

// RoleSet returns the user's held roles as a set (Roles must be preloaded).
func (u *User) RoleSet() RoleSet {
	s := make(RoleSet, 0, len(u.Roles))
	for _, r := range u.Roles {
		s = append(s, r.Name)
	}
	return s
}
