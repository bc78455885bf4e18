package entity

import (
	"gorm.io/gorm"
)

// RoleName is the closed set of permission tags in the system.
type RoleName string

const (
	RoleAdmin      RoleName = "ADMIN"
	RoleRestaurant RoleName = "RESTAURANT"
	RoleCourier    RoleName = "COURIER"
	RoleCustomer   RoleName = "CUSTOMER"
)

func AllRoles() []RoleName {
	return []RoleName{RoleAdmin, RoleRestaurant, RoleCourier, RoleCustomer}
}

type Role struct {
	gorm.Model
	Name RoleName `gorm:"uniqueIndex;not null" json:"name"`

	Users []*User `gorm:"many2many:user_roles;" json:"-"`
}

// RoleSet is the set of roles held by (or required from) an identity.
type RoleSet []RoleName

func NewRoleSet(names ...string) RoleSet {
	s := make(RoleSet, 0, len(names))
	for _, n := range names {
		s = append(s, RoleName(n))
	}
	return s
}

func (s RoleSet) Has(r RoleName) bool {
	for _, held := range s {
		if held == r {
			return true
		}
	}
	return false
}

// HasAny reports whether the held set intersects the required set.
// An empty required set means "any authenticated identity".
func (s RoleSet) HasAny(required ...RoleName) bool {
	if len(required) == 0 {
		return true
	}
	for _, r := range required {
		if s.Has(r) {
			return true
		}
	}
	return false
}

func (s RoleSet) Strings() []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
