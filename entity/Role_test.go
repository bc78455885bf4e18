package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleSetHasAny(t *testing.T) {
	cases := []struct {
		name     string
		held     RoleSet
		required []RoleName
		want     bool
	}{
		{"empty required passes any identity", NewRoleSet("CUSTOMER"), nil, true},
		{"exact match", NewRoleSet("COURIER"), []RoleName{RoleCourier}, true},
		{"intersection", NewRoleSet("CUSTOMER", "RESTAURANT"), []RoleName{RoleRestaurant, RoleAdmin}, true},
		{"disjoint", NewRoleSet("CUSTOMER"), []RoleName{RoleAdmin}, false},
		{"no roles held", NewRoleSet(), []RoleName{RoleCustomer}, false},
		{"admin is not implicit", NewRoleSet("ADMIN"), []RoleName{RoleCourier}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.held.HasAny(tc.required...))
		})
	}
}
