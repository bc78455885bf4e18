package services

import (
	"testing"

	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/entity"
	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressDefaultSwap(t *testing.T) {
	db := newTestDB(t)
	svc := NewAddressService(db, repository.NewAddressRepository(db))
	u := createUser(t, db, "customer@test.local")

	first, err := svc.Create(u.ID, &AddressIn{Title: "home", Street: "1 Main St", City: "Istanbul", IsDefault: true})
	require.NoError(t, err)
	require.True(t, first.IsDefault)

	second, err := svc.Create(u.ID, &AddressIn{Title: "work", Street: "2 Side St", City: "Istanbul", IsDefault: true})
	require.NoError(t, err)
	require.True(t, second.IsDefault)

	// only one default at a time
	var defaults []entity.Address
	require.NoError(t, db.Where("user_id = ? AND is_default = ?", u.ID, true).Find(&defaults).Error)
	require.Len(t, defaults, 1)
	assert.Equal(t, second.ID, defaults[0].ID)
}

func TestAddressIsolationBetweenUsers(t *testing.T) {
	db := newTestDB(t)
	svc := NewAddressService(db, repository.NewAddressRepository(db))
	alice := createUser(t, db, "alice@test.local")
	bob := createUser(t, db, "bob@test.local")

	addr, err := svc.Create(alice.ID, &AddressIn{Street: "1 Main St", City: "Istanbul"})
	require.NoError(t, err)

	// bob cannot update or delete alice's address; both read as invalid
	_, err = svc.Update(bob.ID, addr.ID, &AddressIn{Street: "9 Else St", City: "Ankara"})
	assert.ErrorIs(t, err, ErrInvalidAddress)
	assert.ErrorIs(t, svc.Delete(bob.ID, addr.ID), ErrInvalidAddress)

	items, err := svc.List(bob.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}
