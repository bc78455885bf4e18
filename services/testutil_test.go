package services

import (
	"fmt"
	"testing"

	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/configs"
	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/entity"
	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// a single connection keeps the in-memory database alive and shared
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, configs.Migrate(db))
	require.NoError(t, configs.SeedRoles(db))
	return db
}

func newOrderService(db *gorm.DB, flow string) *OrderService {
	return NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewMenuRepository(db),
		repository.NewAddressRepository(db),
		repository.NewCourierRepository(db),
		repository.NewPaymentRepository(db),
		repository.NewRestaurantRepository(db),
		flow,
		nil,
	)
}

func newCourierService(db *gorm.DB) *CourierService {
	return NewCourierService(db,
		repository.NewCourierRepository(db),
		repository.NewOrderRepository(db),
		nil,
	)
}

func createUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()
	u := entity.User{Email: email, Password: "x", FirstName: email}
	require.NoError(t, db.Create(&u).Error)
	return &u
}

func createAddress(t *testing.T, db *gorm.DB, userID uint) *entity.Address {
	t.Helper()
	a := entity.Address{Title: "home", Street: "1 Main St", City: "Istanbul", UserID: userID}
	require.NoError(t, db.Create(&a).Error)
	return &a
}

func createRestaurant(t *testing.T, db *gorm.DB, ownerID uint, name string) *entity.Restaurant {
	t.Helper()
	r := entity.Restaurant{Name: name, City: "Istanbul", IsOpen: true, UserID: ownerID}
	require.NoError(t, db.Create(&r).Error)
	return &r
}

func createMenuItem(t *testing.T, db *gorm.DB, restID uint, name, price string) *entity.MenuItem {
	t.Helper()
	m := entity.MenuItem{
		Name:         name,
		Price:        decimal.RequireFromString(price),
		Available:    true,
		RestaurantID: restID,
	}
	require.NoError(t, db.Create(&m).Error)
	return &m
}

func createCourier(t *testing.T, db *gorm.DB, email string) *entity.Courier {
	t.Helper()
	u := createUser(t, db, email)
	c := entity.Courier{UserID: u.ID, VehiclePlate: fmt.Sprintf("34-%d", u.ID)}
	require.NoError(t, db.Create(&c).Error)
	return &c
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var cnt int64
	require.NoError(t, db.Model(model).Count(&cnt).Error)
	return cnt
}
