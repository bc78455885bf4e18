package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderCreated   OrderStatus = "CREATED"
	OrderPreparing OrderStatus = "PREPARING"
	OrderReady     OrderStatus = "READY"
	OrderPickedUp  OrderStatus = "PICKED_UP"
	OrderDelivered OrderStatus = "DELIVERED"
	OrderCancelled OrderStatus = "CANCELLED"
)

// TerminalOrderStatuses lists the states no transition may leave.
func TerminalOrderStatuses() []OrderStatus {
	return []OrderStatus{OrderDelivered, OrderCancelled}
}

type Order struct {
	gorm.Model
	Status OrderStatus     `gorm:"type:varchar(16);not null;default:'CREATED';check:status IN ('CREATED','PREPARING','READY','PICKED_UP','DELIVERED','CANCELLED')" json:"status"`
	Total  decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total"`

	UserID uint `gorm:"not null;index" json:"userId"`
	User   User `json:"-"`

	RestaurantID uint       `gorm:"not null;index" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	AddressID uint    `gorm:"not null" json:"addressId"`
	Address   Address `json:"-"`

	// preload only on detail
	Items      []OrderItem        `json:"-"`
	Assignment *CourierAssignment `gorm:"foreignKey:OrderID" json:"-"`
	Payment    *Payment           `gorm:"foreignKey:OrderID" json:"-"`
	Ratings    []Rating           `json:"-"`
}
