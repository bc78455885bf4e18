package services

import (
	"testing"

	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/configs"
	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceOrderInstantFlow(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db, configs.FlowInstant)

	customer := createUser(t, db, "customer@test.local")
	addr := createAddress(t, db, customer.ID)
	owner := createUser(t, db, "owner@test.local")
	rest := createRestaurant(t, db, owner.ID, "Kebapci")
	itemA := createMenuItem(t, db, rest.ID, "Adana", "10.00")
	itemB := createMenuItem(t, db, rest.ID, "Ayran", "5.00")
	courier := createCourier(t, db, "courier@test.local")

	res, err := svc.Place(customer.ID, &PlaceOrderReq{
		RestaurantID:  rest.ID,
		AddressID:     addr.ID,
		PaymentMethod: "CREDIT_CARD",
		Items: []OrderItemIn{
			{MenuItemID: itemA.ID, Quantity: 2},
			{MenuItemID: itemB.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)

	assert.True(t, res.TotalAmount.Equal(decimal.RequireFromString("25.00")),
		"total = %s", res.TotalAmount)
	assert.Equal(t, entity.OrderDelivered, res.Status)
	assert.Equal(t, entity.PaymentCompleted, res.PaymentStatus)
	assert.Equal(t, courier.ID, res.CourierID)

	// exactly one assignment and one payment for the order
	var assignments []entity.CourierAssignment
	require.NoError(t, db.Where("order_id = ?", res.OrderID).Find(&assignments).Error)
	require.Len(t, assignments, 1)
	assert.Equal(t, entity.AssignmentDelivered, assignments[0].Status)
	assert.NotNil(t, assignments[0].DeliveredAt)

	var payments []entity.Payment
	require.NoError(t, db.Where("order_id = ?", res.OrderID).Find(&payments).Error)
	require.Len(t, payments, 1)
	assert.Equal(t, entity.PaymentCreditCard, payments[0].Method)
	assert.True(t, payments[0].Amount.Equal(res.TotalAmount))
	assert.NotNil(t, payments[0].PaidAt)

	assert.EqualValues(t, 2, countRows(t, db, &entity.OrderItem{}))
}

func TestPlaceOrderStagedFlow(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db, configs.FlowStaged)

	customer := createUser(t, db, "customer@test.local")
	addr := createAddress(t, db, customer.ID)
	owner := createUser(t, db, "owner@test.local")
	rest := createRestaurant(t, db, owner.ID, "Kebapci")
	item := createMenuItem(t, db, rest.ID, "Adana", "10.00")
	createCourier(t, db, "courier@test.local")

	res, err := svc.Place(customer.ID, &PlaceOrderReq{
		RestaurantID:  rest.ID,
		AddressID:     addr.ID,
		PaymentMethod: "CASH",
		Items:         []OrderItemIn{{MenuItemID: item.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.OrderCreated, res.Status)
	assert.Equal(t, entity.PaymentPending, res.PaymentStatus)

	var a entity.CourierAssignment
	require.NoError(t, db.Where("order_id = ?", res.OrderID).First(&a).Error)
	assert.Equal(t, entity.AssignmentAssigned, a.Status)
	assert.NotNil(t, a.AssignedAt)
	assert.Nil(t, a.DeliveredAt)
}

func TestPlaceOrderItemFromOtherRestaurant(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db, configs.FlowInstant)

	customer := createUser(t, db, "customer@test.local")
	addr := createAddress(t, db, customer.ID)
	owner := createUser(t, db, "owner@test.local")
	rest3 := createRestaurant(t, db, owner.ID, "Kebapci")
	rest4 := createRestaurant(t, db, owner.ID, "Pideci")
	itemA := createMenuItem(t, db, rest3.ID, "Adana", "10.00")
	itemB := createMenuItem(t, db, rest4.ID, "Pide", "5.00") // wrong restaurant
	createCourier(t, db, "courier@test.local")

	_, err := svc.Place(customer.ID, &PlaceOrderReq{
		RestaurantID:  rest3.ID,
		AddressID:     addr.ID,
		PaymentMethod: "CASH",
		Items: []OrderItemIn{
			{MenuItemID: itemA.ID, Quantity: 2},
			{MenuItemID: itemB.ID, Quantity: 1},
		},
	})
	require.Error(t, err)

	var mie *MenuItemError
	require.ErrorAs(t, err, &mie)
	assert.Equal(t, itemB.ID, mie.MenuItemID)

	// all-or-nothing: the whole attempt left no trace
	assert.EqualValues(t, 0, countRows(t, db, &entity.Order{}))
	assert.EqualValues(t, 0, countRows(t, db, &entity.OrderItem{}))
	assert.EqualValues(t, 0, countRows(t, db, &entity.CourierAssignment{}))
	assert.EqualValues(t, 0, countRows(t, db, &entity.Payment{}))
}

func TestPlaceOrderUnavailableItem(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db, configs.FlowInstant)

	customer := createUser(t, db, "customer@test.local")
	addr := createAddress(t, db, customer.ID)
	owner := createUser(t, db, "owner@test.local")
	rest := createRestaurant(t, db, owner.ID, "Kebapci")
	item := createMenuItem(t, db, rest.ID, "Adana", "10.00")
	require.NoError(t, db.Model(item).Update("available", false).Error)
	createCourier(t, db, "courier@test.local")

	_, err := svc.Place(customer.ID, &PlaceOrderReq{
		RestaurantID:  rest.ID,
		AddressID:     addr.ID,
		PaymentMethod: "CASH",
		Items:         []OrderItemIn{{MenuItemID: item.ID, Quantity: 1}},
	})
	var mie *MenuItemError
	require.ErrorAs(t, err, &mie)
	assert.EqualValues(t, 0, countRows(t, db, &entity.Order{}))
}

func TestPlaceOrderNoCourierAvailable(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db, configs.FlowInstant)

	customer := createUser(t, db, "customer@test.local")
	addr := createAddress(t, db, customer.ID)
	owner := createUser(t, db, "owner@test.local")
	rest := createRestaurant(t, db, owner.ID, "Kebapci")
	item := createMenuItem(t, db, rest.ID, "Adana", "10.00")

	req := &PlaceOrderReq{
		RestaurantID:  rest.ID,
		AddressID:     addr.ID,
		PaymentMethod: "WALLET",
		Items:         []OrderItemIn{{MenuItemID: item.ID, Quantity: 1}},
	}

	_, err := svc.Place(customer.ID, req)
	require.ErrorIs(t, err, ErrNoCourierAvailable)

	// rollback completeness: nothing from the failed attempt remains
	assert.EqualValues(t, 0, countRows(t, db, &entity.Order{}))
	assert.EqualValues(t, 0, countRows(t, db, &entity.OrderItem{}))
	assert.EqualValues(t, 0, countRows(t, db, &entity.CourierAssignment{}))
	assert.EqualValues(t, 0, countRows(t, db, &entity.Payment{}))

	// retrying the identical request once a courier exists behaves as if
	// the failed attempt never happened
	createCourier(t, db, "courier@test.local")
	res, err := svc.Place(customer.ID, req)
	require.NoError(t, err)
	assert.EqualValues(t, 1, countRows(t, db, &entity.Order{}))
	assert.True(t, res.TotalAmount.Equal(decimal.RequireFromString("10.00")))
}

func TestPlaceOrderInvalidAddress(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db, configs.FlowInstant)

	customer := createUser(t, db, "customer@test.local")
	other := createUser(t, db, "other@test.local")
	othersAddr := createAddress(t, db, other.ID)
	owner := createUser(t, db, "owner@test.local")
	rest := createRestaurant(t, db, owner.ID, "Kebapci")
	item := createMenuItem(t, db, rest.ID, "Adana", "10.00")
	createCourier(t, db, "courier@test.local")

	for name, addrID := range map[string]uint{
		"someone else's address": othersAddr.ID,
		"missing address":        99999,
	} {
		_, err := svc.Place(customer.ID, &PlaceOrderReq{
			RestaurantID:  rest.ID,
			AddressID:     addrID,
			PaymentMethod: "CASH",
			Items:         []OrderItemIn{{MenuItemID: item.ID, Quantity: 1}},
		})
		assert.ErrorIs(t, err, ErrInvalidAddress, name)
	}
	assert.EqualValues(t, 0, countRows(t, db, &entity.Order{}))
}

func TestPlaceOrderEmptyItems(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db, configs.FlowInstant)

	customer := createUser(t, db, "customer@test.local")
	addr := createAddress(t, db, customer.ID)

	_, err := svc.Place(customer.ID, &PlaceOrderReq{
		RestaurantID:  1,
		AddressID:     addr.ID,
		PaymentMethod: "CASH",
	})
	require.ErrorIs(t, err, ErrEmptyOrder)
}

func TestPlaceOrderZeroQuantity(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db, configs.FlowInstant)

	customer := createUser(t, db, "customer@test.local")
	addr := createAddress(t, db, customer.ID)

	_, err := svc.Place(customer.ID, &PlaceOrderReq{
		RestaurantID:  1,
		AddressID:     addr.ID,
		PaymentMethod: "CASH",
		Items:         []OrderItemIn{{MenuItemID: 1, Quantity: 0}},
	})
	var mie *MenuItemError
	require.ErrorAs(t, err, &mie)
	assert.EqualValues(t, 0, countRows(t, db, &entity.Order{}))
}

func TestPriceSnapshotSurvivesMenuChange(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db, configs.FlowInstant)

	customer := createUser(t, db, "customer@test.local")
	addr := createAddress(t, db, customer.ID)
	owner := createUser(t, db, "owner@test.local")
	rest := createRestaurant(t, db, owner.ID, "Kebapci")
	item := createMenuItem(t, db, rest.ID, "Adana", "10.00")
	createCourier(t, db, "courier@test.local")

	res, err := svc.Place(customer.ID, &PlaceOrderReq{
		RestaurantID:  rest.ID,
		AddressID:     addr.ID,
		PaymentMethod: "CASH",
		Items:         []OrderItemIn{{MenuItemID: item.ID, Quantity: 2}},
	})
	require.NoError(t, err)
	require.True(t, res.TotalAmount.Equal(decimal.RequireFromString("20.00")))

	// menu price changes after the fact
	require.NoError(t, db.Model(item).
		Update("price", decimal.RequireFromString("99.00")).Error)

	var o entity.Order
	require.NoError(t, db.First(&o, res.OrderID).Error)
	assert.True(t, o.Total.Equal(decimal.RequireFromString("20.00")), "total = %s", o.Total)

	var oi entity.OrderItem
	require.NoError(t, db.Where("order_id = ?", o.ID).First(&oi).Error)
	assert.True(t, oi.UnitPrice.Equal(decimal.RequireFromString("10.00")))
}

func TestCourierSelectionPrefersLowestFreeUserID(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db, configs.FlowStaged)

	customer := createUser(t, db, "customer@test.local")
	addr := createAddress(t, db, customer.ID)
	owner := createUser(t, db, "owner@test.local")
	rest := createRestaurant(t, db, owner.ID, "Kebapci")
	item := createMenuItem(t, db, rest.ID, "Adana", "10.00")

	first := createCourier(t, db, "courier1@test.local")
	second := createCourier(t, db, "courier2@test.local")

	req := &PlaceOrderReq{
		RestaurantID:  rest.ID,
		AddressID:     addr.ID,
		PaymentMethod: "CASH",
		Items:         []OrderItemIn{{MenuItemID: item.ID, Quantity: 1}},
	}

	// staged keeps the assignment active, so the first courier stays busy
	res1, err := svc.Place(customer.ID, req)
	require.NoError(t, err)
	assert.Equal(t, first.ID, res1.CourierID)

	res2, err := svc.Place(customer.ID, req)
	require.NoError(t, err)
	assert.Equal(t, second.ID, res2.CourierID)

	// every courier busy now
	_, err = svc.Place(customer.ID, req)
	assert.ErrorIs(t, err, ErrNoCourierAvailable)
}
