package services

import (
	"testing"

	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourierPickupAndDeliver(t *testing.T) {
	fix := newStagedOrder(t)
	svc := newCourierService(fix.db)
	courierUserID := fix.courier.UserID

	require.NoError(t, svc.Pickup(courierUserID, fix.orderID))

	var a entity.CourierAssignment
	require.NoError(t, fix.db.Where("order_id = ?", fix.orderID).First(&a).Error)
	assert.Equal(t, entity.AssignmentPickedUp, a.Status)
	assert.NotNil(t, a.PickedUpAt)
	assert.Nil(t, a.DeliveredAt)
	// mirrored onto the order in the same transaction
	assertOrderStatus(t, fix.db, fix.orderID, entity.OrderPickedUp)

	require.NoError(t, svc.Deliver(courierUserID, fix.orderID))

	require.NoError(t, fix.db.Where("order_id = ?", fix.orderID).First(&a).Error)
	assert.Equal(t, entity.AssignmentDelivered, a.Status)
	assert.NotNil(t, a.DeliveredAt)
	assertOrderStatus(t, fix.db, fix.orderID, entity.OrderDelivered)
}

func TestCourierDeliverBeforePickupFails(t *testing.T) {
	fix := newStagedOrder(t)
	svc := newCourierService(fix.db)

	err := svc.Deliver(fix.courier.UserID, fix.orderID)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// nothing moved
	var a entity.CourierAssignment
	require.NoError(t, fix.db.Where("order_id = ?", fix.orderID).First(&a).Error)
	assert.Equal(t, entity.AssignmentAssigned, a.Status)
	assertOrderStatus(t, fix.db, fix.orderID, entity.OrderCreated)
}

func TestCourierCannotTouchForeignAssignment(t *testing.T) {
	fix := newStagedOrder(t)
	svc := newCourierService(fix.db)

	other := createCourier(t, fix.db, "other-courier@test.local")
	err := svc.Pickup(other.UserID, fix.orderID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestCourierFreeAgainAfterDelivery(t *testing.T) {
	fix := newStagedOrder(t)
	svc := newCourierService(fix.db)

	// busy while the assignment is active
	active, err := svc.CurrentAssignment(fix.courier.UserID)
	require.NoError(t, err)
	require.NotNil(t, active)

	require.NoError(t, svc.Pickup(fix.courier.UserID, fix.orderID))
	require.NoError(t, svc.Deliver(fix.courier.UserID, fix.orderID))

	active, err = svc.CurrentAssignment(fix.courier.UserID)
	require.NoError(t, err)
	assert.Nil(t, active)

	dash, err := svc.Dashboard(fix.courier.UserID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, dash.Delivered)
	assert.False(t, dash.OnJob)
}
