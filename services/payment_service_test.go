package services

import (
	"testing"

	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/entity"
	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentCompleteStaged(t *testing.T) {
	fix := newStagedOrder(t)
	svc := NewPaymentService(fix.db,
		repository.NewPaymentRepository(fix.db),
		repository.NewOrderRepository(fix.db))

	p, err := svc.Complete(fix.customer.ID, fix.orderID)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentCompleted, p.Status)
	assert.NotNil(t, p.PaidAt)

	// a second completion has nothing pending to complete
	_, err = svc.Complete(fix.customer.ID, fix.orderID)
	assert.ErrorIs(t, err, ErrPaymentNotPending)
}

func TestPaymentFailStaged(t *testing.T) {
	fix := newStagedOrder(t)
	svc := NewPaymentService(fix.db,
		repository.NewPaymentRepository(fix.db),
		repository.NewOrderRepository(fix.db))

	p, err := svc.Fail(fix.customer.ID, fix.orderID)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentFailed, p.Status)
	assert.Nil(t, p.PaidAt)
}

func TestPaymentForeignOrderHidden(t *testing.T) {
	fix := newStagedOrder(t)
	svc := NewPaymentService(fix.db,
		repository.NewPaymentRepository(fix.db),
		repository.NewOrderRepository(fix.db))

	stranger := createUser(t, fix.db, "stranger@test.local")
	_, err := svc.GetForUser(stranger.ID, fix.orderID)
	require.Error(t, err)
}
