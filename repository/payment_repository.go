package repository

import (
	"time"

	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PaymentRepository struct {
	DB *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

// Upsert inserts the payment, or updates it in place when a row for the
// order already exists (unique index on order_id).
func (r *PaymentRepository) Upsert(tx *gorm.DB, p *entity.Payment) error {
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "order_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount", "method", "status", "paid_at", "updated_at"}),
	}).Create(p).Error
}

func (r *PaymentRepository) GetByOrderID(orderID uint) (*entity.Payment, error) {
	var p entity.Payment
	if err := r.DB.Where("order_id = ?", orderID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// Complete advances PENDING -> COMPLETED (simulated gateway callback).
// Guarded: false when the payment is not pending.
func (r *PaymentRepository) Complete(tx *gorm.DB, orderID uint, at time.Time) (bool, error) {
	res := tx.Model(&entity.Payment{}).
		Where("order_id = ? AND status = ?", orderID, entity.PaymentPending).
		Updates(map[string]any{"status": entity.PaymentCompleted, "paid_at": at})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// Fail marks a pending payment FAILED.
func (r *PaymentRepository) Fail(tx *gorm.DB, orderID uint) (bool, error) {
	res := tx.Model(&entity.Payment{}).
		Where("order_id = ? AND status = ?", orderID, entity.PaymentPending).
		Update("status", entity.PaymentFailed)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
