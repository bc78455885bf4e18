package repository

import (
	"time"

	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/entity"

	"gorm.io/gorm"
)

type CourierRepository struct {
	DB *gorm.DB
}

func NewCourierRepository(db *gorm.DB) *CourierRepository {
	return &CourierRepository{DB: db}
}

func (r *CourierRepository) Create(c *entity.Courier) error {
	return r.DB.Create(c).Error
}

func (r *CourierRepository) GetByUserID(userID uint) (*entity.Courier, error) {
	var c entity.Courier
	if err := r.DB.Where("user_id = ?", userID).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CourierRepository) GetByID(id uint) (*entity.Courier, error) {
	var c entity.Courier
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// PickAvailable selects the courier holding no assignment in an active
// status (ASSIGNED or PICKED_UP), lowest user id first. Returns
// gorm.ErrRecordNotFound when every courier is busy.
func (r *CourierRepository) PickAvailable(tx *gorm.DB) (*entity.Courier, error) {
	var c entity.Courier
	err := tx.
		Where("NOT EXISTS (SELECT 1 FROM courier_assignments a"+
			" WHERE a.courier_id = couriers.id AND a.status IN ? AND a.deleted_at IS NULL)",
			entity.ActiveAssignmentStatuses()).
		Order("user_id ASC").
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ---------------- Assignments ----------------

func (r *CourierRepository) CreateAssignment(tx *gorm.DB, a *entity.CourierAssignment) error {
	return tx.Create(a).Error
}

func (r *CourierRepository) GetAssignmentForOrder(orderID uint) (*entity.CourierAssignment, error) {
	var a entity.CourierAssignment
	if err := r.DB.Where("order_id = ?", orderID).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// GetActiveAssignment returns the courier's current job, if any.
func (r *CourierRepository) GetActiveAssignment(courierID uint) (*entity.CourierAssignment, error) {
	var a entity.CourierAssignment
	err := r.DB.Where("courier_id = ? AND status IN ?", courierID, entity.ActiveAssignmentStatuses()).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ReleaseAssignment soft-deletes the order's not-yet-picked-up assignment
// so the courier drops out of the active set and becomes selectable again.
func (r *CourierRepository) ReleaseAssignment(tx *gorm.DB, orderID uint) error {
	return tx.Where("order_id = ? AND status = ?", orderID, entity.AssignmentAssigned).
		Delete(&entity.CourierAssignment{}).Error
}

// MarkPickedUp advances ASSIGNED -> PICKED_UP and stamps the pickup time.
// Guarded: false when the assignment is not in ASSIGNED, or belongs to a
// different courier.
func (r *CourierRepository) MarkPickedUp(tx *gorm.DB, orderID, courierID uint, at time.Time) (bool, error) {
	res := tx.Model(&entity.CourierAssignment{}).
		Where("order_id = ? AND courier_id = ? AND status = ?", orderID, courierID, entity.AssignmentAssigned).
		Updates(map[string]any{"status": entity.AssignmentPickedUp, "picked_up_at": at})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// MarkDelivered advances PICKED_UP -> DELIVERED and stamps the delivery time.
func (r *CourierRepository) MarkDelivered(tx *gorm.DB, orderID, courierID uint, at time.Time) (bool, error) {
	res := tx.Model(&entity.CourierAssignment{}).
		Where("order_id = ? AND courier_id = ? AND status = ?", orderID, courierID, entity.AssignmentPickedUp).
		Updates(map[string]any{"status": entity.AssignmentDelivered, "delivered_at": at})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// GET /partner/courier/histories
type AssignmentHistoryRow struct {
	ID          uint                    `json:"id"`
	OrderID     uint                    `json:"orderId"`
	Status      entity.AssignmentStatus `json:"status"`
	AssignedAt  *time.Time              `json:"assignedAt,omitempty"`
	DeliveredAt *time.Time              `json:"deliveredAt,omitempty"`
}

func (r *CourierRepository) ListHistory(courierID uint, limit int) ([]AssignmentHistoryRow, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []AssignmentHistoryRow
	err := r.DB.Model(&entity.CourierAssignment{}).
		Select("id, order_id, status, assigned_at, delivered_at").
		Where("courier_id = ?", courierID).
		Order("id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

func (r *CourierRepository) CountDelivered(courierID uint) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.CourierAssignment{}).
		Where("courier_id = ? AND status = ?", courierID, entity.AssignmentDelivered).
		Count(&cnt).Error
	return cnt, err
}

// GET /admin/couriers
type CourierSummary struct {
	ID           uint   `json:"id"`
	UserID       uint   `json:"userId"`
	VehiclePlate string `json:"vehiclePlate"`
	License      string `json:"license"`
}

func (r *CourierRepository) List() ([]CourierSummary, error) {
	var out []CourierSummary
	err := r.DB.Model(&entity.Courier{}).
		Select("id, user_id, vehicle_plate, license").
		Order("id ASC").
		Scan(&out).Error
	return out, err
}
