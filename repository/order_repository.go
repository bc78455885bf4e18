package repository

import (
	"strings"
	"time"

	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/entity"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(tx *gorm.DB, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := tx.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderForUser(tx *gorm.DB, userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := tx.Where("id = ? AND user_id = ?", orderID, userID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GET /profile/orders
type OrderSummary struct {
	ID           uint               `json:"id"`
	RestaurantID uint               `json:"restaurantId"`
	Total        decimal.Decimal    `json:"total"`
	Status       entity.OrderStatus `json:"status"`
	CreatedAt    time.Time          `json:"createdAt"`
}

func (r *OrderRepository) ListOrdersForUser(userID uint, limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("id, restaurant_id, total, status, created_at").
		Where("user_id = ?", userID).
		Order("id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

// GET /partner/restaurant/orders
type OwnerOrderSummary struct {
	ID           uint               `json:"id"`
	UserID       uint               `json:"userId"`
	CustomerName string             `json:"customerName"`
	Total        decimal.Decimal    `json:"total"`
	Status       entity.OrderStatus `json:"status"`
	CreatedAt    time.Time          `json:"createdAt"`
}

func (r *OrderRepository) ListOrdersForRestaurant(restID uint, status *entity.OrderStatus, page, limit int) ([]OwnerOrderSummary, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 20
	}
	offset := (page - 1) * limit

	var total int64
	dbCount := r.DB.Table("orders AS o").
		Where("o.restaurant_id = ? AND o.deleted_at IS NULL", restID)
	if status != nil && *status != "" {
		dbCount = dbCount.Where("o.status = ?", *status)
	}
	if err := dbCount.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []struct {
		ID        uint
		UserID    uint
		Total     decimal.Decimal
		Status    entity.OrderStatus
		CreatedAt time.Time
		FirstName string
		LastName  string
	}
	db := r.DB.Table("orders AS o").
		Select("o.id, o.user_id, o.total, o.status, o.created_at, u.first_name, u.last_name").
		Joins("JOIN users u ON u.id = o.user_id").
		Where("o.restaurant_id = ? AND o.deleted_at IS NULL", restID)
	if status != nil && *status != "" {
		db = db.Where("o.status = ?", *status)
	}
	if err := db.Order("o.id DESC").Limit(limit).Offset(offset).Scan(&rows).Error; err != nil {
		return nil, 0, err
	}

	out := make([]OwnerOrderSummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, OwnerOrderSummary{
			ID:           row.ID,
			UserID:       row.UserID,
			CustomerName: strings.TrimSpace(row.FirstName + " " + row.LastName),
			Total:        row.Total,
			Status:       row.Status,
			CreatedAt:    row.CreatedAt,
		})
	}
	return out, total, nil
}

// SetTotalAndStatus finalizes the order row at the end of the placement
// transaction.
func (r *OrderRepository) SetTotalAndStatus(tx *gorm.DB, orderID uint, total decimal.Decimal, status entity.OrderStatus) error {
	return tx.Model(&entity.Order{}).
		Where("id = ?", orderID).
		Updates(map[string]any{"total": total, "status": status}).Error
}

// UpdateStatusFromTo is a guarded compare-and-set; false means the order
// was not in the expected state.
func (r *OrderRepository) UpdateStatusFromTo(tx *gorm.DB, orderID uint, from, to entity.OrderStatus) (bool, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// SetStatus mirrors an assignment transition onto the parent order
// (application-level dual write, same transaction as the assignment).
// Terminal orders never move again; false means the mirror was refused.
func (r *OrderRepository) SetStatus(tx *gorm.DB, orderID uint, status entity.OrderStatus) (bool, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status NOT IN ?", orderID, entity.TerminalOrderStatuses()).
		Update("status", status)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// ---------------- Order items ----------------

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Model(&entity.OrderItem{}).
		Select("id, quantity, unit_price, line_total, menu_item_id, order_id").
		Where("order_id = ?", orderID).
		Find(&items).Error
	return items, err
}

func (r *OrderRepository) CountForRestaurant(restID uint) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.Order{}).Where("restaurant_id = ?", restID).Count(&cnt).Error
	return cnt, err
}
