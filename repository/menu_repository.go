package repository

import (
	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/entity"

	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) ListForRestaurant(restID uint) ([]entity.MenuItem, error) {
	var out []entity.MenuItem
	err := r.DB.Where("restaurant_id = ?", restID).Order("id ASC").Find(&out).Error
	return out, err
}

// GetScoped loads a menu item only if it belongs to the given restaurant
// and is currently available. Used inside the order transaction for the
// price snapshot.
func (r *MenuRepository) GetScoped(tx *gorm.DB, menuItemID, restID uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	err := tx.Select("id, price, restaurant_id, available").
		Where("id = ? AND restaurant_id = ? AND available = ?", menuItemID, restID, true).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) GetByID(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) Create(m *entity.MenuItem) error {
	return r.DB.Create(m).Error
}

func (r *MenuRepository) Save(m *entity.MenuItem) error {
	return r.DB.Save(m).Error
}
