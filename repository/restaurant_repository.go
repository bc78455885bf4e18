package repository

import (
	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/entity"

	"gorm.io/gorm"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

// GET /restaurants
type RestaurantSummary struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	City        string `json:"city"`
	IsOpen      bool   `json:"isOpen"`
}

func (r *RestaurantRepository) List(q string, page, limit int) ([]RestaurantSummary, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 20
	}

	db := r.DB.Model(&entity.Restaurant{})
	if q != "" {
		db = db.Where("name LIKE ?", "%"+q+"%")
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []RestaurantSummary
	err := db.Select("id, name, description, city, is_open").
		Order("id ASC").Limit(limit).Offset((page - 1) * limit).
		Scan(&out).Error
	return out, total, err
}

func (r *RestaurantRepository) GetByID(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) Create(rest *entity.Restaurant) error {
	return r.DB.Create(rest).Error
}

func (r *RestaurantRepository) Save(rest *entity.Restaurant) error {
	return r.DB.Save(rest).Error
}

func (r *RestaurantRepository) Exists(tx *gorm.DB, id uint) (bool, error) {
	var cnt int64
	if err := tx.Model(&entity.Restaurant{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *RestaurantRepository) IsOwnedBy(tx *gorm.DB, restID, userID uint) (bool, error) {
	var cnt int64
	if err := tx.Model(&entity.Restaurant{}).
		Where("id = ? AND user_id = ?", restID, userID).
		Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *RestaurantRepository) ListForOwner(userID uint) ([]entity.Restaurant, error) {
	var out []entity.Restaurant
	err := r.DB.Where("user_id = ?", userID).Order("id ASC").Find(&out).Error
	return out, err
}
