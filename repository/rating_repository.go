package repository

import (
	"time"

	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/entity"

	"gorm.io/gorm"
)

type RatingRepository struct {
	DB *gorm.DB
}

func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{DB: db}
}

func (r *RatingRepository) Create(rt *entity.Rating) error {
	return r.DB.Create(rt).Error
}

func (r *RatingRepository) GetForUser(userID, ratingID uint) (*entity.Rating, error) {
	var rt entity.Rating
	if err := r.DB.Where("id = ? AND user_id = ?", ratingID, userID).First(&rt).Error; err != nil {
		return nil, err
	}
	return &rt, nil
}

func (r *RatingRepository) Save(rt *entity.Rating) error {
	return r.DB.Save(rt).Error
}

func (r *RatingRepository) Delete(userID, ratingID uint) (int64, error) {
	res := r.DB.Where("id = ? AND user_id = ?", ratingID, userID).Delete(&entity.Rating{})
	return res.RowsAffected, res.Error
}

func (r *RatingRepository) ExistsForOrder(orderID uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Rating{}).Where("order_id = ?", orderID).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *RatingRepository) ListForUser(userID uint) ([]entity.Rating, error) {
	var out []entity.Rating
	err := r.DB.Where("user_id = ?", userID).Order("id DESC").Find(&out).Error
	return out, err
}

// GET /restaurants/:id/ratings
type RatingRow struct {
	ID        uint      `json:"id"`
	Score     int       `json:"score"`
	Comment   string    `json:"comment"`
	UserID    uint      `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (r *RatingRepository) ListForRestaurant(restID uint, limit int) ([]RatingRow, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []RatingRow
	err := r.DB.Model(&entity.Rating{}).
		Select("id, score, comment, user_id, created_at").
		Where("restaurant_id = ?", restID).
		Order("id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

func (r *RatingRepository) AverageForRestaurant(restID uint) (float64, int64, error) {
	var row struct {
		Avg float64
		Cnt int64
	}
	err := r.DB.Model(&entity.Rating{}).
		Select("COALESCE(AVG(score), 0) AS avg, COUNT(*) AS cnt").
		Where("restaurant_id = ?", restID).
		Scan(&row).Error
	return row.Avg, row.Cnt, err
}
