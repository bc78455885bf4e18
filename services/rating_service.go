package services

import (
	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/entity"
	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/repository"

	"gorm.io/gorm"
)

type RatingService struct {
	DB        *gorm.DB
	Repo      *repository.RatingRepository
	OrderRepo *repository.OrderRepository
}

func NewRatingService(db *gorm.DB, repo *repository.RatingRepository, orderRepo *repository.OrderRepository) *RatingService {
	return &RatingService{DB: db, Repo: repo, OrderRepo: orderRepo}
}

type RatingIn struct {
	OrderID uint   `json:"orderId" binding:"required"`
	Score   int    `json:"score" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// Create lets a customer rate their own delivered order, once.
func (s *RatingService) Create(userID uint, in *RatingIn) (*entity.Rating, error) {
	o, err := s.OrderRepo.GetOrderForUser(s.DB, userID, in.OrderID)
	if err != nil {
		return nil, err
	}
	if o.Status != entity.OrderDelivered {
		return nil, ErrOrderNotDelivered
	}

	exists, err := s.Repo.ExistsForOrder(o.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyRated
	}

	rt := entity.Rating{
		Score:        in.Score,
		Comment:      in.Comment,
		UserID:       userID,
		RestaurantID: o.RestaurantID,
		OrderID:      o.ID,
	}
	if err := s.Repo.Create(&rt); err != nil {
		return nil, err
	}
	return &rt, nil
}

type RatingUpdateIn struct {
	Score   int    `json:"score" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

func (s *RatingService) Update(userID, ratingID uint, in *RatingUpdateIn) (*entity.Rating, error) {
	rt, err := s.Repo.GetForUser(userID, ratingID)
	if err != nil {
		return nil, err
	}
	rt.Score = in.Score
	rt.Comment = in.Comment
	if err := s.Repo.Save(rt); err != nil {
		return nil, err
	}
	return rt, nil
}

func (s *RatingService) Delete(userID, ratingID uint) error {
	affected, err := s.Repo.Delete(userID, ratingID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *RatingService) ListMine(userID uint) ([]entity.Rating, error) {
	return s.Repo.ListForUser(userID)
}

type RestaurantRatingsOut struct {
	Items    []repository.RatingRow `json:"items"`
	AvgScore float64                `json:"avgScore"`
	Count    int64                  `json:"count"`
}

func (s *RatingService) ListForRestaurant(restID uint, limit int) (*RestaurantRatingsOut, error) {
	items, err := s.Repo.ListForRestaurant(restID, limit)
	if err != nil {
		return nil, err
	}
	avg, cnt, err := s.Repo.AverageForRestaurant(restID)
	if err != nil {
		return nil, err
	}
	return &RestaurantRatingsOut{Items: items, AvgScore: avg, Count: cnt}, nil
}
