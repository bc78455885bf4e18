package services

import (
	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/entity"
	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/repository"

	"gorm.io/gorm"
)

type RestaurantService struct {
	DB      *gorm.DB
	Repo    *repository.RestaurantRepository
	Menus   *repository.MenuRepository
	Orders  *repository.OrderRepository
	Ratings *repository.RatingRepository
}

func NewRestaurantService(db *gorm.DB, repo *repository.RestaurantRepository, menus *repository.MenuRepository, orders *repository.OrderRepository, ratings *repository.RatingRepository) *RestaurantService {
	return &RestaurantService{DB: db, Repo: repo, Menus: menus, Orders: orders, Ratings: ratings}
}

type RestaurantListOut struct {
	Items []repository.RestaurantSummary `json:"items"`
	Total int64                          `json:"total"`
	Page  int                            `json:"page"`
	Limit int                            `json:"limit"`
}

func (s *RestaurantService) List(q string, page, limit int) (*RestaurantListOut, error) {
	items, total, err := s.Repo.List(q, page, limit)
	if err != nil {
		return nil, err
	}
	return &RestaurantListOut{Items: items, Total: total, Page: page, Limit: limit}, nil
}

type RestaurantDetail struct {
	Restaurant *entity.Restaurant `json:"restaurant"`
	Menu       []entity.MenuItem  `json:"menu"`
	AvgScore   float64            `json:"avgScore"`
	Ratings    int64              `json:"ratings"`
}

func (s *RestaurantService) Detail(id uint) (*RestaurantDetail, error) {
	r, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	menu, err := s.Menus.ListForRestaurant(r.ID)
	if err != nil {
		return nil, err
	}
	avg, cnt, err := s.Ratings.AverageForRestaurant(r.ID)
	if err != nil {
		return nil, err
	}
	return &RestaurantDetail{Restaurant: r, Menu: menu, AvgScore: avg, Ratings: cnt}, nil
}

type RestaurantIn struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	PhoneNumber string `json:"phoneNumber"`
	Street      string `json:"street"`
	City        string `json:"city"`
	IsOpen      *bool  `json:"isOpen"`
}

func (s *RestaurantService) CreateForOwner(ownerID uint, in *RestaurantIn) (*entity.Restaurant, error) {
	r := entity.Restaurant{
		Name:        in.Name,
		Description: in.Description,
		PhoneNumber: in.PhoneNumber,
		Street:      in.Street,
		City:        in.City,
		IsOpen:      true,
		UserID:      ownerID,
	}
	if in.IsOpen != nil {
		r.IsOpen = *in.IsOpen
	}
	if err := s.Repo.Create(&r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *RestaurantService) UpdateForOwner(ownerID, restID uint, in *RestaurantIn) (*entity.Restaurant, error) {
	ok, err := s.Repo.IsOwnedBy(s.DB, restID, ownerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrForbidden
	}

	r, err := s.Repo.GetByID(restID)
	if err != nil {
		return nil, err
	}
	r.Name = in.Name
	r.Description = in.Description
	r.PhoneNumber = in.PhoneNumber
	r.Street = in.Street
	r.City = in.City
	if in.IsOpen != nil {
		r.IsOpen = *in.IsOpen
	}
	if err := s.Repo.Save(r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *RestaurantService) ListForOwner(ownerID uint) ([]entity.Restaurant, error) {
	return s.Repo.ListForOwner(ownerID)
}

type OwnerDashboard struct {
	RestaurantID uint    `json:"restaurantId"`
	Orders       int64   `json:"orders"`
	AvgScore     float64 `json:"avgScore"`
	Ratings      int64   `json:"ratings"`
}

func (s *RestaurantService) Dashboard(ownerID, restID uint) (*OwnerDashboard, error) {
	ok, err := s.Repo.IsOwnedBy(s.DB, restID, ownerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrForbidden
	}

	orders, err := s.Orders.CountForRestaurant(restID)
	if err != nil {
		return nil, err
	}
	avg, cnt, err := s.Ratings.AverageForRestaurant(restID)
	if err != nil {
		return nil, err
	}
	return &OwnerDashboard{RestaurantID: restID, Orders: orders, AvgScore: avg, Ratings: cnt}, nil
}
