package services

import (
	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/entity"
	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MenuService struct {
	DB       *gorm.DB
	Repo     *repository.MenuRepository
	RestRepo *repository.RestaurantRepository
}

func NewMenuService(db *gorm.DB, repo *repository.MenuRepository, restRepo *repository.RestaurantRepository) *MenuService {
	return &MenuService{DB: db, Repo: repo, RestRepo: restRepo}
}

type MenuItemIn struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Available   *bool           `json:"available"`
}

func (s *MenuService) ListForRestaurant(restID uint) ([]entity.MenuItem, error) {
	return s.Repo.ListForRestaurant(restID)
}

func (s *MenuService) Create(ownerID, restID uint, in *MenuItemIn) (*entity.MenuItem, error) {
	ok, err := s.RestRepo.IsOwnedBy(s.DB, restID, ownerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrForbidden
	}

	m := entity.MenuItem{
		Name:         in.Name,
		Description:  in.Description,
		Price:        in.Price,
		Available:    true,
		RestaurantID: restID,
	}
	if in.Available != nil {
		m.Available = *in.Available
	}
	if err := s.Repo.Create(&m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *MenuService) Update(ownerID, menuItemID uint, in *MenuItemIn) (*entity.MenuItem, error) {
	m, err := s.Repo.GetByID(menuItemID)
	if err != nil {
		return nil, err
	}
	ok, err := s.RestRepo.IsOwnedBy(s.DB, m.RestaurantID, ownerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrForbidden
	}

	m.Name = in.Name
	m.Description = in.Description
	m.Price = in.Price
	if in.Available != nil {
		m.Available = *in.Available
	}
	if err := s.Repo.Save(m); err != nil {
		return nil, err
	}
	return m, nil
}
