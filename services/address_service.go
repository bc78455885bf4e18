package services

import (
	"errors"

	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/entity"
	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/repository"

	"gorm.io/gorm"
)

type AddressService struct {
	DB   *gorm.DB
	Repo *repository.AddressRepository
}

func NewAddressService(db *gorm.DB, repo *repository.AddressRepository) *AddressService {
	return &AddressService{DB: db, Repo: repo}
}

type AddressIn struct {
	Title      string `json:"title"`
	Street     string `json:"street" binding:"required"`
	City       string `json:"city" binding:"required"`
	PostalCode string `json:"postalCode"`
	IsDefault  bool   `json:"isDefault"`
}

func (s *AddressService) List(userID uint) ([]entity.Address, error) {
	return s.Repo.ListForUser(userID)
}

// Create inserts the address; when it is marked default the previous
// default is cleared in the same transaction.
func (s *AddressService) Create(userID uint, in *AddressIn) (*entity.Address, error) {
	a := entity.Address{
		Title:      in.Title,
		Street:     in.Street,
		City:       in.City,
		PostalCode: in.PostalCode,
		IsDefault:  in.IsDefault,
		UserID:     userID,
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if in.IsDefault {
			if err := s.Repo.ClearDefault(tx, userID); err != nil {
				return err
			}
		}
		return s.Repo.Create(tx, &a)
	})
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *AddressService) Update(userID, addressID uint, in *AddressIn) (*entity.Address, error) {
	var out *entity.Address
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		a, err := s.Repo.GetForUser(tx, userID, addressID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInvalidAddress
			}
			return err
		}
		if in.IsDefault && !a.IsDefault {
			if err := s.Repo.ClearDefault(tx, userID); err != nil {
				return err
			}
		}
		a.Title = in.Title
		a.Street = in.Street
		a.City = in.City
		a.PostalCode = in.PostalCode
		a.IsDefault = in.IsDefault
		if err := s.Repo.Save(tx, a); err != nil {
			return err
		}
		out = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *AddressService) Delete(userID, addressID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.Delete(tx, userID, addressID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInvalidAddress
		}
		return nil
	})
}
