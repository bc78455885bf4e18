package services

import (
	"time"

	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/entity"
	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/repository"

	"gorm.io/gorm"
)

type PaymentService struct {
	DB        *gorm.DB
	Repo      *repository.PaymentRepository
	OrderRepo *repository.OrderRepository
}

func NewPaymentService(db *gorm.DB, repo *repository.PaymentRepository, orderRepo *repository.OrderRepository) *PaymentService {
	return &PaymentService{DB: db, Repo: repo, OrderRepo: orderRepo}
}

func (s *PaymentService) GetForUser(userID, orderID uint) (*entity.Payment, error) {
	if _, err := s.OrderRepo.GetOrderForUser(s.DB, userID, orderID); err != nil {
		return nil, err
	}
	return s.Repo.GetByOrderID(orderID)
}

// Complete simulates the gateway callback: PENDING -> COMPLETED on the
// caller's own order. No real charge happens anywhere.
func (s *PaymentService) Complete(userID, orderID uint) (*entity.Payment, error) {
	if _, err := s.OrderRepo.GetOrderForUser(s.DB, userID, orderID); err != nil {
		return nil, err
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		moved, err := s.Repo.Complete(tx, orderID, time.Now())
		if err != nil {
			return err
		}
		if !moved {
			return ErrPaymentNotPending
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Repo.GetByOrderID(orderID)
}

// Fail marks the caller's pending payment FAILED (simulated decline).
func (s *PaymentService) Fail(userID, orderID uint) (*entity.Payment, error) {
	if _, err := s.OrderRepo.GetOrderForUser(s.DB, userID, orderID); err != nil {
		return nil, err
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		moved, err := s.Repo.Fail(tx, orderID)
		if err != nil {
			return err
		}
		if !moved {
			return ErrPaymentNotPending
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Repo.GetByOrderID(orderID)
}
