package services

import (
	"errors"
	"time"

	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/entity"
	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/repository"

	"gorm.io/gorm"
)

type CourierService struct {
	DB        *gorm.DB
	Repo      *repository.CourierRepository
	OrderRepo *repository.OrderRepository

	Events StatusPublisher
}

func NewCourierService(db *gorm.DB, repo *repository.CourierRepository, orderRepo *repository.OrderRepository, events StatusPublisher) *CourierService {
	return &CourierService{DB: db, Repo: repo, OrderRepo: orderRepo, Events: events}
}

// Pickup advances the courier's assignment ASSIGNED -> PICKED_UP, stamps
// the pickup time, and mirrors the status onto the parent order in the
// same transaction. The assignment/order pair has no database-level
// consistency link; this dual write is the invariant.
func (s *CourierService) Pickup(userID, orderID uint) error {
	c, err := s.Repo.GetByUserID(userID)
	if err != nil {
		return err
	}

	now := time.Now()
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		moved, err := s.Repo.MarkPickedUp(tx, orderID, c.ID, now)
		if err != nil {
			return err
		}
		if !moved {
			return ErrInvalidTransition
		}
		mirrored, err := s.OrderRepo.SetStatus(tx, orderID, entity.OrderPickedUp)
		if err != nil {
			return err
		}
		if !mirrored {
			return ErrInvalidTransition
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.publish(orderID, entity.OrderPickedUp)
	return nil
}

// Deliver advances PICKED_UP -> DELIVERED, stamps the delivery time and
// mirrors the terminal status onto the order. No path back from here.
func (s *CourierService) Deliver(userID, orderID uint) error {
	c, err := s.Repo.GetByUserID(userID)
	if err != nil {
		return err
	}

	now := time.Now()
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		moved, err := s.Repo.MarkDelivered(tx, orderID, c.ID, now)
		if err != nil {
			return err
		}
		if !moved {
			return ErrInvalidTransition
		}
		mirrored, err := s.OrderRepo.SetStatus(tx, orderID, entity.OrderDelivered)
		if err != nil {
			return err
		}
		if !mirrored {
			return ErrInvalidTransition
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.publish(orderID, entity.OrderDelivered)
	return nil
}

func (s *CourierService) publish(orderID uint, status entity.OrderStatus) {
	if s.Events != nil {
		s.Events.PublishOrderStatus(orderID, status)
	}
}

// CurrentAssignment returns the courier's active job, nil when idle.
func (s *CourierService) CurrentAssignment(userID uint) (*entity.CourierAssignment, error) {
	c, err := s.Repo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	a, err := s.Repo.GetActiveAssignment(c.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return a, nil
}

func (s *CourierService) History(userID uint, limit int) ([]repository.AssignmentHistoryRow, error) {
	c, err := s.Repo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	return s.Repo.ListHistory(c.ID, limit)
}

type CourierDashboard struct {
	CourierID uint  `json:"courierId"`
	Delivered int64 `json:"delivered"`
	OnJob     bool  `json:"onJob"`
}

func (s *CourierService) Dashboard(userID uint) (*CourierDashboard, error) {
	c, err := s.Repo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	delivered, err := s.Repo.CountDelivered(c.ID)
	if err != nil {
		return nil, err
	}
	active, err := s.CurrentAssignment(userID)
	if err != nil {
		return nil, err
	}
	return &CourierDashboard{CourierID: c.ID, Delivered: delivered, OnJob: active != nil}, nil
}
