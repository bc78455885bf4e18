package services

import (
	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/entity"

	"gorm.io/gorm"
)

// Staged-flow transitions. Every step is a guarded compare-and-set: zero
// rows affected means the order was not in the expected state.

func (s *OrderService) OwnerAccept(ownerID, orderID uint) error {
	return s.transitionForOwner(ownerID, orderID, entity.OrderCreated, entity.OrderPreparing)
}

func (s *OrderService) OwnerReady(ownerID, orderID uint) error {
	return s.transitionForOwner(ownerID, orderID, entity.OrderPreparing, entity.OrderReady)
}

func (s *OrderService) transitionForOwner(ownerID, orderID uint, from, to entity.OrderStatus) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.GetOrder(tx, orderID)
		if err != nil {
			return err
		}
		ok, err := s.RestRepo.IsOwnedBy(tx, o.RestaurantID, ownerID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrForbidden
		}

		moved, err := s.Repo.UpdateStatusFromTo(tx, o.ID, from, to)
		if err != nil {
			return err
		}
		if !moved {
			return ErrInvalidTransition
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.publish(orderID, to)
	return nil
}

// CustomerCancel only while the order is still CREATED. Cancelling also
// releases the order's assignment so the courier is selectable again.
func (s *OrderService) CustomerCancel(userID, orderID uint) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.GetOrderForUser(tx, userID, orderID)
		if err != nil {
			return err
		}
		moved, err := s.Repo.UpdateStatusFromTo(tx, o.ID, entity.OrderCreated, entity.OrderCancelled)
		if err != nil {
			return err
		}
		if !moved {
			return ErrInvalidTransition
		}
		return s.Couriers.ReleaseAssignment(tx, o.ID)
	})
	if err != nil {
		return err
	}
	s.publish(orderID, entity.OrderCancelled)
	return nil
}
