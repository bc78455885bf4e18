package services

import (
	"errors"
	"time"

	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/configs"
	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/entity"
	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// StatusPublisher receives order status changes (the ws tracking hub).
// May be nil.
type StatusPublisher interface {
	PublishOrderStatus(orderID uint, status entity.OrderStatus)
}

type OrderService struct {
	DB        *gorm.DB
	Repo      *repository.OrderRepository
	Menus     *repository.MenuRepository
	Addresses *repository.AddressRepository
	Couriers  *repository.CourierRepository
	Payments  *repository.PaymentRepository
	RestRepo  *repository.RestaurantRepository

	Flow   string // configs.FlowInstant | configs.FlowStaged
	Events StatusPublisher
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	menus *repository.MenuRepository,
	addresses *repository.AddressRepository,
	couriers *repository.CourierRepository,
	payments *repository.PaymentRepository,
	restRepo *repository.RestaurantRepository,
	flow string,
	events StatusPublisher,
) *OrderService {
	if flow != configs.FlowStaged {
		flow = configs.FlowInstant
	}
	return &OrderService{
		DB: db, Repo: repo, Menus: menus, Addresses: addresses,
		Couriers: couriers, Payments: payments, RestRepo: restRepo,
		Flow: flow, Events: events,
	}
}

// ----- DTOs -----

type OrderItemIn struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required,min=1"`
}

type PlaceOrderReq struct {
	RestaurantID  uint          `json:"restaurantId" binding:"required"`
	AddressID     uint          `json:"addressId" binding:"required"`
	Items         []OrderItemIn `json:"items" binding:"required,min=1,dive"`
	PaymentMethod string        `json:"paymentMethod" binding:"required,oneof=CREDIT_CARD CASH WALLET"`
}

type PlaceOrderRes struct {
	OrderID       uint                 `json:"orderId"`
	TotalAmount   decimal.Decimal      `json:"totalAmount"`
	CourierID     uint                 `json:"courierId"`
	Status        entity.OrderStatus   `json:"status"`
	PaymentStatus entity.PaymentStatus `json:"paymentStatus"`
}

// Place runs the whole order placement as one transaction: address
// ownership check, order row, per-item price snapshot, total, courier
// pick, assignment and payment. Any failure rolls back every effect.
func (s *OrderService) Place(userID uint, req *PlaceOrderReq) (*PlaceOrderRes, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyOrder
	}
	for _, it := range req.Items {
		if it.Quantity < 1 {
			return nil, &MenuItemError{MenuItemID: it.MenuItemID, Reason: "quantity must be positive"}
		}
	}

	var out PlaceOrderRes
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		// address must belong to the caller; not-found and not-owned are
		// indistinguishable on purpose
		if _, err := s.Addresses.GetForUser(tx, userID, req.AddressID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInvalidAddress
			}
			return err
		}

		ok, err := s.RestRepo.Exists(tx, req.RestaurantID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrRestaurantNotFound
		}

		order := entity.Order{
			Status:       entity.OrderCreated,
			Total:        decimal.Zero,
			UserID:       userID,
			RestaurantID: req.RestaurantID,
			AddressID:    req.AddressID,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		// price snapshot per line, in input order; one bad item fails the
		// whole order
		total := decimal.Zero
		for _, it := range req.Items {
			m, err := s.Menus.GetScoped(tx, it.MenuItemID, req.RestaurantID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &MenuItemError{MenuItemID: it.MenuItemID, Reason: "not available in this restaurant"}
				}
				return err
			}
			line := m.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
			total = total.Add(line)

			oi := entity.OrderItem{
				Quantity:   it.Quantity,
				UnitPrice:  m.Price,
				LineTotal:  line,
				OrderID:    order.ID,
				MenuItemID: m.ID,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
		}

		courier, err := s.Couriers.PickAvailable(tx)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNoCourierAvailable
			}
			return err
		}

		now := time.Now()
		orderStatus := entity.OrderDelivered
		assignment := entity.CourierAssignment{
			Status:      entity.AssignmentDelivered,
			AssignedAt:  &now,
			DeliveredAt: &now,
			OrderID:     order.ID,
			CourierID:   courier.ID,
		}
		payment := entity.Payment{
			Amount:  total,
			Method:  entity.PaymentMethod(req.PaymentMethod),
			Status:  entity.PaymentCompleted,
			PaidAt:  &now,
			OrderID: order.ID,
		}
		if s.Flow == configs.FlowStaged {
			orderStatus = entity.OrderCreated
			assignment.Status = entity.AssignmentAssigned
			assignment.DeliveredAt = nil
			payment.Status = entity.PaymentPending
			payment.PaidAt = nil
		}

		if err := s.Repo.SetTotalAndStatus(tx, order.ID, total, orderStatus); err != nil {
			return err
		}
		if err := s.Couriers.CreateAssignment(tx, &assignment); err != nil {
			return err
		}
		if err := s.Payments.Upsert(tx, &payment); err != nil {
			return err
		}

		out = PlaceOrderRes{
			OrderID:       order.ID,
			TotalAmount:   total,
			CourierID:     courier.ID,
			Status:        orderStatus,
			PaymentStatus: payment.Status,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(out.OrderID, out.Status)
	return &out, nil
}

func (s *OrderService) publish(orderID uint, status entity.OrderStatus) {
	if s.Events != nil {
		s.Events.PublishOrderStatus(orderID, status)
	}
}

// ----- List & detail -----

func (s *OrderService) ListForUser(userID uint, limit int) ([]repository.OrderSummary, error) {
	return s.Repo.ListOrdersForUser(userID, limit)
}

type OrderDetail struct {
	ID           uint               `json:"id"`
	Status       entity.OrderStatus `json:"status"`
	Total        decimal.Decimal    `json:"total"`
	RestaurantID uint               `json:"restaurantId"`
	AddressID    uint               `json:"addressId"`
	Items        []entity.OrderItem `json:"items"`
}

func (s *OrderService) DetailForUser(userID, orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetOrderForUser(s.DB, userID, orderID)
	if err != nil {
		return nil, err
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{
		ID: o.ID, Status: o.Status, Total: o.Total,
		RestaurantID: o.RestaurantID, AddressID: o.AddressID, Items: items,
	}, nil
}

type OwnerOrderListOut struct {
	Items []repository.OwnerOrderSummary `json:"items"`
	Total int64                          `json:"total"`
	Page  int                            `json:"page"`
	Limit int                            `json:"limit"`
}

func (s *OrderService) ListForRestaurant(userID, restID uint, status *entity.OrderStatus, page, limit int) (*OwnerOrderListOut, error) {
	ok, err := s.RestRepo.IsOwnedBy(s.DB, restID, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrForbidden
	}

	items, total, err := s.Repo.ListOrdersForRestaurant(restID, status, page, limit)
	if err != nil {
		return nil, err
	}
	return &OwnerOrderListOut{Items: items, Total: total, Page: page, Limit: limit}, nil
}
