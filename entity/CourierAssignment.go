package entity

import (
	"time"

	"gorm.io/gorm"
)

type AssignmentStatus string

const (
	AssignmentAssigned  AssignmentStatus = "ASSIGNED"
	AssignmentPickedUp  AssignmentStatus = "PICKED_UP"
	AssignmentDelivered AssignmentStatus = "DELIVERED"
)

// ActiveAssignmentStatuses are the statuses that make a courier busy.
// A courier is available iff they hold no assignment in one of these.
func ActiveAssignmentStatuses() []AssignmentStatus {
	return []AssignmentStatus{AssignmentAssigned, AssignmentPickedUp}
}

type CourierAssignment struct {
	gorm.Model
	Status      AssignmentStatus `gorm:"type:varchar(16);not null;default:'ASSIGNED';check:status IN ('ASSIGNED','PICKED_UP','DELIVERED')" json:"status"`
	AssignedAt  *time.Time       `json:"assignedAt,omitempty"`
	PickedUpAt  *time.Time       `json:"pickedUpAt,omitempty"`
	DeliveredAt *time.Time       `json:"deliveredAt,omitempty"`

	// one assignment per order
	OrderID uint  `gorm:"uniqueIndex;not null" json:"orderId"`
	Order   Order `json:"-"`

	CourierID uint    `gorm:"not null;index" json:"courierId"`
	Courier   Courier `json:"-"`
}
