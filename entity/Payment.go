package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PaymentMethod string

const (
	PaymentCreditCard PaymentMethod = "CREDIT_CARD"
	PaymentCash       PaymentMethod = "CASH"
	PaymentWallet     PaymentMethod = "WALLET"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentCompleted PaymentStatus = "COMPLETED"
	PaymentFailed    PaymentStatus = "FAILED"
)

type Payment struct {
	gorm.Model
	Amount decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Method PaymentMethod   `gorm:"type:varchar(16);not null;check:method IN ('CREDIT_CARD','CASH','WALLET')" json:"method"`
	Status PaymentStatus   `gorm:"type:varchar(16);not null;default:'PENDING';check:status IN ('PENDING','COMPLETED','FAILED')" json:"status"`
	PaidAt *time.Time      `json:"paidAt,omitempty"`

	// one payment per order
	OrderID uint  `gorm:"uniqueIndex;not null" json:"orderId"`
	Order   Order `json:"-"`
}
