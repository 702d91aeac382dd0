package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ballinwear/assistant-backend/pkg/enums"
)

// Order is a customer purchase. OrderDate is stored in UTC.
type Order struct {
	OrderID            string              `gorm:"column:order_id;type:varchar(255);primaryKey"`
	CustomerID         int                 `gorm:"column:customer_id;not null;index"`
	Status             enums.OrderStatus   `gorm:"column:status;type:varchar(16);not null;default:'Pending'"`
	PaymentMethod      enums.PaymentMethod `gorm:"column:payment_method;type:varchar(16);not null"`
	Subtotal           decimal.Decimal     `gorm:"column:subtotal;type:numeric(12,2);not null"`
	ShippingFee        decimal.Decimal     `gorm:"column:shipping_fee;type:numeric(12,2);not null"`
	Total              decimal.Decimal     `gorm:"column:total;type:numeric(12,2);not null"`
	OrderDate          time.Time           `gorm:"column:order_date;not null;index"`
	CancellationReason *string             `gorm:"column:cancellation_reason;type:varchar(255)"`
	Customer           *Customer           `gorm:"foreignKey:CustomerID;references:ID"`
	Items              []OrderItem         `gorm:"foreignKey:OrderID;references:OrderID;constraint:OnDelete:CASCADE"`
	Address            *OrderAddress       `gorm:"foreignKey:OrderID;references:OrderID;constraint:OnDelete:CASCADE"`
}

func (Order) TableName() string {
	return "orders"
}
