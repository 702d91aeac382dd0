package models

import "github.com/shopspring/decimal"

// OrderItem snapshots price, size and color at purchase time; it does not
// follow later catalog changes.
type OrderItem struct {
	ID        int             `gorm:"column:id;primaryKey;autoIncrement"`
	OrderID   string          `gorm:"column:order_id;type:varchar(255);not null;index"`
	ProductID int             `gorm:"column:product_id;not null;index"`
	Size      string          `gorm:"column:size;type:varchar(50);not null"`
	Color     string          `gorm:"column:color;type:varchar(50);not null"`
	Price     decimal.Decimal `gorm:"column:price;type:numeric(12,2);not null"`
	Quantity  int             `gorm:"column:quantity;not null"`
	Total     decimal.Decimal `gorm:"column:total;type:numeric(12,2);not null"`
	Product   *Product        `gorm:"foreignKey:ProductID;references:ID"`
}

func (OrderItem) TableName() string {
	return "orderitems"
}
