package models

import "github.com/shopspring/decimal"

// Variant is a purchasable size/color combination of a product.
type Variant struct {
	ID        int             `gorm:"column:id;primaryKey;autoIncrement"`
	ProductID int             `gorm:"column:product_id;not null;index"`
	SKU       string          `gorm:"column:sku;type:varchar(255);not null;uniqueIndex"`
	Price     decimal.Decimal `gorm:"column:price;type:numeric(12,2);not null"`
	Stock     int             `gorm:"column:stock;not null"`
	Size      *string         `gorm:"column:size;type:varchar(50)"`
	Color     string          `gorm:"column:color;type:varchar(50);not null"`
}

func (Variant) TableName() string {
	return "variants"
}
