package models

import (
	"github.com/ballinwear/assistant-backend/pkg/enums"
)

// Product is a catalog listing. Only Available products surface to shoppers.
type Product struct {
	ID          int                 `gorm:"column:id;primaryKey;autoIncrement"`
	ProductName string              `gorm:"column:product_name;type:varchar(255);not null;uniqueIndex"`
	Description string              `gorm:"column:description;type:varchar(255);not null"`
	Category    string              `gorm:"column:category;type:varchar(255);not null"`
	Status      enums.ProductStatus `gorm:"column:status;type:varchar(16);not null;default:'Available'"`
	Variants    []Variant           `gorm:"foreignKey:ProductID"`
	Thumbnail   *Thumbnail          `gorm:"foreignKey:ProductID"`
}

func (Product) TableName() string {
	return "products"
}
