package orders

import (
	"context"

	"github.com/ballinwear/assistant-backend/internal/repo"
	"github.com/ballinwear/assistant-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository loads orders with everything needed to describe them.
type Repository struct {
	repo.Base
}

// NewRepository builds an orders repository bound to the provided DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// FindOrderDetail eager-loads the customer, items (with product and
// thumbnail) and shipping address of a single order.
func (r *Repository) FindOrderDetail(ctx context.Context, orderID string) (*models.Order, error) {
	var order models.Order
	err := r.Session(ctx, func(tx *gorm.DB) error {
		return tx.
			Preload("Customer").
			Preload("Items", func(db *gorm.DB) *gorm.DB {
				return db.Order("orderitems.id ASC")
			}).
			Preload("Items.Product").
			Preload("Items.Product.Thumbnail").
			Preload("Address").
			Where("orders.order_id = ?", orderID).
			First(&order).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}
