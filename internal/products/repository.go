package product

import (
	"context"

	"github.com/ballinwear/assistant-backend/internal/repo"
	"github.com/ballinwear/assistant-backend/pkg/db/models"
	"github.com/ballinwear/assistant-backend/pkg/enums"
	"gorm.io/gorm"
)

// Repository reads catalog listings.
type Repository struct {
	repo.Base
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// ListAvailable loads every Available product with its variants and thumbnail.
func (r *Repository) ListAvailable(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := r.Session(ctx, func(tx *gorm.DB) error {
		return tx.
			Preload("Variants", func(db *gorm.DB) *gorm.DB {
				return db.Order("variants.id ASC")
			}).
			Preload("Thumbnail").
			Where("products.status = ?", enums.ProductStatusAvailable).
			Order("products.id ASC").
			Find(&products).Error
	})
	if err != nil {
		return nil, err
	}
	return products, nil
}
