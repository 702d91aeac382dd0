package analytics

import (
	"context"

	"github.com/ballinwear/assistant-backend/internal/repo"
	"github.com/ballinwear/assistant-backend/pkg/enums"
	"github.com/ballinwear/assistant-backend/pkg/localtime"
	"gorm.io/gorm"
)

// TopSellerRow is one aggregated ranking row.
type TopSellerRow struct {
	ProductID    int
	ProductName  string
	ThumbnailURL *string
	QuantitySold int64
}

// Repository aggregates completed sales.
type Repository struct {
	repo.Base
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// TopSellers sums sold quantities per Available product across Delivered and
// Received orders, optionally restricted to window, highest first.
// Variants are not joined: they would multiply each item row and inflate the sums.
func (r *Repository) TopSellers(ctx context.Context, window *localtime.Window, limit int) ([]TopSellerRow, error) {
	var rows []TopSellerRow
	err := r.Session(ctx, func(tx *gorm.DB) error {
		q := tx.Table("orders AS o").
			Select("p.id AS product_id, p.product_name AS product_name, t.thumbnail_url AS thumbnail_url, SUM(oi.quantity) AS quantity_sold").
			Joins("JOIN orderitems oi ON oi.order_id = o.order_id").
			Joins("JOIN products p ON p.id = oi.product_id").
			Joins("LEFT JOIN thumbnails t ON t.product_id = p.id").
			Where("o.status IN ?", enums.CompletedOrderStatuses).
			Where("p.status = ?", enums.ProductStatusAvailable)
		if window != nil {
			q = q.Where("o.order_date >= ? AND o.order_date < ?", window.Start.UTC(), window.End.UTC())
		}
		return q.
			Group("p.id, p.product_name, t.thumbnail_url").
			Order("quantity_sold DESC").
			Order("p.id ASC").
			Limit(limit).
			Scan(&rows).Error
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}
