package analytics

import (
	"context"
	"fmt"
	"strings"
	"time"

	pkgerrors "github.com/ballinwear/assistant-backend/pkg/errors"
	"github.com/ballinwear/assistant-backend/pkg/localtime"
)

// TopSellersLimit caps every ranking.
const TopSellersLimit = 10

const noImage = "No image available"

// TopSeller is a ranked product and how many units of it were sold.
type TopSeller struct {
	ProductID    int
	ProductName  string
	ThumbnailURL *string
	QuantitySold int64
}

// Service provides sales rankings.
type Service interface {
	TopSellers(ctx context.Context, filter Filter) ([]TopSeller, error)
}

type salesReader interface {
	TopSellers(ctx context.Context, window *localtime.Window, limit int) ([]TopSellerRow, error)
}

type service struct {
	repo salesReader
	now  func() time.Time
}

// Option customises the service.
type Option func(*service)

// WithClock overrides the source of "now" used to resolve filter windows.
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService builds a sales ranking service.
func NewService(repo salesReader, opts ...Option) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("analytics repository required")
	}
	s := &service{repo: repo, now: localtime.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *service) TopSellers(ctx context.Context, filter Filter) ([]TopSeller, error) {
	var window *localtime.Window
	if w, ok := filter.Window(s.now()); ok {
		window = &w
	}

	rows, err := s.repo.TopSellers(ctx, window, TopSellersLimit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "rank top sellers")
	}

	sellers := make([]TopSeller, 0, len(rows))
	for _, row := range rows {
		sellers = append(sellers, TopSeller(row))
	}
	return sellers, nil
}

// RenderTopSellers renders one block per product separated by a blank line.
func RenderTopSellers(sellers []TopSeller) string {
	blocks := make([]string, 0, len(sellers))
	for _, seller := range sellers {
		image := noImage
		if seller.ThumbnailURL != nil && *seller.ThumbnailURL != "" {
			image = *seller.ThumbnailURL
		}
		blocks = append(blocks, fmt.Sprintf("Product: %s\nImage: %s\nQuantity Sold: %d", seller.ProductName, image, seller.QuantitySold))
	}
	return strings.Join(blocks, "\n\n")
}
