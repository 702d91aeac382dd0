package tools

import (
	"github.com/ballinwear/assistant-backend/internal/analytics"
	"github.com/ballinwear/assistant-backend/internal/orders"
	product "github.com/ballinwear/assistant-backend/internal/products"
	"github.com/ballinwear/assistant-backend/pkg/logger"
	"github.com/ballinwear/assistant-backend/pkg/metrics"
)

// Services bundles the query services the default tools wrap.
type Services struct {
	Catalog   product.Service
	Analytics analytics.Service
	Orders    orders.Service
}

// NewDefaultRegistry registers the catalog, top sellers and order detail tools.
func NewDefaultRegistry(svcs Services, logg *logger.Logger, m *metrics.ToolMetrics) (*Registry, error) {
	registry := NewRegistry(logg, m)
	if err := registry.Register(
		CatalogTool(svcs.Catalog),
		TopSellersTool(svcs.Analytics),
		OrderDetailTool(svcs.Orders),
	); err != nil {
		return nil, err
	}
	return registry, nil
}
