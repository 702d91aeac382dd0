package orders

import (
	"context"
	"fmt"
	"strings"

	"github.com/ballinwear/assistant-backend/pkg/db"
	"github.com/ballinwear/assistant-backend/pkg/db/models"
	pkgerrors "github.com/ballinwear/assistant-backend/pkg/errors"
)

// Service answers order lookups for the assistant.
type Service interface {
	OrderDetail(ctx context.Context, orderID string) (*OrderDetailReport, error)
}

type orderReader interface {
	FindOrderDetail(ctx context.Context, orderID string) (*models.Order, error)
}

type service struct {
	repo orderReader
}

// NewService builds the order lookup service.
func NewService(repo orderReader) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	return &service{repo: repo}, nil
}

// OrderDetail returns a NOT_FOUND error when no order has the given id and a
// DEPENDENCY_ERROR when the store fails.
func (s *service) OrderDetail(ctx context.Context, orderID string) (*OrderDetailReport, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, NotFoundMessage(orderID))
	}

	order, err := s.repo.FindOrderDetail(ctx, orderID)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, NotFoundMessage(orderID))
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order detail")
	}
	return newOrderDetailReport(order), nil
}
