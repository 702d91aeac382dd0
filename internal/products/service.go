package product

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ballinwear/assistant-backend/pkg/db/models"
	pkgerrors "github.com/ballinwear/assistant-backend/pkg/errors"
)

// Service exposes the catalog listing used by the assistant.
type Service interface {
	ListAvailable(ctx context.Context) ([]ProductSummary, error)
}

type catalogReader interface {
	ListAvailable(ctx context.Context) ([]models.Product, error)
}

type service struct {
	repo catalogReader
}

// NewService constructs a catalog service instance.
func NewService(repo catalogReader) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("product repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) ListAvailable(ctx context.Context) ([]ProductSummary, error) {
	products, err := s.repo.ListAvailable(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list available products")
	}

	summaries := make([]ProductSummary, 0, len(products))
	for _, p := range products {
		summaries = append(summaries, NewProductSummary(p))
	}
	return summaries, nil
}

// RenderCatalog encodes the catalog as indented JSON.
func RenderCatalog(summaries []ProductSummary) (string, error) {
	if summaries == nil {
		summaries = []ProductSummary{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(summaries); err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode catalog")
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
