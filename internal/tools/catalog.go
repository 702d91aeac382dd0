package tools

import (
	"context"
	"encoding/json"

	"github.com/sashabaranov/go-openai/jsonschema"

	product "github.com/ballinwear/assistant-backend/internal/products"
)

const CatalogToolName = "products_tool"

// CatalogTool lists every Available product with variants and thumbnail.
func CatalogTool(svc product.Service) Tool {
	return Tool{
		Name:        CatalogToolName,
		Description: "Search products by name, stock, prices from the inventory.",
		Parameters: jsonschema.Definition{
			Type:       jsonschema.Object,
			Properties: map[string]jsonschema.Definition{},
		},
		Run: func(ctx context.Context, _ json.RawMessage) (string, error) {
			summaries, err := svc.ListAvailable(ctx)
			if err != nil {
				return "", err
			}
			return product.RenderCatalog(summaries)
		},
	}
}
