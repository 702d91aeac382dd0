package tools

import (
	"context"
	"encoding/json"

	"github.com/sashabaranov/go-openai/jsonschema"

	"github.com/ballinwear/assistant-backend/internal/analytics"
)

const TopSellersToolName = "get_top_products"

type topSellersArgs struct {
	Filter string `json:"filter"`
}

// TopSellersTool ranks the ten best-selling products, optionally within a window.
func TopSellersTool(svc analytics.Service) Tool {
	return Tool{
		Name: TopSellersToolName,
		Description: "Get top selling products with optional date filter. " +
			`filter: "all", "thisMonth", "lastMonth", "thisYear"`,
		Parameters: jsonschema.Definition{
			Type: jsonschema.Object,
			Properties: map[string]jsonschema.Definition{
				"filter": {
					Type:        jsonschema.String,
					Description: "Sales window to rank. Defaults to all.",
					Enum: []string{
						analytics.FilterAll.String(),
						analytics.FilterThisMonth.String(),
						analytics.FilterLastMonth.String(),
						analytics.FilterThisYear.String(),
					},
				},
			},
		},
		Run: func(ctx context.Context, raw json.RawMessage) (string, error) {
			var args topSellersArgs
			if err := DecodeArgs(raw, &args); err != nil {
				return "", err
			}
			sellers, err := svc.TopSellers(ctx, analytics.ParseFilter(args.Filter))
			if err != nil {
				return "", err
			}
			return analytics.RenderTopSellers(sellers), nil
		},
	}
}
