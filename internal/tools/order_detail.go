package tools

import (
	"context"
	"encoding/json"

	"github.com/sashabaranov/go-openai/jsonschema"

	"github.com/ballinwear/assistant-backend/internal/orders"
	pkgerrors "github.com/ballinwear/assistant-backend/pkg/errors"
)

const OrderDetailToolName = "get_order_details"

type orderDetailArgs struct {
	OrderID string `json:"order_id"`
}

// OrderDetailTool describes a single order. A missing order is an ordinary
// answer, not a failure.
func OrderDetailTool(svc orders.Service) Tool {
	return Tool{
		Name:        OrderDetailToolName,
		Description: "Get order details by order_id.",
		Parameters: jsonschema.Definition{
			Type: jsonschema.Object,
			Properties: map[string]jsonschema.Definition{
				"order_id": {
					Type:        jsonschema.String,
					Description: "Order ID to retrieve",
				},
			},
			Required: []string{"order_id"},
		},
		Run: func(ctx context.Context, raw json.RawMessage) (string, error) {
			var args orderDetailArgs
			if err := DecodeArgs(raw, &args); err != nil {
				return "", err
			}
			report, err := svc.OrderDetail(ctx, args.OrderID)
			if err != nil {
				if pkgerrors.IsCode(err, pkgerrors.CodeNotFound) {
					return orders.NotFoundMessage(args.OrderID), nil
				}
				return "", err
			}
			return orders.RenderOrderDetail(report), nil
		},
		Fallback: func(error) string {
			return orders.FailureMessage
		},
	}
}
