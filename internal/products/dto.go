package product

import (
	"github.com/ballinwear/assistant-backend/pkg/db/models"
)

// ProductSummary is the catalog record handed to the assistant.
type ProductSummary struct {
	ProductName string            `json:"product_name"`
	Category    string            `json:"category"`
	Variants    []VariantSummary  `json:"variants"`
	Thumbnail   *ThumbnailSummary `json:"thumbnail"`
}

type VariantSummary struct {
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
	Size  *string `json:"size"`
	Color string  `json:"color"`
}

type ThumbnailSummary struct {
	URL      string `json:"thumbnailUrl"`
	PublicID string `json:"thumbnailPublicId"`
}

// NewProductSummary maps a product model onto its catalog record.
func NewProductSummary(p models.Product) ProductSummary {
	variants := make([]VariantSummary, 0, len(p.Variants))
	for _, v := range p.Variants {
		variants = append(variants, VariantSummary{
			Price: v.Price.InexactFloat64(),
			Stock: v.Stock,
			Size:  v.Size,
			Color: v.Color,
		})
	}

	summary := ProductSummary{
		ProductName: p.ProductName,
		Category:    p.Category,
		Variants:    variants,
	}
	if p.Thumbnail != nil {
		summary.Thumbnail = &ThumbnailSummary{
			URL:      p.Thumbnail.ThumbnailURL,
			PublicID: p.Thumbnail.ThumbnailPublicID,
		}
	}
	return summary
}
