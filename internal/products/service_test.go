package product

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/ballinwear/assistant-backend/internal/repo/repotest"
	"github.com/ballinwear/assistant-backend/pkg/db/models"
	pkgerrors "github.com/ballinwear/assistant-backend/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(v string) *string { return &v }

func TestListAvailableExcludesDeletedProducts(t *testing.T) {
	db := repotest.Open(t)
	repotest.CreateProduct(t, db, "Ballin Tee",
		repotest.WithVariant("499.00", 10, strPtr("M"), "Black"),
		repotest.WithVariant("519.50", 0, nil, "White"),
		repotest.WithThumbnail("https://cdn.example.com/tee.png"),
	)
	repotest.CreateProduct(t, db, "Retired Hoodie",
		repotest.Deleted(),
		repotest.WithVariant("999.00", 5, strPtr("L"), "Grey"),
		repotest.WithThumbnail("https://cdn.example.com/hoodie.png"),
	)
	repotest.CreateProduct(t, db, "Plain Cap")

	svc, err := NewService(NewRepository(db))
	require.NoError(t, err)

	summaries, err := svc.ListAvailable(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	tee := summaries[0]
	assert.Equal(t, "Ballin Tee", tee.ProductName)
	assert.Equal(t, "Shirts", tee.Category)
	require.Len(t, tee.Variants, 2)
	assert.Equal(t, 499.0, tee.Variants[0].Price)
	assert.Equal(t, "M", *tee.Variants[0].Size)
	assert.Nil(t, tee.Variants[1].Size)
	assert.Equal(t, 519.5, tee.Variants[1].Price)
	require.NotNil(t, tee.Thumbnail)
	assert.Equal(t, "https://cdn.example.com/tee.png", tee.Thumbnail.URL)

	plain := summaries[1]
	assert.Equal(t, "Plain Cap", plain.ProductName)
	assert.Empty(t, plain.Variants)
	assert.Nil(t, plain.Thumbnail)
}

func TestListAvailableWrapsStoreFailures(t *testing.T) {
	svc, err := NewService(NewRepository(repotest.Broken(t)))
	require.NoError(t, err)

	_, err = svc.ListAvailable(context.Background())
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeDependency))
}

func TestNewServiceRequiresRepository(t *testing.T) {
	_, err := NewService(nil)
	require.Error(t, err)
}

type failingReader struct{ err error }

func (f failingReader) ListAvailable(context.Context) ([]models.Product, error) {
	return nil, f.err
}

func TestListAvailablePropagatesCause(t *testing.T) {
	boom := errors.New("connection refused")
	svc, err := NewService(failingReader{err: boom})
	require.NoError(t, err)

	_, err = svc.ListAvailable(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestRenderCatalog(t *testing.T) {
	t.Run("nullThumbnailAndEmptyVariants", func(t *testing.T) {
		out, err := RenderCatalog([]ProductSummary{{ProductName: "Cap", Category: "Hats", Variants: []VariantSummary{}}})
		require.NoError(t, err)

		expected := "[\n  {\n    \"product_name\": \"Cap\",\n    \"category\": \"Hats\",\n    \"variants\": [],\n    \"thumbnail\": null\n  }\n]"
		assert.Equal(t, expected, out)
	})

	t.Run("keepsUrlsReadable", func(t *testing.T) {
		out, err := RenderCatalog([]ProductSummary{{
			ProductName: "Tee",
			Variants:    []VariantSummary{{Price: 499, Stock: 3, Color: "Black"}},
			Thumbnail:   &ThumbnailSummary{URL: "https://cdn.example.com/t.png?w=1&h=2", PublicID: "ballin/t"},
		}})
		require.NoError(t, err)
		assert.Contains(t, out, "w=1&h=2")

		var decoded []map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &decoded))
		thumb := decoded[0]["thumbnail"].(map[string]any)
		assert.Equal(t, "ballin/t", thumb["thumbnailPublicId"])
	})

	t.Run("empty", func(t *testing.T) {
		out, err := RenderCatalog(nil)
		require.NoError(t, err)
		assert.Equal(t, "[]", out)
	})
}
