package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"storefront-service/models"
	"storefront-service/repository"
)

const productCollection = "product"

// CatalogService reads the product catalog and seeds it with sample data on
// first use.
type CatalogService struct {
	store repository.DocumentStore
}

func NewCatalogService(store repository.DocumentStore) *CatalogService {
	return &CatalogService{store: store}
}

// EnsureSeeded inserts the sample catalog when no product exists yet.
// Seeding is best effort: a failing existence check aborts silently and a
// failing insert skips to the next sample.
func (s *CatalogService) EnsureSeeded(ctx context.Context) {
	var existing []models.Product
	if err := s.store.Find(ctx, productCollection, bson.M{}, 1, &existing); err != nil {
		zap.L().Warn("catalog: seed check failed", zap.Error(err))
		return
	}
	if len(existing) > 0 {
		return
	}

	for _, sample := range sampleProducts() {
		if _, err := s.store.Create(ctx, productCollection, sample); err != nil {
			zap.L().Warn("catalog: seed insert failed", zap.String("title", sample.Title), zap.Error(err))
		}
	}
}

// ListProducts returns the full current catalog.
func (s *CatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := s.store.Find(ctx, productCollection, bson.M{}, 0, &products); err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

func sampleProducts() []models.Product {
	return []models.Product{
		{
			Title:       "Citrus Bloom",
			Description: "Fresh citrus with floral heart.",
			PriceCents:  5900,
			Currency:    "usd",
			Image:       "https://images.unsplash.com/photo-1608571424053-c7c3a1e3a1cc?q=80&w=1600&auto=format&fit=crop",
			InStock:     true,
			Tags:        []string{"citrus", "daytime"},
		},
		{
			Title:       "Amber Dusk",
			Description: "Warm amber and vanilla.",
			PriceCents:  7200,
			Currency:    "usd",
			Image:       "https://images.unsplash.com/photo-1541643600914-78b084683601?q=80&w=1600&auto=format&fit=crop",
			InStock:     true,
			Tags:        []string{"amber", "evening"},
		},
		{
			Title:       "Verdant Mist",
			Description: "Green notes with a dewy finish.",
			PriceCents:  6400,
			Currency:    "usd",
			Image:       "https://images.unsplash.com/photo-1600180758890-6b94519a8ba6?q=80&w=1600&auto=format&fit=crop",
			InStock:     true,
			Tags:        []string{"green", "unisex"},
		},
	}
}
