// internal/services/catalog_service.go
package services

import (
	"context"
	"sort"

	"github.com/forgepeptides/forge-backend/internal/models"
	"github.com/forgepeptides/forge-backend/internal/store"
)

// CatalogService reads the product catalog. The store may be nil when the
// service runs without a configured database; every method then returns
// store.ErrNotConfigured and callers apply their degrade policy.
type CatalogService struct {
	store store.Store
}

// ProductFilter narrows a product listing. Nil bounds are absent; both
// length bounds are inclusive.
type ProductFilter struct {
	Category  string
	LengthMin *int
	LengthMax *int
	PurityMin *float64
}

func NewCatalogService(st store.Store) *CatalogService {
	return &CatalogService{store: st}
}

// Query translates the filter into the store's query form. Only supplied
// fields constrain the result.
func (f *ProductFilter) Query() store.Query {
	query := store.Query{}
	if f == nil {
		return query
	}

	if f.Category != "" {
		query["category"] = f.Category
	}
	if f.LengthMin != nil || f.LengthMax != nil {
		r := store.Range{}
		if f.LengthMin != nil {
			r.Min = *f.LengthMin
		}
		if f.LengthMax != nil {
			r.Max = *f.LengthMax
		}
		query["length"] = r
	}
	if f.PurityMin != nil {
		query["purity"] = store.Range{Min: *f.PurityMin}
	}
	return query
}

// ListProducts returns every product matching the filter, in store order.
func (s *CatalogService) ListProducts(ctx context.Context, filter *ProductFilter) ([]models.Product, error) {
	docs, err := store.GetDocuments(ctx, s.store, models.CollectionProduct, filter.Query())
	if err != nil {
		return nil, err
	}

	products := make([]models.Product, 0, len(docs))
	for _, doc := range docs {
		products = append(products, models.ProductFromDocument(doc))
	}
	return products, nil
}

// GetProduct returns the product with the given id. The id syntax check
// runs before anything else, so a malformed id fails the same way whether
// or not a store is configured.
func (s *CatalogService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	if !store.IsValidID(id) {
		return nil, store.ErrInvalidID
	}
	if s.store == nil {
		return nil, store.ErrNotConfigured
	}

	doc, err := s.store.FindByID(ctx, models.CollectionProduct, id)
	if err != nil {
		return nil, err
	}

	product := models.ProductFromDocument(doc)
	return &product, nil
}

// Categories returns the distinct product categories, sorted.
func (s *CatalogService) Categories(ctx context.Context) ([]string, error) {
	if s.store == nil {
		return nil, store.ErrNotConfigured
	}

	categories, err := s.store.Distinct(ctx, models.CollectionProduct, "category")
	if err != nil {
		return nil, err
	}

	sort.Strings(categories)
	return categories, nil
}
