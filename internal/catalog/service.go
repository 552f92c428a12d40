package catalog

import (
	"context"
	"strings"

	pkgerrors "github.com/yqlstore/storefront/pkg/errors"
	"github.com/yqlstore/storefront/pkg/models"
)

// API is the slice of the backend client the catalog consumes.
type API interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, productID string) (*models.Product, error)
}

// Service exposes read access to the product catalog.
type Service interface {
	List(ctx context.Context) ([]models.Product, error)
	Get(ctx context.Context, productID string) (*models.Product, error)
	SearchByModel(ctx context.Context, query string) ([]models.Product, error)
}

type service struct {
	api API
}

// NewService wires the catalog against the backend client.
func NewService(api API) (Service, error) {
	if api == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "backend client required")
	}
	return &service{api: api}, nil
}

func (s *service) List(ctx context.Context) ([]models.Product, error) {
	return s.api.ListProducts(ctx)
}

func (s *service) Get(ctx context.Context, productID string) (*models.Product, error) {
	if strings.TrimSpace(productID) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	return s.api.GetProduct(ctx, productID)
}

// SearchByModel filters the catalog by a case-insensitive substring match on
// the model name. An empty query returns the full catalog.
func (s *service) SearchByModel(ctx context.Context, query string) ([]models.Product, error) {
	products, err := s.api.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return products, nil
	}

	matched := make([]models.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.ModelName), needle) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}
