package catalog

import (
	"context"
	"testing"

	pkgerrors "github.com/yqlstore/storefront/pkg/errors"
	"github.com/yqlstore/storefront/pkg/models"
)

type fakeAPI struct {
	listFn func(ctx context.Context) ([]models.Product, error)
	getFn  func(ctx context.Context, productID string) (*models.Product, error)
}

func (f *fakeAPI) ListProducts(ctx context.Context) ([]models.Product, error) {
	if f.listFn != nil {
		return f.listFn(ctx)
	}
	return nil, nil
}

func (f *fakeAPI) GetProduct(ctx context.Context, productID string) (*models.Product, error) {
	if f.getFn != nil {
		return f.getFn(ctx, productID)
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
}

func sampleCatalog() []models.Product {
	return []models.Product{
		{ID: "p1", ModelName: "FrostLine Chest Freezer 7cuft", Price: 399.99},
		{ID: "p2", ModelName: "AquaWash Front Loader", Price: 749.99},
		{ID: "p3", ModelName: "FrostLine Upright Freezer", Price: 549.00},
	}
}

func TestListReturnsCatalog(t *testing.T) {
	api := &fakeAPI{listFn: func(ctx context.Context) ([]models.Product, error) {
		return sampleCatalog(), nil
	}}
	svc, err := NewService(api)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	products, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 3 {
		t.Fatalf("expected 3 products, got %d", len(products))
	}
}

func TestGetRejectsBlankID(t *testing.T) {
	svc, _ := NewService(&fakeAPI{})

	_, err := svc.Get(context.Background(), "   ")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestGetPropagatesNotFound(t *testing.T) {
	svc, _ := NewService(&fakeAPI{})

	_, err := svc.Get(context.Background(), "missing")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestSearchByModelIsCaseInsensitiveSubstring(t *testing.T) {
	api := &fakeAPI{listFn: func(ctx context.Context) ([]models.Product, error) {
		return sampleCatalog(), nil
	}}
	svc, _ := NewService(api)

	matched, err := svc.SearchByModel(context.Background(), "frostline")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matched) != 2 || matched[0].ID != "p1" || matched[1].ID != "p3" {
		t.Fatalf("unexpected matches: %+v", matched)
	}
}

func TestSearchByModelEmptyQueryReturnsAll(t *testing.T) {
	api := &fakeAPI{listFn: func(ctx context.Context) ([]models.Product, error) {
		return sampleCatalog(), nil
	}}
	svc, _ := NewService(api)

	matched, err := svc.SearchByModel(context.Background(), "  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matched) != 3 {
		t.Fatalf("expected full catalog, got %d", len(matched))
	}
}

func TestNewServiceRequiresClient(t *testing.T) {
	if _, err := NewService(nil); err == nil {
		t.Fatal("expected error for nil client")
	}
}
