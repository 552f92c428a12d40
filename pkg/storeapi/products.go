package storeapi

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	pkgerrors "github.com/yqlstore/storefront/pkg/errors"
	"github.com/yqlstore/storefront/pkg/models"
)

// CreateProductRequest is the admin upload for a new catalog record. The
// image travels as a multipart file part next to the fields; price is sent as
// decimal dollars.
type CreateProductRequest struct {
	ModelName   string
	Description string
	Price       float64
	Condition   string
	ImageName   string
	Image       io.Reader
}

// UpdateProductRequest carries the editable catalog fields.
type UpdateProductRequest struct {
	ModelName   string  `json:"modelName"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Condition   string  `json:"condition"`
}

// ListProducts fetches the full catalog.
func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.do(ctx, "list_products", http.MethodGet, "/api/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct fetches one catalog record by id.
func (c *Client) GetProduct(ctx context.Context, productID string) (*models.Product, error) {
	trimmed := strings.TrimSpace(productID)
	if trimmed == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}

	var product models.Product
	if err := c.do(ctx, "get_product", http.MethodGet, "/api/products/"+url.PathEscape(trimmed), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// CreateProduct uploads a new catalog record with its image and returns the
// persisted record with its server-assigned id.
func (c *Client) CreateProduct(ctx context.Context, req CreateProductRequest) (*models.Product, error) {
	if strings.TrimSpace(req.ModelName) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "model name is required")
	}
	if req.Price < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price cannot be negative")
	}

	fields := map[string]string{
		"modelName":   strings.TrimSpace(req.ModelName),
		"description": req.Description,
		"price":       strconv.FormatFloat(req.Price, 'f', -1, 64),
		"condition":   req.Condition,
	}

	var created models.Product
	if err := c.doMultipart(ctx, "create_product", "/api/admin/admin-upload", fields, "image", req.ImageName, req.Image, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateProduct edits one catalog record and returns the updated record.
func (c *Client) UpdateProduct(ctx context.Context, productID string, req UpdateProductRequest) (*models.Product, error) {
	trimmed := strings.TrimSpace(productID)
	if trimmed == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}

	var updated models.Product
	if err := c.do(ctx, "update_product", http.MethodPut, "/api/products/"+url.PathEscape(trimmed), req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteProduct removes one catalog record.
func (c *Client) DeleteProduct(ctx context.Context, productID string) error {
	trimmed := strings.TrimSpace(productID)
	if trimmed == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	return c.do(ctx, "delete_product", http.MethodDelete, "/api/products/"+url.PathEscape(trimmed), nil, nil)
}
