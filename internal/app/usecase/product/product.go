// Package product implements the operational-admin catalog flows: listing
// and maintaining the product catalog. Creation and updates are validated
// here before touching the API.
package product

import (
	"context"
	"errors"

	"github.com/kisaanstar/console/internal/app/entity"
	"github.com/kisaanstar/console/internal/app/usecase/validator"
	"go.uber.org/zap"
)

var (
	ErrNameTooShort = errors.New("product name must be at least 6 characters")
	ErrPriceInvalid = errors.New("product price must be greater than zero")
)

// Catalog is the slice of the remote API the catalog flows depend on.
type Catalog interface {
	Products(ctx context.Context) (entity.Products, error)
	Product(ctx context.Context, productID entity.ProductID) (entity.Product, error)
	CreateProduct(ctx context.Context, product entity.Product) error
	UpdateProduct(ctx context.Context, product entity.Product) error
	DeleteProduct(ctx context.Context, productID entity.ProductID) error
}

type Service struct {
	catalog Catalog
}

func NewService(catalog Catalog) *Service {
	return &Service{catalog: catalog}
}

func (s *Service) List(ctx context.Context) (entity.Products, error) {
	products, err := s.catalog.Products(ctx)
	if err != nil {
		zap.L().Error("error while fetching products", zap.Error(err))
		return nil, err
	}

	return products, nil
}

func (s *Service) Get(ctx context.Context, productID entity.ProductID) (entity.Product, error) {
	product, err := s.catalog.Product(ctx, productID)
	if err != nil {
		zap.L().Error("error while fetching product",
			zap.String("product_id", productID.String()),
			zap.Error(err),
		)
		return entity.Product{}, err
	}

	return product, nil
}

// Create validates the product and submits it to the catalog.
func (s *Service) Create(ctx context.Context, product entity.Product) error {
	if err := validate(product); err != nil {
		return err
	}

	err := s.catalog.CreateProduct(ctx, product)
	if err != nil {
		zap.L().Error("error while creating product", zap.Error(err))
		return err
	}

	zap.L().Info("product created", zap.String("name", product.Name))

	return nil
}

// Update validates the product and saves the changes.
func (s *Service) Update(ctx context.Context, product entity.Product) error {
	if err := validate(product); err != nil {
		return err
	}

	err := s.catalog.UpdateProduct(ctx, product)
	if err != nil {
		zap.L().Error("error while updating product",
			zap.String("product_id", product.ID.String()),
			zap.Error(err),
		)
		return err
	}

	return nil
}

func (s *Service) Remove(ctx context.Context, productID entity.ProductID) error {
	err := s.catalog.DeleteProduct(ctx, productID)
	if err != nil {
		zap.L().Error("error while deleting product",
			zap.String("product_id", productID.String()),
			zap.Error(err),
		)
	}

	return err
}

func validate(product entity.Product) error {
	if !validator.ProductName(product.Name) {
		return ErrNameTooShort
	}
	if !validator.ProductPrice(product.Price) {
		return ErrPriceInvalid
	}

	return nil
}
