package commands

import (
	"context"
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/product"
	"ordering/internal/pkg/errs"
)

// ErrSKUAlreadyRegistered is returned when the requested SKU is already taken
// by another product.
var ErrSKUAlreadyRegistered = errors.New("sku is already registered")

// CreateProductCommandHandler handles the business logic for adding products
// to the catalog.
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewCreateProductCommandHandler creates a handler for catalog registration.
func NewCreateProductCommandHandler(uowFactory ProductUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product registration command.
// Rejects the registration with ErrSKUAlreadyRegistered when another product
// already holds the SKU. Returns the created product on success.
func (h *CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()

	_, err := productRepo.GetBySKU(ctx, cmd.SKU())
	switch {
	case err == nil:
		return nil, fmt.Errorf("%w: %s", ErrSKUAlreadyRegistered, cmd.SKU())
	case !errors.Is(err, errs.ErrObjectNotFound):
		return nil, err
	}

	aggregate, err := product.NewProduct(cmd.Name(), cmd.Description(), cmd.Price(), cmd.SKU(), cmd.Stock())
	if err != nil {
		return nil, err
	}

	if err = productRepo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
