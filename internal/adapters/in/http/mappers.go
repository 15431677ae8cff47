package http

import (
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/core/domain/model/user"
)

func userFromAggregate(aggregate *user.User) User {
	return User{
		ID:        aggregate.ID().String(),
		Email:     aggregate.Email().String(),
		Name:      aggregate.Name(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

func productFromAggregate(aggregate *product.Product) Product {
	return Product{
		ID:          aggregate.ID().String(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		Price:       aggregate.Price().Amount().StringFixed(2),
		Currency:    aggregate.Price().Currency(),
		SKU:         aggregate.SKU(),
		Stock:       aggregate.Stock(),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
	}
}

func orderFromAggregate(aggregate *order.Order) Order {
	items := make([]OrderItem, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItem{
			ID:          item.ID(),
			ProductID:   item.Product().ID().String(),
			ProductName: item.Product().Name(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice().Amount().StringFixed(2),
			Subtotal:    item.Subtotal().Amount().StringFixed(2),
		})
	}

	response := Order{
		ID:        aggregate.ID().String(),
		UserID:    aggregate.User().ID().String(),
		UserName:  aggregate.User().Name(),
		UserEmail: aggregate.User().Email().String(),
		Status:    aggregate.Status().String(),
		Items:     items,
		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
	}

	if total, err := aggregate.TotalAmount(); err == nil {
		response.TotalAmount = total.Amount().StringFixed(2)
		response.Currency = total.Currency()
	}

	return response
}

func orderFromProjection(projection queries.OrderProjection) Order {
	items := make([]OrderItem, 0, len(projection.Items))
	for _, item := range projection.Items {
		items = append(items, OrderItem{
			ID:          item.ID,
			ProductID:   item.ProductID.String(),
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice.StringFixed(2),
			Subtotal:    item.Subtotal.StringFixed(2),
		})
	}

	return Order{
		ID:          projection.ID.String(),
		UserID:      projection.UserID.String(),
		UserName:    projection.UserName,
		UserEmail:   projection.UserEmail,
		Status:      projection.Status,
		Items:       items,
		TotalAmount: projection.TotalAmount.StringFixed(2),
		Currency:    projection.Currency,
		CreatedAt:   projection.CreatedAt,
		UpdatedAt:   projection.UpdatedAt,
	}
}
