package http

import "time"

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewUser is the request body for registering a user.
type NewUser struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// User is the response shape of one registered user.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// NewProduct is the request body for adding a catalog product.
type NewProduct struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	SKU         string  `json:"sku"`
	Stock       int     `json:"stock"`
}

// Product is the response shape of one catalog product.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       string    `json:"price"`
	Currency    string    `json:"currency"`
	SKU         string    `json:"sku"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewOrderItem is one requested order line.
type NewOrderItem struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Currency  string  `json:"currency"`
}

// NewOrder is the request body for placing an order.
type NewOrder struct {
	UserID string         `json:"user_id"`
	Items  []NewOrderItem `json:"items"`
}

// UpdateOrderStatus is the request body for moving an order to a new status.
type UpdateOrderStatus struct {
	Status string `json:"status"`
}

// OrderItem is the response shape of one order line.
type OrderItem struct {
	ID          string `json:"id"`
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name,omitempty"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	Subtotal    string `json:"subtotal"`
}

// Order is the response shape of one order with its lines and total.
type Order struct {
	ID          string      `json:"id"`
	UserID      string      `json:"user_id"`
	UserName    string      `json:"user_name,omitempty"`
	UserEmail   string      `json:"user_email,omitempty"`
	Status      string      `json:"status"`
	Items       []OrderItem `json:"items"`
	TotalAmount string      `json:"total_amount"`
	Currency    string      `json:"currency"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
