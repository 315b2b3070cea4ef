package transport

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Monetary request fields use decimal.Decimal, which accepts both JSON
// numbers and strings.

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	TaxID    string `json:"tax_id"`
	Phone    string `json:"phone"`
	City     string `json:"city"`
	Address  string `json:"address"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type CreateProductRequest struct {
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Status   string          `json:"status"`
	Stock    int             `json:"stock"`
	Price    decimal.Decimal `json:"price"`
}

type PatchProductRequest struct {
	Name     *string          `json:"name"`
	Category *string          `json:"category"`
	Status   *string          `json:"status"`
	Stock    *int             `json:"stock"`
	Price    *decimal.Decimal `json:"price"`
}

type PatchProfileRequest struct {
	Name    *string `json:"name"`
	TaxID   *string `json:"tax_id"`
	Phone   *string `json:"phone"`
	City    *string `json:"city"`
	Address *string `json:"address"`
}

type OrderItemRequest struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

type CreateOrderRequest struct {
	ProducerID  uuid.UUID          `json:"producer_id"`
	ClientName  string             `json:"client_name"`
	ClientPhone string             `json:"client_phone"`
	ClientEmail string             `json:"client_email"`
	TotalPrice  decimal.Decimal    `json:"total_price"`
	Items       []OrderItemRequest `json:"items"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

type CreateRatingRequest struct {
	OrderID     uuid.UUID `json:"order_id"`
	Score       int       `json:"score"`
	Comment     string    `json:"comment"`
	ClientName  string    `json:"client_name"`
	ClientPhone string    `json:"client_phone"`
}
