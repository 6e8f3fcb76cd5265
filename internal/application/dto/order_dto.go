package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest línea del carrito al momento del checkout. Price es el
// precio unitario capturado en el carrito, no el precio actual del producto.
type OrderItemRequest struct {
	ProductID string          `json:"productId" validate:"required"`
	Quantity  int             `json:"quantity" validate:"required,min=1"`
	Price     decimal.Decimal `json:"price"`
}

// CreateOrderRequest entrada del checkout. Total llega calculado por el
// carrito y se persiste tal cual (no se re-deriva de las líneas).
type CreateOrderRequest struct {
	Items         []OrderItemRequest `json:"items" validate:"required,min=1"`
	Total         decimal.Decimal    `json:"total"`
	PaymentMethod string             `json:"paymentMethod" validate:"required,oneof=cash bank"`
}

// OrderItemResponse línea de una orden persistida.
type OrderItemResponse struct {
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// OrderResponse salida de una orden.
type OrderResponse struct {
	ID            string              `json:"id"`
	Items         []OrderItemResponse `json:"items"`
	Total         decimal.Decimal     `json:"total"`
	PaymentMethod string              `json:"paymentMethod"`
	Status        string              `json:"status"`
	CreatedAt     time.Time           `json:"createdAt"`
}

// OrderListResponse historial de órdenes, la más reciente primero.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Total int             `json:"total"`
}
