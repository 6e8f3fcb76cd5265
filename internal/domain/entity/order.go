package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago aceptados en el checkout.
const (
	PaymentCash = "cash"
	PaymentBank = "bank"
)

// OrderStatusCompleted único estado que produce el flujo actual: las órdenes
// nacen completadas y son inmutables después de creadas.
const OrderStatusCompleted = "completed"

// OrderItem línea de una orden. Price es el precio unitario capturado al
// momento de la venta, independiente del precio actual del producto.
type OrderItem struct {
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// Order orden de venta. Total llega del carrito y no se re-deriva de las líneas.
type Order struct {
	ID            string          `json:"id"`
	Items         []OrderItem     `json:"items"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"paymentMethod"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ValidPaymentMethod indica si s es un método de pago aceptado.
func ValidPaymentMethod(s string) bool {
	return s == PaymentCash || s == PaymentBank
}
