package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción del libro mayor. El flujo de órdenes solo produce
// "sale"; purchase y refund existen en el modelo pero ningún flujo los emite.
const (
	TransactionSale     = "sale"
	TransactionPurchase = "purchase"
	TransactionRefund   = "refund"
)

// Transaction asiento del libro mayor. Solo se agrega; nunca se muta ni se
// borra individualmente (solo el borrado/reemplazo masivo del respaldo).
type Transaction struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	OrderID     string          `json:"orderId,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}
