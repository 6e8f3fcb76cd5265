// Package ledger contiene el caso de uso de checkout: la única escritura
// multi-registro del sistema (orden + descuento de stock + asiento de venta).
package ledger

import "github.com/tu-usuario/petshop-pos/internal/domain/repository"

// TxRunner ejecuta un callback con los tres repositorios atados a una misma
// transacción de escritura: o se confirman todos los pasos o ninguno.
type TxRunner interface {
	Run(fn func(
		products repository.ProductRepository,
		orders repository.OrderRepository,
		transactions repository.TransactionRepository,
	) error) error
}
