package bolt

import (
	"go.etcd.io/bbolt"

	"github.com/tu-usuario/petshop-pos/internal/application/ledger"
	"github.com/tu-usuario/petshop-pos/internal/domain/repository"
)

// TxRunner ejecuta un callback con los tres repositorios atados a una única
// transacción de escritura del archivo. Si el callback devuelve error, bbolt
// descarta la transacción completa y el archivo queda como estaba.
type TxRunner struct {
	store *Store
}

var _ ledger.TxRunner = (*TxRunner)(nil)

// NewTxRunner crea el runner sobre el almacén dado.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run abre una transacción de escritura y ejecuta fn con repositorios atados
// a ella.
func (r *TxRunner) Run(fn func(
	products repository.ProductRepository,
	orders repository.OrderRepository,
	transactions repository.TransactionRepository,
) error) error {
	return r.store.db.Update(func(tx *bbolt.Tx) error {
		q := &txQuerier{tx: tx}
		return fn(NewProductRepo(q), NewOrderRepo(q), NewTransactionRepo(q))
	})
}
