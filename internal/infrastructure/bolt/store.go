// Package bolt implementa la persistencia local del punto de venta sobre un
// único archivo bbolt. Cada colección vive en un bucket propio con claves
// secuenciales, de modo que el listado devuelve los registros en su orden de
// inserción, más un bucket índice id → clave para el acceso directo.
package bolt

import (
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/tu-usuario/petshop-pos/internal/domain"
)

const (
	bucketProducts     = "products"
	bucketOrders       = "orders"
	bucketTransactions = "transactions"

	indexSuffix = "_idx"

	openTimeout = time.Second
)

var collections = []string{bucketProducts, bucketOrders, bucketTransactions}

// Querier abstrae el origen de las transacciones de lectura y escritura: el
// *Store abre una transacción propia por operación, mientras que txQuerier
// ata todas las operaciones a una transacción ya abierta por el TxRunner.
type Querier interface {
	View(fn func(tx *bbolt.Tx) error) error
	Update(fn func(tx *bbolt.Tx) error) error
}

// Store es el almacén local. Satisface Querier con transacciones por
// operación.
type Store struct {
	db *bbolt.DB
}

var _ Querier = (*Store)(nil)

// Open abre (o crea) el archivo del almacén y garantiza los buckets de las
// tres colecciones. El timeout corto evita bloquearse contra otro proceso que
// tenga el archivo tomado.
func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrStorageUnavailable, path, err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		for _, name := range collections {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return err
			}
			if _, err := tx.CreateBucketIfNotExists([]byte(name + indexSuffix)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init buckets: %w", err)
	}
	return &Store{db: db}, nil
}

// Close cierra el archivo del almacén.
func (s *Store) Close() error {
	return s.db.Close()
}

// View ejecuta fn dentro de una transacción de solo lectura.
func (s *Store) View(fn func(tx *bbolt.Tx) error) error {
	return s.db.View(fn)
}

// Update ejecuta fn dentro de una transacción de escritura.
func (s *Store) Update(fn func(tx *bbolt.Tx) error) error {
	return s.db.Update(fn)
}

// txQuerier ata View y Update a una transacción de escritura ya abierta.
type txQuerier struct {
	tx *bbolt.Tx
}

var _ Querier = (*txQuerier)(nil)

func (q *txQuerier) View(fn func(tx *bbolt.Tx) error) error   { return fn(q.tx) }
func (q *txQuerier) Update(fn func(tx *bbolt.Tx) error) error { return fn(q.tx) }
