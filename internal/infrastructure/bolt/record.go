package bolt

import (
	"encoding/binary"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/tu-usuario/petshop-pos/internal/domain"
)

// Las funciones de este archivo implementan el esquema de registros común a
// las tres colecciones: el bucket principal guarda el registro serializado
// bajo una clave secuencial de 8 bytes big-endian y el bucket índice mapea el
// ID del registro a esa clave. Recorrer el bucket principal con el cursor
// devuelve los registros en orden de inserción.

func seqKey(seq uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, seq)
	return key
}

// appendRecord agrega un registro nuevo al final de la colección.
func appendRecord(tx *bbolt.Tx, collection, id string, value []byte) error {
	bucket := tx.Bucket([]byte(collection))
	index := tx.Bucket([]byte(collection + indexSuffix))
	if bucket == nil || index == nil {
		return fmt.Errorf("bucket %s: %w", collection, domain.ErrStorageUnavailable)
	}
	seq, err := bucket.NextSequence()
	if err != nil {
		return fmt.Errorf("next sequence %s: %w", collection, err)
	}
	key := seqKey(seq)
	if err := bucket.Put(key, value); err != nil {
		return fmt.Errorf("put %s: %w", collection, err)
	}
	if err := index.Put([]byte(id), key); err != nil {
		return fmt.Errorf("index %s: %w", collection, err)
	}
	return nil
}

// getRecord devuelve el registro por ID o nil si no existe.
func getRecord(tx *bbolt.Tx, collection, id string) []byte {
	index := tx.Bucket([]byte(collection + indexSuffix))
	if index == nil {
		return nil
	}
	key := index.Get([]byte(id))
	if key == nil {
		return nil
	}
	return tx.Bucket([]byte(collection)).Get(key)
}

// updateRecord reescribe un registro existente bajo su clave original, de
// modo que conserva su posición en el orden de inserción.
func updateRecord(tx *bbolt.Tx, collection, id string, value []byte) error {
	index := tx.Bucket([]byte(collection + indexSuffix))
	if index == nil {
		return fmt.Errorf("bucket %s: %w", collection, domain.ErrStorageUnavailable)
	}
	key := index.Get([]byte(id))
	if key == nil {
		return fmt.Errorf("update %s %s: %w", collection, id, domain.ErrNotFound)
	}
	if err := tx.Bucket([]byte(collection)).Put(key, value); err != nil {
		return fmt.Errorf("put %s: %w", collection, err)
	}
	return nil
}

// deleteRecord elimina un registro por ID. Es no-op si no existe.
func deleteRecord(tx *bbolt.Tx, collection, id string) error {
	index := tx.Bucket([]byte(collection + indexSuffix))
	if index == nil {
		return fmt.Errorf("bucket %s: %w", collection, domain.ErrStorageUnavailable)
	}
	key := index.Get([]byte(id))
	if key == nil {
		return nil
	}
	if err := tx.Bucket([]byte(collection)).Delete(key); err != nil {
		return fmt.Errorf("delete %s: %w", collection, err)
	}
	if err := index.Delete([]byte(id)); err != nil {
		return fmt.Errorf("unindex %s: %w", collection, err)
	}
	return nil
}

// forEachRecord recorre la colección en orden de inserción.
func forEachRecord(tx *bbolt.Tx, collection string, fn func(value []byte) error) error {
	bucket := tx.Bucket([]byte(collection))
	if bucket == nil {
		return fmt.Errorf("bucket %s: %w", collection, domain.ErrStorageUnavailable)
	}
	return bucket.ForEach(func(_, value []byte) error {
		return fn(value)
	})
}

// resetCollection descarta el contenido de la colección y reinicia su
// secuencia. Los registros nuevos se agregan con appendRecord.
func resetCollection(tx *bbolt.Tx, collection string) error {
	for _, name := range []string{collection, collection + indexSuffix} {
		if err := tx.DeleteBucket([]byte(name)); err != nil && err != bbolt.ErrBucketNotFound {
			return fmt.Errorf("reset %s: %w", name, err)
		}
		if _, err := tx.CreateBucket([]byte(name)); err != nil {
			return fmt.Errorf("recreate %s: %w", name, err)
		}
	}
	return nil
}
