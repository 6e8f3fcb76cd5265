// Package backup implementa el respaldo completo del almacén: exportación a
// un documento versionado, importación con reemplazo total y vaciado.
package backup

import (
	"fmt"
	"time"

	"github.com/tu-usuario/petshop-pos/internal/application/dto"
	"github.com/tu-usuario/petshop-pos/internal/application/ledger"
	"github.com/tu-usuario/petshop-pos/internal/domain"
	"github.com/tu-usuario/petshop-pos/internal/domain/entity"
	"github.com/tu-usuario/petshop-pos/internal/domain/repository"
)

// BackupUseCase opera sobre las tres colecciones como un todo. Importar y
// vaciar pasan por el TxRunner: el reemplazo de las tres colecciones es una
// sola transacción de escritura.
type BackupUseCase struct {
	txRunner        ledger.TxRunner
	productRepo     repository.ProductRepository
	orderRepo       repository.OrderRepository
	transactionRepo repository.TransactionRepository
}

// NewBackupUseCase construye el caso de uso.
func NewBackupUseCase(
	txRunner ledger.TxRunner,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	transactionRepo repository.TransactionRepository,
) *BackupUseCase {
	return &BackupUseCase{
		txRunner:        txRunner,
		productRepo:     productRepo,
		orderRepo:       orderRepo,
		transactionRepo: transactionRepo,
	}
}

// Export arma el documento de respaldo con las tres colecciones completas en
// su orden de inserción, la fecha de exportación y la versión del formato.
func (uc *BackupUseCase) Export() (*dto.BackupDocument, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, fmt.Errorf("export: productos: %w", err)
	}
	orders, err := uc.orderRepo.List()
	if err != nil {
		return nil, fmt.Errorf("export: órdenes: %w", err)
	}
	transactions, err := uc.transactionRepo.List()
	if err != nil {
		return nil, fmt.Errorf("export: transacciones: %w", err)
	}
	if products == nil {
		products = []*entity.Product{}
	}
	if orders == nil {
		orders = []*entity.Order{}
	}
	if transactions == nil {
		transactions = []*entity.Transaction{}
	}
	return &dto.BackupDocument{
		Products:     products,
		Orders:       orders,
		Transactions: transactions,
		ExportDate:   time.Now(),
		Version:      dto.BackupVersion,
	}, nil
}

// Import valida el documento y reemplaza las tres colecciones por su
// contenido. La validación corre ANTES de tocar el almacén: un documento al
// que le falte cualquiera de las tres colecciones se rechaza completo y los
// datos actuales quedan intactos. Colecciones presentes pero vacías son
// válidas.
func (uc *BackupUseCase) Import(doc *dto.BackupDocument) (*dto.ImportResultDTO, error) {
	if doc == nil || doc.Products == nil || doc.Orders == nil || doc.Transactions == nil {
		return nil, domain.ErrValidation
	}

	err := uc.txRunner.Run(func(
		products repository.ProductRepository,
		orders repository.OrderRepository,
		transactions repository.TransactionRepository,
	) error {
		if err := products.ReplaceAll(doc.Products); err != nil {
			return err
		}
		if err := orders.ReplaceAll(doc.Orders); err != nil {
			return err
		}
		return transactions.ReplaceAll(doc.Transactions)
	})
	if err != nil {
		return nil, fmt.Errorf("import: %w", err)
	}

	return &dto.ImportResultDTO{
		Products:       len(doc.Products),
		Orders:         len(doc.Orders),
		Transactions:   len(doc.Transactions),
		ReloadRequired: true,
	}, nil
}

// Clear vacía las tres colecciones en una sola transacción. La confirmación
// explícita del operador es responsabilidad de la capa de entrada.
func (uc *BackupUseCase) Clear() error {
	err := uc.txRunner.Run(func(
		products repository.ProductRepository,
		orders repository.OrderRepository,
		transactions repository.TransactionRepository,
	) error {
		if err := products.ReplaceAll(nil); err != nil {
			return err
		}
		if err := orders.ReplaceAll(nil); err != nil {
			return err
		}
		return transactions.ReplaceAll(nil)
	})
	if err != nil {
		return fmt.Errorf("clear: %w", err)
	}
	return nil
}
