package bolt

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/petshop-pos/internal/domain/entity"
	"github.com/tu-usuario/petshop-pos/internal/domain/repository"
)

func abrirStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "pos.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func productoPrueba(id, name string, stock int) *entity.Product {
	now := time.Now().Truncate(time.Millisecond)
	return &entity.Product{
		ID:        id,
		Name:      name,
		SKU:       "SKU-" + id,
		Category:  entity.CategoryFood,
		Price:     decimal.NewFromInt(1000),
		Cost:      decimal.NewFromInt(500),
		Stock:     stock,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestProductRepoCRUD(t *testing.T) {
	repo := NewProductRepo(abrirStore(t))

	require.NoError(t, repo.Create(productoPrueba("p1", "Croquetas", 10)))

	leido, err := repo.GetByID("p1")
	require.NoError(t, err)
	require.NotNil(t, leido)
	assert.Equal(t, "Croquetas", leido.Name)
	assert.True(t, leido.Price.Equal(decimal.NewFromInt(1000)))

	leido.Stock = 7
	require.NoError(t, repo.Update(leido))
	leido, err = repo.GetByID("p1")
	require.NoError(t, err)
	assert.Equal(t, 7, leido.Stock)

	require.NoError(t, repo.Delete("p1"))
	leido, err = repo.GetByID("p1")
	require.NoError(t, err)
	assert.Nil(t, leido, "eliminado no debe encontrarse")

	// borrar de nuevo es no-op
	require.NoError(t, repo.Delete("p1"))
}

func TestProductRepoGetByIDInexistenteDevuelveNil(t *testing.T) {
	repo := NewProductRepo(abrirStore(t))

	p, err := repo.GetByID("nada")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestProductRepoGetByBarcode(t *testing.T) {
	repo := NewProductRepo(abrirStore(t))

	p1 := productoPrueba("p1", "Croquetas", 10)
	p1.Barcode = "7701234567890"
	require.NoError(t, repo.Create(p1))
	require.NoError(t, repo.Create(productoPrueba("p2", "Correa", 3)))

	encontrado, err := repo.GetByBarcode("7701234567890")
	require.NoError(t, err)
	require.NotNil(t, encontrado)
	assert.Equal(t, "p1", encontrado.ID)

	ninguno, err := repo.GetByBarcode("000")
	require.NoError(t, err)
	assert.Nil(t, ninguno)
}

func TestProductRepoListConservaOrdenDeInsercion(t *testing.T) {
	repo := NewProductRepo(abrirStore(t))

	ids := []string{"z9", "a1", "m5"}
	for _, id := range ids {
		require.NoError(t, repo.Create(productoPrueba(id, "Producto "+id, 1)))
	}
	// actualizar el primero no debe moverlo de lugar
	p, err := repo.GetByID("z9")
	require.NoError(t, err)
	p.Stock = 99
	require.NoError(t, repo.Update(p))

	list, err := repo.List()
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i, id := range ids {
		assert.Equal(t, id, list[i].ID)
	}
	assert.Equal(t, 99, list[0].Stock)
}

func TestProductRepoReplaceAllReconstruyeEnOrden(t *testing.T) {
	repo := NewProductRepo(abrirStore(t))
	require.NoError(t, repo.Create(productoPrueba("viejo", "Viejo", 1)))

	nuevos := []*entity.Product{
		productoPrueba("n2", "Nuevo 2", 2),
		productoPrueba("n1", "Nuevo 1", 1),
	}
	require.NoError(t, repo.ReplaceAll(nuevos))

	list, err := repo.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "n2", list[0].ID)
	assert.Equal(t, "n1", list[1].ID)

	viejo, err := repo.GetByID("viejo")
	require.NoError(t, err)
	assert.Nil(t, viejo)
}

func TestOrderRepoCreateYList(t *testing.T) {
	repo := NewOrderRepo(abrirStore(t))

	o := &entity.Order{
		ID: "o1",
		Items: []entity.OrderItem{
			{ProductID: "p1", Quantity: 2, Price: decimal.NewFromInt(1000)},
		},
		Total:         decimal.NewFromInt(2000),
		PaymentMethod: entity.PaymentCash,
		Status:        entity.OrderStatusCompleted,
		CreatedAt:     time.Now().Truncate(time.Millisecond),
	}
	require.NoError(t, repo.Create(o))

	leida, err := repo.GetByID("o1")
	require.NoError(t, err)
	require.NotNil(t, leida)
	require.Len(t, leida.Items, 1)
	assert.Equal(t, 2, leida.Items[0].Quantity)
	assert.True(t, leida.Total.Equal(decimal.NewFromInt(2000)))

	list, err := repo.List()
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestTransactionRepoCreateYList(t *testing.T) {
	repo := NewTransactionRepo(abrirStore(t))

	require.NoError(t, repo.Create(&entity.Transaction{
		ID:          "t1",
		Type:        entity.TransactionSale,
		Amount:      decimal.NewFromInt(2000),
		Description: "Orden #abc123",
		OrderID:     "o1",
		CreatedAt:   time.Now().Truncate(time.Millisecond),
	}))

	list, err := repo.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, entity.TransactionSale, list[0].Type)
	assert.Equal(t, "o1", list[0].OrderID)
}

func TestTxRunnerRevierteTodoAnteUnError(t *testing.T) {
	store := abrirStore(t)
	productos := NewProductRepo(store)
	require.NoError(t, productos.Create(productoPrueba("p1", "Croquetas", 10)))

	falla := errors.New("paso final falla")
	err := NewTxRunner(store).Run(func(
		products repository.ProductRepository,
		orders repository.OrderRepository,
		transactions repository.TransactionRepository,
	) error {
		if err := orders.Create(&entity.Order{ID: "o1", Total: decimal.NewFromInt(100)}); err != nil {
			return err
		}
		p, err := products.GetByID("p1")
		if err != nil {
			return err
		}
		p.Stock = 0
		if err := products.Update(p); err != nil {
			return err
		}
		return falla
	})
	require.ErrorIs(t, err, falla)

	// nada de lo escrito dentro de la transacción debe persistir
	ordenes, err := NewOrderRepo(store).List()
	require.NoError(t, err)
	assert.Empty(t, ordenes)

	p, err := productos.GetByID("p1")
	require.NoError(t, err)
	assert.Equal(t, 10, p.Stock, "el stock vuelve a su valor previo")
}

func TestTxRunnerConfirmaLaSecuenciaCompleta(t *testing.T) {
	store := abrirStore(t)
	productos := NewProductRepo(store)
	require.NoError(t, productos.Create(productoPrueba("p1", "Croquetas", 10)))

	err := NewTxRunner(store).Run(func(
		products repository.ProductRepository,
		orders repository.OrderRepository,
		transactions repository.TransactionRepository,
	) error {
		if err := orders.Create(&entity.Order{ID: "o1", Total: decimal.NewFromInt(2000)}); err != nil {
			return err
		}
		p, err := products.GetByID("p1")
		if err != nil {
			return err
		}
		p.Stock -= 2
		if err := products.Update(p); err != nil {
			return err
		}
		return transactions.Create(&entity.Transaction{
			ID:     "t1",
			Type:   entity.TransactionSale,
			Amount: decimal.NewFromInt(2000),
		})
	})
	require.NoError(t, err)

	p, err := productos.GetByID("p1")
	require.NoError(t, err)
	assert.Equal(t, 8, p.Stock)

	txs, err := NewTransactionRepo(store).List()
	require.NoError(t, err)
	require.Len(t, txs, 1)
}
