package ledger

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/petshop-pos/internal/application/dto"
	"github.com/tu-usuario/petshop-pos/internal/domain"
	"github.com/tu-usuario/petshop-pos/internal/domain/entity"
	"github.com/tu-usuario/petshop-pos/internal/domain/repository"
)

type memProductRepo struct{ items []*entity.Product }

func (r *memProductRepo) Create(p *entity.Product) error { r.items = append(r.items, p); return nil }
func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	for _, p := range r.items {
		if p.ID == id {
			copia := *p
			return &copia, nil
		}
	}
	return nil, nil
}
func (r *memProductRepo) GetByBarcode(code string) (*entity.Product, error) { return nil, nil }
func (r *memProductRepo) List() ([]*entity.Product, error)                  { return r.items, nil }
func (r *memProductRepo) Update(p *entity.Product) error {
	for i, existing := range r.items {
		if existing.ID == p.ID {
			r.items[i] = p
		}
	}
	return nil
}
func (r *memProductRepo) Delete(id string) error                   { return nil }
func (r *memProductRepo) ReplaceAll(items []*entity.Product) error { r.items = items; return nil }

type memOrderRepo struct{ items []*entity.Order }

func (r *memOrderRepo) Create(o *entity.Order) error { r.items = append(r.items, o); return nil }
func (r *memOrderRepo) GetByID(id string) (*entity.Order, error) {
	for _, o := range r.items {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, nil
}
func (r *memOrderRepo) List() ([]*entity.Order, error)         { return r.items, nil }
func (r *memOrderRepo) ReplaceAll(items []*entity.Order) error { r.items = items; return nil }

type memTransactionRepo struct{ items []*entity.Transaction }

func (r *memTransactionRepo) Create(t *entity.Transaction) error {
	r.items = append(r.items, t)
	return nil
}
func (r *memTransactionRepo) List() ([]*entity.Transaction, error) { return r.items, nil }
func (r *memTransactionRepo) ReplaceAll(items []*entity.Transaction) error {
	r.items = items
	return nil
}

type directTxRunner struct {
	products     *memProductRepo
	orders       *memOrderRepo
	transactions *memTransactionRepo
}

func (r *directTxRunner) Run(fn func(
	products repository.ProductRepository,
	orders repository.OrderRepository,
	transactions repository.TransactionRepository,
) error) error {
	return fn(r.products, r.orders, r.transactions)
}

func newFixture(stock int) (*OrderUseCase, *memProductRepo, *memOrderRepo, *memTransactionRepo) {
	products := &memProductRepo{items: []*entity.Product{{
		ID:       "p1",
		Name:     "Croquetas",
		SKU:      "SKU-p1",
		Category: entity.CategoryFood,
		Price:    decimal.NewFromInt(1000),
		Cost:     decimal.NewFromInt(500),
		Stock:    stock,
	}}}
	orders := &memOrderRepo{}
	transactions := &memTransactionRepo{}
	runner := &directTxRunner{products: products, orders: orders, transactions: transactions}
	return NewOrderUseCase(runner, orders), products, orders, transactions
}

func TestCreateOrderDescuentaStockYRegistraVenta(t *testing.T) {
	uc, products, orders, transactions := newFixture(10)

	out, err := uc.CreateOrder(dto.CreateOrderRequest{
		Items: []dto.OrderItemRequest{
			{ProductID: "p1", Quantity: 2, Price: decimal.NewFromInt(1000)},
		},
		Total:         decimal.NewFromInt(2000),
		PaymentMethod: entity.PaymentCash,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, entity.OrderStatusCompleted, out.Status)
	assert.True(t, out.Total.Equal(decimal.NewFromInt(2000)))

	require.Len(t, orders.items, 1)
	assert.Equal(t, 8, products.items[0].Stock)

	require.Len(t, transactions.items, 1)
	venta := transactions.items[0]
	assert.Equal(t, entity.TransactionSale, venta.Type)
	assert.True(t, venta.Amount.Equal(decimal.NewFromInt(2000)))
	assert.Equal(t, out.ID, venta.OrderID)
	require.True(t, strings.HasPrefix(venta.Description, "Orden #"))
	assert.Equal(t, out.ID[:6], strings.TrimPrefix(venta.Description, "Orden #"))
}

func TestCreateOrderPermiteSobreventa(t *testing.T) {
	uc, products, _, _ := newFixture(1)

	_, err := uc.CreateOrder(dto.CreateOrderRequest{
		Items: []dto.OrderItemRequest{
			{ProductID: "p1", Quantity: 5, Price: decimal.NewFromInt(1000)},
		},
		Total:         decimal.NewFromInt(5000),
		PaymentMethod: entity.PaymentCash,
	})
	require.NoError(t, err)

	assert.Equal(t, -4, products.items[0].Stock, "el descuento no tiene piso")
}

func TestCreateOrderSaltaProductosInexistentes(t *testing.T) {
	uc, products, orders, transactions := newFixture(10)

	_, err := uc.CreateOrder(dto.CreateOrderRequest{
		Items: []dto.OrderItemRequest{
			{ProductID: "fantasma", Quantity: 3, Price: decimal.NewFromInt(500)},
			{ProductID: "p1", Quantity: 1, Price: decimal.NewFromInt(1000)},
		},
		Total:         decimal.NewFromInt(2500),
		PaymentMethod: entity.PaymentBank,
	})
	require.NoError(t, err)

	assert.Equal(t, 9, products.items[0].Stock)
	assert.Len(t, orders.items, 1)
	assert.Len(t, transactions.items, 1)
}

func TestCreateOrderRechazaEntradasInvalidas(t *testing.T) {
	uc, _, orders, transactions := newFixture(10)
	item := dto.OrderItemRequest{ProductID: "p1", Quantity: 1, Price: decimal.NewFromInt(1000)}

	casos := []dto.CreateOrderRequest{
		{Items: nil, Total: decimal.Zero, PaymentMethod: entity.PaymentCash},
		{Items: []dto.OrderItemRequest{item}, Total: decimal.NewFromInt(1000), PaymentMethod: "crypto"},
		{Items: []dto.OrderItemRequest{{ProductID: "", Quantity: 1, Price: decimal.NewFromInt(10)}}, Total: decimal.NewFromInt(10), PaymentMethod: entity.PaymentCash},
		{Items: []dto.OrderItemRequest{{ProductID: "p1", Quantity: 0, Price: decimal.NewFromInt(10)}}, Total: decimal.Zero, PaymentMethod: entity.PaymentCash},
		{Items: []dto.OrderItemRequest{{ProductID: "p1", Quantity: 1, Price: decimal.NewFromInt(-10)}}, Total: decimal.Zero, PaymentMethod: entity.PaymentCash},
		{Items: []dto.OrderItemRequest{item}, Total: decimal.NewFromInt(-1), PaymentMethod: entity.PaymentCash},
	}
	for _, in := range casos {
		_, err := uc.CreateOrder(in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}

	assert.Empty(t, orders.items, "ninguna orden inválida debe persistir")
	assert.Empty(t, transactions.items)
}

func TestGetOrder(t *testing.T) {
	uc, _, _, _ := newFixture(10)

	creada, err := uc.CreateOrder(dto.CreateOrderRequest{
		Items: []dto.OrderItemRequest{
			{ProductID: "p1", Quantity: 1, Price: decimal.NewFromInt(1000)},
		},
		Total:         decimal.NewFromInt(1000),
		PaymentMethod: entity.PaymentCash,
	})
	require.NoError(t, err)

	out, err := uc.GetOrder(creada.ID)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, creada.ID, out.ID)
	assert.True(t, out.Total.Equal(decimal.NewFromInt(1000)))

	ninguna, err := uc.GetOrder("nada")
	require.NoError(t, err)
	assert.Nil(t, ninguna)
}

func TestListOrdersDevuelveLaMasRecientePrimero(t *testing.T) {
	uc, _, orders, _ := newFixture(10)
	orders.items = []*entity.Order{
		{ID: "primera", Total: decimal.NewFromInt(100)},
		{ID: "segunda", Total: decimal.NewFromInt(200)},
		{ID: "tercera", Total: decimal.NewFromInt(300)},
	}

	out, err := uc.ListOrders()
	require.NoError(t, err)

	require.Equal(t, 3, out.Total)
	assert.Equal(t, "tercera", out.Items[0].ID)
	assert.Equal(t, "primera", out.Items[2].ID)
}
