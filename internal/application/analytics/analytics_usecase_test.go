package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/petshop-pos/internal/domain/entity"
)

// ── repositorios en memoria ───────────────────────────────────────────────────

type memProductRepo struct{ items []*entity.Product }

func (r *memProductRepo) Create(p *entity.Product) error { r.items = append(r.items, p); return nil }
func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	for _, p := range r.items {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}
func (r *memProductRepo) GetByBarcode(code string) (*entity.Product, error) {
	for _, p := range r.items {
		if p.Barcode == code {
			return p, nil
		}
	}
	return nil, nil
}
func (r *memProductRepo) List() ([]*entity.Product, error) { return r.items, nil }
func (r *memProductRepo) Update(p *entity.Product) error {
	for i, existing := range r.items {
		if existing.ID == p.ID {
			r.items[i] = p
		}
	}
	return nil
}
func (r *memProductRepo) Delete(id string) error {
	kept := r.items[:0]
	for _, p := range r.items {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	r.items = kept
	return nil
}
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

// ── fixtures ──────────────────────────────────────────────────────────────────

func money(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func producto(id, name string, cost int64, stock int) *entity.Product {
	return &entity.Product{
		ID:       id,
		Name:     name,
		SKU:      "SKU-" + id,
		Category: entity.CategoryFood,
		Price:    money(cost * 2),
		Cost:     money(cost),
		Stock:    stock,
	}
}

func orden(createdAt time.Time, items ...entity.OrderItem) *entity.Order {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return &entity.Order{
		ID:            "orden-" + createdAt.Format("150405.000"),
		Items:         items,
		Total:         total,
		PaymentMethod: entity.PaymentCash,
		Status:        entity.OrderStatusCompleted,
		CreatedAt:     createdAt,
	}
}

func venta(amount int64, createdAt time.Time) *entity.Transaction {
	return &entity.Transaction{
		ID:        "tx-" + createdAt.Format("150405.000"),
		Type:      entity.TransactionSale,
		Amount:    money(amount),
		CreatedAt: createdAt,
	}
}

func newUseCase(products *memProductRepo, orders *memOrderRepo, transactions *memTransactionRepo) *AnalyticsUseCase {
	return NewAnalyticsUseCase(products, orders, transactions, nil, "Pet Shop", 5)
}

// ── tests ─────────────────────────────────────────────────────────────────────

func TestGetSummaryCalculaMetricasDelDia(t *testing.T) {
	now := time.Now()
	ayer := now.Add(-24 * time.Hour)

	products := &memProductRepo{items: []*entity.Product{
		producto("p1", "Croquetas", 500, 20),
		producto("p2", "Correa", 300, 3),
	}}
	orders := &memOrderRepo{items: []*entity.Order{
		orden(ayer, entity.OrderItem{ProductID: "p1", Quantity: 1, Price: money(1000)}),
		orden(now, entity.OrderItem{ProductID: "p1", Quantity: 2, Price: money(1000)}),
		orden(now, entity.OrderItem{ProductID: "p2", Quantity: 1, Price: money(600)}),
	}}
	transactions := &memTransactionRepo{items: []*entity.Transaction{
		venta(1000, ayer),
		venta(2000, now),
		venta(600, now),
	}}

	summary, err := newUseCase(products, orders, transactions).GetSummary("today")
	require.NoError(t, err)

	assert.Equal(t, "today", summary.Period)
	assert.True(t, summary.Revenue.Equal(money(2600)), "ingreso del día")
	assert.Equal(t, 2, summary.Orders)
	// ganancia: (1000-500)*2 + (600-300)*1 = 1300
	assert.True(t, summary.Profit.Equal(money(1300)), "ganancia del día")
	// vs ayer: ingreso 1000 → 2600 sube 160.0%
	assert.Equal(t, "160.0", summary.RevenueChange.Percentage)
	assert.True(t, summary.RevenueChange.IsPositive)
}

func TestGetSummaryAlertasDeStockIncluyenAgotados(t *testing.T) {
	products := &memProductRepo{items: []*entity.Product{
		producto("p1", "Croquetas", 500, 20),
		producto("p2", "Correa", 300, 5),
		producto("p3", "Pelota", 100, 0),
	}}

	summary, err := newUseCase(products, &memOrderRepo{}, &memTransactionRepo{}).GetSummary("today")
	require.NoError(t, err)

	require.Len(t, summary.StockAlerts, 2)
	assert.Equal(t, "p2", summary.StockAlerts[0].ID)
	assert.Equal(t, "p3", summary.StockAlerts[1].ID)
}

func TestGetSummaryActividadRecienteUltimasCincoInvertidas(t *testing.T) {
	now := time.Now()
	transactions := &memTransactionRepo{}
	for i := 0; i < 7; i++ {
		transactions.items = append(transactions.items, venta(int64(100*(i+1)), now.Add(time.Duration(i)*time.Second)))
	}

	summary, err := newUseCase(&memProductRepo{}, &memOrderRepo{}, transactions).GetSummary("today")
	require.NoError(t, err)

	require.Len(t, summary.RecentActivity, 5)
	assert.True(t, summary.RecentActivity[0].Amount.Equal(money(700)), "la más reciente primero")
	assert.True(t, summary.RecentActivity[4].Amount.Equal(money(300)))
}

func TestGetSummaryPeriodoDesconocido(t *testing.T) {
	_, err := newUseCase(&memProductRepo{}, &memOrderRepo{}, &memTransactionRepo{}).GetSummary("quarter")
	assert.Error(t, err)
}

func TestTopSellingProductsAgregaYOrdena(t *testing.T) {
	now := time.Now()
	products := &memProductRepo{items: []*entity.Product{
		producto("p1", "Croquetas", 500, 20),
		producto("p2", "Correa", 300, 3),
	}}
	orders := &memOrderRepo{items: []*entity.Order{
		orden(now,
			entity.OrderItem{ProductID: "p1", Quantity: 1, Price: money(1000)},
			entity.OrderItem{ProductID: "p2", Quantity: 4, Price: money(600)},
		),
		orden(now, entity.OrderItem{ProductID: "p1", Quantity: 2, Price: money(1000)}),
	}}

	top, err := newUseCase(products, orders, &memTransactionRepo{}).TopSellingProducts(1)
	require.NoError(t, err)

	require.Len(t, top, 1)
	assert.Equal(t, "p2", top[0].ID)
	assert.Equal(t, 4, top[0].SoldQuantity)
	assert.True(t, top[0].Revenue.Equal(money(2400)))
}

func TestTopSellingProductsTruncaAntesDeDescartarEliminados(t *testing.T) {
	now := time.Now()
	products := &memProductRepo{items: []*entity.Product{
		producto("p2", "Correa", 300, 3),
	}}
	// "p1" (eliminado) lidera el ranking con 5; "p2" vende 3.
	orders := &memOrderRepo{items: []*entity.Order{
		orden(now, entity.OrderItem{ProductID: "p1", Quantity: 5, Price: money(400)}),
		orden(now, entity.OrderItem{ProductID: "p2", Quantity: 3, Price: money(600)}),
	}}

	// El eliminado ocupa el único lugar del ranking: no se rellena con "p2".
	top, err := newUseCase(products, orders, &memTransactionRepo{}).TopSellingProducts(1)
	require.NoError(t, err)
	assert.Empty(t, top)

	// Con dos lugares, "p2" entra en el suyo.
	top, err = newUseCase(products, orders, &memTransactionRepo{}).TopSellingProducts(2)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "p2", top[0].ID)
}

func TestTopSellingProductsDescartaProductosEliminados(t *testing.T) {
	now := time.Now()
	products := &memProductRepo{items: []*entity.Product{
		producto("p1", "Croquetas", 500, 20),
	}}
	orders := &memOrderRepo{items: []*entity.Order{
		orden(now, entity.OrderItem{ProductID: "fantasma", Quantity: 9, Price: money(100)}),
		orden(now, entity.OrderItem{ProductID: "p1", Quantity: 1, Price: money(1000)}),
	}}

	top, err := newUseCase(products, orders, &memTransactionRepo{}).TopSellingProducts(10)
	require.NoError(t, err)

	require.Len(t, top, 1)
	assert.Equal(t, "p1", top[0].ID)
}

func TestGetReportIncluyeRankingYStockBajo(t *testing.T) {
	now := time.Now()
	products := &memProductRepo{items: []*entity.Product{
		producto("p1", "Croquetas", 500, 20),
		producto("p2", "Correa", 300, 2),
	}}
	orders := &memOrderRepo{items: []*entity.Order{
		orden(now, entity.OrderItem{ProductID: "p1", Quantity: 3, Price: money(1000)}),
	}}
	transactions := &memTransactionRepo{items: []*entity.Transaction{
		venta(3000, now),
	}}

	report, err := newUseCase(products, orders, transactions).GetReport("month", 0)
	require.NoError(t, err)

	assert.Equal(t, "month", report.Period)
	assert.True(t, report.Revenue.Equal(money(3000)))
	assert.Equal(t, 1, report.Orders)
	require.Len(t, report.TopProducts, 1)
	assert.Equal(t, "p1", report.TopProducts[0].ID)
	require.Len(t, report.LowStockProducts, 1)
	assert.Equal(t, "p2", report.LowStockProducts[0].ID)
	assert.False(t, report.ExportDate.IsZero())
	assert.True(t, report.DateRange.Start.Before(report.DateRange.End))
}

func TestGetReportGananciaOmiteProductosEliminados(t *testing.T) {
	now := time.Now()
	products := &memProductRepo{items: []*entity.Product{
		producto("p1", "Croquetas", 500, 20),
	}}
	orders := &memOrderRepo{items: []*entity.Order{
		orden(now,
			entity.OrderItem{ProductID: "p1", Quantity: 1, Price: money(1000)},
			entity.OrderItem{ProductID: "fantasma", Quantity: 5, Price: money(999)},
		),
	}}

	report, err := newUseCase(products, orders, &memTransactionRepo{}).GetReport("today", 10)
	require.NoError(t, err)

	assert.True(t, report.Profit.Equal(money(500)), "la línea del producto eliminado no aporta ganancia")
}
