// Package analytics contiene la agregación de lectura sobre el libro mayor:
// resumen del dashboard, reporte por período y su versión PDF.
package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/petshop-pos/internal/application/dto"
	"github.com/tu-usuario/petshop-pos/internal/domain/entity"
	"github.com/tu-usuario/petshop-pos/internal/domain/repository"
	"github.com/tu-usuario/petshop-pos/internal/domain/stats"
)

const (
	dashboardRecentActivity = 5  // últimas transacciones en el widget de actividad
	reportTopProducts       = 10 // productos del ranking en el reporte exportable
)

// AnalyticsUseCase agregación read-only sobre las tres colecciones. No muta
// nada: carga los registros y los reduce con la aritmética de domain/stats.
type AnalyticsUseCase struct {
	productRepo     repository.ProductRepository
	orderRepo       repository.OrderRepository
	transactionRepo repository.TransactionRepository
	pdfGenerator    ReportPDFGenerator
	shopName        string
	lowStockLimit   int
}

// NewAnalyticsUseCase construye el caso de uso. lowStockLimit es el umbral de
// alertas de stock (configurable, por defecto 5); pdfGenerator puede ser nil
// si no se sirve el reporte imprimible.
func NewAnalyticsUseCase(
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	transactionRepo repository.TransactionRepository,
	pdfGenerator ReportPDFGenerator,
	shopName string,
	lowStockLimit int,
) *AnalyticsUseCase {
	return &AnalyticsUseCase{
		productRepo:     productRepo,
		orderRepo:       orderRepo,
		transactionRepo: transactionRepo,
		pdfGenerator:    pdfGenerator,
		shopName:        shopName,
		lowStockLimit:   lowStockLimit,
	}
}

// GetSummary construye el resumen del dashboard para un período: métricas del
// período, variación contra la ventana anterior equivalente, alertas de stock
// y las últimas transacciones (la más reciente primero).
func (uc *AnalyticsUseCase) GetSummary(period string) (*dto.DashboardSummaryDTO, error) {
	p, err := stats.ParsePeriod(period)
	if err != nil {
		return nil, err
	}
	products, orders, transactions, err := uc.loadAll()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	cur := metricsFor(stats.RangeFor(p, now), orders, transactions, productIndex(products))
	prev := metricsFor(stats.PreviousRangeFor(p, now), orders, transactions, productIndex(products))

	recent := make([]dto.TransactionResponse, 0, dashboardRecentActivity)
	for i := len(transactions) - 1; i >= 0 && len(recent) < dashboardRecentActivity; i-- {
		recent = append(recent, toTransactionResponse(transactions[i]))
	}

	return &dto.DashboardSummaryDTO{
		Period:         string(p),
		Revenue:        cur.revenue,
		RevenueChange:  stats.PercentageChange(cur.revenue, prev.revenue),
		Orders:         cur.orders,
		OrdersChange:   stats.PercentageChange(decimal.NewFromInt(int64(cur.orders)), decimal.NewFromInt(int64(prev.orders))),
		Profit:         cur.profit,
		ProfitChange:   stats.PercentageChange(cur.profit, prev.profit),
		StockAlerts:    uc.lowStock(products),
		RecentActivity: recent,
	}, nil
}

// GetReport construye el reporte exportable del período: métricas con
// variación, ranking de más vendidos y productos con stock bajo.
func (uc *AnalyticsUseCase) GetReport(period string, topLimit int) (*dto.ReportDTO, error) {
	p, err := stats.ParsePeriod(period)
	if err != nil {
		return nil, err
	}
	if topLimit <= 0 {
		topLimit = reportTopProducts
	}
	products, orders, transactions, err := uc.loadAll()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	r := stats.RangeFor(p, now)
	index := productIndex(products)
	cur := metricsFor(r, orders, transactions, index)
	prev := metricsFor(stats.PreviousRangeFor(p, now), orders, transactions, index)

	return &dto.ReportDTO{
		Period:           string(p),
		DateRange:        dto.DateRangeDTO{Start: r.Start, End: r.End},
		Revenue:          cur.revenue,
		RevenueChange:    stats.PercentageChange(cur.revenue, prev.revenue),
		Orders:           cur.orders,
		OrdersChange:     stats.PercentageChange(decimal.NewFromInt(int64(cur.orders)), decimal.NewFromInt(int64(prev.orders))),
		Profit:           cur.profit,
		ProfitChange:     stats.PercentageChange(cur.profit, prev.profit),
		TopProducts:      topSelling(orders, index, topLimit),
		LowStockProducts: uc.lowStock(products),
		ExportDate:       now,
	}, nil
}

// GetReportPDF genera la versión imprimible del reporte del período.
func (uc *AnalyticsUseCase) GetReportPDF(period string) ([]byte, error) {
	report, err := uc.GetReport(period, reportTopProducts)
	if err != nil {
		return nil, err
	}
	pdf, err := uc.pdfGenerator.GenerateReportPDF(report, uc.shopName)
	if err != nil {
		return nil, fmt.Errorf("report pdf: %w", err)
	}
	return pdf, nil
}

// TopSellingProducts expone el ranking sin pasar por el reporte completo.
func (uc *AnalyticsUseCase) TopSellingProducts(limit int) ([]dto.TopProductDTO, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	orders, err := uc.orderRepo.List()
	if err != nil {
		return nil, err
	}
	return topSelling(orders, productIndex(products), limit), nil
}

// ── agregación interna ────────────────────────────────────────────────────────

type periodMetrics struct {
	revenue decimal.Decimal
	profit  decimal.Decimal
	orders  int
}

// metricsFor reduce las colecciones a las tres métricas de un rango.
// El ingreso sale del libro mayor (asientos "sale" dentro del rango); la
// ganancia sale de las órdenes usando el costo ACTUAL de cada producto, y las
// líneas de productos ya eliminados no aportan ganancia.
func metricsFor(
	r stats.Range,
	orders []*entity.Order,
	transactions []*entity.Transaction,
	products map[string]*entity.Product,
) periodMetrics {
	m := periodMetrics{revenue: decimal.Zero, profit: decimal.Zero}
	for _, t := range transactions {
		if t.Type == entity.TransactionSale && r.Contains(t.CreatedAt) {
			m.revenue = m.revenue.Add(t.Amount)
		}
	}
	for _, o := range orders {
		if !r.Contains(o.CreatedAt) {
			continue
		}
		m.orders++
		for _, item := range o.Items {
			product, ok := products[item.ProductID]
			if !ok {
				continue
			}
			margin := item.Price.Sub(product.Cost).Mul(decimal.NewFromInt(int64(item.Quantity)))
			m.profit = m.profit.Add(margin)
		}
	}
	return m
}

// topSelling agrega cantidad e ingreso por producto sobre TODAS las órdenes
// (sin filtro de fecha), ordena por cantidad descendente, trunca a limit y
// recién entonces une contra el catálogo actual. Los productos eliminados se
// descartan DESPUÉS del truncado: ocupan su lugar en el ranking, así que el
// resultado puede quedar más corto que limit.
func topSelling(orders []*entity.Order, products map[string]*entity.Product, limit int) []dto.TopProductDTO {
	type sales struct {
		quantity int
		revenue  decimal.Decimal
	}
	perProduct := make(map[string]*sales)
	var seen []string // orden de primera aparición, para un ranking estable
	for _, o := range orders {
		for _, item := range o.Items {
			s, ok := perProduct[item.ProductID]
			if !ok {
				s = &sales{revenue: decimal.Zero}
				perProduct[item.ProductID] = s
				seen = append(seen, item.ProductID)
			}
			s.quantity += item.Quantity
			s.revenue = s.revenue.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}
	}

	sort.SliceStable(seen, func(i, j int) bool {
		return perProduct[seen[i]].quantity > perProduct[seen[j]].quantity
	})
	if limit < len(seen) {
		seen = seen[:limit]
	}

	top := make([]dto.TopProductDTO, 0, len(seen))
	for _, id := range seen {
		product, ok := products[id]
		if !ok {
			continue
		}
		s := perProduct[id]
		top = append(top, dto.TopProductDTO{
			ProductResponse: toProductResponse(product),
			SoldQuantity:    s.quantity,
			Revenue:         s.revenue,
		})
	}
	return top
}

func (uc *AnalyticsUseCase) lowStock(products []*entity.Product) []dto.ProductResponse {
	alerts := make([]dto.ProductResponse, 0)
	for _, p := range products {
		if p.Stock <= uc.lowStockLimit {
			alerts = append(alerts, toProductResponse(p))
		}
	}
	return alerts
}

func (uc *AnalyticsUseCase) loadAll() ([]*entity.Product, []*entity.Order, []*entity.Transaction, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("analytics: productos: %w", err)
	}
	orders, err := uc.orderRepo.List()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("analytics: órdenes: %w", err)
	}
	transactions, err := uc.transactionRepo.List()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("analytics: transacciones: %w", err)
	}
	return products, orders, transactions, nil
}

func productIndex(products []*entity.Product) map[string]*entity.Product {
	index := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		index[p.ID] = p
	}
	return index
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		SKU:       p.SKU,
		Category:  p.Category,
		Price:     p.Price,
		Cost:      p.Cost,
		Stock:     p.Stock,
		Size:      p.Size,
		Image:     p.Image,
		Barcode:   p.Barcode,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toTransactionResponse(t *entity.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:          t.ID,
		Type:        t.Type,
		Amount:      t.Amount,
		Description: t.Description,
		OrderID:     t.OrderID,
		CreatedAt:   t.CreatedAt,
	}
}
