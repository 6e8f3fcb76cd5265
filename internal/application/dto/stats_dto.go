package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/petshop-pos/internal/domain/stats"
)

// TransactionResponse asiento del libro mayor (actividad reciente).
type TransactionResponse struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	OrderID     string          `json:"orderId,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// TopProductDTO producto del ranking de más vendidos: el registro actual del
// catálogo más la cantidad vendida y el ingreso acumulado en todas las órdenes.
type TopProductDTO struct {
	ProductResponse
	SoldQuantity int             `json:"soldQuantity"`
	Revenue      decimal.Decimal `json:"revenue"`
}

// DateRangeDTO intervalo del reporte en la respuesta.
type DateRangeDTO struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// DashboardSummaryDTO resumen del dashboard para un período: métricas del
// período, variación contra el período anterior, alertas de stock y las
// últimas transacciones.
type DashboardSummaryDTO struct {
	Period         string                `json:"period"`
	Revenue        decimal.Decimal       `json:"revenue"`
	RevenueChange  stats.Change          `json:"revenueChange"`
	Orders         int                   `json:"orders"`
	OrdersChange   stats.Change          `json:"ordersChange"`
	Profit         decimal.Decimal       `json:"profit"`
	ProfitChange   stats.Change          `json:"profitChange"`
	StockAlerts    []ProductResponse     `json:"stockAlerts"`
	RecentActivity []TransactionResponse `json:"recentActivity"`
}

// ReportDTO reporte exportable de un período (JSON y base del PDF).
type ReportDTO struct {
	Period           string            `json:"period"`
	DateRange        DateRangeDTO      `json:"dateRange"`
	Revenue          decimal.Decimal   `json:"revenue"`
	RevenueChange    stats.Change      `json:"revenueChange"`
	Orders           int               `json:"orders"`
	OrdersChange     stats.Change      `json:"ordersChange"`
	Profit           decimal.Decimal   `json:"profit"`
	ProfitChange     stats.Change      `json:"profitChange"`
	TopProducts      []TopProductDTO   `json:"topProducts"`
	LowStockProducts []ProductResponse `json:"lowStockProducts"`
	ExportDate       time.Time         `json:"exportDate"`
}
