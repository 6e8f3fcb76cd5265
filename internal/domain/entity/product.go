package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías de producto de la tienda. Cualquier otro valor es entrada inválida.
const (
	CategoryFood        = "food"
	CategoryAccessories = "accessories"
	CategoryToys        = "toys"
	CategoryClothes     = "clothes"
)

// Pseudo-categorías aceptadas por el filtro del catálogo además de las reales.
const (
	FilterAll        = "all"
	FilterOutOfStock = "out-of-stock"
	FilterLowStock   = "low-stock"
)

// LowStockCutoff límite superior (inclusive) del filtro "low-stock" del catálogo.
const LowStockCutoff = 5

// Product representa un producto del catálogo de la tienda.
// Los tags JSON en camelCase son a la vez el formato persistido y el formato
// del documento de respaldo: el mismo registro viaja sin conversión.
type Product struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	SKU       string          `json:"sku"`
	Category  string          `json:"category"`
	Price     decimal.Decimal `json:"price"`
	Cost      decimal.Decimal `json:"cost"`
	Stock     int             `json:"stock"`
	Size      string          `json:"size,omitempty"`
	Image     string          `json:"image,omitempty"`
	Barcode   string          `json:"barcode,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// ValidCategory indica si s es una de las cuatro categorías reales.
func ValidCategory(s string) bool {
	switch s {
	case CategoryFood, CategoryAccessories, CategoryToys, CategoryClothes:
		return true
	}
	return false
}
