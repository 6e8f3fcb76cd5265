package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. SKU vacío se
// autogenera; cost vacío queda en 0.
type CreateProductRequest struct {
	Name     string          `json:"name" validate:"required,min=1,max=200"`
	SKU      string          `json:"sku" validate:"max=100"`
	Category string          `json:"category" validate:"required"`
	Price    decimal.Decimal `json:"price"`
	Cost     decimal.Decimal `json:"cost"`
	Stock    int             `json:"stock"`
	Size     string          `json:"size"`
	Image    string          `json:"image"`
	Barcode  string          `json:"barcode"`
}

// UpdateProductRequest actualización parcial: solo los campos presentes se
// aplican sobre el registro existente (merge superficial).
type UpdateProductRequest struct {
	Name     *string          `json:"name" validate:"omitempty,min=1,max=200"`
	SKU      *string          `json:"sku"`
	Category *string          `json:"category"`
	Price    *decimal.Decimal `json:"price"`
	Cost     *decimal.Decimal `json:"cost"`
	Stock    *int             `json:"stock"`
	Size     *string          `json:"size"`
	Image    *string          `json:"image"`
	Barcode  *string          `json:"barcode"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
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

// ProductListResponse lista de productos ya filtrada.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
