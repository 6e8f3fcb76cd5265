package usecase

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/petshop-pos/internal/application/dto"
	"github.com/tu-usuario/petshop-pos/internal/domain"
	"github.com/tu-usuario/petshop-pos/internal/domain/entity"
	"github.com/tu-usuario/petshop-pos/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD del catálogo, más búsqueda, filtro por
// categoría y consulta por código de barras.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un nuevo producto. La validación ocurre aquí, en el borde del
// almacén: nombre y categoría obligatorios, montos y stock no negativos.
// SKU vacío se autogenera con el formato AUTO-<timestamp>-<aleatorio>.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrValidation
	}
	if !entity.ValidCategory(in.Category) {
		return nil, domain.ErrValidation
	}
	if in.Price.IsNegative() || in.Cost.IsNegative() || in.Stock < 0 {
		return nil, domain.ErrValidation
	}
	sku := strings.TrimSpace(in.SKU)
	if sku == "" {
		sku = generateSKU()
	}
	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		Name:      in.Name,
		SKU:       sku,
		Category:  in.Category,
		Price:     in.Price,
		Cost:      in.Cost,
		Stock:     in.Stock,
		Size:      in.Size,
		Image:     in.Image,
		Barcode:   in.Barcode,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID. Devuelve nil si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// GetByBarcode obtiene un producto por código de barras exacto. Devuelve nil
// si ningún producto lo tiene registrado.
func (uc *ProductUseCase) GetByBarcode(code string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByBarcode(code)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List devuelve el catálogo aplicando búsqueda y filtro de categoría, ambos
// opcionales y componibles. La búsqueda es substring case-insensitive sobre
// nombre, SKU y código de barras. La categoría acepta las cuatro reales más
// las pseudo-categorías "all", "out-of-stock" y "low-stock" (0 < stock ≤ 5).
func (uc *ProductUseCase) List(search, category string) (*dto.ProductListResponse, error) {
	products, err := uc.repo.List()
	if err != nil {
		return nil, err
	}

	items := make([]dto.ProductResponse, 0, len(products))
	query := strings.ToLower(strings.TrimSpace(search))
	for _, p := range products {
		if !matchCategory(p, category) {
			continue
		}
		if query != "" && !matchSearch(p, query) {
			continue
		}
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

// Update aplica un merge superficial de los campos presentes y re-estampa
// updatedAt. Devuelve nil si el ID no existe.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.ErrValidation
		}
		product.Name = *in.Name
	}
	if in.SKU != nil {
		product.SKU = *in.SKU
	}
	if in.Category != nil {
		if !entity.ValidCategory(*in.Category) {
			return nil, domain.ErrValidation
		}
		product.Category = *in.Category
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrValidation
		}
		product.Price = *in.Price
	}
	if in.Cost != nil {
		if in.Cost.IsNegative() {
			return nil, domain.ErrValidation
		}
		product.Cost = *in.Cost
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.ErrValidation
		}
		product.Stock = *in.Stock
	}
	if in.Size != nil {
		product.Size = *in.Size
	}
	if in.Image != nil {
		product.Image = *in.Image
	}
	if in.Barcode != nil {
		product.Barcode = *in.Barcode
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto por ID. Es no-op si no existe y no hace cascada
// sobre las órdenes: las líneas que lo referencian quedan colgantes por ID.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func matchCategory(p *entity.Product, category string) bool {
	switch category {
	case "", entity.FilterAll:
		return true
	case entity.FilterOutOfStock:
		return p.Stock == 0
	case entity.FilterLowStock:
		return p.Stock > 0 && p.Stock <= entity.LowStockCutoff
	default:
		return p.Category == category
	}
}

func matchSearch(p *entity.Product, query string) bool {
	return strings.Contains(strings.ToLower(p.Name), query) ||
		strings.Contains(strings.ToLower(p.SKU), query) ||
		(p.Barcode != "" && strings.Contains(strings.ToLower(p.Barcode), query))
}

// generateSKU produce un código legible para productos cargados sin SKU.
func generateSKU() string {
	return fmt.Sprintf("AUTO-%d-%d", time.Now().UnixMilli(), rand.Intn(1000))
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
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
