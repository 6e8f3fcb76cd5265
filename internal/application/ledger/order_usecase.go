package ledger

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/petshop-pos/internal/application/dto"
	"github.com/tu-usuario/petshop-pos/internal/domain"
	"github.com/tu-usuario/petshop-pos/internal/domain/entity"
	"github.com/tu-usuario/petshop-pos/internal/domain/repository"
)

// shortIDLen caracteres del ID usados en la descripción del asiento de venta.
const shortIDLen = 6

// OrderUseCase crea órdenes de venta y expone el historial.
//
// CreateOrder es transaccional: persiste la orden, descuenta el stock de cada
// producto referenciado y agrega exactamente un asiento "sale" en una sola
// transacción del almacén. Un fallo en cualquier paso revierte los tres.
type OrderUseCase struct {
	txRunner  TxRunner
	orderRepo repository.OrderRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(txRunner TxRunner, orderRepo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{txRunner: txRunner, orderRepo: orderRepo}
}

// CreateOrder valida el checkout y ejecuta la secuencia orden → stock →
// asiento dentro de una transacción.
//
// El total llega calculado por el carrito y se persiste tal cual. El descuento
// de stock no verifica piso: el stock puede quedar negativo (sobreventa
// registrada); el pre-chequeo contra el stock visible es responsabilidad del
// carrito. Productos referenciados que ya no existen se saltan sin error.
func (uc *OrderUseCase) CreateOrder(in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidPaymentMethod(in.PaymentMethod) {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity <= 0 || item.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
	}
	if in.Total.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	items := make([]entity.OrderItem, 0, len(in.Items))
	for _, item := range in.Items {
		items = append(items, entity.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}
	order := &entity.Order{
		ID:            uuid.New().String(),
		Items:         items,
		Total:         in.Total,
		PaymentMethod: in.PaymentMethod,
		Status:        entity.OrderStatusCompleted,
		CreatedAt:     now,
	}

	err := uc.txRunner.Run(func(
		products repository.ProductRepository,
		orders repository.OrderRepository,
		transactions repository.TransactionRepository,
	) error {
		if err := orders.Create(order); err != nil {
			return err
		}
		for _, item := range order.Items {
			product, err := products.GetByID(item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				continue
			}
			product.Stock -= item.Quantity
			product.UpdatedAt = now
			if err := products.Update(product); err != nil {
				return err
			}
		}
		sale := &entity.Transaction{
			ID:          uuid.New().String(),
			Type:        entity.TransactionSale,
			Amount:      order.Total,
			Description: fmt.Sprintf("Orden #%s", shortID(order.ID)),
			OrderID:     order.ID,
			CreatedAt:   now,
		}
		return transactions.Create(sale)
	})
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return toOrderResponse(order), nil
}

// GetOrder obtiene una orden por ID. Devuelve nil si no existe.
func (uc *OrderUseCase) GetOrder(id string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	return toOrderResponse(order), nil
}

// ListOrders devuelve el historial, la orden más reciente primero.
func (uc *OrderUseCase) ListOrders() (*dto.OrderListResponse, error) {
	orders, err := uc.orderRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(orders))
	for i := len(orders) - 1; i >= 0; i-- {
		items = append(items, *toOrderResponse(orders[i]))
	}
	return &dto.OrderListResponse{Items: items, Total: len(items)}, nil
}

func shortID(id string) string {
	if len(id) <= shortIDLen {
		return id
	}
	return id[:shortIDLen]
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, dto.OrderItemResponse{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}
	return &dto.OrderResponse{
		ID:            o.ID,
		Items:         items,
		Total:         o.Total,
		PaymentMethod: o.PaymentMethod,
		Status:        o.Status,
		CreatedAt:     o.CreatedAt,
	}
}
