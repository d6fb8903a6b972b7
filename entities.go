package main

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// PurchaseStatus representa os possíveis status de uma compra
const (
	PurchaseStatusActive    = "Active"
	PurchaseStatusCancelled = "Cancelled"
)

// purchaseDateLayout é o formato de data persistido nas compras
const purchaseDateLayout = "2006-01-02"

// Erros do núcleo transacional. O facade HTTP traduz cada um para
// exatamente uma família de status.
var (
	ErrProductNotFound          = errors.New("product not found")
	ErrPurchaseNotFound         = errors.New("purchase not found")
	ErrInsufficientStock        = errors.New("insufficient stock")
	ErrPurchaseAlreadyCancelled = errors.New("purchase already cancelled")
	ErrInvalidQuantity          = errors.New("quantity must be positive")
)

// Product representa um produto do catálogo
type Product struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Price     float64   `json:"price" db:"price"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// StockEntry representa o estoque atual de um produto
type StockEntry struct {
	ProductID int64     `json:"product_id" db:"product_id"`
	Quantity  int       `json:"quantity" db:"quantity"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Purchase representa uma compra registrada no sistema
type Purchase struct {
	ID        int64     `json:"id" db:"id"`
	Date      string    `json:"date" db:"date"`
	Customer  string    `json:"customer" db:"customer"`
	ProductID int64     `json:"product_id" db:"product_id"`
	Quantity  int       `json:"quantity" db:"quantity"`
	Total     float64   `json:"total" db:"total"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// NewPurchase cria uma nova instância de Purchase com status Active.
// O total é congelado no momento da compra e nunca recalculado.
func NewPurchase(customer string, productID int64, quantity int, total float64) *Purchase {
	now := time.Now()
	return &Purchase{
		Date:      now.Format(purchaseDateLayout),
		Customer:  customer,
		ProductID: productID,
		Quantity:  quantity,
		Total:     total,
		Status:    PurchaseStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Cancel transiciona a compra de Active para Cancelled.
// A transição acontece no máximo uma vez por compra.
func (p *Purchase) Cancel() error {
	if p.Status == PurchaseStatusCancelled {
		return ErrPurchaseAlreadyCancelled
	}

	p.Status = PurchaseStatusCancelled
	p.UpdatedAt = time.Now()
	return nil
}

// MovementType representa os tipos de movimentação de estoque
const (
	MovementTypeDecreased = "decreased"
	MovementTypeIncreased = "increased"
)

// StockMovement representa uma movimentação de estoque (trilha de auditoria)
type StockMovement struct {
	ID             string    `json:"id" db:"id"`
	ProductID      int64     `json:"product_id" db:"product_id"`
	PurchaseID     int64     `json:"purchase_id" db:"purchase_id"`
	ChangeQuantity int       `json:"change_quantity" db:"change_quantity"`
	MovementType   string    `json:"movement_type" db:"movement_type"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// NewStockMovement cria uma nova instância de StockMovement
func NewStockMovement(productID, purchaseID int64, changeQuantity int, movementType string) *StockMovement {
	return &StockMovement{
		ID:             uuid.New().String(),
		ProductID:      productID,
		PurchaseID:     purchaseID,
		ChangeQuantity: changeQuantity,
		MovementType:   movementType,
		CreatedAt:      time.Now(),
	}
}
