package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest alta de venta. project y client son obligatorios.
type CreateSaleRequest struct {
	ProjectID     string          `json:"project"`
	ClientID      string          `json:"client"`
	Amount        decimal.Decimal `json:"amount"`
	SaleDate      *time.Time      `json:"saleDate"`
	PaymentMethod string          `json:"paymentMethod"`
	Description   string          `json:"description"`
}

// UpdateSaleRequest actualización parcial. Las referencias a project/client
// y el salesperson no son modificables.
type UpdateSaleRequest struct {
	Amount        *decimal.Decimal `json:"amount"`
	SaleDate      *time.Time       `json:"saleDate"`
	PaymentMethod *string          `json:"paymentMethod"`
	Description   *string          `json:"description"`
}

// SaleResponse representación pública de una venta.
type SaleResponse struct {
	ID            string          `json:"id"`
	ProjectID     string          `json:"project"`
	ClientID      string          `json:"client"`
	Amount        decimal.Decimal `json:"amount"`
	SaleDate      time.Time       `json:"saleDate"`
	PaymentMethod string          `json:"paymentMethod"`
	Salesperson   string          `json:"salesperson,omitempty"`
	Description   string          `json:"description,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// SaleStatsResponse agregados de ventas.
type SaleStatsResponse struct {
	Count   int             `json:"count"`
	Total   decimal.Decimal `json:"totalSales"`
	Average decimal.Decimal `json:"avgSale"`
	Min     decimal.Decimal `json:"minSale"`
	Max     decimal.Decimal `json:"maxSale"`
}
