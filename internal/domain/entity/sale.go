package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago aceptados.
const (
	PaymentCreditCard   = "Credit Card"
	PaymentBankTransfer = "Bank Transfer"
	PaymentCheck        = "Check"
	PaymentCash         = "Cash"
	PaymentOther        = "Other"
)

// ValidPaymentMethod indica si el método pertenece al enum.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentCreditCard, PaymentBankTransfer, PaymentCheck, PaymentCash, PaymentOther:
		return true
	}
	return false
}

// Sale venta asociada a un proyecto y un cliente (ambos obligatorios).
// Amount es no negativo y se redondea a 2 decimales antes de persistir.
type Sale struct {
	ID            string
	ProjectID     string
	ClientID      string
	Amount        decimal.Decimal
	SaleDate      time.Time
	PaymentMethod string
	Salesperson   string // referencia débil a User
	Description   string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
