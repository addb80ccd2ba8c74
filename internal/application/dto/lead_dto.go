package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateLeadRequest alta de lead.
type CreateLeadRequest struct {
	Name             string          `json:"name"`
	Company          string          `json:"company"`
	Email            string          `json:"email"`
	Phone            string          `json:"phone"`
	Source           string          `json:"source"`
	Status           string          `json:"status"`
	PotentialValue   decimal.Decimal `json:"potentialValue"`
	Notes            string          `json:"notes"`
	AssignedTo       string          `json:"assignedTo"`
	LastContactDate  *time.Time      `json:"lastContactDate"`
	NextFollowUpDate *time.Time      `json:"nextFollowUpDate"`
}

// UpdateLeadRequest actualización parcial. createdBy y client no son
// modificables por esta vía (client solo cambia en la conversión).
type UpdateLeadRequest struct {
	Name             *string          `json:"name"`
	Company          *string          `json:"company"`
	Email            *string          `json:"email"`
	Phone            *string          `json:"phone"`
	Source           *string          `json:"source"`
	Status           *string          `json:"status"`
	PotentialValue   *decimal.Decimal `json:"potentialValue"`
	Notes            *string          `json:"notes"`
	AssignedTo       *string          `json:"assignedTo"`
	LastContactDate  *time.Time       `json:"lastContactDate"`
	NextFollowUpDate *time.Time       `json:"nextFollowUpDate"`
}

// UpdateLeadStatusRequest cambio de estado puntual en el pipeline.
type UpdateLeadStatusRequest struct {
	Status string `json:"status"`
}

// AssignLeadRequest reasignación de lead.
type AssignLeadRequest struct {
	AssignedTo string `json:"assignedTo"`
}

// LeadResponse representación pública de un lead.
type LeadResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Company          string          `json:"company,omitempty"`
	Email            string          `json:"email,omitempty"`
	Phone            string          `json:"phone,omitempty"`
	Source           string          `json:"source"`
	Status           string          `json:"status"`
	PotentialValue   decimal.Decimal `json:"potentialValue"`
	Notes            string          `json:"notes,omitempty"`
	ClientID         string          `json:"client,omitempty"`
	AssignedTo       string          `json:"assignedTo,omitempty"`
	CreatedBy        string          `json:"createdBy"`
	IsHot            bool            `json:"isHot"`
	LastContactDate  *time.Time      `json:"lastContactDate,omitempty"`
	NextFollowUpDate *time.Time      `json:"nextFollowUpDate,omitempty"`
	ConversionDate   *time.Time      `json:"conversionDate,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// ConvertLeadResponse resultado de la conversión: el lead cerrado y el
// cliente recién creado.
type ConvertLeadResponse struct {
	Lead   LeadResponse   `json:"lead"`
	Client ClientResponse `json:"client"`
}

// LeadStatsResponse agregados del pipeline.
type LeadStatsResponse struct {
	Total          int             `json:"totalLeads"`
	Converted      int             `json:"convertedLeads"`
	PotentialValue decimal.Decimal `json:"totalPotentialValue"`
	ByStatus       map[string]int  `json:"byStatus"`
}
