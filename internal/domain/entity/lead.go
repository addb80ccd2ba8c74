package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Fuentes de un lead.
const (
	SourceWebsite       = "Website"
	SourceReferral      = "Referral"
	SourceSocialMedia   = "Social Media"
	SourceEmailCampaign = "Email Campaign"
	SourceColdCall      = "Cold Call"
	SourceTradeShow     = "Trade Show"
	SourceOther         = "Other"
)

// ValidLeadSource indica si la fuente pertenece al enum.
func ValidLeadSource(s string) bool {
	switch s {
	case SourceWebsite, SourceReferral, SourceSocialMedia, SourceEmailCampaign,
		SourceColdCall, SourceTradeShow, SourceOther:
		return true
	}
	return false
}

// Pipeline de estados de un lead. Closed Won es el estado terminal de conversión.
const (
	LeadNew          = "New"
	LeadContacted    = "Contacted"
	LeadQualified    = "Qualified"
	LeadProposalSent = "Proposal Sent"
	LeadNegotiation  = "Negotiation"
	LeadClosedWon    = "Closed Won"
	LeadClosedLost   = "Closed Lost"
	LeadNurturing    = "Nurturing"
)

// ValidLeadStatus indica si el estado pertenece al pipeline.
func ValidLeadStatus(s string) bool {
	switch s {
	case LeadNew, LeadContacted, LeadQualified, LeadProposalSent,
		LeadNegotiation, LeadClosedWon, LeadClosedLost, LeadNurturing:
		return true
	}
	return false
}

// Lead prospecto comercial. ClientID se setea una única vez al convertir;
// un lead con ClientID no nulo está convertido y no puede convertirse de nuevo.
type Lead struct {
	ID               string
	Name             string
	Company          string
	Email            string
	Phone            string
	Source           string
	Status           string
	PotentialValue   decimal.Decimal
	Notes            string
	ClientID         string // vacío hasta la conversión
	AssignedTo       string
	CreatedBy        string
	LastContactDate  *time.Time
	NextFollowUpDate *time.Time
	ConversionDate   *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Converted indica si el lead ya fue convertido a cliente.
func (l *Lead) Converted() bool { return l.ClientID != "" }

// IsHot leads calientes: calificados o en negociación.
func (l *Lead) IsHot() bool {
	return l.Status == LeadQualified || l.Status == LeadNegotiation
}
