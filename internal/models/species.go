package models

import (
	"time"

	"github.com/google/uuid"
)

type VenomType string

const (
	VenomNeurotoxic VenomType = "neurotoxic"
	VenomHemotoxic  VenomType = "hemotoxic"
	VenomCytotoxic  VenomType = "cytotoxic"
	VenomMixed      VenomType = "mixed"
)

type RiskLevel string

const (
	RiskCritical RiskLevel = "CRITICAL"
	RiskHigh     RiskLevel = "HIGH"
	RiskMedium   RiskLevel = "MEDIUM"
	RiskLow      RiskLevel = "LOW"
)

// Severity упорядочивает уровни риска: CRITICAL > HIGH > MEDIUM > LOW. Неизвестный уровень = 0.
func (r RiskLevel) Severity() int {
	switch r {
	case RiskCritical:
		return 4
	case RiskHigh:
		return 3
	case RiskMedium:
		return 2
	case RiskLow:
		return 1
	}
	return 0
}

type Species struct {
	ID               uuid.UUID `json:"id"`
	ScientificName   string    `json:"scientific_name"`
	CommonName       string    `json:"common_name"`
	LocalNames       []string  `json:"local_names,omitempty"`
	VenomType        VenomType `json:"venom_type"`
	Region           string    `json:"region"`
	RiskLevel        RiskLevel `json:"risk_level"`
	Description      string    `json:"description"`
	Habitat          string    `json:"habitat,omitempty"`
	Behavior         string    `json:"behavior,omitempty"`
	FirstAid         []string  `json:"first_aid,omitempty"`
	MedicalTreatment []string  `json:"medical_treatment,omitempty"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// SpeciesSummary - сокращенное представление вида для ответов и событий
type SpeciesSummary struct {
	ID             uuid.UUID `json:"id"`
	ScientificName string    `json:"scientific_name"`
	CommonName     string    `json:"common_name"`
	VenomType      VenomType `json:"venom_type"`
	RiskLevel      RiskLevel `json:"risk_level"`
	Region         string    `json:"region"`
}

func (s *Species) Summary() SpeciesSummary {
	return SpeciesSummary{
		ID:             s.ID,
		ScientificName: s.ScientificName,
		CommonName:     s.CommonName,
		VenomType:      s.VenomType,
		RiskLevel:      s.RiskLevel,
		Region:         s.Region,
	}
}

// SpeciesFilter - фильтр выборки кандидатов для идентификации
type SpeciesFilter struct {
	Region  string
	Color   string
	Pattern string
	Limit   int
}
