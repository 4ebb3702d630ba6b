package models

import (
	"time"

	"github.com/google/uuid"
)

type VerifiedStatus string

const (
	VerifiedStatusVerified   VerifiedStatus = "VERIFIED"
	VerifiedStatusPending    VerifiedStatus = "PENDING"
	VerifiedStatusUnverified VerifiedStatus = "UNVERIFIED"
)

type HospitalLocation struct {
	Coordinates Coordinate `json:"coordinates"`
	Address     string     `json:"address,omitempty"`
	Country     string     `json:"country,omitempty"`
}

type ContactInfo struct {
	Phone     string `json:"phone,omitempty"`
	Emergency string `json:"emergency,omitempty"`
	Email     string `json:"email,omitempty"`
	Website   string `json:"website,omitempty"`
}

// AntivenomStock - остатки антивенома по типам, во флаконах
type AntivenomStock struct {
	Polyvalent  int       `json:"polyvalent"`
	Monovalent  int       `json:"monovalent"`
	LastUpdated time.Time `json:"last_updated"`
}

// Available сообщает, есть ли хотя бы один тип антивенома в наличии
func (s AntivenomStock) Available() bool {
	return s.Polyvalent > 0 || s.Monovalent > 0
}

type Hospital struct {
	ID                uuid.UUID        `json:"id"`
	Name              string           `json:"name"`
	Location          HospitalLocation `json:"location"`
	VerifiedStatus    VerifiedStatus   `json:"verified_status"`
	ContactInfo       ContactInfo      `json:"contact_info"`
	AntivenomStock    AntivenomStock   `json:"antivenom_stock"`
	Specialties       []string         `json:"specialties,omitempty"`
	EmergencyServices bool             `json:"emergency_services"`
	IsActive          bool             `json:"is_active"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// Eligible - больница участвует в подборе, только если активна, верифицирована и имеет антивеном
func (h *Hospital) Eligible() bool {
	return h.IsActive && h.VerifiedStatus == VerifiedStatusVerified && h.AntivenomStock.Available()
}

// AlertContact возвращает номер для SMS: экстренный, иначе общий, иначе пустую строку
func (h *Hospital) AlertContact() string {
	if h.ContactInfo.Emergency != "" {
		return h.ContactInfo.Emergency
	}
	return h.ContactInfo.Phone
}

// NearbyHospital - больница с расстоянием до точки поиска
type NearbyHospital struct {
	Hospital       *Hospital `json:"hospital"`
	DistanceMeters float64   `json:"distance_meters"`
}
