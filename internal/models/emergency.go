package models

import (
	"time"

	"github.com/google/uuid"
)

type EmergencyStatus string

const (
	StatusPending    EmergencyStatus = "PENDING"
	StatusInProgress EmergencyStatus = "IN_PROGRESS"
	StatusResolved   EmergencyStatus = "RESOLVED"
	StatusCancelled  EmergencyStatus = "CANCELLED"
)

func (s EmergencyStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusResolved, StatusCancelled:
		return true
	}
	return false
}

type EmergencyLocation struct {
	Coordinates Coordinate `json:"coordinates"`
	Address     string     `json:"address,omitempty"`
	Description string     `json:"description,omitempty"`
}

type VictimInfo struct {
	Age       *int       `json:"age,omitempty"`
	Gender    string     `json:"gender,omitempty"`
	Condition string     `json:"condition,omitempty"`
	Symptoms  []string   `json:"symptoms,omitempty"`
	BiteTime  *time.Time `json:"bite_time,omitempty"`
}

type EmergencyImage struct {
	URL         string    `json:"url"`
	Description string    `json:"description,omitempty"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

// Emergency - сообщение об укусе змеи
type Emergency struct {
	ID                uuid.UUID            `json:"id"`
	Location          EmergencyLocation    `json:"location"`
	SnakeSpeciesID    uuid.UUID            `json:"snake_species_id"`
	Species           *SpeciesSummary      `json:"snake_species,omitempty"`
	VictimInfo        VictimInfo           `json:"victim_info"`
	Images            []EmergencyImage     `json:"images,omitempty"`
	Status            EmergencyStatus      `json:"status"`
	ReportedBy        uuid.UUID            `json:"reported_by"`
	AssignedHospitals []HospitalAssignment `json:"assigned_hospitals"`
	SMSAlerts         []AlertOutcome       `json:"sms_alerts"`
	AdminNotes        string               `json:"admin_notes,omitempty"`
	ResolutionNotes   string               `json:"resolution_notes,omitempty"`
	ResolvedAt        *time.Time           `json:"resolved_at,omitempty"`
	CreatedAt         time.Time            `json:"created_at"`
	UpdatedAt         time.Time            `json:"updated_at"`
}

// IsAssigned проверяет, назначена ли больница на этот вызов
func (e *Emergency) IsAssigned(hospitalID uuid.UUID) bool {
	for _, a := range e.AssignedHospitals {
		if a.HospitalID == hospitalID {
			return true
		}
	}
	return false
}

// EmergencyInput - входные данные для создания вызова
type EmergencyInput struct {
	Location       *EmergencyLocation
	SnakeSpeciesID uuid.UUID
	VictimInfo     VictimInfo
	Images         []EmergencyImage
}

// EmergencyResponse - сводка по оповещению больниц
type EmergencyResponse struct {
	HospitalsNotified int           `json:"hospitals_notified"`
	SMSAlerts         AlertSummary  `json:"sms_alerts"`
	SMSServiceStatus  ChannelStatus `json:"sms_service_status"`
}

// CreatedEmergency - то, что оркестратор возвращает вызывающему.
// Emergency всегда сохранен; Response описывает best-effort оповещение.
type CreatedEmergency struct {
	Emergency *Emergency        `json:"emergency"`
	Response  EmergencyResponse `json:"response"`
}

type Role string

const (
	RoleUser      Role = "USER"
	RoleModerator Role = "MODERATOR"
	RoleAdmin     Role = "ADMIN"
)

// Principal - аутентифицированный пользователь из справочника пользователей
type Principal struct {
	UserID uuid.UUID
	Role   Role
}

// CanModerate - ADMIN и MODERATOR имеют доступ к чужим вызовам
func (p Principal) CanModerate() bool {
	return p.Role == RoleAdmin || p.Role == RoleModerator
}

// IncidentSummary - данные вызова, которые попадают в текст оповещения
type IncidentSummary struct {
	EmergencyID uuid.UUID
	SpeciesName string
	VenomType   VenomType
	RiskLevel   RiskLevel
	Address     string
	Victim      VictimInfo
}
