package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/snaktox/internal/models"
)

// LocationRequest DTO места укуса, координаты в порядке GeoJSON
// @Description Место укуса: coordinates = [longitude, latitude]
type LocationRequest struct {
	Coordinates []float64 `json:"coordinates" validate:"required,len=2,dive,gte=-180,lte=180"`
	Address     string    `json:"address,omitempty" validate:"max=500"`
	Description string    `json:"description,omitempty" validate:"max=1000"`
}

// VictimInfoRequest DTO сведений о пострадавшем
// @Description Сведения о пострадавшем
type VictimInfoRequest struct {
	Age       *int       `json:"age,omitempty" validate:"omitempty,gte=0,lte=120"`
	Gender    string     `json:"gender,omitempty" validate:"omitempty,oneof=Male Female Other"`
	Condition string     `json:"condition,omitempty" validate:"max=500"`
	Symptoms  []string   `json:"symptoms,omitempty" validate:"max=20,dive,max=200"`
	BiteTime  *time.Time `json:"bite_time,omitempty"`
}

type ImageRequest struct {
	URL         string `json:"url" validate:"required,url"`
	Description string `json:"description,omitempty" validate:"max=500"`
}

// CreateEmergencyRequest DTO для создания экстренного вызова
// @Description DTO для создания экстренного вызова
type CreateEmergencyRequest struct {
	Location     *LocationRequest  `json:"location" validate:"required"`
	SnakeSpecies string            `json:"snake_species" validate:"required,uuid"`
	VictimInfo   VictimInfoRequest `json:"victim_info"`
	Images       []ImageRequest    `json:"images,omitempty" validate:"max=5,dive"`
}

// UpdateStatusRequest DTO для смены статуса вызова
// @Description DTO для смены статуса вызова
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING IN_PROGRESS RESOLVED CANCELLED"`
	Notes  string `json:"notes,omitempty" validate:"max=1000"`
}

// AssignHospitalRequest DTO для ручного назначения больницы
// @Description DTO для ручного назначения больницы
type AssignHospitalRequest struct {
	HospitalID string `json:"hospital_id" validate:"required,uuid"`
}

// NearestHospitalsQuery - параметры поиска ближайших больниц
type NearestHospitalsQuery struct {
	Latitude    *float64 `form:"lat" validate:"required,latitude"`
	Longitude   *float64 `form:"lng" validate:"required,longitude"`
	MaxDistance float64  `form:"max_distance" validate:"omitempty,gt=0,lte=500000"`
	Limit       int      `form:"limit" validate:"omitempty,gte=1"`
}

// CharacteristicsRequest DTO описания змеи
// @Description Описание змеи со слов пострадавшего
type CharacteristicsRequest struct {
	Color     string `json:"color,omitempty" validate:"max=100"`
	Pattern   string `json:"pattern,omitempty" validate:"max=100"`
	Length    string `json:"length,omitempty" validate:"max=100"`
	HeadShape string `json:"head_shape,omitempty" validate:"max=100"`
	Behavior  string `json:"behavior,omitempty" validate:"max=200"`
}

type RegionRequest struct {
	Region string `json:"region,omitempty" validate:"max=100"`
}

// IdentifyRequest DTO идентификации по описанию (JSON-вариант)
// @Description Идентификация по описанию; изображение передается через multipart
type IdentifyRequest struct {
	Characteristics *CharacteristicsRequest `json:"characteristics"`
	Location        *RegionRequest          `json:"location,omitempty"`
}

// LocationResponse DTO места в ответах
type LocationResponse struct {
	Coordinates []float64 `json:"coordinates"`
	Address     string    `json:"address,omitempty"`
	Description string    `json:"description,omitempty"`
}

// EmergencyResponse DTO экстренного вызова
// @Description DTO экстренного вызова
type EmergencyResponse struct {
	ID                uuid.UUID                   `json:"id"`
	Location          LocationResponse            `json:"location"`
	SnakeSpeciesID    uuid.UUID                   `json:"snake_species_id"`
	SnakeSpecies      *models.SpeciesSummary      `json:"snake_species,omitempty"`
	VictimInfo        models.VictimInfo           `json:"victim_info"`
	Images            []models.EmergencyImage     `json:"images,omitempty"`
	Status            models.EmergencyStatus      `json:"status"`
	ReportedBy        uuid.UUID                   `json:"reported_by"`
	AssignedHospitals []models.HospitalAssignment `json:"assigned_hospitals"`
	SMSAlerts         []models.AlertOutcome       `json:"sms_alerts"`
	AdminNotes        string                      `json:"admin_notes,omitempty"`
	ResolvedAt        *time.Time                  `json:"resolved_at,omitempty"`
	CreatedAt         time.Time                   `json:"created_at"`
	UpdatedAt         time.Time                   `json:"updated_at"`
}

// CreateEmergencyResponse - сохраненный вызов отдельно от итогов оповещения
// @Description Сохраненный вызов и итоги оповещения больниц
type CreateEmergencyResponse struct {
	Emergency EmergencyResponse        `json:"emergency"`
	Response  models.EmergencyResponse `json:"response"`
}

// NearbyHospitalResponse DTO больницы в выдаче поиска
type NearbyHospitalResponse struct {
	ID                uuid.UUID             `json:"id"`
	Name              string                `json:"name"`
	Location          LocationResponse      `json:"location"`
	ContactInfo       models.ContactInfo    `json:"contact_info"`
	AntivenomStock    models.AntivenomStock `json:"antivenom_stock"`
	Specialties       []string              `json:"specialties,omitempty"`
	EmergencyServices bool                  `json:"emergency_services"`
	DistanceKm        int                   `json:"distance_km"`
	DistanceMeters    float64               `json:"distance_meters"`
}

type SearchPoint struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// NearestHospitalsResponse DTO результата поиска больниц
// @Description Ближайшие больницы с антивеномом
type NearestHospitalsResponse struct {
	Hospitals      []NearbyHospitalResponse `json:"hospitals"`
	Count          int                      `json:"count"`
	SearchLocation SearchPoint              `json:"search_location"`
	MaxDistance    float64                  `json:"max_distance"`
}

// IdentificationResponse DTO результата идентификации
// @Description Результат идентификации змеи
type IdentificationResponse struct {
	IdentificationID string                      `json:"identification_id"`
	Matches          []models.MatchResult        `json:"matches"`
	MatchesCount     int                         `json:"matches_count"`
	TopMatch         *models.TopMatch            `json:"top_match"`
	Method           models.IdentificationMethod `json:"method"`
	ImageAnalysis    *models.ImageAnalysis       `json:"image_analysis,omitempty"`
	ProcessedAt      time.Time                   `json:"processed_at"`
	ServiceVersion   string                      `json:"service_version"`
}

type IdentificationHistoryResponse struct {
	TotalIdentifications  int                      `json:"total_identifications"`
	RecentIdentifications []IdentificationResponse `json:"recent_identifications"`
}

// ServiceStatusResponse DTO описания возможностей сервиса идентификации
type ServiceStatusResponse struct {
	IsReady          bool     `json:"is_ready"`
	ServiceType      string   `json:"service_type"`
	Version          string   `json:"version"`
	Capabilities     []string `json:"capabilities"`
	Status           string   `json:"status"`
	SupportedRegions []string `json:"supported_regions"`
}

// SMSStatusResponse DTO состояния SMS-канала
type SMSStatusResponse struct {
	models.ChannelStatus
	Instructions string `json:"instructions"`
}
