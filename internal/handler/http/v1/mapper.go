package v1

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/snaktox/internal/models"
	"github.com/shenikar/snaktox/internal/service"
)

// DTOToEmergencyInput преобразует провалидированный запрос во входные данные сервиса.
// Координаты приходят как [lon, lat]; диапазон широты проверяет сервис.
func DTOToEmergencyInput(dto CreateEmergencyRequest, now time.Time) models.EmergencyInput {
	input := models.EmergencyInput{
		SnakeSpeciesID: uuid.MustParse(dto.SnakeSpecies),
		VictimInfo: models.VictimInfo{
			Age:       dto.VictimInfo.Age,
			Gender:    dto.VictimInfo.Gender,
			Condition: dto.VictimInfo.Condition,
			Symptoms:  dto.VictimInfo.Symptoms,
			BiteTime:  dto.VictimInfo.BiteTime,
		},
	}
	if dto.Location != nil && len(dto.Location.Coordinates) == 2 {
		input.Location = &models.EmergencyLocation{
			Coordinates: models.Coordinate{
				Longitude: dto.Location.Coordinates[0],
				Latitude:  dto.Location.Coordinates[1],
			},
			Address:     strings.TrimSpace(dto.Location.Address),
			Description: dto.Location.Description,
		}
	}
	for _, img := range dto.Images {
		input.Images = append(input.Images, models.EmergencyImage{
			URL:         img.URL,
			Description: img.Description,
			UploadedAt:  now,
		})
	}
	return input
}

func coordinatesToDTO(c models.Coordinate) []float64 {
	return []float64{c.Longitude, c.Latitude}
}

// ModelToEmergencyResponse преобразует доменную модель в DTO для ответа
func ModelToEmergencyResponse(model *models.Emergency) EmergencyResponse {
	resp := EmergencyResponse{
		ID: model.ID,
		Location: LocationResponse{
			Coordinates: coordinatesToDTO(model.Location.Coordinates),
			Address:     model.Location.Address,
			Description: model.Location.Description,
		},
		SnakeSpeciesID:    model.SnakeSpeciesID,
		SnakeSpecies:      model.Species,
		VictimInfo:        model.VictimInfo,
		Images:            model.Images,
		Status:            model.Status,
		ReportedBy:        model.ReportedBy,
		AssignedHospitals: model.AssignedHospitals,
		SMSAlerts:         model.SMSAlerts,
		AdminNotes:        model.AdminNotes,
		ResolvedAt:        model.ResolvedAt,
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
	}
	if resp.AssignedHospitals == nil {
		resp.AssignedHospitals = []models.HospitalAssignment{}
	}
	if resp.SMSAlerts == nil {
		resp.SMSAlerts = []models.AlertOutcome{}
	}
	return resp
}

func ModelToCreateEmergencyResponse(created *models.CreatedEmergency) CreateEmergencyResponse {
	return CreateEmergencyResponse{
		Emergency: ModelToEmergencyResponse(created.Emergency),
		Response:  created.Response,
	}
}

// ModelsToNearbyHospitalResponses сохраняет порядок локатора (по расстоянию)
func ModelsToNearbyHospitalResponses(nearby []models.NearbyHospital) []NearbyHospitalResponse {
	responses := make([]NearbyHospitalResponse, 0, len(nearby))
	for _, n := range nearby {
		h := n.Hospital
		responses = append(responses, NearbyHospitalResponse{
			ID:   h.ID,
			Name: h.Name,
			Location: LocationResponse{
				Coordinates: coordinatesToDTO(h.Location.Coordinates),
				Address:     h.Location.Address,
			},
			ContactInfo:       h.ContactInfo,
			AntivenomStock:    h.AntivenomStock,
			Specialties:       h.Specialties,
			EmergencyServices: h.EmergencyServices,
			DistanceKm:        int(math.Round(n.DistanceMeters / 1000)),
			DistanceMeters:    n.DistanceMeters,
		})
	}
	return responses
}

func ModelToIdentificationResponse(model *models.Identification) IdentificationResponse {
	matches := model.Matches
	if matches == nil {
		matches = []models.MatchResult{}
	}
	return IdentificationResponse{
		IdentificationID: model.ID,
		Matches:          matches,
		MatchesCount:     model.MatchesCount,
		TopMatch:         model.TopMatch,
		Method:           model.Method,
		ImageAnalysis:    model.ImageAnalysis,
		ProcessedAt:      model.ProcessedAt,
		ServiceVersion:   service.ServiceVersion,
	}
}

func ModelsToIdentificationResponses(records []*models.Identification) []IdentificationResponse {
	responses := make([]IdentificationResponse, len(records))
	for i, r := range records {
		responses[i] = ModelToIdentificationResponse(r)
	}
	return responses
}

func DTOToCharacteristics(dto *CharacteristicsRequest) *models.Characteristics {
	if dto == nil {
		return nil
	}
	return &models.Characteristics{
		Color:     strings.TrimSpace(dto.Color),
		Pattern:   strings.TrimSpace(dto.Pattern),
		Length:    strings.TrimSpace(dto.Length),
		HeadShape: strings.TrimSpace(dto.HeadShape),
		Behavior:  strings.TrimSpace(dto.Behavior),
	}
}
