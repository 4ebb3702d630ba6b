package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/snaktox/internal/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// HospitalRepository определяет контракт хранилища больниц с геопоиском
type HospitalRepository interface {
	FindNearby(ctx context.Context, origin models.Coordinate, maxDistanceMeters float64, limit int) ([]*models.Hospital, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Hospital, error)
}

// SpeciesRepository определяет контракт хранилища видов змей
type SpeciesRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Species, error)
	FindCandidates(ctx context.Context, filter models.SpeciesFilter) ([]*models.Species, error)
}

// EmergencyRepository определяет контракт для работы с бд экстренных вызовов
type EmergencyRepository interface {
	Create(ctx context.Context, emergency *models.Emergency) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Emergency, error)
	AppendDispatch(ctx context.Context, id uuid.UUID, assignments []models.HospitalAssignment, alerts []models.AlertOutcome) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.EmergencyStatus, notes string, resolvedAt *time.Time) error
	GetEmergencyFromCache(ctx context.Context, id uuid.UUID) (*models.Emergency, error)
	SetEmergencyCache(ctx context.Context, emergency *models.Emergency) error
	InvalidateEmergencyCache(ctx context.Context, id uuid.UUID) error
}

// AlertChannel - канал исходящих сообщений (SMS)
type AlertChannel interface {
	Send(ctx context.Context, to, body string) (models.SendResult, error)
	Status() models.ChannelStatus
}

// IdentificationHistory хранит последние идентификации пользователя
type IdentificationHistory interface {
	Push(ctx context.Context, record *models.Identification) error
	List(ctx context.Context, userID uuid.UUID, limit int) ([]*models.Identification, error)
}

// HospitalFinder - ранжированный поиск ближайших больниц с антивеномом
type HospitalFinder interface {
	FindNearby(ctx context.Context, origin models.Coordinate, maxDistanceMeters float64, limit int) ([]models.NearbyHospital, error)
}

// Notifier рассылает оповещения больницам по одному вызову
type Notifier interface {
	Notify(ctx context.Context, hospitals []*models.Hospital, incident models.IncidentSummary) (*models.DispatchResult, error)
	ChannelStatus() models.ChannelStatus
}

// EmergencyService определяет контракт бизнес-логики экстренных вызовов
type EmergencyService interface {
	CreateEmergency(ctx context.Context, input models.EmergencyInput, reporterID uuid.UUID) (*models.CreatedEmergency, error)
	GetEmergency(ctx context.Context, id uuid.UUID, principal models.Principal) (*models.Emergency, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.EmergencyStatus, notes string, principal models.Principal) (*models.Emergency, error)
	AssignHospital(ctx context.Context, id, hospitalID uuid.UUID) (*models.Emergency, error)
	ChannelStatus() models.ChannelStatus
}

// IdentificationService определяет контракт идентификации змей
type IdentificationService interface {
	Identify(ctx context.Context, userID uuid.UUID, req models.IdentifyRequest) (*models.Identification, error)
	History(ctx context.Context, userID uuid.UUID, limit int) ([]*models.Identification, error)
}
