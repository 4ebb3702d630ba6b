package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/snaktox/internal/models"
	"github.com/shenikar/snaktox/internal/webhook"
	"github.com/shenikar/snaktox/pkg/e"
	"github.com/sirupsen/logrus"
)

// DispatchConfig - радиус и лимит подбора больниц при создании вызова
type DispatchConfig struct {
	RadiusMeters float64
	Limit        int
}

type emergencyService struct {
	repo       EmergencyRepository
	species    SpeciesRepository
	hospitals  HospitalRepository
	locator    HospitalFinder
	dispatcher Notifier
	publisher  webhook.Publisher
	logger     *logrus.Logger
	dispatch   DispatchConfig
	now        func() time.Time
}

func NewEmergencyService(
	repo EmergencyRepository,
	species SpeciesRepository,
	hospitals HospitalRepository,
	locator HospitalFinder,
	dispatcher Notifier,
	publisher webhook.Publisher,
	logger *logrus.Logger,
	dispatch DispatchConfig,
) EmergencyService {
	if dispatch.RadiusMeters <= 0 {
		dispatch.RadiusMeters = DefaultDispatchRadiusMeters
	}
	if dispatch.Limit <= 0 {
		dispatch.Limit = DefaultDispatchLimit
	}
	return &emergencyService{
		repo:       repo,
		species:    species,
		hospitals:  hospitals,
		locator:    locator,
		dispatcher: dispatcher,
		publisher:  publisher,
		logger:     logger,
		dispatch:   dispatch,
		now:        time.Now,
	}
}

// CreateEmergency сохраняет вызов и оповещает ближайшие больницы.
// Ошибка возвращается только если вызов не удалось сохранить; сбои подбора
// больниц и рассылки деградируют до "0 больниц оповещено".
func (s *emergencyService) CreateEmergency(ctx context.Context, input models.EmergencyInput, reporterID uuid.UUID) (*models.CreatedEmergency, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "emergency",
		"method":      "CreateEmergency",
		"reporter_id": reporterID,
	})

	if err := validateEmergencyInput(input, reporterID); err != nil {
		log.WithError(err).Warn("Rejected emergency report")
		return nil, err
	}

	species, err := s.species.GetByID(ctx, input.SnakeSpeciesID)
	if err != nil {
		log.WithError(err).WithField("species_id", input.SnakeSpeciesID).Warn("Failed to resolve snake species")
		return nil, fmt.Errorf("service: could not resolve snake species: %w", err)
	}
	summary := species.Summary()

	emergency := &models.Emergency{
		Location:          *input.Location,
		SnakeSpeciesID:    species.ID,
		Species:           &summary,
		VictimInfo:        input.VictimInfo,
		Images:            input.Images,
		Status:            models.StatusPending,
		ReportedBy:        reporterID,
		AssignedHospitals: []models.HospitalAssignment{},
		SMSAlerts:         []models.AlertOutcome{},
	}
	if err := s.repo.Create(ctx, emergency); err != nil {
		log.WithError(err).Error("Failed to create emergency in repository")
		return nil, fmt.Errorf("service: could not create emergency: %w", err)
	}
	log = log.WithField("emergency_id", emergency.ID)
	log.Info("Emergency report persisted")

	// Вызов сохранен; оповещение больниц не зависит от обрыва соединения клиента
	dispatchCtx := context.WithoutCancel(ctx)
	result := s.notifyHospitals(dispatchCtx, emergency, species, log)

	response := models.EmergencyResponse{
		HospitalsNotified: 0,
		SMSAlerts:         models.AlertSummary{},
		SMSServiceStatus:  s.dispatcher.ChannelStatus(),
	}
	if result != nil {
		emergency.AssignedHospitals = append(emergency.AssignedHospitals, result.Assignments...)
		emergency.SMSAlerts = append(emergency.SMSAlerts, result.Alerts...)
		response.HospitalsNotified = len(result.Assignments)
		response.SMSAlerts = result.Summary
		response.SMSServiceStatus = result.ChannelStatus
	}

	s.publishEvent(dispatchCtx, emergency, response, log)

	log.WithFields(logrus.Fields{
		"hospitals_notified": response.HospitalsNotified,
		"sms_successful":     response.SMSAlerts.Successful,
	}).Info("Emergency created successfully")

	return &models.CreatedEmergency{Emergency: emergency, Response: response}, nil
}

// notifyHospitals - best-effort фаза после сохранения; nil означает, что никого не оповестили
func (s *emergencyService) notifyHospitals(ctx context.Context, emergency *models.Emergency, species *models.Species, log *logrus.Entry) *models.DispatchResult {
	nearby, err := s.locator.FindNearby(ctx, emergency.Location.Coordinates, s.dispatch.RadiusMeters, s.dispatch.Limit)
	if err != nil {
		log.WithError(err).Error("Hospital lookup failed, emergency kept without assignments")
		return nil
	}
	if len(nearby) == 0 {
		log.Warn("No eligible hospitals within dispatch radius")
		return nil
	}

	hospitals := make([]*models.Hospital, len(nearby))
	for i, n := range nearby {
		hospitals[i] = n.Hospital
	}

	result, err := s.dispatcher.Notify(ctx, hospitals, models.IncidentSummary{
		EmergencyID: emergency.ID,
		SpeciesName: species.CommonName,
		VenomType:   species.VenomType,
		RiskLevel:   species.RiskLevel,
		Address:     emergency.Location.Address,
		Victim:      emergency.VictimInfo,
	})
	if err != nil {
		log.WithError(err).Error("Alert dispatch failed, emergency kept without assignments")
		return nil
	}

	// SMS уже ушли, поэтому при сбое записи сводка остается правдивой
	if err := s.repo.AppendDispatch(ctx, emergency.ID, result.Assignments, result.Alerts); err != nil {
		log.WithError(err).Error("Failed to record hospital assignments and alert outcomes")
	}
	return result
}

func (s *emergencyService) publishEvent(ctx context.Context, emergency *models.Emergency, response models.EmergencyResponse, log *logrus.Entry) {
	event := webhook.EmergencyEvent{
		EmergencyID:       emergency.ID,
		ReportedBy:        emergency.ReportedBy,
		Latitude:          emergency.Location.Coordinates.Latitude,
		Longitude:         emergency.Location.Coordinates.Longitude,
		Address:           emergency.Location.Address,
		HospitalsNotified: response.HospitalsNotified,
		SMSAlerts:         response.SMSAlerts,
		Timestamp:         s.now().UTC(),
	}
	if emergency.Species != nil {
		event.Species = emergency.Species.CommonName
		event.VenomType = emergency.Species.VenomType
		event.RiskLevel = emergency.Species.RiskLevel
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish emergency event")
	}
}

func validateEmergencyInput(input models.EmergencyInput, reporterID uuid.UUID) error {
	if input.Location == nil {
		return e.Invalid("location coordinates are required")
	}
	if !input.Location.Coordinates.Valid() {
		return e.Invalid("coordinates must be [longitude, latitude] within range")
	}
	if input.SnakeSpeciesID == uuid.Nil {
		return e.Invalid("snake species reference is required")
	}
	if reporterID == uuid.Nil {
		return e.Invalid("reporter is required")
	}
	if age := input.VictimInfo.Age; age != nil && (*age < 0 || *age > 120) {
		return e.Invalid("victim age must be between 0 and 120")
	}
	return nil
}

// GetEmergency получает вызов по ID; доступ есть у автора и модераторов
func (s *emergencyService) GetEmergency(ctx context.Context, id uuid.UUID, principal models.Principal) (*models.Emergency, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "emergency",
		"method":       "GetEmergency",
		"emergency_id": id,
	})

	emergency, err := s.repo.GetEmergencyFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get emergency from cache")
	}
	if emergency == nil {
		emergency, err = s.repo.GetByID(ctx, id)
		if err != nil {
			log.WithError(err).Error("Failed to get emergency in repository")
			return nil, fmt.Errorf("service: could not get emergency: %w", err)
		}
		if err := s.repo.SetEmergencyCache(ctx, emergency); err != nil {
			log.WithError(err).Warn("Failed to set emergency cache")
		}
	}

	if !canAccess(emergency, principal) {
		log.WithField("user_id", principal.UserID).Warn("Access to emergency denied")
		return nil, fmt.Errorf("service: access to emergency %s denied: %w", id, e.ErrForbidden)
	}
	return emergency, nil
}

// UpdateStatus меняет статус вызова; RESOLVED проставляет время закрытия
func (s *emergencyService) UpdateStatus(ctx context.Context, id uuid.UUID, status models.EmergencyStatus, notes string, principal models.Principal) (*models.Emergency, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "emergency",
		"method":       "UpdateStatus",
		"emergency_id": id,
		"status":       status,
	})

	if !status.Valid() {
		return nil, e.Invalid(fmt.Sprintf("unknown emergency status %q", status))
	}

	emergency, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent emergency")
		return nil, fmt.Errorf("service: could not get emergency for update: %w", err)
	}
	if !canAccess(emergency, principal) {
		return nil, fmt.Errorf("service: access to emergency %s denied: %w", id, e.ErrForbidden)
	}

	var resolvedAt *time.Time
	if status == models.StatusResolved {
		now := s.now().UTC()
		resolvedAt = &now
	}
	if err := s.repo.UpdateStatus(ctx, id, status, notes, resolvedAt); err != nil {
		log.WithError(err).Error("Failed to update emergency status in repository")
		return nil, fmt.Errorf("service: could not update emergency status: %w", err)
	}
	s.invalidate(ctx, id, log)

	emergency.Status = status
	if notes != "" {
		emergency.AdminNotes = notes
	}
	if resolvedAt != nil {
		emergency.ResolvedAt = resolvedAt
	}

	log.Info("Emergency status updated successfully")
	return emergency, nil
}

// AssignHospital вручную назначает больницу; повторное назначение отклоняется
func (s *emergencyService) AssignHospital(ctx context.Context, id, hospitalID uuid.UUID) (*models.Emergency, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "emergency",
		"method":       "AssignHospital",
		"emergency_id": id,
		"hospital_id":  hospitalID,
	})

	emergency, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Emergency not found for assignment")
		return nil, fmt.Errorf("service: could not get emergency: %w", err)
	}
	if _, err := s.hospitals.GetByID(ctx, hospitalID); err != nil {
		log.WithError(err).Warn("Hospital not found for assignment")
		return nil, fmt.Errorf("service: could not get hospital: %w", err)
	}
	if emergency.IsAssigned(hospitalID) {
		return nil, fmt.Errorf("service: hospital is already assigned to this emergency: %w", e.ErrConflict)
	}

	assignment := models.HospitalAssignment{HospitalID: hospitalID, NotifiedAt: s.now().UTC()}
	if err := s.repo.AppendDispatch(ctx, id, []models.HospitalAssignment{assignment}, nil); err != nil {
		log.WithError(err).Error("Failed to assign hospital in repository")
		return nil, fmt.Errorf("service: could not assign hospital: %w", err)
	}
	s.invalidate(ctx, id, log)

	emergency.AssignedHospitals = append(emergency.AssignedHospitals, assignment)
	log.Info("Hospital assigned successfully")
	return emergency, nil
}

func (s *emergencyService) ChannelStatus() models.ChannelStatus {
	return s.dispatcher.ChannelStatus()
}

func (s *emergencyService) invalidate(ctx context.Context, id uuid.UUID, log *logrus.Entry) {
	if err := s.repo.InvalidateEmergencyCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate emergency cache")
	}
}

func canAccess(emergency *models.Emergency, principal models.Principal) bool {
	return emergency.ReportedBy == principal.UserID || principal.CanModerate()
}
