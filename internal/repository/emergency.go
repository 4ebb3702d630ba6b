package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/snaktox/internal/models"
	"github.com/shenikar/snaktox/internal/service"
	"github.com/shenikar/snaktox/pkg/e"
)

type EmergencyRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewEmergencyRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.EmergencyRepository {
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &EmergencyRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// Create сохраняет новый экстренный вызов и проставляет id и временные метки
func (r *EmergencyRepository) Create(ctx context.Context, emergency *models.Emergency) error {
	query := `
		INSERT INTO emergencies (
			location, address, location_description, snake_species_id,
			victim_info, images, status, reported_by, assigned_hospitals, sms_alerts
		)
		VALUES (
			ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography, $3, $4, $5,
			$6::jsonb, $7::jsonb, $8, $9, $10::jsonb, $11::jsonb
		)
		RETURNING id, created_at, updated_at;
	`
	images, err := jsonArray(emergency.Images)
	if err != nil {
		return fmt.Errorf("failed to marshal emergency images: %w", err)
	}
	assignments, err := jsonArray(emergency.AssignedHospitals)
	if err != nil {
		return fmt.Errorf("failed to marshal hospital assignments: %w", err)
	}
	alerts, err := jsonArray(emergency.SMSAlerts)
	if err != nil {
		return fmt.Errorf("failed to marshal sms alerts: %w", err)
	}
	victim, err := json.Marshal(emergency.VictimInfo)
	if err != nil {
		return fmt.Errorf("failed to marshal victim info: %w", err)
	}

	err = r.db.QueryRow(ctx, query,
		emergency.Location.Coordinates.Longitude,
		emergency.Location.Coordinates.Latitude,
		emergency.Location.Address,
		emergency.Location.Description,
		emergency.SnakeSpeciesID,
		victim,
		images,
		emergency.Status,
		emergency.ReportedBy,
		assignments,
		alerts,
	).Scan(&emergency.ID, &emergency.CreatedAt, &emergency.UpdatedAt)
	if err != nil {
		return e.WrapError("repository.emergency.Create", err)
	}
	return nil
}

// GetByID возвращает вызов вместе с краткими данными о виде змеи
func (r *EmergencyRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Emergency, error) {
	query := `
		SELECT
			em.id,
			ST_X(em.location::geometry) AS longitude,
			ST_Y(em.location::geometry) AS latitude,
			em.address,
			em.location_description,
			em.snake_species_id,
			s.scientific_name,
			s.common_name,
			s.venom_type,
			s.risk_level,
			s.region,
			em.victim_info,
			em.images,
			em.status,
			em.reported_by,
			em.assigned_hospitals,
			em.sms_alerts,
			em.admin_notes,
			em.resolution_notes,
			em.resolved_at,
			em.created_at,
			em.updated_at
		FROM emergencies em
		JOIN snake_species s ON s.id = em.snake_species_id
		WHERE em.id = $1;
	`
	emergency := &models.Emergency{Species: &models.SpeciesSummary{}}
	var victim, images, assignments, alerts []byte
	err := r.db.QueryRow(ctx, query, id).Scan(
		&emergency.ID,
		&emergency.Location.Coordinates.Longitude,
		&emergency.Location.Coordinates.Latitude,
		&emergency.Location.Address,
		&emergency.Location.Description,
		&emergency.SnakeSpeciesID,
		&emergency.Species.ScientificName,
		&emergency.Species.CommonName,
		&emergency.Species.VenomType,
		&emergency.Species.RiskLevel,
		&emergency.Species.Region,
		&victim,
		&images,
		&emergency.Status,
		&emergency.ReportedBy,
		&assignments,
		&alerts,
		&emergency.AdminNotes,
		&emergency.ResolutionNotes,
		&emergency.ResolvedAt,
		&emergency.CreatedAt,
		&emergency.UpdatedAt,
	)
	if err != nil {
		return nil, e.WrapError("repository.emergency.GetByID", err)
	}
	emergency.Species.ID = emergency.SnakeSpeciesID

	if err := unmarshalColumns(
		column{victim, &emergency.VictimInfo},
		column{images, &emergency.Images},
		column{assignments, &emergency.AssignedHospitals},
		column{alerts, &emergency.SMSAlerts},
	); err != nil {
		return nil, fmt.Errorf("failed to decode emergency %s: %w", id, err)
	}
	return emergency, nil
}

// AppendDispatch дописывает назначения и исходы оповещений, не затирая уже сохраненные
func (r *EmergencyRepository) AppendDispatch(ctx context.Context, id uuid.UUID, assignments []models.HospitalAssignment, alerts []models.AlertOutcome) error {
	query := `
		UPDATE emergencies SET
			assigned_hospitals = assigned_hospitals || $2::jsonb,
			sms_alerts = sms_alerts || $3::jsonb,
			updated_at = NOW()
		WHERE id = $1;
	`
	assignmentsJSON, err := jsonArray(assignments)
	if err != nil {
		return fmt.Errorf("failed to marshal hospital assignments: %w", err)
	}
	alertsJSON, err := jsonArray(alerts)
	if err != nil {
		return fmt.Errorf("failed to marshal sms alerts: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, query, id, assignmentsJSON, alertsJSON)
	if err != nil {
		return e.WrapError("repository.emergency.AppendDispatch", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("emergency with id %s not found for dispatch update: %w", id, e.ErrNotFound)
	}
	return nil
}

// UpdateStatus меняет статус; пустые notes не затирают заметки администратора
func (r *EmergencyRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.EmergencyStatus, notes string, resolvedAt *time.Time) error {
	query := `
		UPDATE emergencies SET
			status = $2,
			admin_notes = CASE WHEN $3::text = '' THEN admin_notes ELSE $3::text END,
			resolved_at = COALESCE($4, resolved_at),
			updated_at = NOW()
		WHERE id = $1;
	`
	cmdTag, err := r.db.Exec(ctx, query, id, status, notes, resolvedAt)
	if err != nil {
		return e.WrapError("repository.emergency.UpdateStatus", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("emergency with id %s not found for update: %w", id, e.ErrNotFound)
	}
	return nil
}

// GetEmergencyFromCache пытается получить вызов из Redis; промах - (nil, nil)
func (r *EmergencyRepository) GetEmergencyFromCache(ctx context.Context, id uuid.UUID) (*models.Emergency, error) {
	val, err := r.redisClient.Get(ctx, emergencyCacheKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get emergency from cache: %w", err)
	}

	emergency := &models.Emergency{}
	if err := json.Unmarshal(val, emergency); err != nil {
		return nil, fmt.Errorf("failed to unmarshal emergency from cache: %w", err)
	}
	return emergency, nil
}

// SetEmergencyCache сохраняет вызов в Redis
func (r *EmergencyRepository) SetEmergencyCache(ctx context.Context, emergency *models.Emergency) error {
	val, err := json.Marshal(emergency)
	if err != nil {
		return fmt.Errorf("failed to marshal emergency for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, emergencyCacheKey(emergency.ID), val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set emergency in cache: %w", err)
	}
	return nil
}

// InvalidateEmergencyCache удаляет вызов из Redis кэша
func (r *EmergencyRepository) InvalidateEmergencyCache(ctx context.Context, id uuid.UUID) error {
	if err := r.redisClient.Del(ctx, emergencyCacheKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate emergency cache: %w", err)
	}
	return nil
}

func emergencyCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("emergency:%s", id.String())
}

// jsonArray кодирует срез в JSON-массив; nil становится [], а не null
func jsonArray[T any](items []T) ([]byte, error) {
	if items == nil {
		items = []T{}
	}
	return json.Marshal(items)
}

type column struct {
	raw  []byte
	dest any
}

func unmarshalColumns(cols ...column) error {
	for _, c := range cols {
		if len(c.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(c.raw, c.dest); err != nil {
			return err
		}
	}
	return nil
}
