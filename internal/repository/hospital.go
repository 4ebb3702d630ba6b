package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/snaktox/internal/models"
	"github.com/shenikar/snaktox/internal/service"
	"github.com/shenikar/snaktox/pkg/e"
)

const hospitalColumns = `
	id,
	name,
	ST_X(location::geometry) AS longitude,
	ST_Y(location::geometry) AS latitude,
	address,
	country,
	verified_status,
	phone,
	emergency_phone,
	email,
	website,
	antivenom_polyvalent,
	antivenom_monovalent,
	stock_updated_at,
	specialties,
	emergency_services,
	is_active,
	created_at,
	updated_at`

type HospitalRepository struct {
	db *pgxpool.Pool
}

func NewHospitalRepository(db *pgxpool.Pool) service.HospitalRepository {
	return &HospitalRepository{db: db}
}

// FindNearby возвращает подходящие для вызова больницы в радиусе от точки, ближайшие первыми.
// Расстояние считается на сфере (use_spheroid = false), как и гаверсинус в сервисе.
func (r *HospitalRepository) FindNearby(ctx context.Context, origin models.Coordinate, maxDistanceMeters float64, limit int) ([]*models.Hospital, error) {
	query := `
		SELECT ` + hospitalColumns + `
		FROM hospitals
		WHERE
			is_active = TRUE
			AND verified_status = 'VERIFIED'
			AND (antivenom_polyvalent > 0 OR antivenom_monovalent > 0)
			AND ST_DWithin(
				location,
				ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography,
				$3,
				false
			)
		ORDER BY
			ST_Distance(location, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography, false),
			id
		LIMIT $4;
	`
	rows, err := r.db.Query(ctx, query, origin.Longitude, origin.Latitude, maxDistanceMeters, limit)
	if err != nil {
		return nil, e.WrapError("repository.hospital.FindNearby", err)
	}
	defer rows.Close()

	hospitals := make([]*models.Hospital, 0)
	for rows.Next() {
		h, err := scanHospital(rows)
		if err != nil {
			return nil, e.WrapError("repository.hospital.FindNearby scan", err)
		}
		hospitals = append(hospitals, h)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError("repository.hospital.FindNearby rows", err)
	}
	return hospitals, nil
}

// GetByID возвращает больницу по UUID
func (r *HospitalRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Hospital, error) {
	query := `SELECT ` + hospitalColumns + ` FROM hospitals WHERE id = $1;`
	h, err := scanHospital(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, e.WrapError("repository.hospital.GetByID", err)
	}
	return h, nil
}

func scanHospital(row pgx.Row) (*models.Hospital, error) {
	h := &models.Hospital{}
	err := row.Scan(
		&h.ID,
		&h.Name,
		&h.Location.Coordinates.Longitude,
		&h.Location.Coordinates.Latitude,
		&h.Location.Address,
		&h.Location.Country,
		&h.VerifiedStatus,
		&h.ContactInfo.Phone,
		&h.ContactInfo.Emergency,
		&h.ContactInfo.Email,
		&h.ContactInfo.Website,
		&h.AntivenomStock.Polyvalent,
		&h.AntivenomStock.Monovalent,
		&h.AntivenomStock.LastUpdated,
		&h.Specialties,
		&h.EmergencyServices,
		&h.IsActive,
		&h.CreatedAt,
		&h.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return h, nil
}
