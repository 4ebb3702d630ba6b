package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/snaktox/internal/models"
	"github.com/shenikar/snaktox/internal/service"
	"github.com/shenikar/snaktox/pkg/e"
)

const speciesColumns = `
	id,
	scientific_name,
	common_name,
	local_names,
	venom_type,
	region,
	risk_level,
	description,
	habitat,
	behavior,
	first_aid,
	medical_treatment,
	is_active,
	created_at,
	updated_at`

type SpeciesRepository struct {
	db *pgxpool.Pool
}

func NewSpeciesRepository(db *pgxpool.Pool) service.SpeciesRepository {
	return &SpeciesRepository{db: db}
}

// GetByID возвращает вид змеи по UUID
func (r *SpeciesRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Species, error) {
	query := `SELECT ` + speciesColumns + ` FROM snake_species WHERE id = $1;`
	s, err := scanSpecies(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, e.WrapError("repository.species.GetByID", err)
	}
	return s, nil
}

// FindCandidates отбирает активные виды для идентификации в порядке добавления.
// От этого порядка зависит уверенность при поиске по изображению.
func (r *SpeciesRepository) FindCandidates(ctx context.Context, filter models.SpeciesFilter) ([]*models.Species, error) {
	query, args := buildCandidatesQuery(filter)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, e.WrapError("repository.species.FindCandidates", err)
	}
	defer rows.Close()

	species := make([]*models.Species, 0)
	for rows.Next() {
		s, err := scanSpecies(rows)
		if err != nil {
			return nil, e.WrapError("repository.species.FindCandidates scan", err)
		}
		species = append(species, s)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError("repository.species.FindCandidates rows", err)
	}
	return species, nil
}

// buildCandidatesQuery: каждый заданный признак - отдельное условие (AND),
// цвет ищется в описании или общем названии, узор только в описании
func buildCandidatesQuery(filter models.SpeciesFilter) (string, []any) {
	conditions := []string{"is_active = TRUE"}
	args := make([]any, 0, 4)

	addLike := func(columns ...string) {
		placeholder := fmt.Sprintf("$%d", len(args))
		parts := make([]string, len(columns))
		for i, col := range columns {
			parts[i] = fmt.Sprintf(`%s ILIKE %s ESCAPE '\'`, col, placeholder)
		}
		conditions = append(conditions, "("+strings.Join(parts, " OR ")+")")
	}

	if v := strings.TrimSpace(filter.Region); v != "" {
		args = append(args, likePattern(v))
		addLike("region")
	}
	if v := strings.TrimSpace(filter.Color); v != "" {
		args = append(args, likePattern(v))
		addLike("description", "common_name")
	}
	if v := strings.TrimSpace(filter.Pattern); v != "" {
		args = append(args, likePattern(v))
		addLike("description")
	}

	query := `SELECT ` + speciesColumns + `
		FROM snake_species
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY created_at, id`
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	return query + ";", args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern превращает текст пользователя в шаблон подстроки для ILIKE
func likePattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

func scanSpecies(row pgx.Row) (*models.Species, error) {
	s := &models.Species{}
	err := row.Scan(
		&s.ID,
		&s.ScientificName,
		&s.CommonName,
		&s.LocalNames,
		&s.VenomType,
		&s.Region,
		&s.RiskLevel,
		&s.Description,
		&s.Habitat,
		&s.Behavior,
		&s.FirstAid,
		&s.MedicalTreatment,
		&s.IsActive,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}
