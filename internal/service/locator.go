package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/shenikar/snaktox/internal/geo"
	"github.com/shenikar/snaktox/internal/models"
	"github.com/shenikar/snaktox/pkg/e"
	"github.com/sirupsen/logrus"
)

const (
	DefaultDispatchRadiusMeters = 50000.0
	DefaultDispatchLimit        = 5
	DefaultSearchLimit          = 10
)

// HospitalLocator ищет ближайшие подходящие больницы
type HospitalLocator struct {
	repo     HospitalRepository
	logger   *logrus.Logger
	maxLimit int
}

// NewHospitalLocator создает локатор; maxLimit ограничивает limit ручного поиска
func NewHospitalLocator(repo HospitalRepository, logger *logrus.Logger, maxLimit int) *HospitalLocator {
	if maxLimit < DefaultDispatchLimit {
		maxLimit = DefaultDispatchLimit
	}
	return &HospitalLocator{
		repo:     repo,
		logger:   logger,
		maxLimit: maxLimit,
	}
}

// FindNearby возвращает активные верифицированные больницы с антивеномом в радиусе,
// по возрастанию расстояния, не больше limit. Пустой список - нормальный результат.
func (l *HospitalLocator) FindNearby(ctx context.Context, origin models.Coordinate, maxDistanceMeters float64, limit int) ([]models.NearbyHospital, error) {
	if !origin.Valid() {
		return nil, e.Invalid("origin coordinates out of range")
	}
	if maxDistanceMeters <= 0 {
		maxDistanceMeters = DefaultDispatchRadiusMeters
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	if limit > l.maxLimit {
		limit = l.maxLimit
	}

	log := l.logger.WithFields(logrus.Fields{
		"service":    "hospital_locator",
		"method":     "FindNearby",
		"longitude":  origin.Longitude,
		"latitude":   origin.Latitude,
		"max_meters": maxDistanceMeters,
		"limit":      limit,
	})

	candidates, err := l.repo.FindNearby(ctx, origin, maxDistanceMeters, limit)
	if err != nil {
		log.WithError(err).Error("Failed to query hospitals")
		return nil, fmt.Errorf("service: could not find nearby hospitals: %w", err)
	}

	// Хранилище уже фильтрует, но контракт локатора держим сами
	nearby := make([]models.NearbyHospital, 0, len(candidates))
	for _, h := range candidates {
		if h == nil || !h.Eligible() {
			continue
		}
		d := geo.Between(origin, h.Location.Coordinates)
		if d > maxDistanceMeters {
			continue
		}
		nearby = append(nearby, models.NearbyHospital{Hospital: h, DistanceMeters: d})
	}

	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].DistanceMeters < nearby[j].DistanceMeters
	})
	if len(nearby) > limit {
		nearby = nearby[:limit]
	}

	log.WithField("count", len(nearby)).Debug("Nearby hospitals located")
	return nearby, nil
}
