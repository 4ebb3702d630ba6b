package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/snaktox/internal/models"
	"github.com/shenikar/snaktox/pkg/e"
	"github.com/sirupsen/logrus"
)

const (
	ServiceVersion      = "2.0.0"
	DefaultHistoryLimit = 50
)

type identificationService struct {
	matcher *SpeciesMatcher
	history IdentificationHistory
	logger  *logrus.Logger
	now     func() time.Time
}

func NewIdentificationService(matcher *SpeciesMatcher, history IdentificationHistory, logger *logrus.Logger) IdentificationService {
	return &identificationService{
		matcher: matcher,
		history: history,
		logger:  logger,
		now:     time.Now,
	}
}

// Identify выбирает стратегию по входу и сохраняет сводку в историю пользователя
func (s *identificationService) Identify(ctx context.Context, userID uuid.UUID, req models.IdentifyRequest) (*models.Identification, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "identification",
		"method":  "Identify",
		"user_id": userID,
	})

	hasTraits := req.Characteristics != nil && *req.Characteristics != (models.Characteristics{})
	if req.Image != nil && hasTraits {
		return nil, e.Invalid("provide either an image or snake characteristics, not both")
	}
	if req.Image == nil && !hasTraits {
		return nil, e.Invalid("please provide either an image or snake characteristics for identification")
	}

	var (
		matches []models.MatchResult
		method  models.IdentificationMethod
		err     error
	)
	if req.Image != nil {
		method = models.MethodImage
		matches, err = s.matcher.MatchByImage(ctx, *req.Image, req.Region)
	} else {
		method = models.MethodCharacteristics
		matches, err = s.matcher.MatchByCharacteristics(ctx, *req.Characteristics, req.Region)
	}
	if err != nil {
		log.WithError(err).Error("Identification failed")
		return nil, fmt.Errorf("service: could not identify snake: %w", err)
	}

	result := &models.Identification{
		ID:           uuid.NewString(),
		UserID:       userID,
		Method:       method,
		Matches:      matches,
		MatchesCount: len(matches),
		ProcessedAt:  s.now().UTC(),
	}
	if len(matches) > 0 {
		top := matches[0]
		result.TopMatch = &models.TopMatch{
			Snake:      top.Species.CommonName,
			Confidence: int(math.Round(top.Confidence * 100)),
			Certainty:  top.Certainty,
		}
		result.ImageAnalysis = top.ImageAnalysis
	}

	// История - вспомогательная функция, ее сбой не должен ломать идентификацию
	if err := s.history.Push(ctx, result); err != nil {
		log.WithError(err).Warn("Failed to store identification history")
	}

	log.WithFields(logrus.Fields{
		"identification_method": method,
		"matches":               len(matches),
	}).Info("Snake identification completed")
	return result, nil
}

// History возвращает последние идентификации пользователя, новые первыми
func (s *identificationService) History(ctx context.Context, userID uuid.UUID, limit int) ([]*models.Identification, error) {
	if limit < 1 || limit > DefaultHistoryLimit {
		limit = DefaultHistoryLimit
	}
	records, err := s.history.List(ctx, userID, limit)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "identification",
			"method":  "History",
			"user_id": userID,
		}).WithError(err).Error("Failed to load identification history")
		return nil, fmt.Errorf("service: could not load identification history: %w", err)
	}
	return records, nil
}
