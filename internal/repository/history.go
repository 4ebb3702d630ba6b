package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/snaktox/internal/models"
	"github.com/shenikar/snaktox/internal/service"
)

const (
	historyMaxEntries = 50
	historyTTL        = 30 * 24 * time.Hour
)

// IdentificationHistory - последние идентификации пользователя в Redis-списке, новые в голове
type IdentificationHistory struct {
	redisClient *redis.Client
}

func NewIdentificationHistory(redisClient *redis.Client) service.IdentificationHistory {
	return &IdentificationHistory{redisClient: redisClient}
}

// Push кладет запись в голову списка и обрезает его до historyMaxEntries
func (h *IdentificationHistory) Push(ctx context.Context, record *models.Identification) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal identification: %w", err)
	}

	key := historyKey(record.UserID)
	pipe := h.redisClient.TxPipeline()
	pipe.LPush(ctx, key, payload)
	pipe.LTrim(ctx, key, 0, historyMaxEntries-1)
	pipe.Expire(ctx, key, historyTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store identification history: %w", err)
	}
	return nil
}

// List возвращает до limit последних записей пользователя
func (h *IdentificationHistory) List(ctx context.Context, userID uuid.UUID, limit int) ([]*models.Identification, error) {
	if limit < 1 || limit > historyMaxEntries {
		limit = historyMaxEntries
	}

	raw, err := h.redisClient.LRange(ctx, historyKey(userID), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read identification history: %w", err)
	}

	records := make([]*models.Identification, 0, len(raw))
	for _, item := range raw {
		record := &models.Identification{}
		if err := json.Unmarshal([]byte(item), record); err != nil {
			// битая запись не должна прятать остальную историю
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

func historyKey(userID uuid.UUID) string {
	return fmt.Sprintf("identifications:%s", userID.String())
}
