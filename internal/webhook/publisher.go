package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/snaktox/internal/models"
)

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

const (
	webhookQueueKey = "emergency_events"
)

// EmergencyEvent - событие о новом экстренном вызове для внешних диспетчерских систем
type EmergencyEvent struct {
	EmergencyID       uuid.UUID           `json:"emergency_id"`
	ReportedBy        uuid.UUID           `json:"reported_by"`
	Latitude          float64             `json:"latitude"`
	Longitude         float64             `json:"longitude"`
	Address           string              `json:"address,omitempty"`
	Species           string              `json:"species"`
	VenomType         models.VenomType    `json:"venom_type"`
	RiskLevel         models.RiskLevel    `json:"risk_level"`
	HospitalsNotified int                 `json:"hospitals_notified"`
	SMSAlerts         models.AlertSummary `json:"sms_alerts"`
	Timestamp         time.Time           `json:"timestamp"`
}

// Publisher - интерфейс для публикации событий
type Publisher interface {
	Publish(ctx context.Context, event EmergencyEvent) error
}

// RedisPublisher - реализация Publisher, использующая Redis-список как очередь
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish публикует событие в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, event EmergencyEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal emergency event: %w", err)
	}

	// LPUSH кладет событие в голову списка, воркер забирает с хвоста через BRPOP
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish emergency event to Redis: %w", err)
	}
	return nil
}
