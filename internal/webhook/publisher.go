package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	dispatchQueueKey = "dispatch_events"
)

// EventType - тип события жизненного цикла инцидента
type EventType string

const (
	EventSosCreated        EventType = "sos_created"
	EventAmbulanceAssigned EventType = "ambulance_assigned"
	EventIncidentResolved  EventType = "incident_resolved"
)

// DispatchEvent - структура для данных вебхука о событии диспетчеризации
type DispatchEvent struct {
	Type        EventType `json:"type"`
	IncidentID  uuid.UUID `json:"incident_id"`
	PatientID   string    `json:"patient_id,omitempty"`
	AmbulanceID string    `json:"ambulance_id,omitempty"`
	ETA         string    `json:"eta,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// DispatchPublisher - интерфейс для публикации событий диспетчеризации
type DispatchPublisher interface {
	Publish(ctx context.Context, event DispatchEvent) error
}

// RedisDispatchPublisher - реализация DispatchPublisher, использующая Redis
type RedisDispatchPublisher struct {
	redisClient *redis.Client
}

// NewRedisDispatchPublisher создает новый RedisDispatchPublisher
func NewRedisDispatchPublisher(client *redis.Client) *RedisDispatchPublisher {
	return &RedisDispatchPublisher{
		redisClient: client,
	}
}

// Publish публикует событие диспетчеризации в очередь Redis
func (p *RedisDispatchPublisher) Publish(ctx context.Context, event DispatchEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal dispatch event: %w", err)
	}

	// Используем LPUSH для добавления события в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, dispatchQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish dispatch event to Redis: %w", err)
	}
	return nil
}
