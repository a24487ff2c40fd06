package wizard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/CleanHome-BookingService/internal/domain"
)

const keyPrefix = "wizard:"

// Repository хранение состояния мастера бронирования в Redis
type Repository struct {
	client *redis.Client
	ttl    time.Duration
	loc    *time.Location
}

// NewRepository создает новый экземпляр репозитория; даты слотов читаются в loc
func NewRepository(client *redis.Client, ttl time.Duration, loc *time.Location) *Repository {
	return &Repository{client: client, ttl: ttl, loc: loc}
}

// Get загружает состояние мастера
func (r *Repository) Get(ctx context.Context, sessionID string) (*domain.WizardSession, error) {
	data, err := r.client.Get(ctx, keyPrefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - %w", ErrStorage, err)
	}

	var rec sessionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: session=%s: %w", ErrDecode, sessionID, err)
	}

	session, err := rec.toDomain(r.loc)
	if err != nil {
		return nil, fmt.Errorf("%w: session=%s: %w", ErrDecode, sessionID, err)
	}

	return session, nil
}

// Save сохраняет состояние мастера
func (r *Repository) Save(ctx context.Context, session *domain.WizardSession) error {
	data, err := json.Marshal(toRecord(session))
	if err != nil {
		return fmt.Errorf("%w: Save - encode: %w", ErrStorage, err)
	}

	if err := r.client.Set(ctx, keyPrefix+session.SessionID, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Save - %w", ErrStorage, err)
	}

	return nil
}

// Delete удаляет состояние мастера
func (r *Repository) Delete(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, keyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("%w: Delete - %w", ErrStorage, err)
	}
	return nil
}
