package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/CleanHome-BookingService/internal/domain"
)

const keyPrefix = "cart:"

// Repository хранение корзины в Redis, один ключ на сессию
type Repository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRepository создает новый экземпляр репозитория корзин
func NewRepository(client *redis.Client, ttl time.Duration) *Repository {
	return &Repository{client: client, ttl: ttl}
}

// Get загружает корзину сессии; итог пересчитывается при загрузке
func (r *Repository) Get(ctx context.Context, sessionID string) (*domain.Cart, error) {
	data, err := r.client.Get(ctx, key(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCartNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - %w", ErrStorage, err)
	}

	var snapshot domain.CartSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("%w: session=%s: %w", ErrDecode, sessionID, err)
	}

	return domain.CartFromSnapshot(snapshot), nil
}

// Save сериализует корзину целиком. Пустая корзина не хранится.
func (r *Repository) Save(ctx context.Context, cart *domain.Cart) error {
	if cart.IsEmpty() && !cart.HasAddress() && !cart.HasContactInfo() {
		return r.Delete(ctx, cart.SessionID)
	}

	data, err := json.Marshal(cart.Snapshot())
	if err != nil {
		return fmt.Errorf("%w: Save - encode: %w", ErrStorage, err)
	}

	if err := r.client.Set(ctx, key(cart.SessionID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Save - %w", ErrStorage, err)
	}

	return nil
}

// Delete удаляет корзину сессии
func (r *Repository) Delete(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, key(sessionID)).Err(); err != nil {
		return fmt.Errorf("%w: Delete - %w", ErrStorage, err)
	}
	return nil
}

func key(sessionID string) string {
	return keyPrefix + sessionID
}
