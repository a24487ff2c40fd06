package cartmirror

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/m04kA/CleanHome-BookingService/internal/domain"
	"github.com/m04kA/CleanHome-BookingService/pkg/dbmetrics"
	"github.com/m04kA/CleanHome-BookingService/pkg/psqlbuilder"
)

const (
	cartsTable     = "carts"
	cartItemsTable = "cart_items"

	statusSubmitted = "submitted"
)

// Repository копия отправленной корзины в carts/cart_items.
// Для корректности бронирования не нужна.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// SaveSubmitted сохраняет корзину и ее позиции, привязанные к резервации.
// Вызывать внутри транзакции, чтобы корзина не осталась без позиций.
func (r *Repository) SaveSubmitted(ctx context.Context, cart *domain.Cart, reservationID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(cartsTable).
		Columns("id", "session_id", "total_price", "status", "reservation_id").
		Values(cart.ID, cart.SessionID, cart.TotalPrice, statusSubmitted, reservationID).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SaveSubmitted - build cart insert: %w", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SaveSubmitted - insert cart: %w", ErrExecQuery, err)
	}

	if cart.IsEmpty() {
		return nil
	}

	builder := psqlbuilder.Insert(cartItemsTable).
		Columns("id", "cart_id", "service_id", "service_name", "form_data", "estimated_price", "created_at")
	for _, item := range cart.Items {
		formData, err := json.Marshal(item.FormData)
		if err != nil {
			return fmt.Errorf("%w: SaveSubmitted - item %s: %w", ErrEncode, item.ID, err)
		}
		builder = builder.Values(item.ID, cart.ID, item.Service.ID, item.Service.Name, formData, item.EstimatedPrice, item.Timestamp)
	}

	query, args, err = builder.Suffix("ON CONFLICT (id) DO NOTHING").ToSql()
	if err != nil {
		return fmt.Errorf("%w: SaveSubmitted - build items insert: %w", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SaveSubmitted - insert items: %w", ErrExecQuery, err)
	}

	return nil
}
