package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/CleanHome-BookingService/internal/domain"
	"github.com/m04kA/CleanHome-BookingService/pkg/dbmetrics"
	"github.com/m04kA/CleanHome-BookingService/pkg/psqlbuilder"
)

const table = "admin_schedule"

// Repository репозиторий настроек доступности (admin_schedule).
// Отсутствие строки для (date, period) означает, что слот доступен.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает настройку для слота
func (r *Repository) Get(ctx context.Context, date time.Time, period domain.Period) (*domain.AdminScheduleSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "date", "period", "is_available", "updated_at").
		From(table).
		Where(squirrel.Eq{"date": date.Format(domain.DateFormat), "period": string(period)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %w", ErrBuildQuery, err)
	}

	slot, err := scanSlot(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan slot: %w", ErrScanRow, err)
	}

	return slot, nil
}

// ListRange получает настройки в диапазоне дат (включительно)
func (r *Repository) ListRange(ctx context.Context, from, to time.Time) ([]*domain.AdminScheduleSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "date", "period", "is_available", "updated_at").
		From(table).
		Where(squirrel.GtOrEq{"date": from.Format(domain.DateFormat)}).
		Where(squirrel.LtOrEq{"date": to.Format(domain.DateFormat)}).
		OrderBy("date ASC", "period DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListRange - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRange - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.AdminScheduleSlot, 0)
	for rows.Next() {
		slot, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListRange - scan slot: %w", ErrScanRow, err)
		}
		result = append(result, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListRange - rows iteration: %w", ErrScanRow, err)
	}

	return result, nil
}

// UpsertBatch сохраняет пачку настроек одним запросом, ключ (date, period)
func (r *Repository) UpsertBatch(ctx context.Context, slots []domain.AdminScheduleSlot) error {
	if len(slots) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Insert(table).Columns("date", "period", "is_available")
	for _, slot := range slots {
		builder = builder.Values(slot.Date.Format(domain.DateFormat), string(slot.Period), slot.IsAvailable)
	}

	query, args, err := builder.
		Suffix("ON CONFLICT (date, period) DO UPDATE SET is_available = EXCLUDED.is_available, updated_at = NOW()").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpsertBatch - build insert query: %w", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: UpsertBatch - execute upsert: %w", ErrExecQuery, err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSlot(row rowScanner) (*domain.AdminScheduleSlot, error) {
	var slot domain.AdminScheduleSlot
	var period string
	var updatedAt sql.NullTime

	if err := row.Scan(&slot.ID, &slot.Date, &period, &slot.IsAvailable, &updatedAt); err != nil {
		return nil, err
	}

	p, err := domain.ParsePeriod(period)
	if err != nil {
		return nil, fmt.Errorf("period %q: %w", period, err)
	}
	slot.Period = p
	slot.UpdatedAt = updatedAt.Time

	return &slot, nil
}
