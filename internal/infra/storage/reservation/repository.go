package reservation

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/CleanHome-BookingService/internal/domain"
	"github.com/m04kA/CleanHome-BookingService/pkg/dbmetrics"
	"github.com/m04kA/CleanHome-BookingService/pkg/psqlbuilder"
)

const (
	table = "reservations"

	// uniqueViolation код ошибки PostgreSQL для нарушения уникального ограничения
	uniqueViolation = "23505"
	// slotIndex частичный уникальный индекс (scheduled_date, scheduled_period) WHERE status <> 'cancelled'
	slotIndex = "reservations_active_slot_uidx"
)

var columns = []string{
	"id",
	"client_name",
	"client_email",
	"client_phone",
	"address",
	"city",
	"postcode",
	"coordinates",
	"service_type",
	"service_details",
	"scheduled_date",
	"scheduled_time",
	"scheduled_period",
	"duration_minutes",
	"estimated_price",
	"status",
	"payment_status",
	"notes",
	"internal_notes",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с резервациями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория резерваций
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую резервацию.
// Если слот уже занят активной резервацией, уникальный индекс вернет 23505 -> ErrSlotTaken.
// Если в контексте передана активная транзакция, использует её.
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	details, err := json.Marshal(res.ServiceDetails)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - service_details: %w", ErrEncode, err)
	}
	coordinates, err := encodeCoordinates(res.Coordinates)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - coordinates: %w", ErrEncode, err)
	}

	var period *string
	if res.ScheduledPeriod != nil {
		p := string(*res.ScheduledPeriod)
		period = &p
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"client_name",
			"client_email",
			"client_phone",
			"address",
			"city",
			"postcode",
			"coordinates",
			"service_type",
			"service_details",
			"scheduled_date",
			"scheduled_time",
			"scheduled_period",
			"duration_minutes",
			"estimated_price",
			"status",
			"payment_status",
			"notes",
		).
		Values(
			res.ClientName,
			res.ClientEmail,
			res.ClientPhone,
			res.Address,
			res.City,
			res.Postcode,
			coordinates,
			res.ServiceType,
			details,
			res.ScheduledDate.Format(domain.DateFormat),
			res.ScheduledTime,
			period,
			res.DurationMinutes,
			res.EstimatedPrice,
			res.Status,
			res.PaymentStatus,
			res.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&res.ID, &createdAt, &updatedAt)
	if err != nil {
		if isSlotConflict(err) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return res, nil
}

// GetByID получает резервацию по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %w", ErrScanRow, err)
	}

	return res, nil
}

// List получает резервации по фильтру, сначала ближайшие по дате
func (r *Repository) List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From(table).
		OrderBy("scheduled_date DESC", "scheduled_time ASC", "id DESC")

	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.StartDate != nil {
		builder = builder.Where(squirrel.GtOrEq{"scheduled_date": filter.StartDate.Format(domain.DateFormat)})
	}
	if filter.EndDate != nil {
		builder = builder.Where(squirrel.LtOrEq{"scheduled_date": filter.EndDate.Format(domain.DateFormat)})
	}
	if filter.Search != nil && *filter.Search != "" {
		pattern := "%" + *filter.Search + "%"
		builder = builder.Where(squirrel.Or{
			squirrel.ILike{"client_name": pattern},
			squirrel.ILike{"client_email": pattern},
			squirrel.ILike{"client_phone": pattern},
			squirrel.ILike{"city": pattern},
		})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		builder = builder.Offset(filter.Offset)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan reservation: %w", ErrScanRow, err)
		}
		result = append(result, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows iteration: %w", ErrScanRow, err)
	}

	return result, nil
}

// ListActiveBySlot получает активные (не отмененные) резервации на дату и период.
// Строки без scheduled_period (старые данные) нормализуются по scheduled_time.
func (r *Repository) ListActiveBySlot(ctx context.Context, date time.Time, period domain.Period) ([]*domain.Reservation, error) {
	reserved, err := r.ListReserved(ctx, date, date)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Reservation, 0, len(reserved))
	for _, res := range reserved {
		if p, _ := res.Period(); p == period {
			result = append(result, res)
		}
	}
	return result, nil
}

// ListReserved получает активные резервации в диапазоне дат (включительно).
// Заполняются только поля, нужные для вычисления занятых слотов.
func (r *Repository) ListReserved(ctx context.Context, from, to time.Time) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"scheduled_date",
		"scheduled_time",
		"scheduled_period",
		"status",
	).
		From(table).
		Where(squirrel.GtOrEq{"scheduled_date": from.Format(domain.DateFormat)}).
		Where(squirrel.LtOrEq{"scheduled_date": to.Format(domain.DateFormat)}).
		Where(squirrel.NotEq{"status": domain.InactiveStatuses}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListReserved - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListReserved - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.Reservation, 0)
	for rows.Next() {
		var res domain.Reservation
		var period sql.NullString
		if err := rows.Scan(&res.ID, &res.ScheduledDate, &res.ScheduledTime, &period, &res.Status); err != nil {
			return nil, fmt.Errorf("%w: ListReserved - scan row: %w", ErrScanRow, err)
		}
		res.ScheduledPeriod = periodPtr(period)
		result = append(result, &res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListReserved - rows iteration: %w", ErrScanRow, err)
	}

	return result, nil
}

// Update частично обновляет резервацию (статус, оплата, внутренние заметки)
func (r *Repository) Update(ctx context.Context, id int64, upd domain.ReservationUpdate) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Update(table).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	if upd.Status != nil {
		builder = builder.Set("status", *upd.Status)
	}
	if upd.PaymentStatus != nil {
		builder = builder.Set("payment_status", *upd.PaymentStatus)
	}
	if upd.InternalNotes != nil {
		builder = builder.Set("internal_notes", *upd.InternalNotes)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %w", ErrBuildQuery, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		if isSlotConflict(err) {
			// восстановление отмененной резервации на уже занятый слот
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	return res, nil
}

// Delete удаляет резервацию
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %w", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation
	var coordinates, details []byte
	var period sql.NullString
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.ClientName,
		&res.ClientEmail,
		&res.ClientPhone,
		&res.Address,
		&res.City,
		&res.Postcode,
		&coordinates,
		&res.ServiceType,
		&details,
		&res.ScheduledDate,
		&res.ScheduledTime,
		&period,
		&res.DurationMinutes,
		&res.EstimatedPrice,
		&res.Status,
		&res.PaymentStatus,
		&res.Notes,
		&res.InternalNotes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(details) > 0 {
		if err := json.Unmarshal(details, &res.ServiceDetails); err != nil {
			return nil, fmt.Errorf("service_details: %w", err)
		}
	}
	if len(coordinates) > 0 {
		var center [2]float64
		if err := json.Unmarshal(coordinates, &center); err != nil {
			return nil, fmt.Errorf("coordinates: %w", err)
		}
		res.Coordinates = &center
	}
	res.ScheduledPeriod = periodPtr(period)
	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}

func encodeCoordinates(c *[2]float64) ([]byte, error) {
	if c == nil {
		return nil, nil
	}
	return json.Marshal(c)
}

// periodPtr неизвестные значения трактуются как отсутствие канонического периода
func periodPtr(v sql.NullString) *domain.Period {
	if !v.Valid {
		return nil
	}
	p, err := domain.ParsePeriod(v.String)
	if err != nil {
		return nil
	}
	return &p
}

func isSlotConflict(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolation && (pqErr.Constraint == "" || pqErr.Constraint == slotIndex)
	}
	return false
}
