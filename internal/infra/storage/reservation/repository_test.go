package reservation

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CleanHome-BookingService/internal/domain"
	"github.com/m04kA/CleanHome-BookingService/pkg/dbmetrics"
	"github.com/m04kA/CleanHome-BookingService/pkg/ptr"
	"github.com/m04kA/CleanHome-BookingService/pkg/txmanager"
)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func newReservation() *domain.Reservation {
	return &domain.Reservation{
		ClientName:      "Anna Muster",
		ClientEmail:     "anna@example.ch",
		ClientPhone:     "0791234567",
		Address:         "Rue du Lac 1",
		City:            "Lausanne",
		Postcode:        "1003",
		Coordinates:     &[2]float64{6.63, 46.52},
		ServiceType:     "Nettoyage de canapé, Nettoyage de matelas",
		ScheduledDate:   time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC),
		ScheduledTime:   domain.MorningClockTime,
		ScheduledPeriod: ptr.Ptr(domain.PeriodMorning),
		DurationMinutes: 180,
		EstimatedPrice:  275,
		Status:          domain.StatusPending,
		PaymentStatus:   domain.PaymentPending,
	}
}

func TestCreate(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO reservations")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(42), now, now))

	res, err := repo.Create(context.Background(), newReservation())
	require.NoError(t, err)
	assert.Equal(t, int64(42), res.ID)
	assert.Equal(t, now, res.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_UniqueViolationIsSlotTaken(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO reservations")).
		WillReturnError(&pq.Error{Code: uniqueViolation, Constraint: slotIndex})

	_, err := repo.Create(context.Background(), newReservation())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestCreate_OtherErrors(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO reservations")).
		WillReturnError(&pq.Error{Code: "23502"})

	_, err := repo.Create(context.Background(), newReservation())
	assert.ErrorIs(t, err, ErrExecQuery)
}

func TestCreate_KeepsDriverError(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO reservations")).
		WillReturnError(&pq.Error{Code: "40001"})

	_, err := repo.Create(context.Background(), newReservation())
	assert.ErrorIs(t, err, ErrExecQuery)

	var pqErr *pq.Error
	require.ErrorAs(t, err, &pqErr)
	assert.Equal(t, "40001", string(pqErr.Code))
}

func TestCreate_SerializableRetryAfterConflict(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	wrapped := dbmetrics.Wrap(db, nil)
	repo := NewRepository(wrapped)
	mgr := txmanager.NewTransactionManager(wrapped)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO reservations")).
		WillReturnError(&pq.Error{Code: "40001"})
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO reservations")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(7), now, now))
	mock.ExpectCommit()

	attempts := 0
	var created *domain.Reservation
	err = mgr.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		res, err := repo.Create(ctx, newReservation())
		if err != nil {
			return err
		}
		created = res
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
	require.NotNil(t, created)
	assert.Equal(t, int64(7), created.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func reservationRow(id int64, period any, scheduledTime string, status domain.ReservationStatus) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(columns).AddRow(
		id,
		"Anna Muster",
		"anna@example.ch",
		"0791234567",
		"Rue du Lac 1",
		"Lausanne",
		"1003",
		[]byte(`[6.63,46.52]`),
		"Nettoyage de canapé",
		[]byte(`{"services":[{"serviceId":"sofa","serviceName":"Nettoyage de canapé","formData":{"seats":"3"},"price":140}]}`),
		time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC),
		scheduledTime,
		period,
		180,
		140.0,
		string(status),
		"pending",
		nil,
		nil,
		now,
		now,
	)
}

func TestGetByID(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, client_name")).
		WithArgs(int64(7)).
		WillReturnRows(reservationRow(7, "afternoon", "14:00", domain.StatusConfirmed))

	res, err := repo.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, res.Status)
	require.NotNil(t, res.ScheduledPeriod)
	assert.Equal(t, domain.PeriodAfternoon, *res.ScheduledPeriod)
	require.NotNil(t, res.Coordinates)
	assert.Equal(t, 6.63, res.Coordinates[0])
	require.Len(t, res.ServiceDetails.Services, 1)
	assert.Equal(t, "sofa", res.ServiceDetails.Services[0].ServiceID)
	assert.Nil(t, res.Notes)
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, client_name")).
		WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestListActiveBySlot_NormalizesLegacyRows(t *testing.T) {
	repo, mock := newRepo(t)
	date := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "scheduled_date", "scheduled_time", "scheduled_period", "status"}).
		AddRow(int64(1), date, "09:00", "morning", "pending").
		AddRow(int64(2), date, "14:00:00", nil, "confirmed").
		AddRow(int64(3), date, "9h00", nil, "pending").
		AddRow(int64(4), date, "après-midi", nil, "pending")

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, scheduled_date, scheduled_time, scheduled_period, status FROM reservations")).
		WithArgs("2025-03-05", "2025-03-05", "cancelled").
		WillReturnRows(rows)

	morning, err := repo.ListActiveBySlot(context.Background(), date, domain.PeriodMorning)
	require.NoError(t, err)
	require.Len(t, morning, 2)
	assert.Equal(t, int64(1), morning[0].ID)
	assert.Equal(t, int64(3), morning[1].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE reservations SET updated_at = NOW(), status = $1, internal_notes = $2 WHERE id = $3")).
		WithArgs("confirmed", "client prévenu", int64(7)).
		WillReturnRows(reservationRow(7, "morning", "09:00", domain.StatusConfirmed))

	res, err := repo.Update(context.Background(), 7, domain.ReservationUpdate{
		Status:        ptr.Ptr(domain.StatusConfirmed),
		InternalNotes: ptr.Ptr("client prévenu"),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, res.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM reservations WHERE id = $1")).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM reservations WHERE id = $1")).
		WithArgs(int64(8)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), 7))
	assert.ErrorIs(t, repo.Delete(context.Background(), 8), ErrReservationNotFound)
}
