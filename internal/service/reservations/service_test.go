package reservations

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CleanHome-BookingService/internal/domain"
	reservationRepo "github.com/m04kA/CleanHome-BookingService/internal/infra/storage/reservation"
	"github.com/m04kA/CleanHome-BookingService/pkg/logger"
	"github.com/m04kA/CleanHome-BookingService/pkg/ptr"
)

type fakeRepo struct {
	items      map[int64]*domain.Reservation
	lastFilter domain.ReservationFilter
	updateErr  error
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	res, ok := f.items[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return res, nil
}

func (f *fakeRepo) List(_ context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	f.lastFilter = filter
	out := make([]*domain.Reservation, 0, len(f.items))
	for _, res := range f.items {
		out = append(out, res)
	}
	return out, nil
}

func (f *fakeRepo) Update(_ context.Context, id int64, upd domain.ReservationUpdate) (*domain.Reservation, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	res, ok := f.items[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	if upd.Status != nil {
		res.Status = *upd.Status
	}
	if upd.PaymentStatus != nil {
		res.PaymentStatus = *upd.PaymentStatus
	}
	if upd.InternalNotes != nil {
		res.InternalNotes = upd.InternalNotes
	}
	return res, nil
}

func (f *fakeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.items[id]; !ok {
		return reservationRepo.ErrReservationNotFound
	}
	delete(f.items, id)
	return nil
}

type fakeAvailability struct {
	triggers []string
}

func (f *fakeAvailability) Refresh(_ context.Context, trigger string) error {
	f.triggers = append(f.triggers, trigger)
	return nil
}

func newService() (*Service, *fakeRepo, *fakeAvailability) {
	repo := &fakeRepo{items: map[int64]*domain.Reservation{
		1: {ID: 1, Status: domain.StatusPending, PaymentStatus: domain.PaymentPending},
	}}
	avail := &fakeAvailability{}
	return NewService(repo, avail, logger.NewNop()), repo, avail
}

func TestList_NormalizesFilter(t *testing.T) {
	s, repo, _ := newService()

	_, err := s.List(context.Background(), domain.ReservationFilter{Search: ptr.Ptr("  Genève ")})
	require.NoError(t, err)
	assert.Equal(t, uint64(defaultLimit), repo.lastFilter.Limit)
	assert.Equal(t, "Genève", *repo.lastFilter.Search)

	_, err = s.List(context.Background(), domain.ReservationFilter{Limit: 10000})
	require.NoError(t, err)
	assert.Equal(t, uint64(maxLimit), repo.lastFilter.Limit)

	bad := domain.ReservationStatus("archived")
	_, err = s.List(context.Background(), domain.ReservationFilter{Status: &bad})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate(t *testing.T) {
	tests := []struct {
		name string
		id   int64
		upd  domain.ReservationUpdate
		want error
	}{
		{"empty", 1, domain.ReservationUpdate{}, ErrInvalidInput},
		{"bad status", 1, domain.ReservationUpdate{Status: ptr.Ptr(domain.ReservationStatus("done"))}, ErrInvalidInput},
		{"bad payment", 1, domain.ReservationUpdate{PaymentStatus: ptr.Ptr(domain.PaymentStatus("free"))}, ErrInvalidInput},
		{"long notes", 1, domain.ReservationUpdate{InternalNotes: ptr.Ptr(strings.Repeat("x", domain.MaxInternalNotesLength+1))}, ErrInvalidInput},
		{"unknown id", 42, domain.ReservationUpdate{Status: ptr.Ptr(domain.StatusConfirmed)}, ErrReservationNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, _ := newService()
			_, err := s.Update(context.Background(), tt.id, tt.upd)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestUpdate_StatusRefreshesAvailability(t *testing.T) {
	s, _, avail := newService()

	res, err := s.Update(context.Background(), 1, domain.ReservationUpdate{
		Status:        ptr.Ptr(domain.StatusCancelled),
		PaymentStatus: ptr.Ptr(domain.PaymentRefunded),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, res.Status)
	assert.Equal(t, domain.PaymentRefunded, res.PaymentStatus)
	assert.Len(t, avail.triggers, 1)

	_, err = s.Update(context.Background(), 1, domain.ReservationUpdate{InternalNotes: ptr.Ptr("clé chez la voisine")})
	require.NoError(t, err)
	assert.Len(t, avail.triggers, 1)
}

func TestUpdate_RestoreOnTakenSlot(t *testing.T) {
	s, repo, _ := newService()
	repo.updateErr = reservationRepo.ErrSlotTaken

	_, err := s.Update(context.Background(), 1, domain.ReservationUpdate{Status: ptr.Ptr(domain.StatusPending)})
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestGetAndDelete(t *testing.T) {
	s, _, avail := newService()
	ctx := context.Background()

	res, err := s.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.ID)

	require.NoError(t, s.Delete(ctx, 1))
	assert.Len(t, avail.triggers, 1)

	_, err = s.Get(ctx, 1)
	assert.ErrorIs(t, err, ErrReservationNotFound)
	assert.ErrorIs(t, s.Delete(ctx, 1), ErrReservationNotFound)
}
