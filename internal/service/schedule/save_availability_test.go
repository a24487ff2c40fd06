package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CleanHome-BookingService/internal/domain"
	"github.com/m04kA/CleanHome-BookingService/internal/service/availability"
	"github.com/m04kA/CleanHome-BookingService/pkg/logger"
)

type noReservations struct{}

func (noReservations) ListReserved(context.Context, time.Time, time.Time) ([]*domain.Reservation, error) {
	return nil, nil
}

type refreshCounter struct {
	triggers []string
}

func (m *refreshCounter) IncAvailabilityRefresh(trigger string) {
	m.triggers = append(m.triggers, trigger)
}

// Сохранение администратора сразу видно клиентам без ожидания опроса
func TestSave_ClosedSlotUnavailableImmediately(t *testing.T) {
	ctx := context.Background()
	repo := &memoryRepo{rows: map[domain.SlotKey]domain.AdminScheduleSlot{}}
	refreshes := &refreshCounter{}
	avail := availability.NewService(noReservations{}, repo, refreshes, cet, 30, logger.NewNop())
	s := NewService(repo, fakeTx{}, avail, cet, logger.NewNop())

	target := domain.DateOnly(time.Now().In(cet)).AddDate(0, 0, 3)

	// снимок загружен до изменений
	require.NoError(t, avail.Refresh(ctx, availability.TriggerStartup))
	ok, err := avail.IsAvailable(ctx, target, domain.PeriodMorning)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = s.Toggle(ctx, "marie", target, domain.PeriodMorning)
	require.NoError(t, err)

	// несохраненное изменение клиентам не видно
	ok, err = avail.IsAvailable(ctx, target, domain.PeriodMorning)
	require.NoError(t, err)
	assert.True(t, ok)

	saved, err := s.Save(ctx, "marie")
	require.NoError(t, err)
	assert.Equal(t, 1, saved)

	ok, err = avail.IsAvailable(ctx, target, domain.PeriodMorning)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = avail.IsAvailable(ctx, target, domain.PeriodAfternoon)
	require.NoError(t, err)
	assert.True(t, ok)

	// повторное открытие тоже видно сразу
	_, err = s.Toggle(ctx, "marie", target, domain.PeriodMorning)
	require.NoError(t, err)
	_, err = s.Save(ctx, "marie")
	require.NoError(t, err)

	ok, err = avail.IsAvailable(ctx, target, domain.PeriodMorning)
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Equal(t, []string{availability.TriggerStartup, availability.TriggerAdminSave, availability.TriggerAdminSave}, refreshes.triggers)
}
