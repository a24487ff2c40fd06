package wizard

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CleanHome-BookingService/internal/domain"
)

func TestSaveAndGet(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	loc := time.FixedZone("CET", 3600)
	repo := NewRepository(client, time.Hour, loc)
	ctx := context.Background()

	date := time.Date(2025, 3, 5, 0, 0, 0, 0, loc)
	session := domain.NewWizardSession("s-1")
	session.Step = domain.StepSuccess
	session.Slot = &domain.ScheduleSlot{Date: date, Period: domain.PeriodAfternoon}
	session.Success = &domain.SuccessRecap{
		ReservationID:  12,
		Address:        "Rue du Lac 1, 1003 Lausanne",
		Services:       []string{"Nettoyage de canapé"},
		Slot:           *session.Slot,
		EstimatedPrice: 140,
	}

	require.NoError(t, repo.Save(ctx, session))

	loaded, err := repo.Get(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StepSuccess, loaded.Step)
	require.NotNil(t, loaded.Slot)
	assert.True(t, date.Equal(loaded.Slot.Date))
	assert.Equal(t, domain.PeriodAfternoon, loaded.Slot.Period)
	assert.Equal(t, int64(12), loaded.Success.ReservationID)

	require.NoError(t, repo.Delete(ctx, "s-1"))
	_, err = repo.Get(ctx, "s-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
