package availability

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/m04kA/CleanHome-BookingService/internal/domain"
	"github.com/m04kA/CleanHome-BookingService/internal/service/availability/models"
)

// Триггеры обновления снимка (метка метрики)
const (
	TriggerStartup   = "startup"
	TriggerPoll      = "poll"
	TriggerRealtime  = "realtime"
	TriggerOnDemand  = "on_demand"
	TriggerAdminSave = "admin_save"
	TriggerAdminEdit = "admin_edit"
)

// Service отвечает на вопрос "можно ли забронировать (date, period)".
// Снимок занятых слотов обновляют три независимых источника: опрос по таймеру,
// уведомления LISTEN/NOTIFY и запрос конкретной даты. Побеждает последняя запись.
// Снимок не является блокировкой: при отправке резервации слот проверяется в БД заново.
type Service struct {
	reservations ReservationRepository
	schedule     ScheduleRepository
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
	loc          *time.Location
	horizonDays  int

	current atomic.Pointer[snapshot]
}

// NewService создает новый экземпляр сервиса доступности
func NewService(
	reservations ReservationRepository,
	schedule ScheduleRepository,
	metrics Metrics,
	loc *time.Location,
	horizonDays int,
	logger Logger,
) *Service {
	return &Service{
		reservations: reservations,
		schedule:     schedule,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		loc:          loc,
		horizonDays:  horizonDays,
	}
}

// Location часовой пояс бизнеса
func (s *Service) Location() *time.Location {
	return s.loc
}

// Today текущая дата в часовом поясе бизнеса
func (s *Service) Today() time.Time {
	return domain.DateOnly(s.timeProvider.Now().In(s.loc))
}

// Refresh перечитывает окно [сегодня, сегодня+horizon] и заменяет снимок целиком
func (s *Service) Refresh(ctx context.Context, trigger string) error {
	from := s.Today()
	return s.refreshWindow(ctx, from, from.AddDate(0, 0, s.horizonDays), trigger)
}

// RefreshDate обновление по запросу при выборе даты; окно расширяется, если дата за горизонтом
func (s *Service) RefreshDate(ctx context.Context, date time.Time) error {
	from := s.Today()
	to := from.AddDate(0, 0, s.horizonDays)
	if day := s.dateOnly(date); day.After(to) {
		to = day
	}
	return s.refreshWindow(ctx, from, to, TriggerOnDemand)
}

func (s *Service) refreshWindow(ctx context.Context, from, to time.Time, trigger string) error {
	snap, err := s.load(ctx, from, to, trigger)
	if err != nil {
		return err
	}

	s.current.Store(snap)
	s.metrics.IncAvailabilityRefresh(trigger)

	return nil
}

// load читает резервации и настройки администратора за [from, to]
func (s *Service) load(ctx context.Context, from, to time.Time, trigger string) (*snapshot, error) {
	reserved, err := s.reservations.ListReserved(ctx, from, to)
	if err != nil {
		s.logger.Error("Availability: failed to load reservations (trigger=%s): %v", trigger, err)
		return nil, fmt.Errorf("%w: load reservations: %w", ErrInternal, err)
	}

	overrides, err := s.schedule.ListRange(ctx, from, to)
	if err != nil {
		s.logger.Error("Availability: failed to load admin schedule (trigger=%s): %v", trigger, err)
		return nil, fmt.Errorf("%w: load admin schedule: %w", ErrInternal, err)
	}

	snap := &snapshot{
		from:      from,
		to:        to,
		reserved:  make(map[domain.SlotKey]struct{}, len(reserved)),
		overrides: make(map[domain.SlotKey]bool, len(overrides)),
		fetchedAt: s.timeProvider.Now(),
	}

	for _, res := range reserved {
		period, ok := res.Period()
		if !ok {
			s.logger.Warn("Availability: reservation id=%d has unrecognized time %q, treated as morning",
				res.ID, res.ScheduledTime)
		}
		snap.reserved[domain.NewSlotKey(res.ScheduledDate, period)] = struct{}{}
	}
	for _, o := range overrides {
		snap.overrides[o.Key()] = o.IsAvailable
	}

	return snap, nil
}

// snapshotFor возвращает снимок, покрывающий дату; при необходимости обновляет его.
// Даты раньше сегодняшней в общее окно не попадают: для них читается один день
// без публикации снимка.
func (s *Service) snapshotFor(ctx context.Context, date time.Time) (*snapshot, error) {
	day := s.dateOnly(date)
	if snap := s.current.Load(); snap != nil && snap.covers(day) {
		return snap, nil
	}

	if !day.Before(s.Today()) {
		if err := s.RefreshDate(ctx, day); err != nil {
			return nil, err
		}
		if snap := s.current.Load(); snap != nil && snap.covers(day) {
			return snap, nil
		}
	}

	// Окно сдвинулось конкурентным обновлением или дата в прошлом
	return s.load(ctx, day, day, TriggerOnDemand)
}

// IsAvailable = слот не занят активной резервацией И администратор его не закрыл
func (s *Service) IsAvailable(ctx context.Context, date time.Time, period domain.Period) (bool, error) {
	if !period.IsValid() {
		return false, fmt.Errorf("%w: period %q", ErrInvalidInput, period)
	}

	snap, err := s.snapshotFor(ctx, date)
	if err != nil {
		return false, err
	}

	return snap.isAvailable(domain.NewSlotKey(s.dateOnly(date), period)), nil
}

// DayAvailability доступность обоих периодов дня
func (s *Service) DayAvailability(ctx context.Context, date time.Time) (*models.DayAvailability, error) {
	day := s.dateOnly(date)
	result := &models.DayAvailability{
		Date:       day,
		Selectable: domain.IsSelectableDate(day, s.timeProvider.Now()),
	}
	if !result.Selectable {
		return result, nil
	}

	snap, err := s.snapshotFor(ctx, day)
	if err != nil {
		return nil, err
	}

	result.Morning = snap.isAvailable(domain.NewSlotKey(day, domain.PeriodMorning))
	result.Afternoon = snap.isAvailable(domain.NewSlotKey(day, domain.PeriodAfternoon))

	return result, nil
}

// SelectableDates доступность дат, которые клиент может выбрать, начиная с from
func (s *Service) SelectableDates(ctx context.Context, from time.Time, days int) ([]models.DayAvailability, error) {
	if days <= 0 || days > domain.MaxSelectableDays {
		return nil, fmt.Errorf("%w: days must be in 1..%d", ErrInvalidInput, domain.MaxSelectableDays)
	}

	start := s.dateOnly(from)
	if today := s.Today(); start.Before(today) {
		start = today
	}
	end := start.AddDate(0, 0, days-1)

	snap, err := s.snapshotFor(ctx, end)
	if err != nil {
		return nil, err
	}

	now := s.timeProvider.Now()
	result := make([]models.DayAvailability, 0, days)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if !domain.IsSelectableDate(day, now) {
			continue
		}
		result = append(result, models.DayAvailability{
			Date:       day,
			Selectable: true,
			Morning:    snap.isAvailable(domain.NewSlotKey(day, domain.PeriodMorning)),
			Afternoon:  snap.isAvailable(domain.NewSlotKey(day, domain.PeriodAfternoon)),
		})
	}

	return result, nil
}

// RunPoller периодически обновляет снимок до отмены контекста
func (s *Service) RunPoller(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.logger.Info("Availability: poller started, interval=%s", interval)
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Availability: poller stopped")
			return
		case <-ticker.C:
			if err := s.Refresh(ctx, TriggerPoll); err != nil {
				s.logger.Warn("Availability: poll refresh failed: %v", err)
			}
		}
	}
}

// OnRealtimeChange обработчик уведомлений об изменении reservations
func (s *Service) OnRealtimeChange(ctx context.Context, payload string) {
	if err := s.Refresh(ctx, TriggerRealtime); err != nil {
		s.logger.Warn("Availability: realtime refresh failed (payload=%q): %v", payload, err)
	}
}

// dateOnly дата в часовом поясе бизнеса
func (s *Service) dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, s.loc)
}
