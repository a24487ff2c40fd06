package schedule

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/m04kA/CleanHome-BookingService/internal/domain"
	scheduleRepo "github.com/m04kA/CleanHome-BookingService/internal/infra/storage/schedule"
	"github.com/m04kA/CleanHome-BookingService/internal/service/availability"
	"github.com/m04kA/CleanHome-BookingService/internal/service/schedule/models"
)

// Service редактор доступности для администраторов.
// Изменения копятся в памяти отдельно для каждого редактора и записываются одной пачкой.
type Service struct {
	repo         ScheduleRepository
	txManager    TransactionManager
	availability Availability
	logger       Logger
	loc          *time.Location

	mu      sync.Mutex
	pending map[string]map[domain.SlotKey]domain.AdminScheduleSlot
}

// NewService создает новый экземпляр редактора расписания
func NewService(
	repo ScheduleRepository,
	txManager TransactionManager,
	availability Availability,
	loc *time.Location,
	logger Logger,
) *Service {
	return &Service{
		repo:         repo,
		txManager:    txManager,
		availability: availability,
		logger:       logger,
		loc:          loc,
		pending:      make(map[string]map[domain.SlotKey]domain.AdminScheduleSlot),
	}
}

// Toggle меняет доступность слота относительно сохраненного состояния.
// Повторное переключение возвращает слот к сохраненному значению и убирает его из изменений.
func (s *Service) Toggle(ctx context.Context, editor string, date time.Time, period domain.Period) (*models.PendingChanges, error) {
	if editor == "" {
		return nil, fmt.Errorf("%w: empty editor", ErrInvalidInput)
	}
	if !period.IsValid() {
		return nil, fmt.Errorf("%w: period %q", ErrInvalidInput, period)
	}
	day := s.dateOnly(date)
	key := domain.NewSlotKey(day, period)

	s.mu.Lock()
	_, wasPending := s.pending[editor][key]
	s.mu.Unlock()

	if wasPending {
		s.mu.Lock()
		delete(s.pending[editor], key)
		s.mu.Unlock()
		s.logger.Info("Toggle: editor=%s reverted %s/%s", editor, key.Date, period)
		return s.Pending(editor), nil
	}

	// 1. Сохраненное состояние: строка в БД или доступно по умолчанию
	known := true
	row, err := s.repo.Get(ctx, day, period)
	switch {
	case err == nil:
		known = row.IsAvailable
	case errors.Is(err, scheduleRepo.ErrSlotNotFound):
	default:
		s.logger.Error("Toggle: failed to get slot %s/%s: %v", key.Date, period, err)
		return nil, fmt.Errorf("%w: get slot: %w", ErrInternal, err)
	}

	// 2. Запоминаем противоположное значение
	s.mu.Lock()
	if s.pending[editor] == nil {
		s.pending[editor] = make(map[domain.SlotKey]domain.AdminScheduleSlot)
	}
	s.pending[editor][key] = domain.AdminScheduleSlot{Date: day, Period: period, IsAvailable: !known}
	s.mu.Unlock()

	s.logger.Info("Toggle: editor=%s set %s/%s available=%t (pending)", editor, key.Date, period, !known)
	return s.Pending(editor), nil
}

// Pending несохраненные изменения редактора по порядку дат
func (s *Service) Pending(editor string) *models.PendingChanges {
	s.mu.Lock()
	defer s.mu.Unlock()

	slots := make([]domain.AdminScheduleSlot, 0, len(s.pending[editor]))
	for _, slot := range s.pending[editor] {
		slots = append(slots, slot)
	}
	sort.Slice(slots, func(i, j int) bool {
		if !slots[i].Date.Equal(slots[j].Date) {
			return slots[i].Date.Before(slots[j].Date)
		}
		return slots[i].Period.Index() < slots[j].Period.Index()
	})

	return &models.PendingChanges{Slots: slots, Count: len(slots)}
}

// View сетка слотов за период: сохраненные значения, поверх них изменения редактора
func (s *Service) View(ctx context.Context, editor string, from, to time.Time) ([]models.SlotView, error) {
	start, end := s.dateOnly(from), s.dateOnly(to)
	if end.Before(start) {
		return nil, fmt.Errorf("%w: range end before start", ErrInvalidInput)
	}
	if end.Sub(start) > time.Duration(domain.MaxSelectableDays)*24*time.Hour {
		return nil, fmt.Errorf("%w: range longer than %d days", ErrInvalidInput, domain.MaxSelectableDays)
	}

	rows, err := s.repo.ListRange(ctx, start, end)
	if err != nil {
		s.logger.Error("View: failed to list schedule: %v", err)
		return nil, fmt.Errorf("%w: list schedule: %w", ErrInternal, err)
	}

	saved := make(map[domain.SlotKey]bool, len(rows))
	for _, row := range rows {
		saved[row.Key()] = row.IsAvailable
	}

	s.mu.Lock()
	pending := make(map[domain.SlotKey]bool, len(s.pending[editor]))
	for key, slot := range s.pending[editor] {
		pending[key] = slot.IsAvailable
	}
	s.mu.Unlock()

	var result []models.SlotView
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		for _, period := range domain.Periods {
			key := domain.NewSlotKey(day, period)
			view := models.SlotView{Date: day, Period: period, IsAvailable: true}
			if available, ok := saved[key]; ok {
				view.IsAvailable = available
				view.Overridden = true
			}
			if available, ok := pending[key]; ok {
				view.IsAvailable = available
				view.Pending = true
			}
			result = append(result, view)
		}
	}

	return result, nil
}

// Save записывает все изменения редактора одной транзакцией.
// При ошибке изменения остаются, при успехе клиенты сразу видят новую доступность.
func (s *Service) Save(ctx context.Context, editor string) (int, error) {
	changes := s.Pending(editor)
	if changes.Count == 0 {
		return 0, ErrNothingToSave
	}

	s.logger.Info("Save: editor=%s saving %d slots", editor, changes.Count)

	// 1. Пакетная запись
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.repo.UpsertBatch(txCtx, changes.Slots)
	})
	if err != nil {
		s.logger.Error("Save: editor=%s failed to save schedule: %v", editor, err)
		return 0, fmt.Errorf("%w: save schedule: %w", ErrInternal, err)
	}

	// 2. Убираем сохраненные изменения; новые переключения за время записи остаются
	s.mu.Lock()
	for _, slot := range changes.Slots {
		key := slot.Key()
		if current, ok := s.pending[editor][key]; ok && current.IsAvailable == slot.IsAvailable {
			delete(s.pending[editor], key)
		}
	}
	if len(s.pending[editor]) == 0 {
		delete(s.pending, editor)
	}
	s.mu.Unlock()

	// 3. Обновляем снимок доступности
	if err := s.availability.Refresh(ctx, availability.TriggerAdminSave); err != nil {
		s.logger.Warn("Save: availability refresh failed: %v", err)
	}

	s.logger.Info("Save: editor=%s saved %d slots", editor, changes.Count)
	return changes.Count, nil
}

// Discard отбрасывает изменения редактора, возвращает их количество
func (s *Service) Discard(editor string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := len(s.pending[editor])
	delete(s.pending, editor)

	s.logger.Info("Discard: editor=%s dropped %d pending slots", editor, count)
	return count
}

func (s *Service) dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, s.loc)
}
