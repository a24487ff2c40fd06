package reservations

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/CleanHome-BookingService/internal/domain"
	reservationRepo "github.com/m04kA/CleanHome-BookingService/internal/infra/storage/reservation"
	"github.com/m04kA/CleanHome-BookingService/internal/service/availability"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

// Service управление резервациями в админке
type Service struct {
	repo         ReservationRepository
	availability Availability
	logger       Logger
}

// NewService создает новый экземпляр сервиса резерваций
func NewService(repo ReservationRepository, availability Availability, logger Logger) *Service {
	return &Service{
		repo:         repo,
		availability: availability,
		logger:       logger,
	}
}

// List резервации по фильтру (статус, диапазон дат, поиск)
func (s *Service) List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, fmt.Errorf("%w: status %q", ErrInvalidInput, *filter.Status)
	}
	if filter.StartDate != nil && filter.EndDate != nil && filter.EndDate.Before(*filter.StartDate) {
		return nil, fmt.Errorf("%w: end date before start date", ErrInvalidInput)
	}
	if filter.Search != nil {
		search := strings.TrimSpace(*filter.Search)
		filter.Search = &search
	}
	switch {
	case filter.Limit == 0:
		filter.Limit = defaultLimit
	case filter.Limit > maxLimit:
		filter.Limit = maxLimit
	}

	result, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d reservations", len(result))
	return result, nil
}

// Get резервация по ID
func (s *Service) Get(ctx context.Context, id int64) (*domain.Reservation, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Get: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("Get: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Get - repository error: %w", ErrInternal, err)
	}
	return res, nil
}

// Update меняет статус, статус оплаты и внутренние заметки.
// Поддерживает частичное обновление - обновляются только указанные поля
func (s *Service) Update(ctx context.Context, id int64, upd domain.ReservationUpdate) (*domain.Reservation, error) {
	s.logger.Info("Update: updating reservation id=%d", id)

	// 1. Валидация
	if upd.IsEmpty() {
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}
	if upd.Status != nil && !upd.Status.IsValid() {
		return nil, fmt.Errorf("%w: status %q", ErrInvalidInput, *upd.Status)
	}
	if upd.PaymentStatus != nil && !upd.PaymentStatus.IsValid() {
		return nil, fmt.Errorf("%w: payment status %q", ErrInvalidInput, *upd.PaymentStatus)
	}
	if upd.InternalNotes != nil && len([]rune(*upd.InternalNotes)) > domain.MaxInternalNotesLength {
		return nil, fmt.Errorf("%w: internal notes longer than %d characters", ErrInvalidInput, domain.MaxInternalNotesLength)
	}

	// 2. Обновление
	res, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		switch {
		case errors.Is(err, reservationRepo.ErrReservationNotFound):
			s.logger.Warn("Update: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		case errors.Is(err, reservationRepo.ErrSlotTaken):
			s.logger.Warn("Update: reservation id=%d cannot be restored, slot taken", id)
			return nil, ErrSlotTaken
		}
		s.logger.Error("Update: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %w", ErrInternal, err)
	}

	// 3. Смена статуса может освободить или занять слот
	if upd.Status != nil {
		s.refresh(ctx)
	}

	s.logger.Info("Update: reservation id=%d updated, status=%s, payment=%s", id, res.Status, res.PaymentStatus)
	return res, nil
}

// Delete удаляет резервацию
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Delete: reservation id=%d not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Delete: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %w", ErrInternal, err)
	}

	s.refresh(ctx)
	s.logger.Info("Delete: reservation id=%d deleted", id)
	return nil
}

func (s *Service) refresh(ctx context.Context) {
	if err := s.availability.Refresh(ctx, availability.TriggerAdminEdit); err != nil {
		s.logger.Warn("availability refresh failed: %v", err)
	}
}
