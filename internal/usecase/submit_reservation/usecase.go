package submit_reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/m04kA/CleanHome-BookingService/internal/domain"
	reservationRepo "github.com/m04kA/CleanHome-BookingService/internal/infra/storage/reservation"
	scheduleRepo "github.com/m04kA/CleanHome-BookingService/internal/infra/storage/schedule"
	"github.com/m04kA/CleanHome-BookingService/internal/integrations/eventbus"
	"github.com/m04kA/CleanHome-BookingService/internal/integrations/formnotifier"
	"github.com/m04kA/CleanHome-BookingService/pkg/ptr"
	"github.com/m04kA/CleanHome-BookingService/pkg/txmanager"
)

// notifyTimeout время на уведомления после ответа клиенту
const notifyTimeout = 15 * time.Second

// UseCase use case для создания резервации из корзины
type UseCase struct {
	reservationRepo ReservationRepository
	scheduleRepo    ScheduleRepository
	cartMirror      CartMirror
	notifier        FormNotifier
	publisher       EventPublisher
	txManager       TransactionManager
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
	durationMinutes int

	notifications sync.WaitGroup
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	scheduleRepo ScheduleRepository,
	cartMirror CartMirror,
	notifier FormNotifier,
	publisher EventPublisher,
	txManager TransactionManager,
	metrics Metrics,
	durationMinutes int,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		scheduleRepo:    scheduleRepo,
		cartMirror:      cartMirror,
		notifier:        notifier,
		publisher:       publisher,
		txManager:       txManager,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
		durationMinutes: durationMinutes,
	}
}

// Execute выполняет use case создания резервации.
// Проверка слота и вставка идут в сериализуемой транзакции; частичный уникальный
// индекс по (scheduled_date, scheduled_period) закрывает оставшееся окно гонки.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных (без обращения к БД)
	if err := validateRequest(req, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("SubmitReservation: validation failed: %v", err)
		return nil, err
	}

	cart := req.Cart
	slot := *req.Slot
	date := slot.Date.Format(domain.DateFormat)

	uc.logger.Info("SubmitReservation: session=%s, items=%d, date=%s, period=%s, total=%.2f",
		cart.SessionID, len(cart.Items), date, slot.Period, cart.TotalPrice)

	reservation := buildReservation(cart, slot, req.Notes, uc.durationMinutes)

	var created *domain.Reservation

	// 2. Проверка слота и вставка в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Настройка администратора для слота (отсутствие строки = доступно)
		override, err := uc.scheduleRepo.Get(txCtx, slot.Date, slot.Period)
		if err != nil && !errors.Is(err, scheduleRepo.ErrSlotNotFound) {
			uc.logger.Error("SubmitReservation: failed to get admin schedule: %v", err)
			return fmt.Errorf("%w: failed to get admin schedule: %w", ErrInternal, err)
		}
		if override != nil && !override.IsAvailable {
			uc.logger.Warn("SubmitReservation: slot %s/%s closed by administrator", date, slot.Period)
			return ErrSlotUnavailable
		}

		// 2.2. Повторная проверка активных резерваций на этот слот
		existing, err := uc.reservationRepo.ListActiveBySlot(txCtx, slot.Date, slot.Period)
		if err != nil {
			uc.logger.Error("SubmitReservation: failed to check slot: %v", err)
			return fmt.Errorf("%w: failed to check slot: %w", ErrInternal, err)
		}
		if len(existing) > 0 {
			uc.logger.Warn("SubmitReservation: slot %s/%s already taken by reservation id=%d",
				date, slot.Period, existing[0].ID)
			return ErrSlotTaken
		}

		// 2.3. Создаем резервацию
		res, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrSlotTaken) {
				uc.logger.Warn("SubmitReservation: slot %s/%s taken concurrently (unique index)", date, slot.Period)
				return ErrSlotTaken
			}
			uc.logger.Error("SubmitReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %w", ErrInternal, err)
		}

		created = res
		return nil
	})
	if err != nil {
		// Конкурирующая транзакция заняла слот, повторы исчерпаны
		if txmanager.IsSerializationFailure(err) {
			uc.logger.Warn("SubmitReservation: slot %s/%s lost to a concurrent transaction: %v", date, slot.Period, err)
			err = ErrSlotTaken
		}
		if errors.Is(err, ErrSlotTaken) {
			uc.metrics.IncReservationConflict()
		}
		if !isKnown(err) {
			return nil, fmt.Errorf("%w: %w", ErrInternal, err)
		}
		return nil, err
	}

	uc.metrics.IncReservationCreated()
	uc.logger.Info("SubmitReservation: created reservation id=%d for session=%s", created.ID, cart.SessionID)

	// 3. Копия корзины в БД, на результат не влияет
	if err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		return uc.cartMirror.SaveSubmitted(txCtx, cart, created.ID)
	}); err != nil {
		uc.logger.Warn("SubmitReservation: cart mirror failed for reservation id=%d: %v", created.ID, err)
	}

	// 4. Уведомления в фоне, ошибки только логируются
	uc.notify(ctx, created)

	return &Response{
		ReservationID:  created.ID,
		ServiceNames:   cart.ServiceNames(),
		Address:        created.Address,
		Slot:           slot,
		ScheduledTime:  created.ScheduledTime,
		EstimatedPrice: created.EstimatedPrice,
		HasQuoteItems:  cart.HasQuoteItems(),
		Status:         created.Status,
		CreatedAt:      created.CreatedAt,
	}, nil
}

// Wait дожидается фоновых уведомлений (остановка сервиса, тесты)
func (uc *UseCase) Wait() {
	uc.notifications.Wait()
}

func (uc *UseCase) notify(ctx context.Context, res *domain.Reservation) {
	notifyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)

	uc.notifications.Add(1)
	go func() {
		defer uc.notifications.Done()
		defer cancel()

		err := uc.notifier.Send(notifyCtx, formnotifier.Notification{
			Name:    res.ClientName,
			Email:   res.ClientEmail,
			Phone:   res.ClientPhone,
			Summary: summary(res),
		})
		switch {
		case errors.Is(err, formnotifier.ErrDisabled):
		case err != nil:
			uc.logger.Warn("SubmitReservation: form notification failed for reservation id=%d: %v", res.ID, err)
		}

		err = uc.publisher.PublishReservationCreated(notifyCtx, toEvent(res))
		switch {
		case errors.Is(err, eventbus.ErrDisabled):
		case err != nil:
			uc.logger.Warn("SubmitReservation: event publish failed for reservation id=%d: %v", res.ID, err)
		}
	}()
}

func isKnown(err error) bool {
	for _, known := range []error{ErrSlotTaken, ErrSlotUnavailable, ErrInternal} {
		if errors.Is(err, known) {
			return true
		}
	}
	return false
}

// buildReservation одна резервация на всю корзину
func buildReservation(cart *domain.Cart, slot domain.ScheduleSlot, notes *string, durationMinutes int) *domain.Reservation {
	details := domain.ServiceDetails{Services: make([]domain.ServiceDetail, 0, len(cart.Items))}
	for _, item := range cart.Items {
		details.Services = append(details.Services, domain.ServiceDetail{
			ServiceID:   item.Service.ID,
			ServiceName: item.Service.Name,
			FormData:    item.FormData,
			Price:       item.EstimatedPrice,
			QuoteOnly:   item.IsQuote(),
		})
	}

	address := cart.Address.Address
	if address == "" {
		address = cart.Address.PlaceName
	}

	var coordinates *[2]float64
	if cart.Address.Center != ([2]float64{}) {
		center := cart.Address.Center
		coordinates = &center
	}

	return &domain.Reservation{
		ClientName:      strings.TrimSpace(cart.ContactInfo.Name),
		ClientEmail:     strings.TrimSpace(cart.ContactInfo.Email),
		ClientPhone:     strings.TrimSpace(cart.ContactInfo.Phone),
		Address:         address,
		City:            cart.Address.City,
		Postcode:        cart.Address.Postcode,
		Coordinates:     coordinates,
		ServiceType:     strings.Join(cart.ServiceNames(), ", "),
		ServiceDetails:  details,
		ScheduledDate:   slot.Date,
		ScheduledTime:   slot.Period.ClockTime(),
		ScheduledPeriod: ptr.Ptr(slot.Period),
		DurationMinutes: durationMinutes,
		EstimatedPrice:  cart.TotalPrice,
		Status:          domain.StatusPending,
		PaymentStatus:   domain.PaymentPending,
		Notes:           notes,
	}
}

// summary текст уведомления для команды
func summary(res *domain.Reservation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Nouvelle réservation #%d\n", res.ID)
	fmt.Fprintf(&b, "Client: %s (%s, %s)\n", res.ClientName, res.ClientEmail, res.ClientPhone)
	fmt.Fprintf(&b, "Adresse: %s, %s %s\n", res.Address, res.Postcode, res.City)
	fmt.Fprintf(&b, "Date: %s %s\n", res.ScheduledDate.Format(domain.DateFormat), res.ScheduledTime)
	b.WriteString("Services:\n")
	for _, s := range res.ServiceDetails.Services {
		if s.QuoteOnly {
			fmt.Fprintf(&b, "- %s: sur devis\n", s.ServiceName)
			continue
		}
		fmt.Fprintf(&b, "- %s: %.2f %s\n", s.ServiceName, s.Price, domain.Currency)
	}
	fmt.Fprintf(&b, "Total estimé: %.2f %s", res.EstimatedPrice, domain.Currency)
	if res.Notes != nil && *res.Notes != "" {
		fmt.Fprintf(&b, "\nRemarques: %s", *res.Notes)
	}
	return b.String()
}

func toEvent(res *domain.Reservation) eventbus.ReservationCreatedEvent {
	services := make([]string, 0, len(res.ServiceDetails.Services))
	for _, s := range res.ServiceDetails.Services {
		services = append(services, s.ServiceName)
	}
	period, _ := res.Period()

	return eventbus.ReservationCreatedEvent{
		ReservationID:  res.ID,
		ClientName:     res.ClientName,
		ClientEmail:    res.ClientEmail,
		ClientPhone:    res.ClientPhone,
		Address:        res.Address,
		City:           res.City,
		Services:       services,
		ScheduledDate:  res.ScheduledDate.Format(domain.DateFormat),
		ScheduledTime:  res.ScheduledTime,
		Period:         string(period),
		EstimatedPrice: res.EstimatedPrice,
		CreatedAt:      res.CreatedAt,
	}
}
