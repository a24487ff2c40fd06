package wizard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/CleanHome-BookingService/internal/domain"
	wizardRepo "github.com/m04kA/CleanHome-BookingService/internal/infra/storage/wizard"
	"github.com/m04kA/CleanHome-BookingService/internal/service/wizard/models"
	"github.com/m04kA/CleanHome-BookingService/internal/usecase/submit_reservation"
)

// Service мастер бронирования: услуги → адрес → дата → контакты → успех
type Service struct {
	sessions     SessionRepository
	carts        CartService
	availability Availability
	submitter    Submitter
	validate     *validator.Validate
	timeProvider TimeProvider
	logger       Logger

	// сессии, для которых отправка уже выполняется
	inFlight sync.Map
}

// NewService создает новый экземпляр сервиса мастера
func NewService(
	sessions SessionRepository,
	carts CartService,
	availability Availability,
	submitter Submitter,
	logger Logger,
) *Service {
	return &Service{
		sessions:     sessions,
		carts:        carts,
		availability: availability,
		submitter:    submitter,
		validate:     validator.New(),
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// State текущее состояние мастера и корзины
func (s *Service) State(ctx context.Context, sessionID string) (*models.State, error) {
	session, cart, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return newState(session, cart), nil
}

// GoToStep переход между шагами: назад всегда, вперед только на один шаг и при выполненном условии
func (s *Service) GoToStep(ctx context.Context, sessionID string, target domain.Step) (*models.State, error) {
	if target.Index() < 0 {
		return nil, fmt.Errorf("%w: step %q", ErrInvalidInput, target)
	}

	session, cart, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step == domain.StepSuccess {
		return nil, ErrAlreadySubmitted
	}

	current := session.Step.Index()
	switch {
	case target.Index() > current+1:
		s.logger.Warn("Wizard: session=%s tried to skip from %s to %s", sessionID, session.Step, target)
		return nil, ErrStepSkipped
	case target.Index() > current && !domain.CanProceedToStep(target, cart, session.Slot):
		return nil, ErrIncompleteStep
	}

	session.Step = target
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}

	return newState(session, cart), nil
}

// SelectSlot выбирает слот; в сессии всегда не больше одного слота
func (s *Service) SelectSlot(ctx context.Context, sessionID string, date time.Time, period domain.Period) (*models.State, error) {
	if !period.IsValid() {
		return nil, fmt.Errorf("%w: period %q", ErrInvalidInput, period)
	}
	if !domain.IsSelectableDate(date, s.timeProvider.Now()) {
		return nil, ErrDateNotSelectable
	}

	session, cart, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step == domain.StepSuccess {
		return nil, ErrAlreadySubmitted
	}

	// 1. Свежие данные по дате перед проверкой
	if err := s.availability.RefreshDate(ctx, date); err != nil {
		s.logger.Error("Wizard: failed to refresh availability for %s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: refresh availability: %w", ErrInternal, err)
	}

	// 2. Слот должен быть свободен
	available, err := s.availability.IsAvailable(ctx, date, period)
	if err != nil {
		return nil, fmt.Errorf("%w: check availability: %w", ErrInternal, err)
	}
	if !available {
		return nil, ErrSlotUnavailable
	}

	// 3. Заменяем ранее выбранный слот
	session.Slot = &domain.ScheduleSlot{Date: domain.DateOnly(date), Period: period}
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Info("Wizard: session=%s selected %s/%s", sessionID, date.Format(domain.DateFormat), period)
	return newState(session, cart), nil
}

// Submit проверяет контакты и создает резервацию.
// При ошибке мастер остается на шаге контактов, корзина не меняется.
func (s *Service) Submit(ctx context.Context, sessionID string, contact models.Contact, notes *string) (*models.State, error) {
	// 1. Повторная отправка той же сессии отклоняется
	if _, busy := s.inFlight.LoadOrStore(sessionID, struct{}{}); busy {
		s.logger.Warn("Wizard: session=%s submit already in progress", sessionID)
		return nil, ErrSubmitInProgress
	}
	defer s.inFlight.Delete(sessionID)

	// 2. Проверка контактов
	contact = contact.Trimmed()
	if err := s.validate.Struct(contact); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidContact, err)
	}

	session, _, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step == domain.StepSuccess {
		return nil, ErrAlreadySubmitted
	}
	if session.Step != domain.StepContact {
		return nil, ErrIncompleteStep
	}

	// 3. Контакты сохраняются в корзину
	cart, err := s.carts.SetContactInfo(ctx, sessionID, contact.ToDomain())
	if err != nil {
		return nil, fmt.Errorf("%w: save contact: %w", ErrInternal, err)
	}

	// 4. Создание резервации
	resp, err := s.submitter.Execute(ctx, &submit_reservation.Request{
		Cart:  cart,
		Slot:  session.Slot,
		Notes: notes,
	})
	if err != nil {
		if errors.Is(err, submit_reservation.ErrSlotTaken) || errors.Is(err, submit_reservation.ErrSlotUnavailable) {
			if refreshErr := s.availability.RefreshDate(ctx, session.Slot.Date); refreshErr != nil {
				s.logger.Warn("Wizard: refresh after conflict failed: %v", refreshErr)
			}
		}
		s.logger.Warn("Wizard: session=%s submit failed: %v", sessionID, err)
		return nil, err
	}

	// 5. Экран успеха
	session.Step = domain.StepSuccess
	session.Success = &domain.SuccessRecap{
		ReservationID:  resp.ReservationID,
		Address:        resp.Address,
		Services:       resp.ServiceNames,
		Slot:           resp.Slot,
		EstimatedPrice: resp.EstimatedPrice,
		HasQuoteItems:  resp.HasQuoteItems,
	}
	if err := s.save(ctx, session); err != nil {
		// резервация уже создана, клиенту показываем успех
		s.logger.Error("Wizard: session=%s reservation id=%d created but state not saved: %v",
			sessionID, resp.ReservationID, err)
	}

	s.logger.Info("Wizard: session=%s submitted reservation id=%d", sessionID, resp.ReservationID)
	return newState(session, cart), nil
}

// Finish завершает мастер: restart начинает новую сессию, close закрывает мастер.
// Для close возвращается nil.
func (s *Service) Finish(ctx context.Context, sessionID string, action models.FinishAction) (*models.State, error) {
	if _, err := models.ParseFinishAction(string(action)); err != nil {
		return nil, fmt.Errorf("%w: action %q", ErrInvalidInput, action)
	}

	cart, err := s.carts.Clear(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: clear cart: %w", ErrInternal, err)
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		s.logger.Error("Wizard: failed to delete session=%s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: delete session: %w", ErrInternal, err)
	}

	if action == models.FinishClose {
		s.logger.Info("Wizard: session=%s closed", sessionID)
		return nil, nil
	}

	session := domain.NewWizardSession(cart.SessionID)
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Info("Wizard: session=%s restarted as session=%s", sessionID, cart.SessionID)
	return newState(session, cart), nil
}

func (s *Service) load(ctx context.Context, sessionID string) (*domain.WizardSession, *domain.Cart, error) {
	if sessionID == "" {
		return nil, nil, fmt.Errorf("%w: empty session id", ErrInvalidInput)
	}

	session, err := s.sessions.Get(ctx, sessionID)
	switch {
	case errors.Is(err, wizardRepo.ErrSessionNotFound):
		session = domain.NewWizardSession(sessionID)
	case errors.Is(err, wizardRepo.ErrDecode):
		s.logger.Warn("Wizard: session=%s unreadable, starting over: %v", sessionID, err)
		session = domain.NewWizardSession(sessionID)
	case err != nil:
		s.logger.Error("Wizard: failed to load session=%s: %v", sessionID, err)
		return nil, nil, fmt.Errorf("%w: load session: %w", ErrInternal, err)
	}

	cart, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: load cart: %w", ErrInternal, err)
	}

	return session, cart, nil
}

func (s *Service) save(ctx context.Context, session *domain.WizardSession) error {
	session.UpdatedAt = s.timeProvider.Now()
	if err := s.sessions.Save(ctx, session); err != nil {
		s.logger.Error("Wizard: failed to save session=%s: %v", session.SessionID, err)
		return fmt.Errorf("%w: save session: %w", ErrInternal, err)
	}
	return nil
}

func newState(session *domain.WizardSession, cart *domain.Cart) *models.State {
	canProceed := make(map[domain.Step]bool, len(domain.Steps))
	for _, step := range domain.Steps {
		canProceed[step] = domain.CanProceedToStep(step, cart, session.Slot)
	}
	return &models.State{Session: session, Cart: cart, CanProceed: canProceed}
}
