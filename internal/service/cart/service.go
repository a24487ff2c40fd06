package cart

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/m04kA/CleanHome-BookingService/internal/domain"
	cartRepo "github.com/m04kA/CleanHome-BookingService/internal/infra/storage/cart"
)

const lockStripes = 64

// Service корзина сессии: каждое изменение сохраняет корзину целиком
type Service struct {
	repo         CartRepository
	catalog      Catalog
	timeProvider TimeProvider
	logger       Logger

	// read-modify-write одной сессии сериализуется в пределах процесса
	locks [lockStripes]sync.Mutex
}

// NewService создает новый экземпляр сервиса корзины
func NewService(repo CartRepository, catalog Catalog, logger Logger) *Service {
	return &Service{
		repo:         repo,
		catalog:      catalog,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// lock блокирует сессию до вызова возвращенной функции
func (s *Service) lock(sessionID string) func() {
	h := fnv.New32a()
	_, _ = h.Write([]byte(sessionID))
	mu := &s.locks[h.Sum32()%lockStripes]
	mu.Lock()
	return mu.Unlock
}

// Create возвращает новую пустую корзину; пустая корзина не сохраняется
func (s *Service) Create(_ context.Context) *domain.Cart {
	cart := domain.NewCart()
	s.logger.Info("Cart: created session=%s", cart.SessionID)
	return cart
}

// Get загружает корзину сессии; если ее нет, возвращает пустую
func (s *Service) Get(ctx context.Context, sessionID string) (*domain.Cart, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, ErrInvalidSession
	}

	cart, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, cartRepo.ErrCartNotFound) {
			return &domain.Cart{ID: uuid.NewString(), SessionID: sessionID, Items: []domain.CartItem{}}, nil
		}
		if errors.Is(err, cartRepo.ErrDecode) {
			// испорченная копия не восстанавливается, начинаем с пустой корзины
			s.logger.Warn("Cart: stored cart is unreadable, starting empty: session=%s, error=%v", sessionID, err)
			return &domain.Cart{ID: uuid.NewString(), SessionID: sessionID, Items: []domain.CartItem{}}, nil
		}
		s.logger.Error("Cart: failed to load session=%s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: load cart: %w", ErrInternal, err)
	}

	return cart, nil
}

// AddItem добавляет услугу с опциями; цена считается по каталогу.
// Содержимое опций не блокирует добавление: неполные или неизвестные опции
// оцениваются по цене по умолчанию, проверку опций делает вызывающая сторона.
func (s *Service) AddItem(ctx context.Context, sessionID, serviceID string, formData map[string]any) (*domain.Cart, *domain.CartItem, error) {
	entry, err := s.catalog.Get(serviceID)
	if err != nil {
		s.logger.Warn("Cart: unknown service=%s for session=%s", serviceID, sessionID)
		return nil, nil, ErrServiceNotFound
	}

	price, err := entry.Price(formData)
	if err != nil {
		s.logger.Info("Cart: options incomplete for service=%s, default price applied: %v", serviceID, err)
		price = domain.DefaultEstimatedPrice
	}

	var added domain.CartItem
	cart, err := s.mutate(ctx, sessionID, func(cart *domain.Cart) error {
		added = cart.AddItem(entry.Ref, formData, price, s.timeProvider.Now())
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info("Cart: added item=%s service=%s price=%.2f to session=%s, total=%.2f",
		added.ID, serviceID, added.EstimatedPrice, sessionID, cart.TotalPrice)
	return cart, &added, nil
}

// RemoveItem удаляет позицию; неизвестный id молча игнорируется
func (s *Service) RemoveItem(ctx context.Context, sessionID, itemID string) (*domain.Cart, error) {
	return s.mutate(ctx, sessionID, func(cart *domain.Cart) error {
		if !cart.RemoveItem(itemID, s.timeProvider.Now()) {
			s.logger.Info("Cart: item=%s not in session=%s, nothing removed", itemID, sessionID)
		}
		return nil
	})
}

// SetAddress заменяет адрес целиком
func (s *Service) SetAddress(ctx context.Context, sessionID string, address domain.AddressRef) (*domain.Cart, error) {
	if address.ID == "" || strings.TrimSpace(address.PlaceName) == "" {
		return nil, ErrInvalidAddress
	}
	return s.mutate(ctx, sessionID, func(cart *domain.Cart) error {
		cart.SetAddress(address, s.timeProvider.Now())
		return nil
	})
}

// SetContactInfo заменяет контакты целиком; проверка полей при отправке
func (s *Service) SetContactInfo(ctx context.Context, sessionID string, contact domain.ContactInfo) (*domain.Cart, error) {
	return s.mutate(ctx, sessionID, func(cart *domain.Cart) error {
		cart.SetContactInfo(contact, s.timeProvider.Now())
		return nil
	})
}

// Clear удаляет сохраненную корзину и возвращает новую пустую с новой сессией
func (s *Service) Clear(ctx context.Context, sessionID string) (*domain.Cart, error) {
	if err := s.repo.Delete(ctx, sessionID); err != nil {
		s.logger.Error("Cart: failed to clear session=%s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: clear cart: %w", ErrInternal, err)
	}

	cart := domain.NewCart()
	s.logger.Info("Cart: cleared session=%s, new session=%s", sessionID, cart.SessionID)
	return cart, nil
}

func (s *Service) mutate(ctx context.Context, sessionID string, fn func(cart *domain.Cart) error) (*domain.Cart, error) {
	unlock := s.lock(sessionID)
	defer unlock()

	cart, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := fn(cart); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, cart); err != nil {
		s.logger.Error("Cart: failed to save session=%s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: save cart: %w", ErrInternal, err)
	}

	return cart, nil
}
