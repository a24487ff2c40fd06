package models

import (
	"errors"
	"strings"

	"github.com/m04kA/CleanHome-BookingService/internal/domain"
)

// ErrInvalidFinishAction неизвестное действие завершения
var ErrInvalidFinishAction = errors.New("models: invalid finish action")

// State состояние мастера вместе с корзиной
type State struct {
	Session    *domain.WizardSession
	Cart       *domain.Cart
	CanProceed map[domain.Step]bool
}

// Contact контакты клиента на последнем шаге
type Contact struct {
	Name  string `validate:"required,min=1,max=200"`
	Email string `validate:"required,email,max=254"`
	Phone string `validate:"required,min=10,max=30"`
}

// Trimmed копия без пробелов по краям
func (c Contact) Trimmed() Contact {
	return Contact{
		Name:  strings.TrimSpace(c.Name),
		Email: strings.TrimSpace(c.Email),
		Phone: strings.TrimSpace(c.Phone),
	}
}

// ToDomain преобразует в доменную модель
func (c Contact) ToDomain() domain.ContactInfo {
	return domain.ContactInfo{Name: c.Name, Email: c.Email, Phone: c.Phone}
}

// FinishAction действие на экране успеха
type FinishAction string

const (
	// FinishRestart новая корзина и мастер с первого шага
	FinishRestart FinishAction = "restart"
	// FinishClose корзина очищается, мастер закрывается
	FinishClose FinishAction = "close"
)

// ParseFinishAction разбирает действие завершения
func ParseFinishAction(s string) (FinishAction, error) {
	switch FinishAction(s) {
	case FinishRestart, FinishClose:
		return FinishAction(s), nil
	default:
		return "", ErrInvalidFinishAction
	}
}
