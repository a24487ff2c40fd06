package availability

import (
	"time"

	"github.com/m04kA/CleanHome-BookingService/internal/domain"
)

// snapshot полный снимок занятых слотов и настроек администратора в окне дат.
// Заменяется целиком, никогда не изменяется после публикации.
type snapshot struct {
	from      time.Time
	to        time.Time
	reserved  map[domain.SlotKey]struct{}
	overrides map[domain.SlotKey]bool // is_available
	fetchedAt time.Time
}

func (s *snapshot) covers(date time.Time) bool {
	day := domain.DateOnly(date)
	return !day.Before(s.from) && !day.After(s.to)
}

func (s *snapshot) isReserved(key domain.SlotKey) bool {
	_, ok := s.reserved[key]
	return ok
}

// adminAllows отсутствие строки означает "доступно"
func (s *snapshot) adminAllows(key domain.SlotKey) bool {
	available, ok := s.overrides[key]
	if !ok {
		return true
	}
	return available
}

func (s *snapshot) isAvailable(key domain.SlotKey) bool {
	return !s.isReserved(key) && s.adminAllows(key)
}
