package realtime

import (
	"context"
	"time"

	"github.com/lib/pq"
)

const (
	minReconnectInterval = 2 * time.Second
	maxReconnectInterval = time.Minute
	// pingInterval проверка соединения, если уведомлений давно не было
	pingInterval = 90 * time.Second
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Listener подписка на LISTEN/NOTIFY канал PostgreSQL.
// Каждое уведомление (и каждое переподключение) вызывает onChange.
type Listener struct {
	dsn     string
	channel string
	logger  Logger
}

// NewListener создает новый экземпляр слушателя
func NewListener(dsn, channel string, logger Logger) *Listener {
	return &Listener{dsn: dsn, channel: channel, logger: logger}
}

// Run слушает канал до отмены контекста
func (l *Listener) Run(ctx context.Context, onChange func(ctx context.Context, payload string)) error {
	listener := pq.NewListener(l.dsn, minReconnectInterval, maxReconnectInterval, func(ev pq.ListenerEventType, err error) {
		switch ev {
		case pq.ListenerEventConnectionAttemptFailed, pq.ListenerEventDisconnected:
			l.logger.Warn("Realtime: connection problem on channel=%s: %v", l.channel, err)
		case pq.ListenerEventReconnected:
			l.logger.Info("Realtime: reconnected to channel=%s", l.channel)
		}
	})
	defer func() { _ = listener.Close() }()

	if err := listener.Listen(l.channel); err != nil {
		return err
	}
	l.logger.Info("Realtime: listening on channel=%s", l.channel)

	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			l.logger.Info("Realtime: stopped listening on channel=%s", l.channel)
			return nil
		case n := <-listener.Notify:
			// nil приходит после переподключения: уведомления могли потеряться
			payload := ""
			if n != nil {
				payload = n.Extra
			}
			onChange(ctx, payload)
		case <-ticker.C:
			if err := listener.Ping(); err != nil {
				l.logger.Warn("Realtime: ping failed on channel=%s: %v", l.channel, err)
			}
		}
	}
}
