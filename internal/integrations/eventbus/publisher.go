package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher публикует события в очередь RabbitMQ.
// Соединение открывается на каждую публикацию: события редкие.
type Publisher struct {
	url   string
	queue string
}

// NewPublisher создает публикатор; пустой url отключает публикацию
func NewPublisher(url, queue string) *Publisher {
	return &Publisher{url: url, queue: queue}
}

// Enabled настроен ли брокер
func (p *Publisher) Enabled() bool {
	return p.url != ""
}

// PublishReservationCreated публикует событие reservation.created
func (p *Publisher) PublishReservationCreated(ctx context.Context, event ReservationCreatedEvent) error {
	if !p.Enabled() {
		return ErrDisabled
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: marshal event: %v", ErrPublish, err)
	}

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return fmt.Errorf("%w: dial: %v", ErrPublish, err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("%w: open channel: %v", ErrPublish, err)
	}
	defer func() { _ = ch.Close() }()

	// durable очередь, переживает рестарт брокера
	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("%w: declare queue %s: %v", ErrPublish, p.queue, err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Type:         p.queue,
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx, "", p.queue, false, false, msg); err != nil {
		return fmt.Errorf("%w: publish to %s: %v", ErrPublish, p.queue, err)
	}

	return nil
}
