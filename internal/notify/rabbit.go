package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/FleetBook/FleetBook/internal/common/middleware"
	amqp "github.com/rabbitmq/amqp091-go"
)

// RabbitNotifier 基于 RabbitMQ topic exchange 的通知出口。
// routing key 形如 reservation.approved.<id>，下游（邮件/IM 推送等）按需订阅。
// 发布动作包在熔断器里：broker 持续不可用时快速失败，避免拖慢主流程。
type RabbitNotifier struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	breaker  *middleware.CircuitBreaker
}

func NewRabbitNotifier(url, exchange string) (*RabbitNotifier, error) {
	if strings.TrimSpace(url) == "" {
		return nil, fmt.Errorf("rabbit url is empty")
	}
	if strings.TrimSpace(exchange) == "" {
		exchange = "fleetbook.reservations"
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(
		exchange,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &RabbitNotifier{
		conn:     conn,
		ch:       ch,
		exchange: exchange,
		breaker:  middleware.NewCircuitBreaker("rabbit-notifier", 5, 30*time.Second),
	}, nil
}

func (n *RabbitNotifier) Publish(ctx context.Context, e Event) error {
	if n == nil || n.ch == nil {
		return fmt.Errorf("notifier is not connected")
	}

	body, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	routingKey := fmt.Sprintf("reservation.%s.%s", e.Type, e.ReservationID)

	return n.breaker.Call(ctx, func() error {
		return n.ch.PublishWithContext(
			ctx,
			n.exchange,
			routingKey,
			false,
			false,
			amqp.Publishing{
				ContentType: "application/json",
				Timestamp:   e.OccurredAt,
				Body:        body,
			},
		)
	})
}

func (n *RabbitNotifier) Close() error {
	if n == nil {
		return nil
	}
	if n.ch != nil {
		_ = n.ch.Close()
	}
	if n.conn != nil {
		return n.conn.Close()
	}
	return nil
}
