package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/rafaelqm2/outreach-hub/internal/entity"
)

var outcomesIngested = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "email_outcomes_ingested_total",
		Help: "Total number of email outcome events ingested",
	},
	[]string{"event"},
)

// OutcomeEvent is what the external automation workflow publishes per lead:
// the email record plus the outcome that produced it.
type OutcomeEvent struct {
	Event string       `json:"event"` // sent, replied, bounced
	Email entity.Email `json:"email"`
}

// Worker consumes outcome events and upserts email records. This is the only
// writer of email rows inside this service; review fields stay untouched.
type Worker struct {
	Channel *amqp.Channel
	Emails  entity.EmailRepositoryInterface
	Logger  *zap.Logger
}

func NewWorker(ch *amqp.Channel, emails entity.EmailRepositoryInterface, logger *zap.Logger) *Worker {
	return &Worker{
		Channel: ch,
		Emails:  emails,
		Logger:  logger,
	}
}

func (w *Worker) Start(queueName string) error {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return fmt.Errorf("register consumer: %w", err)
	}

	w.Logger.Info("outcome worker running", zap.String("queue", queueName))

	for d := range msgs {
		if err := w.Process(context.Background(), d.Body); err != nil {
			w.Logger.Error("outcome rejected", zap.Error(err))
			// Malformed or unprocessable events go to the DLQ; requeueing
			// them would loop forever.
			d.Nack(false, false)
			continue
		}
		d.Ack(false)
	}

	return nil
}

// Process validates and persists one outcome event.
func (w *Worker) Process(ctx context.Context, body []byte) error {
	var event OutcomeEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("invalid outcome json: %w", err)
	}

	switch event.Event {
	case entity.EmailStatusSent, entity.EmailStatusReplied, entity.EmailStatusBounced:
	default:
		return fmt.Errorf("unknown outcome event %q", event.Event)
	}

	email := event.Email
	if email.ID == "" || email.Email == "" {
		return fmt.Errorf("outcome event missing record identity")
	}
	email.Status = event.Event

	if event.Event == entity.EmailStatusReplied && email.LastReplyAt == nil {
		now := time.Now()
		email.LastReplyAt = &now
	}

	if err := w.Emails.Upsert(ctx, &email); err != nil {
		return fmt.Errorf("persist outcome: %w", err)
	}

	outcomesIngested.WithLabelValues(event.Event).Inc()
	w.Logger.Info("outcome ingested",
		zap.String("email_id", email.ID),
		zap.String("event", event.Event))

	return nil
}
