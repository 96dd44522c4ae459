// Package notify publishes lead events over AMQP. Delivery is best-effort:
// the capture endpoint succeeds even when the broker is down.
package notify

import (
	"encoding/json"
	"time"

	"github.com/streadway/amqp"

	clinicflow "github.com/clinicflow/backend"
)

// QueueName is the durable queue shared with cmd/notifier.
const QueueName = "lead_captured"

// LeadEvent is the wire payload for a captured lead.
type LeadEvent struct {
	LeadID     string    `json:"lead_id"`
	ProjectID  string    `json:"project_id"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone,omitempty"`
	Email      string    `json:"email,omitempty"`
	Source     string    `json:"source,omitempty"`
	CapturedAt time.Time `json:"captured_at"`
}

type Publisher struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

// NewPublisher dials the broker and declares the durable lead queue.
func NewPublisher(url string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	if _, err := ch.QueueDeclare(QueueName, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	return &Publisher{conn: conn, ch: ch}, nil
}

func (p *Publisher) LeadCaptured(lead clinicflow.Lead) error {
	body, err := json.Marshal(LeadEvent{
		LeadID:     lead.ID,
		ProjectID:  lead.ProjectID,
		Name:       lead.Name,
		Phone:      lead.Phone,
		Email:      lead.Email,
		Source:     lead.Source,
		CapturedAt: lead.CreatedAt,
	})
	if err != nil {
		return err
	}

	return p.ch.Publish("", QueueName, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
}

func (p *Publisher) Close() error {
	p.ch.Close()
	return p.conn.Close()
}
