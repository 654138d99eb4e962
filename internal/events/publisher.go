package events

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/vuteanh/bookmarks/backend/internal/models"
)

// SubjectActivityRecorded carries every action that survives deduplication.
const SubjectActivityRecorded = "activity.recorded"

// ActivityEvent is the payload published when a new action lands in the stream
type ActivityEvent struct {
	ActionID   uint      `json:"action_id"`
	UserID     uint      `json:"user_id"`
	Verb       string    `json:"verb"`
	TargetType string    `json:"target_type,omitempty"`
	TargetID   uint      `json:"target_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Publisher pushes activity events to NATS. A nil *Publisher is valid and
// drops events, so the server runs without a broker configured.
type Publisher struct {
	conn *nats.Conn
}

// Connect dials NATS and returns a Publisher
func Connect(url string) (*Publisher, error) {
	opts := []nats.Option{
		nats.Name("bookmarks-backend"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				log.Printf("NATS disconnected: %v", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Printf("NATS reconnected to %s", nc.ConnectedUrl())
		}),
	}

	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	log.Printf("Connected to NATS at %s", nc.ConnectedUrl())
	return &Publisher{conn: nc}, nil
}

// Close drains the connection
func (p *Publisher) Close() {
	if p != nil && p.conn != nil {
		p.conn.Close()
	}
}

// ActivityRecorded publishes the action as a JSON event. Publishing is
// fire-and-forget: a broker outage must not fail the user action that
// produced the event.
func (p *Publisher) ActivityRecorded(action *models.Action) {
	if p == nil {
		return
	}

	payload, err := json.Marshal(ActivityEvent{
		ActionID:   action.ID,
		UserID:     action.UserID,
		Verb:       action.Verb,
		TargetType: action.TargetType,
		TargetID:   action.TargetID,
		CreatedAt:  action.CreatedAt,
	})
	if err != nil {
		log.Printf("Failed to marshal activity event: %v", err)
		return
	}

	if err := p.conn.Publish(SubjectActivityRecorded, payload); err != nil {
		log.Printf("Failed to publish activity event: %v", err)
	}
}
