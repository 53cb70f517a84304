package amqp

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"fishledger/internal/core"
)

// EventType names the ledger mutation a message reports.
type EventType string

const (
	EventMonthCreated  EventType = "month_created"
	EventMonthDeleted  EventType = "month_deleted"
	EventSessionLogged EventType = "session_logged"
)

// LedgerEventMessage is published after every successful ledger mutation.
// Session is only set for EventSessionLogged. ID lets consumers drop
// redeliveries.
type LedgerEventMessage struct {
	ID        string        `json:"id"`
	Type      EventType     `json:"type"`
	MonthKey  string        `json:"month_key"`
	Session   *core.Session `json:"session,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}

// NewLedgerEventMessage creates a message stamped with the current UTC time.
func NewLedgerEventMessage(t EventType, monthKey string, session *core.Session) *LedgerEventMessage {
	return &LedgerEventMessage{
		ID:        uuid.NewString(),
		Type:      t,
		MonthKey:  monthKey,
		Session:   session,
		Timestamp: time.Now().UTC(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *LedgerEventMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// LedgerEventMessageFromJSON creates a message from JSON bytes
func LedgerEventMessageFromJSON(data []byte) (*LedgerEventMessage, error) {
	var msg LedgerEventMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
