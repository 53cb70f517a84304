package amqp

import (
	"testing"
	"time"

	"fishledger/internal/core"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerEventMessageJSON(t *testing.T) {
	session := &core.Session{Date: "2025-04-18", FishingLocation: "Velia", SellLocation: "Seoul", Profit: 5000}
	msg := NewLedgerEventMessage(EventSessionLogged, "April 2025", session)
	assert.WithinDuration(t, time.Now(), msg.Timestamp, time.Minute)
	_, err := uuid.Parse(msg.ID)
	require.NoError(t, err)

	body, err := msg.ToJSON()
	require.NoError(t, err)
	assert.Contains(t, string(body), `"type":"session_logged"`)
	assert.Contains(t, string(body), `"fishing_location":"Velia"`)

	back, err := LedgerEventMessageFromJSON(body)
	require.NoError(t, err)
	assert.Equal(t, msg.ID, back.ID)
	assert.Equal(t, msg.Type, back.Type)
	assert.Equal(t, msg.MonthKey, back.MonthKey)
	assert.Equal(t, *session, *back.Session)
	assert.True(t, msg.Timestamp.Equal(back.Timestamp))
}

func TestLedgerEventMessageOmitsSession(t *testing.T) {
	body, err := NewLedgerEventMessage(EventMonthDeleted, "May 2025", nil).ToJSON()
	require.NoError(t, err)
	assert.NotContains(t, string(body), "session")
}

func TestLedgerEventMessageIDsAreUnique(t *testing.T) {
	a := NewLedgerEventMessage(EventMonthCreated, "April 2025", nil)
	b := NewLedgerEventMessage(EventMonthCreated, "April 2025", nil)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestLedgerEventMessageFromJSONRejectsGarbage(t *testing.T) {
	_, err := LedgerEventMessageFromJSON([]byte("not json"))
	assert.Error(t, err)
}

func TestCloseWithoutConnection(t *testing.T) {
	c := &Client{}
	assert.NoError(t, c.Close())
}
