package relay

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/flashcard-bridge/internal/logger"
	"github.com/MKhiriev/flashcard-bridge/internal/service"
	"github.com/MKhiriev/flashcard-bridge/models"
	"github.com/stretchr/testify/require"
)

const (
	testRecordID = "5f1a2b3c4d5e6f7a8b9c0d1e"
	testSchoolID = "60aa11bb22cc33dd44ee55ff"
)

// spyChannel records every posted message.
type spyChannel struct {
	id string

	mu   sync.Mutex
	msgs []models.Outbound
}

func newSpyChannel(id string) *spyChannel {
	return &spyChannel{id: id}
}

func (c *spyChannel) ID() string { return c.id }

func (c *spyChannel) Post(_ context.Context, msg models.Outbound) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.msgs = append(c.msgs, msg)
	return nil
}

func (c *spyChannel) all() []models.Outbound {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.Outbound(nil), c.msgs...)
}

func (c *spyChannel) ofType(t models.MessageType) []models.Outbound {
	var out []models.Outbound
	for _, m := range c.all() {
		if m.OutboundHeader().Type == t {
			out = append(out, m)
		}
	}
	return out
}

func frame(t *testing.T, v map[string]any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

var testProfile = models.UserProfile{
	ID:     "user-1",
	Email:  "student@example.com",
	Name:   "Student",
	Roles:  []string{"object_6"},
	School: []any{map[string]any{"id": testSchoolID, "identifier": "Some School"}},
}

var testNow = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

// newTestRouter returns a router over records with ch attached.
func newTestRouter(t *testing.T, records service.RecordClient, token string) (*Router, *spyChannel) {
	t.Helper()
	tokens := NewTokenStore(token)
	r := NewRouter(RouterConfig{
		AppID:                "app-1",
		Profile:              testProfile,
		SaveSettleDelay:      5 * time.Millisecond,
		AddToBankSettleDelay: 10 * time.Millisecond,
	}, records, tokens, logger.Nop())
	r.now = func() time.Time { return testNow }
	t.Cleanup(r.Close)

	ch := newSpyChannel("endpoint-1")
	r.Attach(ch)
	return r, ch
}

func emptyRecord(id string) *models.UserRecord {
	rec := &models.UserRecord{
		RecordID:      id,
		UserID:        "user-1",
		Cards:         []models.Card{},
		ColorMapping:  map[string]any{},
		TopicLists:    []models.TopicList{},
		TopicMetadata: []models.TopicMetadata{},
	}
	rec.SpacedRepetition.Normalize()
	return rec
}
