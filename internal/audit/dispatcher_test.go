package audit

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/calendar-scheduler/internal/models"
)

type recordingSink struct {
	mu   sync.Mutex
	logs []models.AuditLog
}

func (s *recordingSink) SaveAuditLog(_ context.Context, log *models.AuditLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logs = append(s.logs, *log)
	return nil
}

func TestDispatcherPersistsEvents(t *testing.T) {
	sink := &recordingSink{}
	d := NewDispatcher(New(sink), zerolog.Nop())

	d.Dispatch(Event{
		UserID:   "u1",
		Action:   ActionAvailabilityReplaced,
		Entity:   "availability",
		EntityID: "u1",
		Metadata: map[string]int{"count": 2},
	})
	d.Close()

	require.Len(t, sink.logs, 1)
	got := sink.logs[0]
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, ActionAvailabilityReplaced, got.Action)

	var meta map[string]int
	require.NoError(t, json.Unmarshal([]byte(got.Metadata), &meta))
	assert.Equal(t, 2, meta["count"])
}

func TestDispatcherCloseIsIdempotent(t *testing.T) {
	d := NewDispatcher(New(&recordingSink{}), zerolog.Nop())
	d.Close()
	d.Close()
}
