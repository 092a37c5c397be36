package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLimiterBurstThenDeny(t *testing.T) {
	ctx := context.Background()
	l := NewMemoryLimiter(1, 2)
	fixed := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return fixed }

	for i := 0; i < 2; i++ {
		ok, err := l.Allow(ctx, "1.2.3.4")
		require.NoError(t, err)
		assert.True(t, ok)
	}

	ok, err := l.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.False(t, ok)

	// other keys keep their own bucket
	ok, err = l.Allow(ctx, "5.6.7.8")
	require.NoError(t, err)
	assert.True(t, ok)

	// refills after a second at 1 rps
	fixed = fixed.Add(time.Second)
	ok, err = l.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryLimiterSweep(t *testing.T) {
	ctx := context.Background()
	l := NewMemoryLimiter(1, 1)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	_, _ = l.Allow(ctx, "old")
	now = now.Add(5 * time.Minute)
	_, _ = l.Allow(ctx, "fresh")

	l.Sweep(3 * time.Minute)

	assert.NotContains(t, l.entries, "old")
	assert.Contains(t, l.entries, "fresh")
}

func TestNewRedisClientRejectsBadURL(t *testing.T) {
	_, err := NewRedisClient("://nope")
	assert.Error(t, err)
}

// pipelineRecorder captures pipelined commands and fails them before any
// connection is made.
type pipelineRecorder struct {
	cmds [][]interface{}
}

func (h *pipelineRecorder) BeforeProcess(ctx context.Context, _ redis.Cmder) (context.Context, error) {
	return ctx, nil
}

func (h *pipelineRecorder) AfterProcess(context.Context, redis.Cmder) error { return nil }

func (h *pipelineRecorder) BeforeProcessPipeline(ctx context.Context, cmds []redis.Cmder) (context.Context, error) {
	for _, c := range cmds {
		h.cmds = append(h.cmds, c.Args())
	}
	return ctx, errors.New("offline")
}

func (h *pipelineRecorder) AfterProcessPipeline(context.Context, []redis.Cmder) error { return nil }

func TestRedisLimiterSetsExpiryWithCounter(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	defer client.Close()
	rec := &pipelineRecorder{}
	client.AddHook(rec)

	l := NewRedisLimiter(client, 5, time.Minute)
	_, err := l.Allow(context.Background(), "1.2.3.4")
	require.Error(t, err)

	var names []string
	var setArgs []interface{}
	for _, args := range rec.cmds {
		name := strings.ToLower(fmt.Sprint(args[0]))
		names = append(names, name)
		if name == "set" {
			setArgs = args
		}
	}

	// both commands travel in the same pipeline, SET before INCR
	require.Contains(t, names, "set")
	require.Contains(t, names, "incr")
	assert.Less(t, indexOf(names, "set"), indexOf(names, "incr"))
	assert.Contains(t, setArgs, "ratelimit:1.2.3.4")
	assert.Contains(t, setArgs, "nx")
	assert.Contains(t, setArgs, "ex")
}

func indexOf(items []string, want string) int {
	for i, s := range items {
		if s == want {
			return i
		}
	}
	return -1
}
