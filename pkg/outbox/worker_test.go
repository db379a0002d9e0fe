package outbox

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helmsman-ai/helmsman/ent/outboxentry"
	"github.com/helmsman-ai/helmsman/pkg/events"
	"github.com/helmsman-ai/helmsman/pkg/models"
	"github.com/helmsman-ai/helmsman/pkg/services"
	testdb "github.com/helmsman-ai/helmsman/test/database"
)

// fakePublisher records notifications and can fail on demand.
type fakePublisher struct {
	mu       sync.Mutex
	notified []notification
	failOn   map[string]int // channel → number of failures to inject
}

type notification struct {
	channel string
	payload string
}

func (p *fakePublisher) Notify(_ context.Context, channel string, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.failOn[channel] > 0 {
		p.failOn[channel]--
		return errors.New("injected publish failure")
	}
	p.notified = append(p.notified, notification{channel, string(payload)})
	return nil
}

func (p *fakePublisher) channels() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.notified))
	for i, n := range p.notified {
		out[i] = n.channel
	}
	return out
}

func TestWorker_DrainBatch(t *testing.T) {
	client := testdb.NewTestClient(t)
	missions := services.NewMissionService(client.Client)
	ctx := context.Background()

	m, err := missions.CreateMission(ctx, models.CreateMissionRequest{
		MissionID: uuid.New().String(),
		Objective: "drain test",
	})
	require.NoError(t, err)
	require.NoError(t, missions.EmitEvent(ctx, m.ID, events.EventTypeRunStarted, map[string]any{"iteration": 0}))

	pub := &fakePublisher{}
	w := NewWorker(client.Client, pub, DefaultConfig())

	n, err := w.DrainBatch(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// mission_created goes to mission + global channels; run_started is
	// mission-only.
	assert.Equal(t, []string{
		events.MissionChannel(m.ID),
		events.GlobalMissionsChannel,
		events.MissionChannel(m.ID),
	}, pub.channels())

	pending, err := client.OutboxEntry.Query().
		Where(outboxentry.StatusEQ(outboxentry.StatusPending)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, pending)

	processed, err := client.OutboxEntry.Query().
		Where(outboxentry.StatusEQ(outboxentry.StatusProcessed)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, processed, 2)
	for _, e := range processed {
		assert.NotNil(t, e.ProcessedAt)
	}

	// Second drain finds nothing.
	n, err = w.DrainBatch(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestWorker_RetriesFailedPublish(t *testing.T) {
	client := testdb.NewTestClient(t)
	missions := services.NewMissionService(client.Client)
	ctx := context.Background()

	m, err := missions.CreateMission(ctx, models.CreateMissionRequest{
		MissionID: uuid.New().String(),
		Objective: "retry test",
	})
	require.NoError(t, err)

	pub := &fakePublisher{failOn: map[string]int{events.MissionChannel(m.ID): 1}}
	cfg := DefaultConfig()
	cfg.MaxRetries = 3
	w := NewWorker(client.Client, pub, cfg)

	n, err := w.DrainBatch(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	entry, err := client.OutboxEntry.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, outboxentry.StatusPending, entry.Status)
	assert.Equal(t, 1, entry.RetryCount)

	// Next drain succeeds and marks it processed.
	n, err = w.DrainBatch(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	entry, err = client.OutboxEntry.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, outboxentry.StatusProcessed, entry.Status)
}

func TestWorker_DeadLettersAfterMaxRetries(t *testing.T) {
	client := testdb.NewTestClient(t)
	missions := services.NewMissionService(client.Client)
	ctx := context.Background()

	m, err := missions.CreateMission(ctx, models.CreateMissionRequest{
		MissionID: uuid.New().String(),
		Objective: "dead letter test",
	})
	require.NoError(t, err)

	pub := &fakePublisher{failOn: map[string]int{events.MissionChannel(m.ID): 10}}
	cfg := DefaultConfig()
	cfg.MaxRetries = 2
	w := NewWorker(client.Client, pub, cfg)

	for i := 0; i < 2; i++ {
		_, err := w.DrainBatch(ctx)
		require.NoError(t, err)
	}

	entry, err := client.OutboxEntry.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, outboxentry.StatusFailed, entry.Status)
	assert.Equal(t, 2, entry.RetryCount)

	// Dead-lettered entries are no longer claimed.
	n, err := w.DrainBatch(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestWorker_OrderPreservedAfterFailure(t *testing.T) {
	client := testdb.NewTestClient(t)
	missions := services.NewMissionService(client.Client)
	ctx := context.Background()

	m, err := missions.CreateMission(ctx, models.CreateMissionRequest{
		MissionID: uuid.New().String(),
		Objective: "ordering test",
	})
	require.NoError(t, err)
	require.NoError(t, missions.EmitEvent(ctx, m.ID, events.EventTypeRunStarted, map[string]any{"iteration": 0}))

	// First publish to the mission channel fails; the second entry must not
	// jump ahead of it.
	pub := &fakePublisher{failOn: map[string]int{events.MissionChannel(m.ID): 1}}
	w := NewWorker(client.Client, pub, DefaultConfig())

	_, err = w.DrainBatch(ctx)
	require.NoError(t, err)
	assert.Empty(t, pub.channels(), "no frames published while sequence 1 is stuck")

	_, err = w.DrainBatch(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{
		events.MissionChannel(m.ID),
		events.GlobalMissionsChannel,
		events.MissionChannel(m.ID),
	}, pub.channels())
}
