// Package e2e exercises the event fabric end to end: the transactional
// outbox, the PostgreSQL NOTIFY/LISTEN bridge, and multi-replica fanout over
// a real database.
package e2e

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helmsman-ai/helmsman/pkg/bus"
	"github.com/helmsman-ai/helmsman/pkg/events"
	"github.com/helmsman-ai/helmsman/pkg/models"
	"github.com/helmsman-ai/helmsman/pkg/outbox"
	"github.com/helmsman-ai/helmsman/pkg/services"
	testdb "github.com/helmsman-ai/helmsman/test/database"
)

// replica bundles the per-node moving parts of the fabric.
type replica struct {
	bus      *bus.Bus
	listener *events.NotifyListener
	missions *services.MissionService
}

func startReplica(t *testing.T, shared *testdb.SharedTestDB) *replica {
	t.Helper()

	client := shared.NewClient(t)
	b := bus.New(64)
	listener := events.NewNotifyListener(shared.ConnString(), b)
	require.NoError(t, listener.Start(context.Background()))
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		listener.Stop(ctx)
	})

	return &replica{
		bus:      b,
		listener: listener,
		missions: services.NewMissionService(client.Client),
	}
}

func waitForMessage(t *testing.T, sub *bus.Subscription, timeout time.Duration) bus.Message {
	t.Helper()
	select {
	case msg := <-sub.C:
		return msg
	case <-time.After(timeout):
		t.Fatal("timed out waiting for bus message")
		return bus.Message{}
	}
}

func TestOutboxDeliversAcrossReplicas(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	ctx := context.Background()

	// Replica A owns the write path and the outbox drain; replica B only
	// listens. Both must observe the committed event.
	replicaA := startReplica(t, shared)
	replicaB := startReplica(t, shared)

	drainClient := shared.NewClient(t)
	worker := outbox.NewWorker(drainClient.Client,
		events.NewNotifyPublisher(drainClient.DB()), outbox.DefaultConfig())

	missionID := uuid.NewString()
	m, err := replicaA.missions.CreateMission(ctx, models.CreateMissionRequest{
		MissionID: missionID,
		Objective: "observe me from both replicas",
		Initiator: "e2e",
	})
	require.NoError(t, err)

	channel := events.MissionChannel(m.ID)
	subA := replicaA.bus.Subscribe(channel)
	subB := replicaB.bus.Subscribe(channel)
	require.NoError(t, replicaA.listener.Subscribe(ctx, channel))
	require.NoError(t, replicaB.listener.Subscribe(ctx, channel))

	// Drain after both LISTENs are in place so neither replica can miss the
	// notification.
	published, err := worker.DrainBatch(ctx)
	require.NoError(t, err)
	require.Greater(t, published, 0)

	for name, sub := range map[string]*bus.Subscription{"A": subA, "B": subB} {
		msg := waitForMessage(t, sub, 10*time.Second)
		assert.Equal(t, m.ID, msg.MissionID, "replica %s", name)
		assert.Equal(t, events.EventTypeMissionCreated, msg.Type, "replica %s", name)
		assert.Equal(t, 1, msg.Sequence, "replica %s", name)

		var envelope map[string]any
		require.NoError(t, json.Unmarshal(msg.Payload, &envelope))
		assert.Equal(t, events.EnvelopeMissionEvent, envelope["type"], "replica %s", name)
	}
}

func TestDrainedEventsMatchPersistedLog(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	ctx := context.Background()

	node := startReplica(t, shared)
	client := shared.NewClient(t)
	eventsSvc := services.NewEventService(client.Client)
	worker := outbox.NewWorker(client.Client,
		events.NewNotifyPublisher(client.DB()), outbox.DefaultConfig())

	missionID := uuid.NewString()
	m, err := node.missions.CreateMission(ctx, models.CreateMissionRequest{
		MissionID: missionID,
		Objective: "compare live stream against the log",
	})
	require.NoError(t, err)
	require.NoError(t, node.missions.EmitEvent(ctx, m.ID, events.EventTypeStatusChange,
		map[string]any{"status": "running"}))

	channel := events.MissionChannel(m.ID)
	sub := node.bus.Subscribe(channel)
	require.NoError(t, node.listener.Subscribe(ctx, channel))

	_, err = worker.DrainBatch(ctx)
	require.NoError(t, err)

	first := waitForMessage(t, sub, 10*time.Second)
	second := waitForMessage(t, sub, 10*time.Second)
	assert.Equal(t, 1, first.Sequence)
	assert.Equal(t, 2, second.Sequence, "delivery must follow the persisted order")

	rows, err := eventsSvc.GetEventsSince(ctx, m.ID, 0)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, events.EventTypeMissionCreated, rows[0].EventType)
	assert.Equal(t, events.EventTypeStatusChange, rows[1].EventType)
}

func TestUnsubscribedChannelStaysSilent(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	ctx := context.Background()

	node := startReplica(t, shared)
	client := shared.NewClient(t)
	worker := outbox.NewWorker(client.Client,
		events.NewNotifyPublisher(client.DB()), outbox.DefaultConfig())

	m, err := node.missions.CreateMission(ctx, models.CreateMissionRequest{
		MissionID: uuid.NewString(),
		Objective: "nobody is watching",
	})
	require.NoError(t, err)

	// Subscribed to the bus but never LISTENed on the channel: the NOTIFY
	// must not reach this node.
	sub := node.bus.Subscribe(events.MissionChannel(m.ID))

	_, err = worker.DrainBatch(ctx)
	require.NoError(t, err)

	select {
	case msg := <-sub.C:
		t.Fatalf("unexpected message: %+v", msg)
	case <-time.After(2 * time.Second):
	}
}
