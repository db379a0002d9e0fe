package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helmsman-ai/helmsman/ent/mission"
	"github.com/helmsman-ai/helmsman/ent/missionevent"
	"github.com/helmsman-ai/helmsman/ent/outboxentry"
	"github.com/helmsman-ai/helmsman/ent/task"
	"github.com/helmsman-ai/helmsman/pkg/events"
	"github.com/helmsman-ai/helmsman/pkg/models"
	testdb "github.com/helmsman-ai/helmsman/test/database"
)

func TestMissionService_CreateMission(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewMissionService(client.Client)
	ctx := context.Background()

	t.Run("creates mission with mission_created event and outbox entry", func(t *testing.T) {
		req := models.CreateMissionRequest{
			MissionID: uuid.New().String(),
			Objective: "summarise the quarterly report",
			Initiator: "user@example.com",
			Priority:  "high",
		}

		m, err := service.CreateMission(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, req.MissionID, m.ID)
		assert.Equal(t, mission.StatusPending, m.Status)

		evts, err := client.MissionEvent.Query().
			Where(missionevent.MissionIDEQ(m.ID)).
			All(ctx)
		require.NoError(t, err)
		require.Len(t, evts, 1)
		assert.Equal(t, 1, evts[0].Sequence)
		assert.Equal(t, events.EventTypeMissionCreated, evts[0].EventType)

		entries, err := client.OutboxEntry.Query().
			Where(outboxentry.MissionIDEQ(m.ID)).
			All(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, outboxentry.StatusPending, entries[0].Status)
		assert.Equal(t, 1, entries[0].Sequence)
	})

	t.Run("validates required fields", func(t *testing.T) {
		_, err := service.CreateMission(ctx, models.CreateMissionRequest{Objective: "o"})
		assert.True(t, IsValidationError(err))

		_, err = service.CreateMission(ctx, models.CreateMissionRequest{MissionID: "m"})
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects duplicate mission_id", func(t *testing.T) {
		req := models.CreateMissionRequest{
			MissionID: uuid.New().String(),
			Objective: "dedupe check",
		}
		_, err := service.CreateMission(ctx, req)
		require.NoError(t, err)

		_, err = service.CreateMission(ctx, req)
		assert.Equal(t, ErrAlreadyExists, err)
	})

	t.Run("idempotency key returns existing mission", func(t *testing.T) {
		key := uuid.New().String()
		first, err := service.CreateMission(ctx, models.CreateMissionRequest{
			MissionID:      uuid.New().String(),
			Objective:      "idempotent create",
			IdempotencyKey: key,
		})
		require.NoError(t, err)

		// Different mission_id, same key — the original wins.
		second, err := service.CreateMission(ctx, models.CreateMissionRequest{
			MissionID:      uuid.New().String(),
			Objective:      "idempotent create",
			IdempotencyKey: key,
		})
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)

		count, err := client.MissionEvent.Query().
			Where(missionevent.MissionIDEQ(first.ID)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count, "replayed create must not append events")
	})
}

func TestMissionService_Lifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewMissionService(client.Client)
	ctx := context.Background()

	create := func(t *testing.T) string {
		m, err := service.CreateMission(ctx, models.CreateMissionRequest{
			MissionID: uuid.New().String(),
			Objective: "lifecycle test",
		})
		require.NoError(t, err)
		return m.ID
	}

	t.Run("pending to running to success", func(t *testing.T) {
		id := create(t)

		m, err := service.MarkRunning(ctx, id, "node-1")
		require.NoError(t, err)
		assert.Equal(t, mission.StatusRunning, m.Status)
		require.NotNil(t, m.NodeID)
		assert.Equal(t, "node-1", *m.NodeID)
		assert.NotNil(t, m.StartedAt)

		m, err = service.CompleteMission(ctx, id, models.CompleteMissionRequest{
			Status:  "success",
			Outcome: "approved",
			Result:  map[string]any{"summary": "done"},
		})
		require.NoError(t, err)
		assert.Equal(t, mission.StatusSuccess, m.Status)
		assert.NotNil(t, m.CompletedAt)

		// Stream: mission_created, status_change, mission_completed — gap-free.
		evts, err := client.MissionEvent.Query().
			Where(missionevent.MissionIDEQ(id)).
			Order(missionevent.BySequence()).
			All(ctx)
		require.NoError(t, err)
		require.Len(t, evts, 3)
		for i, e := range evts {
			assert.Equal(t, i+1, e.Sequence)
		}
		assert.Equal(t, events.EventTypeMissionCompleted, evts[2].EventType)
	})

	t.Run("rejects invalid transitions", func(t *testing.T) {
		id := create(t)

		// pending → success skips running.
		_, err := service.CompleteMission(ctx, id, models.CompleteMissionRequest{Status: "success"})
		assert.True(t, IsInvalidTransition(err))

		_, err = service.MarkRunning(ctx, id, "node-1")
		require.NoError(t, err)

		// running → running is not a transition.
		_, err = service.MarkRunning(ctx, id, "node-2")
		assert.True(t, IsInvalidTransition(err))
	})

	t.Run("terminal status is final", func(t *testing.T) {
		id := create(t)
		_, err := service.MarkRunning(ctx, id, "node-1")
		require.NoError(t, err)
		_, err = service.CompleteMission(ctx, id, models.CompleteMissionRequest{Status: "failed", Outcome: "error"})
		require.NoError(t, err)

		_, err = service.CompleteMission(ctx, id, models.CompleteMissionRequest{Status: "success"})
		assert.True(t, IsInvalidTransition(err))
	})

	t.Run("cancel pending mission", func(t *testing.T) {
		id := create(t)

		m, err := service.CancelMission(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, mission.StatusFailed, m.Status)
		require.NotNil(t, m.Outcome)
		assert.Equal(t, "cancelled", *m.Outcome)
	})

	t.Run("cancel terminal mission returns ErrNotCancellable", func(t *testing.T) {
		id := create(t)
		_, err := service.CancelMission(ctx, id)
		require.NoError(t, err)

		_, err = service.CancelMission(ctx, id)
		assert.ErrorIs(t, err, ErrNotCancellable)
	})

	t.Run("unknown mission returns ErrNotFound", func(t *testing.T) {
		_, err := service.GetMission(ctx, "no-such-mission", false)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestMissionService_PlanAndTasks(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewMissionService(client.Client)
	ctx := context.Background()

	m, err := service.CreateMission(ctx, models.CreateMissionRequest{
		MissionID: uuid.New().String(),
		Objective: "plan test",
	})
	require.NoError(t, err)
	_, err = service.MarkRunning(ctx, m.ID, "node-1")
	require.NoError(t, err)

	plan := &models.Plan{
		StrategyName: "direct",
		Steps: []models.PlanStep{
			{Name: "fetch", Description: "fetch the page", ToolHint: "http_get"},
			{Name: "summarise", Description: "summarise the content"},
		},
	}

	require.NoError(t, service.RecordPlan(ctx, m.ID, 0, plan, []string{"h1"}))

	tasks, err := client.Task.Query().
		Where(task.MissionIDEQ(m.ID)).
		Order(task.ByOrdinal()).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "fetch", tasks[0].Name)
	assert.Equal(t, task.StatusPending, tasks[0].Status)

	// Re-plan replaces tasks.
	replan := &models.Plan{
		StrategyName: "revised",
		Steps:        []models.PlanStep{{Name: "mirror", Description: "use the mirror"}},
	}
	require.NoError(t, service.RecordPlan(ctx, m.ID, 1, replan, []string{"h1", "h2"}))

	tasks, err = client.Task.Query().Where(task.MissionIDEQ(m.ID)).All(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "mirror", tasks[0].Name)

	updated, err := service.GetMission(ctx, m.ID, false)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Iteration)
	assert.Equal(t, []string{"h1", "h2"}, updated.PlanHashes)

	// Record a step result.
	require.NoError(t, service.RecordTaskResult(ctx, m.ID, 0, models.StepResult{
		Name:   "mirror",
		Status: "success",
		Result: map[string]any{"bytes": 1024},
	}))

	tsk, err := client.Task.Query().
		Where(task.MissionIDEQ(m.ID), task.OrdinalEQ(0)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, task.StatusSuccess, tsk.Status)

	last, err := client.MissionEvent.Query().
		Where(missionevent.MissionIDEQ(m.ID)).
		Order(missionevent.BySequence()).
		All(ctx)
	require.NoError(t, err)
	assert.Equal(t, events.EventTypeTaskCompleted, last[len(last)-1].EventType)
}

func TestMissionService_EmitEvent(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewMissionService(client.Client)
	ctx := context.Background()

	m, err := service.CreateMission(ctx, models.CreateMissionRequest{
		MissionID: uuid.New().String(),
		Objective: "brain events",
	})
	require.NoError(t, err)

	require.NoError(t, service.EmitEvent(ctx, m.ID, events.EventTypeRunStarted, map[string]any{
		"run_id":    m.ID + ":0",
		"iteration": 0,
	}))
	require.NoError(t, service.EmitEvent(ctx, m.ID, events.EventTypePhaseStart, map[string]any{
		"run_id": m.ID + ":0",
		"phase":  "CONTEXT",
	}))

	evts, err := client.MissionEvent.Query().
		Where(missionevent.MissionIDEQ(m.ID)).
		Order(missionevent.BySequence()).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, evts, 3)
	assert.Equal(t, events.EventTypeRunStarted, evts[1].EventType)
	assert.Equal(t, 3, evts[2].Sequence)

	err = service.EmitEvent(ctx, "no-such-mission", events.EventTypeRunStarted, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEventService_GetEventsSince(t *testing.T) {
	client := testdb.NewTestClient(t)
	missions := NewMissionService(client.Client)
	eventsSvc := NewEventService(client.Client)
	ctx := context.Background()

	m, err := missions.CreateMission(ctx, models.CreateMissionRequest{
		MissionID: uuid.New().String(),
		Objective: "catch-up test",
	})
	require.NoError(t, err)
	_, err = missions.MarkRunning(ctx, m.ID, "node-1")
	require.NoError(t, err)
	require.NoError(t, missions.EmitEvent(ctx, m.ID, events.EventTypeRunStarted, map[string]any{"iteration": 0}))

	all, err := eventsSvc.GetEventsSince(ctx, m.ID, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)

	tail, err := eventsSvc.GetEventsSince(ctx, m.ID, 2)
	require.NoError(t, err)
	require.Len(t, tail, 1)
	assert.Equal(t, 3, tail[0].Sequence)

	latest, err := eventsSvc.LatestSequence(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, latest)

	latest, err = eventsSvc.LatestSequence(ctx, "no-such-mission")
	require.NoError(t, err)
	assert.Equal(t, 0, latest)
}
