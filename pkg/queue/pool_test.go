package queue

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helmsman-ai/helmsman/ent/mission"
	"github.com/helmsman-ai/helmsman/pkg/config"
	"github.com/helmsman-ai/helmsman/pkg/models"
	"github.com/helmsman-ai/helmsman/pkg/services"
	testdb "github.com/helmsman-ai/helmsman/test/database"
)

func testQueueConfig() *config.QueueConfig {
	cfg := config.DefaultQueueConfig()
	cfg.WorkerCount = 2
	cfg.PollInterval = 50 * time.Millisecond
	cfg.PollIntervalJitter = 10 * time.Millisecond
	cfg.MissionTimeout = 5 * time.Second
	cfg.HeartbeatInterval = 100 * time.Millisecond
	return cfg
}

func waitForStatus(t *testing.T, svc *services.MissionService, id string, want mission.Status) {
	t.Helper()
	require.Eventually(t, func() bool {
		m, err := svc.GetMission(context.Background(), id, false)
		return err == nil && m.Status == want
	}, 10*time.Second, 50*time.Millisecond, "mission %s never reached %s", id, want)
}

func TestWorkerPool_ProcessesPendingMissions(t *testing.T) {
	client := testdb.NewTestClient(t)
	missions := services.NewMissionService(client.Client)
	executor := NewStubExecutor()
	ctx := context.Background()

	var ids []string
	for i := 0; i < 3; i++ {
		m, err := missions.CreateMission(ctx, models.CreateMissionRequest{
			MissionID: uuid.New().String(),
			Objective: "pool test",
		})
		require.NoError(t, err)
		ids = append(ids, m.ID)
	}

	pool := NewWorkerPool("node-test", client.Client, testQueueConfig(), missions, executor)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	for _, id := range ids {
		waitForStatus(t, missions, id, mission.StatusSuccess)
	}

	assert.ElementsMatch(t, ids, executor.Executed())

	for _, id := range ids {
		m, err := missions.GetMission(ctx, id, false)
		require.NoError(t, err)
		require.NotNil(t, m.Outcome)
		assert.Equal(t, "approved", *m.Outcome)
		require.NotNil(t, m.NodeID)
		assert.Equal(t, "node-test", *m.NodeID)
	}
}

func TestWorkerPool_CancelRunningMission(t *testing.T) {
	client := testdb.NewTestClient(t)
	missions := services.NewMissionService(client.Client)
	executor := NewStubExecutor()
	executor.Delay = 30 * time.Second
	ctx := context.Background()

	m, err := missions.CreateMission(ctx, models.CreateMissionRequest{
		MissionID: uuid.New().String(),
		Objective: "cancel test",
	})
	require.NoError(t, err)

	pool := NewWorkerPool("node-test", client.Client, testQueueConfig(), missions, executor)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	waitForStatus(t, missions, m.ID, mission.StatusRunning)

	require.Eventually(t, func() bool {
		return pool.CancelMission(m.ID)
	}, 5*time.Second, 50*time.Millisecond)

	waitForStatus(t, missions, m.ID, mission.StatusFailed)

	final, err := missions.GetMission(ctx, m.ID, false)
	require.NoError(t, err)
	require.NotNil(t, final.Outcome)
	assert.Equal(t, "cancelled", *final.Outcome)
}

func TestWorkerPool_Health(t *testing.T) {
	client := testdb.NewTestClient(t)
	missions := services.NewMissionService(client.Client)
	executor := NewStubExecutor()
	ctx := context.Background()

	pool := NewWorkerPool("node-test", client.Client, testQueueConfig(), missions, executor)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	health := pool.Health()
	assert.True(t, health.IsHealthy)
	assert.True(t, health.DBReachable)
	assert.Equal(t, "node-test", health.NodeID)
	assert.Equal(t, 2, health.TotalWorkers)
}

func TestCleanupStartupOrphans(t *testing.T) {
	client := testdb.NewTestClient(t)
	missions := services.NewMissionService(client.Client)
	ctx := context.Background()

	// A mission left running by a previous incarnation of this node.
	mine, err := missions.CreateMission(ctx, models.CreateMissionRequest{
		MissionID: uuid.New().String(),
		Objective: "orphan mine",
	})
	require.NoError(t, err)
	_, err = missions.MarkRunning(ctx, mine.ID, "node-test")
	require.NoError(t, err)

	// A mission legitimately running on another node.
	other, err := missions.CreateMission(ctx, models.CreateMissionRequest{
		MissionID: uuid.New().String(),
		Objective: "orphan other",
	})
	require.NoError(t, err)
	_, err = missions.MarkRunning(ctx, other.ID, "node-other")
	require.NoError(t, err)

	require.NoError(t, CleanupStartupOrphans(ctx, client.Client, missions, "node-test"))

	recovered, err := missions.GetMission(ctx, mine.ID, false)
	require.NoError(t, err)
	assert.Equal(t, mission.StatusFailed, recovered.Status)
	require.NotNil(t, recovered.Outcome)
	assert.Equal(t, "orphaned", *recovered.Outcome)

	untouched, err := missions.GetMission(ctx, other.ID, false)
	require.NoError(t, err)
	assert.Equal(t, mission.StatusRunning, untouched.Status)
}
