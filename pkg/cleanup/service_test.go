package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helmsman-ai/helmsman/ent/mission"
	"github.com/helmsman-ai/helmsman/ent/outboxentry"
	"github.com/helmsman-ai/helmsman/pkg/config"
	"github.com/helmsman-ai/helmsman/pkg/database"
	"github.com/helmsman-ai/helmsman/pkg/models"
	"github.com/helmsman-ai/helmsman/pkg/services"
	testdb "github.com/helmsman-ai/helmsman/test/database"
)

func setup(t *testing.T) (*database.Client, *services.MissionService, *Service) {
	t.Helper()
	client := testdb.NewTestClient(t)
	cfg := &config.RetentionConfig{
		OutboxRetention:    168 * time.Hour,
		EventRetentionDays: 90,
		CleanupInterval:    1 * time.Hour,
	}
	return client, services.NewMissionService(client.Client), NewService(cfg, client.Client)
}

func createMission(t *testing.T, svc *services.MissionService) string {
	t.Helper()
	m, err := svc.CreateMission(context.Background(), models.CreateMissionRequest{
		MissionID: uuid.New().String(),
		Objective: "retention test",
	})
	require.NoError(t, err)
	return m.ID
}

func TestService_PurgesDrainedOutboxEntries(t *testing.T) {
	client, missions, svc := setup(t)
	ctx := context.Background()

	id := createMission(t, missions)

	// Replace the mission_created entry with an aged, drained copy
	// (created_at is immutable).
	_, err := client.OutboxEntry.Delete().
		Where(outboxentry.MissionIDEQ(id)).
		Exec(ctx)
	require.NoError(t, err)
	_, err = client.OutboxEntry.Create().
		SetMissionID(id).
		SetSequence(1).
		SetEventType("mission_created").
		SetStatus(outboxentry.StatusProcessed).
		SetProcessedAt(time.Now()).
		SetCreatedAt(time.Now().Add(-200 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	svc.runAll(ctx)

	count, err := client.OutboxEntry.Query().
		Where(outboxentry.MissionIDEQ(id)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestService_PreservesPendingAndRecentOutboxEntries(t *testing.T) {
	client, missions, svc := setup(t)
	ctx := context.Background()

	pendingID := createMission(t, missions)

	// Pending entries are never purged, even when old.
	_, err := client.OutboxEntry.Delete().
		Where(outboxentry.MissionIDEQ(pendingID)).
		Exec(ctx)
	require.NoError(t, err)
	_, err = client.OutboxEntry.Create().
		SetMissionID(pendingID).
		SetSequence(1).
		SetEventType("mission_created").
		SetCreatedAt(time.Now().Add(-200 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	recentID := createMission(t, missions)
	err = client.OutboxEntry.Update().
		Where(outboxentry.MissionIDEQ(recentID)).
		SetStatus(outboxentry.StatusProcessed).
		SetProcessedAt(time.Now()).
		Exec(ctx)
	require.NoError(t, err)

	svc.runAll(ctx)

	for _, id := range []string{pendingID, recentID} {
		count, err := client.OutboxEntry.Query().
			Where(outboxentry.MissionIDEQ(id)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	}
}

func TestService_PurgesOldTerminalEventLogs(t *testing.T) {
	client, missions, svc := setup(t)
	ctx := context.Background()

	oldID := createMission(t, missions)
	err := client.Mission.UpdateOneID(oldID).
		SetStatus(mission.StatusSuccess).
		SetCompletedAt(time.Now().AddDate(0, 0, -120)).
		Exec(ctx)
	require.NoError(t, err)

	activeID := createMission(t, missions)

	svc.runAll(ctx)

	eventsSvc := services.NewEventService(client.Client)

	oldEvents, err := eventsSvc.GetEventsSince(ctx, oldID, 0)
	require.NoError(t, err)
	assert.Empty(t, oldEvents)

	activeEvents, err := eventsSvc.GetEventsSince(ctx, activeID, 0)
	require.NoError(t, err)
	assert.Len(t, activeEvents, 1)

	// Mission rows survive event purge.
	_, err = missions.GetMission(ctx, oldID, false)
	require.NoError(t, err)
}
