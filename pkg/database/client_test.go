package database

import (
	"context"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helmsman-ai/helmsman/test/util"
)

func newTestClient(t *testing.T) *Client {
	entClient, db := util.SetupTestDatabase(t)
	return NewClientFromEnt(entClient, db)
}

func TestHealth(t *testing.T) {
	client := newTestClient(t)

	status, err := Health(context.Background(), client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", status.Status)
	assert.GreaterOrEqual(t, status.OpenConnections, 0)
}

func TestCreateGINIndexesIsIdempotent(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	drv := entsql.OpenDB(dialect.Postgres, client.DB())
	require.NoError(t, CreateGINIndexes(ctx, drv))
	require.NoError(t, CreateGINIndexes(ctx, drv), "second run must be a no-op")
}

func TestClientPersistsMissions(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	created, err := client.Mission.Create().
		SetID("m-db-test").
		SetObjective("verify the wrapped client reaches the schema").
		Save(ctx)
	require.NoError(t, err)

	fetched, err := client.Mission.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "verify the wrapped client reaches the schema", fetched.Objective)
	assert.Equal(t, "pending", string(fetched.Status))
}
