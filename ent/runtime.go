// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/helmsman-ai/helmsman/ent/mission"
	"github.com/helmsman-ai/helmsman/ent/missionevent"
	"github.com/helmsman-ai/helmsman/ent/outboxentry"
	"github.com/helmsman-ai/helmsman/ent/schema"
	"github.com/helmsman-ai/helmsman/ent/task"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	missionFields := schema.Mission{}.Fields()
	_ = missionFields
	// missionDescIteration is the schema descriptor for iteration field.
	missionDescIteration := missionFields[9].Descriptor()
	// mission.DefaultIteration holds the default value on creation for the iteration field.
	mission.DefaultIteration = missionDescIteration.Default.(int)
	// missionDescForceResearch is the schema descriptor for force_research field.
	missionDescForceResearch := missionFields[11].Descriptor()
	// mission.DefaultForceResearch holds the default value on creation for the force_research field.
	mission.DefaultForceResearch = missionDescForceResearch.Default.(bool)
	// missionDescCreatedAt is the schema descriptor for created_at field.
	missionDescCreatedAt := missionFields[14].Descriptor()
	// mission.DefaultCreatedAt holds the default value on creation for the created_at field.
	mission.DefaultCreatedAt = missionDescCreatedAt.Default.(func() time.Time)
	// missionDescUpdatedAt is the schema descriptor for updated_at field.
	missionDescUpdatedAt := missionFields[15].Descriptor()
	// mission.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	mission.DefaultUpdatedAt = missionDescUpdatedAt.Default.(func() time.Time)
	// mission.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	mission.UpdateDefaultUpdatedAt = missionDescUpdatedAt.UpdateDefault.(func() time.Time)
	missioneventFields := schema.MissionEvent{}.Fields()
	_ = missioneventFields
	// missioneventDescCreatedAt is the schema descriptor for created_at field.
	missioneventDescCreatedAt := missioneventFields[4].Descriptor()
	// missionevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	missionevent.DefaultCreatedAt = missioneventDescCreatedAt.Default.(func() time.Time)
	outboxentryFields := schema.OutboxEntry{}.Fields()
	_ = outboxentryFields
	// outboxentryDescRetryCount is the schema descriptor for retry_count field.
	outboxentryDescRetryCount := outboxentryFields[5].Descriptor()
	// outboxentry.DefaultRetryCount holds the default value on creation for the retry_count field.
	outboxentry.DefaultRetryCount = outboxentryDescRetryCount.Default.(int)
	// outboxentryDescCreatedAt is the schema descriptor for created_at field.
	outboxentryDescCreatedAt := outboxentryFields[6].Descriptor()
	// outboxentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	outboxentry.DefaultCreatedAt = outboxentryDescCreatedAt.Default.(func() time.Time)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[10].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	// taskDescUpdatedAt is the schema descriptor for updated_at field.
	taskDescUpdatedAt := taskFields[11].Descriptor()
	// task.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	task.DefaultUpdatedAt = taskDescUpdatedAt.Default.(func() time.Time)
	// task.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	task.UpdateDefaultUpdatedAt = taskDescUpdatedAt.UpdateDefault.(func() time.Time)
}
