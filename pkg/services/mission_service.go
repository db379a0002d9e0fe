package services

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/helmsman-ai/helmsman/ent"
	"github.com/helmsman-ai/helmsman/ent/mission"
	"github.com/helmsman-ai/helmsman/ent/missionevent"
	"github.com/helmsman-ai/helmsman/ent/task"
	"github.com/helmsman-ai/helmsman/pkg/events"
	"github.com/helmsman-ai/helmsman/pkg/models"
)

// validTransitions is the mission lifecycle DAG. Terminal statuses have no
// outgoing edges.
var validTransitions = map[mission.Status][]mission.Status{
	mission.StatusPending: {mission.StatusRunning, mission.StatusFailed},
	mission.StatusRunning: {mission.StatusSuccess, mission.StatusPartialSuccess, mission.StatusFailed},
}

func transitionAllowed(from, to mission.Status) bool {
	for _, s := range validTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// MissionService manages mission lifecycle. Every mutation writes the domain
// row, the per-mission event log entry, and the outbox entry in one
// transaction, so the event stream can never diverge from mission state.
type MissionService struct {
	client *ent.Client
}

// NewMissionService creates a new MissionService
func NewMissionService(client *ent.Client) *MissionService {
	return &MissionService{client: client}
}

// CreateMission creates a new mission in pending status and records the
// mission_created event. A request carrying an idempotency key that matches
// an existing mission returns that mission instead of creating a duplicate.
func (s *MissionService) CreateMission(httpCtx context.Context, req models.CreateMissionRequest) (*ent.Mission, error) {
	if req.MissionID == "" {
		return nil, NewValidationError("mission_id", "required")
	}
	if req.Objective == "" {
		return nil, NewValidationError("objective", "required")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if req.IdempotencyKey != "" {
		existing, err := s.client.Mission.Query().
			Where(mission.IdempotencyKeyEQ(req.IdempotencyKey)).
			Only(ctx)
		if err == nil {
			return existing, nil
		}
		if !ent.IsNotFound(err) {
			return nil, fmt.Errorf("failed to check idempotency key: %w", err)
		}
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	builder := tx.Mission.Create().
		SetID(req.MissionID).
		SetObjective(req.Objective).
		SetStatus(mission.StatusPending).
		SetForceResearch(req.ForceResearch)

	if req.Initiator != "" {
		builder.SetInitiator(req.Initiator)
	}
	if req.Priority != "" {
		builder.SetPriority(req.Priority)
	}
	if req.Context != nil {
		builder.SetContext(req.Context)
	}
	if req.IdempotencyKey != "" {
		builder.SetIdempotencyKey(req.IdempotencyKey)
	}

	m, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// The key may have been claimed by a concurrent request that
			// committed between our check and this insert.
			if req.IdempotencyKey != "" {
				if existing, qErr := s.client.Mission.Query().
					Where(mission.IdempotencyKeyEQ(req.IdempotencyKey)).
					Only(ctx); qErr == nil {
					return existing, nil
				}
			}
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create mission: %w", err)
	}

	if _, err := appendEventTx(ctx, tx, m.ID, events.EventTypeMissionCreated, map[string]any{
		"objective": m.Objective,
		"status":    string(m.Status),
		"priority":  m.Priority,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return m, nil
}

// GetMission retrieves a mission by ID with optional task loading
func (s *MissionService) GetMission(ctx context.Context, missionID string, withTasks bool) (*ent.Mission, error) {
	query := s.client.Mission.Query().Where(mission.IDEQ(missionID))

	if withTasks {
		query = query.WithTasks(func(q *ent.TaskQuery) {
			q.Order(ent.Asc(task.FieldOrdinal))
		})
	}

	m, err := query.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get mission: %w", err)
	}

	return m, nil
}

// ListMissions lists missions with filtering and pagination
func (s *MissionService) ListMissions(ctx context.Context, filters models.MissionFilters) (*models.MissionListResponse, error) {
	query := s.client.Mission.Query()

	if filters.Status != "" {
		query = query.Where(mission.StatusEQ(mission.Status(filters.Status)))
	}
	if filters.Initiator != "" {
		query = query.Where(mission.InitiatorEQ(filters.Initiator))
	}
	if filters.CreatedAt != nil {
		query = query.Where(mission.CreatedAtGTE(*filters.CreatedAt))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count missions: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	missions, err := query.
		Order(ent.Desc(mission.FieldCreatedAt)).
		Limit(limit).
		Offset(filters.Offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list missions: %w", err)
	}

	return &models.MissionListResponse{
		Missions:   missions,
		TotalCount: total,
		Limit:      limit,
		Offset:     filters.Offset,
	}, nil
}

// MarkRunning transitions a pending mission to running, stamping the owning
// node and started_at, and records the status_change event.
func (s *MissionService) MarkRunning(httpCtx context.Context, missionID, nodeID string) (*ent.Mission, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	m, err := lockMission(ctx, tx, missionID)
	if err != nil {
		return nil, err
	}
	if !transitionAllowed(m.Status, mission.StatusRunning) {
		return nil, &InvalidTransitionError{From: string(m.Status), To: string(mission.StatusRunning)}
	}

	m, err = tx.Mission.UpdateOne(m).
		SetStatus(mission.StatusRunning).
		SetNodeID(nodeID).
		SetStartedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to mark mission running: %w", err)
	}

	if _, err := appendEventTx(ctx, tx, m.ID, events.EventTypeStatusChange, map[string]any{
		"status":  string(mission.StatusRunning),
		"node_id": nodeID,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return m, nil
}

// ClaimNextMission atomically claims the oldest pending mission for a node:
// FOR UPDATE SKIP LOCKED keeps concurrent workers off each other's claims,
// and the status_change event commits with the claim. Returns ErrNotFound
// when the queue is empty.
func (s *MissionService) ClaimNextMission(httpCtx context.Context, nodeID string) (*ent.Mission, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	m, err := tx.Mission.Query().
		Where(mission.StatusEQ(mission.StatusPending)).
		Order(ent.Asc(mission.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query pending mission: %w", err)
	}

	m, err = tx.Mission.UpdateOne(m).
		SetStatus(mission.StatusRunning).
		SetNodeID(nodeID).
		SetStartedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim mission: %w", err)
	}

	if _, err := appendEventTx(ctx, tx, m.ID, events.EventTypeStatusChange, map[string]any{
		"status":  string(mission.StatusRunning),
		"node_id": nodeID,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return m, nil
}

// RecordPlan replaces the mission's task list with the steps of a fresh plan
// and updates the iteration counter and plan hash history.
func (s *MissionService) RecordPlan(httpCtx context.Context, missionID string, iteration int, plan *models.Plan, planHashes []string) error {
	if plan == nil || len(plan.Steps) == 0 {
		return NewValidationError("plan", "must contain at least one step")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	m, err := lockMission(ctx, tx, missionID)
	if err != nil {
		return err
	}

	// Re-planning discards the previous iteration's tasks.
	if _, err := tx.Task.Delete().Where(task.MissionIDEQ(m.ID)).Exec(ctx); err != nil {
		return fmt.Errorf("failed to clear previous tasks: %w", err)
	}

	bulk := make([]*ent.TaskCreate, len(plan.Steps))
	for i, step := range plan.Steps {
		bulk[i] = tx.Task.Create().
			SetMissionID(m.ID).
			SetOrdinal(i).
			SetName(step.Name).
			SetDescription(step.Description).
			SetToolHint(step.ToolHint).
			SetStatus(task.StatusPending)
		if step.Inputs != nil {
			bulk[i].SetInputs(step.Inputs)
		}
	}
	if _, err := tx.Task.CreateBulk(bulk...).Save(ctx); err != nil {
		return fmt.Errorf("failed to create tasks: %w", err)
	}

	if _, err := tx.Mission.UpdateOne(m).
		SetIteration(iteration).
		SetPlanHashes(planHashes).
		Save(ctx); err != nil {
		return fmt.Errorf("failed to update mission plan state: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// RecordTaskResult stores one step's outcome and records the task_completed
// event.
func (s *MissionService) RecordTaskResult(httpCtx context.Context, missionID string, ordinal int, res models.StepResult) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := lockMission(ctx, tx, missionID); err != nil {
		return err
	}

	tsk, err := tx.Task.Query().
		Where(task.MissionIDEQ(missionID), task.OrdinalEQ(ordinal)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get task: %w", err)
	}

	update := tx.Task.UpdateOne(tsk).SetStatus(task.Status(res.Status))
	if res.Result != nil {
		update.SetResult(res.Result)
	}
	if res.Error != "" {
		update.SetErrorMessage(res.Error)
	}
	if _, err := update.Save(ctx); err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	if _, err := appendEventTx(ctx, tx, missionID, events.EventTypeTaskCompleted, map[string]any{
		"ordinal": ordinal,
		"name":    tsk.Name,
		"status":  res.Status,
		"error":   res.Error,
	}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// CompleteMission transitions a running mission to its terminal status and
// records mission_completed (or mission_failed) as the stream's final event.
func (s *MissionService) CompleteMission(httpCtx context.Context, missionID string, req models.CompleteMissionRequest) (*ent.Mission, error) {
	target := mission.Status(req.Status)
	switch target {
	case mission.StatusSuccess, mission.StatusPartialSuccess, mission.StatusFailed:
	default:
		return nil, NewValidationError("status", "must be a terminal status")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	m, err := lockMission(ctx, tx, missionID)
	if err != nil {
		return nil, err
	}
	if !transitionAllowed(m.Status, target) {
		return nil, &InvalidTransitionError{From: string(m.Status), To: string(target)}
	}

	update := tx.Mission.UpdateOne(m).
		SetStatus(target).
		SetCompletedAt(time.Now())
	if req.Outcome != "" {
		update.SetOutcome(req.Outcome)
	}
	if req.Result != nil {
		update.SetResult(req.Result)
	}
	if req.ErrorMessage != "" {
		update.SetErrorMessage(req.ErrorMessage)
	}
	m, err = update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to complete mission: %w", err)
	}

	eventType := events.EventTypeMissionCompleted
	if target == mission.StatusFailed {
		eventType = events.EventTypeMissionFailed
	}
	payload := map[string]any{
		"status":  string(target),
		"outcome": req.Outcome,
	}
	if req.ErrorMessage != "" {
		payload["error"] = req.ErrorMessage
	}
	if _, err := appendEventTx(ctx, tx, m.ID, eventType, payload); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return m, nil
}

// CancelMission terminates a pending or running mission on user request.
// Terminal missions return ErrNotCancellable.
func (s *MissionService) CancelMission(httpCtx context.Context, missionID string) (*ent.Mission, error) {
	current, err := s.GetMission(httpCtx, missionID, false)
	if err != nil {
		return nil, err
	}
	switch current.Status {
	case mission.StatusPending, mission.StatusRunning:
	default:
		return nil, ErrNotCancellable
	}

	return s.CompleteMission(httpCtx, missionID, models.CompleteMissionRequest{
		Status:  string(mission.StatusFailed),
		Outcome: "cancelled",
	})
}

// EmitEvent appends a brain event to the mission's stream. Implements the
// supervisor graph's event sink.
func (s *MissionService) EmitEvent(httpCtx context.Context, missionID, eventType string, payload map[string]any) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := lockMission(ctx, tx, missionID); err != nil {
		return err
	}
	if _, err := appendEventTx(ctx, tx, missionID, eventType, payload); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// lockMission loads the mission row FOR UPDATE, serializing event sequence
// allocation across concurrent writers.
func lockMission(ctx context.Context, tx *ent.Tx, missionID string) (*ent.Mission, error) {
	m, err := tx.Mission.Query().
		Where(mission.IDEQ(missionID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock mission: %w", err)
	}
	return m, nil
}

// appendEventTx allocates the next contiguous sequence number and writes the
// mission event plus its outbox entry. Callers must hold the mission row lock.
func appendEventTx(ctx context.Context, tx *ent.Tx, missionID, eventType string, payload map[string]any) (int, error) {
	last, err := tx.MissionEvent.Query().
		Where(missionevent.MissionIDEQ(missionID)).
		Order(ent.Desc(missionevent.FieldSequence)).
		First(ctx)
	seq := 1
	if err == nil {
		seq = last.Sequence + 1
	} else if !ent.IsNotFound(err) {
		return 0, fmt.Errorf("failed to query last event sequence: %w", err)
	}

	if _, err := tx.MissionEvent.Create().
		SetMissionID(missionID).
		SetSequence(seq).
		SetEventType(eventType).
		SetPayload(payload).
		SetCreatedAt(time.Now()).
		Save(ctx); err != nil {
		return 0, fmt.Errorf("failed to create mission event: %w", err)
	}

	envelope := events.MissionEventEnvelope(missionID, seq, eventType, payload)
	if _, err := tx.OutboxEntry.Create().
		SetMissionID(missionID).
		SetSequence(seq).
		SetEventType(eventType).
		SetPayload(map[string]any{"type": envelope.Type, "payload": envelope.Payload}).
		SetCreatedAt(time.Now()).
		Save(ctx); err != nil {
		return 0, fmt.Errorf("failed to create outbox entry: %w", err)
	}

	return seq, nil
}
