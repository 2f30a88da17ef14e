package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cardigan-project/cardigan/ent"
	"github.com/cardigan-project/cardigan/ent/sessionevent"
	"github.com/cardigan-project/cardigan/pkg/events"
	"github.com/cardigan-project/cardigan/pkg/models"
)

// EventService manages the append-only session event log. It backs both
// the event bus publisher (Append) and WebSocket catchup
// (GetCatchupEvents).
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService.
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// Append inserts one event row. Rows are never updated or deleted.
func (s *EventService) Append(httpCtx context.Context, jobID *int, eventType string, data map[string]interface{}) (int, time.Time, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.SessionEvent.Create().
		SetEventType(sessionevent.EventType(eventType)).
		SetTimestamp(time.Now().UTC())

	if jobID != nil {
		builder.SetJobID(*jobID)
	}
	if data != nil {
		builder.SetData(data)
	}

	evt, err := builder.Save(ctx)
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("failed to append event: %w", err)
	}

	return evt.ID, evt.Timestamp, nil
}

// ListJobEvents lists one job's events with filtering and pagination,
// newest first.
func (s *EventService) ListJobEvents(ctx context.Context, jobID int, filters models.EventFilters) (*models.EventListResponse, error) {
	query := s.client.SessionEvent.Query().
		Where(sessionevent.JobIDEQ(jobID))

	if filters.EventType != "" {
		if err := sessionevent.EventTypeValidator(sessionevent.EventType(filters.EventType)); err != nil {
			return nil, NewValidationError("event_type", "unknown event type")
		}
		query = query.Where(sessionevent.EventTypeEQ(sessionevent.EventType(filters.EventType)))
	}
	if filters.SinceID > 0 {
		query = query.Where(sessionevent.IDGT(filters.SinceID))
	}

	totalCount, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count events: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	list, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(sessionevent.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	return &models.EventListResponse{
		Events:     list,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// RecentJobEvents returns a job's newest events for the detail view.
func (s *EventService) RecentJobEvents(ctx context.Context, jobID int, limit int) ([]*ent.SessionEvent, error) {
	if limit <= 0 {
		limit = 20
	}

	list, err := s.client.SessionEvent.Query().
		Where(sessionevent.JobIDEQ(jobID)).
		Order(ent.Desc(sessionevent.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent events: %w", err)
	}

	return list, nil
}

// GetCatchupEvents returns persisted events after sinceID for a channel,
// oldest first. The global channel replays everything; a job channel
// replays only that job's rows.
func (s *EventService) GetCatchupEvents(ctx context.Context, channel string, sinceID, limit int) ([]events.Envelope, error) {
	query := s.client.SessionEvent.Query().
		Where(sessionevent.IDGT(sinceID))

	if channel != events.GlobalChannel {
		jobID, err := parseJobChannel(channel)
		if err != nil {
			return nil, err
		}
		query = query.Where(sessionevent.JobIDEQ(jobID))
	}

	rows, err := query.
		Order(ent.Asc(sessionevent.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query catchup events: %w", err)
	}

	envs := make([]events.Envelope, 0, len(rows))
	for _, row := range rows {
		envs = append(envs, events.Envelope{
			EventID:   row.ID,
			Type:      string(row.EventType),
			JobID:     row.JobID,
			Timestamp: row.Timestamp,
			Data:      row.Data,
		})
	}

	return envs, nil
}

// parseJobChannel extracts the job ID from a "job:{id}" channel name.
func parseJobChannel(channel string) (int, error) {
	raw, ok := strings.CutPrefix(channel, "job:")
	if !ok {
		return 0, NewValidationError("channel", fmt.Sprintf("unknown channel %q", channel))
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, NewValidationError("channel", fmt.Sprintf("bad job channel %q", channel))
	}
	return id, nil
}

// PruneSystemEvents deletes system events (rows with no job) older than the
// TTL. Job-attached events leave with their job via FK cascade.
func (s *EventService) PruneSystemEvents(ctx context.Context, ttl time.Duration) (int, error) {
	if ttl <= 0 {
		return 0, nil
	}

	cutoff := time.Now().UTC().Add(-ttl)
	count, err := s.client.SessionEvent.Delete().
		Where(
			sessionevent.JobIDIsNil(),
			sessionevent.TimestampLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to prune system events: %w", err)
	}
	return count, nil
}
