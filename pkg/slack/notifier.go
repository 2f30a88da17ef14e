package slack

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cardigan-project/cardigan/pkg/events"
	"github.com/cardigan-project/cardigan/pkg/services"
)

// Notifier bridges the event bus to the notification service: job start and
// terminal events become channel messages. Missed events (slow subscriber)
// cost a notification, never a job.
type Notifier struct {
	service *Service
	bus     *events.Bus
	jobs    *services.JobService
	logger  *slog.Logger

	sub      *events.Subscription
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewNotifier creates a notifier over the given bus. A nil service makes
// Start a no-op.
func NewNotifier(service *Service, bus *events.Bus, jobs *services.JobService, logger *slog.Logger) *Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Notifier{
		service: service,
		bus:     bus,
		jobs:    jobs,
		logger:  logger,
	}
}

// Start subscribes to the global channel and begins delivering
// notifications.
func (n *Notifier) Start() {
	if n.service == nil {
		return
	}

	n.sub = n.bus.Subscribe(events.GlobalChannel)
	n.wg.Add(1)
	go n.run()

	n.logger.Info("Slack notifier started")
}

// Stop unsubscribes and waits for the delivery loop to exit.
func (n *Notifier) Stop() {
	n.stopOnce.Do(func() {
		if n.sub != nil {
			n.bus.Unsubscribe(n.sub)
		}
	})
	n.wg.Wait()
}

func (n *Notifier) run() {
	defer n.wg.Done()

	for env := range n.sub.C {
		n.handle(env)
	}
}

func (n *Notifier) handle(env events.Envelope) {
	if env.JobID == nil {
		return
	}
	jobID := *env.JobID

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	switch env.Type {
	case events.EventTypeJobStarted:
		n.service.NotifyJobStarted(ctx, jobID, n.projectName(ctx, jobID))

	case events.EventTypeJobCompleted:
		n.service.NotifyJobFinished(ctx, JobFinishedInput{
			JobID:       jobID,
			ProjectName: n.projectName(ctx, jobID),
			Status:      "completed",
			TotalCost:   floatField(env.Data, "total_cost"),
		})

	case events.EventTypeJobFailed:
		n.service.NotifyJobFinished(ctx, JobFinishedInput{
			JobID:        jobID,
			ProjectName:  n.projectName(ctx, jobID),
			Status:       "failed",
			FailedPhase:  stringField(env.Data, "phase"),
			ErrorMessage: stringField(env.Data, "error_message"),
		})

	case events.EventTypeJobCancelled:
		n.service.NotifyJobFinished(ctx, JobFinishedInput{
			JobID:       jobID,
			ProjectName: n.projectName(ctx, jobID),
			Status:      "cancelled",
		})
	}
}

// projectName resolves the job's project name for message text. Falls back
// to the job number when the lookup fails.
func (n *Notifier) projectName(ctx context.Context, jobID int) string {
	j, err := n.jobs.GetJob(ctx, jobID, false)
	if err != nil {
		n.logger.Warn("Failed to resolve job for notification", "job_id", jobID, "error", err)
		return fmt.Sprintf("job %d", jobID)
	}
	return j.ProjectName
}

func stringField(data map[string]interface{}, key string) string {
	if v, ok := data[key].(string); ok {
		return v
	}
	return ""
}

func floatField(data map[string]interface{}, key string) float64 {
	switch v := data[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}
