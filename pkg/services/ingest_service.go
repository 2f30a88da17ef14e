package services

import (
	"context"
	"fmt"
	"time"

	"github.com/cardigan-project/cardigan/ent"
	"github.com/cardigan-project/cardigan/ent/ingestrecord"
)

// IngestService tracks files observed in the ingest directory so the
// watcher never submits the same file twice.
type IngestService struct {
	client *ent.Client
}

// NewIngestService creates a new IngestService.
func NewIngestService(client *ent.Client) *IngestService {
	return &IngestService{client: client}
}

// Observe records a sighting of a remote file. A first sighting creates a
// record in status new. A changed file (different size or newer mtime)
// that was already queued or ignored is reset to new so it gets offered
// again; the previous submission is marked on the record as superseded
// first. Returns the record and whether it should be offered for
// submission.
func (s *IngestService) Observe(httpCtx context.Context, remoteName string, size int64, modifiedAt time.Time) (*ent.IngestRecord, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	now := time.Now().UTC()

	existing, err := s.client.IngestRecord.Query().
		Where(ingestrecord.RemoteNameEQ(remoteName)).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return nil, false, fmt.Errorf("failed to query ingest record: %w", err)
		}

		created, cerr := s.client.IngestRecord.Create().
			SetRemoteName(remoteName).
			SetSize(size).
			SetModifiedAt(modifiedAt).
			SetStatus(ingestrecord.StatusNew).
			SetFirstSeen(now).
			SetLastSeen(now).
			Save(ctx)
		if cerr != nil {
			return nil, false, fmt.Errorf("failed to create ingest record: %w", cerr)
		}
		return created, true, nil
	}

	changed := existing.Size != size ||
		existing.ModifiedAt == nil ||
		modifiedAt.After(*existing.ModifiedAt)

	update := existing.Update().
		SetSize(size).
		SetModifiedAt(modifiedAt).
		SetLastSeen(now)

	offer := false
	switch {
	case existing.Status == ingestrecord.StatusNew:
		// Never submitted; offer again.
		offer = true
	case changed:
		// The file was replaced upstream. The prior submission no longer
		// matches its content, so the record re-enters the offer queue.
		update.SetStatus(ingestrecord.StatusNew)
		offer = true
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to update ingest record: %w", err)
	}

	return updated, offer, nil
}

// MarkSuperseded retires a record whose file was replaced by a newer
// remote name.
func (s *IngestService) MarkSuperseded(ctx context.Context, remoteName string) error {
	count, err := s.client.IngestRecord.Update().
		Where(ingestrecord.RemoteNameEQ(remoteName)).
		SetStatus(ingestrecord.StatusSuperseded).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark ingest record superseded: %w", err)
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkQueued links an ingest record to the job created from it.
func (s *IngestService) MarkQueued(ctx context.Context, remoteName string, jobID int) error {
	count, err := s.client.IngestRecord.Update().
		Where(ingestrecord.RemoteNameEQ(remoteName)).
		SetStatus(ingestrecord.StatusQueued).
		SetJobID(jobID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark ingest record queued: %w", err)
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkIgnored excludes a file from future submission until it changes.
func (s *IngestService) MarkIgnored(ctx context.Context, remoteName string) error {
	count, err := s.client.IngestRecord.Update().
		Where(ingestrecord.RemoteNameEQ(remoteName)).
		SetStatus(ingestrecord.StatusIgnored).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark ingest record ignored: %w", err)
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}

// ListNew returns records waiting to be offered for submission.
func (s *IngestService) ListNew(ctx context.Context) ([]*ent.IngestRecord, error) {
	records, err := s.client.IngestRecord.Query().
		Where(ingestrecord.StatusEQ(ingestrecord.StatusNew)).
		Order(ent.Asc(ingestrecord.FieldFirstSeen)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list new ingest records: %w", err)
	}
	return records, nil
}
