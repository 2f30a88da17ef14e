// Package ingest watches the input directory for caption transcripts and
// submits them to the queue. Filesystem notifications trigger a scan, and a
// periodic rescan backstops notification loss; the ingest ledger keeps a
// file from being submitted twice.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/cardigan-project/cardigan/pkg/config"
	"github.com/cardigan-project/cardigan/pkg/events"
	"github.com/cardigan-project/cardigan/pkg/models"
	"github.com/cardigan-project/cardigan/pkg/services"
)

// settleDelay is how long a file must sit quiet after a filesystem event
// before a scan picks it up. Files are often written in several chunks.
const settleDelay = 500 * time.Millisecond

// scanTimeout bounds one directory scan against the store.
const scanTimeout = 30 * time.Second

// Watcher offers new transcript files to the queue.
type Watcher struct {
	cfg       *config.IngestConfig
	jobs      *services.JobService
	ledger    *services.IngestService
	publisher *events.Publisher
	logger    *slog.Logger

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewWatcher creates an ingest watcher.
func NewWatcher(cfg *config.IngestConfig, jobs *services.JobService, ledger *services.IngestService, publisher *events.Publisher, logger *slog.Logger) *Watcher {
	if cfg == nil {
		cfg = config.DefaultIngestConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{
		cfg:       cfg,
		jobs:      jobs,
		ledger:    ledger,
		publisher: publisher,
		logger:    logger,
		stopCh:    make(chan struct{}),
	}
}

// Start begins watching. A disabled watcher starts as a no-op.
func (w *Watcher) Start() error {
	if !w.cfg.Enabled {
		w.logger.Info("Ingest watcher disabled")
		return nil
	}

	if err := os.MkdirAll(w.cfg.InputDir, 0o755); err != nil {
		return fmt.Errorf("create input directory: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create filesystem watcher: %w", err)
	}
	if err := fsw.Add(w.cfg.InputDir); err != nil {
		fsw.Close()
		return fmt.Errorf("watch input directory: %w", err)
	}

	w.logger.Info("Ingest watcher started",
		"input_dir", w.cfg.InputDir,
		"rescan_interval", w.cfg.RescanInterval,
		"extensions", w.cfg.Extensions)

	w.wg.Add(1)
	go w.run(fsw)

	// Pick up files that landed while the engine was down.
	w.Scan()

	return nil
}

// Stop halts the watcher and waits for a scan in flight.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
	})
	w.wg.Wait()
}

func (w *Watcher) run(fsw *fsnotify.Watcher) {
	defer w.wg.Done()
	defer fsw.Close()

	interval := w.cfg.RescanInterval
	if interval <= 0 {
		interval = 30 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Debounce: a burst of write events collapses into one scan after the
	// settle delay.
	var settle *time.Timer
	scanSignal := make(chan struct{}, 1)

	for {
		select {
		case <-w.stopCh:
			if settle != nil {
				settle.Stop()
			}
			return

		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			if settle != nil {
				settle.Stop()
			}
			settle = time.AfterFunc(settleDelay, func() {
				select {
				case scanSignal <- struct{}{}:
				default:
				}
			})

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("Filesystem watcher error", "error", err)

		case <-scanSignal:
			w.Scan()

		case <-ticker.C:
			w.Scan()
		}
	}
}

// Scan walks the input directory once and offers every matching file.
func (w *Watcher) Scan() {
	ctx, cancel := context.WithTimeout(context.Background(), scanTimeout)
	defer cancel()

	entries, err := os.ReadDir(w.cfg.InputDir)
	if err != nil {
		w.logger.Error("Failed to read input directory", "error", err)
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || !w.accepts(entry.Name()) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			w.logger.Warn("Failed to stat transcript", "file", entry.Name(), "error", err)
			continue
		}

		w.offer(ctx, entry.Name(), info.Size(), info.ModTime())
	}
}

// accepts filters on the configured transcript extensions.
func (w *Watcher) accepts(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, allowed := range w.cfg.Extensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// offer submits one observed file unless the ledger already covers it.
func (w *Watcher) offer(ctx context.Context, name string, size int64, modifiedAt time.Time) {
	_, shouldSubmit, err := w.ledger.Observe(ctx, name, size, modifiedAt)
	if err != nil {
		w.logger.Error("Failed to record file sighting", "file", name, "error", err)
		return
	}
	if !shouldSubmit {
		return
	}

	path, err := filepath.Abs(filepath.Join(w.cfg.InputDir, name))
	if err != nil {
		w.logger.Error("Failed to resolve transcript path", "file", name, "error", err)
		return
	}

	created, err := w.jobs.CreateJob(ctx, models.CreateJobRequest{TranscriptFile: path})
	if err != nil {
		if errors.Is(err, services.ErrDuplicateTranscript) {
			// A non-terminal job already covers this transcript. Ignore the
			// file until it changes on disk.
			w.logger.Info("Transcript already queued; ignoring", "file", name)
			if merr := w.ledger.MarkIgnored(ctx, name); merr != nil {
				w.logger.Warn("Failed to mark file ignored", "file", name, "error", merr)
			}
			return
		}
		// Left in status new, the file is offered again on the next scan.
		w.logger.Error("Failed to submit transcript", "file", name, "error", err)
		return
	}

	if err := w.ledger.MarkQueued(ctx, name, created.ID); err != nil {
		w.logger.Warn("Failed to mark file queued", "file", name, "error", err)
	}

	w.publisher.JobQueued(ctx, created.ID, created.TranscriptFile, created.ProjectName, created.Priority)
	w.logger.Info("Transcript submitted", "file", name, "job_id", created.ID)
}
