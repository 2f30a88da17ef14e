package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/cardigan-project/cardigan/ent"
	"github.com/cardigan-project/cardigan/ent/configitem"
	"github.com/cardigan-project/cardigan/pkg/config"
	"github.com/cardigan-project/cardigan/pkg/models"
)

// Persisted config item keys for the runtime-writable sections.
const (
	configKeyRouting = "routing"
	configKeySafety  = "safety"
	configKeyQueue   = "queue"
)

// ConfigService manages runtime configuration updates: validated section
// writes are persisted to the store and swapped into the snapshot holder.
// Jobs already in flight keep the snapshot they claimed with.
type ConfigService struct {
	client *ent.Client
	holder *config.Holder

	// mu serializes writers: Update and LoadOverrides mutate cfg in place.
	mu  sync.Mutex
	cfg *config.Config
}

// NewConfigService creates a new ConfigService.
func NewConfigService(client *ent.Client, cfg *config.Config, holder *config.Holder) *ConfigService {
	return &ConfigService{client: client, cfg: cfg, holder: holder}
}

// Current returns the active policy sections.
func (s *ConfigService) Current() *models.ConfigResponse {
	snap := s.holder.Load()
	return &models.ConfigResponse{
		Routing: snap.Routing,
		Safety:  snap.Safety,
		Queue:   snap.Queue,
	}
}

// LoadOverrides applies previously persisted section overrides on top of
// the file configuration. Called once at startup, before the first
// snapshot is taken.
func (s *ConfigService) LoadOverrides(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.client.ConfigItem.Query().
		Where(configitem.KeyIn(configKeyRouting, configKeySafety, configKeyQueue)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load config overrides: %w", err)
	}

	for _, item := range items {
		switch item.Key {
		case configKeyRouting:
			routing := &config.RoutingConfig{}
			if err := decodeSection(item.Value, routing); err != nil {
				return fmt.Errorf("failed to decode routing override: %w", err)
			}
			s.cfg.Routing = routing
		case configKeySafety:
			safety := &config.SafetyConfig{}
			if err := decodeSection(item.Value, safety); err != nil {
				return fmt.Errorf("failed to decode safety override: %w", err)
			}
			s.cfg.Safety = safety
		case configKeyQueue:
			queue := &config.QueueConfig{}
			if err := decodeSection(item.Value, queue); err != nil {
				return fmt.Errorf("failed to decode queue override: %w", err)
			}
			s.cfg.Queue = queue
		}
	}

	if err := config.NewValidator(s.cfg).ValidateAll(); err != nil {
		return fmt.Errorf("persisted config overrides failed validation: %w", err)
	}

	s.holder.Store(s.cfg.Snapshot())
	return nil
}

// Update validates the requested section changes against the full
// configuration, persists them, and publishes a new snapshot. On any
// validation or store error nothing changes.
func (s *ConfigService) Update(httpCtx context.Context, update models.ConfigUpdate) (*models.ConfigResponse, error) {
	if update.Routing == nil && update.Safety == nil && update.Queue == nil {
		return nil, NewValidationError("config", "no sections to update")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Validate the candidate configuration as a whole before any write.
	candidate := *s.cfg
	if update.Routing != nil {
		candidate.Routing = update.Routing
	}
	if update.Safety != nil {
		candidate.Safety = update.Safety
	}
	if update.Queue != nil {
		candidate.Queue = update.Queue
	}
	if err := config.NewValidator(&candidate).ValidateAll(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if update.Routing != nil {
		if err := upsertSection(ctx, tx, configKeyRouting, update.Routing); err != nil {
			return nil, err
		}
	}
	if update.Safety != nil {
		if err := upsertSection(ctx, tx, configKeySafety, update.Safety); err != nil {
			return nil, err
		}
	}
	if update.Queue != nil {
		if err := upsertSection(ctx, tx, configKeyQueue, update.Queue); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit config update: %w", err)
	}

	// Publish only after the store accepted everything.
	s.cfg.Routing = candidate.Routing
	s.cfg.Safety = candidate.Safety
	s.cfg.Queue = candidate.Queue
	s.holder.Store(s.cfg.Snapshot())

	return s.Current(), nil
}

// upsertSection writes one section as a structured config item.
func upsertSection(ctx context.Context, tx *ent.Tx, key string, section interface{}) error {
	value, err := encodeSection(section)
	if err != nil {
		return fmt.Errorf("failed to encode %s section: %w", key, err)
	}

	existing, err := tx.ConfigItem.Query().
		Where(configitem.KeyEQ(key)).
		Only(ctx)
	switch {
	case err == nil:
		_, err = existing.Update().
			SetValue(value).
			SetValueType(configitem.ValueTypeStructured).
			Save(ctx)
	case ent.IsNotFound(err):
		_, err = tx.ConfigItem.Create().
			SetKey(key).
			SetValue(value).
			SetValueType(configitem.ValueTypeStructured).
			Save(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to persist %s section: %w", key, err)
	}
	return nil
}

// encodeSection converts a config section struct to its stored JSON map.
func encodeSection(section interface{}) (map[string]interface{}, error) {
	raw, err := json.Marshal(section)
	if err != nil {
		return nil, err
	}
	var value map[string]interface{}
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, err
	}
	return value, nil
}

// decodeSection converts a stored JSON map back into a section struct.
func decodeSection(value map[string]interface{}, section interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, section)
}
