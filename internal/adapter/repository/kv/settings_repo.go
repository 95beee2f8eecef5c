package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/iho/fintrack/internal/domain"
	"github.com/iho/fintrack/internal/infrastructure/kvstore"
)

// SettingsRepository implements usecase.SettingsRepository. Settings are a
// single document, not a collection; absence yields the defaults.
type SettingsRepository struct {
	store kvstore.Store
}

// NewSettingsRepository creates a new SettingsRepository.
func NewSettingsRepository(store kvstore.Store) *SettingsRepository {
	return &SettingsRepository{store: store}
}

// Get returns the persisted settings, or the defaults when nothing is stored.
func (r *SettingsRepository) Get(ctx context.Context) (*domain.Settings, error) {
	data, err := r.store.Load(ctx, KeySettings)
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return domain.DefaultSettings(), nil
		}

		return nil, fmt.Errorf("%w: load %s: %v", domain.ErrStore, KeySettings, err)
	}

	var settings domain.Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Warn().Err(err).Msg("discarding undecodable settings")
		return domain.DefaultSettings(), nil
	}

	return &settings, nil
}

// Save persists the settings document.
func (r *SettingsRepository) Save(ctx context.Context, settings *domain.Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", domain.ErrStore, KeySettings, err)
	}

	if err := r.store.Save(ctx, KeySettings, data); err != nil {
		return fmt.Errorf("%w: save %s: %v", domain.ErrStore, KeySettings, err)
	}

	return nil
}
