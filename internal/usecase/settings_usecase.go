package usecase

import (
	"context"

	"github.com/iho/fintrack/internal/domain"
)

// SettingsUseCase handles the per-installation settings document.
type SettingsUseCase struct {
	settingsRepo SettingsRepository
}

// NewSettingsUseCase creates a new SettingsUseCase.
func NewSettingsUseCase(settingsRepo SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{settingsRepo: settingsRepo}
}

// GetSettings returns the current settings, defaulted when never saved.
func (uc *SettingsUseCase) GetSettings(ctx context.Context) (*domain.Settings, error) {
	return uc.settingsRepo.Get(ctx)
}

// SetDarkMode persists the dark-mode preference.
func (uc *SettingsUseCase) SetDarkMode(ctx context.Context, enabled bool) (*domain.Settings, error) {
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	settings.DarkMode = enabled
	if err := uc.settingsRepo.Save(ctx, settings); err != nil {
		return nil, err
	}

	return settings, nil
}
