package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/artsfest/scoreboard/models"
	"github.com/artsfest/scoreboard/repositories"
)

type SettingsService interface {
	Get(ctx context.Context) (*models.Settings, error)
	Update(ctx context.Context, input SettingsInput) (*models.Settings, error)
}

// SettingsInput carries a full or partial settings update; nil fields keep
// their current value.
type SettingsInput struct {
	EventName         *string              `json:"eventName"`
	EventStatus       *string              `json:"eventStatus"`
	FlashNews         *string              `json:"flashNews"`
	TickerNews        []string             `json:"tickerNews"`
	AutoRotateEnabled *bool                `json:"autoRotateEnabled"`
	RotationInterval  *int                 `json:"rotationInterval"`
	Points            *models.PointsConfig `json:"pointsSystem"`
}

type settingsService struct {
	settingsRepo repositories.SettingsRepository
	notifier     *Notifier
}

func NewSettingsService(settingsRepo repositories.SettingsRepository, notifier *Notifier) SettingsService {
	return &settingsService{settingsRepo: settingsRepo, notifier: notifier}
}

func (s *settingsService) Get(ctx context.Context) (*models.Settings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return settings, nil
}

func (s *settingsService) Update(ctx context.Context, input SettingsInput) (*models.Settings, error) {
	settings, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	if input.EventName != nil {
		settings.EventName = strings.TrimSpace(*input.EventName)
	}
	if input.EventStatus != nil {
		status := *input.EventStatus
		switch status {
		case models.EventStatusUpcoming, models.EventStatusLive, models.EventStatusCompleted:
			settings.EventStatus = status
		default:
			return nil, fmt.Errorf("%w: %q", ErrEventStatusInvalid, status)
		}
	}
	if input.FlashNews != nil {
		settings.FlashNews = strings.TrimSpace(*input.FlashNews)
	}
	if input.TickerNews != nil {
		settings.TickerNews = input.TickerNews
	}
	if input.AutoRotateEnabled != nil {
		settings.AutoRotateEnabled = *input.AutoRotateEnabled
	}
	if input.RotationInterval != nil {
		if *input.RotationInterval <= 0 {
			return nil, ErrRotationIntervalInvalid
		}
		settings.RotationInterval = *input.RotationInterval
	}
	if input.Points != nil {
		if err := validateGradeSystem(input.Points.Grades); err != nil {
			return nil, err
		}
		settings.Points = *input.Points
	}

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}

	s.notifier.SettingsChanged(ctx, settings)
	return settings, nil
}

func validateGradeSystem(grades []models.GradeConfig) error {
	seen := make(map[string]bool, len(grades))
	for _, g := range grades {
		key := strings.TrimSpace(g.Key)
		if key == "" || seen[key] {
			return ErrGradeSystemInvalid
		}
		seen[key] = true
	}
	return nil
}
