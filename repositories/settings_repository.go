package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/artsfest/scoreboard/models"
)

var ErrSettingsNotFound = errors.New("settings row not found")

// SettingsRepository manages the single global settings document.
type SettingsRepository interface {
	Get(ctx context.Context) (*models.Settings, error)
	Update(ctx context.Context, settings *models.Settings) error
}

type postgresSettingsRepository struct {
	db *sql.DB
}

func NewPostgresSettingsRepository(db *sql.DB) SettingsRepository {
	return &postgresSettingsRepository{db: db}
}

func (r *postgresSettingsRepository) Get(ctx context.Context) (*models.Settings, error) {
	query := `
		SELECT event_name, event_status, flash_news, ticker_news,
		       auto_rotate_enabled, rotation_interval,
		       first_group, first_individual,
		       second_group, second_individual,
		       third_group, third_individual,
		       grade_system, updated_at
		FROM settings WHERE id = 1`

	var (
		s         models.Settings
		ticker    pq.StringArray
		gradesRaw []byte
	)
	err := r.db.QueryRowContext(ctx, query).Scan(
		&s.EventName, &s.EventStatus, &s.FlashNews, &ticker,
		&s.AutoRotateEnabled, &s.RotationInterval,
		&s.Points.First.Group, &s.Points.First.Individual,
		&s.Points.Second.Group, &s.Points.Second.Individual,
		&s.Points.Third.Group, &s.Points.Third.Individual,
		&gradesRaw, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSettingsNotFound
		}
		return nil, err
	}

	s.TickerNews = []string(ticker)
	if len(gradesRaw) > 0 {
		if err := json.Unmarshal(gradesRaw, &s.Points.Grades); err != nil {
			return nil, fmt.Errorf("failed to decode grade system: %w", err)
		}
	}
	return &s, nil
}

func (r *postgresSettingsRepository) Update(ctx context.Context, settings *models.Settings) error {
	grades := settings.Points.Grades
	if grades == nil {
		grades = []models.GradeConfig{}
	}
	encoded, err := json.Marshal(grades)
	if err != nil {
		return fmt.Errorf("failed to encode grade system: %w", err)
	}

	query := `
		UPDATE settings
		SET event_name = $1, event_status = $2, flash_news = $3, ticker_news = $4,
		    auto_rotate_enabled = $5, rotation_interval = $6,
		    first_group = $7, first_individual = $8,
		    second_group = $9, second_individual = $10,
		    third_group = $11, third_individual = $12,
		    grade_system = $13, updated_at = now()
		WHERE id = 1`

	result, err := r.db.ExecContext(ctx, query,
		settings.EventName, settings.EventStatus, settings.FlashNews,
		pq.Array(settings.TickerNews),
		settings.AutoRotateEnabled, settings.RotationInterval,
		settings.Points.First.Group, settings.Points.First.Individual,
		settings.Points.Second.Group, settings.Points.Second.Individual,
		settings.Points.Third.Group, settings.Points.Third.Individual,
		encoded,
	)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrSettingsNotFound)
}
