package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/artsfest/scoreboard/models"
	"github.com/artsfest/scoreboard/repositories"
)

type ItemService interface {
	Create(ctx context.Context, input ItemInput) (*models.CompetitionItem, error)
	GetByID(ctx context.Context, id int) (*models.CompetitionItem, error)
	List(ctx context.Context, onlyActive bool) ([]models.CompetitionItem, error)
	Update(ctx context.Context, id int, input ItemInput) (*models.CompetitionItem, error)
	SetResults(ctx context.Context, id int, results models.ItemResults) (*models.CompetitionItem, error)
	SetGrades(ctx context.Context, id int, grades []models.GradeEntry) (*models.CompetitionItem, error)
	Delete(ctx context.Context, id int) error
}

type ItemInput struct {
	Title    string          `json:"title"`
	Category models.Ref      `json:"category"`
	Type     models.ItemType `json:"type"`
	Order    *int            `json:"order"`
	Active   *bool           `json:"active"`
}

type itemService struct {
	itemRepo     repositories.ItemRepository
	settingsRepo repositories.SettingsRepository
	notifier     *Notifier
}

func NewItemService(itemRepo repositories.ItemRepository, settingsRepo repositories.SettingsRepository, notifier *Notifier) ItemService {
	return &itemService{itemRepo: itemRepo, settingsRepo: settingsRepo, notifier: notifier}
}

func validateItemType(t models.ItemType) error {
	switch t {
	case models.ItemTypeGroup, models.ItemTypeIndividual:
		return nil
	default:
		return ErrItemTypeInvalid
	}
}

func (s *itemService) Create(ctx context.Context, input ItemInput) (*models.CompetitionItem, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrItemTitleRequired
	}
	if err := validateItemType(input.Type); err != nil {
		return nil, err
	}
	if input.Category.IsZero() {
		return nil, ErrItemCategoryInvalid
	}

	item := &models.CompetitionItem{
		Title:    title,
		Category: input.Category,
		Type:     input.Type,
		Active:   true,
	}
	if input.Order != nil {
		item.Order = *input.Order
	}
	if input.Active != nil {
		item.Active = *input.Active
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		if errors.Is(err, repositories.ErrItemCategoryInvalid) {
			return nil, ErrItemCategoryInvalid
		}
		return nil, fmt.Errorf("failed to create competition item: %w", err)
	}
	return item, nil
}

func (s *itemService) GetByID(ctx context.Context, id int) (*models.CompetitionItem, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrItemNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get competition item %d: %w", id, err)
	}
	return item, nil
}

func (s *itemService) List(ctx context.Context, onlyActive bool) ([]models.CompetitionItem, error) {
	items, err := s.itemRepo.List(ctx, onlyActive)
	if err != nil {
		return nil, fmt.Errorf("failed to list competition items: %w", err)
	}
	return items, nil
}

func (s *itemService) Update(ctx context.Context, id int, input ItemInput) (*models.CompetitionItem, error) {
	item, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if title := strings.TrimSpace(input.Title); title != "" {
		item.Title = title
	}
	if input.Type != "" {
		if err := validateItemType(input.Type); err != nil {
			return nil, err
		}
		item.Type = input.Type
	}
	if !input.Category.IsZero() {
		item.Category = input.Category
	}
	if input.Order != nil {
		item.Order = *input.Order
	}
	if input.Active != nil {
		item.Active = *input.Active
	}

	if err := s.itemRepo.Update(ctx, item); err != nil {
		switch {
		case errors.Is(err, repositories.ErrItemNotFound):
			return nil, ErrItemNotFound
		case errors.Is(err, repositories.ErrItemCategoryInvalid):
			return nil, ErrItemCategoryInvalid
		default:
			return nil, fmt.Errorf("failed to update competition item %d: %w", id, err)
		}
	}

	s.notifier.ScoreboardChanged(ctx)
	return item, nil
}

// SetResults replaces the top-three placements of an item and pushes the new
// scoreboard to live clients.
func (s *itemService) SetResults(ctx context.Context, id int, results models.ItemResults) (*models.CompetitionItem, error) {
	err := s.itemRepo.UpdateResults(ctx, id, results)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrItemNotFound):
			return nil, ErrItemNotFound
		case errors.Is(err, repositories.ErrItemResultInvalid):
			return nil, ErrItemResultInvalid
		default:
			return nil, fmt.Errorf("failed to set results of item %d: %w", id, err)
		}
	}

	item, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.notifier.ScoreboardChanged(ctx)
	return item, nil
}

// SetGrades replaces the grade entries of an item. Every entry must use a
// key defined in the configured grade system; entries referencing unknown
// participants would be skipped by the engine anyway, so only keys are
// validated here.
func (s *itemService) SetGrades(ctx context.Context, id int, grades []models.GradeEntry) (*models.CompetitionItem, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings for grade validation: %w", err)
	}

	known := make(map[string]bool, len(settings.Points.Grades))
	for _, g := range settings.Points.Grades {
		known[g.Key] = true
	}
	for _, entry := range grades {
		if !known[entry.Grade] {
			return nil, fmt.Errorf("%w: %q", ErrGradeKeyInvalid, entry.Grade)
		}
	}

	if err := s.itemRepo.UpdateGrades(ctx, id, grades); err != nil {
		if errors.Is(err, repositories.ErrItemNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to set grades of item %d: %w", id, err)
	}

	item, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.notifier.ScoreboardChanged(ctx)
	return item, nil
}

func (s *itemService) Delete(ctx context.Context, id int) error {
	err := s.itemRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrItemNotFound) {
			return ErrItemNotFound
		}
		return fmt.Errorf("failed to delete competition item %d: %w", id, err)
	}

	s.notifier.ScoreboardChanged(ctx)
	return nil
}
