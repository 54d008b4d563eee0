package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artsfest/scoreboard/models"
	"github.com/artsfest/scoreboard/repositories"
)

// In-memory fakes. Only the read paths matter here; the write methods are
// never reached by the scoreboard service.

type fakeParticipantRepo struct {
	participants []models.Participant
	err          error
}

func (f *fakeParticipantRepo) Create(ctx context.Context, p *models.Participant) error { return nil }

func (f *fakeParticipantRepo) GetByID(ctx context.Context, id int) (*models.Participant, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.participants {
		if f.participants[i].ID == id {
			return &f.participants[i], nil
		}
	}
	return nil, repositories.ErrParticipantNotFound
}

func (f *fakeParticipantRepo) List(ctx context.Context, onlyActive bool) ([]models.Participant, error) {
	if f.err != nil {
		return nil, f.err
	}
	if !onlyActive {
		return f.participants, nil
	}
	var active []models.Participant
	for _, p := range f.participants {
		if p.Active {
			active = append(active, p)
		}
	}
	return active, nil
}

func (f *fakeParticipantRepo) Update(ctx context.Context, p *models.Participant) error { return nil }
func (f *fakeParticipantRepo) Delete(ctx context.Context, id int) error                { return nil }

type fakeCategoryRepo struct {
	categories []models.Category
	err        error
}

func (f *fakeCategoryRepo) Create(ctx context.Context, c *models.Category) error { return nil }
func (f *fakeCategoryRepo) GetByID(ctx context.Context, id int) (*models.Category, error) {
	return nil, repositories.ErrCategoryNotFound
}

func (f *fakeCategoryRepo) List(ctx context.Context) ([]models.Category, error) {
	return f.categories, f.err
}

func (f *fakeCategoryRepo) Update(ctx context.Context, c *models.Category) error { return nil }
func (f *fakeCategoryRepo) Delete(ctx context.Context, id int) error             { return nil }

type fakeItemRepo struct {
	items []models.CompetitionItem
	err   error
}

func (f *fakeItemRepo) Create(ctx context.Context, item *models.CompetitionItem) error { return nil }
func (f *fakeItemRepo) GetByID(ctx context.Context, id int) (*models.CompetitionItem, error) {
	return nil, repositories.ErrItemNotFound
}

func (f *fakeItemRepo) List(ctx context.Context, onlyActive bool) ([]models.CompetitionItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	if !onlyActive {
		return f.items, nil
	}
	var active []models.CompetitionItem
	for _, item := range f.items {
		if item.Active {
			active = append(active, item)
		}
	}
	return active, nil
}

func (f *fakeItemRepo) Update(ctx context.Context, item *models.CompetitionItem) error { return nil }
func (f *fakeItemRepo) UpdateResults(ctx context.Context, id int, results models.ItemResults) error {
	return nil
}

func (f *fakeItemRepo) UpdateGrades(ctx context.Context, id int, grades []models.GradeEntry) error {
	return nil
}
func (f *fakeItemRepo) Delete(ctx context.Context, id int) error { return nil }

type fakeSettingsRepo struct {
	settings models.Settings
	err      error
}

func (f *fakeSettingsRepo) Get(ctx context.Context) (*models.Settings, error) {
	if f.err != nil {
		return nil, f.err
	}
	s := f.settings
	return &s, nil
}

func (f *fakeSettingsRepo) Update(ctx context.Context, s *models.Settings) error { return nil }

func fixtureService() ScoreboardService {
	participants := &fakeParticipantRepo{participants: []models.Participant{
		{ID: 1, Name: "Red House", Active: true},
		{ID: 2, Name: "Blue House", Active: true},
		{ID: 3, Name: "Retired House", Active: false},
	}}
	categories := &fakeCategoryRepo{categories: []models.Category{
		{ID: 1, Name: "Kids", Order: 0},
	}}
	items := &fakeItemRepo{items: []models.CompetitionItem{
		{
			ID:       10,
			Title:    "Group Song",
			Category: models.RefTo(1),
			Type:     models.ItemTypeGroup,
			Active:   true,
			Results:  models.ItemResults{First: models.RefTo(1), Second: models.RefTo(2)},
		},
		{
			ID:       11,
			Title:    "Hidden Item",
			Category: models.RefTo(1),
			Type:     models.ItemTypeIndividual,
			Active:   false,
			Results:  models.ItemResults{First: models.RefTo(3)},
		},
	}}
	settings := &fakeSettingsRepo{settings: models.Settings{
		EventName:         "Arts Fest",
		EventStatus:       models.EventStatusLive,
		TickerNews:        nil,
		AutoRotateEnabled: true,
		RotationInterval:  15,
	}}
	return NewScoreboardService(participants, categories, items, settings)
}

func TestLiveAssemblesRankedView(t *testing.T) {
	svc := fixtureService()

	data, err := svc.Live(context.Background())
	require.NoError(t, err)

	// Inactive participants never appear and inactive items never score.
	require.Len(t, data.Scoreboard, 2)
	assert.Equal(t, "Red House", data.Scoreboard[0].Item.Name)
	assert.Equal(t, 10, data.Scoreboard[0].Item.Score)
	assert.Equal(t, 1, data.Scoreboard[0].Rank)
	assert.Equal(t, "1st", data.Scoreboard[0].DisplayRank)
	assert.Equal(t, "Blue House", data.Scoreboard[1].Item.Name)
	assert.Equal(t, 5, data.Scoreboard[1].Item.Score)
	assert.Equal(t, 2, data.Scoreboard[1].Rank)

	assert.Equal(t, "Arts Fest", data.EventName)
	assert.Equal(t, models.EventStatusLive, data.EventStatus)
	assert.True(t, data.AutoRotateEnabled)
	assert.Equal(t, 15, data.RotationInterval)
	assert.NotNil(t, data.TickerNews, "ticker must serialize as [] rather than null")
	assert.False(t, data.LastUpdated.IsZero())
}

func TestMobileDataSortsAndBuildsTables(t *testing.T) {
	svc := fixtureService()

	data, err := svc.MobileData(context.Background())
	require.NoError(t, err)

	require.Len(t, data.Scoreboard, 2)
	assert.GreaterOrEqual(t, data.Scoreboard[0].Score, data.Scoreboard[1].Score)

	require.Len(t, data.Categories, 1)
	assert.Equal(t, "Kids", data.Categories[0].Title)
	assert.Equal(t, []string{"Group Song"}, data.Categories[0].Headers)

	assert.Equal(t, "Arts Fest", data.General.EventName)
	assert.Equal(t, models.EventStatusLive, data.General.EventStatus)
}

func TestParticipantPoints(t *testing.T) {
	svc := fixtureService()

	data, err := svc.ParticipantPoints(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "Red House", data.Participant.Name)
	assert.Equal(t, 10, data.Breakdown.Total)
	assert.Equal(t, 1, data.Breakdown.First.Count)
	// The echoed config carries defaults, not zeros.
	assert.Equal(t, 10, data.PointsSystem.First.Group)
}

func TestParticipantPointsNotFound(t *testing.T) {
	svc := fixtureService()

	_, err := svc.ParticipantPoints(context.Background(), 99)
	assert.ErrorIs(t, err, ErrParticipantNotFound)
}

func TestLivePropagatesRepositoryErrors(t *testing.T) {
	boom := errors.New("connection refused")
	svc := NewScoreboardService(
		&fakeParticipantRepo{err: boom},
		&fakeCategoryRepo{},
		&fakeItemRepo{},
		&fakeSettingsRepo{},
	)

	_, err := svc.Live(context.Background())
	assert.ErrorIs(t, err, boom)
}
