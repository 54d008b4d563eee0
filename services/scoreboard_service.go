package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/artsfest/scoreboard/models"
	"github.com/artsfest/scoreboard/repositories"
	"github.com/artsfest/scoreboard/scoring"
)

// LiveData is the payload of the live display feed: the ranked scoreboard
// plus everything the rotating display needs from settings.
type LiveData struct {
	Scoreboard        []scoring.Ranked[models.ScoreboardEntry] `json:"scoreboard"`
	FlashNews         string                                   `json:"flashNews,omitempty"`
	TickerNews        []string                                 `json:"tickerNews"`
	EventStatus       string                                   `json:"eventStatus"`
	EventName         string                                   `json:"eventName"`
	AutoRotateEnabled bool                                     `json:"autoRotateEnabled"`
	RotationInterval  int                                      `json:"rotationInterval"`
	PointsSystem      models.PointsConfig                      `json:"pointsSystem"`
	LastUpdated       time.Time                                `json:"lastUpdated"`
}

// GeneralInfo is the settings block of the combined payload.
type GeneralInfo struct {
	FlashNews   string   `json:"flashNews,omitempty"`
	TickerNews  []string `json:"tickerNews"`
	EventStatus string   `json:"eventStatus"`
	EventName   string   `json:"eventName"`
}

// MobileData is the combined payload: scoreboard sorted by score plus one
// pivot table per category.
type MobileData struct {
	Scoreboard []models.ScoreboardEntry `json:"scoreboard"`
	Categories []models.PivotTable      `json:"categories"`
	General    GeneralInfo              `json:"general"`
}

// ParticipantPoints is the per-participant breakdown payload, echoing the
// point system the numbers were computed under.
type ParticipantPoints struct {
	Participant  *models.Participant   `json:"participant"`
	Breakdown    models.ScoreBreakdown `json:"breakdown"`
	PointsSystem models.PointsConfig   `json:"pointsSystem"`
}

type ScoreboardService interface {
	Scoreboard(ctx context.Context) (*models.Scoreboard, error)
	Live(ctx context.Context) (*LiveData, error)
	MobileData(ctx context.Context) (*MobileData, error)
	ParticipantPoints(ctx context.Context, participantID int) (*ParticipantPoints, error)
}

type scoreboardService struct {
	participantRepo repositories.ParticipantRepository
	categoryRepo    repositories.CategoryRepository
	itemRepo        repositories.ItemRepository
	settingsRepo    repositories.SettingsRepository
}

func NewScoreboardService(
	participantRepo repositories.ParticipantRepository,
	categoryRepo repositories.CategoryRepository,
	itemRepo repositories.ItemRepository,
	settingsRepo repositories.SettingsRepository,
) ScoreboardService {
	return &scoreboardService{
		participantRepo: participantRepo,
		categoryRepo:    categoryRepo,
		itemRepo:        itemRepo,
		settingsRepo:    settingsRepo,
	}
}

type records struct {
	participants []models.Participant
	categories   []models.Category
	items        []models.CompetitionItem
	settings     *models.Settings
}

// fetchRecords loads the full snapshot the scoring engine works on. Active
// participants and active items only; inactive records are hidden from every
// computed view.
func (s *scoreboardService) fetchRecords(ctx context.Context) (*records, error) {
	var rec records
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		rec.participants, err = s.participantRepo.List(ctx, true)
		return err
	})
	g.Go(func() error {
		var err error
		rec.categories, err = s.categoryRepo.List(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		rec.items, err = s.itemRepo.List(ctx, true)
		return err
	})
	g.Go(func() error {
		var err error
		rec.settings, err = s.settingsRepo.Get(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to fetch scoreboard records: %w", err)
	}
	return &rec, nil
}

func (s *scoreboardService) Scoreboard(ctx context.Context) (*models.Scoreboard, error) {
	rec, err := s.fetchRecords(ctx)
	if err != nil {
		return nil, err
	}
	board := scoring.ComputeScoreboard(rec.participants, rec.items, rec.settings.Points, time.Now().UTC())
	return &board, nil
}

func (s *scoreboardService) Live(ctx context.Context) (*LiveData, error) {
	rec, err := s.fetchRecords(ctx)
	if err != nil {
		return nil, err
	}

	board := scoring.ComputeScoreboard(rec.participants, rec.items, rec.settings.Points, time.Now().UTC())
	ranked := scoring.Rank(board.Entries, func(e models.ScoreboardEntry) int { return e.Score })

	settings := rec.settings
	return &LiveData{
		Scoreboard:        ranked,
		FlashNews:         settings.FlashNews,
		TickerNews:        tickerOrEmpty(settings.TickerNews),
		EventStatus:       settings.EventStatus,
		EventName:         settings.EventName,
		AutoRotateEnabled: settings.AutoRotateEnabled,
		RotationInterval:  settings.RotationInterval,
		PointsSystem:      board.Points,
		LastUpdated:       board.LastUpdated,
	}, nil
}

func (s *scoreboardService) MobileData(ctx context.Context) (*MobileData, error) {
	rec, err := s.fetchRecords(ctx)
	if err != nil {
		return nil, err
	}

	board := scoring.ComputeScoreboard(rec.participants, rec.items, rec.settings.Points, time.Now().UTC())
	entries := board.Entries
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Score > entries[j].Score })

	tables := scoring.BuildPivotTables(rec.categories, rec.items, rec.participants, rec.settings.Points)

	return &MobileData{
		Scoreboard: entries,
		Categories: tables,
		General: GeneralInfo{
			FlashNews:   rec.settings.FlashNews,
			TickerNews:  tickerOrEmpty(rec.settings.TickerNews),
			EventStatus: rec.settings.EventStatus,
			EventName:   rec.settings.EventName,
		},
	}, nil
}

func (s *scoreboardService) ParticipantPoints(ctx context.Context, participantID int) (*ParticipantPoints, error) {
	var (
		participant *models.Participant
		items       []models.CompetitionItem
		settings    *models.Settings
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		participant, err = s.participantRepo.GetByID(gctx, participantID)
		if errors.Is(err, repositories.ErrParticipantNotFound) {
			return ErrParticipantNotFound
		}
		return err
	})
	g.Go(func() error {
		var err error
		items, err = s.itemRepo.List(gctx, true)
		return err
	})
	g.Go(func() error {
		var err error
		settings, err = s.settingsRepo.Get(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		if errors.Is(err, ErrParticipantNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to fetch participant points records: %w", err)
	}

	breakdown := scoring.ParticipantBreakdown(participantID, items, settings.Points)
	return &ParticipantPoints{
		Participant:  participant,
		Breakdown:    breakdown,
		PointsSystem: scoring.EffectiveConfig(settings.Points),
	}, nil
}

func tickerOrEmpty(news []string) []string {
	if news == nil {
		return []string{}
	}
	return news
}
