package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/artsfest/scoreboard/models"
	"github.com/artsfest/scoreboard/repositories"
)

type ParticipantService interface {
	Create(ctx context.Context, input ParticipantInput) (*models.Participant, error)
	GetByID(ctx context.Context, id int) (*models.Participant, error)
	List(ctx context.Context, onlyActive bool) ([]models.Participant, error)
	Update(ctx context.Context, id int, input ParticipantInput) (*models.Participant, error)
	Delete(ctx context.Context, id int) error
}

type ParticipantInput struct {
	Name      string `json:"name"`
	ShortCode string `json:"shortCode"`
	Active    *bool  `json:"active"`
}

type participantService struct {
	participantRepo repositories.ParticipantRepository
	notifier        *Notifier
}

func NewParticipantService(participantRepo repositories.ParticipantRepository, notifier *Notifier) ParticipantService {
	return &participantService{participantRepo: participantRepo, notifier: notifier}
}

func (s *participantService) Create(ctx context.Context, input ParticipantInput) (*models.Participant, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrParticipantNameRequired
	}

	participant := &models.Participant{
		Name:      name,
		ShortCode: strings.TrimSpace(input.ShortCode),
		Active:    true,
	}
	if input.Active != nil {
		participant.Active = *input.Active
	}

	if err := s.participantRepo.Create(ctx, participant); err != nil {
		return nil, fmt.Errorf("failed to create participant: %w", err)
	}

	s.notifier.ScoreboardChanged(ctx)
	return participant, nil
}

func (s *participantService) GetByID(ctx context.Context, id int) (*models.Participant, error) {
	participant, err := s.participantRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrParticipantNotFound) {
			return nil, ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to get participant %d: %w", id, err)
	}
	return participant, nil
}

func (s *participantService) List(ctx context.Context, onlyActive bool) ([]models.Participant, error) {
	participants, err := s.participantRepo.List(ctx, onlyActive)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	return participants, nil
}

func (s *participantService) Update(ctx context.Context, id int, input ParticipantInput) (*models.Participant, error) {
	participant, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(input.Name); name != "" {
		participant.Name = name
	}
	participant.ShortCode = strings.TrimSpace(input.ShortCode)
	if input.Active != nil {
		participant.Active = *input.Active
	}

	if err := s.participantRepo.Update(ctx, participant); err != nil {
		if errors.Is(err, repositories.ErrParticipantNotFound) {
			return nil, ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to update participant %d: %w", id, err)
	}

	s.notifier.ScoreboardChanged(ctx)
	return participant, nil
}

func (s *participantService) Delete(ctx context.Context, id int) error {
	err := s.participantRepo.Delete(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrParticipantNotFound):
			return ErrParticipantNotFound
		case errors.Is(err, repositories.ErrParticipantInUse):
			return ErrParticipantInUse
		default:
			return fmt.Errorf("failed to delete participant %d: %w", id, err)
		}
	}

	s.notifier.ScoreboardChanged(ctx)
	return nil
}
