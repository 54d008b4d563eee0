package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/artsfest/scoreboard/models"
)

var (
	ErrParticipantNotFound = errors.New("participant not found")
	ErrParticipantInUse    = errors.New("participant cannot be deleted as it is referenced by results")
)

type ParticipantRepository interface {
	Create(ctx context.Context, participant *models.Participant) error
	GetByID(ctx context.Context, id int) (*models.Participant, error)
	List(ctx context.Context, onlyActive bool) ([]models.Participant, error)
	Update(ctx context.Context, participant *models.Participant) error
	Delete(ctx context.Context, id int) error
}

type postgresParticipantRepository struct {
	db *sql.DB
}

func NewPostgresParticipantRepository(db *sql.DB) ParticipantRepository {
	return &postgresParticipantRepository{db: db}
}

func (r *postgresParticipantRepository) Create(ctx context.Context, participant *models.Participant) error {
	query := `
		INSERT INTO participants (name, short_code, active)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`

	return r.db.QueryRowContext(ctx, query,
		participant.Name, participant.ShortCode, participant.Active,
	).Scan(&participant.ID, &participant.CreatedAt, &participant.UpdatedAt)
}

func (r *postgresParticipantRepository) GetByID(ctx context.Context, id int) (*models.Participant, error) {
	query := `
		SELECT id, name, short_code, active, created_at, updated_at
		FROM participants WHERE id = $1`

	var p models.Participant
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.ShortCode, &p.Active, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrParticipantNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *postgresParticipantRepository) List(ctx context.Context, onlyActive bool) ([]models.Participant, error) {
	query := `
		SELECT id, name, short_code, active, created_at, updated_at
		FROM participants`
	if onlyActive {
		query += ` WHERE active`
	}
	query += ` ORDER BY name ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	participants := make([]models.Participant, 0)
	for rows.Next() {
		var p models.Participant
		if err := rows.Scan(&p.ID, &p.Name, &p.ShortCode, &p.Active, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return participants, nil
}

func (r *postgresParticipantRepository) Update(ctx context.Context, participant *models.Participant) error {
	query := `
		UPDATE participants
		SET name = $1, short_code = $2, active = $3, updated_at = now()
		WHERE id = $4`

	result, err := r.db.ExecContext(ctx, query,
		participant.Name, participant.ShortCode, participant.Active, participant.ID,
	)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrParticipantNotFound)
}

func (r *postgresParticipantRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM participants WHERE id = $1`, id)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			return ErrParticipantInUse
		}
		return err
	}
	return checkAffectedRows(result, ErrParticipantNotFound)
}
