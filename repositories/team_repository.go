package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/playsphere/playsphere/models"
)

var (
	ErrTeamNotFound = errors.New("team not found")
	ErrTeamConflict = errors.New("team with this name already exists for the sport")
)

type TeamRepository interface {
	Create(ctx context.Context, t *models.Team) error
	FindByID(ctx context.Context, id int) (*models.Team, error)
	List(ctx context.Context, sport *models.Sport) ([]*models.Team, error)
	Update(ctx context.Context, t *models.Team) error
	UpdatePhotoKey(ctx context.Context, id int, key *string) error
	SetCaptain(ctx context.Context, id int, captainID *int) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}

type postgresTeamRepository struct {
	db *sql.DB
}

func NewPostgresTeamRepository(db *sql.DB) TeamRepository {
	return &postgresTeamRepository{db: db}
}

func (r *postgresTeamRepository) Create(ctx context.Context, t *models.Team) error {
	query := `
		INSERT INTO teams (name, sport, captain_id)
		VALUES ($1, $2, $3)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query, t.Name, t.Sport, t.CaptainID).Scan(&t.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrTeamConflict
		}
		return fmt.Errorf("failed to create team: %w", err)
	}
	return nil
}

func (r *postgresTeamRepository) FindByID(ctx context.Context, id int) (*models.Team, error) {
	query := `SELECT id, name, sport, captain_id, photo_key FROM teams WHERE id = $1`

	var t models.Team
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&t.ID, &t.Name, &t.Sport, &t.CaptainID, &t.PhotoKey,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to find team by id: %w", err)
	}
	return &t, nil
}

func (r *postgresTeamRepository) List(ctx context.Context, sport *models.Sport) ([]*models.Team, error) {
	query := `
		SELECT id, name, sport, captain_id, photo_key
		FROM teams
		WHERE ($1::text IS NULL OR sport = $1)
		ORDER BY name`

	var sportArg *string
	if sport != nil {
		s := string(*sport)
		sportArg = &s
	}

	rows, err := r.db.QueryContext(ctx, query, sportArg)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	defer rows.Close()

	teams := make([]*models.Team, 0)
	for rows.Next() {
		var t models.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.Sport, &t.CaptainID, &t.PhotoKey); err != nil {
			return nil, fmt.Errorf("failed to scan team row: %w", err)
		}
		teams = append(teams, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("team rows iteration error: %w", err)
	}
	return teams, nil
}

func (r *postgresTeamRepository) Update(ctx context.Context, t *models.Team) error {
	query := `UPDATE teams SET name = $1, sport = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, t.Name, t.Sport, t.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrTeamConflict
		}
		return fmt.Errorf("failed to update team: %w", err)
	}
	return checkAffectedRows(result, ErrTeamNotFound)
}

func (r *postgresTeamRepository) UpdatePhotoKey(ctx context.Context, id int, key *string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE teams SET photo_key = $1 WHERE id = $2`, key, id)
	if err != nil {
		return fmt.Errorf("failed to update team photo key: %w", err)
	}
	return checkAffectedRows(result, ErrTeamNotFound)
}

func (r *postgresTeamRepository) SetCaptain(ctx context.Context, id int, captainID *int) error {
	result, err := r.db.ExecContext(ctx, `UPDATE teams SET captain_id = $1 WHERE id = $2`, captainID, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrPlayerNotFound
		}
		return fmt.Errorf("failed to set team captain: %w", err)
	}
	return checkAffectedRows(result, ErrTeamNotFound)
}

func (r *postgresTeamRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM teams WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}
	return checkAffectedRows(result, ErrTeamNotFound)
}

func (r *postgresTeamRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM teams`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count teams: %w", err)
	}
	return count, nil
}
