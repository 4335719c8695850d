package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/playsphere/playsphere/models"
)

var (
	ErrFootballMatchNotFound = errors.New("football match not found")
	ErrFootballTeamInvalid   = errors.New("football match references an unknown team")
)

type FootballMatchRepository interface {
	Create(ctx context.Context, m *models.FootballMatch) error
	FindByID(ctx context.Context, id int) (*models.FootballMatch, error)
	List(ctx context.Context, status *models.MatchStatus) ([]*models.FootballMatch, error)
	ListCompletedByPlayer(ctx context.Context, playerID, limit int) ([]models.FootballMatch, error)
	ListCompletedByTeam(ctx context.Context, teamID, limit int) ([]models.FootballMatch, error)
	UpdateScored(ctx context.Context, m *models.FootballMatch) error
	CountByStatus(ctx context.Context, status models.MatchStatus) (int, error)
	CountWonByTeam(ctx context.Context, teamID int, teamName string) (int, error)
	Delete(ctx context.Context, id int) error
}

type postgresFootballMatchRepository struct {
	db *sql.DB
}

func NewPostgresFootballMatchRepository(db *sql.DB) FootballMatchRepository {
	return &postgresFootballMatchRepository{db: db}
}

const footballMatchColumns = `
	id, team1_id, team2_id, team1_name, team2_name, date, venue, status,
	winner, score, players_stats, highlights, version`

func (r *postgresFootballMatchRepository) Create(ctx context.Context, m *models.FootballMatch) error {
	score, err := marshalJSONB(m.Score)
	if err != nil {
		return err
	}
	stats, err := marshalJSONB(m.PlayerStats)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO football_matches
			(team1_id, team2_id, team1_name, team2_name, date, venue, status,
			 score, players_stats, highlights)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, version`

	err = r.db.QueryRowContext(ctx, query,
		m.Team1ID, m.Team2ID, m.Team1Name, m.Team2Name, m.Date, m.Venue, m.Status,
		score, stats, pq.Array(m.Highlights),
	).Scan(&m.ID, &m.Version)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrFootballTeamInvalid
		}
		return fmt.Errorf("failed to create football match: %w", err)
	}
	return nil
}

func scanFootballMatch(row interface{ Scan(...any) error }) (*models.FootballMatch, error) {
	var (
		m            models.FootballMatch
		score, stats []byte
	)
	err := row.Scan(
		&m.ID, &m.Team1ID, &m.Team2ID, &m.Team1Name, &m.Team2Name,
		&m.Date, &m.Venue, &m.Status, &m.Winner,
		&score, &stats, pq.Array(&m.Highlights), &m.Version,
	)
	if err != nil {
		return nil, err
	}
	if err := unmarshalJSONB(score, &m.Score); err != nil {
		return nil, err
	}
	if err := unmarshalJSONB(stats, &m.PlayerStats); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *postgresFootballMatchRepository) FindByID(ctx context.Context, id int) (*models.FootballMatch, error) {
	query := `SELECT` + footballMatchColumns + ` FROM football_matches WHERE id = $1`

	m, err := scanFootballMatch(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFootballMatchNotFound
		}
		return nil, fmt.Errorf("failed to find football match by id: %w", err)
	}
	return m, nil
}

func (r *postgresFootballMatchRepository) List(ctx context.Context, status *models.MatchStatus) ([]*models.FootballMatch, error) {
	query := `
		SELECT` + footballMatchColumns + `
		FROM football_matches
		WHERE ($1::text IS NULL OR status = $1)
		ORDER BY date DESC`

	var statusArg *string
	if status != nil {
		s := string(*status)
		statusArg = &s
	}

	rows, err := r.db.QueryContext(ctx, query, statusArg)
	if err != nil {
		return nil, fmt.Errorf("failed to list football matches: %w", err)
	}
	defer rows.Close()

	matches := make([]*models.FootballMatch, 0)
	for rows.Next() {
		m, err := scanFootballMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan football match row: %w", err)
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("football match rows iteration error: %w", err)
	}
	return matches, nil
}

func (r *postgresFootballMatchRepository) ListCompletedByPlayer(ctx context.Context, playerID, limit int) ([]models.FootballMatch, error) {
	query := `
		SELECT` + footballMatchColumns + `
		FROM football_matches
		WHERE status = 'completed'
		  AND players_stats @> jsonb_build_array(jsonb_build_object('player_id', $1::int))
		ORDER BY date DESC
		LIMIT $2`

	return r.listCompleted(ctx, query, playerID, limit)
}

func (r *postgresFootballMatchRepository) ListCompletedByTeam(ctx context.Context, teamID, limit int) ([]models.FootballMatch, error) {
	query := `
		SELECT` + footballMatchColumns + `
		FROM football_matches
		WHERE status = 'completed' AND (team1_id = $1 OR team2_id = $1)
		ORDER BY date DESC
		LIMIT $2`

	return r.listCompleted(ctx, query, teamID, limit)
}

func (r *postgresFootballMatchRepository) listCompleted(ctx context.Context, query string, id, limit int) ([]models.FootballMatch, error) {
	rows, err := r.db.QueryContext(ctx, query, id, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list completed football matches: %w", err)
	}
	defer rows.Close()

	matches := make([]models.FootballMatch, 0)
	for rows.Next() {
		m, err := scanFootballMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan football match row: %w", err)
		}
		matches = append(matches, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("football match rows iteration error: %w", err)
	}
	return matches, nil
}

func (r *postgresFootballMatchRepository) UpdateScored(ctx context.Context, m *models.FootballMatch) error {
	score, err := marshalJSONB(m.Score)
	if err != nil {
		return err
	}
	stats, err := marshalJSONB(m.PlayerStats)
	if err != nil {
		return err
	}

	query := `
		UPDATE football_matches
		SET status = $1, winner = $2, score = $3, players_stats = $4,
			highlights = $5, version = version + 1
		WHERE id = $6 AND version = $7`

	result, err := r.db.ExecContext(ctx, query,
		m.Status, m.Winner, score, stats, pq.Array(m.Highlights),
		m.ID, m.Version,
	)
	if err != nil {
		return fmt.Errorf("failed to update football match: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if rowsAffected == 0 {
		var exists bool
		if err := r.db.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM football_matches WHERE id = $1)`, m.ID,
		).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check football match existence: %w", err)
		}
		if !exists {
			return ErrFootballMatchNotFound
		}
		return ErrVersionConflict
	}
	m.Version++
	return nil
}

func (r *postgresFootballMatchRepository) CountByStatus(ctx context.Context, status models.MatchStatus) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM football_matches WHERE status = $1`, status,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count football matches: %w", err)
	}
	return count, nil
}

// CountWonByTeam counts every completed football match the team has won,
// matched by enrolled side and winner display name.
func (r *postgresFootballMatchRepository) CountWonByTeam(ctx context.Context, teamID int, teamName string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM football_matches WHERE (team1_id = $1 OR team2_id = $1) AND winner = $2`,
		teamID, teamName,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count football wins: %w", err)
	}
	return count, nil
}

func (r *postgresFootballMatchRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM football_matches WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete football match: %w", err)
	}
	return checkAffectedRows(result, ErrFootballMatchNotFound)
}
