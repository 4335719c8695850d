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
	ErrBadmintonMatchNotFound = errors.New("badminton match not found")
	ErrBadmintonRefInvalid    = errors.New("badminton match references an unknown player or team")
)

type BadmintonMatchRepository interface {
	Create(ctx context.Context, m *models.BadmintonMatch) error
	FindByID(ctx context.Context, id int) (*models.BadmintonMatch, error)
	List(ctx context.Context, status *models.MatchStatus) ([]*models.BadmintonMatch, error)
	ListCompletedByPlayer(ctx context.Context, playerID, limit int) ([]models.BadmintonMatch, error)
	ListCompletedByTeam(ctx context.Context, teamID, limit int) ([]models.BadmintonMatch, error)
	UpdateScored(ctx context.Context, m *models.BadmintonMatch) error
	CountByStatus(ctx context.Context, status models.MatchStatus) (int, error)
	CountWonByTeam(ctx context.Context, teamID int, teamName string) (int, error)
	Delete(ctx context.Context, id int) error
}

type postgresBadmintonMatchRepository struct {
	db *sql.DB
}

func NewPostgresBadmintonMatchRepository(db *sql.DB) BadmintonMatchRepository {
	return &postgresBadmintonMatchRepository{db: db}
}

const badmintonMatchColumns = `
	id, player1_id, player2_id, team1_id, team2_id, team1_name, team2_name,
	date, venue, status, winner, score, players_stats, highlights, version`

func (r *postgresBadmintonMatchRepository) Create(ctx context.Context, m *models.BadmintonMatch) error {
	score, err := marshalJSONB(m.Score)
	if err != nil {
		return err
	}
	stats, err := marshalJSONB(m.PlayerStats)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO badminton_matches
			(player1_id, player2_id, team1_id, team2_id, team1_name, team2_name,
			 date, venue, status, score, players_stats, highlights)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, version`

	err = r.db.QueryRowContext(ctx, query,
		m.Player1ID, m.Player2ID, m.Team1ID, m.Team2ID, m.Team1Name, m.Team2Name,
		m.Date, m.Venue, m.Status, score, stats, pq.Array(m.Highlights),
	).Scan(&m.ID, &m.Version)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrBadmintonRefInvalid
		}
		return fmt.Errorf("failed to create badminton match: %w", err)
	}
	return nil
}

func scanBadmintonMatch(row interface{ Scan(...any) error }) (*models.BadmintonMatch, error) {
	var (
		m            models.BadmintonMatch
		score, stats []byte
	)
	err := row.Scan(
		&m.ID, &m.Player1ID, &m.Player2ID, &m.Team1ID, &m.Team2ID,
		&m.Team1Name, &m.Team2Name, &m.Date, &m.Venue, &m.Status, &m.Winner,
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

func (r *postgresBadmintonMatchRepository) FindByID(ctx context.Context, id int) (*models.BadmintonMatch, error) {
	query := `SELECT` + badmintonMatchColumns + ` FROM badminton_matches WHERE id = $1`

	m, err := scanBadmintonMatch(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBadmintonMatchNotFound
		}
		return nil, fmt.Errorf("failed to find badminton match by id: %w", err)
	}
	return m, nil
}

func (r *postgresBadmintonMatchRepository) List(ctx context.Context, status *models.MatchStatus) ([]*models.BadmintonMatch, error) {
	query := `
		SELECT` + badmintonMatchColumns + `
		FROM badminton_matches
		WHERE ($1::text IS NULL OR status = $1)
		ORDER BY date DESC`

	var statusArg *string
	if status != nil {
		s := string(*status)
		statusArg = &s
	}

	rows, err := r.db.QueryContext(ctx, query, statusArg)
	if err != nil {
		return nil, fmt.Errorf("failed to list badminton matches: %w", err)
	}
	defer rows.Close()

	matches := make([]*models.BadmintonMatch, 0)
	for rows.Next() {
		m, err := scanBadmintonMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan badminton match row: %w", err)
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("badminton match rows iteration error: %w", err)
	}
	return matches, nil
}

func (r *postgresBadmintonMatchRepository) ListCompletedByPlayer(ctx context.Context, playerID, limit int) ([]models.BadmintonMatch, error) {
	query := `
		SELECT` + badmintonMatchColumns + `
		FROM badminton_matches
		WHERE status = 'completed'
		  AND players_stats @> jsonb_build_array(jsonb_build_object('player_id', $1::int))
		ORDER BY date DESC
		LIMIT $2`

	return r.listCompleted(ctx, query, playerID, limit)
}

func (r *postgresBadmintonMatchRepository) ListCompletedByTeam(ctx context.Context, teamID, limit int) ([]models.BadmintonMatch, error) {
	query := `
		SELECT` + badmintonMatchColumns + `
		FROM badminton_matches
		WHERE status = 'completed' AND (team1_id = $1 OR team2_id = $1)
		ORDER BY date DESC
		LIMIT $2`

	return r.listCompleted(ctx, query, teamID, limit)
}

func (r *postgresBadmintonMatchRepository) listCompleted(ctx context.Context, query string, id, limit int) ([]models.BadmintonMatch, error) {
	rows, err := r.db.QueryContext(ctx, query, id, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list completed badminton matches: %w", err)
	}
	defer rows.Close()

	matches := make([]models.BadmintonMatch, 0)
	for rows.Next() {
		m, err := scanBadmintonMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan badminton match row: %w", err)
		}
		matches = append(matches, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("badminton match rows iteration error: %w", err)
	}
	return matches, nil
}

func (r *postgresBadmintonMatchRepository) UpdateScored(ctx context.Context, m *models.BadmintonMatch) error {
	score, err := marshalJSONB(m.Score)
	if err != nil {
		return err
	}
	stats, err := marshalJSONB(m.PlayerStats)
	if err != nil {
		return err
	}

	query := `
		UPDATE badminton_matches
		SET status = $1, winner = $2, score = $3, players_stats = $4,
			highlights = $5, version = version + 1
		WHERE id = $6 AND version = $7`

	result, err := r.db.ExecContext(ctx, query,
		m.Status, m.Winner, score, stats, pq.Array(m.Highlights),
		m.ID, m.Version,
	)
	if err != nil {
		return fmt.Errorf("failed to update badminton match: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if rowsAffected == 0 {
		var exists bool
		if err := r.db.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM badminton_matches WHERE id = $1)`, m.ID,
		).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check badminton match existence: %w", err)
		}
		if !exists {
			return ErrBadmintonMatchNotFound
		}
		return ErrVersionConflict
	}
	m.Version++
	return nil
}

func (r *postgresBadmintonMatchRepository) CountByStatus(ctx context.Context, status models.MatchStatus) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM badminton_matches WHERE status = $1`, status,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count badminton matches: %w", err)
	}
	return count, nil
}

// CountWonByTeam counts every completed badminton match the team has won,
// matched by enrolled side and winner display name.
func (r *postgresBadmintonMatchRepository) CountWonByTeam(ctx context.Context, teamID int, teamName string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM badminton_matches WHERE (team1_id = $1 OR team2_id = $1) AND winner = $2`,
		teamID, teamName,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count badminton wins: %w", err)
	}
	return count, nil
}

func (r *postgresBadmintonMatchRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM badminton_matches WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete badminton match: %w", err)
	}
	return checkAffectedRows(result, ErrBadmintonMatchNotFound)
}
