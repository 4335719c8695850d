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
	ErrCricketMatchNotFound = errors.New("cricket match not found")
	ErrCricketTeamInvalid   = errors.New("cricket match references an unknown team")
)

// CricketMatchRepository persists cricket matches. The score, the per-player
// stat lines and the ball-by-ball log live in jsonb columns and travel with
// the row as one document; scored writes are guarded by a version counter.
type CricketMatchRepository interface {
	Create(ctx context.Context, m *models.CricketMatch) error
	FindByID(ctx context.Context, id int) (*models.CricketMatch, error)
	List(ctx context.Context, status *models.MatchStatus) ([]*models.CricketMatch, error)
	ListCompletedByPlayer(ctx context.Context, playerID, limit int) ([]models.CricketMatch, error)
	ListCompletedByTeam(ctx context.Context, teamID, limit int) ([]models.CricketMatch, error)
	UpdateScored(ctx context.Context, m *models.CricketMatch) error
	CountByStatus(ctx context.Context, status models.MatchStatus) (int, error)
	CountWonByTeam(ctx context.Context, teamID int, teamName string) (int, error)
	Delete(ctx context.Context, id int) error
}

type postgresCricketMatchRepository struct {
	db *sql.DB
}

func NewPostgresCricketMatchRepository(db *sql.DB) CricketMatchRepository {
	return &postgresCricketMatchRepository{db: db}
}

const cricketMatchColumns = `
	id, team1_id, team2_id, team1_name, team2_name, date, venue, status,
	winner, toss_winner_id, chose_batting, chose_bowling,
	score, players_stats, ball_stats, highlights, version`

func (r *postgresCricketMatchRepository) Create(ctx context.Context, m *models.CricketMatch) error {
	score, err := marshalJSONB(m.Score)
	if err != nil {
		return err
	}
	stats, err := marshalJSONB(m.PlayerStats)
	if err != nil {
		return err
	}
	balls, err := marshalJSONB(m.Balls)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO cricket_matches
			(team1_id, team2_id, team1_name, team2_name, date, venue, status,
			 score, players_stats, ball_stats, highlights)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, version`

	err = r.db.QueryRowContext(ctx, query,
		m.Team1ID, m.Team2ID, m.Team1Name, m.Team2Name, m.Date, m.Venue, m.Status,
		score, stats, balls, pq.Array(m.Highlights),
	).Scan(&m.ID, &m.Version)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrCricketTeamInvalid
		}
		return fmt.Errorf("failed to create cricket match: %w", err)
	}
	return nil
}

func scanCricketMatch(row interface{ Scan(...any) error }) (*models.CricketMatch, error) {
	var (
		m            models.CricketMatch
		score, stats []byte
		balls        []byte
	)
	err := row.Scan(
		&m.ID, &m.Team1ID, &m.Team2ID, &m.Team1Name, &m.Team2Name,
		&m.Date, &m.Venue, &m.Status,
		&m.Winner, &m.TossWinnerID, &m.ChoseBatting, &m.ChoseBowling,
		&score, &stats, &balls, pq.Array(&m.Highlights), &m.Version,
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
	if err := unmarshalJSONB(balls, &m.Balls); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *postgresCricketMatchRepository) FindByID(ctx context.Context, id int) (*models.CricketMatch, error) {
	query := `SELECT` + cricketMatchColumns + ` FROM cricket_matches WHERE id = $1`

	m, err := scanCricketMatch(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCricketMatchNotFound
		}
		return nil, fmt.Errorf("failed to find cricket match by id: %w", err)
	}
	return m, nil
}

func (r *postgresCricketMatchRepository) List(ctx context.Context, status *models.MatchStatus) ([]*models.CricketMatch, error) {
	query := `
		SELECT` + cricketMatchColumns + `
		FROM cricket_matches
		WHERE ($1::text IS NULL OR status = $1)
		ORDER BY date DESC`

	var statusArg *string
	if status != nil {
		s := string(*status)
		statusArg = &s
	}

	rows, err := r.db.QueryContext(ctx, query, statusArg)
	if err != nil {
		return nil, fmt.Errorf("failed to list cricket matches: %w", err)
	}
	defer rows.Close()

	matches := make([]*models.CricketMatch, 0)
	for rows.Next() {
		m, err := scanCricketMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cricket match row: %w", err)
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("cricket match rows iteration error: %w", err)
	}
	return matches, nil
}

func (r *postgresCricketMatchRepository) ListCompletedByPlayer(ctx context.Context, playerID, limit int) ([]models.CricketMatch, error) {
	query := `
		SELECT` + cricketMatchColumns + `
		FROM cricket_matches
		WHERE status = 'completed'
		  AND players_stats @> jsonb_build_array(jsonb_build_object('player_id', $1::int))
		ORDER BY date DESC
		LIMIT $2`

	return r.listCompleted(ctx, query, playerID, limit)
}

func (r *postgresCricketMatchRepository) ListCompletedByTeam(ctx context.Context, teamID, limit int) ([]models.CricketMatch, error) {
	query := `
		SELECT` + cricketMatchColumns + `
		FROM cricket_matches
		WHERE status = 'completed' AND (team1_id = $1 OR team2_id = $1)
		ORDER BY date DESC
		LIMIT $2`

	return r.listCompleted(ctx, query, teamID, limit)
}

func (r *postgresCricketMatchRepository) listCompleted(ctx context.Context, query string, id, limit int) ([]models.CricketMatch, error) {
	rows, err := r.db.QueryContext(ctx, query, id, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list completed cricket matches: %w", err)
	}
	defer rows.Close()

	matches := make([]models.CricketMatch, 0)
	for rows.Next() {
		m, err := scanCricketMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cricket match row: %w", err)
		}
		matches = append(matches, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("cricket match rows iteration error: %w", err)
	}
	return matches, nil
}

// UpdateScored writes back the mutable part of the match document. The
// write only lands when the stored version still matches the one the
// caller read; on success the in-memory version is advanced to match the
// row.
func (r *postgresCricketMatchRepository) UpdateScored(ctx context.Context, m *models.CricketMatch) error {
	score, err := marshalJSONB(m.Score)
	if err != nil {
		return err
	}
	stats, err := marshalJSONB(m.PlayerStats)
	if err != nil {
		return err
	}
	balls, err := marshalJSONB(m.Balls)
	if err != nil {
		return err
	}

	query := `
		UPDATE cricket_matches
		SET status = $1, winner = $2,
			toss_winner_id = $3, chose_batting = $4, chose_bowling = $5,
			score = $6, players_stats = $7, ball_stats = $8, highlights = $9,
			version = version + 1
		WHERE id = $10 AND version = $11`

	result, err := r.db.ExecContext(ctx, query,
		m.Status, m.Winner,
		m.TossWinnerID, m.ChoseBatting, m.ChoseBowling,
		score, stats, balls, pq.Array(m.Highlights),
		m.ID, m.Version,
	)
	if err != nil {
		return fmt.Errorf("failed to update cricket match: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if rowsAffected == 0 {
		var exists bool
		if err := r.db.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM cricket_matches WHERE id = $1)`, m.ID,
		).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check cricket match existence: %w", err)
		}
		if !exists {
			return ErrCricketMatchNotFound
		}
		return ErrVersionConflict
	}
	m.Version++
	return nil
}

func (r *postgresCricketMatchRepository) CountByStatus(ctx context.Context, status models.MatchStatus) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM cricket_matches WHERE status = $1`, status,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count cricket matches: %w", err)
	}
	return count, nil
}

// CountWonByTeam counts every completed cricket match the team has won,
// matched by enrolled side and winner display name.
func (r *postgresCricketMatchRepository) CountWonByTeam(ctx context.Context, teamID int, teamName string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM cricket_matches WHERE (team1_id = $1 OR team2_id = $1) AND winner = $2`,
		teamID, teamName,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count cricket wins: %w", err)
	}
	return count, nil
}

func (r *postgresCricketMatchRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM cricket_matches WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete cricket match: %w", err)
	}
	return checkAffectedRows(result, ErrCricketMatchNotFound)
}
