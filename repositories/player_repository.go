package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/playsphere/playsphere/models"
)

var (
	ErrPlayerNotFound    = errors.New("player not found")
	ErrPlayerConflict    = errors.New("player with this email or roll number already exists")
	ErrPlayerTeamInvalid = errors.New("player references an unknown team")
)

type PlayerFilter struct {
	Sport  *models.Sport
	TeamID *int
}

type PlayerRepository interface {
	Create(ctx context.Context, p *models.Player) error
	FindByID(ctx context.Context, id int) (*models.Player, error)
	FindByEmail(ctx context.Context, email string) (*models.Player, error)
	List(ctx context.Context, filter PlayerFilter) ([]*models.Player, error)
	ListByTeam(ctx context.Context, teamID int) ([]*models.Player, error)
	ListTop(ctx context.Context, limit int) ([]*models.Player, error)
	Update(ctx context.Context, p *models.Player) error
	UpdatePhotoKey(ctx context.Context, id int, key *string) error
	AssignTeam(ctx context.Context, id int, teamID *int) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

type postgresPlayerRepository struct {
	db *sql.DB
}

func NewPostgresPlayerRepository(db *sql.DB) PlayerRepository {
	return &postgresPlayerRepository{db: db}
}

const playerColumns = `
	p.id, p.name, p.father_name, p.mother_name, p.phone, p.email,
	p.roll_no, p.age, p.sport, p.category, p.ranking,
	p.team_id, COALESCE(t.name, ''), p.photo_key`

func scanPlayer(row interface{ Scan(...any) error }) (*models.Player, error) {
	var p models.Player
	err := row.Scan(
		&p.ID, &p.Name, &p.FatherName, &p.MotherName, &p.Phone, &p.Email,
		&p.RollNo, &p.Age, &p.Sport, &p.Category, &p.Ranking,
		&p.TeamID, &p.TeamName, &p.PhotoKey,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postgresPlayerRepository) Create(ctx context.Context, p *models.Player) error {
	query := `
		INSERT INTO players (name, father_name, mother_name, phone, email,
			roll_no, age, sport, category, ranking, team_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		p.Name, p.FatherName, p.MotherName, p.Phone, p.Email,
		p.RollNo, p.Age, p.Sport, p.Category, p.Ranking, p.TeamID,
	).Scan(&p.ID)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrPlayerConflict
		}
		if isForeignKeyViolation(err) {
			return ErrPlayerTeamInvalid
		}
		return fmt.Errorf("failed to create player: %w", err)
	}
	return nil
}

func (r *postgresPlayerRepository) FindByID(ctx context.Context, id int) (*models.Player, error) {
	query := `
		SELECT` + playerColumns + `
		FROM players p
		LEFT JOIN teams t ON t.id = p.team_id
		WHERE p.id = $1`

	p, err := scanPlayer(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to find player by id: %w", err)
	}
	return p, nil
}

func (r *postgresPlayerRepository) FindByEmail(ctx context.Context, email string) (*models.Player, error) {
	query := `
		SELECT` + playerColumns + `
		FROM players p
		LEFT JOIN teams t ON t.id = p.team_id
		WHERE p.email = $1`

	p, err := scanPlayer(r.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to find player by email: %w", err)
	}
	return p, nil
}

func (r *postgresPlayerRepository) List(ctx context.Context, filter PlayerFilter) ([]*models.Player, error) {
	query := `
		SELECT` + playerColumns + `
		FROM players p
		LEFT JOIN teams t ON t.id = p.team_id
		WHERE ($1::text IS NULL OR p.sport = $1)
		  AND ($2::int IS NULL OR p.team_id = $2)
		ORDER BY p.ranking DESC, p.name`

	var sport *string
	if filter.Sport != nil {
		s := string(*filter.Sport)
		sport = &s
	}

	rows, err := r.db.QueryContext(ctx, query, sport, filter.TeamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	defer rows.Close()

	return collectPlayers(rows)
}

func (r *postgresPlayerRepository) ListByTeam(ctx context.Context, teamID int) ([]*models.Player, error) {
	query := `
		SELECT` + playerColumns + `
		FROM players p
		LEFT JOIN teams t ON t.id = p.team_id
		WHERE p.team_id = $1
		ORDER BY p.name`

	rows, err := r.db.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list players by team: %w", err)
	}
	defer rows.Close()

	return collectPlayers(rows)
}

// ListTop returns the highest-ranked players across all sports.
func (r *postgresPlayerRepository) ListTop(ctx context.Context, limit int) ([]*models.Player, error) {
	query := `
		SELECT` + playerColumns + `
		FROM players p
		LEFT JOIN teams t ON t.id = p.team_id
		ORDER BY p.ranking DESC, p.name
		LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list top players: %w", err)
	}
	defer rows.Close()

	return collectPlayers(rows)
}

func collectPlayers(rows *sql.Rows) ([]*models.Player, error) {
	players := make([]*models.Player, 0)
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan player row: %w", err)
		}
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("player rows iteration error: %w", err)
	}
	return players, nil
}

func (r *postgresPlayerRepository) Update(ctx context.Context, p *models.Player) error {
	query := `
		UPDATE players
		SET name = $1, father_name = $2, mother_name = $3, phone = $4,
			email = $5, roll_no = $6, age = $7, sport = $8, category = $9,
			ranking = $10
		WHERE id = $11`

	result, err := r.db.ExecContext(ctx, query,
		p.Name, p.FatherName, p.MotherName, p.Phone,
		p.Email, p.RollNo, p.Age, p.Sport, p.Category,
		p.Ranking, p.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrPlayerConflict
		}
		return fmt.Errorf("failed to update player: %w", err)
	}
	return checkAffectedRows(result, ErrPlayerNotFound)
}

func (r *postgresPlayerRepository) UpdatePhotoKey(ctx context.Context, id int, key *string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE players SET photo_key = $1 WHERE id = $2`, key, id)
	if err != nil {
		return fmt.Errorf("failed to update player photo key: %w", err)
	}
	return checkAffectedRows(result, ErrPlayerNotFound)
}

func (r *postgresPlayerRepository) AssignTeam(ctx context.Context, id int, teamID *int) error {
	result, err := r.db.ExecContext(ctx, `UPDATE players SET team_id = $1 WHERE id = $2`, teamID, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrPlayerTeamInvalid
		}
		return fmt.Errorf("failed to assign player team: %w", err)
	}
	return checkAffectedRows(result, ErrPlayerNotFound)
}

func (r *postgresPlayerRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM players WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}
	return checkAffectedRows(result, ErrPlayerNotFound)
}

func (r *postgresPlayerRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM players`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count players: %w", err)
	}
	return count, nil
}

func (r *postgresPlayerRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM players WHERE email = $1)`, email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check player email: %w", err)
	}
	return exists, nil
}
