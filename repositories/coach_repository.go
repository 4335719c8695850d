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
	ErrCoachNotFound        = errors.New("coach not found")
	ErrCoachConflict        = errors.New("coach with this email already exists")
	ErrRegistrationNotFound = errors.New("player registration not found")
	ErrRegistrationConflict = errors.New("registration with this email or aadhar already exists")
)

type CoachRepository interface {
	Create(ctx context.Context, c *models.Coach) error
	FindByID(ctx context.Context, id int) (*models.Coach, error)
	List(ctx context.Context) ([]*models.Coach, error)
	UpdatePhotoKey(ctx context.Context, id int, key *string) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

type postgresCoachRepository struct {
	db *sql.DB
}

func NewPostgresCoachRepository(db *sql.DB) CoachRepository {
	return &postgresCoachRepository{db: db}
}

func (r *postgresCoachRepository) Create(ctx context.Context, c *models.Coach) error {
	query := `
		INSERT INTO coaches (name, email, phone, address, dob, specialization, education, bio)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		c.Name, c.Email, c.Phone, c.Address, c.DOB, c.Specialization, c.Education, c.Bio,
	).Scan(&c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrCoachConflict
		}
		return fmt.Errorf("failed to create coach: %w", err)
	}
	return nil
}

func (r *postgresCoachRepository) FindByID(ctx context.Context, id int) (*models.Coach, error) {
	query := `
		SELECT id, name, email, phone, address, dob, specialization, education, bio, photo_key
		FROM coaches WHERE id = $1`

	var c models.Coach
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.DOB,
		&c.Specialization, &c.Education, &c.Bio, &c.PhotoKey,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCoachNotFound
		}
		return nil, fmt.Errorf("failed to find coach by id: %w", err)
	}
	return &c, nil
}

func (r *postgresCoachRepository) List(ctx context.Context) ([]*models.Coach, error) {
	query := `
		SELECT id, name, email, phone, address, dob, specialization, education, bio, photo_key
		FROM coaches ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list coaches: %w", err)
	}
	defer rows.Close()

	coaches := make([]*models.Coach, 0)
	for rows.Next() {
		var c models.Coach
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.DOB,
			&c.Specialization, &c.Education, &c.Bio, &c.PhotoKey,
		); err != nil {
			return nil, fmt.Errorf("failed to scan coach row: %w", err)
		}
		coaches = append(coaches, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("coach rows iteration error: %w", err)
	}
	return coaches, nil
}

func (r *postgresCoachRepository) UpdatePhotoKey(ctx context.Context, id int, key *string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE coaches SET photo_key = $1 WHERE id = $2`, key, id)
	if err != nil {
		return fmt.Errorf("failed to update coach photo key: %w", err)
	}
	return checkAffectedRows(result, ErrCoachNotFound)
}

func (r *postgresCoachRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM coaches WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete coach: %w", err)
	}
	return checkAffectedRows(result, ErrCoachNotFound)
}

func (r *postgresCoachRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM coaches`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count coaches: %w", err)
	}
	return count, nil
}

func (r *postgresCoachRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM coaches WHERE email = $1)`, email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check coach email: %w", err)
	}
	return exists, nil
}

// RegistrationRepository stores coach-submitted player application forms.
// An application is separate from the player roster: it only becomes a
// player when an admin approves it.
type RegistrationRepository interface {
	Create(ctx context.Context, reg *models.PlayerRegistration) error
	FindByID(ctx context.Context, id int) (*models.PlayerRegistration, error)
	List(ctx context.Context) ([]*models.PlayerRegistration, error)
	UpdatePhotoKey(ctx context.Context, id int, key *string) error
	Delete(ctx context.Context, id int) error
	EmailExists(ctx context.Context, email string) (bool, error)
}

type postgresRegistrationRepository struct {
	db *sql.DB
}

func NewPostgresRegistrationRepository(db *sql.DB) RegistrationRepository {
	return &postgresRegistrationRepository{db: db}
}

func (r *postgresRegistrationRepository) Create(ctx context.Context, reg *models.PlayerRegistration) error {
	query := `
		INSERT INTO player_registrations
			(name, email, phone, address, dob, education, father_name,
			 mother_name, aadhar_number, gender, sports_types)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		reg.Name, reg.Email, reg.Phone, reg.Address, reg.DOB, reg.Education,
		reg.FatherName, reg.MotherName, reg.AadharNumber, reg.Gender,
		pq.Array(reg.SportsTypes),
	).Scan(&reg.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrRegistrationConflict
		}
		return fmt.Errorf("failed to create player registration: %w", err)
	}
	return nil
}

func (r *postgresRegistrationRepository) FindByID(ctx context.Context, id int) (*models.PlayerRegistration, error) {
	query := `
		SELECT id, name, email, phone, address, dob, education, father_name,
		       mother_name, aadhar_number, gender, sports_types, photo_key
		FROM player_registrations WHERE id = $1`

	var reg models.PlayerRegistration
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&reg.ID, &reg.Name, &reg.Email, &reg.Phone, &reg.Address, &reg.DOB,
		&reg.Education, &reg.FatherName, &reg.MotherName, &reg.AadharNumber,
		&reg.Gender, pq.Array(&reg.SportsTypes), &reg.PhotoKey,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("failed to find player registration: %w", err)
	}
	return &reg, nil
}

func (r *postgresRegistrationRepository) List(ctx context.Context) ([]*models.PlayerRegistration, error) {
	query := `
		SELECT id, name, email, phone, address, dob, education, father_name,
		       mother_name, aadhar_number, gender, sports_types, photo_key
		FROM player_registrations ORDER BY id DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list player registrations: %w", err)
	}
	defer rows.Close()

	regs := make([]*models.PlayerRegistration, 0)
	for rows.Next() {
		var reg models.PlayerRegistration
		if err := rows.Scan(
			&reg.ID, &reg.Name, &reg.Email, &reg.Phone, &reg.Address, &reg.DOB,
			&reg.Education, &reg.FatherName, &reg.MotherName, &reg.AadharNumber,
			&reg.Gender, pq.Array(&reg.SportsTypes), &reg.PhotoKey,
		); err != nil {
			return nil, fmt.Errorf("failed to scan player registration row: %w", err)
		}
		regs = append(regs, &reg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("player registration rows iteration error: %w", err)
	}
	return regs, nil
}

func (r *postgresRegistrationRepository) UpdatePhotoKey(ctx context.Context, id int, key *string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE player_registrations SET photo_key = $1 WHERE id = $2`, key, id)
	if err != nil {
		return fmt.Errorf("failed to update registration photo key: %w", err)
	}
	return checkAffectedRows(result, ErrRegistrationNotFound)
}

func (r *postgresRegistrationRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM player_registrations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete player registration: %w", err)
	}
	return checkAffectedRows(result, ErrRegistrationNotFound)
}

func (r *postgresRegistrationRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM player_registrations WHERE email = $1)`, email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check registration email: %w", err)
	}
	return exists, nil
}
