package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/playsphere/playsphere/models"
)

var (
	ErrAdminNotFound = errors.New("admin not found")
	ErrAdminConflict = errors.New("admin with this email already exists")
	ErrUserNotFound  = errors.New("user not found")
)

type AdminRepository interface {
	Create(ctx context.Context, a *models.Admin) error
	FindByEmail(ctx context.Context, email string) (*models.Admin, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

type postgresAdminRepository struct {
	db *sql.DB
}

func NewPostgresAdminRepository(db *sql.DB) AdminRepository {
	return &postgresAdminRepository{db: db}
}

func (r *postgresAdminRepository) Create(ctx context.Context, a *models.Admin) error {
	query := `
		INSERT INTO admins (name, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, a.Name, a.Email, a.PasswordHash).
		Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrAdminConflict
		}
		return fmt.Errorf("failed to create admin: %w", err)
	}
	return nil
}

func (r *postgresAdminRepository) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	query := `SELECT id, name, email, password_hash, created_at FROM admins WHERE email = $1`

	var a models.Admin
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&a.ID, &a.Name, &a.Email, &a.PasswordHash, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAdminNotFound
		}
		return nil, fmt.Errorf("failed to find admin by email: %w", err)
	}
	return &a, nil
}

func (r *postgresAdminRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM admins WHERE email = $1)`, email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check admin email: %w", err)
	}
	return exists, nil
}

// UserRepository stores dashboard visitor accounts. Visitors authenticate
// by email only; the row is created on first login.
type UserRepository interface {
	FindOrCreateByEmail(ctx context.Context, email string) (*models.AppUser, error)
	FindByEmail(ctx context.Context, email string) (*models.AppUser, error)
}

type postgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserRepository(db *sql.DB) UserRepository {
	return &postgresUserRepository{db: db}
}

func (r *postgresUserRepository) FindOrCreateByEmail(ctx context.Context, email string) (*models.AppUser, error) {
	query := `
		INSERT INTO app_users (email, type)
		VALUES ($1, 'user')
		ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
		RETURNING id, email, type, created_at`

	var u models.AppUser
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&u.ID, &u.Email, &u.Type, &u.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to find or create user: %w", err)
	}
	return &u, nil
}

func (r *postgresUserRepository) FindByEmail(ctx context.Context, email string) (*models.AppUser, error) {
	query := `SELECT id, email, type, created_at FROM app_users WHERE email = $1`

	var u models.AppUser
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&u.ID, &u.Email, &u.Type, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return &u, nil
}
