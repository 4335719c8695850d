package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/playsphere/playsphere/models"
	"github.com/playsphere/playsphere/repositories"
	"github.com/playsphere/playsphere/utils"
)

const minPasswordLength = 8

type RegisterAdminInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthService handles the two account flavours: password-protected admin
// accounts and email-only dashboard visitors.
type AuthService interface {
	RegisterAdmin(ctx context.Context, input RegisterAdminInput) (*models.Admin, error)
	LoginAdmin(ctx context.Context, creds models.Credentials) (*models.Admin, error)
	// LoginUser signs a visitor in by email alone, creating the account on
	// first use.
	LoginUser(ctx context.Context, email string) (*models.AppUser, error)
}

type authService struct {
	admins repositories.AdminRepository
	users  repositories.UserRepository
}

func NewAuthService(admins repositories.AdminRepository, users repositories.UserRepository) AuthService {
	return &authService{admins: admins, users: users}
}

func (s *authService) RegisterAdmin(ctx context.Context, input RegisterAdminInput) (*models.Admin, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if input.Name == "" {
		return nil, ErrNameRequired
	}
	if !utils.IsValidEmail(email) {
		return nil, ErrInvalidEmail
	}
	if len(input.Password) < minPasswordLength {
		return nil, ErrPasswordTooShort
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &models.Admin{
		Name:         input.Name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.admins.Create(ctx, admin); err != nil {
		if errors.Is(err, repositories.ErrAdminConflict) {
			return nil, ErrEmailConflict
		}
		return nil, err
	}
	return admin, nil
}

func (s *authService) LoginAdmin(ctx context.Context, creds models.Credentials) (*models.Admin, error) {
	email := strings.ToLower(strings.TrimSpace(creds.Email))

	admin, err := s.admins.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrAdminNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !utils.CheckPasswordHash(creds.Password, admin.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return admin, nil
}

func (s *authService) LoginUser(ctx context.Context, email string) (*models.AppUser, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !utils.IsValidEmail(email) {
		return nil, ErrInvalidEmail
	}
	return s.users.FindOrCreateByEmail(ctx, email)
}
