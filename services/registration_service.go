package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/playsphere/playsphere/models"
	"github.com/playsphere/playsphere/repositories"
	"github.com/playsphere/playsphere/storage"
	"github.com/playsphere/playsphere/utils"
)

// PhotoUpload is an incoming multipart image.
type PhotoUpload struct {
	ContentType string
	Reader      io.Reader
}

type CoachInput struct {
	Name           string       `json:"name"`
	Email          string       `json:"email"`
	Phone          string       `json:"phone"`
	Address        string       `json:"address"`
	DOB            time.Time    `json:"dob"`
	Specialization models.Sport `json:"specialization"`
	Education      string       `json:"education"`
	Bio            string       `json:"bio"`
}

type PlayerRegistrationInput struct {
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	DOB          time.Time `json:"dob"`
	Education    string    `json:"education"`
	FatherName   string    `json:"father_name"`
	MotherName   string    `json:"mother_name"`
	AadharNumber string    `json:"aadhar_number"`
	Gender       string    `json:"gender"`
	SportsTypes  []string  `json:"sports_types"`
}

// RegistrationService handles coach onboarding and coach-submitted player
// application forms. An email may appear at most once across players,
// coaches and pending applications.
type RegistrationService interface {
	RegisterCoach(ctx context.Context, input CoachInput, photo *PhotoUpload) (*models.Coach, error)
	GetCoach(ctx context.Context, id int) (*models.Coach, error)
	ListCoaches(ctx context.Context) ([]*models.Coach, error)
	DeleteCoach(ctx context.Context, id int) error

	SubmitPlayerForm(ctx context.Context, input PlayerRegistrationInput, photo *PhotoUpload) (*models.PlayerRegistration, error)
	GetPlayerForm(ctx context.Context, id int) (*models.PlayerRegistration, error)
	ListPlayerForms(ctx context.Context) ([]*models.PlayerRegistration, error)
	DeletePlayerForm(ctx context.Context, id int) error
}

type registrationService struct {
	coaches       repositories.CoachRepository
	registrations repositories.RegistrationRepository
	players       repositories.PlayerRepository
	uploader      storage.FileUploader
}

func NewRegistrationService(
	coaches repositories.CoachRepository,
	registrations repositories.RegistrationRepository,
	players repositories.PlayerRepository,
	uploader storage.FileUploader,
) RegistrationService {
	return &registrationService{
		coaches:       coaches,
		registrations: registrations,
		players:       players,
		uploader:      uploader,
	}
}

// emailInUse checks the email against every account-bearing table, not
// just the one being written to.
func (s *registrationService) emailInUse(ctx context.Context, email string) (bool, error) {
	if exists, err := s.players.EmailExists(ctx, email); err != nil || exists {
		return exists, err
	}
	if exists, err := s.coaches.EmailExists(ctx, email); err != nil || exists {
		return exists, err
	}
	return s.registrations.EmailExists(ctx, email)
}

func (s *registrationService) RegisterCoach(ctx context.Context, input CoachInput, photo *PhotoUpload) (*models.Coach, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if input.Name == "" {
		return nil, ErrNameRequired
	}
	if !utils.IsValidEmail(email) {
		return nil, ErrInvalidEmail
	}
	if !input.Specialization.Valid() {
		return nil, fmt.Errorf("%w: unknown sport %q", ErrValidationFailed, input.Specialization)
	}
	if used, err := s.emailInUse(ctx, email); err != nil {
		return nil, err
	} else if used {
		return nil, ErrEmailConflict
	}

	coach := &models.Coach{
		Name:           input.Name,
		Email:          email,
		Phone:          input.Phone,
		Address:        input.Address,
		DOB:            input.DOB,
		Specialization: input.Specialization,
		Education:      input.Education,
		Bio:            input.Bio,
	}
	if err := s.coaches.Create(ctx, coach); err != nil {
		if errors.Is(err, repositories.ErrCoachConflict) {
			return nil, ErrEmailConflict
		}
		return nil, err
	}

	if photo != nil {
		key, err := s.uploadPhoto(ctx, "coaches", coach.ID, photo)
		if err != nil {
			return nil, err
		}
		if err := s.coaches.UpdatePhotoKey(ctx, coach.ID, &key); err != nil {
			return nil, err
		}
		coach.PhotoKey = &key
	}

	populateCoachPhotoURL(coach, s.uploader)
	return coach, nil
}

func (s *registrationService) GetCoach(ctx context.Context, id int) (*models.Coach, error) {
	coach, err := s.coaches.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCoachNotFound) {
			return nil, ErrCoachNotFound
		}
		return nil, err
	}
	populateCoachPhotoURL(coach, s.uploader)
	return coach, nil
}

func (s *registrationService) ListCoaches(ctx context.Context) ([]*models.Coach, error) {
	coaches, err := s.coaches.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range coaches {
		populateCoachPhotoURL(c, s.uploader)
	}
	return coaches, nil
}

func (s *registrationService) DeleteCoach(ctx context.Context, id int) error {
	coach, err := s.coaches.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCoachNotFound) {
			return ErrCoachNotFound
		}
		return err
	}
	if err := s.coaches.Delete(ctx, id); err != nil {
		return err
	}
	if coach.PhotoKey != nil {
		// Orphaned photos are harmless; ignore delete failures.
		_ = s.uploader.Delete(ctx, *coach.PhotoKey)
	}
	return nil
}

func (s *registrationService) SubmitPlayerForm(ctx context.Context, input PlayerRegistrationInput, photo *PhotoUpload) (*models.PlayerRegistration, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if input.Name == "" {
		return nil, ErrNameRequired
	}
	if !utils.IsValidEmail(email) {
		return nil, ErrInvalidEmail
	}
	if used, err := s.emailInUse(ctx, email); err != nil {
		return nil, err
	} else if used {
		return nil, ErrEmailConflict
	}

	reg := &models.PlayerRegistration{
		Name:         input.Name,
		Email:        email,
		Phone:        input.Phone,
		Address:      input.Address,
		DOB:          input.DOB,
		Education:    input.Education,
		FatherName:   input.FatherName,
		MotherName:   input.MotherName,
		AadharNumber: input.AadharNumber,
		Gender:       input.Gender,
		SportsTypes:  input.SportsTypes,
	}
	if err := s.registrations.Create(ctx, reg); err != nil {
		if errors.Is(err, repositories.ErrRegistrationConflict) {
			return nil, ErrEmailConflict
		}
		return nil, err
	}

	if photo != nil {
		key, err := s.uploadPhoto(ctx, "registrations", reg.ID, photo)
		if err != nil {
			return nil, err
		}
		if err := s.registrations.UpdatePhotoKey(ctx, reg.ID, &key); err != nil {
			return nil, err
		}
		reg.PhotoKey = &key
	}

	populateRegistrationPhotoURL(reg, s.uploader)
	return reg, nil
}

func (s *registrationService) GetPlayerForm(ctx context.Context, id int) (*models.PlayerRegistration, error) {
	reg, err := s.registrations.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrRegistrationNotFound) {
			return nil, ErrRegistrationNotFound
		}
		return nil, err
	}
	populateRegistrationPhotoURL(reg, s.uploader)
	return reg, nil
}

func (s *registrationService) ListPlayerForms(ctx context.Context) ([]*models.PlayerRegistration, error) {
	regs, err := s.registrations.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, reg := range regs {
		populateRegistrationPhotoURL(reg, s.uploader)
	}
	return regs, nil
}

func (s *registrationService) DeletePlayerForm(ctx context.Context, id int) error {
	reg, err := s.registrations.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrRegistrationNotFound) {
			return ErrRegistrationNotFound
		}
		return err
	}
	if err := s.registrations.Delete(ctx, id); err != nil {
		return err
	}
	if reg.PhotoKey != nil {
		_ = s.uploader.Delete(ctx, *reg.PhotoKey)
	}
	return nil
}

func (s *registrationService) uploadPhoto(ctx context.Context, prefix string, id int, photo *PhotoUpload) (string, error) {
	ext, err := GetExtensionFromContentType(photo.ContentType)
	if err != nil {
		return "", err
	}
	key := fmt.Sprintf("%s/%d/%d%s", prefix, id, time.Now().UnixNano(), ext)
	if _, err := s.uploader.Upload(ctx, key, photo.ContentType, photo.Reader); err != nil {
		return "", fmt.Errorf("failed to upload photo: %w", err)
	}
	return key, nil
}
