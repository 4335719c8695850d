package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/playsphere/playsphere/models"
	"github.com/playsphere/playsphere/repositories"
	"github.com/playsphere/playsphere/storage"
	"github.com/playsphere/playsphere/utils"
)

type PlayerInput struct {
	Name       string       `json:"name"`
	FatherName string       `json:"father_name"`
	MotherName string       `json:"mother_name"`
	Phone      string       `json:"phone"`
	Email      string       `json:"email"`
	RollNo     int          `json:"roll_no"`
	Age        int          `json:"age"`
	Sport      models.Sport `json:"sport"`
	Category   string       `json:"category"`
	Ranking    int          `json:"ranking"`
	TeamID     *int         `json:"team_id"`
}

type PlayerService interface {
	Create(ctx context.Context, input PlayerInput, photo *PhotoUpload) (*models.Player, error)
	Get(ctx context.Context, id int) (*models.Player, error)
	List(ctx context.Context, filter repositories.PlayerFilter) ([]*models.Player, error)
	Update(ctx context.Context, id int, input PlayerInput) (*models.Player, error)
	AssignTeam(ctx context.Context, id int, teamID *int) (*models.Player, error)
	UpdatePhoto(ctx context.Context, id int, photo *PhotoUpload) (*models.Player, error)
	Delete(ctx context.Context, id int) error
}

type playerService struct {
	players  repositories.PlayerRepository
	teams    repositories.TeamRepository
	uploader storage.FileUploader
}

func NewPlayerService(players repositories.PlayerRepository, teams repositories.TeamRepository, uploader storage.FileUploader) PlayerService {
	return &playerService{players: players, teams: teams, uploader: uploader}
}

func (s *playerService) validate(input *PlayerInput) error {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if input.Name == "" {
		return ErrNameRequired
	}
	if !utils.IsValidEmail(input.Email) {
		return ErrInvalidEmail
	}
	if !input.Sport.Valid() {
		return fmt.Errorf("%w: unknown sport %q", ErrValidationFailed, input.Sport)
	}
	if input.Age <= 0 {
		return fmt.Errorf("%w: age must be positive", ErrValidationFailed)
	}
	return nil
}

func (s *playerService) Create(ctx context.Context, input PlayerInput, photo *PhotoUpload) (*models.Player, error) {
	if err := s.validate(&input); err != nil {
		return nil, err
	}

	if input.TeamID != nil {
		team, err := s.teams.FindByID(ctx, *input.TeamID)
		if err != nil {
			if errors.Is(err, repositories.ErrTeamNotFound) {
				return nil, ErrTeamNotFound
			}
			return nil, err
		}
		if team.Sport != input.Sport {
			return nil, ErrSportMismatch
		}
	}

	player := &models.Player{
		Name:       input.Name,
		FatherName: input.FatherName,
		MotherName: input.MotherName,
		Phone:      input.Phone,
		Email:      input.Email,
		RollNo:     input.RollNo,
		Age:        input.Age,
		Sport:      input.Sport,
		Category:   input.Category,
		Ranking:    input.Ranking,
		TeamID:     input.TeamID,
	}
	if err := s.players.Create(ctx, player); err != nil {
		if errors.Is(err, repositories.ErrPlayerConflict) {
			return nil, ErrEmailConflict
		}
		if errors.Is(err, repositories.ErrPlayerTeamInvalid) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}

	if photo != nil {
		key, err := s.uploadPhoto(ctx, player.ID, photo)
		if err != nil {
			return nil, err
		}
		if err := s.players.UpdatePhotoKey(ctx, player.ID, &key); err != nil {
			return nil, err
		}
		player.PhotoKey = &key
	}

	populatePlayerPhotoURL(player, s.uploader)
	return player, nil
}

func (s *playerService) Get(ctx context.Context, id int) (*models.Player, error) {
	player, err := s.players.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	populatePlayerPhotoURL(player, s.uploader)
	return player, nil
}

func (s *playerService) List(ctx context.Context, filter repositories.PlayerFilter) ([]*models.Player, error) {
	players, err := s.players.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	for _, p := range players {
		populatePlayerPhotoURL(p, s.uploader)
	}
	return players, nil
}

func (s *playerService) Update(ctx context.Context, id int, input PlayerInput) (*models.Player, error) {
	if err := s.validate(&input); err != nil {
		return nil, err
	}

	player, err := s.players.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}

	player.Name = input.Name
	player.FatherName = input.FatherName
	player.MotherName = input.MotherName
	player.Phone = input.Phone
	player.Email = input.Email
	player.RollNo = input.RollNo
	player.Age = input.Age
	player.Sport = input.Sport
	player.Category = input.Category
	player.Ranking = input.Ranking

	if err := s.players.Update(ctx, player); err != nil {
		if errors.Is(err, repositories.ErrPlayerConflict) {
			return nil, ErrEmailConflict
		}
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}

	populatePlayerPhotoURL(player, s.uploader)
	return player, nil
}

func (s *playerService) AssignTeam(ctx context.Context, id int, teamID *int) (*models.Player, error) {
	player, err := s.players.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}

	if teamID != nil {
		team, err := s.teams.FindByID(ctx, *teamID)
		if err != nil {
			if errors.Is(err, repositories.ErrTeamNotFound) {
				return nil, ErrTeamNotFound
			}
			return nil, err
		}
		if team.Sport != player.Sport {
			return nil, ErrSportMismatch
		}
	}

	if err := s.players.AssignTeam(ctx, id, teamID); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *playerService) UpdatePhoto(ctx context.Context, id int, photo *PhotoUpload) (*models.Player, error) {
	player, err := s.players.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}

	key, err := s.uploadPhoto(ctx, id, photo)
	if err != nil {
		return nil, err
	}
	if err := s.players.UpdatePhotoKey(ctx, id, &key); err != nil {
		return nil, err
	}

	if player.PhotoKey != nil && *player.PhotoKey != key {
		_ = s.uploader.Delete(ctx, *player.PhotoKey)
	}
	player.PhotoKey = &key
	populatePlayerPhotoURL(player, s.uploader)
	return player, nil
}

func (s *playerService) Delete(ctx context.Context, id int) error {
	player, err := s.players.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return ErrPlayerNotFound
		}
		return err
	}
	if err := s.players.Delete(ctx, id); err != nil {
		return err
	}
	if player.PhotoKey != nil {
		_ = s.uploader.Delete(ctx, *player.PhotoKey)
	}
	return nil
}

func (s *playerService) uploadPhoto(ctx context.Context, id int, photo *PhotoUpload) (string, error) {
	ext, err := GetExtensionFromContentType(photo.ContentType)
	if err != nil {
		return "", err
	}
	key := fmt.Sprintf("players/%d/%d%s", id, time.Now().UnixNano(), ext)
	if _, err := s.uploader.Upload(ctx, key, photo.ContentType, photo.Reader); err != nil {
		return "", fmt.Errorf("failed to upload player photo: %w", err)
	}
	return key, nil
}
