package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/playsphere/playsphere/models"
	"github.com/playsphere/playsphere/repositories"
	"github.com/playsphere/playsphere/storage"
)

type TeamInput struct {
	Name      string       `json:"name"`
	Sport     models.Sport `json:"sport"`
	CaptainID *int         `json:"captain_id"`
}

type TeamService interface {
	Create(ctx context.Context, input TeamInput, photo *PhotoUpload) (*models.Team, error)
	// Get returns the team with its current roster.
	Get(ctx context.Context, id int) (*models.Team, error)
	List(ctx context.Context, sport *models.Sport) ([]*models.Team, error)
	Update(ctx context.Context, id int, input TeamInput) (*models.Team, error)
	SetCaptain(ctx context.Context, id int, captainID *int) (*models.Team, error)
	UpdatePhoto(ctx context.Context, id int, photo *PhotoUpload) (*models.Team, error)
	Delete(ctx context.Context, id int) error
}

type teamService struct {
	teams    repositories.TeamRepository
	players  repositories.PlayerRepository
	uploader storage.FileUploader
}

func NewTeamService(teams repositories.TeamRepository, players repositories.PlayerRepository, uploader storage.FileUploader) TeamService {
	return &teamService{teams: teams, players: players, uploader: uploader}
}

func (s *teamService) Create(ctx context.Context, input TeamInput, photo *PhotoUpload) (*models.Team, error) {
	if input.Name == "" {
		return nil, ErrNameRequired
	}
	if !input.Sport.Valid() {
		return nil, fmt.Errorf("%w: unknown sport %q", ErrValidationFailed, input.Sport)
	}

	team := &models.Team{
		Name:      input.Name,
		Sport:     input.Sport,
		CaptainID: input.CaptainID,
	}
	if err := s.teams.Create(ctx, team); err != nil {
		if errors.Is(err, repositories.ErrTeamConflict) {
			return nil, ErrTeamConflict
		}
		return nil, err
	}

	if photo != nil {
		key, err := s.uploadPhoto(ctx, team.ID, photo)
		if err != nil {
			return nil, err
		}
		if err := s.teams.UpdatePhotoKey(ctx, team.ID, &key); err != nil {
			return nil, err
		}
		team.PhotoKey = &key
	}

	populateTeamPhotoURL(team, s.uploader)
	return team, nil
}

func (s *teamService) Get(ctx context.Context, id int) (*models.Team, error) {
	team, err := s.teams.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}

	roster, err := s.players.ListByTeam(ctx, id)
	if err != nil {
		return nil, err
	}
	team.Players = make([]models.Player, 0, len(roster))
	for _, p := range roster {
		populatePlayerPhotoURL(p, s.uploader)
		team.Players = append(team.Players, *p)
	}

	populateTeamPhotoURL(team, s.uploader)
	return team, nil
}

func (s *teamService) List(ctx context.Context, sport *models.Sport) ([]*models.Team, error) {
	teams, err := s.teams.List(ctx, sport)
	if err != nil {
		return nil, err
	}
	for _, t := range teams {
		populateTeamPhotoURL(t, s.uploader)
	}
	return teams, nil
}

func (s *teamService) Update(ctx context.Context, id int, input TeamInput) (*models.Team, error) {
	if input.Name == "" {
		return nil, ErrNameRequired
	}
	if !input.Sport.Valid() {
		return nil, fmt.Errorf("%w: unknown sport %q", ErrValidationFailed, input.Sport)
	}

	team, err := s.teams.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}

	team.Name = input.Name
	team.Sport = input.Sport
	if err := s.teams.Update(ctx, team); err != nil {
		if errors.Is(err, repositories.ErrTeamConflict) {
			return nil, ErrTeamConflict
		}
		return nil, err
	}

	populateTeamPhotoURL(team, s.uploader)
	return team, nil
}

func (s *teamService) SetCaptain(ctx context.Context, id int, captainID *int) (*models.Team, error) {
	if captainID != nil {
		captain, err := s.players.FindByID(ctx, *captainID)
		if err != nil {
			if errors.Is(err, repositories.ErrPlayerNotFound) {
				return nil, ErrPlayerNotFound
			}
			return nil, err
		}
		if captain.TeamID == nil || *captain.TeamID != id {
			return nil, ErrRosterMismatch
		}
	}

	if err := s.teams.SetCaptain(ctx, id, captainID); err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *teamService) UpdatePhoto(ctx context.Context, id int, photo *PhotoUpload) (*models.Team, error) {
	team, err := s.teams.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}

	key, err := s.uploadPhoto(ctx, id, photo)
	if err != nil {
		return nil, err
	}
	if err := s.teams.UpdatePhotoKey(ctx, id, &key); err != nil {
		return nil, err
	}

	if team.PhotoKey != nil && *team.PhotoKey != key {
		_ = s.uploader.Delete(ctx, *team.PhotoKey)
	}
	team.PhotoKey = &key
	populateTeamPhotoURL(team, s.uploader)
	return team, nil
}

func (s *teamService) Delete(ctx context.Context, id int) error {
	team, err := s.teams.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return ErrTeamNotFound
		}
		return err
	}
	if err := s.teams.Delete(ctx, id); err != nil {
		return err
	}
	if team.PhotoKey != nil {
		_ = s.uploader.Delete(ctx, *team.PhotoKey)
	}
	return nil
}

func (s *teamService) uploadPhoto(ctx context.Context, id int, photo *PhotoUpload) (string, error) {
	ext, err := GetExtensionFromContentType(photo.ContentType)
	if err != nil {
		return "", err
	}
	key := fmt.Sprintf("teams/%d/%d%s", id, time.Now().UnixNano(), ext)
	if _, err := s.uploader.Upload(ctx, key, photo.ContentType, photo.Reader); err != nil {
		return "", fmt.Errorf("failed to upload team photo: %w", err)
	}
	return key, nil
}
