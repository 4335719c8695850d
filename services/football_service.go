package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/playsphere/playsphere/models"
	"github.com/playsphere/playsphere/repositories"
	"github.com/playsphere/playsphere/scoring"
)

type CreateFootballMatchInput struct {
	Team1ID   int       `json:"team1_id"`
	Team2ID   int       `json:"team2_id"`
	Date      time.Time `json:"date"`
	Venue     string    `json:"venue"`
	PlayerIDs []int     `json:"player_ids"`
}

type FootballMatchService interface {
	Create(ctx context.Context, input CreateFootballMatchInput) (*models.FootballMatch, error)
	Get(ctx context.Context, id int) (*models.FootballMatch, error)
	List(ctx context.Context, status *models.MatchStatus) ([]*models.FootballMatch, error)
	SetStatus(ctx context.Context, id int, next models.MatchStatus) (*models.FootballMatch, error)
	ApplyEvent(ctx context.Context, id int, ev scoring.FootballEvent) (*models.FootballMatch, error)
	AddHighlight(ctx context.Context, id int, highlight string) (*models.FootballMatch, error)
	Delete(ctx context.Context, id int) error
}

type footballMatchService struct {
	matches repositories.FootballMatchRepository
	teams   repositories.TeamRepository
	players repositories.PlayerRepository
	hub     *scoring.Hub
}

func NewFootballMatchService(
	matches repositories.FootballMatchRepository,
	teams repositories.TeamRepository,
	players repositories.PlayerRepository,
	hub *scoring.Hub,
) FootballMatchService {
	return &footballMatchService{matches: matches, teams: teams, players: players, hub: hub}
}

func (s *footballMatchService) Create(ctx context.Context, input CreateFootballMatchInput) (*models.FootballMatch, error) {
	if input.Team1ID == input.Team2ID {
		return nil, ErrSameTeam
	}
	if input.Venue == "" {
		return nil, ErrVenueRequired
	}

	team1, err := s.findTeam(ctx, input.Team1ID)
	if err != nil {
		return nil, err
	}
	team2, err := s.findTeam(ctx, input.Team2ID)
	if err != nil {
		return nil, err
	}
	if team1.Sport != models.SportFootball || team2.Sport != models.SportFootball {
		return nil, ErrSportMismatch
	}

	if len(input.PlayerIDs) == 0 {
		return nil, ErrNoPlayersEnrolled
	}
	stats := make([]models.FootballPlayerStat, 0, len(input.PlayerIDs))
	for _, playerID := range input.PlayerIDs {
		player, err := s.players.FindByID(ctx, playerID)
		if err != nil {
			if errors.Is(err, repositories.ErrPlayerNotFound) {
				return nil, fmt.Errorf("%w: player %d", ErrPlayerNotFound, playerID)
			}
			return nil, err
		}
		if player.TeamID == nil || (*player.TeamID != input.Team1ID && *player.TeamID != input.Team2ID) {
			return nil, fmt.Errorf("%w: player %d", ErrRosterMismatch, playerID)
		}
		stats = append(stats, models.FootballPlayerStat{
			PlayerID:     player.ID,
			PlayerName:   player.Name,
			PlayerTeamID: *player.TeamID,
		})
	}

	m := &models.FootballMatch{
		Team1ID:     input.Team1ID,
		Team2ID:     input.Team2ID,
		Team1Name:   team1.Name,
		Team2Name:   team2.Name,
		Date:        input.Date,
		Venue:       input.Venue,
		Status:      models.StatusUpcoming,
		PlayerStats: stats,
	}
	if err := s.matches.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *footballMatchService) findTeam(ctx context.Context, id int) (*models.Team, error) {
	team, err := s.teams.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, fmt.Errorf("%w: team %d", ErrTeamNotFound, id)
		}
		return nil, err
	}
	return team, nil
}

func (s *footballMatchService) Get(ctx context.Context, id int) (*models.FootballMatch, error) {
	m, err := s.matches.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrFootballMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	m.Status = models.DisplayStatus(m.Status, m.Date, time.Now())
	return m, nil
}

func (s *footballMatchService) List(ctx context.Context, status *models.MatchStatus) ([]*models.FootballMatch, error) {
	matches, err := s.matches.List(ctx, status)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	for _, m := range matches {
		m.Status = models.DisplayStatus(m.Status, m.Date, now)
	}
	return matches, nil
}

func (s *footballMatchService) SetStatus(ctx context.Context, id int, next models.MatchStatus) (*models.FootballMatch, error) {
	for attempt := 0; attempt < scoredWriteRetries; attempt++ {
		m, err := s.matches.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repositories.ErrFootballMatchNotFound) {
				return nil, ErrMatchNotFound
			}
			return nil, err
		}

		if err := scoring.Transition(m.Status, next); err != nil {
			return nil, err
		}
		if m.Status == next {
			return m, nil
		}
		if next == models.StatusCompleted {
			winner := scoring.DeriveWinner(m.Team1Name, m.Team2Name, m.Score.Team1, m.Score.Team2)
			m.Winner = &winner
		}
		m.Status = next

		err = s.matches.UpdateScored(ctx, m)
		if err == nil {
			s.broadcast(m, scoring.MessageStatusChanged)
			return m, nil
		}
		if !errors.Is(err, repositories.ErrVersionConflict) {
			if errors.Is(err, repositories.ErrFootballMatchNotFound) {
				return nil, ErrMatchNotFound
			}
			return nil, err
		}
	}
	return nil, ErrScoreConflict
}

func (s *footballMatchService) ApplyEvent(ctx context.Context, id int, ev scoring.FootballEvent) (*models.FootballMatch, error) {
	for attempt := 0; attempt < scoredWriteRetries; attempt++ {
		m, err := s.matches.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repositories.ErrFootballMatchNotFound) {
				return nil, ErrMatchNotFound
			}
			return nil, err
		}
		if m.Status != models.StatusLive {
			return nil, scoring.ErrMatchNotLive
		}
		if err := scoring.ApplyFootballEvent(m, ev); err != nil {
			return nil, err
		}

		err = s.matches.UpdateScored(ctx, m)
		if err == nil {
			s.broadcast(m, scoring.MessageMatchUpdated)
			return m, nil
		}
		if !errors.Is(err, repositories.ErrVersionConflict) {
			if errors.Is(err, repositories.ErrFootballMatchNotFound) {
				return nil, ErrMatchNotFound
			}
			return nil, err
		}
	}
	return nil, ErrScoreConflict
}

func (s *footballMatchService) AddHighlight(ctx context.Context, id int, highlight string) (*models.FootballMatch, error) {
	if highlight == "" {
		return nil, fmt.Errorf("%w: empty highlight", ErrValidationFailed)
	}
	for attempt := 0; attempt < scoredWriteRetries; attempt++ {
		m, err := s.matches.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repositories.ErrFootballMatchNotFound) {
				return nil, ErrMatchNotFound
			}
			return nil, err
		}
		m.Highlights = append(m.Highlights, highlight)

		err = s.matches.UpdateScored(ctx, m)
		if err == nil {
			s.broadcast(m, scoring.MessageMatchUpdated)
			return m, nil
		}
		if !errors.Is(err, repositories.ErrVersionConflict) {
			return nil, err
		}
	}
	return nil, ErrScoreConflict
}

func (s *footballMatchService) Delete(ctx context.Context, id int) error {
	if err := s.matches.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrFootballMatchNotFound) {
			return ErrMatchNotFound
		}
		return err
	}
	return nil
}

func (s *footballMatchService) broadcast(m *models.FootballMatch, msgType string) {
	if s.hub == nil {
		return
	}
	room := scoring.RoomID("football", m.ID)
	s.hub.BroadcastToRoom(room, scoring.LiveMessage{Type: msgType, Payload: m, RoomID: room})
}
