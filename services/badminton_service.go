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

// CreateBadmintonMatchInput sets up a singles fixture. Each player
// represents their enrolled team; both players must already belong to one.
type CreateBadmintonMatchInput struct {
	Player1ID int       `json:"player1_id"`
	Player2ID int       `json:"player2_id"`
	Date      time.Time `json:"date"`
	Venue     string    `json:"venue"`
}

type BadmintonMatchService interface {
	Create(ctx context.Context, input CreateBadmintonMatchInput) (*models.BadmintonMatch, error)
	Get(ctx context.Context, id int) (*models.BadmintonMatch, error)
	List(ctx context.Context, status *models.MatchStatus) ([]*models.BadmintonMatch, error)
	SetStatus(ctx context.Context, id int, next models.MatchStatus) (*models.BadmintonMatch, error)
	ApplyRally(ctx context.Context, id int, ev scoring.RallyEvent) (*models.BadmintonMatch, error)
	AddHighlight(ctx context.Context, id int, highlight string) (*models.BadmintonMatch, error)
	Delete(ctx context.Context, id int) error
}

type badmintonMatchService struct {
	matches repositories.BadmintonMatchRepository
	teams   repositories.TeamRepository
	players repositories.PlayerRepository
	hub     *scoring.Hub
}

func NewBadmintonMatchService(
	matches repositories.BadmintonMatchRepository,
	teams repositories.TeamRepository,
	players repositories.PlayerRepository,
	hub *scoring.Hub,
) BadmintonMatchService {
	return &badmintonMatchService{matches: matches, teams: teams, players: players, hub: hub}
}

func (s *badmintonMatchService) Create(ctx context.Context, input CreateBadmintonMatchInput) (*models.BadmintonMatch, error) {
	if input.Player1ID == input.Player2ID {
		return nil, ErrSameTeam
	}
	if input.Venue == "" {
		return nil, ErrVenueRequired
	}

	p1, err := s.findPlayer(ctx, input.Player1ID)
	if err != nil {
		return nil, err
	}
	p2, err := s.findPlayer(ctx, input.Player2ID)
	if err != nil {
		return nil, err
	}
	if p1.Sport != models.SportBadminton || p2.Sport != models.SportBadminton {
		return nil, ErrSportMismatch
	}
	if p1.TeamID == nil || p2.TeamID == nil {
		return nil, fmt.Errorf("%w: both players need a team", ErrRosterMismatch)
	}
	if *p1.TeamID == *p2.TeamID {
		return nil, ErrSameTeam
	}

	team1, err := s.findTeam(ctx, *p1.TeamID)
	if err != nil {
		return nil, err
	}
	team2, err := s.findTeam(ctx, *p2.TeamID)
	if err != nil {
		return nil, err
	}

	m := &models.BadmintonMatch{
		Player1ID: p1.ID,
		Player2ID: p2.ID,
		Team1ID:   team1.ID,
		Team2ID:   team2.ID,
		Team1Name: team1.Name,
		Team2Name: team2.Name,
		Date:      input.Date,
		Venue:     input.Venue,
		Status:    models.StatusUpcoming,
		PlayerStats: []models.BadmintonPlayerStat{
			{PlayerID: p1.ID, PlayerName: p1.Name, PlayerTeamID: team1.ID, TeamName: team1.Name},
			{PlayerID: p2.ID, PlayerName: p2.Name, PlayerTeamID: team2.ID, TeamName: team2.Name},
		},
	}
	if err := s.matches.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *badmintonMatchService) findPlayer(ctx context.Context, id int) (*models.Player, error) {
	player, err := s.players.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, fmt.Errorf("%w: player %d", ErrPlayerNotFound, id)
		}
		return nil, err
	}
	return player, nil
}

func (s *badmintonMatchService) findTeam(ctx context.Context, id int) (*models.Team, error) {
	team, err := s.teams.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, fmt.Errorf("%w: team %d", ErrTeamNotFound, id)
		}
		return nil, err
	}
	return team, nil
}

func (s *badmintonMatchService) Get(ctx context.Context, id int) (*models.BadmintonMatch, error) {
	m, err := s.matches.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrBadmintonMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	m.Status = models.DisplayStatus(m.Status, m.Date, time.Now())
	return m, nil
}

func (s *badmintonMatchService) List(ctx context.Context, status *models.MatchStatus) ([]*models.BadmintonMatch, error) {
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

func (s *badmintonMatchService) SetStatus(ctx context.Context, id int, next models.MatchStatus) (*models.BadmintonMatch, error) {
	for attempt := 0; attempt < scoredWriteRetries; attempt++ {
		m, err := s.matches.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repositories.ErrBadmintonMatchNotFound) {
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
			// Sides are compared by team display name, same as the team
			// sports.
			winner := scoring.DeriveWinner(m.Team1Name, m.Team2Name, m.Score.Player1, m.Score.Player2)
			m.Winner = &winner
		}
		m.Status = next

		err = s.matches.UpdateScored(ctx, m)
		if err == nil {
			s.broadcast(m, scoring.MessageStatusChanged)
			return m, nil
		}
		if !errors.Is(err, repositories.ErrVersionConflict) {
			if errors.Is(err, repositories.ErrBadmintonMatchNotFound) {
				return nil, ErrMatchNotFound
			}
			return nil, err
		}
	}
	return nil, ErrScoreConflict
}

func (s *badmintonMatchService) ApplyRally(ctx context.Context, id int, ev scoring.RallyEvent) (*models.BadmintonMatch, error) {
	for attempt := 0; attempt < scoredWriteRetries; attempt++ {
		m, err := s.matches.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repositories.ErrBadmintonMatchNotFound) {
				return nil, ErrMatchNotFound
			}
			return nil, err
		}
		if m.Status != models.StatusLive {
			return nil, scoring.ErrMatchNotLive
		}
		if err := scoring.ApplyRally(m, ev); err != nil {
			return nil, err
		}

		err = s.matches.UpdateScored(ctx, m)
		if err == nil {
			s.broadcast(m, scoring.MessageMatchUpdated)
			return m, nil
		}
		if !errors.Is(err, repositories.ErrVersionConflict) {
			if errors.Is(err, repositories.ErrBadmintonMatchNotFound) {
				return nil, ErrMatchNotFound
			}
			return nil, err
		}
	}
	return nil, ErrScoreConflict
}

func (s *badmintonMatchService) AddHighlight(ctx context.Context, id int, highlight string) (*models.BadmintonMatch, error) {
	if highlight == "" {
		return nil, fmt.Errorf("%w: empty highlight", ErrValidationFailed)
	}
	for attempt := 0; attempt < scoredWriteRetries; attempt++ {
		m, err := s.matches.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repositories.ErrBadmintonMatchNotFound) {
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

func (s *badmintonMatchService) Delete(ctx context.Context, id int) error {
	if err := s.matches.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrBadmintonMatchNotFound) {
			return ErrMatchNotFound
		}
		return err
	}
	return nil
}

func (s *badmintonMatchService) broadcast(m *models.BadmintonMatch, msgType string) {
	if s.hub == nil {
		return
	}
	room := scoring.RoomID("badminton", m.ID)
	s.hub.BroadcastToRoom(room, scoring.LiveMessage{Type: msgType, Payload: m, RoomID: room})
}
