package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/playsphere/playsphere/models"
	"github.com/playsphere/playsphere/repositories"
	"github.com/playsphere/playsphere/scoring"
)

// scoredWriteRetries bounds the re-read-and-retry loop around optimistic
// match writes before giving up with ErrScoreConflict.
const scoredWriteRetries = 3

type CreateCricketMatchInput struct {
	Team1ID   int       `json:"team1_id"`
	Team2ID   int       `json:"team2_id"`
	Date      time.Time `json:"date"`
	Venue     string    `json:"venue"`
	PlayerIDs []int     `json:"player_ids"`
}

// TossInput is the optional pre-match record captured when a cricket match
// goes live. Advisory only: it never influences event application.
type TossInput struct {
	WinnerTeamID int    `json:"winner_team_id"`
	Decision     string `json:"decision"` // "batting" or "bowling"
}

type CricketMatchService interface {
	Create(ctx context.Context, input CreateCricketMatchInput) (*models.CricketMatch, error)
	Get(ctx context.Context, id int) (*models.CricketMatch, error)
	List(ctx context.Context, status *models.MatchStatus) ([]*models.CricketMatch, error)
	SetStatus(ctx context.Context, id int, next models.MatchStatus, toss *TossInput) (*models.CricketMatch, error)
	ApplyBall(ctx context.Context, id int, ev scoring.BallEvent) (*models.CricketMatch, error)
	AddHighlight(ctx context.Context, id int, highlight string) (*models.CricketMatch, error)
	Delete(ctx context.Context, id int) error
}

type cricketMatchService struct {
	matches repositories.CricketMatchRepository
	teams   repositories.TeamRepository
	players repositories.PlayerRepository
	hub     *scoring.Hub
}

func NewCricketMatchService(
	matches repositories.CricketMatchRepository,
	teams repositories.TeamRepository,
	players repositories.PlayerRepository,
	hub *scoring.Hub,
) CricketMatchService {
	return &cricketMatchService{matches: matches, teams: teams, players: players, hub: hub}
}

// Create records the fixture with a frozen enrollment: one stat line per
// listed player, resolved against the two rosters at creation time. Players
// joining a team later do not join matches already created.
func (s *cricketMatchService) Create(ctx context.Context, input CreateCricketMatchInput) (*models.CricketMatch, error) {
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
	if team1.Sport != models.SportCricket || team2.Sport != models.SportCricket {
		return nil, ErrSportMismatch
	}

	if len(input.PlayerIDs) == 0 {
		return nil, ErrNoPlayersEnrolled
	}
	stats := make([]models.CricketPlayerStat, 0, len(input.PlayerIDs))
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
		stats = append(stats, models.CricketPlayerStat{
			PlayerID:     player.ID,
			PlayerName:   player.Name,
			PlayerTeamID: *player.TeamID,
		})
	}

	m := &models.CricketMatch{
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

func (s *cricketMatchService) findTeam(ctx context.Context, id int) (*models.Team, error) {
	team, err := s.teams.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, fmt.Errorf("%w: team %d", ErrTeamNotFound, id)
		}
		return nil, err
	}
	return team, nil
}

func (s *cricketMatchService) Get(ctx context.Context, id int) (*models.CricketMatch, error) {
	m, err := s.matches.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCricketMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	m.Status = models.DisplayStatus(m.Status, m.Date, time.Now())

	// Scorecard order: best batting first, then best bowling.
	sort.SliceStable(m.PlayerStats, func(i, j int) bool {
		if m.PlayerStats[i].Runs != m.PlayerStats[j].Runs {
			return m.PlayerStats[i].Runs > m.PlayerStats[j].Runs
		}
		return m.PlayerStats[i].Wickets > m.PlayerStats[j].Wickets
	})
	return m, nil
}

func (s *cricketMatchService) List(ctx context.Context, status *models.MatchStatus) ([]*models.CricketMatch, error) {
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

func (s *cricketMatchService) SetStatus(ctx context.Context, id int, next models.MatchStatus, toss *TossInput) (*models.CricketMatch, error) {
	for attempt := 0; attempt < scoredWriteRetries; attempt++ {
		m, err := s.matches.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repositories.ErrCricketMatchNotFound) {
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

		if next == models.StatusLive && toss != nil {
			if toss.WinnerTeamID != m.Team1ID && toss.WinnerTeamID != m.Team2ID {
				return nil, ErrTossWinnerNotInMatch
			}
			winnerID := toss.WinnerTeamID
			m.TossWinnerID = &winnerID
			m.ChoseBatting = toss.Decision == "batting"
			m.ChoseBowling = toss.Decision == "bowling"
		}
		if next == models.StatusCompleted {
			winner := scoring.DeriveWinner(m.Team1Name, m.Team2Name, m.Score.Team1.Score, m.Score.Team2.Score)
			m.Winner = &winner
		}
		m.Status = next

		err = s.matches.UpdateScored(ctx, m)
		if err == nil {
			s.broadcast(m, scoring.MessageStatusChanged)
			return m, nil
		}
		if !errors.Is(err, repositories.ErrVersionConflict) {
			if errors.Is(err, repositories.ErrCricketMatchNotFound) {
				return nil, ErrMatchNotFound
			}
			return nil, err
		}
	}
	return nil, ErrScoreConflict
}

func (s *cricketMatchService) ApplyBall(ctx context.Context, id int, ev scoring.BallEvent) (*models.CricketMatch, error) {
	for attempt := 0; attempt < scoredWriteRetries; attempt++ {
		m, err := s.matches.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repositories.ErrCricketMatchNotFound) {
				return nil, ErrMatchNotFound
			}
			return nil, err
		}
		if m.Status != models.StatusLive {
			return nil, scoring.ErrMatchNotLive
		}
		if err := scoring.ApplyBall(m, ev); err != nil {
			return nil, err
		}

		err = s.matches.UpdateScored(ctx, m)
		if err == nil {
			s.broadcast(m, scoring.MessageMatchUpdated)
			return m, nil
		}
		if !errors.Is(err, repositories.ErrVersionConflict) {
			if errors.Is(err, repositories.ErrCricketMatchNotFound) {
				return nil, ErrMatchNotFound
			}
			return nil, err
		}
	}
	return nil, ErrScoreConflict
}

func (s *cricketMatchService) AddHighlight(ctx context.Context, id int, highlight string) (*models.CricketMatch, error) {
	if highlight == "" {
		return nil, fmt.Errorf("%w: empty highlight", ErrValidationFailed)
	}
	for attempt := 0; attempt < scoredWriteRetries; attempt++ {
		m, err := s.matches.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repositories.ErrCricketMatchNotFound) {
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

func (s *cricketMatchService) Delete(ctx context.Context, id int) error {
	if err := s.matches.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrCricketMatchNotFound) {
			return ErrMatchNotFound
		}
		return err
	}
	return nil
}

func (s *cricketMatchService) broadcast(m *models.CricketMatch, msgType string) {
	if s.hub == nil {
		return
	}
	room := scoring.RoomID("cricket", m.ID)
	s.hub.BroadcastToRoom(room, scoring.LiveMessage{Type: msgType, Payload: m, RoomID: room})
}
