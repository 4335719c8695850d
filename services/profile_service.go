package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/playsphere/playsphere/cache"
	"github.com/playsphere/playsphere/models"
	"github.com/playsphere/playsphere/repositories"
	"github.com/playsphere/playsphere/stats"
	"github.com/playsphere/playsphere/storage"
)

// profileWindow is how many most-recent completed matches feed a profile.
const profileWindow = 6

// Home feed limits: the landing page shows the next two fixtures across
// every sport and the five highest-ranked players.
const (
	homeFixtureLimit = 2
	homeTopPlayers   = 5
)

// RecentMatch is one line of a profile's match history.
type RecentMatch struct {
	MatchID  int       `json:"match_id"`
	Date     time.Time `json:"date"`
	Opponent string    `json:"opponent"`
	Winner   string    `json:"winner,omitempty"`
	Result   string    `json:"result"`
}

// PlayerProfile is the aggregated read model served on a player page.
// Exactly one of the sport total blocks is set, matching the player's
// sport.
type PlayerProfile struct {
	Player             models.Player          `json:"player"`
	CareerStats        stats.Tally            `json:"careerStats"`
	RadarData          stats.Radar            `json:"radarData"`
	Cricket            *stats.CricketTotals   `json:"cricket,omitempty"`
	Football           *stats.FootballTotals  `json:"football,omitempty"`
	Badminton          *stats.BadmintonTotals `json:"badminton,omitempty"`
	PerformanceHistory []stats.HistoryPoint   `json:"performanceHistory"`
	Form               stats.Assessment       `json:"strengthsAndWeaknesses"`
	RecentMatches      []RecentMatch          `json:"recentMatches"`
}

// TeamFormEntry is one completed match on a team's recent-form strip.
// Result is the single letter "W", "L" or "D".
type TeamFormEntry struct {
	MatchID  int       `json:"match_id"`
	Date     time.Time `json:"date"`
	Opponent string    `json:"opponent"`
	Result   string    `json:"result"`
	Score    string    `json:"score"`
}

// TeamProfile is the aggregated read model served on a team page. Wins is
// the all-time win count; CareerStats covers the recent window only.
type TeamProfile struct {
	Team          models.Team     `json:"team"`
	CareerStats   stats.Tally     `json:"careerStats"`
	Wins          int             `json:"wins"`
	RecentForm    []TeamFormEntry `json:"recentForm"`
	RecentMatches []RecentMatch   `json:"recentMatches"`
}

type ComparePlayers struct {
	Player1 PlayerProfile `json:"player1"`
	Player2 PlayerProfile `json:"player2"`
}

// Fixture is a slim upcoming-match card for the home feed.
type Fixture struct {
	MatchID   int          `json:"match_id"`
	Sport     models.Sport `json:"sport"`
	Team1Name string       `json:"team1_name"`
	Team2Name string       `json:"team2_name"`
	Date      time.Time    `json:"date"`
	Venue     string       `json:"venue"`
}

// HomeCounts tells the landing page how much content exists at all.
type HomeCounts struct {
	Matches      int  `json:"matches"`
	HasCricket   bool `json:"has_cricket"`
	HasFootball  bool `json:"has_football"`
	HasBadminton bool `json:"has_badminton"`
}

// HomeData feeds the landing page: whatever is live right now, the full
// per-sport upcoming lists, the next fixtures across every sport and the
// top-ranked players.
type HomeData struct {
	LiveCricket       []*models.CricketMatch   `json:"live_cricket"`
	LiveFootball      []*models.FootballMatch  `json:"live_football"`
	LiveBadminton     []*models.BadmintonMatch `json:"live_badminton"`
	UpcomingCricket   []*models.CricketMatch   `json:"upcoming_cricket"`
	UpcomingFootball  []*models.FootballMatch  `json:"upcoming_football"`
	UpcomingBadminton []*models.BadmintonMatch `json:"upcoming_badminton"`
	NextFixtures      []Fixture                `json:"next_fixtures"`
	TopPlayers        []models.PlayerSummary   `json:"top_players"`
	Counts            HomeCounts               `json:"counts"`
}

// MatchGroup holds matches of every sport sharing one display status.
type MatchGroup struct {
	Cricket   []*models.CricketMatch   `json:"cricket"`
	Football  []*models.FootballMatch  `json:"football"`
	Badminton []*models.BadmintonMatch `json:"badminton"`
}

func (g MatchGroup) size() int {
	return len(g.Cricket) + len(g.Football) + len(g.Badminton)
}

// MatchesOverview is the all-sports match listing, grouped by display
// status. Due is derived at read time from upcoming matches whose date has
// passed.
type MatchesOverview struct {
	Upcoming  MatchGroup     `json:"upcoming"`
	Due       MatchGroup     `json:"due"`
	Live      MatchGroup     `json:"live"`
	Completed MatchGroup     `json:"completed"`
	Counts    map[string]int `json:"counts"`
}

// LiveAndUpcoming groups what a viewer can watch right now or soon.
// Upcoming keeps only matches whose date is still ahead.
type LiveAndUpcoming struct {
	Upcoming MatchGroup     `json:"upcoming"`
	Live     MatchGroup     `json:"live"`
	Counts   map[string]int `json:"counts"`
}

type SportMatchCounts struct {
	Upcoming  int `json:"upcoming"`
	Live      int `json:"live"`
	Completed int `json:"completed"`
}

type DashboardData struct {
	Players   int              `json:"players"`
	Teams     int              `json:"teams"`
	Coaches   int              `json:"coaches"`
	Cricket   SportMatchCounts `json:"cricket"`
	Football  SportMatchCounts `json:"football"`
	Badminton SportMatchCounts `json:"badminton"`
}

type ProfileService interface {
	PlayerProfile(ctx context.Context, playerID int) (*PlayerProfile, error)
	TeamProfile(ctx context.Context, teamID int) (*TeamProfile, error)
	Compare(ctx context.Context, player1ID, player2ID int) (*ComparePlayers, error)
	Home(ctx context.Context) (*HomeData, error)
	Matches(ctx context.Context) (*MatchesOverview, error)
	LiveAndUpcoming(ctx context.Context) (*LiveAndUpcoming, error)
	Dashboard(ctx context.Context) (*DashboardData, error)
}

type profileService struct {
	players   repositories.PlayerRepository
	teams     repositories.TeamRepository
	coaches   repositories.CoachRepository
	cricket   repositories.CricketMatchRepository
	football  repositories.FootballMatchRepository
	badminton repositories.BadmintonMatchRepository
	uploader  storage.FileUploader
	cache     *cache.ProfileCache
	logger    *slog.Logger
}

func NewProfileService(
	players repositories.PlayerRepository,
	teams repositories.TeamRepository,
	coaches repositories.CoachRepository,
	cricket repositories.CricketMatchRepository,
	football repositories.FootballMatchRepository,
	badminton repositories.BadmintonMatchRepository,
	uploader storage.FileUploader,
	profileCache *cache.ProfileCache,
	logger *slog.Logger,
) ProfileService {
	return &profileService{
		players:   players,
		teams:     teams,
		coaches:   coaches,
		cricket:   cricket,
		football:  football,
		badminton: badminton,
		uploader:  uploader,
		cache:     profileCache,
		logger:    logger,
	}
}

func (s *profileService) PlayerProfile(ctx context.Context, playerID int) (*PlayerProfile, error) {
	if s.cache != nil {
		var cached PlayerProfile
		if err := s.cache.Get(ctx, cache.PlayerKey(playerID), &cached); err == nil {
			return &cached, nil
		} else if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.WarnContext(ctx, "profile cache read failed", slog.Any("error", err))
		}
	}

	player, err := s.players.FindByID(ctx, playerID)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	populatePlayerPhotoURL(player, s.uploader)

	profile := &PlayerProfile{Player: *player}

	switch player.Sport {
	case models.SportCricket:
		matches, err := s.cricket.ListCompletedByPlayer(ctx, playerID, profileWindow)
		if err != nil {
			return nil, err
		}
		var totals stats.CricketTotals
		outcomes := make([]stats.Outcome, 0, len(matches))
		for i := range matches {
			totals.Add(&matches[i], playerID)
			if o, ok := stats.CricketOutcome(&matches[i], playerID); ok {
				outcomes = append(outcomes, o)
			}
			profile.RecentMatches = append(profile.RecentMatches, cricketRecent(&matches[i], playerID))
		}
		profile.Cricket = &totals
		profile.CareerStats = stats.TallyOutcomes(outcomes)
		profile.RadarData = stats.CricketRadar(playerID, player.Category, matches)
		profile.PerformanceHistory = stats.CricketHistory(playerID, matches)
		profile.Form = stats.CricketAssessment(totals)

	case models.SportFootball:
		matches, err := s.football.ListCompletedByPlayer(ctx, playerID, profileWindow)
		if err != nil {
			return nil, err
		}
		var totals stats.FootballTotals
		outcomes := make([]stats.Outcome, 0, len(matches))
		for i := range matches {
			totals.Add(&matches[i], playerID)
			if o, ok := stats.FootballOutcome(&matches[i], playerID); ok {
				outcomes = append(outcomes, o)
			}
			profile.RecentMatches = append(profile.RecentMatches, footballRecent(&matches[i], playerID))
		}
		profile.Football = &totals
		profile.CareerStats = stats.TallyOutcomes(outcomes)
		profile.RadarData = stats.FootballRadar(playerID, matches)
		profile.PerformanceHistory = stats.FootballHistory(playerID, matches)
		profile.Form = stats.FootballAssessment(totals)

	case models.SportBadminton:
		matches, err := s.badminton.ListCompletedByPlayer(ctx, playerID, profileWindow)
		if err != nil {
			return nil, err
		}
		var totals stats.BadmintonTotals
		outcomes := make([]stats.Outcome, 0, len(matches))
		for i := range matches {
			totals.Add(&matches[i], playerID)
			if o, ok := stats.BadmintonOutcome(&matches[i], playerID); ok {
				outcomes = append(outcomes, o)
			}
			profile.RecentMatches = append(profile.RecentMatches, badmintonRecent(&matches[i], playerID))
		}
		profile.Badminton = &totals
		profile.CareerStats = stats.TallyOutcomes(outcomes)
		profile.RadarData = stats.BadmintonRadar(playerID, matches)
		profile.PerformanceHistory = stats.BadmintonHistory(playerID, matches)
		profile.Form = stats.BadmintonAssessment(totals, profile.CareerStats)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cache.PlayerKey(playerID), profile); err != nil {
			s.logger.WarnContext(ctx, "profile cache write failed", slog.Any("error", err))
		}
	}
	return profile, nil
}

func (s *profileService) TeamProfile(ctx context.Context, teamID int) (*TeamProfile, error) {
	if s.cache != nil {
		var cached TeamProfile
		if err := s.cache.Get(ctx, cache.TeamKey(teamID), &cached); err == nil {
			return &cached, nil
		} else if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.WarnContext(ctx, "profile cache read failed", slog.Any("error", err))
		}
	}

	team, err := s.teams.FindByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	populateTeamPhotoURL(team, s.uploader)

	roster, err := s.players.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	team.Players = make([]models.Player, 0, len(roster))
	for _, p := range roster {
		populatePlayerPhotoURL(p, s.uploader)
		team.Players = append(team.Players, *p)
	}

	profile := &TeamProfile{Team: *team}
	outcomes := make([]stats.Outcome, 0, profileWindow)

	switch team.Sport {
	case models.SportCricket:
		matches, err := s.cricket.ListCompletedByTeam(ctx, teamID, profileWindow)
		if err != nil {
			return nil, err
		}
		for i := range matches {
			m := &matches[i]
			name := m.Team1Name
			if m.Team2ID == teamID {
				name = m.Team2Name
			}
			if m.Winner != nil {
				outcomes = append(outcomes, stats.Outcome{Winner: *m.Winner, TeamName: name})
			}
			profile.RecentForm = append(profile.RecentForm, TeamFormEntry{
				MatchID:  m.ID,
				Date:     m.Date,
				Opponent: otherName(m.Team1Name, m.Team2Name, name),
				Result:   formLetter(derefString(m.Winner), name),
				Score: fmt.Sprintf("%d/%d - %d/%d",
					m.Score.Team1.Score, m.Score.Team1.Wickets,
					m.Score.Team2.Score, m.Score.Team2.Wickets),
			})
			profile.RecentMatches = append(profile.RecentMatches, RecentMatch{
				MatchID:  m.ID,
				Date:     m.Date,
				Opponent: otherName(m.Team1Name, m.Team2Name, name),
				Winner:   derefString(m.Winner),
				Result:   resultFor(derefString(m.Winner), name),
			})
		}
		if profile.Wins, err = s.cricket.CountWonByTeam(ctx, teamID, team.Name); err != nil {
			return nil, err
		}
	case models.SportFootball:
		matches, err := s.football.ListCompletedByTeam(ctx, teamID, profileWindow)
		if err != nil {
			return nil, err
		}
		for i := range matches {
			m := &matches[i]
			name := m.Team1Name
			if m.Team2ID == teamID {
				name = m.Team2Name
			}
			if m.Winner != nil {
				outcomes = append(outcomes, stats.Outcome{Winner: *m.Winner, TeamName: name})
			}
			profile.RecentForm = append(profile.RecentForm, TeamFormEntry{
				MatchID:  m.ID,
				Date:     m.Date,
				Opponent: otherName(m.Team1Name, m.Team2Name, name),
				Result:   formLetter(derefString(m.Winner), name),
				Score:    fmt.Sprintf("%d - %d", m.Score.Team1, m.Score.Team2),
			})
			profile.RecentMatches = append(profile.RecentMatches, RecentMatch{
				MatchID:  m.ID,
				Date:     m.Date,
				Opponent: otherName(m.Team1Name, m.Team2Name, name),
				Winner:   derefString(m.Winner),
				Result:   resultFor(derefString(m.Winner), name),
			})
		}
		if profile.Wins, err = s.football.CountWonByTeam(ctx, teamID, team.Name); err != nil {
			return nil, err
		}
	case models.SportBadminton:
		matches, err := s.badminton.ListCompletedByTeam(ctx, teamID, profileWindow)
		if err != nil {
			return nil, err
		}
		for i := range matches {
			m := &matches[i]
			name := m.Team1Name
			if m.Team2ID == teamID {
				name = m.Team2Name
			}
			if m.Winner != nil {
				outcomes = append(outcomes, stats.Outcome{Winner: *m.Winner, TeamName: name})
			}
			profile.RecentForm = append(profile.RecentForm, TeamFormEntry{
				MatchID:  m.ID,
				Date:     m.Date,
				Opponent: otherName(m.Team1Name, m.Team2Name, name),
				Result:   formLetter(derefString(m.Winner), name),
				Score:    fmt.Sprintf("%d - %d", m.Score.Player1, m.Score.Player2),
			})
			profile.RecentMatches = append(profile.RecentMatches, RecentMatch{
				MatchID:  m.ID,
				Date:     m.Date,
				Opponent: otherName(m.Team1Name, m.Team2Name, name),
				Winner:   derefString(m.Winner),
				Result:   resultFor(derefString(m.Winner), name),
			})
		}
		if profile.Wins, err = s.badminton.CountWonByTeam(ctx, teamID, team.Name); err != nil {
			return nil, err
		}
	}

	profile.CareerStats = stats.TallyOutcomes(outcomes)

	if s.cache != nil {
		if err := s.cache.Set(ctx, cache.TeamKey(teamID), profile); err != nil {
			s.logger.WarnContext(ctx, "profile cache write failed", slog.Any("error", err))
		}
	}
	return profile, nil
}

// Compare builds the two profiles in parallel. Both players must play the
// same sport for a meaningful radar comparison.
func (s *profileService) Compare(ctx context.Context, player1ID, player2ID int) (*ComparePlayers, error) {
	var result ComparePlayers

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.PlayerProfile(gctx, player1ID)
		if err != nil {
			return err
		}
		result.Player1 = *p
		return nil
	})
	g.Go(func() error {
		p, err := s.PlayerProfile(gctx, player2ID)
		if err != nil {
			return err
		}
		result.Player2 = *p
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if result.Player1.Player.Sport != result.Player2.Player.Sport {
		return nil, ErrSportMismatch
	}
	return &result, nil
}

func (s *profileService) Home(ctx context.Context) (*HomeData, error) {
	if s.cache != nil {
		var cached HomeData
		if err := s.cache.Get(ctx, cache.HomeKey(), &cached); err == nil {
			return &cached, nil
		} else if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.WarnContext(ctx, "home cache read failed", slog.Any("error", err))
		}
	}

	var home HomeData
	var topPlayers []*models.Player
	var cricketTotal, footballTotal, badmintonTotal int
	live, upcoming := models.StatusLive, models.StatusUpcoming

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		home.LiveCricket, err = s.cricket.List(gctx, &live)
		return err
	})
	g.Go(func() (err error) {
		home.LiveFootball, err = s.football.List(gctx, &live)
		return err
	})
	g.Go(func() (err error) {
		home.LiveBadminton, err = s.badminton.List(gctx, &live)
		return err
	})
	g.Go(func() (err error) {
		home.UpcomingCricket, err = s.cricket.List(gctx, &upcoming)
		return err
	})
	g.Go(func() (err error) {
		home.UpcomingFootball, err = s.football.List(gctx, &upcoming)
		return err
	})
	g.Go(func() (err error) {
		home.UpcomingBadminton, err = s.badminton.List(gctx, &upcoming)
		return err
	})
	g.Go(func() (err error) {
		topPlayers, err = s.players.ListTop(gctx, homeTopPlayers)
		return err
	})
	g.Go(func() error {
		c, err := s.cricketCounts(gctx)
		cricketTotal = c.Upcoming + c.Live + c.Completed
		return err
	})
	g.Go(func() error {
		c, err := s.footballCounts(gctx)
		footballTotal = c.Upcoming + c.Live + c.Completed
		return err
	})
	g.Go(func() error {
		c, err := s.badmintonCounts(gctx)
		badmintonTotal = c.Upcoming + c.Live + c.Completed
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	now := time.Now()
	for _, m := range home.UpcomingCricket {
		m.Status = models.DisplayStatus(m.Status, m.Date, now)
	}
	for _, m := range home.UpcomingFootball {
		m.Status = models.DisplayStatus(m.Status, m.Date, now)
	}
	for _, m := range home.UpcomingBadminton {
		m.Status = models.DisplayStatus(m.Status, m.Date, now)
	}

	home.NextFixtures = nextFixtures(&home)
	home.TopPlayers = make([]models.PlayerSummary, 0, len(topPlayers))
	for _, p := range topPlayers {
		populatePlayerPhotoURL(p, s.uploader)
		home.TopPlayers = append(home.TopPlayers, p.Summary())
	}
	home.Counts = HomeCounts{
		Matches:      cricketTotal + footballTotal + badmintonTotal,
		HasCricket:   cricketTotal > 0,
		HasFootball:  footballTotal > 0,
		HasBadminton: badmintonTotal > 0,
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cache.HomeKey(), &home); err != nil {
			s.logger.WarnContext(ctx, "home cache write failed", slog.Any("error", err))
		}
	}
	return &home, nil
}

// nextFixtures collapses the per-sport upcoming lists into the soonest
// fixtures across every sport, date ascending.
func nextFixtures(home *HomeData) []Fixture {
	fixtures := make([]Fixture, 0,
		len(home.UpcomingCricket)+len(home.UpcomingFootball)+len(home.UpcomingBadminton))
	for _, m := range home.UpcomingCricket {
		fixtures = append(fixtures, Fixture{
			MatchID:   m.ID,
			Sport:     models.SportCricket,
			Team1Name: m.Team1Name,
			Team2Name: m.Team2Name,
			Date:      m.Date,
			Venue:     m.Venue,
		})
	}
	for _, m := range home.UpcomingFootball {
		fixtures = append(fixtures, Fixture{
			MatchID:   m.ID,
			Sport:     models.SportFootball,
			Team1Name: m.Team1Name,
			Team2Name: m.Team2Name,
			Date:      m.Date,
			Venue:     m.Venue,
		})
	}
	for _, m := range home.UpcomingBadminton {
		fixtures = append(fixtures, Fixture{
			MatchID:   m.ID,
			Sport:     models.SportBadminton,
			Team1Name: m.Team1Name,
			Team2Name: m.Team2Name,
			Date:      m.Date,
			Venue:     m.Venue,
		})
	}
	sort.SliceStable(fixtures, func(i, j int) bool {
		return fixtures[i].Date.Before(fixtures[j].Date)
	})
	if len(fixtures) > homeFixtureLimit {
		fixtures = fixtures[:homeFixtureLimit]
	}
	return fixtures
}

// LiveAndUpcoming lists everything a viewer can watch right now or soon:
// live matches of every sport plus upcoming ones whose date is still ahead.
func (s *profileService) LiveAndUpcoming(ctx context.Context) (*LiveAndUpcoming, error) {
	var data LiveAndUpcoming
	live, upcoming := models.StatusLive, models.StatusUpcoming

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		data.Live.Cricket, err = s.cricket.List(gctx, &live)
		return err
	})
	g.Go(func() (err error) {
		data.Live.Football, err = s.football.List(gctx, &live)
		return err
	})
	g.Go(func() (err error) {
		data.Live.Badminton, err = s.badminton.List(gctx, &live)
		return err
	})
	g.Go(func() (err error) {
		data.Upcoming.Cricket, err = s.cricket.List(gctx, &upcoming)
		return err
	})
	g.Go(func() (err error) {
		data.Upcoming.Football, err = s.football.List(gctx, &upcoming)
		return err
	})
	g.Go(func() (err error) {
		data.Upcoming.Badminton, err = s.badminton.List(gctx, &upcoming)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	now := time.Now()
	cricket := data.Upcoming.Cricket[:0]
	for _, m := range data.Upcoming.Cricket {
		if !m.Date.Before(now) {
			cricket = append(cricket, m)
		}
	}
	data.Upcoming.Cricket = cricket
	football := data.Upcoming.Football[:0]
	for _, m := range data.Upcoming.Football {
		if !m.Date.Before(now) {
			football = append(football, m)
		}
	}
	data.Upcoming.Football = football
	badminton := data.Upcoming.Badminton[:0]
	for _, m := range data.Upcoming.Badminton {
		if !m.Date.Before(now) {
			badminton = append(badminton, m)
		}
	}
	data.Upcoming.Badminton = badminton

	data.Counts = map[string]int{
		"upcoming": data.Upcoming.size(),
		"live":     data.Live.size(),
	}
	return &data, nil
}

// Matches lists every match of every sport, grouped by display status.
func (s *profileService) Matches(ctx context.Context) (*MatchesOverview, error) {
	var (
		cricket   []*models.CricketMatch
		football  []*models.FootballMatch
		badminton []*models.BadmintonMatch
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		cricket, err = s.cricket.List(gctx, nil)
		return err
	})
	g.Go(func() (err error) {
		football, err = s.football.List(gctx, nil)
		return err
	})
	g.Go(func() (err error) {
		badminton, err = s.badminton.List(gctx, nil)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var overview MatchesOverview
	now := time.Now()
	for _, m := range cricket {
		m.Status = models.DisplayStatus(m.Status, m.Date, now)
		switch m.Status {
		case models.StatusUpcoming:
			overview.Upcoming.Cricket = append(overview.Upcoming.Cricket, m)
		case models.StatusDue:
			overview.Due.Cricket = append(overview.Due.Cricket, m)
		case models.StatusLive:
			overview.Live.Cricket = append(overview.Live.Cricket, m)
		case models.StatusCompleted:
			overview.Completed.Cricket = append(overview.Completed.Cricket, m)
		}
	}
	for _, m := range football {
		m.Status = models.DisplayStatus(m.Status, m.Date, now)
		switch m.Status {
		case models.StatusUpcoming:
			overview.Upcoming.Football = append(overview.Upcoming.Football, m)
		case models.StatusDue:
			overview.Due.Football = append(overview.Due.Football, m)
		case models.StatusLive:
			overview.Live.Football = append(overview.Live.Football, m)
		case models.StatusCompleted:
			overview.Completed.Football = append(overview.Completed.Football, m)
		}
	}
	for _, m := range badminton {
		m.Status = models.DisplayStatus(m.Status, m.Date, now)
		switch m.Status {
		case models.StatusUpcoming:
			overview.Upcoming.Badminton = append(overview.Upcoming.Badminton, m)
		case models.StatusDue:
			overview.Due.Badminton = append(overview.Due.Badminton, m)
		case models.StatusLive:
			overview.Live.Badminton = append(overview.Live.Badminton, m)
		case models.StatusCompleted:
			overview.Completed.Badminton = append(overview.Completed.Badminton, m)
		}
	}

	overview.Counts = map[string]int{
		"upcoming":  overview.Upcoming.size(),
		"due":       overview.Due.size(),
		"live":      overview.Live.size(),
		"completed": overview.Completed.size(),
	}
	return &overview, nil
}

func (s *profileService) Dashboard(ctx context.Context) (*DashboardData, error) {
	var data DashboardData

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		data.Players, err = s.players.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		data.Teams, err = s.teams.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		data.Coaches, err = s.coaches.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		data.Cricket, err = s.cricketCounts(gctx)
		return err
	})
	g.Go(func() (err error) {
		data.Football, err = s.footballCounts(gctx)
		return err
	})
	g.Go(func() (err error) {
		data.Badminton, err = s.badmintonCounts(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &data, nil
}

func (s *profileService) cricketCounts(ctx context.Context) (SportMatchCounts, error) {
	var c SportMatchCounts
	var err error
	if c.Upcoming, err = s.cricket.CountByStatus(ctx, models.StatusUpcoming); err != nil {
		return c, err
	}
	if c.Live, err = s.cricket.CountByStatus(ctx, models.StatusLive); err != nil {
		return c, err
	}
	c.Completed, err = s.cricket.CountByStatus(ctx, models.StatusCompleted)
	return c, err
}

func (s *profileService) footballCounts(ctx context.Context) (SportMatchCounts, error) {
	var c SportMatchCounts
	var err error
	if c.Upcoming, err = s.football.CountByStatus(ctx, models.StatusUpcoming); err != nil {
		return c, err
	}
	if c.Live, err = s.football.CountByStatus(ctx, models.StatusLive); err != nil {
		return c, err
	}
	c.Completed, err = s.football.CountByStatus(ctx, models.StatusCompleted)
	return c, err
}

func (s *profileService) badmintonCounts(ctx context.Context) (SportMatchCounts, error) {
	var c SportMatchCounts
	var err error
	if c.Upcoming, err = s.badminton.CountByStatus(ctx, models.StatusUpcoming); err != nil {
		return c, err
	}
	if c.Live, err = s.badminton.CountByStatus(ctx, models.StatusLive); err != nil {
		return c, err
	}
	c.Completed, err = s.badminton.CountByStatus(ctx, models.StatusCompleted)
	return c, err
}

func resultFor(winner, teamName string) string {
	switch {
	case winner == "":
		return ""
	case winner == models.WinnerDraw:
		return "Draw"
	case winner == teamName:
		return "Won"
	default:
		return "Lost"
	}
}

// formLetter condenses a completed match into its W/L/D strip letter.
func formLetter(winner, teamName string) string {
	switch {
	case winner == "":
		return ""
	case winner == models.WinnerDraw:
		return "D"
	case winner == teamName:
		return "W"
	default:
		return "L"
	}
}

func otherName(name1, name2, own string) string {
	if own == name1 {
		return name2
	}
	return name1
}

func cricketRecent(m *models.CricketMatch, playerID int) RecentMatch {
	own := m.Team1Name
	if st := m.StatFor(playerID); st != nil && st.PlayerTeamID != m.Team1ID {
		own = m.Team2Name
	}
	return RecentMatch{
		MatchID:  m.ID,
		Date:     m.Date,
		Opponent: otherName(m.Team1Name, m.Team2Name, own),
		Winner:   derefString(m.Winner),
		Result:   resultFor(derefString(m.Winner), own),
	}
}

func footballRecent(m *models.FootballMatch, playerID int) RecentMatch {
	own := m.Team1Name
	if st := m.StatFor(playerID); st != nil && st.PlayerTeamID != m.Team1ID {
		own = m.Team2Name
	}
	return RecentMatch{
		MatchID:  m.ID,
		Date:     m.Date,
		Opponent: otherName(m.Team1Name, m.Team2Name, own),
		Winner:   derefString(m.Winner),
		Result:   resultFor(derefString(m.Winner), own),
	}
}

func badmintonRecent(m *models.BadmintonMatch, playerID int) RecentMatch {
	own := ""
	if st := m.StatFor(playerID); st != nil {
		own = st.TeamName
	}
	return RecentMatch{
		MatchID:  m.ID,
		Date:     m.Date,
		Opponent: otherName(m.Team1Name, m.Team2Name, own),
		Winner:   derefString(m.Winner),
		Result:   resultFor(derefString(m.Winner), own),
	}
}
