package services

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/playsphere/playsphere/models"
	"github.com/playsphere/playsphere/repositories"
)

// Partial repository stubs: the embedded interface panics on anything a
// test did not mean to touch.

type stubPlayerRepo struct {
	repositories.PlayerRepository
	roster map[int][]*models.Player
	top    []*models.Player
}

func (s *stubPlayerRepo) ListByTeam(_ context.Context, teamID int) ([]*models.Player, error) {
	return s.roster[teamID], nil
}

func (s *stubPlayerRepo) ListTop(_ context.Context, limit int) ([]*models.Player, error) {
	if len(s.top) > limit {
		return s.top[:limit], nil
	}
	return s.top, nil
}

type stubTeamRepo struct {
	repositories.TeamRepository
	teams map[int]*models.Team
}

func (s *stubTeamRepo) FindByID(_ context.Context, id int) (*models.Team, error) {
	t, ok := s.teams[id]
	if !ok {
		return nil, repositories.ErrTeamNotFound
	}
	copied := *t
	return &copied, nil
}

type stubCricketRepo struct {
	repositories.CricketMatchRepository
	byStatus map[models.MatchStatus][]*models.CricketMatch
	counts   map[models.MatchStatus]int
}

func (s *stubCricketRepo) List(_ context.Context, status *models.MatchStatus) ([]*models.CricketMatch, error) {
	if status == nil {
		return nil, nil
	}
	return s.byStatus[*status], nil
}

func (s *stubCricketRepo) CountByStatus(_ context.Context, status models.MatchStatus) (int, error) {
	return s.counts[status], nil
}

type stubFootballRepo struct {
	repositories.FootballMatchRepository
	byStatus map[models.MatchStatus][]*models.FootballMatch
	counts   map[models.MatchStatus]int
}

func (s *stubFootballRepo) List(_ context.Context, status *models.MatchStatus) ([]*models.FootballMatch, error) {
	if status == nil {
		return nil, nil
	}
	return s.byStatus[*status], nil
}

func (s *stubFootballRepo) CountByStatus(_ context.Context, status models.MatchStatus) (int, error) {
	return s.counts[status], nil
}

type stubBadmintonRepo struct {
	repositories.BadmintonMatchRepository
	byStatus        map[models.MatchStatus][]*models.BadmintonMatch
	counts          map[models.MatchStatus]int
	completedByTeam []models.BadmintonMatch
	teamWins        int
}

func (s *stubBadmintonRepo) List(_ context.Context, status *models.MatchStatus) ([]*models.BadmintonMatch, error) {
	if status == nil {
		return nil, nil
	}
	return s.byStatus[*status], nil
}

func (s *stubBadmintonRepo) CountByStatus(_ context.Context, status models.MatchStatus) (int, error) {
	return s.counts[status], nil
}

func (s *stubBadmintonRepo) ListCompletedByTeam(_ context.Context, teamID, limit int) ([]models.BadmintonMatch, error) {
	return s.completedByTeam, nil
}

func (s *stubBadmintonRepo) CountWonByTeam(_ context.Context, teamID int, teamName string) (int, error) {
	return s.teamWins, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestTeamProfileBadminton(t *testing.T) {
	winner1, winner2 := "Eagles", "Hawks"
	badminton := &stubBadmintonRepo{
		teamWins: 4,
		completedByTeam: []models.BadmintonMatch{
			{
				ID:      31,
				Team1ID: 7, Team2ID: 8,
				Team1Name: "Eagles", Team2Name: "Hawks",
				Date:   time.Date(2026, time.March, 20, 0, 0, 0, 0, time.UTC),
				Status: models.StatusCompleted,
				Winner: &winner1,
				Score:  models.BadmintonScore{Player1: 21, Player2: 15},
			},
			{
				ID:      32,
				Team1ID: 8, Team2ID: 7,
				Team1Name: "Hawks", Team2Name: "Eagles",
				Date:   time.Date(2026, time.March, 12, 0, 0, 0, 0, time.UTC),
				Status: models.StatusCompleted,
				Winner: &winner2,
				Score:  models.BadmintonScore{Player1: 21, Player2: 18},
			},
		},
	}
	teams := &stubTeamRepo{teams: map[int]*models.Team{
		7: {ID: 7, Name: "Eagles", Sport: models.SportBadminton},
	}}
	players := &stubPlayerRepo{roster: map[int][]*models.Player{}}

	svc := NewProfileService(players, teams, nil, &stubCricketRepo{}, &stubFootballRepo{}, badminton, nil, nil, testLogger())

	profile, err := svc.TeamProfile(context.Background(), 7)
	if err != nil {
		t.Fatalf("TeamProfile: %v", err)
	}

	if profile.CareerStats.MatchesPlayed != 2 || profile.CareerStats.Wins != 1 || profile.CareerStats.Losses != 1 {
		t.Errorf("career stats = %+v, want 2 played, 1 win, 1 loss", profile.CareerStats)
	}
	if profile.Wins != 4 {
		t.Errorf("all-time wins = %d, want 4", profile.Wins)
	}

	if len(profile.RecentForm) != 2 {
		t.Fatalf("len(RecentForm) = %d, want 2", len(profile.RecentForm))
	}
	first := profile.RecentForm[0]
	if first.Result != "W" || first.Opponent != "Hawks" || first.Score != "21 - 15" {
		t.Errorf("first form entry = %+v, want W vs Hawks 21 - 15", first)
	}
	if second := profile.RecentForm[1]; second.Result != "L" || second.Opponent != "Hawks" {
		t.Errorf("second form entry = %+v, want L vs Hawks", second)
	}

	if len(profile.RecentMatches) != 2 {
		t.Fatalf("len(RecentMatches) = %d, want 2", len(profile.RecentMatches))
	}
	if profile.RecentMatches[0].Result != "Won" || profile.RecentMatches[1].Result != "Lost" {
		t.Errorf("recent results = %q, %q, want Won, Lost",
			profile.RecentMatches[0].Result, profile.RecentMatches[1].Result)
	}
}

func TestHomeFeedFixturesPlayersAndCounts(t *testing.T) {
	base := time.Now().Add(24 * time.Hour)
	cricket := &stubCricketRepo{
		byStatus: map[models.MatchStatus][]*models.CricketMatch{
			models.StatusUpcoming: {
				{ID: 1, Team1Name: "Lions", Team2Name: "Tigers", Date: base.Add(48 * time.Hour), Venue: "Main Ground", Status: models.StatusUpcoming},
				{ID: 2, Team1Name: "Lions", Team2Name: "Bears", Date: base, Venue: "Main Ground", Status: models.StatusUpcoming},
			},
		},
		counts: map[models.MatchStatus]int{models.StatusUpcoming: 2, models.StatusCompleted: 1},
	}
	football := &stubFootballRepo{
		byStatus: map[models.MatchStatus][]*models.FootballMatch{
			models.StatusUpcoming: {
				{ID: 3, Team1Name: "Rovers", Team2Name: "United", Date: base.Add(24 * time.Hour), Venue: "City Field", Status: models.StatusUpcoming},
			},
		},
		counts: map[models.MatchStatus]int{models.StatusUpcoming: 1},
	}
	badminton := &stubBadmintonRepo{}
	players := &stubPlayerRepo{top: []*models.Player{
		{ID: 11, Name: "Arun", Sport: models.SportCricket, Ranking: 90},
		{ID: 12, Name: "Bala", Sport: models.SportFootball, Ranking: 80},
	}}

	svc := NewProfileService(players, &stubTeamRepo{}, nil, cricket, football, badminton, nil, nil, testLogger())

	home, err := svc.Home(context.Background())
	if err != nil {
		t.Fatalf("Home: %v", err)
	}

	if len(home.NextFixtures) != 2 {
		t.Fatalf("len(NextFixtures) = %d, want 2", len(home.NextFixtures))
	}
	if home.NextFixtures[0].MatchID != 2 || home.NextFixtures[0].Sport != models.SportCricket {
		t.Errorf("first fixture = %+v, want cricket match 2", home.NextFixtures[0])
	}
	if home.NextFixtures[1].MatchID != 3 || home.NextFixtures[1].Sport != models.SportFootball {
		t.Errorf("second fixture = %+v, want football match 3", home.NextFixtures[1])
	}

	if len(home.TopPlayers) != 2 {
		t.Fatalf("len(TopPlayers) = %d, want 2", len(home.TopPlayers))
	}
	if home.TopPlayers[0].Name != "Arun" || home.TopPlayers[0].Sport != models.SportCricket {
		t.Errorf("top player = %+v, want Arun the cricketer", home.TopPlayers[0])
	}

	want := HomeCounts{Matches: 4, HasCricket: true, HasFootball: true, HasBadminton: false}
	if home.Counts != want {
		t.Errorf("counts = %+v, want %+v", home.Counts, want)
	}
}

func TestLiveAndUpcomingDropsPastDates(t *testing.T) {
	cricket := &stubCricketRepo{
		byStatus: map[models.MatchStatus][]*models.CricketMatch{
			models.StatusUpcoming: {
				{ID: 1, Date: time.Now().Add(-time.Hour), Status: models.StatusUpcoming},
				{ID: 2, Date: time.Now().Add(time.Hour), Status: models.StatusUpcoming},
			},
		},
	}
	football := &stubFootballRepo{
		byStatus: map[models.MatchStatus][]*models.FootballMatch{
			models.StatusLive: {
				{ID: 3, Status: models.StatusLive},
			},
		},
	}

	svc := NewProfileService(&stubPlayerRepo{}, &stubTeamRepo{}, nil, cricket, football, &stubBadmintonRepo{}, nil, nil, testLogger())

	data, err := svc.LiveAndUpcoming(context.Background())
	if err != nil {
		t.Fatalf("LiveAndUpcoming: %v", err)
	}

	if len(data.Upcoming.Cricket) != 1 || data.Upcoming.Cricket[0].ID != 2 {
		t.Errorf("upcoming cricket = %+v, want only the future match", data.Upcoming.Cricket)
	}
	if len(data.Live.Football) != 1 {
		t.Errorf("len(live football) = %d, want 1", len(data.Live.Football))
	}
	if data.Counts["upcoming"] != 1 || data.Counts["live"] != 1 {
		t.Errorf("counts = %v, want upcoming 1, live 1", data.Counts)
	}
}
