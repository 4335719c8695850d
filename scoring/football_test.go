package scoring

import (
	"errors"
	"testing"
	"time"

	"github.com/playsphere/playsphere/models"
)

func newFootballMatch() *models.FootballMatch {
	return &models.FootballMatch{
		ID:        2,
		Team1ID:   10,
		Team2ID:   20,
		Team1Name: "Eagles",
		Team2Name: "Hawks",
		Date:      time.Date(2025, 3, 2, 18, 0, 0, 0, time.UTC),
		Venue:     "City Stadium",
		Status:    models.StatusLive,
		PlayerStats: []models.FootballPlayerStat{
			{PlayerID: 101, PlayerName: "Arun", PlayerTeamID: 10},
			{PlayerID: 201, PlayerName: "Chetan", PlayerTeamID: 20},
		},
	}
}

func TestApplyFootballEventGoal(t *testing.T) {
	m := newFootballMatch()
	if err := ApplyFootballEvent(m, FootballEvent{Kind: FootballGoal, PlayerID: 101}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	st := m.StatFor(101)
	if st.Goals != 1 || st.Shots != 1 {
		t.Errorf("goal stat = goals %d shots %d, want 1 and 1", st.Goals, st.Shots)
	}
	if m.Score.Team1 != 1 || m.Score.Team2 != 0 {
		t.Errorf("score = %d-%d, want 1-0", m.Score.Team1, m.Score.Team2)
	}

	// A goal by the other side credits the other half of the score.
	if err := ApplyFootballEvent(m, FootballEvent{Kind: FootballGoal, PlayerID: 201}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Score.Team1 != 1 || m.Score.Team2 != 1 {
		t.Errorf("score = %d-%d, want 1-1", m.Score.Team1, m.Score.Team2)
	}
}

func TestApplyFootballEventSingleCounter(t *testing.T) {
	tests := []struct {
		kind FootballEventKind
		get  func(models.FootballPlayerStat) int
	}{
		{FootballAssist, func(s models.FootballPlayerStat) int { return s.Assists }},
		{FootballPenalty, func(s models.FootballPlayerStat) int { return s.Penalties }},
		{FootballYellowCard, func(s models.FootballPlayerStat) int { return s.YellowCards }},
		{FootballRedCard, func(s models.FootballPlayerStat) int { return s.RedCards }},
		{FootballSave, func(s models.FootballPlayerStat) int { return s.Saves }},
		{FootballShot, func(s models.FootballPlayerStat) int { return s.Shots }},
		{FootballTackle, func(s models.FootballPlayerStat) int { return s.Tackles }},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			m := newFootballMatch()
			if err := ApplyFootballEvent(m, FootballEvent{Kind: tt.kind, PlayerID: 101}); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := tt.get(*m.StatFor(101)); got != 1 {
				t.Errorf("counter = %d, want 1", got)
			}
			if m.Score.Team1 != 0 || m.Score.Team2 != 0 {
				t.Errorf("non-goal event moved the score: %+v", m.Score)
			}
		})
	}
}

func TestApplyFootballEventRejections(t *testing.T) {
	m := newFootballMatch()

	if err := ApplyFootballEvent(m, FootballEvent{Kind: FootballGoal, PlayerID: 999}); !errors.Is(err, ErrPlayerNotEnrolled) {
		t.Errorf("error = %v, want ErrPlayerNotEnrolled", err)
	}
	if err := ApplyFootballEvent(m, FootballEvent{Kind: "corner", PlayerID: 101}); !errors.Is(err, ErrUnknownEventKind) {
		t.Errorf("error = %v, want ErrUnknownEventKind", err)
	}
	if m.Score.Team1 != 0 || m.Score.Team2 != 0 {
		t.Errorf("score changed on rejected events: %+v", m.Score)
	}
}
