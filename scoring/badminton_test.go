package scoring

import (
	"errors"
	"testing"
	"time"

	"github.com/playsphere/playsphere/models"
)

func newBadmintonMatch() *models.BadmintonMatch {
	return &models.BadmintonMatch{
		ID:        3,
		Player1ID: 101,
		Player2ID: 201,
		Team1ID:   10,
		Team2ID:   20,
		Team1Name: "Eagles",
		Team2Name: "Hawks",
		Date:      time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC),
		Venue:     "Indoor Court 2",
		Status:    models.StatusLive,
		PlayerStats: []models.BadmintonPlayerStat{
			{PlayerID: 101, PlayerName: "Arun", TeamName: "Eagles"},
			{PlayerID: 201, PlayerName: "Chetan", TeamName: "Hawks"},
		},
	}
}

func TestApplyRallyPointWon(t *testing.T) {
	m := newBadmintonMatch()
	if err := ApplyRally(m, RallyEvent{Kind: RallyPoint, PlayerID: 101, PointWon: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Score.Player1 != 1 || m.Score.Player2 != 0 {
		t.Errorf("score = %d-%d, want 1-0", m.Score.Player1, m.Score.Player2)
	}
	if st := m.StatFor(101); st.PointsWon != 1 {
		t.Errorf("pointsWon = %d, want 1", st.PointsWon)
	}
}

func TestApplyRallyPointLostCreditsOpponent(t *testing.T) {
	m := newBadmintonMatch()
	if err := ApplyRally(m, RallyEvent{Kind: RallyPoint, PlayerID: 101, PointWon: false}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Score.Player1 != 0 || m.Score.Player2 != 1 {
		t.Errorf("score = %d-%d, want 0-1", m.Score.Player1, m.Score.Player2)
	}
	if st := m.StatFor(101); st.PointsLost != 1 {
		t.Errorf("pointsLost = %d, want 1", st.PointsLost)
	}
	if st := m.StatFor(201); st.PointsWon != 0 {
		t.Errorf("opponent pointsWon = %d, want 0", st.PointsWon)
	}
}

func TestApplyRallyKinds(t *testing.T) {
	tests := []struct {
		name   string
		ev     RallyEvent
		p1, p2 int // expected score sides
		check  func(t *testing.T, m *models.BadmintonMatch)
	}{
		{
			name: "ace wins the rally outright",
			ev:   RallyEvent{Kind: RallyAce, PlayerID: 101},
			p1:   1,
			check: func(t *testing.T, m *models.BadmintonMatch) {
				st := m.StatFor(101)
				if st.Aces != 1 || st.PointsWon != 1 {
					t.Errorf("aces %d pointsWon %d, want 1 and 1", st.Aces, st.PointsWon)
				}
			},
		},
		{
			name: "double fault hands the point over",
			ev:   RallyEvent{Kind: RallyDoubleFault, PlayerID: 101},
			p2:   1,
			check: func(t *testing.T, m *models.BadmintonMatch) {
				st := m.StatFor(101)
				if st.DoubleFaults != 1 || st.PointsLost != 1 {
					t.Errorf("doubleFaults %d pointsLost %d, want 1 and 1", st.DoubleFaults, st.PointsLost)
				}
			},
		},
		{
			name: "smash won",
			ev:   RallyEvent{Kind: RallySmash, PlayerID: 101, PointWon: true},
			p1:   1,
			check: func(t *testing.T, m *models.BadmintonMatch) {
				st := m.StatFor(101)
				if st.Smashes != 1 || st.PointsWon != 1 {
					t.Errorf("smashes %d pointsWon %d, want 1 and 1", st.Smashes, st.PointsWon)
				}
			},
		},
		{
			name: "net play without the point only counts the technique",
			ev:   RallyEvent{Kind: RallyNetPlay, PlayerID: 101, PointWon: false},
			check: func(t *testing.T, m *models.BadmintonMatch) {
				st := m.StatFor(101)
				if st.NetPlays != 1 || st.PointsWon != 0 || st.PointsLost != 0 {
					t.Errorf("netPlays %d pointsWon %d pointsLost %d, want 1, 0 and 0", st.NetPlays, st.PointsWon, st.PointsLost)
				}
			},
		},
		{
			name: "smash without the point only counts the technique",
			ev:   RallyEvent{Kind: RallySmash, PlayerID: 101, PointWon: false},
			check: func(t *testing.T, m *models.BadmintonMatch) {
				st := m.StatFor(101)
				if st.Smashes != 1 || st.PointsWon != 0 || st.PointsLost != 0 {
					t.Errorf("smashes %d pointsWon %d pointsLost %d, want 1, 0 and 0", st.Smashes, st.PointsWon, st.PointsLost)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newBadmintonMatch()
			if err := ApplyRally(m, tt.ev); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if m.Score.Player1 != tt.p1 || m.Score.Player2 != tt.p2 {
				t.Errorf("score = %d-%d, want %d-%d", m.Score.Player1, m.Score.Player2, tt.p1, tt.p2)
			}
			tt.check(t, m)
		})
	}
}

func TestApplyRallySecondPlayerSide(t *testing.T) {
	m := newBadmintonMatch()
	if err := ApplyRally(m, RallyEvent{Kind: RallyAce, PlayerID: 201}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Score.Player1 != 0 || m.Score.Player2 != 1 {
		t.Errorf("score = %d-%d, want 0-1", m.Score.Player1, m.Score.Player2)
	}
}

func TestApplyRallyRejections(t *testing.T) {
	m := newBadmintonMatch()
	if err := ApplyRally(m, RallyEvent{Kind: RallyPoint, PlayerID: 999, PointWon: true}); !errors.Is(err, ErrPlayerNotEnrolled) {
		t.Errorf("error = %v, want ErrPlayerNotEnrolled", err)
	}
	if err := ApplyRally(m, RallyEvent{Kind: "drop_shot", PlayerID: 101}); !errors.Is(err, ErrUnknownEventKind) {
		t.Errorf("error = %v, want ErrUnknownEventKind", err)
	}
	if m.Score.Player1 != 0 || m.Score.Player2 != 0 {
		t.Errorf("score changed on rejected events: %+v", m.Score)
	}
}
