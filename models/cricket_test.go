package models

import (
	"testing"
	"time"
)

func TestOversNotation(t *testing.T) {
	tests := []struct {
		ballsBowled int
		want        string
	}{
		{0, "0.0"},
		{5, "0.5"},
		{6, "1.0"},
		{13, "2.1"},
		{60, "10.0"},
	}
	for _, tt := range tests {
		st := CricketPlayerStat{BallsBowled: tt.ballsBowled}
		if got := st.Overs(); got != tt.want {
			t.Errorf("Overs() with %d balls = %q, want %q", tt.ballsBowled, got, tt.want)
		}
	}
}

func TestDisplayStatus(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name   string
		status MatchStatus
		date   time.Time
		want   MatchStatus
	}{
		{"upcoming in the future stays upcoming", StatusUpcoming, future, StatusUpcoming},
		{"upcoming past its date shows due", StatusUpcoming, past, StatusDue},
		{"live is unaffected by the date", StatusLive, past, StatusLive},
		{"completed is unaffected by the date", StatusCompleted, past, StatusCompleted},
	}
	for _, tt := range tests {
		if got := DisplayStatus(tt.status, tt.date, now); got != tt.want {
			t.Errorf("%s: DisplayStatus = %q, want %q", tt.name, got, tt.want)
		}
	}
}
