package scoring

import (
	"errors"
	"testing"

	"github.com/playsphere/playsphere/models"
)

func TestTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    models.MatchStatus
		to      models.MatchStatus
		wantErr error
	}{
		{"upcoming to live", models.StatusUpcoming, models.StatusLive, nil},
		{"upcoming to completed", models.StatusUpcoming, models.StatusCompleted, nil},
		{"live to completed", models.StatusLive, models.StatusCompleted, nil},
		{"same status is a no-op", models.StatusLive, models.StatusLive, nil},
		{"completed to completed no-op", models.StatusCompleted, models.StatusCompleted, nil},
		{"live back to upcoming", models.StatusLive, models.StatusUpcoming, ErrStatusRegression},
		{"completed back to live", models.StatusCompleted, models.StatusLive, ErrStatusRegression},
		{"completed back to upcoming", models.StatusCompleted, models.StatusUpcoming, ErrStatusRegression},
		{"unknown target", models.StatusUpcoming, models.MatchStatus("cancelled"), ErrInvalidStatus},
		{"due is not a stored status", models.StatusUpcoming, models.StatusDue, ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Transition(tt.from, tt.to)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Transition(%q, %q) = %v, want %v", tt.from, tt.to, err, tt.wantErr)
			}
		})
	}
}

func TestDeriveWinner(t *testing.T) {
	tests := []struct {
		name   string
		s1, s2 int
		want   string
	}{
		{"first side wins", 3, 1, "Eagles"},
		{"second side wins", 0, 2, "Hawks"},
		{"draw on equal score", 2, 2, models.WinnerDraw},
		{"zero all is a draw", 0, 0, models.WinnerDraw},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveWinner("Eagles", "Hawks", tt.s1, tt.s2); got != tt.want {
				t.Errorf("DeriveWinner = %q, want %q", got, tt.want)
			}
		})
	}
}
