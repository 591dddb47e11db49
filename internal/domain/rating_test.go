package domain

import "testing"

func TestRatingAddClamps(t *testing.T) {
	tests := []struct {
		name   string
		rating Rating
		delta  int
		want   Rating
	}{
		{name: "plain add", rating: 1000, delta: 8, want: 1008},
		{name: "plain subtract", rating: 1000, delta: -8, want: 992},
		{name: "clamp floor", rating: 405, delta: -20, want: MinRating},
		{name: "clamp ceiling", rating: 2395, delta: 20, want: MaxRating},
		{name: "no-op at floor", rating: MinRating, delta: -1, want: MinRating},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rating.Add(tt.delta); got != tt.want {
				t.Errorf("Rating(%d).Add(%d) = %d, want %d", tt.rating, tt.delta, got, tt.want)
			}
		})
	}
}

func TestNewRating(t *testing.T) {
	if _, err := NewRating(399); err == nil {
		t.Error("expected error below MinRating")
	}
	if _, err := NewRating(2401); err == nil {
		t.Error("expected error above MaxRating")
	}
	r, err := NewRating(1000)
	if err != nil || r != 1000 {
		t.Errorf("NewRating(1000) = %d, %v", r, err)
	}
}
