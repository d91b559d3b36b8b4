package content

import (
	"fmt"
	"math"
)

const (
	MinScore = 1
	MaxScore = 5
)

// Scores are the four category scores of a post review.
type Scores struct {
	Story    int
	Graphics int
	Gameplay int
	Quality  int
}

// Validate reports the first category outside [MinScore, MaxScore].
func (s Scores) Validate() error {
	fields := []struct {
		name  string
		value int
	}{
		{"storyScore", s.Story},
		{"graphicsScore", s.Graphics},
		{"gameplayScore", s.Gameplay},
		{"qualityScore", s.Quality},
	}
	for _, f := range fields {
		if f.value < MinScore || f.value > MaxScore {
			return invalid(f.name, fmt.Sprintf("must be between %d and %d, got %d", MinScore, MaxScore, f.value))
		}
	}
	return nil
}

// TotalScore is the unweighted mean of the four categories rounded to one
// decimal place, halves away from zero.
func TotalScore(s Scores) (float64, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	sum := s.Story + s.Graphics + s.Gameplay + s.Quality
	// sum*10/4 is exact in float64, so Round sees the true half.
	return math.Round(float64(sum*10)/4) / 10, nil
}
