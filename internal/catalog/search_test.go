package catalog

import (
	"testing"
	"time"

	"gamevault/backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func game(title string, released string, total ...float64) models.Game {
	g := models.Game{Title: title}
	if released != "" {
		g.ReleaseDate, _ = time.Parse("2006-01-02", released)
	}
	if len(total) > 0 {
		g.PostReview = &models.PostReview{TotalScore: total[0]}
	}
	return g
}

func titles(games []models.Game) []string {
	out := make([]string, 0, len(games))
	for _, g := range games {
		out = append(out, g.Title)
	}
	return out
}

func TestSearch(t *testing.T) {
	games := []models.Game{
		game("Hades", "2020-09-17"),
		game("Elden Ring", "2022-02-25"),
		game("Ring Fit Adventure", "2019-10-18"),
	}

	assert.Equal(t, []string{"Elden Ring", "Ring Fit Adventure"}, titles(Search("RING", games)))
	assert.Equal(t, []string{"Hades"}, titles(Search("ade", games)))
	assert.Empty(t, Search("zelda", games))
}

func TestSearch_EmptyQueryMatchesNothing(t *testing.T) {
	got := Search("", []models.Game{game("Hades", "")})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestLatest(t *testing.T) {
	games := []models.Game{
		game("Undated", ""),
		game("Old", "2015-05-19"),
		game("Same Day A", "2022-02-25"),
		game("New", "2024-06-21"),
		game("Same Day B", "2022-02-25"),
	}

	got := Latest(games)
	assert.Equal(t, []string{"New", "Same Day A", "Same Day B", "Old", "Undated"}, titles(got))
	assert.Equal(t, "Undated", games[0].Title, "input is not reordered")
}

func TestTopRated(t *testing.T) {
	games := []models.Game{
		game("Unreviewed A", ""),
		game("Good", "", 4.5),
		game("Unreviewed B", ""),
		game("Best", "", 4.8),
		game("Also Good", "", 4.5),
		game("Poor", "", 1.3),
	}

	got := TopRated(games)
	assert.Equal(t, []string{"Best", "Good", "Also Good", "Poor", "Unreviewed A", "Unreviewed B"}, titles(got))
}
