package catalog

import (
	"sort"
	"strings"

	"gamevault/backend/internal/models"
)

// Search returns the games whose title contains query, ignoring case, in
// their original order. An empty query matches nothing.
func Search(query string, games []models.Game) []models.Game {
	q := strings.ToLower(query)
	if q == "" {
		return []models.Game{}
	}
	matches := []models.Game{}
	for _, g := range games {
		if strings.Contains(strings.ToLower(g.Title), q) {
			matches = append(matches, g)
		}
	}
	return matches
}

// Latest orders games by release date, newest first. Games released on the
// same day keep their relative order.
func Latest(games []models.Game) []models.Game {
	sorted := append([]models.Game(nil), games...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ReleaseDate.After(sorted[j].ReleaseDate)
	})
	return sorted
}

// TopRated orders games by total score, highest first. Games without a
// review sort after every reviewed game.
func TopRated(games []models.Game) []models.Game {
	sorted := append([]models.Game(nil), games...)
	sort.SliceStable(sorted, func(i, j int) bool {
		si, okI := sorted[i].TotalScore()
		sj, okJ := sorted[j].TotalScore()
		if okI != okJ {
			return okI
		}
		return si > sj
	})
	return sorted
}
