package models

import (
	"time"

	"gorm.io/datatypes"
)

// Game is a catalog entry. Its pre-game profile lives on the row itself and
// the optional scored deep-dive lives in PostReview.
type Game struct {
	Base
	Slug        string    `gorm:"size:255;uniqueIndex;not null"`
	Title       string    `gorm:"size:255;not null"`
	Company     string    `gorm:"size:255"`
	Genre       string    `gorm:"size:255"`
	ReleaseDate time.Time `gorm:"index"`
	CoverImage  string    `gorm:"size:1024"`
	Storyline   string

	RecommendedFor    datatypes.JSONSlice[string]
	NotRecommendedFor datatypes.JSONSlice[string]

	PostReview *PostReview `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE"`
}

// TotalScore returns the review's total and whether the game has a review.
func (g Game) TotalScore() (float64, bool) {
	if g.PostReview == nil {
		return 0, false
	}
	return g.PostReview.TotalScore, true
}
