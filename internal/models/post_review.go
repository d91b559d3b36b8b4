package models

// PostReview is the scored, spoiler-heavy review of a Game. A game has at
// most one, enforced by the unique index on GameID.
type PostReview struct {
	Base
	GameID string `gorm:"size:36;uniqueIndex;not null"`

	StoryScore      int `gorm:"not null"`
	StoryComment    string
	GraphicsScore   int `gorm:"not null"`
	GraphicsComment string
	GameplayScore   int `gorm:"not null"`
	GameplayComment string
	QualityScore    int `gorm:"not null"`
	QualityComment  string

	// TotalScore is always derived from the four category scores.
	TotalScore    float64 `gorm:"not null"`
	OverallReview string
}
