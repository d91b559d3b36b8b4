package handler

import (
	"time"

	"gamevault/backend/internal/catalog"
	"gamevault/backend/internal/content"
	"gamevault/backend/internal/models"
)

// region --- Inputs ---

// GameInput is the body of create/update game. The recommendation fields are
// comma separated lists.
type GameInput struct {
	Title             string `json:"title" binding:"required" example:"Elden Ring"`
	Company           string `json:"company" example:"FromSoftware"`
	Genre             string `json:"genre" example:"Action RPG"`
	ReleaseDate       string `json:"release_date" example:"2022-02-25"`
	CoverImage        string `json:"cover_image" example:"https://example.com/elden-ring.jpg"`
	Storyline         string `json:"storyline"`
	RecommendedFor    string `json:"recommended_for" example:"Souls veterans, Explorers"`
	NotRecommendedFor string `json:"not_recommended_for" example:"Players who dislike difficulty"`
}

func (in GameInput) fields() content.GameFields {
	return content.GameFields{
		Title:             in.Title,
		Company:           in.Company,
		Genre:             in.Genre,
		ReleaseDate:       in.ReleaseDate,
		CoverImage:        in.CoverImage,
		Storyline:         in.Storyline,
		RecommendedFor:    in.RecommendedFor,
		NotRecommendedFor: in.NotRecommendedFor,
	}
}

// ReviewInput is the body of create/update review. TotalScore exists only so
// that a client-supplied total can be detected and rejected.
type ReviewInput struct {
	StoryScore      int      `json:"story_score" example:"4"`
	StoryComment    string   `json:"story_comment"`
	GraphicsScore   int      `json:"graphics_score" example:"5"`
	GraphicsComment string   `json:"graphics_comment"`
	GameplayScore   int      `json:"gameplay_score" example:"5"`
	GameplayComment string   `json:"gameplay_comment"`
	QualityScore    int      `json:"quality_score" example:"4"`
	QualityComment  string   `json:"quality_comment"`
	OverallReview   string   `json:"overall_review"`
	TotalScore      *float64 `json:"total_score,omitempty" swaggerignore:"true"`
}

func (in ReviewInput) fields() content.ReviewFields {
	return content.ReviewFields{
		Scores: content.Scores{
			Story:    in.StoryScore,
			Graphics: in.GraphicsScore,
			Gameplay: in.GameplayScore,
			Quality:  in.QualityScore,
		},
		StoryComment:    in.StoryComment,
		GraphicsComment: in.GraphicsComment,
		GameplayComment: in.GameplayComment,
		QualityComment:  in.QualityComment,
		OverallReview:   in.OverallReview,
	}
}

// endregion

// region --- Responses ---

// ErrorResponse represents a failed operation.
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"An error message"`
	Field   string `json:"field,omitempty"`
}

type ReviewResponse struct {
	ID              string  `json:"id"`
	GameID          string  `json:"game_id"`
	StoryScore      int     `json:"story_score"`
	StoryComment    string  `json:"story_comment"`
	GraphicsScore   int     `json:"graphics_score"`
	GraphicsComment string  `json:"graphics_comment"`
	GameplayScore   int     `json:"gameplay_score"`
	GameplayComment string  `json:"gameplay_comment"`
	QualityScore    int     `json:"quality_score"`
	QualityComment  string  `json:"quality_comment"`
	TotalScore      float64 `json:"total_score"`
	OverallReview   string  `json:"overall_review"`
}

func newReviewResponse(r models.PostReview) ReviewResponse {
	return ReviewResponse{
		ID:              r.ID,
		GameID:          r.GameID,
		StoryScore:      r.StoryScore,
		StoryComment:    r.StoryComment,
		GraphicsScore:   r.GraphicsScore,
		GraphicsComment: r.GraphicsComment,
		GameplayScore:   r.GameplayScore,
		GameplayComment: r.GameplayComment,
		QualityScore:    r.QualityScore,
		QualityComment:  r.QualityComment,
		TotalScore:      r.TotalScore,
		OverallReview:   r.OverallReview,
	}
}

// GameResponse is the full detail of a game, pre-game profile and post review.
type GameResponse struct {
	ID                string          `json:"id"`
	Slug              string          `json:"slug"`
	Title             string          `json:"title"`
	Company           string          `json:"company"`
	Genre             string          `json:"genre"`
	ReleaseDate       string          `json:"release_date"`
	CoverImage        string          `json:"cover_image"`
	Storyline         string          `json:"storyline"`
	RecommendedFor    []string        `json:"recommended_for"`
	NotRecommendedFor []string        `json:"not_recommended_for"`
	PostReview        *ReviewResponse `json:"post_review"`
}

func newGameResponse(game models.Game) GameResponse {
	resp := GameResponse{
		ID:                game.ID,
		Slug:              game.Slug,
		Title:             game.Title,
		Company:           game.Company,
		Genre:             game.Genre,
		ReleaseDate:       formatDate(game.ReleaseDate),
		CoverImage:        game.CoverImage,
		Storyline:         game.Storyline,
		RecommendedFor:    nonNil(game.RecommendedFor),
		NotRecommendedFor: nonNil(game.NotRecommendedFor),
	}
	if game.PostReview != nil {
		review := newReviewResponse(*game.PostReview)
		resp.PostReview = &review
	}
	return resp
}

// GameSummaryResponse is a game card in listings.
type GameSummaryResponse struct {
	ID          string   `json:"id"`
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Genre       string   `json:"genre"`
	ReleaseDate string   `json:"release_date"`
	CoverImage  string   `json:"cover_image"`
	TotalScore  *float64 `json:"total_score"`
}

func newGameSummary(game models.Game) GameSummaryResponse {
	resp := GameSummaryResponse{
		ID:          game.ID,
		Slug:        game.Slug,
		Title:       game.Title,
		Company:     game.Company,
		Genre:       game.Genre,
		ReleaseDate: formatDate(game.ReleaseDate),
		CoverImage:  game.CoverImage,
	}
	if total, ok := game.TotalScore(); ok {
		resp.TotalScore = &total
	}
	return resp
}

func newGameSummaries(games []models.Game) []GameSummaryResponse {
	out := make([]GameSummaryResponse, 0, len(games))
	for _, g := range games {
		out = append(out, newGameSummary(g))
	}
	return out
}

// DailyPickResponse is the game of the day and the countdown to the next pick.
type DailyPickResponse struct {
	Game             GameSummaryResponse `json:"game"`
	Date             string              `json:"date" example:"Fri Oct 16 2026"`
	Countdown        string              `json:"countdown" example:"07h 12m 09s"`
	SecondsRemaining int64               `json:"seconds_remaining"`
}

func newDailyPickResponse(p catalog.Pick) DailyPickResponse {
	return DailyPickResponse{
		Game:             newGameSummary(p.Game),
		Date:             p.Date,
		Countdown:        catalog.FormatCountdown(p.Remaining),
		SecondsRemaining: int64(p.Remaining / time.Second),
	}
}

// HomeResponse is the landing page view.
type HomeResponse struct {
	DailyPick *DailyPickResponse    `json:"daily_pick"`
	Latest    []GameSummaryResponse `json:"latest"`
	TopRated  []GameSummaryResponse `json:"top_rated"`
}

// GameMutationResponse is returned by create/update game.
type GameMutationResponse struct {
	Success     bool     `json:"success" example:"true"`
	ID          string   `json:"id"`
	Slug        string   `json:"slug" example:"elden-ring"`
	Invalidated []string `json:"invalidated"`
}

// ReviewMutationResponse is returned by create/update review.
type ReviewMutationResponse struct {
	Success     bool     `json:"success" example:"true"`
	ID          string   `json:"id"`
	TotalScore  float64  `json:"total_score" example:"4.5"`
	Invalidated []string `json:"invalidated"`
}

// DeleteResponse is returned by delete game.
type DeleteResponse struct {
	Success     bool     `json:"success" example:"true"`
	Invalidated []string `json:"invalidated"`
}

// endregion

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(content.ReleaseDateLayout)
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
