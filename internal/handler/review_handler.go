package handler

import (
	"errors"
	"net/http"

	"gamevault/backend/internal/cache"
	"gamevault/backend/internal/models"

	"github.com/gin-gonic/gin"
)

var errTotalScoreSupplied = errors.New("total_score is derived from the category scores and cannot be set")

// CreateReview godoc
// @Summary      Write the post review of a game
// @Description  Creates the single post review of a game. The total score is computed from the four category scores.
// @Tags         admin-reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string      true  "Game ID"
// @Param        input body      ReviewInput true  "Review"
// @Success      201   {object}  ReviewMutationResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse "Admin access required"
// @Failure      404   {object}  ErrorResponse "Game not found"
// @Failure      409   {object}  ErrorResponse "Game already has a review"
// @Router       /admin/games/{id}/review [post]
func (h *GameHandler) CreateReview(c *gin.Context) {
	gameID := c.Param("id")

	input, ok := bindReview(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	review, err := h.store.CreateReview(ctx, gameID, input.fields())
	if err != nil {
		respondError(c, h.logger, err, "Failed to save review")
		return
	}

	keys := cache.KeysFor(cache.CreateReview, h.reviewRef(c, review))
	c.JSON(http.StatusCreated, ReviewMutationResponse{Success: true, ID: review.ID, TotalScore: review.TotalScore, Invalidated: keys})
}

// UpdateReview godoc
// @Summary      Update a post review
// @Description  Replaces the review's scores and comments and recomputes the total score.
// @Tags         admin-reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string      true  "Review ID"
// @Param        input body      ReviewInput true  "Review"
// @Success      200   {object}  ReviewMutationResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse "Admin access required"
// @Failure      404   {object}  ErrorResponse "Review not found"
// @Router       /admin/reviews/{id} [put]
func (h *GameHandler) UpdateReview(c *gin.Context) {
	input, ok := bindReview(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	review, err := h.store.UpdateReview(ctx, c.Param("id"), input.fields())
	if err != nil {
		respondError(c, h.logger, err, "Failed to update review")
		return
	}

	keys := cache.KeysFor(cache.UpdateReview, h.reviewRef(c, review))
	c.JSON(http.StatusOK, ReviewMutationResponse{Success: true, ID: review.ID, TotalScore: review.TotalScore, Invalidated: keys})
}

// AdminGetReview godoc
// @Summary      Get the post review of a game for editing
// @Tags         admin-reviews
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Game ID"
// @Success      200 {object} ReviewResponse
// @Failure      401 {object} ErrorResponse "Admin access required"
// @Failure      404 {object} ErrorResponse "Review not found"
// @Router       /admin/games/{id}/review [get]
func (h *GameHandler) AdminGetReview(c *gin.Context) {
	review, err := h.store.GetReviewByGameID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err, "Failed to retrieve review")
		return
	}
	c.JSON(http.StatusOK, newReviewResponse(*review))
}

func bindReview(c *gin.Context) (ReviewInput, bool) {
	var input ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return input, false
	}
	if input.TotalScore != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: errTotalScoreSupplied.Error(), Field: "total_score"})
		return input, false
	}
	return input, true
}

// reviewRef resolves the parent slug so the reported keys include the
// slug-addressed detail view the repository invalidated.
func (h *GameHandler) reviewRef(c *gin.Context, review *models.PostReview) cache.Ref {
	ref := cache.Ref{GameID: review.GameID}
	if game, err := h.store.GetGameByID(c.Request.Context(), review.GameID); err == nil {
		ref.Slug = game.Slug
	} else {
		h.logger.Warn("could not resolve game slug for invalidation", "game_id", review.GameID, "error", err)
	}
	return ref
}
