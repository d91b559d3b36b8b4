package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"gamevault/backend/internal/cache"
	"gamevault/backend/internal/catalog"
	"gamevault/backend/internal/content"
	"gamevault/backend/internal/hub"
	"gamevault/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// ContentStore is the part of content.Repository the handlers use.
type ContentStore interface {
	CreateGame(ctx context.Context, fields content.GameFields) (*models.Game, error)
	UpdateGame(ctx context.Context, id string, fields content.GameFields) (*models.Game, error)
	DeleteGame(ctx context.Context, id string) error
	ListGames(ctx context.Context, filter content.ListFilter) ([]models.Game, int64, error)
	GetGameBySlug(ctx context.Context, slug string) (*models.Game, error)
	GetGameByID(ctx context.Context, id string) (*models.Game, error)
	CreateReview(ctx context.Context, gameID string, fields content.ReviewFields) (*models.PostReview, error)
	UpdateReview(ctx context.Context, reviewID string, fields content.ReviewFields) (*models.PostReview, error)
	GetReviewByGameID(ctx context.Context, gameID string) (*models.PostReview, error)
}

// GameHandler serves the catalog: public views, the daily pick and the admin
// mutations of games and reviews.
type GameHandler struct {
	store  ContentStore
	views  cache.Views
	events *hub.Hub
	picks  *catalog.Selector
	logger *slog.Logger

	// TickInterval is how often the daily pick stream sends a frame.
	TickInterval time.Duration
}

func NewGameHandler(store ContentStore, views cache.Views, events *hub.Hub, picks *catalog.Selector, logger *slog.Logger) *GameHandler {
	if views == nil {
		views = cache.NopViews{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &GameHandler{
		store:        store,
		views:        views,
		events:       events,
		picks:        picks,
		logger:       logger,
		TickInterval: time.Second,
	}
}

// region --- Admin Handlers ---

// CreateGame godoc
// @Summary      Create a new game
// @Description  Creates a game. The slug is derived from the title.
// @Tags         admin-games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body GameInput true "Game Info"
// @Success      201  {object}  GameMutationResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse "Admin access required"
// @Failure      409  {object}  ErrorResponse "Slug already used"
// @Router       /admin/games [post]
func (h *GameHandler) CreateGame(c *gin.Context) {
	var input GameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}

	game, err := h.store.CreateGame(c.Request.Context(), input.fields())
	if err != nil {
		respondError(c, h.logger, err, "Failed to create game")
		return
	}

	keys := cache.KeysFor(cache.CreateGame, cache.Ref{GameID: game.ID, Slug: game.Slug})
	c.JSON(http.StatusCreated, GameMutationResponse{Success: true, ID: game.ID, Slug: game.Slug, Invalidated: keys})
}

// UpdateGame godoc
// @Summary      Update a game
// @Description  Replaces a game's fields and re-derives its slug.
// @Tags         admin-games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string    true  "Game ID"
// @Param        input body      GameInput true  "New Game Info"
// @Success      200   {object}  GameMutationResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse "Admin access required"
// @Failure      404   {object}  ErrorResponse "Game not found"
// @Failure      409   {object}  ErrorResponse "Slug already used"
// @Router       /admin/games/{id} [put]
func (h *GameHandler) UpdateGame(c *gin.Context) {
	id := c.Param("id")

	var input GameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}

	ctx := c.Request.Context()
	previous, err := h.store.GetGameByID(ctx, id)
	if err != nil {
		respondError(c, h.logger, err, "Failed to update game")
		return
	}

	game, err := h.store.UpdateGame(ctx, id, input.fields())
	if err != nil {
		respondError(c, h.logger, err, "Failed to update game")
		return
	}

	keys := cache.KeysFor(cache.UpdateGame, cache.Ref{GameID: game.ID, Slug: game.Slug, PreviousSlug: previous.Slug})
	c.JSON(http.StatusOK, GameMutationResponse{Success: true, ID: game.ID, Slug: game.Slug, Invalidated: keys})
}

// DeleteGame godoc
// @Summary      Delete a game
// @Description  Deletes a game together with its post review.
// @Tags         admin-games
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Game ID"
// @Success      200 {object} DeleteResponse
// @Failure      401 {object} ErrorResponse "Admin access required"
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /admin/games/{id} [delete]
func (h *GameHandler) DeleteGame(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()

	game, err := h.store.GetGameByID(ctx, id)
	if err != nil {
		respondError(c, h.logger, err, "Failed to delete game")
		return
	}

	if err := h.store.DeleteGame(ctx, id); err != nil {
		respondError(c, h.logger, err, "Failed to delete game")
		return
	}

	keys := cache.KeysFor(cache.DeleteGame, cache.Ref{GameID: game.ID, Slug: game.Slug})
	c.JSON(http.StatusOK, DeleteResponse{Success: true, Invalidated: keys})
}

// AdminListGames godoc
// @Summary      List games for the dashboard
// @Description  Lists every game newest release first, optionally filtered by title.
// @Tags         admin-games
// @Produce      json
// @Security     BearerAuth
// @Param        q     query     string  false  "Title substring"
// @Param        page  query     int     false  "Page number" default(1)
// @Param        limit query     int     false  "Items per page" default(10)
// @Success      200   {object}  PaginatedResponse[GameSummaryResponse]
// @Failure      401   {object}  ErrorResponse "Admin access required"
// @Router       /admin/games [get]
func (h *GameHandler) AdminListGames(c *gin.Context) {
	page, limit := pageParams(c)
	query := c.Query("q")

	// Only the unfiltered listing is cached.
	if query == "" {
		games, err := h.cachedGames(c.Request.Context(), cache.AdminListing)
		if err != nil {
			respondError(c, h.logger, err, "Failed to retrieve games")
			return
		}
		c.JSON(http.StatusOK, Paginate(newGameSummaries(games), page, limit))
		return
	}

	games, total, err := h.store.ListGames(c.Request.Context(), content.ListFilter{Query: query, Page: page, Limit: limit})
	if err != nil {
		respondError(c, h.logger, err, "Failed to retrieve games")
		return
	}
	c.JSON(http.StatusOK, NewPaginatedResponse(newGameSummaries(games), total, page, limit))
}

// AdminGetGame godoc
// @Summary      Get a game for editing
// @Tags         admin-games
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Game ID"
// @Success      200 {object} GameResponse
// @Failure      401 {object} ErrorResponse "Admin access required"
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /admin/games/{id} [get]
func (h *GameHandler) AdminGetGame(c *gin.Context) {
	game, err := h.store.GetGameByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err, "Failed to retrieve game")
		return
	}
	c.JSON(http.StatusOK, newGameResponse(*game))
}

// endregion

// region --- Public Handlers ---

// Home godoc
// @Summary      Landing page
// @Description  Daily pick with countdown, latest releases and top rated games.
// @Tags         games
// @Produce      json
// @Success      200 {object} HomeResponse
// @Router       /home [get]
func (h *GameHandler) Home(c *gin.Context) {
	games, err := h.cachedGames(c.Request.Context(), cache.HomeListing)
	if err != nil {
		respondError(c, h.logger, err, "Failed to retrieve games")
		return
	}

	resp := HomeResponse{
		Latest:   newGameSummaries(catalog.Latest(games)),
		TopRated: newGameSummaries(catalog.TopRated(games)),
	}
	if pick := h.picks.Current(games); pick != nil {
		dp := newDailyPickResponse(*pick)
		resp.DailyPick = &dp
	}
	c.JSON(http.StatusOK, resp)
}

// ListGames godoc
// @Summary      Search and sort games
// @Description  Case-insensitive title search with latest or top-rated ordering.
// @Tags         games
// @Produce      json
// @Param        q     query     string  false  "Title substring"
// @Param        sort  query     string  false  "latest or top-rated" default(latest)
// @Param        page  query     int     false  "Page number" default(1)
// @Param        limit query     int     false  "Items per page" default(10)
// @Success      200   {object}  PaginatedResponse[GameSummaryResponse]
// @Failure      400   {object}  ErrorResponse
// @Router       /games [get]
func (h *GameHandler) ListGames(c *gin.Context) {
	page, limit := pageParams(c)

	games, err := h.cachedGames(c.Request.Context(), cache.HomeListing)
	if err != nil {
		respondError(c, h.logger, err, "Failed to retrieve games")
		return
	}

	if q := c.Query("q"); q != "" {
		games = catalog.Search(q, games)
	}

	switch c.DefaultQuery("sort", "latest") {
	case "latest":
		games = catalog.Latest(games)
	case "top-rated":
		games = catalog.TopRated(games)
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "sort must be latest or top-rated", Field: "sort"})
		return
	}

	c.JSON(http.StatusOK, Paginate(newGameSummaries(games), page, limit))
}

// GetGameBySlug godoc
// @Summary      Get a single game by slug
// @Description  Pre-game profile and, when present, the post review.
// @Tags         games
// @Produce      json
// @Param        slug path string true "Game slug"
// @Success      200 {object} GameResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/{slug} [get]
func (h *GameHandler) GetGameBySlug(c *gin.Context) {
	ctx := c.Request.Context()
	slug := c.Param("slug")
	key := cache.DetailKey(slug)

	var resp GameResponse
	if ok, err := h.views.Get(ctx, key, &resp); err != nil {
		h.logger.Warn("view cache read failed", "key", key, "error", err)
	} else if ok {
		c.JSON(http.StatusOK, resp)
		return
	}

	gen := h.generation(ctx)
	game, err := h.store.GetGameBySlug(ctx, slug)
	if err != nil {
		respondError(c, h.logger, err, "Failed to retrieve game")
		return
	}

	resp = newGameResponse(*game)
	if err := h.views.Set(ctx, key, resp, gen); err != nil {
		h.logger.Warn("view cache write failed", "key", key, "error", err)
	}
	c.JSON(http.StatusOK, resp)
}

// endregion

// region --- Helpers ---

// cachedGames returns the full catalog, newest release first, from the view
// cache when possible. A listing read across a mutation is served but not
// stored.
func (h *GameHandler) cachedGames(ctx context.Context, key string) ([]models.Game, error) {
	var games []models.Game
	if ok, err := h.views.Get(ctx, key, &games); err != nil {
		h.logger.Warn("view cache read failed", "key", key, "error", err)
	} else if ok {
		return games, nil
	}

	gen := h.generation(ctx)
	games, _, err := h.store.ListGames(ctx, content.ListFilter{})
	if err != nil {
		return nil, err
	}
	if err := h.views.Set(ctx, key, games, gen); err != nil {
		h.logger.Warn("view cache write failed", "key", key, "error", err)
	}
	return games, nil
}

// generation reads the view generation before a store read. When it cannot be
// read, -1 makes the following Set a no-op.
func (h *GameHandler) generation(ctx context.Context) int64 {
	gen, err := h.views.Generation(ctx)
	if err != nil {
		h.logger.Warn("view generation read failed", "error", err)
		return -1
	}
	return gen
}

// endregion
