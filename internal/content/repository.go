package content

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gamevault/backend/internal/cache"
	"gamevault/backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReleaseDateLayout is the accepted input format for release dates.
const ReleaseDateLayout = "2006-01-02"

// GameFields is the raw input of createGame / updateGame. The two
// recommendation fields are comma separated.
type GameFields struct {
	Title             string
	Company           string
	Genre             string
	ReleaseDate       string
	CoverImage        string
	Storyline         string
	RecommendedFor    string
	NotRecommendedFor string
}

// ReviewFields is the raw input of createReview / updateReview. There is no
// total: it is always derived from Scores.
type ReviewFields struct {
	Scores
	StoryComment    string
	GraphicsComment string
	GameplayComment string
	QualityComment  string
	OverallReview   string
}

// ListFilter narrows ListGames. A zero Limit returns every match.
type ListFilter struct {
	Query string
	Page  int
	Limit int
}

// Invalidator is told about every committed mutation.
type Invalidator interface {
	Invalidate(ctx context.Context, kind cache.Mutation, ref cache.Ref) []string
}

type nopInvalidator struct{}

func (nopInvalidator) Invalidate(context.Context, cache.Mutation, cache.Ref) []string { return nil }

// Repository is the only writer of games and post reviews. Every mutation
// checks the guard before touching its input or the store, and reports to the
// invalidator once its transaction has committed, whoever the caller is.
type Repository struct {
	db          *gorm.DB
	guard       Guard
	invalidator Invalidator
	logger      *slog.Logger
}

// NewRepository builds a Repository. A nil invalidator discards notifications.
func NewRepository(db *gorm.DB, guard Guard, invalidator Invalidator, logger *slog.Logger) *Repository {
	if invalidator == nil {
		invalidator = nopInvalidator{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{db: db, guard: guard, invalidator: invalidator, logger: logger}
}

// region --- Games ---

func (r *Repository) CreateGame(ctx context.Context, fields GameFields) (*models.Game, error) {
	if err := r.guard.RequireCapability(ctx, CapabilityAdmin); err != nil {
		return nil, r.fail("create game", err)
	}

	game := &models.Game{}
	if err := applyGameFields(game, fields); err != nil {
		return nil, err
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureSlugFree(tx, game.Slug, ""); err != nil {
			return err
		}
		return tx.Create(game).Error
	})
	if err != nil {
		return nil, r.fail("create game", err, "slug", game.Slug)
	}

	r.logger.Info("game created", "game_id", game.ID, "slug", game.Slug)
	r.invalidator.Invalidate(ctx, cache.CreateGame, cache.Ref{GameID: game.ID, Slug: game.Slug})
	return game, nil
}

func (r *Repository) UpdateGame(ctx context.Context, id string, fields GameFields) (*models.Game, error) {
	if err := r.guard.RequireCapability(ctx, CapabilityAdmin); err != nil {
		return nil, r.fail("update game", err)
	}

	var game models.Game
	var previousSlug string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&game, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("game %s", id)
			}
			return err
		}
		previousSlug = game.Slug
		if err := applyGameFields(&game, fields); err != nil {
			return err
		}
		if err := ensureSlugFree(tx, game.Slug, game.ID); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Save(&game).Error
	})
	if err != nil {
		return nil, r.fail("update game", err, "game_id", id)
	}

	r.logger.Info("game updated", "game_id", game.ID, "slug", game.Slug)
	r.invalidator.Invalidate(ctx, cache.UpdateGame, cache.Ref{GameID: game.ID, Slug: game.Slug, PreviousSlug: previousSlug})
	return &game, nil
}

// DeleteGame removes a game and its post review in one transaction, review
// first, so no review outlives its game.
func (r *Repository) DeleteGame(ctx context.Context, id string) error {
	if err := r.guard.RequireCapability(ctx, CapabilityAdmin); err != nil {
		return r.fail("delete game", err)
	}

	var game models.Game
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id", "slug").First(&game, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("game %s", id)
			}
			return err
		}
		if err := tx.Where("game_id = ?", id).Delete(&models.PostReview{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Game{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return notFound("game %s", id)
		}
		return nil
	})
	if err != nil {
		return r.fail("delete game", err, "game_id", id)
	}

	r.logger.Info("game deleted", "game_id", id, "slug", game.Slug)
	r.invalidator.Invalidate(ctx, cache.DeleteGame, cache.Ref{GameID: id, Slug: game.Slug})
	return nil
}

// ListGames returns games newest release first with their reviews, and the
// total number of matches before pagination.
func (r *Repository) ListGames(ctx context.Context, filter ListFilter) ([]models.Game, int64, error) {
	filtered := func() *gorm.DB {
		query := r.db.WithContext(ctx).Model(&models.Game{})
		if q := strings.TrimSpace(filter.Query); q != "" {
			query = query.Where(`LOWER(title) LIKE ? ESCAPE '\'`, "%"+escapeLike(strings.ToLower(q))+"%")
		}
		return query
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return nil, 0, r.fail("count games", err)
	}

	query := filtered().Preload("PostReview").Order("release_date DESC").Order("title ASC")
	if filter.Limit > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query = query.Offset((page - 1) * filter.Limit).Limit(filter.Limit)
	}

	var games []models.Game
	if err := query.Find(&games).Error; err != nil {
		return nil, 0, r.fail("list games", err)
	}
	return games, total, nil
}

func (r *Repository) GetGameBySlug(ctx context.Context, slug string) (*models.Game, error) {
	return r.findGame(ctx, "slug = ?", slug)
}

func (r *Repository) GetGameByID(ctx context.Context, id string) (*models.Game, error) {
	return r.findGame(ctx, "id = ?", id)
}

func (r *Repository) findGame(ctx context.Context, cond string, value string) (*models.Game, error) {
	var game models.Game
	err := r.db.WithContext(ctx).Preload("PostReview").First(&game, cond, value).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("game %s", value)
		}
		return nil, r.fail("get game", err, "key", value)
	}
	return &game, nil
}

// endregion

// region --- Reviews ---

func (r *Repository) CreateReview(ctx context.Context, gameID string, fields ReviewFields) (*models.PostReview, error) {
	if err := r.guard.RequireCapability(ctx, CapabilityAdmin); err != nil {
		return nil, r.fail("create review", err)
	}

	review := &models.PostReview{GameID: gameID}
	if err := applyReviewFields(review, fields); err != nil {
		return nil, err
	}

	var slug string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if slug, err = gameSlug(tx, gameID); err != nil {
			return err
		}
		var count int64
		if err := tx.Model(&models.PostReview{}).Where("game_id = ?", gameID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return conflict("game %s already has a review", gameID)
		}
		return tx.Create(review).Error
	})
	if err != nil {
		return nil, r.fail("create review", err, "game_id", gameID)
	}

	r.logger.Info("review created", "review_id", review.ID, "game_id", gameID, "total_score", review.TotalScore)
	r.invalidator.Invalidate(ctx, cache.CreateReview, cache.Ref{GameID: gameID, Slug: slug})
	return review, nil
}

func (r *Repository) UpdateReview(ctx context.Context, reviewID string, fields ReviewFields) (*models.PostReview, error) {
	if err := r.guard.RequireCapability(ctx, CapabilityAdmin); err != nil {
		return nil, r.fail("update review", err)
	}

	var review models.PostReview
	if err := applyReviewFields(&review, fields); err != nil {
		return nil, err
	}

	var slug string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.PostReview
		if err := tx.First(&existing, "id = ?", reviewID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("review %s", reviewID)
			}
			return err
		}
		review.Base = existing.Base
		review.GameID = existing.GameID
		var err error
		if slug, err = gameSlug(tx, existing.GameID); err != nil {
			return err
		}
		return tx.Save(&review).Error
	})
	if err != nil {
		return nil, r.fail("update review", err, "review_id", reviewID)
	}

	r.logger.Info("review updated", "review_id", review.ID, "game_id", review.GameID, "total_score", review.TotalScore)
	r.invalidator.Invalidate(ctx, cache.UpdateReview, cache.Ref{GameID: review.GameID, Slug: slug})
	return &review, nil
}

// GetReviewByGameID returns the post review of a game, or ErrNotFound when the
// game has none yet.
func (r *Repository) GetReviewByGameID(ctx context.Context, gameID string) (*models.PostReview, error) {
	var review models.PostReview
	err := r.db.WithContext(ctx).First(&review, "game_id = ?", gameID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("review of game %s", gameID)
		}
		return nil, r.fail("get review", err, "game_id", gameID)
	}
	return &review, nil
}

// endregion

// region --- Helpers ---

func applyGameFields(game *models.Game, fields GameFields) error {
	slug, err := Slugify(fields.Title)
	if err != nil {
		return err
	}

	var released time.Time
	if raw := strings.TrimSpace(fields.ReleaseDate); raw != "" {
		released, err = time.Parse(ReleaseDateLayout, raw)
		if err != nil {
			return invalid("releaseDate", fmt.Sprintf("must be formatted as %s", ReleaseDateLayout))
		}
	}

	game.Slug = slug
	game.Title = strings.TrimSpace(fields.Title)
	game.Company = strings.TrimSpace(fields.Company)
	game.Genre = strings.TrimSpace(fields.Genre)
	game.ReleaseDate = released
	game.CoverImage = strings.TrimSpace(fields.CoverImage)
	game.Storyline = fields.Storyline
	game.RecommendedFor = ParseList(fields.RecommendedFor)
	game.NotRecommendedFor = ParseList(fields.NotRecommendedFor)
	return nil
}

func applyReviewFields(review *models.PostReview, fields ReviewFields) error {
	total, err := TotalScore(fields.Scores)
	if err != nil {
		return err
	}
	review.StoryScore = fields.Story
	review.StoryComment = fields.StoryComment
	review.GraphicsScore = fields.Graphics
	review.GraphicsComment = fields.GraphicsComment
	review.GameplayScore = fields.Gameplay
	review.GameplayComment = fields.GameplayComment
	review.QualityScore = fields.Quality
	review.QualityComment = fields.QualityComment
	review.OverallReview = fields.OverallReview
	review.TotalScore = total
	return nil
}

func gameSlug(tx *gorm.DB, gameID string) (string, error) {
	var game models.Game
	if err := tx.Select("id", "slug").First(&game, "id = ?", gameID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", notFound("game %s", gameID)
		}
		return "", err
	}
	return game.Slug, nil
}

// ensureSlugFree fails with ErrConflict when another game already uses slug.
func ensureSlugFree(tx *gorm.DB, slug, exceptID string) error {
	query := tx.Model(&models.Game{}).Where("slug = ?", slug)
	if exceptID != "" {
		query = query.Where("id <> ?", exceptID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return conflict("slug %q is already used by another game", slug)
	}
	return nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// fail passes the known error kinds through untouched. A unique violation
// that slipped past the pre-checks becomes a conflict. Anything else is logged
// and wrapped so callers can only report it as an opaque failure.
func (r *Repository) fail(op string, err error, attrs ...any) error {
	switch {
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrValidation),
		errors.Is(err, ErrConflict), errors.Is(err, ErrNotFound):
		return err
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return conflict("%s: duplicate key", op)
	}
	r.logger.Error("persistence failure", append([]any{"op", op, "error", err}, attrs...)...)
	return fmt.Errorf("%s: %w", op, err)
}

// endregion
