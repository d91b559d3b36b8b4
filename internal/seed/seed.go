// Package seed loads the sample catalog through the content repository.
package seed

import (
	"context"
	"errors"
	"log/slog"

	"gamevault/backend/internal/content"
	"gamevault/backend/internal/models"
)

// Entry is one sample game with its optional review.
type Entry struct {
	Game   content.GameFields
	Review *content.ReviewFields
}

// Store is the subset of content.Repository the seeder writes through.
type Store interface {
	CreateGame(ctx context.Context, fields content.GameFields) (*models.Game, error)
	GetGameBySlug(ctx context.Context, slug string) (*models.Game, error)
	CreateReview(ctx context.Context, gameID string, fields content.ReviewFields) (*models.PostReview, error)
}

// Result counts what Run did.
type Result struct {
	Created int
	Skipped int
}

// Run inserts every entry whose slug is not taken yet. ctx must carry an
// admin identity, since the repository guards every write.
func Run(ctx context.Context, store Store, entries []Entry, logger *slog.Logger) (Result, error) {
	var res Result
	for _, e := range entries {
		slug, err := content.Slugify(e.Game.Title)
		if err != nil {
			return res, err
		}

		_, err = store.GetGameBySlug(ctx, slug)
		switch {
		case err == nil:
			logger.Info("seed: game exists, skipping", "slug", slug)
			res.Skipped++
			continue
		case !errors.Is(err, content.ErrNotFound):
			return res, err
		}

		game, err := store.CreateGame(ctx, e.Game)
		if err != nil {
			return res, err
		}
		if e.Review != nil {
			if _, err := store.CreateReview(ctx, game.ID, *e.Review); err != nil {
				return res, err
			}
		}
		logger.Info("seed: game created", "slug", game.Slug)
		res.Created++
	}
	return res, nil
}
