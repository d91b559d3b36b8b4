package command

import (
	"errors"
	"fmt"

	"gamevault/backend/internal/auth"
	"gamevault/backend/internal/cache"
	"gamevault/backend/internal/content"
	"gamevault/backend/internal/models"
	"gamevault/backend/internal/seed"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var seedAdminEmail string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the sample catalog",
	Long: `Inserts the sample games and reviews through the content repository,
acting as the admin given by --admin-email. Games whose slug already exists
are skipped, so running it twice is harmless. When REDIS_URL is set the
server's cached views are invalidated as each game lands.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var admin models.User
		err := db.WithContext(cmd.Context()).First(&admin, "email = ?", seedAdminEmail).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("no user with email %s", seedAdminEmail)
		}
		if err != nil {
			return fmt.Errorf("failed to look up admin: %w", err)
		}

		var views cache.Views = cache.NopViews{}
		if cfg.RedisURL != "" {
			redisViews, err := cache.NewRedisViews(cmd.Context(), cfg.RedisURL, cfg.CacheTTL)
			if err != nil {
				return fmt.Errorf("failed to connect to redis: %w", err)
			}
			defer redisViews.Close()
			views = redisViews
		}

		roles := auth.NewUserRoles(db)
		repo := content.NewRepository(db, content.NewRoleGuard(roles), cache.NewInvalidator(views, nil, logger), logger)
		ctx := content.WithIdentity(cmd.Context(), content.Identity{UserID: admin.ID})

		res, err := seed.Run(ctx, repo, seed.Catalog, logger)
		if errors.Is(err, content.ErrUnauthorized) {
			return fmt.Errorf("%s is not an admin: run make-admin first", seedAdminEmail)
		}
		if err != nil {
			return fmt.Errorf("seed failed after %d games: %w", res.Created, err)
		}

		fmt.Printf("✓ Seed complete: %d created, %d skipped\n", res.Created, res.Skipped)
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedAdminEmail, "admin-email", "", "email of the admin the games are created as")
	_ = seedCmd.MarkFlagRequired("admin-email")
	rootCmd.AddCommand(seedCmd)
}
