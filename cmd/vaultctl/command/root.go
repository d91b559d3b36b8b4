package command

// root.go wires the shared flags and the database every subcommand works on.

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gamevault/backend/internal/config"
	"gamevault/backend/internal/database"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	configDir string // directory holding the .env file

	cfg    *config.Config
	db     *gorm.DB
	logger *slog.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "vaultctl",
	Short: "vaultctl - GameVault administration",
	Long: `vaultctl manages a GameVault database directly. It reads the same
configuration as the server (.env file and environment variables) and can:
- Promote a user to admin or demote them again
- Load the sample catalog

Use "vaultctl command --help" to see the flags of a command.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadConfig(configDir)
		if err != nil {
			return err
		}
		if cfg.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required")
		}

		logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

		db, err = database.Connect(cfg.DatabaseURL, logger)
		if err != nil {
			return err
		}
		return database.Migrate(db)
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if db == nil {
			return nil
		}
		return database.Close(db)
	},
}

// Execute adds all child commands to the root command and runs it.
// This is called by main.main().
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err) // Print error to standard error
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", ".", "directory containing the .env file")
}
