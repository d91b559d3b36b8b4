package command

import (
	"errors"
	"fmt"

	"gamevault/backend/internal/auth"
	"gamevault/backend/internal/content"
	"gamevault/backend/internal/models"

	"github.com/spf13/cobra"
)

var makeAdminCmd = &cobra.Command{
	Use:   "make-admin [email]",
	Short: "Grant the admin role to a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setRole(cmd, args[0], models.RoleAdmin)
	},
}

var revokeAdminCmd = &cobra.Command{
	Use:   "revoke-admin [email]",
	Short: "Turn an admin back into a regular user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setRole(cmd, args[0], models.RoleUser)
	},
}

func setRole(cmd *cobra.Command, email, role string) error {
	user, err := auth.NewUserRoles(db).SetRoleByEmail(cmd.Context(), email, role)
	if errors.Is(err, content.ErrUnknownUser) {
		return fmt.Errorf("no user with email %s: sign up first", email)
	}
	if err != nil {
		return fmt.Errorf("failed to update role: %w", err)
	}

	fmt.Printf("✓ %s (%s) is now %s\n", user.Nickname, email, role)
	return nil
}

func init() {
	rootCmd.AddCommand(makeAdminCmd)
	rootCmd.AddCommand(revokeAdminCmd)
}
