package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"volunteer-tracker-go/internal/domain/user"
)

var (
	promoteID    string
	promoteEmail string
)

var promoteAdminCmd = &cobra.Command{
	Use:   "promote-admin",
	Short: "Grant the admin role to an existing user",
	Example: `  volunteerctl promote-admin --email jane@example.com
  volunteerctl promote-admin --id 3f1c2a...`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if (promoteID == "") == (promoteEmail == "") {
			return errors.New("exactly one of --id or --email is required")
		}

		s, err := openSession(cmd.Context(), true)
		if err != nil {
			return err
		}
		defer s.Close()

		promoted, err := s.services.Users.PromoteAdmin(cmd.Context(), user.Lookup{ID: promoteID, Email: promoteEmail})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%s) is now an admin\n", promoted.Email, promoted.ID)
		return nil
	},
}

func init() {
	promoteAdminCmd.Flags().StringVar(&promoteID, "id", "", "User id (identity provider subject)")
	promoteAdminCmd.Flags().StringVar(&promoteEmail, "email", "", "User email")
	rootCmd.AddCommand(promoteAdminCmd)
}
