package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"volunteer-tracker-go/internal/app"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load sample data for local development",
	Long: `Seed creates an admin placeholder, "Sample Family", the 2024-2025 school
year (50 hours, $20/hour) and three task categories. Running it twice is safe.

SEED_ADMIN_ID and SEED_ADMIN_EMAIL override the admin placeholder.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd.Context(), true)
		if err != nil {
			return err
		}
		defer s.Close()

		result, err := app.Seed(cmd.Context(), s.db, s.services, app.SeedOptions{
			AdminID:    os.Getenv("SEED_ADMIN_ID"),
			AdminEmail: os.Getenv("SEED_ADMIN_EMAIL"),
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "seed complete: family created=%t, year activated=%t, categories created=%d\n",
			result.FamilyCreated, result.YearActivated, result.CategoriesCreated)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
