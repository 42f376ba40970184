package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var activateYearCmd = &cobra.Command{
	Use:   "activate-year ID",
	Short: "Make a school year the active one",
	Long: `Activate deactivates every other school year and attaches all
non-archived families to the given one, in a single transaction.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd.Context(), true)
		if err != nil {
			return err
		}
		defer s.Close()

		year, attached, err := s.services.Years.Activate(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s is active, %d families attached\n", year.Name, attached)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(activateYearCmd)
}
