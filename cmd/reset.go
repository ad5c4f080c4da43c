package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	entattempt "github.com/subjunto/subjunto/ent/attempt"
	entmastery "github.com/subjunto/subjunto/ent/masteryrecord"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete a user's attempts and mastery records",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		user := userID(cmd)
		if !yes {
			return fmt.Errorf("refusing to delete history for %q without --yes", user)
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		attempts, err := st.Client().Attempt.Delete().
			Where(entattempt.UserID(user)).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("delete attempts: %w", err)
		}
		records, err := st.Client().MasteryRecord.Delete().
			Where(entmastery.UserID(user)).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("delete mastery records: %w", err)
		}

		fmt.Printf("Deleted %d attempts and %d mastery records for %q.\n", attempts, records, user)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm deletion")
}
