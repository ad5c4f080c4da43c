package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/subjunto/subjunto/internal/mastery"
)

var dueCmd = &cobra.Command{
	Use:   "due",
	Short: "Show verbs due for review, most overdue first",
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger(cmd)
		if err != nil {
			return err
		}
		defer log.Sync()

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		svc := mastery.NewService(st.MasteryRepo(), log)
		due, err := svc.Due(cmd.Context(), userID(cmd), nowFunc())
		if err != nil {
			return fmt.Errorf("due queue: %w", err)
		}

		if len(due) == 0 {
			fmt.Println("Nothing due. ¡Bien hecho!")
			return nil
		}
		for _, verb := range due {
			fmt.Println(verb)
		}
		return nil
	},
}
