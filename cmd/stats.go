package cmd

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/subjunto/subjunto/internal/mastery"
)

// nowFunc is replaceable in tests.
var nowFunc = time.Now

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show practice statistics and per-verb mastery",
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

		ctx := cmd.Context()
		user := userID(cmd)

		total, correct, err := st.AttemptRepo().CountByUser(ctx, user)
		if err != nil {
			return fmt.Errorf("count attempts: %w", err)
		}
		recs, err := st.MasteryRepo().ListByUser(ctx, user)
		if err != nil {
			return fmt.Errorf("list mastery: %w", err)
		}

		fmt.Printf("User: %s\n", user)
		if total == 0 {
			fmt.Println("No attempts yet.")
			return nil
		}
		fmt.Printf("Attempts: %d (%d correct, %.0f%%)\n\n",
			total, correct, 100*float64(correct)/float64(total))

		sort.Slice(recs, func(i, j int) bool {
			return recs[i].NextReview.Before(recs[j].NextReview)
		})

		now := nowFunc()
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "verb\tstreak\taccuracy\tnext review")
		for _, r := range recs {
			fmt.Fprintf(w, "%s\t%d\t%.0f%%\t%s\n",
				r.Verb, r.ConsecutiveCorrect, 100*r.Accuracy(), describeReview(r, now))
		}
		return w.Flush()
	},
}

func describeReview(r *mastery.Record, now time.Time) string {
	if r.Due(now) {
		return "due now"
	}
	return "in " + r.NextReview.Sub(now).Round(time.Minute).String()
}
