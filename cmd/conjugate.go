package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/subjunto/subjunto/internal/conjugator"
	"github.com/subjunto/subjunto/internal/lexicon"
)

var conjugateCmd = &cobra.Command{
	Use:   "conjugate [infinitive]",
	Short: "Print the subjunctive paradigm for a verb",
	Long: "Without arguments, lists the verbs in the lexicon. With an\n" +
		"infinitive, prints its full subjunctive paradigm.",
	Args: cobra.MaximumNArgs(1),
}

func init() {
	conjugateCmd.RunE = func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return listVerbs()
		}
		return printParadigm(args[0])
	}
	conjugateCmd.Flags().String("tense", "", "Print only this tense")
}

func listVerbs() error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, v := range lexicon.All() {
		extra := ""
		if v.StemChange != lexicon.StemChangeNone {
			extra = string(v.StemChange)
		} else if v.IsIrregular() {
			extra = "irregular"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", v.Infinitive, v.English, extra)
	}
	return w.Flush()
}

func printParadigm(infinitive string) error {
	v, ok := lexicon.Get(infinitive)
	if !ok {
		return fmt.Errorf("unknown verb %q", infinitive)
	}

	tenses := lexicon.PracticeTenses()
	if t, _ := conjugateCmd.Flags().GetString("tense"); t != "" {
		tenses = []lexicon.Tense{lexicon.Tense(t)}
	}

	fmt.Printf("%s (%s)\n\n", v.Infinitive, v.English)
	for _, tense := range tenses {
		fmt.Println(tense.DisplayName())
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		for _, person := range lexicon.AllPersons() {
			res, err := conjugator.Conjugate(v.Infinitive, tense, person)
			if err != nil {
				return fmt.Errorf("conjugate %s/%s/%s: %w", v.Infinitive, tense, person, err)
			}
			forms := res.Canonical
			if len(res.Alternates) > 0 {
				forms += " / " + strings.Join(res.Alternates, " / ")
			}
			fmt.Fprintf(w, "  %s\t%s\n", person.Pronoun(), forms)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Println()
	}
	return nil
}
