package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/subjunto/subjunto/internal/exercise"
	"github.com/subjunto/subjunto/internal/feedback"
	"github.com/subjunto/subjunto/internal/lexicon"
	"github.com/subjunto/subjunto/internal/llm"
	"github.com/subjunto/subjunto/internal/mastery"
	"github.com/subjunto/subjunto/internal/practice"
	"github.com/subjunto/subjunto/internal/store"
)

// runPractice drives the interactive stdio practice loop.
func runPractice(cmd *cobra.Command) error {
	ctx := cmd.Context()
	log, err := newLogger(cmd)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer log.Sync()

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	svc, err := buildService(cmd, st, log)
	if err != nil {
		return err
	}

	criteria, err := criteriaFromFlags(cmd)
	if err != nil {
		return err
	}
	count, _ := cmd.Flags().GetInt("count")
	user := userID(cmd)

	fmt.Println("Fill in the subjunctive form. Commands: hint, skip, quit.")
	fmt.Println()

	in := bufio.NewScanner(os.Stdin)
	correct := 0
	answered := 0

	for i := 0; i < count; i++ {
		p, err := svc.NextExercise(ctx, user, criteria)
		if err != nil {
			return fmt.Errorf("next exercise: %w", err)
		}

		fmt.Printf("[%d/%d] %s\n", i+1, count, p.Prompt)
		hintsShown := 0
		shownAt := time.Now()

	answerLoop:
		for {
			fmt.Print("> ")
			if !in.Scan() {
				fmt.Println()
				return in.Err()
			}
			input := strings.TrimSpace(in.Text())

			switch strings.ToLower(input) {
			case "quit", "q":
				printSessionSummary(answered, correct)
				return nil
			case "skip":
				fmt.Println()
				break answerLoop
			case "hint", "h":
				if hintsShown < len(p.Hints) {
					fmt.Println("  hint:", p.Hints[hintsShown])
					hintsShown++
				} else {
					fmt.Println("  no more hints")
				}
				continue
			case "":
				continue
			}

			res, err := svc.Submit(ctx, user, p.ID, input, time.Since(shownAt))
			if err != nil {
				return fmt.Errorf("submit answer: %w", err)
			}
			answered++
			if res.Correct {
				correct++
			}
			printResult(res)
			break answerLoop
		}
	}

	printSessionSummary(answered, correct)
	return nil
}

// buildService assembles the practice service. A missing LLM provider is
// not an error: feedback stays deterministic.
func buildService(cmd *cobra.Command, st *store.Store, log *zap.Logger) (*practice.Service, error) {
	ctx := cmd.Context()

	provider, err := llm.NewProviderFromEnv(ctx, st.LLMEventRepo(), log)
	if err != nil {
		warnf("feedback elaboration disabled: %v", err)
		provider = nil
	}

	lenient, _ := cmd.Flags().GetBool("lenient-accents")
	cfg := practice.DefaultConfig()
	cfg.AcceptAccentless = lenient

	return practice.NewService(
		exercise.New(nil, exercise.DefaultConfig()),
		st.ExerciseRepo(),
		st.AttemptRepo(),
		mastery.NewService(st.MasteryRepo(), log),
		feedback.NewGenerator(provider, llm.ConfigFromEnv().Timeout, log),
		cfg,
		log,
	), nil
}

func criteriaFromFlags(cmd *cobra.Command) (exercise.Criteria, error) {
	var criteria exercise.Criteria

	verbs, _ := cmd.Flags().GetStringSlice("verbs")
	for _, v := range verbs {
		if _, ok := lexicon.Get(v); !ok {
			return criteria, fmt.Errorf("unknown verb %q (see 'subjunto conjugate' for the lexicon)", v)
		}
	}
	criteria.Verbs = verbs

	tenses, _ := cmd.Flags().GetStringSlice("tenses")
	for _, t := range tenses {
		criteria.Tenses = append(criteria.Tenses, lexicon.Tense(t))
	}

	criteria.MaxDifficulty, _ = cmd.Flags().GetInt("max-difficulty")
	return criteria, nil
}

func printResult(res *practice.Result) {
	if res.Correct {
		fmt.Println("  ✓", res.Feedback.Text)
	} else {
		fmt.Println("  ✗", res.Feedback.Text)
	}
	if res.Feedback.Elaboration != "" {
		fmt.Println("   ", res.Feedback.Elaboration)
	}
	if res.Feedback.Tip != "" {
		fmt.Println("    tip:", res.Feedback.Tip)
	}
	if len(res.Alternates) > 0 {
		fmt.Printf("    also accepted: %s\n", strings.Join(res.Alternates, ", "))
	}
	if res.Mastery != nil {
		fmt.Printf("    streak %d, next review in %s\n",
			res.Mastery.ConsecutiveCorrect, res.Mastery.Interval)
	}
	fmt.Println()
}

func printSessionSummary(answered, correct int) {
	if answered == 0 {
		return
	}
	fmt.Printf("Session: %d/%d correct (%.0f%%)\n",
		correct, answered, 100*float64(correct)/float64(answered))
}
