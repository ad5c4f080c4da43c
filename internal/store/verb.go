package store

import (
	"context"
	"fmt"

	"github.com/subjunto/subjunto/ent"
	"github.com/subjunto/subjunto/internal/lexicon"
)

// seedLexicon inserts any lexicon verbs missing from the verb table.
// Existing rows are left untouched so reseeding is idempotent.
func seedLexicon(ctx context.Context, client *ent.Client) error {
	rows, err := client.Verb.Query().All(ctx)
	if err != nil {
		return fmt.Errorf("query verbs: %w", err)
	}
	seen := make(map[string]bool, len(rows))
	for _, row := range rows {
		seen[row.Infinitive] = true
	}

	var builders []*ent.VerbCreate
	for _, v := range lexicon.All() {
		if seen[v.Infinitive] {
			continue
		}
		builders = append(builders, client.Verb.Create().
			SetInfinitive(v.Infinitive).
			SetEnglish(v.English).
			SetClass(string(v.Class)).
			SetStemChange(string(v.StemChange)))
	}
	if len(builders) == 0 {
		return nil
	}

	if err := client.Verb.CreateBulk(builders...).Exec(ctx); err != nil {
		return fmt.Errorf("insert verbs: %w", err)
	}
	return nil
}
