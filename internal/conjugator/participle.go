package conjugator

import (
	"strings"

	"github.com/subjunto/subjunto/internal/lexicon"
)

// Participle returns the past participle for a verb. A declared irregular
// participle wins unconditionally over the regular suffix rule.
func Participle(v *lexicon.Verb) (string, bool) {
	if v.Participle != "" {
		return v.Participle, true
	}

	stem := v.Stem()
	if v.EndingClass() == "ar" {
		return stem + "ado", false
	}

	// A stem-final strong vowel takes a written accent to break the
	// diphthong (caído-type forms).
	if strings.HasSuffix(stem, "a") || strings.HasSuffix(stem, "e") || strings.HasSuffix(stem, "o") {
		return stem + "ído", false
	}
	return stem + "ido", false
}
