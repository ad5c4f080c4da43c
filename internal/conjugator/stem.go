package conjugator

import (
	"strings"

	"github.com/subjunto/subjunto/internal/lexicon"
)

// applyStemChange applies the verb's declared vowel alternation to the stem
// for the given tense and person slot. It returns the (possibly modified)
// stem and a note describing what happened, or "" when nothing applied.
//
// Present subjunctive:
//   - e→ie / o→ue diphthongize in the boot persons. In -ir verbs the
//     nosotros/vosotros forms raise the vowel instead (e→i, o→u).
//   - e→i raises in every person.
//
// Present indicative (diagnosis forms only): boot persons change, the
// plural forms outside the boot never do.
func applyStemChange(stem string, v *lexicon.Verb, tense lexicon.Tense, idx int) (string, string) {
	if v.StemChange == lexicon.StemChangeNone || v.StemChange == lexicon.StemChangeOther {
		return stem, ""
	}

	boot := bootPersonIndex(idx)
	isIR := v.EndingClass() == "ir"
	subjunctive := tense == lexicon.TensePresentSubjunctive

	switch v.StemChange {
	case lexicon.StemChangeEIE:
		if boot {
			return replaceLast(stem, "e", "ie"), "stem-changing e→ie"
		}
		if subjunctive && isIR {
			return replaceLast(stem, "e", "i"), "unstressed stem vowel raises e→i in the nosotros/vosotros forms"
		}
	case lexicon.StemChangeOUE:
		if boot {
			return replaceLast(stem, "o", "ue"), "stem-changing o→ue"
		}
		if subjunctive && isIR {
			return replaceLast(stem, "o", "u"), "unstressed stem vowel raises o→u in the nosotros/vosotros forms"
		}
	case lexicon.StemChangeEI:
		if subjunctive || boot {
			return replaceLast(stem, "e", "i"), "stem-changing e→i"
		}
	}

	return stem, ""
}

// replaceLast substitutes the last occurrence of old in s.
func replaceLast(s, old, repl string) string {
	i := strings.LastIndex(s, old)
	if i < 0 {
		return s
	}
	return s[:i] + repl + s[i+len(old):]
}

// accentLastVowel puts an acute accent on the final vowel of the stem.
// Used for the nosotros imperfect subjunctive (habláramos, fuéramos).
func accentLastVowel(s string) string {
	accented := map[rune]rune{'a': 'á', 'e': 'é', 'i': 'í', 'o': 'ó', 'u': 'ú'}
	runes := []rune(s)
	for i := len(runes) - 1; i >= 0; i-- {
		if acc, ok := accented[runes[i]]; ok {
			runes[i] = acc
			return string(runes)
		}
	}
	return s
}
