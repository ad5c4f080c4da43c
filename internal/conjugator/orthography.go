package conjugator

import (
	"strings"

	"github.com/subjunto/subjunto/internal/lexicon"
)

// adjustSpelling applies the orthographic rules that keep a stem's final
// consonant sound intact when the ending's leading vowel changes. It runs
// after stem substitution, so a stem-changed cluster is adjusted too
// (empez → empiez → empiece).
//
// Which rule can fire is keyed off the infinitive's ending cluster; the
// replacement is applied to the tail of the derived stem. Returns the
// adjusted stem and a note, or the stem unchanged and "".
func adjustSpelling(v *lexicon.Verb, stem, ending string) (string, string) {
	first := unaccented(leadingRune(ending))
	inf := v.Infinitive

	front := first == 'e' || first == 'i'
	back := first == 'a' || first == 'o'

	switch {
	// -ar verbs: the subjunctive endings begin with e.
	case strings.HasSuffix(inf, "guar") && front:
		return strings.TrimSuffix(stem, "gu") + "gü", "spelling change gu→gü before e"
	case strings.HasSuffix(inf, "gar") && front:
		return stem + "u", "spelling change g→gu before e"
	case strings.HasSuffix(inf, "car") && front:
		return strings.TrimSuffix(stem, "c") + "qu", "spelling change c→qu before e"
	case strings.HasSuffix(inf, "zar") && front:
		return strings.TrimSuffix(stem, "z") + "c", "spelling change z→c before e"

	// -er/-ir verbs: the subjunctive endings begin with a, the
	// indicative yo form ends in o.
	case strings.HasSuffix(inf, "guir") && back:
		return strings.TrimSuffix(stem, "gu") + "g", "spelling change gu→g before a/o"
	case (strings.HasSuffix(inf, "ger") || strings.HasSuffix(inf, "gir")) && back:
		return strings.TrimSuffix(stem, "g") + "j", "spelling change g→j before a/o"
	case (strings.HasSuffix(inf, "cer") || strings.HasSuffix(inf, "cir")) && back && consonantBeforeFinalC(inf):
		return strings.TrimSuffix(stem, "c") + "z", "spelling change c→z before a/o"
	}

	return stem, ""
}

// consonantBeforeFinalC reports whether the letter preceding the "c" of a
// -cer/-cir infinitive is a consonant (vencer yes, conocer no; vowel-stem
// verbs take the irregular -zco yo form instead).
func consonantBeforeFinalC(inf string) bool {
	runes := []rune(inf)
	if len(runes) < 4 {
		return false
	}
	before := runes[len(runes)-4]
	return !strings.ContainsRune("aeiouáéíóú", before)
}

func leadingRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

// unaccented maps an accented vowel to its base vowel.
func unaccented(r rune) rune {
	switch r {
	case 'á':
		return 'a'
	case 'é':
		return 'e'
	case 'í':
		return 'i'
	case 'ó':
		return 'o'
	case 'ú':
		return 'u'
	}
	return r
}
