package validator

import "strings"

// Normalize prepares a form for comparison: lowercase, trimmed, internal
// whitespace collapsed to single spaces.
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// StripAccents removes acute accents and the diaeresis from a normalized
// form. Ñ is deliberately kept: it is a distinct letter, not a diacritic
// variant of n.
func StripAccents(s string) string {
	replacer := strings.NewReplacer(
		"á", "a",
		"é", "e",
		"í", "i",
		"ó", "o",
		"ú", "u",
		"ü", "u",
	)
	return replacer.Replace(s)
}

// Equal reports whether two forms match after normalization. This is the
// degraded-mode comparison used when rule-aware validation is unavailable.
func Equal(a, b string) bool {
	return Normalize(a) == Normalize(b)
}
