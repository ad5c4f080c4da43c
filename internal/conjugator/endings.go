package conjugator

// Paradigm ending tables, indexed by lexicon.Person.Index().

// presentSubjunctiveEndings holds the "opposite vowel" endings:
// -ar verbs take e-endings, -er/-ir verbs take a-endings.
var presentSubjunctiveEndings = map[string][6]string{
	"ar": {"e", "es", "e", "emos", "éis", "en"},
	"er": {"a", "as", "a", "amos", "áis", "an"},
	"ir": {"a", "as", "a", "amos", "áis", "an"},
}

// presentIndicativeEndings exists for the validator's wrong-mood check,
// not as a practice paradigm.
var presentIndicativeEndings = map[string][6]string{
	"ar": {"o", "as", "a", "amos", "áis", "an"},
	"er": {"o", "es", "e", "emos", "éis", "en"},
	"ir": {"o", "es", "e", "imos", "ís", "en"},
}

// Imperfect-subjunctive endings attach to the stem obtained by dropping
// "-ron" from the third-person-plural preterite. The two sets are
// historically equivalent; -ra is canonical for display.
var (
	imperfectRaEndings = [6]string{"ra", "ras", "ra", "ramos", "rais", "ran"}
	imperfectSeEndings = [6]string{"se", "ses", "se", "semos", "seis", "sen"}
)

// regularPreteriteThirdPlural is the suffix for the regular ellos
// preterite, by ending class.
var regularPreteriteThirdPlural = map[string]string{
	"ar": "aron",
	"er": "ieron",
	"ir": "ieron",
}

// bootPersonIndex reports whether the person slot carries stress on the
// stem (the "boot" pattern): all singular forms plus third plural.
func bootPersonIndex(idx int) bool {
	return idx <= 2 || idx == 5
}
