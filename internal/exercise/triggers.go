package exercise

import "github.com/subjunto/subjunto/internal/lexicon"

// triggerPhrases maps each tense to clauses that license the subjunctive
// in that time frame. Present-frame triggers pair with the present and
// present perfect; past-frame triggers with the imperfect and pluperfect.
var triggerPhrases = map[lexicon.Tense][]string{
	lexicon.TensePresentSubjunctive: {
		"Espero que",
		"Quiero que",
		"Es importante que",
		"Dudo que",
		"Ojalá que",
		"Es posible que",
		"No creo que",
	},
	lexicon.TenseImperfectSubjunctive: {
		"Quería que",
		"Esperaba que",
		"Era necesario que",
		"Dudaba que",
		"Temía que",
		"Era posible que",
	},
	lexicon.TensePresentPerfectSubjunctive: {
		"Me alegra que",
		"Espero que",
		"No creo que",
		"Es bueno que",
		"Dudo que",
	},
	lexicon.TensePluperfectSubjunctive: {
		"No creía que",
		"Dudaba que",
		"Me sorprendió que",
		"Era imposible que",
	},
}
