package lexicon

// seedVerbs is the reference verb inventory. Forms that the derivation
// rules cannot produce are declared here as data; the engine never guesses.
//
// YoPresent is set only when the yo form is irregular beyond a stem change
// or a predictable spelling adjustment (go-verbs, -zco verbs). Stem-changing
// verbs with a regular yo form rely on the pattern rules instead.
var seedVerbs = []Verb{
	// Fully regular.
	{Infinitive: "hablar", English: "to speak", Class: ClassRegularAR, StemChange: StemChangeNone},
	{Infinitive: "estudiar", English: "to study", Class: ClassRegularAR, StemChange: StemChangeNone},
	{Infinitive: "trabajar", English: "to work", Class: ClassRegularAR, StemChange: StemChangeNone},
	{Infinitive: "comer", English: "to eat", Class: ClassRegularER, StemChange: StemChangeNone},
	{Infinitive: "aprender", English: "to learn", Class: ClassRegularER, StemChange: StemChangeNone},
	{Infinitive: "vivir", English: "to live", Class: ClassRegularIR, StemChange: StemChangeNone},

	// Regular except for an irregular participle.
	{Infinitive: "escribir", English: "to write", Class: ClassIrregular, StemChange: StemChangeNone, Participle: "escrito"},
	{Infinitive: "abrir", English: "to open", Class: ClassIrregular, StemChange: StemChangeNone, Participle: "abierto"},
	{Infinitive: "romper", English: "to break", Class: ClassIrregular, StemChange: StemChangeNone, Participle: "roto"},

	// Stem-changing, otherwise regular.
	{Infinitive: "pensar", English: "to think", Class: ClassRegularAR, StemChange: StemChangeEIE},
	{Infinitive: "cerrar", English: "to close", Class: ClassRegularAR, StemChange: StemChangeEIE},
	{Infinitive: "entender", English: "to understand", Class: ClassRegularER, StemChange: StemChangeEIE},
	{Infinitive: "perder", English: "to lose", Class: ClassRegularER, StemChange: StemChangeEIE},
	{Infinitive: "encontrar", English: "to find", Class: ClassRegularAR, StemChange: StemChangeOUE},
	{Infinitive: "contar", English: "to tell, to count", Class: ClassRegularAR, StemChange: StemChangeOUE},

	// Stem change plus spelling adjustment in the same form.
	{Infinitive: "empezar", English: "to begin", Class: ClassRegularAR, StemChange: StemChangeEIE},
	{Infinitive: "almorzar", English: "to have lunch", Class: ClassRegularAR, StemChange: StemChangeOUE},

	// Spelling-adjustment verbs (-car/-gar/-zar/-guar, -ger/-gir/-cer).
	{Infinitive: "buscar", English: "to look for", Class: ClassRegularAR, StemChange: StemChangeNone},
	{Infinitive: "sacar", English: "to take out", Class: ClassRegularAR, StemChange: StemChangeNone},
	{Infinitive: "llegar", English: "to arrive", Class: ClassRegularAR, StemChange: StemChangeNone},
	{Infinitive: "pagar", English: "to pay", Class: ClassRegularAR, StemChange: StemChangeNone},
	{Infinitive: "cruzar", English: "to cross", Class: ClassRegularAR, StemChange: StemChangeNone},
	{Infinitive: "averiguar", English: "to find out", Class: ClassRegularAR, StemChange: StemChangeNone},
	{Infinitive: "escoger", English: "to choose", Class: ClassRegularER, StemChange: StemChangeNone},
	{Infinitive: "vencer", English: "to defeat", Class: ClassRegularER, StemChange: StemChangeNone},

	// -ir stem-changers: the preterite stem raises the vowel, so the
	// imperfect-subjunctive base is declared.
	{
		Infinitive: "sentir", English: "to feel", Class: ClassIrregular, StemChange: StemChangeEIE,
		PreteriteThirdPlural: "sintieron",
	},
	{
		Infinitive: "preferir", English: "to prefer", Class: ClassIrregular, StemChange: StemChangeEIE,
		PreteriteThirdPlural: "prefirieron",
	},
	{
		Infinitive: "dormir", English: "to sleep", Class: ClassIrregular, StemChange: StemChangeOUE,
		PreteriteThirdPlural: "durmieron",
	},
	{
		Infinitive: "morir", English: "to die", Class: ClassIrregular, StemChange: StemChangeOUE,
		PreteriteThirdPlural: "murieron", Participle: "muerto",
	},
	{
		Infinitive: "pedir", English: "to ask for", Class: ClassIrregular, StemChange: StemChangeEI,
		PreteriteThirdPlural: "pidieron",
	},
	{
		Infinitive: "servir", English: "to serve", Class: ClassIrregular, StemChange: StemChangeEI,
		PreteriteThirdPlural: "sirvieron",
	},
	{
		Infinitive: "repetir", English: "to repeat", Class: ClassIrregular, StemChange: StemChangeEI,
		PreteriteThirdPlural: "repitieron",
	},
	{
		Infinitive: "seguir", English: "to follow", Class: ClassIrregular, StemChange: StemChangeEI,
		PreteriteThirdPlural: "siguieron",
	},
	{
		Infinitive: "elegir", English: "to choose, to elect", Class: ClassIrregular, StemChange: StemChangeEI,
		PreteriteThirdPlural: "eligieron",
	},

	// u→ue falls outside the three common patterns; the affected present
	// forms are declared rather than rule-derived.
	{
		Infinitive: "jugar", English: "to play", Class: ClassIrregular, StemChange: StemChangeOther,
		Overrides: map[FormKey]string{
			{TensePresentSubjunctive, FirstSingular}:  "juegue",
			{TensePresentSubjunctive, SecondSingular}: "juegues",
			{TensePresentSubjunctive, ThirdSingular}:  "juegue",
			{TensePresentSubjunctive, ThirdPlural}:    "jueguen",
			{TensePresentIndicative, FirstSingular}:   "juego",
			{TensePresentIndicative, SecondSingular}:  "juegas",
			{TensePresentIndicative, ThirdSingular}:   "juega",
			{TensePresentIndicative, ThirdPlural}:     "juegan",
		},
	},

	// Irregular yo-form verbs: the present-subjunctive stem follows the
	// yo form for every person.
	{
		Infinitive: "hacer", English: "to do, to make", Class: ClassIrregular, StemChange: StemChangeNone,
		YoPresent: "hago", PreteriteThirdPlural: "hicieron", Participle: "hecho",
	},
	{
		Infinitive: "poner", English: "to put", Class: ClassIrregular, StemChange: StemChangeNone,
		YoPresent: "pongo", PreteriteThirdPlural: "pusieron", Participle: "puesto",
	},
	{
		Infinitive: "salir", English: "to leave", Class: ClassIrregular, StemChange: StemChangeNone,
		YoPresent: "salgo",
	},
	{
		Infinitive: "tener", English: "to have", Class: ClassIrregular, StemChange: StemChangeEIE,
		YoPresent: "tengo", PreteriteThirdPlural: "tuvieron",
	},
	{
		Infinitive: "venir", English: "to come", Class: ClassIrregular, StemChange: StemChangeEIE,
		YoPresent: "vengo", PreteriteThirdPlural: "vinieron",
	},
	{
		Infinitive: "decir", English: "to say", Class: ClassIrregular, StemChange: StemChangeEI,
		YoPresent: "digo", PreteriteThirdPlural: "dijeron", Participle: "dicho",
	},
	{
		Infinitive: "traer", English: "to bring", Class: ClassIrregular, StemChange: StemChangeNone,
		YoPresent: "traigo", PreteriteThirdPlural: "trajeron", Participle: "traído",
	},
	{
		Infinitive: "conocer", English: "to know (a person)", Class: ClassIrregular, StemChange: StemChangeNone,
		YoPresent: "conozco",
	},
	{
		Infinitive: "ofrecer", English: "to offer", Class: ClassIrregular, StemChange: StemChangeNone,
		YoPresent: "ofrezco",
	},
	{
		Infinitive: "ver", English: "to see", Class: ClassIrregular, StemChange: StemChangeNone,
		YoPresent: "veo", PreteriteThirdPlural: "vieron", Participle: "visto",
		Overrides: map[FormKey]string{
			// Monosyllabic: regular endings would add a spurious accent.
			{TensePresentIndicative, SecondPlural}: "veis",
		},
	},
	{
		Infinitive: "leer", English: "to read", Class: ClassIrregular, StemChange: StemChangeNone,
		PreteriteThirdPlural: "leyeron", Participle: "leído",
	},
	{
		Infinitive: "oír", English: "to hear", Class: ClassIrregular, StemChange: StemChangeNone,
		YoPresent: "oigo", PreteriteThirdPlural: "oyeron", Participle: "oído",
		Overrides: map[FormKey]string{
			{TensePresentIndicative, SecondSingular}: "oyes",
			{TensePresentIndicative, ThirdSingular}:  "oye",
			{TensePresentIndicative, FirstPlural}:    "oímos",
			{TensePresentIndicative, SecondPlural}:   "oís",
			{TensePresentIndicative, ThirdPlural}:    "oyen",
		},
	},
	{
		Infinitive: "poder", English: "to be able to", Class: ClassIrregular, StemChange: StemChangeOUE,
		PreteriteThirdPlural: "pudieron",
	},
	{
		Infinitive: "querer", English: "to want", Class: ClassIrregular, StemChange: StemChangeEIE,
		PreteriteThirdPlural: "quisieron",
	},
	{
		Infinitive: "volver", English: "to return", Class: ClassIrregular, StemChange: StemChangeOUE,
		Participle: "vuelto",
	},

	// Wholly irregular present subjunctives, declared form by form.
	{
		Infinitive: "ser", English: "to be", Class: ClassIrregular, StemChange: StemChangeNone,
		PreteriteThirdPlural: "fueron",
		Overrides: map[FormKey]string{
			{TensePresentSubjunctive, FirstSingular}:  "sea",
			{TensePresentSubjunctive, SecondSingular}: "seas",
			{TensePresentSubjunctive, ThirdSingular}:  "sea",
			{TensePresentSubjunctive, FirstPlural}:    "seamos",
			{TensePresentSubjunctive, SecondPlural}:   "seáis",
			{TensePresentSubjunctive, ThirdPlural}:    "sean",
			{TensePresentIndicative, FirstSingular}:   "soy",
			{TensePresentIndicative, SecondSingular}:  "eres",
			{TensePresentIndicative, ThirdSingular}:   "es",
			{TensePresentIndicative, FirstPlural}:     "somos",
			{TensePresentIndicative, SecondPlural}:    "sois",
			{TensePresentIndicative, ThirdPlural}:     "son",
		},
	},
	{
		Infinitive: "estar", English: "to be (location, state)", Class: ClassIrregular, StemChange: StemChangeNone,
		PreteriteThirdPlural: "estuvieron",
		Overrides: map[FormKey]string{
			{TensePresentSubjunctive, FirstSingular}:  "esté",
			{TensePresentSubjunctive, SecondSingular}: "estés",
			{TensePresentSubjunctive, ThirdSingular}:  "esté",
			{TensePresentSubjunctive, FirstPlural}:    "estemos",
			{TensePresentSubjunctive, SecondPlural}:   "estéis",
			{TensePresentSubjunctive, ThirdPlural}:    "estén",
			{TensePresentIndicative, FirstSingular}:   "estoy",
			{TensePresentIndicative, SecondSingular}:  "estás",
			{TensePresentIndicative, ThirdSingular}:   "está",
			{TensePresentIndicative, ThirdPlural}:     "están",
		},
	},
	{
		Infinitive: "ir", English: "to go", Class: ClassIrregular, StemChange: StemChangeNone,
		PreteriteThirdPlural: "fueron",
		Overrides: map[FormKey]string{
			{TensePresentSubjunctive, FirstSingular}:  "vaya",
			{TensePresentSubjunctive, SecondSingular}: "vayas",
			{TensePresentSubjunctive, ThirdSingular}:  "vaya",
			{TensePresentSubjunctive, FirstPlural}:    "vayamos",
			{TensePresentSubjunctive, SecondPlural}:   "vayáis",
			{TensePresentSubjunctive, ThirdPlural}:    "vayan",
			{TensePresentIndicative, FirstSingular}:   "voy",
			{TensePresentIndicative, SecondSingular}:  "vas",
			{TensePresentIndicative, ThirdSingular}:   "va",
			{TensePresentIndicative, FirstPlural}:     "vamos",
			{TensePresentIndicative, SecondPlural}:    "vais",
			{TensePresentIndicative, ThirdPlural}:     "van",
		},
	},
	{
		Infinitive: "dar", English: "to give", Class: ClassIrregular, StemChange: StemChangeNone,
		PreteriteThirdPlural: "dieron",
		Overrides: map[FormKey]string{
			{TensePresentSubjunctive, FirstSingular}:  "dé",
			{TensePresentSubjunctive, SecondSingular}: "des",
			{TensePresentSubjunctive, ThirdSingular}:  "dé",
			{TensePresentSubjunctive, FirstPlural}:    "demos",
			{TensePresentSubjunctive, SecondPlural}:   "deis",
			{TensePresentSubjunctive, ThirdPlural}:    "den",
			{TensePresentIndicative, FirstSingular}:   "doy",
			{TensePresentIndicative, SecondPlural}:    "dais",
		},
	},
	{
		Infinitive: "saber", English: "to know (a fact)", Class: ClassIrregular, StemChange: StemChangeNone,
		PreteriteThirdPlural: "supieron",
		Overrides: map[FormKey]string{
			{TensePresentSubjunctive, FirstSingular}:  "sepa",
			{TensePresentSubjunctive, SecondSingular}: "sepas",
			{TensePresentSubjunctive, ThirdSingular}:  "sepa",
			{TensePresentSubjunctive, FirstPlural}:    "sepamos",
			{TensePresentSubjunctive, SecondPlural}:   "sepáis",
			{TensePresentSubjunctive, ThirdPlural}:    "sepan",
			{TensePresentIndicative, FirstSingular}:   "sé",
		},
	},
	{
		Infinitive: "haber", English: "to have (auxiliary)", Class: ClassIrregular, StemChange: StemChangeNone,
		PreteriteThirdPlural: "hubieron",
		Overrides: map[FormKey]string{
			{TensePresentSubjunctive, FirstSingular}:  "haya",
			{TensePresentSubjunctive, SecondSingular}: "hayas",
			{TensePresentSubjunctive, ThirdSingular}:  "haya",
			{TensePresentSubjunctive, FirstPlural}:    "hayamos",
			{TensePresentSubjunctive, SecondPlural}:   "hayáis",
			{TensePresentSubjunctive, ThirdPlural}:    "hayan",
			{TensePresentIndicative, FirstSingular}:   "he",
			{TensePresentIndicative, SecondSingular}:  "has",
			{TensePresentIndicative, ThirdSingular}:   "ha",
			{TensePresentIndicative, FirstPlural}:     "hemos",
			{TensePresentIndicative, ThirdPlural}:     "han",
		},
	},
}
