package bereia

// Paradigm names a tense/mood combination carrying its own ordered set of six
// person/number surface forms.
type Paradigm string

const (
	PresenteIndicativo            Paradigm = "presente_indicativo"
	PreteritoPerfeito             Paradigm = "preterito_perfeito"
	PreteritoImperfeito           Paradigm = "preterito_imperfeito"
	MaisQuePerfeito               Paradigm = "mais_que_perfeito"
	FuturoPresente                Paradigm = "futuro_presente"
	PresenteSubjuntivo            Paradigm = "presente_subjuntivo"
	PreteritoImperfeitoSubjuntivo Paradigm = "preterito_imperfeito_subjuntivo"
	FuturoSubjuntivo              Paradigm = "futuro_subjuntivo"
	Imperativo                    Paradigm = "imperativo"
	// PreteritoPerfeitoComposto has no regular endings table; it is
	// reachable only through the irregular table or the fallback order.
	PreteritoPerfeitoComposto Paradigm = "preterito_perfeito_composto"
)

// VerbClass is one of the three regular infinitive-ending families.
type VerbClass string

const (
	ClassAR VerbClass = "ar"
	ClassER VerbClass = "er"
	ClassIR VerbClass = "ir"
)

// Forms holds the six surface forms of one paradigm in the fixed order
// 1st/2nd/3rd singular, 1st/2nd/3rd plural.
type Forms [6]string

// personNumber keys the pronoun tables.
type personNumber struct {
	Person int
	Number string
}

// moodTense keys the paradigm-selection maps.
type moodTense struct {
	Mood  string
	Tense string
}

// Tables bundles all static conjugation data. A single instance is built at
// process start and shared read-only by every Conjugator.
type Tables struct {
	// RegularEndings maps paradigm → verb class → six endings.
	RegularEndings map[Paradigm]map[VerbClass]Forms
	// IrregularBases maps lemma → paradigm → six full surface forms.
	// A lemma may only supply some paradigms.
	IrregularBases map[string]map[Paradigm]Forms
	// IrregularParticiples maps lemma → past participle.
	IrregularParticiples map[string]string
	// IrregularGerunds maps lemma → gerund.
	IrregularGerunds map[string]string
	// SubjectPronouns maps (person, number) → subject pronoun.
	SubjectPronouns map[personNumber]string
	// ReflexivePronouns maps (person, number) → reflexive pronoun.
	ReflexivePronouns map[personNumber]string
	// FiniteParadigms maps (mood, tense) → target paradigm.
	FiniteParadigms map[moodTense]Paradigm
	// PassiveAuxParadigms maps (mood, tense) → paradigm for the "ser"
	// auxiliary of the passive periphrasis.
	PassiveAuxParadigms map[moodTense]Paradigm
	// FallbackParadigms is the fixed order tried when an irregular lemma
	// has no entry for the target paradigm.
	FallbackParadigms []Paradigm
}

var defaultTables = &Tables{
	RegularEndings: map[Paradigm]map[VerbClass]Forms{
		PresenteIndicativo: {
			ClassAR: {"o", "as", "a", "amos", "ais", "am"},
			ClassER: {"o", "es", "e", "emos", "eis", "em"},
			ClassIR: {"o", "es", "e", "imos", "is", "em"},
		},
		PreteritoPerfeito: {
			ClassAR: {"ei", "aste", "ou", "amos", "astes", "aram"},
			ClassER: {"i", "este", "eu", "emos", "estes", "eram"},
			ClassIR: {"i", "iste", "iu", "imos", "istes", "iram"},
		},
		PreteritoImperfeito: {
			ClassAR: {"ava", "avas", "ava", "ávamos", "áveis", "avam"},
			ClassER: {"ia", "ias", "ia", "íamos", "íeis", "iam"},
			ClassIR: {"ia", "ias", "ia", "íamos", "íeis", "iam"},
		},
		MaisQuePerfeito: {
			ClassAR: {"ara", "aras", "ara", "áramos", "áreis", "aram"},
			ClassER: {"era", "eras", "era", "êramos", "êreis", "eram"},
			ClassIR: {"ira", "iras", "ira", "íramos", "íreis", "iram"},
		},
		FuturoPresente: {
			ClassAR: {"arei", "arás", "ará", "aremos", "areis", "arão"},
			ClassER: {"erei", "erás", "erá", "eremos", "ereis", "erão"},
			ClassIR: {"irei", "irás", "irá", "iremos", "ireis", "irão"},
		},
		PresenteSubjuntivo: {
			ClassAR: {"e", "es", "e", "emos", "eis", "em"},
			ClassER: {"a", "as", "a", "amos", "ais", "am"},
			ClassIR: {"a", "as", "a", "amos", "ais", "am"},
		},
		PreteritoImperfeitoSubjuntivo: {
			ClassAR: {"asse", "asses", "asse", "ássemos", "ásseis", "assem"},
			ClassER: {"esse", "esses", "esse", "êssemos", "êsseis", "essem"},
			ClassIR: {"isse", "isses", "isse", "íssemos", "ísseis", "issem"},
		},
		FuturoSubjuntivo: {
			ClassAR: {"ar", "ares", "ar", "armos", "ardes", "arem"},
			ClassER: {"er", "eres", "er", "ermos", "erdes", "erem"},
			ClassIR: {"ir", "ires", "ir", "irmos", "irdes", "irem"},
		},
		Imperativo: {
			ClassAR: {"", "a", "e", "emos", "ai", "em"},
			ClassER: {"", "e", "a", "amos", "ei", "am"},
			ClassIR: {"", "e", "a", "amos", "i", "am"},
		},
	},

	IrregularBases: map[string]map[Paradigm]Forms{
		"ser": {
			PresenteIndicativo:            {"sou", "és", "é", "somos", "sois", "são"},
			PreteritoPerfeito:             {"fui", "foste", "foi", "fomos", "fostes", "foram"},
			PreteritoImperfeito:           {"era", "eras", "era", "éramos", "éreis", "eram"},
			MaisQuePerfeito:               {"fora", "foras", "fora", "fôramos", "fôreis", "foram"},
			FuturoPresente:                {"serei", "serás", "será", "seremos", "sereis", "serão"},
			PresenteSubjuntivo:            {"seja", "sejas", "seja", "sejamos", "sejais", "sejam"},
			PreteritoImperfeitoSubjuntivo: {"fosse", "fosses", "fosse", "fôssemos", "fôsseis", "fossem"},
			FuturoSubjuntivo:              {"for", "fores", "for", "formos", "fordes", "forem"},
			Imperativo:                    {"", "sê", "seja", "sejamos", "sede", "sejam"},
		},
		"estar": {
			PresenteIndicativo:            {"estou", "estás", "está", "estamos", "estáis", "estão"},
			PreteritoPerfeito:             {"estive", "estiveste", "esteve", "estivemos", "estivestes", "estiveram"},
			PreteritoImperfeito:           {"estava", "estavas", "estava", "estávamos", "estáveis", "estavam"},
			FuturoPresente:                {"estarei", "estarás", "estará", "estaremos", "estareis", "estarão"},
			PresenteSubjuntivo:            {"esteja", "estejas", "esteja", "estejamos", "estejais", "estejam"},
			PreteritoImperfeitoSubjuntivo: {"estivesse", "estivesses", "estivesse", "estivéssemos", "estivésseis", "estivessem"},
			FuturoSubjuntivo:              {"estiver", "estiveres", "estiver", "estivermos", "estiverdes", "estiverem"},
			Imperativo:                    {"", "está", "esteja", "estejamos", "estai", "estejam"},
		},
		"ter": {
			PresenteIndicativo:            {"tenho", "tens", "tem", "temos", "tendes", "têm"},
			PreteritoPerfeito:             {"tive", "tiveste", "teve", "tivemos", "tivestes", "tiveram"},
			PreteritoImperfeito:           {"tinha", "tinhas", "tinha", "tínhamos", "tínheis", "tinham"},
			FuturoPresente:                {"terei", "terás", "terá", "teremos", "tereis", "terão"},
			PresenteSubjuntivo:            {"tenha", "tenhas", "tenha", "tenhamos", "tenhais", "tenham"},
			PreteritoImperfeitoSubjuntivo: {"tivesse", "tivesses", "tivesse", "tivéssemos", "tivésseis", "tivessem"},
			FuturoSubjuntivo:              {"tiver", "tiveres", "tiver", "tivermos", "tiverdes", "tiverem"},
			Imperativo:                    {"", "tem", "tenha", "tenhamos", "tende", "tenham"},
		},
		"haver": {
			PresenteIndicativo:  {"hei", "hás", "há", "havemos", "haveis", "hão"},
			PreteritoPerfeito:   {"houve", "houveste", "houve", "houvemos", "houvestes", "houveram"},
			PreteritoImperfeito: {"havia", "havias", "havia", "havíamos", "havíeis", "haviam"},
			FuturoPresente:      {"haverei", "haverás", "haverá", "haveremos", "havereis", "haverão"},
			PresenteSubjuntivo:  {"haja", "hajas", "haja", "hajamos", "hajais", "hajam"},
			FuturoSubjuntivo:    {"houver", "houveres", "houver", "houvermos", "houverdes", "houverem"},
			Imperativo:          {"", "há", "haja", "hajamos", "hai", "hajam"},
		},
		"ir": {
			PresenteIndicativo:  {"vou", "vais", "vai", "vamos", "ides", "vão"},
			PreteritoPerfeito:   {"fui", "foste", "foi", "fomos", "fostes", "foram"},
			PreteritoImperfeito: {"ia", "ias", "ia", "íamos", "íeis", "iam"},
			FuturoPresente:      {"irei", "irás", "irá", "iremos", "ireis", "irão"},
			PresenteSubjuntivo:  {"vá", "vás", "vá", "vamos", "vades", "vão"},
			FuturoSubjuntivo:    {"for", "fores", "for", "formos", "fordes", "forem"},
			Imperativo:          {"", "vai", "vá", "vamos", "ide", "vão"},
		},
		"dar": {
			PresenteIndicativo:  {"dou", "dás", "dá", "damos", "dais", "dão"},
			PreteritoPerfeito:   {"dei", "deste", "deu", "demos", "destes", "deram"},
			PreteritoImperfeito: {"dava", "davas", "dava", "dávamos", "dáveis", "davam"},
			FuturoPresente:      {"darei", "darás", "dará", "daremos", "dareis", "darão"},
			PresenteSubjuntivo:  {"dê", "dês", "dê", "demos", "deis", "deem"},
			FuturoSubjuntivo:    {"der", "deres", "der", "dermos", "derdes", "derem"},
			Imperativo:          {"", "dá", "dê", "demos", "dai", "deem"},
		},
		"ver": {
			PresenteIndicativo:  {"vejo", "vês", "vê", "vemos", "vedes", "veem"},
			PreteritoPerfeito:   {"vi", "viste", "viu", "vimos", "vistes", "viram"},
			PreteritoImperfeito: {"via", "vias", "via", "víamos", "víeis", "viam"},
			FuturoPresente:      {"verei", "verás", "verá", "veremos", "vereis", "verão"},
			PresenteSubjuntivo:  {"veja", "vejas", "veja", "vejamos", "vejais", "vejam"},
			FuturoSubjuntivo:    {"vir", "vires", "vir", "virmos", "virdes", "virem"},
			Imperativo:          {"", "vê", "veja", "vejamos", "vede", "vejam"},
		},
		"vir": {
			PresenteIndicativo:  {"venho", "vens", "vem", "vimos", "vindes", "vêm"},
			PreteritoPerfeito:   {"vim", "vieste", "veio", "viemos", "viestes", "vieram"},
			PreteritoImperfeito: {"vinha", "vinhas", "vinha", "vínhamos", "vínheis", "vinham"},
			FuturoPresente:      {"virei", "virás", "virá", "viremos", "vireis", "virão"},
			PresenteSubjuntivo:  {"venha", "venhas", "venha", "venhamos", "venhais", "venham"},
			FuturoSubjuntivo:    {"vier", "vieres", "vier", "viermos", "vierdes", "vierem"},
			Imperativo:          {"", "vem", "venha", "venhamos", "vinde", "venham"},
		},
		"fazer": {
			PresenteIndicativo:  {"faço", "fazes", "faz", "fazemos", "fazeis", "fazem"},
			PreteritoPerfeito:   {"fiz", "fizeste", "fez", "fizemos", "fizestes", "fizeram"},
			PreteritoImperfeito: {"fazia", "fazias", "fazia", "fazíamos", "fazíeis", "faziam"},
			FuturoPresente:      {"farei", "farás", "fará", "faremos", "fareis", "farão"},
			PresenteSubjuntivo:  {"faça", "faças", "faça", "façamos", "façais", "façam"},
			FuturoSubjuntivo:    {"fizer", "fizeres", "fizer", "fizermos", "fizerdes", "fizerem"},
			Imperativo:          {"", "faz", "faça", "façamos", "fazei", "façam"},
		},
		"dizer": {
			PresenteIndicativo:  {"digo", "dizes", "diz", "dizemos", "dizeis", "dizem"},
			PreteritoPerfeito:   {"disse", "disseste", "disse", "dissemos", "dissestes", "disseram"},
			PreteritoImperfeito: {"dizia", "dizias", "dizia", "dizíamos", "dizíeis", "diziam"},
			FuturoPresente:      {"direi", "dirás", "dirá", "diremos", "direis", "dirão"},
			PresenteSubjuntivo:  {"diga", "digas", "diga", "digamos", "digais", "digam"},
			FuturoSubjuntivo:    {"disser", "disseres", "disser", "dissermos", "disserdes", "disserem"},
			Imperativo:          {"", "diz", "diga", "digamos", "dizei", "digam"},
		},
		"poder": {
			PresenteIndicativo:  {"posso", "podes", "pode", "podemos", "podeis", "podem"},
			PreteritoPerfeito:   {"pude", "pudeste", "pôde", "pudemos", "pudestes", "puderam"},
			PreteritoImperfeito: {"podia", "podias", "podia", "podíamos", "podíeis", "podiam"},
			FuturoPresente:      {"poderei", "poderás", "poderá", "poderemos", "podereis", "poderão"},
			PresenteSubjuntivo:  {"possa", "possas", "possa", "possamos", "possais", "possam"},
			FuturoSubjuntivo:    {"puder", "puderes", "puder", "pudermos", "puderdes", "puderem"},
			Imperativo:          {"", "pode", "possa", "possamos", "podei", "possam"},
		},
		"trazer": {
			PresenteIndicativo: {"trago", "trazes", "traz", "trazemos", "trazeis", "trazem"},
			PreteritoPerfeito:  {"trouxe", "trouxeste", "trouxe", "trouxemos", "trouxestes", "trouxeram"},
			FuturoPresente:     {"trarei", "trarás", "trará", "traremos", "trareis", "trarão"},
			PresenteSubjuntivo: {"traga", "tragas", "traga", "tragamos", "tragais", "tragam"},
			FuturoSubjuntivo:   {"trouxer", "trouxeres", "trouxer", "trouxermos", "trouxerdes", "trouxerem"},
			Imperativo:         {"", "traz", "traga", "tragamos", "trazei", "tragam"},
		},
		"querer": {
			PresenteIndicativo:  {"quero", "queres", "quer", "queremos", "quereis", "querem"},
			PreteritoPerfeito:   {"quis", "quiseste", "quis", "quisemos", "quisestes", "quiseram"},
			PreteritoImperfeito: {"queria", "querias", "queria", "queríamos", "queríeis", "queriam"},
			FuturoPresente:      {"quererei", "quererás", "quererá", "quereremos", "querereis", "quererão"},
			PresenteSubjuntivo:  {"queira", "queiras", "queira", "queiramos", "queirais", "queiram"},
			FuturoSubjuntivo:    {"quiser", "quiseres", "quiser", "quisermos", "quiserdes", "quiserem"},
			Imperativo:          {"", "quer", "queira", "queiramos", "querei", "queiram"},
		},
		"saber": {
			PresenteIndicativo:  {"sei", "sabes", "sabe", "sabemos", "sabeis", "sabem"},
			PreteritoPerfeito:   {"soube", "soubeste", "soube", "soubemos", "soubestes", "souberam"},
			PreteritoImperfeito: {"sabia", "sabias", "sabia", "sabíamos", "sabíeis", "sabiam"},
			FuturoPresente:      {"saberei", "saberás", "saberá", "saberemos", "sabereis", "saberão"},
			PresenteSubjuntivo:  {"saiba", "saibas", "saiba", "saibamos", "saibais", "saibam"},
			FuturoSubjuntivo:    {"souber", "souberes", "souber", "soubermos", "souberdes", "souberem"},
			Imperativo:          {"", "sabe", "saiba", "saibamos", "sabei", "saibam"},
		},
		"pôr": {
			PresenteIndicativo:  {"ponho", "pões", "põe", "pomos", "pondes", "põem"},
			PreteritoPerfeito:   {"pus", "puseste", "pôs", "pusemos", "pusestes", "puseram"},
			PreteritoImperfeito: {"punha", "punhas", "punha", "púnhamos", "púnheis", "punham"},
			FuturoPresente:      {"porei", "porás", "porá", "poremos", "poreis", "porão"},
			PresenteSubjuntivo:  {"ponha", "ponhas", "ponha", "ponhamos", "ponhais", "ponham"},
			FuturoSubjuntivo:    {"puser", "puseres", "puser", "pusermos", "puserdes", "puserem"},
			Imperativo:          {"", "põe", "ponha", "ponhamos", "ponde", "ponham"},
		},
	},

	IrregularParticiples: map[string]string{
		"ser":    "sido",
		"estar":  "estado",
		"ter":    "tido",
		"haver":  "havido",
		"ir":     "ido",
		"ver":    "visto",
		"vir":    "vindo",
		"fazer":  "feito",
		"dizer":  "dito",
		"poder":  "podido",
		"trazer": "trazido",
		"querer": "querido",
		"saber":  "sabido",
		"dar":    "dado",
		"pôr":    "posto",
	},

	IrregularGerunds: map[string]string{
		"ser":    "sendo",
		"estar":  "estando",
		"ir":     "indo",
		"ver":    "vendo",
		"vir":    "vindo",
		"pôr":    "pondo",
		"ter":    "tendo",
		"fazer":  "fazendo",
		"dizer":  "dizendo",
		"trazer": "trazendo",
	},

	SubjectPronouns: map[personNumber]string{
		{1, "singular"}: "eu",
		{2, "singular"}: "tu",
		{3, "singular"}: "ele(a)",
		{1, "plural"}:   "nós",
		{2, "plural"}:   "vocês",
		{3, "plural"}:   "eles(as)",
	},

	ReflexivePronouns: map[personNumber]string{
		{1, "singular"}: "me",
		{2, "singular"}: "te",
		{3, "singular"}: "se",
		{1, "plural"}:   "nos",
		{2, "plural"}:   "vos",
		{3, "plural"}:   "se",
	},

	FiniteParadigms: map[moodTense]Paradigm{
		{"indicativo", "presente"}:    PresenteIndicativo,
		{"indicativo", "imperfeito"}:  PreteritoImperfeito,
		{"indicativo", "aoristo"}:     PreteritoPerfeito,
		{"indicativo", "perfeito"}:    PreteritoPerfeitoComposto,
		{"indicativo", "futuro"}:      FuturoPresente,
		{"indicativo", "pluperfeito"}: MaisQuePerfeito,
		{"subjuntivo", "presente"}:    PresenteSubjuntivo,
		{"subjuntivo", "aoristo"}:     PresenteSubjuntivo,
		{"subjuntivo", "perfeito"}:    PreteritoImperfeitoSubjuntivo,
		{"subjuntivo", "futuro"}:      FuturoSubjuntivo,
		{"imperativo", "presente"}:    Imperativo,
		{"imperativo", "aoristo"}:     Imperativo,
	},

	PassiveAuxParadigms: map[moodTense]Paradigm{
		{"indicativo", "presente"}:    PresenteIndicativo,
		{"indicativo", "imperfeito"}:  PreteritoImperfeito,
		{"indicativo", "aoristo"}:     PreteritoPerfeito,
		{"indicativo", "perfeito"}:    PreteritoPerfeitoComposto,
		{"indicativo", "futuro"}:      FuturoPresente,
		{"indicativo", "pluperfeito"}: MaisQuePerfeito,
		{"subjuntivo", "presente"}:    PresenteSubjuntivo,
		{"subjuntivo", "aoristo"}:     PresenteSubjuntivo,
		{"subjuntivo", "futuro"}:      FuturoSubjuntivo,
	},

	FallbackParadigms: []Paradigm{
		PresenteIndicativo,
		PreteritoPerfeito,
		PreteritoImperfeito,
		MaisQuePerfeito,
		FuturoPresente,
	},
}

// DefaultTables returns the shared built-in conjugation tables.
func DefaultTables() *Tables {
	return defaultTables
}
