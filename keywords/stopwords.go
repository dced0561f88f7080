package keywords

// Stop words filtered out during keyword extraction. Articles processed by
// the engine are predominantly Italian with English loanwords, so both lists
// are built in. Tokens of three characters or fewer are dropped before this
// filter runs, which keeps the lists limited to longer function words.
var italianStopWords = map[string]bool{
	"alcune": true, "alcuni": true, "allora": true, "anche": true,
	"ancora": true, "avere": true, "avete": true, "aveva": true,
	"certo": true, "come": true, "contro": true, "cosa": true,
	"dalla": true, "dalle": true, "degli": true, "della": true,
	"delle": true, "dello": true, "dentro": true, "dopo": true,
	"dove": true, "ecco": true, "essere": true, "fare": true,
	"fatto": true, "fra": true, "infatti": true, "inoltre": true,
	"invece": true, "mentre": true, "molto": true, "nella": true,
	"nelle": true, "negli": true, "nello": true, "ogni": true,
	"oppure": true, "perche": true, "pero": true, "poco": true,
	"prima": true, "proprio": true, "quale": true, "quando": true,
	"quanto": true, "quella": true, "quelle": true, "quelli": true,
	"quello": true, "questa": true, "queste": true, "questi": true,
	"questo": true, "quindi": true, "sempre": true, "senza": true,
	"sono": true, "sopra": true, "sotto": true, "stata": true,
	"state": true, "stati": true, "stato": true, "sugli": true,
	"sulla": true, "sulle": true, "tanto": true, "tutta": true,
	"tutte": true, "tutti": true, "tutto": true, "verso": true,
}

var englishStopWords = map[string]bool{
	"about": true, "after": true, "again": true, "also": true,
	"been": true, "before": true, "being": true, "between": true,
	"both": true, "could": true, "does": true, "doing": true,
	"down": true, "during": true, "each": true, "from": true,
	"further": true, "have": true, "having": true, "here": true,
	"into": true, "just": true, "more": true, "most": true,
	"only": true, "other": true, "over": true, "same": true,
	"should": true, "some": true, "such": true, "than": true,
	"that": true, "their": true, "them": true, "then": true,
	"there": true, "these": true, "they": true, "this": true,
	"those": true, "through": true, "under": true, "until": true,
	"very": true, "were": true, "what": true, "when": true,
	"where": true, "which": true, "while": true, "will": true,
	"with": true, "would": true, "your": true,
}

func isStopWord(token string) bool {
	return italianStopWords[token] || englishStopWords[token]
}
