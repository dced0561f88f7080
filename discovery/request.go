package discovery

// Request is the discovery contract consumed from a caller, typically an
// admin action in the publishing flow. ArticleID, ArticleTitle and
// ArticleContent are required; the remaining fields are optional hints.
type Request struct {
	ArticleID      string `json:"articleId"`
	ArticleTitle   string `json:"articleTitle"`
	ArticleContent string `json:"articleContent"`

	// AiPrompt, when set, replaces the derived prompt used by the
	// generative level.
	AiPrompt string `json:"aiPrompt,omitempty"`

	// Filename, when set, overrides the synthesized suggested filename.
	Filename string `json:"filename,omitempty"`

	// AltText, when set, overrides the candidate description as alt text.
	AltText string `json:"altText,omitempty"`

	// ForceRegenerate skips the search levels and goes straight to
	// generation.
	ForceRegenerate bool `json:"forceRegenerate,omitempty"`
}

// Response is the terminal payload of a discovery request. The downstream
// consumer (e.g. a publishing flow) is responsible for uploading and
// registering the chosen image; this engine makes no assumption about what
// happens after assembly.
type Response struct {
	Image         ImageResult  `json:"image"`
	SearchResults SearchReport `json:"searchResults"`
	Metadata      Metadata     `json:"metadata"`
}

// ImageResult describes the chosen (or generated) image.
type ImageResult struct {
	ID             string `json:"id"`
	URL            string `json:"url"`
	Filename       string `json:"filename"`
	AltText        string `json:"altText"`
	Status         string `json:"status"`
	RelevanceScore int    `json:"relevanceScore"`
	SearchLevel    string `json:"searchLevel"`
}

// SearchReport carries per-request search telemetry.
type SearchReport struct {
	TotalFound          int    `json:"totalFound"`
	CandidatesEvaluated int    `json:"candidatesEvaluated"`
	BestScore           int    `json:"bestScore"`
	SearchLevel         string `json:"searchLevel"`
	ProcessingTimeMs    int64  `json:"processingTime"`
}

// Metadata carries provider and timing information about the request.
type Metadata struct {
	WasGenerated bool     `json:"wasGenerated"`
	Provider     string   `json:"provider"`
	SearchTimeMs int64    `json:"searchTime"`
	TotalTimeMs  int64    `json:"totalTime"`
	Keywords     []string `json:"keywords"`
}

// StatusReady marks an image that is ready for the downstream consumer.
const StatusReady = "ready"
