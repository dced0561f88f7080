package batch

import "errors"

var (
	// ErrEngineRequired is returned when a discovery engine is not provided.
	ErrEngineRequired = errors.New("discovery engine required")

	// ErrNoArticles is returned when a batch run is started with no articles.
	ErrNoArticles = errors.New("no articles to process")
)
