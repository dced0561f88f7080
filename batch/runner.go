// Copyright 2026 Pressidio Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package batch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/pressidio/imagescout/core"
	"github.com/pressidio/imagescout/discovery"
)

// Discoverer runs image discovery for a single article.
// *discovery.Engine satisfies this interface.
type Discoverer interface {
	Discover(ctx context.Context, req *discovery.Request) (*discovery.Response, error)
}

// Article is one unit of batch input.
type Article struct {
	ID      string `json:"articleId"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Result is the outcome of discovery for one article. Exactly one of
// Response and Err is set.
type Result struct {
	Article  Article
	Response *discovery.Response
	Err      error
}

// LoadArticles reads a JSON array of articles.
func LoadArticles(r io.Reader) ([]Article, error) {
	var articles []Article
	if err := json.NewDecoder(r).Decode(&articles); err != nil {
		return nil, fmt.Errorf("decoding articles: %w", err)
	}
	return articles, nil
}

// Runner fans article discovery out over a worker pool.
type Runner struct {
	engine  Discoverer
	pool    *ants.Pool
	tracker *ProgressTracker
	logger  *slog.Logger
}

// Option configures a Runner.
type Option func(*Runner) error

// WithPoolSize sets the worker pool size for concurrent discovery.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(r *Runner) error {
		if size < 1 {
			size = 1
		}

		if r.pool != nil {
			r.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		r.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// WithProgress attaches a progress tracker that is advanced as articles
// complete.
func WithProgress(tracker *ProgressTracker) Option {
	return func(r *Runner) error {
		r.tracker = tracker
		return nil
	}
}

// NewRunner creates a batch runner on top of a discovery engine.
func NewRunner(engine Discoverer, opts ...Option) (*Runner, error) {
	if engine == nil {
		return nil, ErrEngineRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	r := &Runner{
		engine: engine,
		pool:   pool,
		logger: slog.Default(),
	}

	// Apply options (may override defaults)
	for _, opt := range opts {
		if optErr := opt(r); optErr != nil {
			r.Release()
			return nil, optErr
		}
	}

	return r, nil
}

// Run discovers an image for every article and returns one result per
// article, in input order. A failing article yields a Result with Err set;
// it never aborts the rest of the batch.
func (r *Runner) Run(ctx context.Context, articles []Article) ([]Result, error) {
	if len(articles) == 0 {
		return nil, ErrNoArticles
	}

	if r.tracker != nil {
		r.tracker.Start()
	}

	results := make([]Result, len(articles))
	var wg sync.WaitGroup

	for i, article := range articles {
		i, article := i, article

		wg.Add(1)
		err := r.pool.Submit(func() {
			defer wg.Done()
			results[i] = r.discoverOne(ctx, article)
			if r.tracker != nil {
				r.tracker.Increment(1)
			}
		})
		if err != nil {
			wg.Done()
			results[i] = Result{Article: article, Err: err}
		}
	}

	wg.Wait()

	if r.tracker != nil {
		r.tracker.Finish()
	}

	return results, nil
}

// discoverOne runs discovery for a single article.
func (r *Runner) discoverOne(ctx context.Context, article Article) Result {
	id := article.ID
	if id == "" {
		// Derive a stable ID from content so reruns overwrite their own
		// journal entries
		id = fmt.Sprintf("art-%016x", uint64(core.IDFromContent(article.Title+"\n"+article.Content)))
	}

	resp, err := r.engine.Discover(ctx, &discovery.Request{
		ArticleID:      id,
		ArticleTitle:   article.Title,
		ArticleContent: article.Content,
	})
	if err != nil {
		r.logger.Warn("batch discovery failed",
			"articleID", id,
			"err", err)
		return Result{Article: article, Err: err}
	}
	return Result{Article: article, Response: resp}
}

// Release releases the worker pool.
// The runner should not be used after calling Release.
func (r *Runner) Release() {
	if r.pool != nil {
		r.pool.Release()
	}
}
