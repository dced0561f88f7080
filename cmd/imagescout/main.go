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


package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/pressidio/imagescout"
	"github.com/pressidio/imagescout/ai"
	"github.com/pressidio/imagescout/api"
	"github.com/pressidio/imagescout/batch"
	"github.com/pressidio/imagescout/discovery"
	"github.com/pressidio/imagescout/storage/badger"
	"github.com/urfave/cli/v2"
)

// aiFlags are shared by every command that talks to the model host.
var aiFlags = []cli.Flag{
	&cli.StringFlag{
		Name:  "host",
		Usage: "OpenAI-compatible host URL for search and generation",
		Value: "http://localhost:11434/v1",
	},
	&cli.StringFlag{
		Name:  "search-model",
		Usage: "Model used for image search",
		Value: "qwen2.5:3b",
	},
	&cli.StringFlag{
		Name:  "generation-model",
		Usage: "Model used for image generation",
		Value: "qwen2.5:3b",
	},
	&cli.StringFlag{
		Name:    "api-token",
		Usage:   "API token for the model host",
		EnvVars: []string{"IMAGESCOUT_API_TOKEN"},
		Value:   "none",
	},
	&cli.DurationFlag{
		Name:  "ai-timeout",
		Usage: "Per-call timeout for model requests",
		Value: 30 * time.Second,
	},
	&cli.StringFlag{
		Name:    "journal",
		Aliases: []string{"j"},
		Usage:   "Path to BadgerDB journal directory (journaling disabled when empty)",
	},
}

func main() {
	app := &cli.App{
		Name:  "imagescout",
		Usage: "Relevance-scored image discovery for articles",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "discover",
				Usage:  "Find or generate an image for a single article",
				Action: discoverCommand,
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:     "id",
						Usage:    "Article identifier",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "title",
						Usage:    "Article title",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "content",
						Usage: "Article body text (reads stdin when omitted)",
					},
					&cli.StringFlag{
						Name:  "ai-prompt",
						Usage: "Custom prompt for the generative stage",
					},
					&cli.BoolFlag{
						Name:  "force-regenerate",
						Usage: "Skip search stages and generate directly",
					},
				}, aiFlags...),
			},
			{
				Name:   "batch",
				Usage:  "Discover images for a JSON file of articles",
				Action: batchCommand,
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:     "input",
						Aliases:  []string{"i"},
						Usage:    "Path to JSON array of articles",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Number of concurrent discovery workers",
						Value: 2,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N articles",
						Value: 1,
					},
				}, aiFlags...),
			},
			{
				Name:   "serve",
				Usage:  "Run the discovery HTTP API",
				Action: serveCommand,
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:  "addr",
						Usage: "Listen address",
						Value: ":8080",
					},
					&cli.DurationFlag{
						Name:  "request-timeout",
						Usage: "Per-request discovery timeout",
						Value: 120 * time.Second,
					},
				}, aiFlags...),
			},
			{
				Name:   "journal",
				Usage:  "Show recent discovery journal entries",
				Action: journalCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "journal",
						Aliases:  []string{"j"},
						Usage:    "Path to BadgerDB journal directory",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Number of entries to show",
						Value: 20,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// newScout assembles a Scout from the shared AI flags.
func newScout(c *cli.Context) (*imagescout.Scout, error) {
	cfg := ai.NewConfig(
		ai.WithHost(c.String("host")),
		ai.WithSearchModel(c.String("search-model")),
		ai.WithGenerationModel(c.String("generation-model")),
		ai.WithAPIToken(c.String("api-token")),
		ai.WithTimeout(c.Duration("ai-timeout")),
	)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}

	opts := []imagescout.ScoutOption{
		imagescout.WithAIConfig(cfg),
		imagescout.WithEngineOptions(
			discovery.WithSearchModelHint(c.String("search-model")),
		),
	}
	if journalPath := c.String("journal"); journalPath != "" {
		opts = append(opts, imagescout.WithJournalPath(journalPath))
	}

	return imagescout.New(opts...)
}

func discoverCommand(c *cli.Context) error {
	ctx := context.Background()

	content := c.String("content")
	if content == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading article content from stdin: %w", err)
		}
		content = string(data)
	}

	scout, err := newScout(c)
	if err != nil {
		return err
	}
	defer scout.Close()

	resp, err := scout.Engine().Discover(ctx, &discovery.Request{
		ArticleID:       c.String("id"),
		ArticleTitle:    c.String("title"),
		ArticleContent:  content,
		AiPrompt:        c.String("ai-prompt"),
		ForceRegenerate: c.Bool("force-regenerate"),
	})
	if err != nil {
		return fmt.Errorf("discovery failed: %w", err)
	}

	return printJSON(resp)
}

func batchCommand(c *cli.Context) error {
	ctx := context.Background()

	file, err := os.Open(c.String("input"))
	if err != nil {
		return fmt.Errorf("opening input file: %w", err)
	}
	defer file.Close()

	articles, err := batch.LoadArticles(file)
	if err != nil {
		return err
	}
	if len(articles) == 0 {
		return fmt.Errorf("input file contains no articles")
	}

	scout, err := newScout(c)
	if err != nil {
		return err
	}
	defer scout.Close()

	reportInterval := c.Int("report-interval")
	if reportInterval < 1 {
		return fmt.Errorf("report-interval must be greater than 0")
	}
	tracker := batch.NewProgressTracker(os.Stderr, len(articles), reportInterval)

	runner, err := scout.NewBatchRunner(
		batch.WithPoolSize(c.Int("workers")),
		batch.WithProgress(tracker),
	)
	if err != nil {
		return err
	}
	defer runner.Release()

	fmt.Fprintf(os.Stderr, "Articles: %d\n", len(articles))
	fmt.Fprintf(os.Stderr, "Workers: %d\n\n", c.Int("workers"))

	results, err := runner.Run(ctx, articles)
	if err != nil {
		return err
	}

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
	}
	fmt.Fprintf(os.Stderr, "Completed: %d succeeded, %d failed in %s\n",
		len(results)-failed, failed, tracker.Elapsed().Round(time.Millisecond))

	out := make([]batchOutput, len(results))
	for i, res := range results {
		out[i] = batchOutput{
			ArticleID: res.Article.ID,
			Title:     res.Article.Title,
			Response:  res.Response,
		}
		if res.Err != nil {
			out[i].Error = res.Err.Error()
		}
	}
	return printJSON(out)
}

// batchOutput is the JSON shape of one batch result on stdout.
type batchOutput struct {
	ArticleID string              `json:"articleId"`
	Title     string              `json:"title"`
	Error     string              `json:"error,omitempty"`
	Response  *discovery.Response `json:"response,omitempty"`
}

func serveCommand(c *cli.Context) error {
	scout, err := newScout(c)
	if err != nil {
		return err
	}
	defer scout.Close()

	server, err := scout.NewAPIServer(
		api.WithAddr(c.String("addr")),
		api.WithRequestTimeout(c.Duration("request-timeout")),
	)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	return server.Run(ctx)
}

func journalCommand(c *cli.Context) error {
	ctx := context.Background()

	limit := c.Int("limit")
	if limit < 1 {
		return fmt.Errorf("limit must be greater than 0")
	}

	journal, err := badger.NewJournal(c.String("journal"))
	if err != nil {
		return fmt.Errorf("opening journal: %w", err)
	}
	defer journal.Close()

	records, err := journal.RecentRecords(ctx, limit)
	if err != nil {
		return fmt.Errorf("reading journal: %w", err)
	}

	for _, rec := range records {
		fmt.Printf("%s  %-14s  score=%-3d  %s  %s\n",
			rec.InsertedAt.Format(time.RFC3339),
			rec.Level.String(),
			rec.RelevanceScore,
			rec.ArticleID,
			rec.ImageURL)
	}
	if len(records) == 0 {
		fmt.Println("journal is empty")
	}

	return nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
