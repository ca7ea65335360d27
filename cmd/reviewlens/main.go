// Copyright 2025 Poiesic Systems
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
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	reviewlens "github.com/poiesic/reviewlens"
	"github.com/poiesic/reviewlens/ai"
	"github.com/poiesic/reviewlens/ingestion"
	"github.com/poiesic/reviewlens/reembed"
	"github.com/urfave/cli/v2"
)

func main() {
	dbFlag := &cli.StringFlag{
		Name:     "db",
		Aliases:  []string{"d"},
		Usage:    "Path to BadgerDB database directory",
		Required: true,
	}
	aiFlags := []cli.Flag{
		&cli.StringFlag{
			Name:  "host",
			Usage: "Model service host URL",
			Value: "http://localhost:11434/v1",
		},
		&cli.StringFlag{
			Name:  "embedding-model",
			Usage: "Embedding model name",
			Value: "embeddinggemma",
		},
		&cli.StringFlag{
			Name:  "classifier-model",
			Usage: "Sentiment classifier model name",
			Value: "qwen2.5:3b",
		},
	}

	app := &cli.App{
		Name:   "reviewlens",
		Usage:  "Context-aware customer review analysis",
		Before: setupLogger,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "add",
				Usage:  "Analyze and store a single review",
				Action: addCommand,
				Flags: append([]cli.Flag{
					dbFlag,
					&cli.StringFlag{
						Name:     "text",
						Usage:    "Review text",
						Required: true,
					},
					&cli.IntFlag{
						Name:     "rating",
						Usage:    "Star rating",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "date",
						Usage: "Review date (RFC3339, \"2006-01-02 15:04:05\", or \"2006-01-02\"; defaults to now)",
					},
				}, aiFlags...),
			},
			{
				Name:   "ingest",
				Usage:  "Load reviews from a JSON or CSV file and analyze them",
				Action: ingestCommand,
				Flags: append([]cli.Flag{
					dbFlag,
					&cli.StringFlag{
						Name:     "file",
						Aliases:  []string{"f"},
						Usage:    "Path to reviews file (.json or .csv)",
						Required: true,
					},
				}, aiFlags...),
			},
			{
				Name:   "report",
				Usage:  "Print the weekly summary report",
				Action: reportCommand,
				Flags:  []cli.Flag{dbFlag},
			},
			{
				Name:   "trends",
				Usage:  "Print per-date average sentiment",
				Action: trendsCommand,
				Flags:  []cli.Flag{dbFlag},
			},
			{
				Name:   "complaints",
				Usage:  "List reviews flagged as complaints",
				Action: complaintsCommand,
				Flags:  []cli.Flag{dbFlag},
			},
			{
				Name:   "themes",
				Usage:  "Print the most frequent review phrases",
				Action: themesCommand,
				Flags: []cli.Flag{
					dbFlag,
					&cli.IntFlag{
						Name:  "limit",
						Aliases: []string{"n"},
						Usage: "Maximum number of themes",
						Value: 5,
					},
				},
			},
			{
				Name:   "categories",
				Usage:  "Partition reviews into topic buckets",
				Action: categoriesCommand,
				Flags:  []cli.Flag{dbFlag},
			},
			{
				Name:   "search",
				Usage:  "Find stored reviews similar to a query",
				Action: searchCommand,
				Flags: append([]cli.Flag{
					dbFlag,
					&cli.IntFlag{
						Name:  "max-hits",
						Usage: "Maximum number of results",
						Value: 5,
					},
				}, aiFlags...),
			},
			{
				Name:   "reembed",
				Usage:  "Regenerate all index vectors with a new embedding model",
				Action: reembedCommand,
				Flags: append([]cli.Flag{
					dbFlag,
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of entries to embed per model call",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Number of batches embedded concurrently",
						Value: 2,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N entries",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts for failed operations",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 1 * time.Second,
					},
				}, aiFlags...),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// aiConfigFromFlags builds the AI configuration from the model flags.
// Read-only commands register only --db, so undefined flags come back
// empty; those keep the defaults instead of blanking the config.
func aiConfigFromFlags(c *cli.Context) *ai.Config {
	var opts []ai.ConfigOption
	if host := c.String("host"); host != "" {
		opts = append(opts, ai.WithHost(host))
	}
	if model := c.String("embedding-model"); model != "" {
		opts = append(opts, ai.WithEmbeddingModel(model))
	}
	if model := c.String("classifier-model"); model != "" {
		opts = append(opts, ai.WithClassifierModel(model))
	}
	return ai.NewConfig(opts...)
}

// openService builds a Service from the common CLI flags.
func openService(c *cli.Context) (*reviewlens.Service, error) {
	aiConfig := aiConfigFromFlags(c)
	if err := aiConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}

	svc, err := reviewlens.NewService(c.String("db"), reviewlens.WithAIConfig(aiConfig))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return svc, nil
}

func addCommand(c *cli.Context) error {
	svc, err := openService(c)
	if err != nil {
		return err
	}
	defer svc.Close()

	date := time.Now().UTC()
	if dateStr := c.String("date"); dateStr != "" {
		rating := c.Int("rating")
		parsed, err := ingestion.Parse(ingestion.ReviewInput{
			Text:   c.String("text"),
			Rating: &rating,
			Date:   dateStr,
		})
		if err != nil {
			return err
		}
		date = parsed.Date
	}

	review, err := svc.AddReview(context.Background(), c.String("text"), c.Int("rating"), date)
	if err != nil {
		return fmt.Errorf("failed to analyze review: %w", err)
	}

	fmt.Printf("Stored review %d: sentiment=%s score=%.2f complaint=%v\n",
		review.Id, review.SentimentLabel, review.SentimentScore, review.IsComplaint)
	return nil
}

func ingestCommand(c *cli.Context) error {
	svc, err := openService(c)
	if err != nil {
		return err
	}
	defer svc.Close()

	path := c.String("file")
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open reviews file: %w", err)
	}
	defer file.Close()

	var inputs []ingestion.ReviewInput
	switch {
	case strings.HasSuffix(path, ".json"):
		inputs, err = ingestion.LoadJSON(file)
	case strings.HasSuffix(path, ".csv"):
		inputs, err = ingestion.LoadCSV(file)
	default:
		return fmt.Errorf("unsupported file type: %s (want .json or .csv)", path)
	}
	if err != nil {
		return err
	}

	ingestor, err := svc.NewIngestor()
	if err != nil {
		return err
	}

	stored, err := ingestor.Ingest(context.Background(), inputs)
	if err != nil {
		return fmt.Errorf("ingestion failed after %d reviews: %w", len(stored), err)
	}

	fmt.Printf("Ingested %d reviews\n", len(stored))
	return nil
}

func reportCommand(c *cli.Context) error {
	svc, err := openService(c)
	if err != nil {
		return err
	}
	defer svc.Close()

	report, err := svc.WeeklyReport(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("Weekly report (%s – %s)\n",
		report.PeriodStart.Format("2006-01-02"), report.GeneratedAt.Format("2006-01-02"))
	fmt.Printf("  Reviews:       %d\n", report.Total)
	fmt.Printf("  Avg sentiment: %.3f\n", report.AvgSentiment)
	fmt.Printf("  Positive:      %d\n", report.PositiveCount)
	fmt.Printf("  Negative:      %d\n", report.NegativeCount)
	fmt.Printf("  Complaints:    %d\n", len(report.ComplaintPreviews))
	for _, preview := range report.ComplaintPreviews {
		fmt.Printf("    - %s\n", preview)
	}
	return nil
}

func trendsCommand(c *cli.Context) error {
	svc, err := openService(c)
	if err != nil {
		return err
	}
	defer svc.Close()

	points, err := svc.SentimentTrends(context.Background())
	if err != nil {
		return err
	}
	if len(points) == 0 {
		fmt.Println("No reviews stored")
		return nil
	}

	for _, point := range points {
		fmt.Printf("%s  %+.3f\n", point.Date, point.AvgScore)
	}
	return nil
}

func complaintsCommand(c *cli.Context) error {
	svc, err := openService(c)
	if err != nil {
		return err
	}
	defer svc.Close()

	complaints, err := svc.Complaints(context.Background())
	if err != nil {
		return err
	}
	if len(complaints) == 0 {
		fmt.Println("No complaints found")
		return nil
	}

	for _, review := range complaints {
		fmt.Printf("[%s] (%d stars) %s\n",
			review.Date.Format("2006-01-02"), review.Rating, review.Text)
	}
	return nil
}

func themesCommand(c *cli.Context) error {
	svc, err := openService(c)
	if err != nil {
		return err
	}
	defer svc.Close()

	themes, err := svc.TopThemes(context.Background(), c.Int("limit"))
	if err != nil {
		return err
	}
	if len(themes) == 0 {
		fmt.Println("No recurring themes found")
		return nil
	}

	for _, theme := range themes {
		fmt.Printf("%4d  %s\n", theme.Count, theme.Phrase)
	}
	return nil
}

func categoriesCommand(c *cli.Context) error {
	svc, err := openService(c)
	if err != nil {
		return err
	}
	defer svc.Close()

	buckets, err := svc.CategorizeReviews(context.Background())
	if err != nil {
		return err
	}

	for _, category := range []string{"service", "food", "ambiance", "price", "other"} {
		reviews := buckets[category]
		fmt.Printf("%s (%d)\n", category, len(reviews))
		for _, review := range reviews {
			fmt.Printf("  - %s\n", review.Text)
		}
	}
	return nil
}

func searchCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("usage: reviewlens search [flags] <query>")
	}
	query := strings.Join(c.Args().Slice(), " ")

	svc, err := openService(c)
	if err != nil {
		return err
	}
	defer svc.Close()

	results, err := svc.SimilarReviews(context.Background(), query, c.Int("max-hits"))
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Println("No similar reviews found")
		return nil
	}

	for _, result := range results {
		fmt.Printf("%.3f  %s\n", result.Score, result.Entry.Document)
	}
	return nil
}

func reembedCommand(c *cli.Context) error {
	svc, err := openService(c)
	if err != nil {
		return err
	}
	defer svc.Close()

	config := &reembed.Config{
		BatchSize:      c.Int("batch-size"),
		PoolSize:       c.Int("workers"),
		ReportInterval: c.Int("report-interval"),
		MaxRetries:     c.Int("max-retries"),
		RetryDelay:     c.Duration("retry-delay"),
	}
	if config.BatchSize <= 0 {
		return fmt.Errorf("batch-size must be greater than 0")
	}
	if config.PoolSize <= 0 {
		return fmt.Errorf("workers must be greater than 0")
	}
	if config.MaxRetries <= 0 {
		return fmt.Errorf("max-retries must be greater than 0")
	}

	fmt.Fprintf(os.Stderr, "Database: %s\n", c.String("db"))
	fmt.Fprintf(os.Stderr, "Embedding model: %s\n\n", c.String("embedding-model"))

	reembedder := svc.NewReembedder(config, os.Stderr)
	if err := reembedder.Run(context.Background()); err != nil {
		return fmt.Errorf("re-embedding failed: %w", err)
	}
	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

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

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
