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


// Seeder loads sample restaurant reviews into a reviewlens database and
// prints the resulting weekly report. Useful for demos and manual testing
// against live models.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	reviewlens "github.com/poiesic/reviewlens"
	"github.com/poiesic/reviewlens/ai"
	"github.com/poiesic/reviewlens/ingestion"
)

type sample struct {
	text    string
	rating  int
	daysAgo int
}

var samples = []sample{
	{"The pasta was delicious and our waiter was incredibly friendly.", 5, 1},
	{"Great atmosphere, but the food took almost an hour to arrive.", 3, 1},
	{"Terrible experience. Cold soup, rude staff, never coming back.", 1, 2},
	{"Best pizza in town, hands down. The crust is perfect every time.", 5, 2},
	{"Way too expensive for such small portions. Not worth the price.", 2, 2},
	{"Lovely cozy spot for a date night. The lighting is just right.", 4, 3},
	{"The menu has great variety and the dessert was amazing.", 5, 3},
	{"Our server forgot two of our dishes. Poor service overall.", 2, 3},
	{"Wonderful brunch! The staff remembered us from last time.", 5, 4},
	{"The music was so loud we couldn't hold a conversation.", 2, 4},
	{"Decent value for the lunch menu, nothing special though.", 3, 4},
	{"Horrible wait times and the manager was dismissive. Avoid.", 1, 5},
	{"Fresh ingredients, creative dishes, attentive service. A gem.", 5, 5},
	{"The ambiance is nice but the flavor was disappointing.", 2, 5},
	{"Friendly staff and excellent wine selection. We'll be back.", 4, 6},
	{"Overpriced drinks and the appetizer was a complete waste.", 1, 6},
	{"Solid neighborhood spot. The pizza and pasta never miss.", 4, 6},
	{"Waited forty minutes past our reservation. Unacceptable.", 1, 8},
	{"A quiet, cozy dining room with fantastic desserts.", 5, 9},
	{"The taste was fine but the service left much to be desired.", 3, 10},
}

var (
	dbPath   = flag.String("db", "./reviews_db", "path to BadgerDB database directory")
	srcFile  = flag.String("src", "", "optional JSON or CSV file of reviews to load instead of built-in samples")
	hostFlag = flag.String("host", "http://localhost:11434/v1", "model service host URL")
)

func init() {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

func builtinInputs() []ingestion.ReviewInput {
	now := time.Now().UTC()
	inputs := make([]ingestion.ReviewInput, len(samples))
	for i, s := range samples {
		rating := s.rating
		inputs[i] = ingestion.ReviewInput{
			Text:   s.text,
			Rating: &rating,
			Date:   now.AddDate(0, 0, -s.daysAgo).Format(time.RFC3339),
		}
	}
	return inputs
}

func fileInputs(path string) ([]ingestion.ReviewInput, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if len(path) > 4 && path[len(path)-4:] == ".csv" {
		return ingestion.LoadCSV(f)
	}
	return ingestion.LoadJSON(f)
}

func main() {
	aiConfig := ai.NewConfig(ai.WithHost(*hostFlag))
	svc, err := reviewlens.NewService(*dbPath, reviewlens.WithAIConfig(aiConfig))
	if err != nil {
		panic(err)
	}
	defer svc.Close()

	var inputs []ingestion.ReviewInput
	if *srcFile != "" {
		inputs, err = fileInputs(*srcFile)
		if err != nil {
			panic(err)
		}
	} else {
		inputs = builtinInputs()
	}

	ingestor, err := svc.NewIngestor()
	if err != nil {
		panic(err)
	}

	ctx := context.Background()
	stored, err := ingestor.Ingest(ctx, inputs)
	if err != nil {
		slog.Error("ingestion failed", "stored", len(stored), "err", err)
		os.Exit(1)
	}
	slog.Info("seeded reviews", "count", len(stored))

	report, err := svc.WeeklyReport(ctx)
	if err != nil {
		panic(err)
	}

	fmt.Printf("\nWeekly report (%s – %s)\n",
		report.PeriodStart.Format("2006-01-02"), report.GeneratedAt.Format("2006-01-02"))
	fmt.Printf("  Reviews:       %d\n", report.Total)
	fmt.Printf("  Avg sentiment: %.3f\n", report.AvgSentiment)
	fmt.Printf("  Positive:      %d\n", report.PositiveCount)
	fmt.Printf("  Negative:      %d\n", report.NegativeCount)
	fmt.Printf("  Complaints:    %d\n", len(report.ComplaintPreviews))
	for _, preview := range report.ComplaintPreviews {
		fmt.Printf("    - %s\n", preview)
	}
}
