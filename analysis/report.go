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


package analysis

import (
	"sort"
	"time"
	"unicode/utf8"

	"github.com/poiesic/reviewlens/core"
)

// complaintPreviewLen caps the text excerpt carried in report complaint lists.
const complaintPreviewLen = 100

// TrendDateFormat is the layout for trend bucket keys.
const TrendDateFormat = "2006-01-02"

// WeeklyReport aggregates the reviews written in the seven days before its
// generation time.
type WeeklyReport struct {
	GeneratedAt       time.Time
	PeriodStart       time.Time
	Total             int
	AvgSentiment      float64
	PositiveCount     int
	NegativeCount     int
	ComplaintPreviews []string
}

// TrendPoint is the average sentiment score of all reviews written on one
// calendar date.
type TrendPoint struct {
	Date     string // TrendDateFormat
	AvgScore float64
}

// Preview truncates text to the report excerpt length, counting characters
// rather than bytes so a multi-byte rune is never split.
func Preview(text string) string {
	if utf8.RuneCountInString(text) <= complaintPreviewLen {
		return text
	}
	runes := []rune(text)
	return string(runes[:complaintPreviewLen])
}

// BuildWeeklyReport summarizes reviews dated within the week ending at now.
// Callers pass only the reviews for the period; an empty slice produces a
// zero-count report, not an error.
func BuildWeeklyReport(reviews []*core.Review, now time.Time) *WeeklyReport {
	report := &WeeklyReport{
		GeneratedAt:       now,
		PeriodStart:       now.AddDate(0, 0, -7),
		Total:             len(reviews),
		ComplaintPreviews: []string{},
	}

	var scoreSum float64
	for _, review := range reviews {
		scoreSum += review.SentimentScore
		switch review.SentimentLabel {
		case core.SentimentPositive:
			report.PositiveCount++
		case core.SentimentNegative:
			report.NegativeCount++
		}
		if review.IsComplaint {
			report.ComplaintPreviews = append(report.ComplaintPreviews, Preview(review.Text))
		}
	}
	if report.Total > 0 {
		report.AvgSentiment = scoreSum / float64(report.Total)
	}
	return report
}

// SentimentTrends buckets reviews by calendar date and averages their scores.
// Points are ordered by date ascending; an empty input yields an empty slice.
func SentimentTrends(reviews []*core.Review) []TrendPoint {
	sums := map[string]float64{}
	counts := map[string]int{}
	for _, review := range reviews {
		date := review.Date.Format(TrendDateFormat)
		sums[date] += review.SentimentScore
		counts[date]++
	}

	points := make([]TrendPoint, 0, len(sums))
	for date, sum := range sums {
		points = append(points, TrendPoint{Date: date, AvgScore: sum / float64(counts[date])})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})
	return points
}

// Complaints filters reviews flagged as complaints, preserving order.
func Complaints(reviews []*core.Review) []*core.Review {
	results := []*core.Review{}
	for _, review := range reviews {
		if review.IsComplaint {
			results = append(results, review)
		}
	}
	return results
}
