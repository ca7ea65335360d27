package analysis

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/poiesic/reviewlens/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildWeeklyReport(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	reviews := []*core.Review{
		{Text: "Loved it", SentimentLabel: core.SentimentPositive, SentimentScore: 0.9},
		{Text: "Terrible service", SentimentLabel: core.SentimentNegative, SentimentScore: -0.8, IsComplaint: true},
		{Text: "It was fine", SentimentLabel: core.SentimentNeutral, SentimentScore: 0},
	}

	report := BuildWeeklyReport(reviews, now)

	assert.Equal(t, now, report.GeneratedAt)
	assert.Equal(t, now.AddDate(0, 0, -7), report.PeriodStart)
	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 1, report.PositiveCount)
	assert.Equal(t, 1, report.NegativeCount)
	assert.InDelta(t, (0.9-0.8)/3.0, report.AvgSentiment, 1e-9)
	require.Len(t, report.ComplaintPreviews, 1)
	assert.Equal(t, "Terrible service", report.ComplaintPreviews[0])
}

func TestBuildWeeklyReportEmpty(t *testing.T) {
	report := BuildWeeklyReport(nil, time.Now().UTC())

	assert.Equal(t, 0, report.Total)
	assert.Equal(t, 0.0, report.AvgSentiment)
	assert.Empty(t, report.ComplaintPreviews)
}

func TestComplaintPreviewTruncation(t *testing.T) {
	long := strings.Repeat("x", 250)
	assert.Len(t, Preview(long), complaintPreviewLen)
	assert.Equal(t, "short", Preview("short"))

	// Truncation counts characters, never splitting a multi-byte rune.
	accented := strings.Repeat("é", 250)
	preview := Preview(accented)
	assert.True(t, utf8.ValidString(preview))
	assert.Equal(t, complaintPreviewLen, utf8.RuneCountInString(preview))
	assert.Equal(t, strings.Repeat("é", complaintPreviewLen), preview)
}

func TestSentimentTrends(t *testing.T) {
	day1 := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	reviews := []*core.Review{
		{Date: day1, SentimentScore: 1.0},
		{Date: day1.Add(5 * time.Hour), SentimentScore: 0.0},
		{Date: day2, SentimentScore: -0.5},
	}

	points := SentimentTrends(reviews)

	require.Len(t, points, 2)
	assert.Equal(t, "2025-06-01", points[0].Date)
	assert.InDelta(t, 0.5, points[0].AvgScore, 1e-9)
	assert.Equal(t, "2025-06-02", points[1].Date)
	assert.InDelta(t, -0.5, points[1].AvgScore, 1e-9)
}

func TestSentimentTrendsEmpty(t *testing.T) {
	assert.Empty(t, SentimentTrends(nil))
}

func TestComplaintsFilter(t *testing.T) {
	reviews := []*core.Review{
		{Id: 1, IsComplaint: true},
		{Id: 2},
		{Id: 3, IsComplaint: true},
	}

	complaints := Complaints(reviews)
	require.Len(t, complaints, 2)
	assert.Equal(t, core.ID(1), complaints[0].Id)
	assert.Equal(t, core.ID(3), complaints[1].Id)
}
