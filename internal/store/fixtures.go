package store

import (
	"time"

	"pipeline-studio/internal/models"
)

// FixturePipelines returns the sample pipelines shown on a fresh start
func FixturePipelines() []models.Pipeline {
	at := func(hour, minute int) time.Time {
		return time.Date(2025, time.November, 20, hour, minute, 0, 0, time.UTC)
	}

	return []models.Pipeline{
		{
			ID:           "1",
			Name:         "Reddit Sentiment Analysis",
			DataSources:  []string{"Reddit"},
			Schedule:     "Daily at 9:00 AM",
			Output:       "Google Sheets",
			Status:       models.StatusActive,
			LastRun:      "2 hours ago",
			AnalysisType: models.AnalysisTypeAutoTagging,
			Analyses:     []models.AnalysisConfig{models.AutoTagAnalysis("", "", "")},
			ChartData: []models.ChartPoint{
				{Name: "Mon", Value: 45},
				{Name: "Tue", Value: 62},
				{Name: "Wed", Value: 58},
				{Name: "Thu", Value: 73},
				{Name: "Fri", Value: 81},
				{Name: "Sat", Value: 68},
				{Name: "Sun", Value: 55},
			},
		},
		{
			ID:           "2",
			Name:         "Customer Support Insights",
			DataSources:  []string{"Intercom", "Zendesk"},
			Schedule:     "Every 6 hours",
			Output:       "Slack",
			Status:       models.StatusActive,
			LastRun:      "30 minutes ago",
			AnalysisType: models.AnalysisTypeQueries,
			Analyses:     []models.AnalysisConfig{models.QueryAnalysis("How do users feel about the login experience?")},
			QueryResults: []models.QueryResult{
				{Response: "Users report login is smooth and fast, with 92% success rate on first attempt", Timestamp: at(14, 30)},
				{Response: "Top login complaint: Password reset emails taking too long (avg 5 minutes)", Timestamp: at(14, 0)},
				{Response: "Social login (Google/Apple) preferred by 68% of new users", Timestamp: at(13, 30)},
				{Response: "Mobile login experience rated 4.2/5, desktop rated 4.7/5", Timestamp: at(13, 0)},
				{Response: "15% of users struggle with two-factor authentication setup", Timestamp: at(12, 30)},
				{Response: "Biometric login adoption increased 40% since last quarter", Timestamp: at(12, 0)},
			},
		},
	}
}

// FixtureQueries returns the sample saved queries shown on a fresh start
func FixtureQueries() []models.SavedQuery {
	return []models.SavedQuery{
		{ID: 1, Query: "tell me about what was said about quality", Context: "New Recording 1443(A9)", Date: "Nov 14, 2025"},
		{ID: 2, Query: "create a sentiment chart from all recordings", Context: "All Data Sources", Date: "Nov 13, 2025"},
		{ID: 3, Query: "extract top 5 themes from customer interviews", Context: "Customer Interviews Q4", Date: "Nov 12, 2025"},
	}
}
