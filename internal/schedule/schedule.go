// Package schedule maps the builder's schedule choices to the display strings
// stored on pipelines, and back. Schedules are labels only; the cron spec is
// used to tell the user when a run would next fall, nothing executes.
package schedule

import (
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"pipeline-studio/internal/common/utils"
	"pipeline-studio/internal/common/validation"
)

// Kind enumerates the schedule options offered by the builder
type Kind string

const (
	Manual      Kind = "manual"
	Hourly      Kind = "hourly"
	Every6Hours Kind = "6hours"
	DailyAt9AM  Kind = "daily"
	Custom      Kind = "custom"
)

const (
	displayManual      = "Manual"
	displayHourly      = "Every hour"
	displayEvery6Hours = "Every 6 hours"
	displayDailyAt9AM  = "Daily at 9:00 AM"
)

// Kinds lists every kind in the order the builder presents them
var Kinds = []Kind{Manual, Hourly, Every6Hours, DailyAt9AM, Custom}

// ParseKind accepts a kind name, case-insensitively
func ParseKind(s string) (Kind, bool) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds {
		if k == known {
			return k, true
		}
	}
	return "", false
}

// Choice is a schedule selection. Text is only meaningful for Custom and may be empty.
type Choice struct {
	Kind Kind   `json:"kind" enums:"manual,hourly,6hours,daily,custom"`
	Text string `json:"text,omitempty" example:"Every Monday at noon"`
}

// Display resolves the choice to the string stored on a pipeline
func (c Choice) Display() string {
	switch c.Kind {
	case Hourly:
		return displayHourly
	case Every6Hours:
		return displayEvery6Hours
	case DailyAt9AM:
		return displayDailyAt9AM
	case Custom:
		return c.Text
	default:
		return displayManual
	}
}

// Parse turns a stored display string back into a choice.
// Strings that are not one of the fixed options become Custom.
func Parse(display string) Choice {
	switch display {
	case displayManual:
		return Choice{Kind: Manual}
	case displayHourly:
		return Choice{Kind: Hourly}
	case displayEvery6Hours:
		return Choice{Kind: Every6Hours}
	case displayDailyAt9AM:
		return Choice{Kind: DailyAt9AM}
	default:
		return Choice{Kind: Custom, Text: display}
	}
}

// CronSpec returns the cron spec behind the choice. Manual has none, and custom
// text has one only when it is itself a cron expression.
func (c Choice) CronSpec() (string, bool) {
	switch c.Kind {
	case Hourly:
		return "@hourly", true
	case Every6Hours:
		return "0 */6 * * *", true
	case DailyAt9AM:
		return "0 9 * * *", true
	case Custom:
		if validation.IsCronExpression(c.Text) {
			return strings.TrimSpace(c.Text), true
		}
	}
	return "", false
}

// NextRun returns the first fire time after from for a stored display string
func NextRun(display string, from time.Time) (time.Time, bool) {
	spec, ok := Parse(display).CronSpec()
	if !ok {
		return time.Time{}, false
	}
	sched, err := cron.ParseStandard(spec)
	if err != nil {
		return time.Time{}, false
	}
	return sched.Next(from), true
}

// NextRunLabel renders NextRun relative to from, e.g. "in 2.5h". Empty when there is no next run.
func NextRunLabel(display string, from time.Time) string {
	next, ok := NextRun(display, from)
	if !ok {
		return ""
	}
	return "in " + utils.FormatDuration(next.Sub(from))
}
