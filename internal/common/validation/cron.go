package validation

import (
	"strings"

	"github.com/robfig/cron/v3"
)

// IsCronExpression reports whether expr parses as a standard cron spec
// (minute hour dom month dow) or an @descriptor such as @daily.
func IsCronExpression(expr string) bool {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return false
	}
	_, err := cron.ParseStandard(expr)
	return err == nil
}
