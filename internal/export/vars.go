package export

import (
	"strings"
	"time"

	"autopostr/internal/model"
)

// ExpandVars performs simple placeholder substitutions for template strings
// used in config-provided text fields (e.g., the export title).
//
// Supported variables:
// - {.CurrentDate} => formatted as YYYY-MM-DD (UTC)
// - {.Tone} => the caption register, capitalized
func ExpandVars(s string, now time.Time, tone model.ToneType) string {
	if strings.TrimSpace(s) == "" {
		return s
	}
	t := string(tone)
	if t != "" {
		t = strings.ToUpper(t[:1]) + t[1:]
	}
	return strings.NewReplacer(
		"{.CurrentDate}", now.UTC().Format("2006-01-02"),
		"{.Tone}", t,
	).Replace(s)
}
