package summary

import (
	"sort"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/krfl/sidequest/internal/model"
)

// DailySummary is the merged digest of every entry sharing one calendar day.
// Day is the start of that day as an instant; see Aggregate for the calendar.
type DailySummary struct {
	Day     time.Time
	Message string
}

// Capitalize uppercases the first rune and leaves the rest untouched.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// mergeMessages folds the next message into a running summary:
// "<summary>. <incoming>", both sides capitalized.
func mergeMessages(acc, next string) string {
	return Capitalize(acc) + ". " + Capitalize(next)
}

// Aggregate collapses entries into one summary per calendar day, sorted
// ascending by day. The grouping key is the UTC day of each timestamp; the
// caller decides how to render it. The CLI labels it in local time, so near
// UTC midnight a line can carry a date that differs from the entries' local
// date — kept for compatibility with the stored record.
func Aggregate(entries []model.Entry) []DailySummary {
	byDay := map[time.Time]int{}
	var days []DailySummary

	for _, e := range entries {
		day := e.Timestamp.UTC().Truncate(24 * time.Hour)
		if i, ok := byDay[day]; ok {
			days[i].Message = mergeMessages(days[i].Message, e.Message)
			continue
		}
		// The first entry of a day seeds the group with its message as typed.
		byDay[day] = len(days)
		days = append(days, DailySummary{Day: day, Message: e.Message})
	}

	sort.Slice(days, func(i, j int) bool { return days[i].Day.Before(days[j].Day) })
	return days
}
