package filter

import (
	"fmt"
	"time"

	"github.com/krfl/sidequest/internal/model"
)

const (
	layoutDateTime = "2006-01-02 15:04"
	layoutDate     = "2006-01-02"
)

// ParseError reports a bound that matches neither accepted layout, or a
// well-formed bound naming a local time that does not exist.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid date %q: %s", e.Input, e.Reason)
	}
	return fmt.Sprintf("invalid date %q: expected YYYY-MM-DD HH:MM or YYYY-MM-DD", e.Input)
}

// AmbiguousTimeError reports a wall-clock time that maps to two instants
// because the local clock was set back across it. Both candidates are named
// rather than picking one.
type AmbiguousTimeError struct {
	Input  string
	First  time.Time
	Second time.Time
}

func (e *AmbiguousTimeError) Error() string {
	return fmt.Sprintf("ambiguous date %q: could be %s or %s",
		e.Input, e.First.Format(time.RFC3339), e.Second.Format(time.RFC3339))
}

// ParseBound converts a user-typed bound into a UTC instant. The wall clock
// is interpreted in loc; a date without a time means midnight.
func ParseBound(input string, loc *time.Location) (time.Time, error) {
	wall, err := time.Parse(layoutDateTime, input)
	if err != nil {
		wall, err = time.Parse(layoutDate, input)
	}
	if err != nil {
		return time.Time{}, &ParseError{Input: input}
	}
	return resolveLocal(input, wall, loc)
}

// resolveLocal finds every instant whose wall clock in loc matches the parsed
// components. Zero matches means the clock skipped over the time; two means
// the clock was set back across it.
func resolveLocal(input string, wall time.Time, loc *time.Location) (time.Time, error) {
	guess := time.Date(wall.Year(), wall.Month(), wall.Day(), wall.Hour(), wall.Minute(), 0, 0, loc)

	// The zone offsets a day before and after the guess bracket any single
	// transition near it.
	_, offBefore := guess.Add(-24 * time.Hour).Zone()
	_, offAfter := guess.Add(24 * time.Hour).Zone()

	var candidates []time.Time
	for _, offset := range []int{offBefore, offAfter} {
		cand := time.Date(wall.Year(), wall.Month(), wall.Day(), wall.Hour(), wall.Minute(), 0, 0,
			time.FixedZone("", offset))
		if sameWall(cand.In(loc), wall) {
			candidates = appendInstant(candidates, cand)
		}
	}

	switch len(candidates) {
	case 1:
		return candidates[0].UTC(), nil
	case 0:
		return time.Time{}, &ParseError{Input: input, Reason: "local time does not exist (clock skipped forward)"}
	default:
		return time.Time{}, &AmbiguousTimeError{
			Input:  input,
			First:  candidates[0].UTC(),
			Second: candidates[1].UTC(),
		}
	}
}

func sameWall(t, wall time.Time) bool {
	return t.Year() == wall.Year() && t.Month() == wall.Month() && t.Day() == wall.Day() &&
		t.Hour() == wall.Hour() && t.Minute() == wall.Minute()
}

func appendInstant(list []time.Time, t time.Time) []time.Time {
	for _, have := range list {
		if have.Equal(t) {
			return list
		}
	}
	return append(list, t)
}

// Range is an inclusive [From, To] instant window; a nil side is unbounded.
type Range struct {
	From *time.Time
	To   *time.Time
}

// ParseRange builds a Range from optional flag values. Empty strings leave
// the corresponding side unbounded; any bad bound fails the whole range.
func ParseRange(from, to string, loc *time.Location) (Range, error) {
	var r Range
	if from != "" {
		t, err := ParseBound(from, loc)
		if err != nil {
			return Range{}, err
		}
		r.From = &t
	}
	if to != "" {
		t, err := ParseBound(to, loc)
		if err != nil {
			return Range{}, err
		}
		r.To = &t
	}
	return r, nil
}

// Apply keeps the entries whose timestamps fall inside the range, preserving
// store order.
func (r Range) Apply(entries []model.Entry) []model.Entry {
	var kept []model.Entry
	for _, e := range entries {
		if r.From != nil && e.Timestamp.Before(*r.From) {
			continue
		}
		if r.To != nil && e.Timestamp.After(*r.To) {
			continue
		}
		kept = append(kept, e)
	}
	return kept
}
