// Package progress computes habit statistics from per-day completion records.
//
// A day with no record is unmarked. Unmarked days never extend a streak and
// count as incomplete when they fall inside the scored range.
package progress

import (
	"math"
	"slices"
	"time"
)

// DateLayout is the storage and wire format of calendar days.
const DateLayout = "2006-01-02"

// Record is one marked calendar day.
type Record struct {
	Date time.Time
	Done bool
}

// Stats is the triple returned to clients after every change.
type Stats struct {
	CurrentStreak int `json:"current_streak"`
	BestStreak    int `json:"best_streak"`
	Score         int `json:"score"`
}

// Day truncates t to its calendar date, keeping the wall-clock date of t's
// own location. The result is midnight UTC so dates compare by value.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a YYYY-MM-DD string into a Day value.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return Day(t), nil
}

// daysBetween returns the number of calendar days from a to b.
func daysBetween(a, b time.Time) int {
	return int(math.Round(Day(b).Sub(Day(a)).Hours() / 24))
}

// normalize returns a date-sorted copy of records with one entry per day.
// On duplicate dates the later entry in the input wins.
func normalize(records []Record) []Record {
	byDay := make(map[time.Time]int, len(records))
	out := make([]Record, 0, len(records))
	for _, r := range records {
		r.Date = Day(r.Date)
		if i, ok := byDay[r.Date]; ok {
			out[i] = r
			continue
		}
		byDay[r.Date] = len(out)
		out = append(out, r)
	}
	slices.SortFunc(out, func(a, b Record) int {
		return a.Date.Compare(b.Date)
	})
	return out
}

// Score is the percentage of done days in the inclusive range between the
// first and last record, rounded to the nearest integer. No records is 0.
func Score(records []Record) int {
	return score(normalize(records))
}

func score(sorted []Record) int {
	if len(sorted) == 0 {
		return 0
	}
	total := daysBetween(sorted[0].Date, sorted[len(sorted)-1].Date) + 1
	done := 0
	for _, r := range sorted {
		if r.Done {
			done++
		}
	}
	return int(math.Round(float64(done) / float64(total) * 100))
}

// CurrentStreak counts consecutive done days ending at the latest record.
// It is 0 when the latest record is not done.
func CurrentStreak(records []Record) int {
	return currentStreak(normalize(records))
}

func currentStreak(sorted []Record) int {
	streak := 0
	for i := len(sorted) - 1; i >= 0; i-- {
		r := sorted[i]
		if !r.Done {
			break
		}
		if i < len(sorted)-1 && daysBetween(r.Date, sorted[i+1].Date) != 1 {
			break
		}
		streak++
	}
	return streak
}

// BestStreak is the longest run of consecutive done days in the history.
func BestStreak(records []Record) int {
	return bestStreak(normalize(records))
}

func bestStreak(sorted []Record) int {
	best, run := 0, 0
	var prev time.Time
	for _, r := range sorted {
		switch {
		case !r.Done:
			run = 0
		case run > 0 && daysBetween(prev, r.Date) == 1:
			run++
		default:
			run = 1
		}
		prev = r.Date
		if run > best {
			best = run
		}
	}
	return best
}

// Compute returns all statistics for a history in a single sort.
func Compute(records []Record) Stats {
	sorted := normalize(records)
	return Stats{
		CurrentStreak: currentStreak(sorted),
		BestStreak:    bestStreak(sorted),
		Score:         score(sorted),
	}
}
