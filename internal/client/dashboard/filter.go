// Package dashboard holds the client-side view state of a user's stories:
// the fetched list, the active search query and date range, and the
// subset currently displayed.
package dashboard

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/dtroode/travelstory-server/internal/model"
)

// ApplyTextFilter returns the stories whose title, text or any visited
// location contains query, ignoring case. An empty query keeps every story.
func ApplyTextFilter(all []model.Story, query string) []model.Story {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return clone(all)
	}

	out := make([]model.Story, 0, len(all))
	for _, s := range all {
		if matches(s, query) {
			out = append(out, s)
		}
	}
	return out
}

func matches(s model.Story, query string) bool {
	if strings.Contains(strings.ToLower(s.Title), query) ||
		strings.Contains(strings.ToLower(s.Story), query) {
		return true
	}
	for _, loc := range s.VisitedLocation {
		if strings.Contains(strings.ToLower(loc), query) {
			return true
		}
	}
	return false
}

// ApplyDateFilter returns the stories visited within r. Both bounds are
// whole days: the range starts at the beginning of r.Start's day and ends
// at the end of r.End's day.
func ApplyDateFilter(all []model.Story, r model.DateRange) []model.Story {
	from := startOfDay(r.Start)
	until := startOfDay(r.End).AddDate(0, 0, 1)

	out := make([]model.Story, 0, len(all))
	for _, s := range all {
		if !s.VisitedDate.Before(from) && s.VisitedDate.Before(until) {
			out = append(out, s)
		}
	}
	return out
}

// LastDays is the quick range covering the n days before now, today included.
func LastDays(now time.Time, n int) model.DateRange {
	return model.DateRange{
		Start: startOfDay(now).AddDate(0, 0, -n),
		End:   startOfDay(now),
	}
}

// Initials returns up to two upper-case initials of a full name.
func Initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(unicode.ToUpper(r))
		if utf8.RuneCountInString(b.String()) == 2 {
			break
		}
	}
	return b.String()
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func clone(stories []model.Story) []model.Story {
	out := make([]model.Story, len(stories))
	copy(out, stories)
	return out
}
