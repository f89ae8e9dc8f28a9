package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dtroode/travelstory-server/internal/client/dashboard"
	"github.com/dtroode/travelstory-server/internal/model"
)

// Search sets the text query; without arguments it clears it.
func (a *App) Search(ctx context.Context, args []string) error {
	a.store.SetQuery(strings.Join(args, " "))
	if err := a.store.Settle(ctx); err != nil {
		return err
	}
	if err := a.store.Err(); err != nil {
		a.printf("Search failed: %s (showing local matches)\n", message(err))
	}
	a.printList(a.store.Displayed())
	return nil
}

// Filter narrows the list to a visited date range.
//
//	filter 2024-01-01 2024-01-31
//	filter last 30
//	filter off
func (a *App) Filter(_ context.Context, args []string) error {
	switch {
	case len(args) == 0:
		if r, ok := a.store.DateRange(); ok {
			a.printf("Showing stories from %s to %s\n", r.Start.Format(dateLayout), r.End.Format(dateLayout))
		} else {
			a.printf("No date filter\n")
		}
		return nil

	case len(args) == 1 && args[0] == "off":
		a.store.ClearDateRange()

	case len(args) == 2 && args[0] == "last":
		days, err := strconv.Atoi(args[1])
		if err != nil || days < 1 {
			return a.report(fmt.Errorf("invalid number of days %q", args[1]))
		}
		if err := a.store.SetDateRange(dashboard.LastDays(a.now(), days)); err != nil {
			return a.report(err)
		}

	case len(args) == 2:
		r, err := parseRange(args[0], args[1])
		if err != nil {
			return a.report(err)
		}
		if err := a.store.SetDateRange(r); err != nil {
			return a.report(err)
		}

	default:
		a.printf("Usage: filter <start> <end> | filter last <days> | filter off\n")
		return nil
	}

	a.printList(a.store.Displayed())
	return nil
}

// Dates asks the server for the stories visited in a date range, ignoring
// the active search and filter.
func (a *App) Dates(ctx context.Context, args []string) error {
	if len(args) != 2 {
		a.printf("Usage: dates <start> <end>\n")
		return nil
	}
	r, err := parseRange(args[0], args[1])
	if err != nil {
		return a.report(err)
	}

	end := r.End.AddDate(0, 0, 1).Add(-time.Millisecond)
	stories, err := a.api.FilterStoriesByDate(ctx, r.Start, end)
	if err != nil {
		return a.report(err)
	}
	a.printList(stories)
	return nil
}

// Clear drops the search query and the date range.
func (a *App) Clear(_ context.Context) error {
	a.store.Clear()
	a.printList(a.store.Displayed())
	return nil
}

// Calendar prints a month of the displayed stories.
//
//	calendar            current month
//	calendar next|prev  move by one month
//	calendar 2024-05    a given month
func (a *App) Calendar(_ context.Context, args []string) error {
	if a.month.IsZero() {
		a.month = firstOfMonth(a.now())
	}

	if len(args) > 0 {
		switch args[0] {
		case "next":
			a.month = a.month.AddDate(0, 1, 0)
		case "prev":
			a.month = a.month.AddDate(0, -1, 0)
		default:
			m, err := time.ParseInLocation("2006-01", args[0], time.Local)
			if err != nil {
				return a.report(fmt.Errorf("invalid month %q, expected YYYY-MM", args[0]))
			}
			a.month = m
		}
	}

	a.printMonth(dashboard.BuildMonth(a.month, a.now(), a.store.Displayed()))
	return nil
}

func parseRange(start, end string) (model.DateRange, error) {
	from, err := parseDate(start)
	if err != nil {
		return model.DateRange{}, err
	}
	to, err := parseDate(end)
	if err != nil {
		return model.DateRange{}, err
	}
	if from.After(to) {
		return model.DateRange{}, dashboard.ErrInvalidRange
	}
	return model.DateRange{Start: from, End: to}, nil
}

func firstOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
