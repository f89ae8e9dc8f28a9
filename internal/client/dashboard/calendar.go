package dashboard

import (
	"time"

	"github.com/dtroode/travelstory-server/internal/model"
)

// Day is one cell of a month grid.
type Day struct {
	// Number is the day of the month, 0 for a blank leading cell.
	Number  int
	Stories int
	Today   bool
}

// Month is a calendar page starting on Sunday.
type Month struct {
	Year  int
	Month time.Month
	Days  []Day
	// Total is the number of stories visited in this month.
	Total int
}

// BuildMonth lays out the month containing at, marking the days that have
// stories. Dates are compared in at's location.
func BuildMonth(at, now time.Time, stories []model.Story) Month {
	loc := at.Location()
	year, month, _ := at.Date()
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	daysIn := first.AddDate(0, 1, -1).Day()

	counts := make(map[int]int)
	for _, s := range stories {
		y, m, d := s.VisitedDate.In(loc).Date()
		if y == year && m == month {
			counts[d]++
		}
	}

	ny, nm, nd := now.In(loc).Date()

	page := Month{Year: year, Month: month}
	for i := 0; i < int(first.Weekday()); i++ {
		page.Days = append(page.Days, Day{})
	}
	for d := 1; d <= daysIn; d++ {
		page.Days = append(page.Days, Day{
			Number:  d,
			Stories: counts[d],
			Today:   ny == year && nm == month && nd == d,
		})
		page.Total += counts[d]
	}
	return page
}

// Weeks splits the grid into rows of seven cells.
func (m Month) Weeks() [][]Day {
	var weeks [][]Day
	for i := 0; i < len(m.Days); i += 7 {
		end := min(i+7, len(m.Days))
		weeks = append(weeks, m.Days[i:end])
	}
	return weeks
}
