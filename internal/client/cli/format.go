package cli

import (
	"fmt"
	"strings"

	"github.com/dtroode/travelstory-server/internal/client/dashboard"
	"github.com/dtroode/travelstory-server/internal/model"
)

var weekDays = []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// printList prints stories numbered from 1 and remembers them for later commands.
func (a *App) printList(stories []model.Story) {
	a.shown = stories

	if len(stories) == 0 {
		a.printf("No stories found\n")
		return
	}
	for i, s := range stories {
		mark := " "
		if s.IsFavourite {
			mark = "*"
		}
		a.printf("%3d %s %s  %s  %s\n", i+1, mark,
			s.VisitedDate.Local().Format(dateLayout),
			s.Title,
			strings.Join(s.VisitedLocation, ", "))
	}
}

func (a *App) printStory(s model.Story) {
	a.printf("%s\n", s.Title)
	a.printf("Visited: %s  %s\n", s.VisitedDate.Local().Format(dateLayout), strings.Join(s.VisitedLocation, ", "))
	if s.IsFavourite {
		a.printf("Favourite\n")
	}
	a.printf("Image: %s\n\n%s\n", s.ImageURL, s.Story)
}

func (a *App) printMonth(m dashboard.Month) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d\n", m.Month, m.Year)
	b.WriteString(strings.Join(weekDays, "  "))
	b.WriteString("\n")

	for _, week := range m.Weeks() {
		cells := make([]string, 0, len(week))
		for _, d := range week {
			switch {
			case d.Number == 0:
				cells = append(cells, "  ")
			case d.Today:
				cells = append(cells, fmt.Sprintf("%2d", d.Number)+"<")
			case d.Stories > 0:
				cells = append(cells, fmt.Sprintf("%2d", d.Number)+"*")
			default:
				cells = append(cells, fmt.Sprintf("%2d", d.Number))
			}
		}
		b.WriteString(strings.TrimRight(padCells(cells), " "))
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "%d stories this month\n", m.Total)
	a.printf("%s", b.String())
}

func padCells(cells []string) string {
	var b strings.Builder
	for _, c := range cells {
		b.WriteString(c)
		b.WriteString(strings.Repeat(" ", 4-len(c)))
	}
	return b.String()
}
