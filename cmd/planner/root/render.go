package root

import (
	"fmt"
	"io"
	"strings"

	"github.com/comitanigiacomo/kanso-planner/internal/core/domain"
	"github.com/comitanigiacomo/kanso-planner/internal/core/services"
	"github.com/comitanigiacomo/kanso-planner/internal/ui"
)

func renderWeek(w io.Writer, v *domain.WeekView) {
	title := fmt.Sprintf("Week %s (%s to %s)", v.Week, v.StartDate, v.EndDate)
	if v.IsCurrent {
		title += " " + ui.Good.Render(ui.IconCurrent)
	}
	fmt.Fprintln(w, ui.Heading("🗓", title))

	for _, d := range v.Days {
		label := d.Day.Key()
		if v.Today != nil && *v.Today == d.Day {
			label = ui.Key.Render(label)
		}
		fmt.Fprintf(w, "%s %s  %s\n", label, ui.Muted.Render(d.Date), ui.Rating(d.Rating))
		for _, s := range d.Slots {
			fmt.Fprintf(w, "  %s %s %s\n", ui.Muted.Render(s.Block), ui.Check(s.Completed), ui.SlotText(s.Content, s.Color))
		}
	}

	if len(v.Habits) == 0 {
		return
	}
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, ui.H2.Render("Habits"))
	fmt.Fprintf(w, "%-24s %s\n", "", strings.Join(domain.DayKeys(), " "))
	for _, h := range v.Habits {
		marks := make([]string, len(h.Checked))
		for i, c := range h.Checked {
			marks[i] = " " + ui.Check(c) + " "
		}
		fmt.Fprintf(w, "%-24s %s %s\n", truncate(h.Name, 24), strings.Join(marks, ""), ui.Muted.Render(fmt.Sprintf("(%d)", h.Score)))
	}
}

func renderSummary(w io.Writer, s *domain.WeeklySummary) {
	fmt.Fprintln(w, ui.Heading("📊", fmt.Sprintf("Summary %s (%s to %s)", s.Week, s.StartDate, s.EndDate)))
	fmt.Fprintln(w, ui.LabelValue("Slots done", fmt.Sprintf("%.1f%% (%d per day)", s.SlotRate, s.SlotsPerDay)))
	if s.RatedDays > 0 {
		fmt.Fprintln(w, ui.LabelValue("Average rating", fmt.Sprintf("%.1f over %d days", s.AverageRating, s.RatedDays)))
	} else {
		fmt.Fprintln(w, ui.LabelValue("Average rating", ui.Muted.Render("no rated days")))
	}
	fmt.Fprintln(w, ui.LabelValue("Habits", fmt.Sprintf("%d, %.1f%% done", s.TotalHabits, s.OverallHabitRate)))

	for _, h := range s.HabitStats {
		fmt.Fprintf(w, "- %s: %d/7 days, %d points (%.1f%%)\n", h.HabitName, h.DaysCompleted, h.PointsEarned, h.CompletionRate)
	}
}

func renderScores(w io.Writer, scores []services.DailyScore) {
	for _, s := range scores {
		if !s.Applied {
			fmt.Fprintf(w, "%s %s\n", s.Day.Key(), ui.Muted.Render("skipped"))
			continue
		}
		v := s.Score
		fmt.Fprintf(w, "%s %s\n", s.Day.Key(), ui.Rating(&v))
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
