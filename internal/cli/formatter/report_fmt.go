package formatter

import (
	"fmt"
	"sort"
	"time"

	"github.com/gridlog/gridlog/internal/domain"
)

// DayReport aggregates a day's buckets per category and renders a summary
// table. Slots without a category are grouped under "uncategorized".
func DayReport(date time.Time, buckets []domain.TimeBucket, resolve CategoryResolver) string {
	if len(buckets) == 0 {
		return Header(date.Format("Mon Jan 2 2006")) + "\n" + Dim("no slots")
	}

	type line struct {
		name  string
		style func(string) string
		slots int
	}

	byKey := make(map[string]*line)
	logged := 0
	for _, b := range buckets {
		if b.Empty() {
			continue
		}
		logged++

		key := "uncategorized"
		name := "uncategorized"
		style := Dim
		if cat := resolve(b.CategoryID); cat != nil {
			key, name = cat.ID, cat.Name
			st := CategoryStyle(cat)
			style = func(s string) string { return st.Render(s) }
		}
		if l, ok := byKey[key]; ok {
			l.slots++
		} else {
			byKey[key] = &line{name: name, style: style, slots: 1}
		}
	}

	lines := make([]*line, 0, len(byKey))
	for _, l := range byKey {
		lines = append(lines, l)
	}
	sort.Slice(lines, func(i, j int) bool {
		if lines[i].slots != lines[j].slots {
			return lines[i].slots > lines[j].slots
		}
		return lines[i].name < lines[j].name
	})

	rows := make([][]string, 0, len(lines)+1)
	for _, l := range lines {
		rows = append(rows, []string{
			l.style(l.name),
			fmt.Sprintf("%d", l.slots),
			FormatMinutes(l.slots * 30),
			fmt.Sprintf("%d%%", l.slots*100/len(buckets)),
		})
	}
	rows = append(rows, []string{
		Dim("free"),
		fmt.Sprintf("%d", len(buckets)-logged),
		FormatMinutes((len(buckets) - logged) * 30),
		fmt.Sprintf("%d%%", (len(buckets)-logged)*100/len(buckets)),
	})

	return Header(date.Format("Mon Jan 2 2006")) + "\n" +
		RenderTable([]string{"Category", "Slots", "Time", "Share"}, rows)
}

// FormatMinutes renders a minute count as "1h30m" or "45m".
func FormatMinutes(min int) string {
	if min >= 60 {
		if rem := min % 60; rem != 0 {
			return fmt.Sprintf("%dh%dm", min/60, rem)
		}
		return fmt.Sprintf("%dh", min/60)
	}
	return fmt.Sprintf("%dm", min)
}
