package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/gridlog/gridlog/internal/domain"
)

// CategoryResolver maps a category ID to its legend entry, or nil.
type CategoryResolver func(id *string) *domain.Category

// SlotTime formats a bucket boundary as "09:30".
func SlotTime(t time.Time) string {
	return t.Format("15:04")
}

// BucketCell renders one fixed-width grid cell. Empty buckets are dim
// placeholders; filled buckets take their category's color and carry a
// marker when notes or a mood are attached. The cursor cell is inverted.
func BucketCell(b domain.TimeBucket, resolve CategoryResolver, cursor bool, width int) string {
	if width < 2 {
		width = 2
	}

	var body string
	var style lipgloss.Style
	if b.Empty() {
		body = strings.Repeat("·", width-1)
		style = StyleDim
	} else {
		body = strings.Repeat("█", width-1)
		style = CategoryStyle(resolve(b.CategoryID))
		if b.HasAttachments() {
			body = strings.Repeat("█", width-2) + "▚"
		}
	}

	if cursor {
		style = style.Reverse(true)
	}
	return style.Render(body) + " "
}

// GridRow renders cells [first, first+count) of the bucket strip. Styled
// strings cannot be sliced by column, so horizontal scrolling works in
// whole cells.
func GridRow(buckets []domain.TimeBucket, resolve CategoryResolver, cursor, cellWidth, first, count int) string {
	first, count = clampRange(len(buckets), first, count)
	var b strings.Builder
	for i := first; i < first+count; i++ {
		b.WriteString(BucketCell(buckets[i], resolve, i == cursor, cellWidth))
	}
	return b.String()
}

// HourAxis renders the hour labels aligned under the same cell range.
func HourAxis(buckets []domain.TimeBucket, cellWidth, first, count int) string {
	first, count = clampRange(len(buckets), first, count)
	var b strings.Builder
	for i := first; i < first+count; i++ {
		if i%2 == 0 {
			b.WriteString(Dim(padTo(buckets[i].Start.Format("15"), cellWidth)))
		} else {
			b.WriteString(strings.Repeat(" ", cellWidth))
		}
	}
	return b.String()
}

// DayHeader renders the timeline's date line with an optional loading or
// error annotation.
func DayHeader(date time.Time, loading bool, errMsg string) string {
	head := Bold(date.Format("Mon Jan 2 2006"))
	switch {
	case errMsg != "":
		return head + "  " + StyleRed.Render("sync failed: "+errMsg)
	case loading:
		return head + "  " + Dim("loading…")
	default:
		return head
	}
}

// BucketDetail renders the detail panel for the cursor bucket.
func BucketDetail(b domain.TimeBucket, resolve CategoryResolver) string {
	span := fmt.Sprintf("%s – %s", SlotTime(b.Start), SlotTime(b.End))
	if b.Empty() {
		return Bold(span) + "  " + Dim("free")
	}

	parts := []string{Bold(span)}
	if cat := resolve(b.CategoryID); cat != nil {
		parts = append(parts, CategoryStyle(cat).Render(cat.Name))
	} else {
		parts = append(parts, Dim("uncategorized"))
	}
	if b.StateID != nil {
		parts = append(parts, MoodGlyph(b.StateID)+" "+Dim(*b.StateID))
	}
	if n := len(b.NoteIDs); n > 0 {
		parts = append(parts, Dim(fmt.Sprintf("%d note(s)", n)))
	}
	return strings.Join(parts, "  ")
}

// PendingLine renders the queued-intent indicator.
func PendingLine(n int) string {
	return fmt.Sprintf("%d slot(s) waiting for a category", n)
}

func padTo(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}

func clampRange(n, first, count int) (int, int) {
	if first < 0 {
		first = 0
	}
	if first > n {
		first = n
	}
	if count <= 0 || first+count > n {
		count = n - first
	}
	return first, count
}
