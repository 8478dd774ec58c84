package cli

import (
	"time"

	"github.com/gridlog/gridlog/internal/domain"
	"github.com/gridlog/gridlog/internal/timeline"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Engine owns the timeline's in-memory state: cache, fetch
	// coordination, pending assignments, deletion decisions, dialogs.
	Engine *timeline.Engine

	// Momentum drives the haptic pulse simulation for scroll gestures.
	Momentum *timeline.Momentum

	// Toasts is the tray the engine posts notices into.
	Toasts *toastTray

	// Displayed is the calendar day the timeline currently shows.
	Displayed time.Time

	// Categories is the loaded legend, in list order.
	Categories []*domain.Category

	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time

	// Terminal dimensions
	Width  int
	Height int
}

// CategoryByID resolves a legend entry, or nil.
func (s *SharedState) CategoryByID(id *string) *domain.Category {
	if id == nil {
		return nil
	}
	for _, c := range s.Categories {
		if c.ID == *id {
			return c
		}
	}
	return nil
}

// ContentHeight returns the available height for view content, accounting
// for header (2 lines: title + separator) and status bar (2 lines:
// separator + hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		return 1
	}
	return h
}

func (s *SharedState) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
