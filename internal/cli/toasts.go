package cli

import "sync"

// toastLevel is the severity of a transient notice.
type toastLevel int

const (
	toastSuccess toastLevel = iota
	toastWarning
	toastError
)

// toastTray implements timeline.Toasts. Engine calls land here
// synchronously during Update, but form callbacks post from command
// goroutines too, so the tray is guarded. The appModel reads the latest
// notice when rendering and schedules its expiry off the sequence number.
type toastTray struct {
	mu      sync.Mutex
	seq     int
	level   toastLevel
	message string
}

func (t *toastTray) Success(msg string) { t.post(toastSuccess, msg) }
func (t *toastTray) Warning(msg string) { t.post(toastWarning, msg) }
func (t *toastTray) Error(msg string)   { t.post(toastError, msg) }

func (t *toastTray) post(level toastLevel, msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.seq++
	t.level = level
	t.message = msg
}

// Seq returns the sequence number of the latest notice.
func (t *toastTray) Seq() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.seq
}

// Current returns the visible notice, or "" when dismissed.
func (t *toastTray) Current() (toastLevel, string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.level, t.message
}

// Dismiss clears the notice if seq still identifies it.
func (t *toastTray) Dismiss(seq int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if seq == t.seq {
		t.message = ""
	}
}
