package cli

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gridlog/gridlog/internal/timeline"
)

// hapticSink implements timeline.Haptics by forwarding each pulse into the
// bubbletea program as a hapticPulseMsg. Momentum fires pulses from timer
// goroutines, so the sink is guarded and tolerates pulses arriving before
// the program handle is bound (they are dropped).
type hapticSink struct {
	mu   sync.Mutex
	send func(tea.Msg)
}

// Bind attaches the program's Send function. Called once after
// tea.NewProgram, before Run.
func (h *hapticSink) Bind(send func(tea.Msg)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.send = send
}

func (h *hapticSink) Impact(strength timeline.ImpactStrength) {
	h.mu.Lock()
	send := h.send
	h.mu.Unlock()
	if send != nil {
		send(hapticPulseMsg{strength: strength})
	}
}
