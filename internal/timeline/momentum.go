package timeline

import (
	"math"
	"sync"
	"time"
)

// ImpactStrength is the haptic tier of a single pulse.
type ImpactStrength int

const (
	ImpactLight ImpactStrength = iota
	ImpactMedium
	ImpactHeavy
)

func (s ImpactStrength) String() string {
	switch s {
	case ImpactHeavy:
		return "heavy"
	case ImpactMedium:
		return "medium"
	default:
		return "light"
	}
}

// Haptics receives pulse commands. Fire-and-forget: implementations must
// not block and their failures never reach the simulator.
type Haptics interface {
	Impact(strength ImpactStrength)
}

// NoopHaptics discards all pulses.
type NoopHaptics struct{}

func (NoopHaptics) Impact(ImpactStrength) {}

// TimerHandle is a cancellable scheduled callback.
type TimerHandle interface {
	Stop() bool
}

// PulseScheduler schedules deferred callbacks. Injectable so tests drive
// time by hand instead of sleeping.
type PulseScheduler interface {
	AfterFunc(d time.Duration, fn func()) TimerHandle
}

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, fn func()) TimerHandle {
	return time.AfterFunc(d, fn)
}

// NewTimerScheduler returns the time.AfterFunc-backed scheduler.
func NewTimerScheduler() PulseScheduler { return realScheduler{} }

// MomentumConfig tunes the velocity-to-pulse mapping and the decay loop.
// Velocities are in grid columns per millisecond.
type MomentumConfig struct {
	MoveThreshold  float64       // min |Δposition| per sample before pulsing
	MinPulseGap    time.Duration // min interval between sample-driven bursts
	MediumVelocity float64       // |v| at or above this: medium tier
	HeavyVelocity  float64       // |v| at or above this: heavy tier
	MaxPulses      int           // burst size ceiling
	SpacingScale   float64       // inter-pulse spacing = SpacingScale/|v| ms
	SpacingFloor   time.Duration // spacing clamp
	DecayTick      time.Duration // fixed decay loop period
	DecayFactor    float64       // per-tick velocity retention, < 1
	StopVelocity   float64       // loop ends once |v| decays to or below this
	FinalPulse     bool          // fire one light pulse as the loop ends
}

// DefaultMomentumConfig returns the tuning used by the timeline view.
func DefaultMomentumConfig() MomentumConfig {
	return MomentumConfig{
		MoveThreshold:  3,
		MinPulseGap:    90 * time.Millisecond,
		MediumVelocity: 1.2,
		HeavyVelocity:  2.8,
		MaxPulses:      4,
		SpacingScale:   60,
		SpacingFloor:   18 * time.Millisecond,
		DecayTick:      50 * time.Millisecond,
		DecayFactor:    0.82,
		StopVelocity:   0.15,
		FinalPulse:     true,
	}
}

// Momentum converts scroll motion into a decaying sequence of haptic
// pulses. Two inputs feed it: per-frame position samples while the user
// drags, and a single release velocity that starts the fixed-tick decay
// loop. At most one decay loop runs at a time; starting a new gesture or
// calling End cancels the loop and every still-pending pulse, so no timer
// outlives its gesture.
type Momentum struct {
	cfg     MomentumConfig
	haptics Haptics
	sched   PulseScheduler
	obs     EngineObserver

	mu        sync.Mutex
	hasSample bool
	lastPos   float64
	lastAt    time.Time
	lastBurst time.Time
	velocity  float64
	active    bool
	decay     TimerHandle
	pending   []TimerHandle
}

// NewMomentum returns a simulator sending pulses to haptics via sched.
func NewMomentum(cfg MomentumConfig, haptics Haptics, sched PulseScheduler, obs EngineObserver) *Momentum {
	if haptics == nil {
		haptics = NoopHaptics{}
	}
	if sched == nil {
		sched = NewTimerScheduler()
	}
	return &Momentum{cfg: cfg, haptics: haptics, sched: sched, obs: observerOrNoop(obs)}
}

// Sample feeds one scroll-position update. When the movement since the last
// sample exceeds the threshold and the minimum inter-pulse interval has
// elapsed, a burst sized and spaced by the instantaneous velocity is
// scheduled.
func (m *Momentum) Sample(pos float64, at time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.hasSample {
		m.hasSample = true
		m.lastPos, m.lastAt = pos, at
		return
	}

	dp := pos - m.lastPos
	dt := at.Sub(m.lastAt)
	m.lastPos, m.lastAt = pos, at
	if dt <= 0 {
		return
	}

	if math.Abs(dp) < m.cfg.MoveThreshold {
		return
	}
	if !m.lastBurst.IsZero() && at.Sub(m.lastBurst) < m.cfg.MinPulseGap {
		return
	}
	m.lastBurst = at

	v := dp / (float64(dt) / float64(time.Millisecond))
	m.burstLocked(v)
}

// Release starts the decay loop with the reported release velocity,
// superseding any prior gesture's loop and pending pulses.
func (m *Momentum) Release(velocity float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.cancelLocked()
	m.velocity = velocity
	m.active = true
	m.decay = m.sched.AfterFunc(m.cfg.DecayTick, m.tick)
	m.obs.Observe(EngineEvent{Op: "momentum_release", Success: true, Fields: map[string]any{
		"velocity": velocity,
	}})
}

// End cancels the decay loop and all still-pending pulses immediately.
// Called on momentum-end and on view teardown.
func (m *Momentum) End() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cancelLocked()
}

// Active reports whether a decay loop is running.
func (m *Momentum) Active() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active
}

func (m *Momentum) tick() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.active {
		return
	}

	m.velocity *= m.cfg.DecayFactor
	if math.Abs(m.velocity) <= m.cfg.StopVelocity {
		m.active = false
		m.decay = nil
		if m.cfg.FinalPulse {
			m.haptics.Impact(ImpactLight)
		}
		return
	}

	m.burstLocked(m.velocity)
	m.decay = m.sched.AfterFunc(m.cfg.DecayTick, m.tick)
}

// burstLocked schedules the pulse train for velocity v. Caller holds mu.
func (m *Momentum) burstLocked(v float64) {
	strength, count, spacing := m.classify(v)
	for i := 0; i < count; i++ {
		h := m.sched.AfterFunc(time.Duration(i)*spacing, func() {
			m.haptics.Impact(strength)
		})
		m.pending = append(m.pending, h)
	}
}

// classify maps |v| onto an impact tier, a pulse count (1..MaxPulses,
// proportional to velocity) and an inter-pulse spacing (inversely
// proportional, clamped to the floor).
func (m *Momentum) classify(v float64) (ImpactStrength, int, time.Duration) {
	mag := math.Abs(v)

	strength := ImpactLight
	switch {
	case mag >= m.cfg.HeavyVelocity:
		strength = ImpactHeavy
	case mag >= m.cfg.MediumVelocity:
		strength = ImpactMedium
	}

	count := 1
	if m.cfg.HeavyVelocity > 0 {
		count = 1 + int(mag*float64(m.cfg.MaxPulses-1)/m.cfg.HeavyVelocity)
	}
	if count > m.cfg.MaxPulses {
		count = m.cfg.MaxPulses
	}
	if count < 1 {
		count = 1
	}

	spacing := m.cfg.SpacingFloor
	if mag > 0 {
		computed := time.Duration(m.cfg.SpacingScale / mag * float64(time.Millisecond))
		if computed > spacing {
			spacing = computed
		}
	}
	return strength, count, spacing
}

func (m *Momentum) cancelLocked() {
	if m.decay != nil {
		m.decay.Stop()
		m.decay = nil
	}
	for _, h := range m.pending {
		h.Stop()
	}
	m.pending = nil
	m.active = false
	m.velocity = 0
}
