package timeline

import (
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingHaptics struct {
	mu     sync.Mutex
	pulses []ImpactStrength
}

func (h *countingHaptics) Impact(s ImpactStrength) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.pulses = append(h.pulses, s)
}

func (h *countingHaptics) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.pulses)
}

type fakeTask struct {
	delay   time.Duration
	fn      func()
	stopped bool
}

func (t *fakeTask) Stop() bool {
	was := !t.stopped
	t.stopped = true
	return was
}

// fakeScheduler runs scheduled callbacks on demand, in schedule order.
type fakeScheduler struct {
	tasks []*fakeTask
}

func (s *fakeScheduler) AfterFunc(d time.Duration, fn func()) TimerHandle {
	task := &fakeTask{delay: d, fn: fn}
	s.tasks = append(s.tasks, task)
	return task
}

// runAll drains the queue, including tasks scheduled while draining.
// Returns the delays of the tasks that actually executed.
func (s *fakeScheduler) runAll() []time.Duration {
	var ran []time.Duration
	for len(s.tasks) > 0 {
		task := s.tasks[0]
		s.tasks = s.tasks[1:]
		if task.stopped {
			continue
		}
		ran = append(ran, task.delay)
		task.fn()
	}
	return ran
}

// runOne executes the next live task, if any.
func (s *fakeScheduler) runOne() bool {
	for len(s.tasks) > 0 {
		task := s.tasks[0]
		s.tasks = s.tasks[1:]
		if task.stopped {
			continue
		}
		task.fn()
		return true
	}
	return false
}

func testMomentumConfig() MomentumConfig {
	return MomentumConfig{
		MoveThreshold:  3,
		MinPulseGap:    90 * time.Millisecond,
		MediumVelocity: 1.2,
		HeavyVelocity:  2.8,
		MaxPulses:      4,
		SpacingScale:   60,
		SpacingFloor:   time.Millisecond,
		DecayTick:      100 * time.Millisecond,
		DecayFactor:    0.82,
		StopVelocity:   0.15,
		FinalPulse:     true,
	}
}

func newTestMomentum() (*Momentum, *fakeScheduler, *countingHaptics) {
	sched := &fakeScheduler{}
	haptics := &countingHaptics{}
	m := NewMomentum(testMomentumConfig(), haptics, sched, nil)
	return m, sched, haptics
}

func expectedTicks(v, decay, stop float64) int {
	return int(math.Ceil(math.Log(stop/math.Abs(v)) / math.Log(decay)))
}

func TestMomentum_DecayTerminates(t *testing.T) {
	m, sched, _ := newTestMomentum()

	m.Release(2.0)
	ran := sched.runAll()

	ticks := 0
	for _, d := range ran {
		if d == 100*time.Millisecond {
			ticks++
		}
	}
	assert.Equal(t, expectedTicks(2.0, 0.82, 0.15), ticks,
		"loop must run exactly ceil(log(stop/V)/log(d)) ticks")
	assert.False(t, m.Active())
	assert.Empty(t, sched.tasks, "nothing left scheduled after termination")
}

func TestMomentum_FinalPulseOnTermination(t *testing.T) {
	m, sched, haptics := newTestMomentum()

	// Barely above the stop threshold: one tick drops it below.
	m.Release(0.16)
	sched.runAll()

	require.Equal(t, 1, haptics.count())
	assert.Equal(t, ImpactLight, haptics.pulses[0])
	assert.False(t, m.Active())
}

func TestMomentum_EndCancelsLoopAndPendingPulses(t *testing.T) {
	m, sched, haptics := newTestMomentum()

	m.Release(3.0)
	require.True(t, sched.runOne(), "first decay tick")
	require.True(t, m.Active())
	before := haptics.count()

	m.End()
	ran := sched.runAll()

	assert.Empty(t, ran, "every scheduled timer was cancelled")
	assert.Equal(t, before, haptics.count(), "no pulse fires after End")
	assert.False(t, m.Active())
}

func TestMomentum_NewGestureSupersedesOldLoop(t *testing.T) {
	m, sched, _ := newTestMomentum()

	m.Release(3.0)
	m.Release(2.0)

	// Only the second loop's tick chain may run.
	ran := sched.runAll()
	ticks := 0
	for _, d := range ran {
		if d == 100*time.Millisecond {
			ticks++
		}
	}
	assert.Equal(t, expectedTicks(2.0, 0.82, 0.15), ticks)
}

func TestMomentum_ClassifyTiers(t *testing.T) {
	m, _, _ := newTestMomentum()

	tests := []struct {
		velocity float64
		strength ImpactStrength
	}{
		{0.5, ImpactLight},
		{1.2, ImpactMedium},
		{2.0, ImpactMedium},
		{2.8, ImpactHeavy},
		{-4.0, ImpactHeavy}, // direction does not matter
	}
	for _, tt := range tests {
		strength, count, spacing := m.classify(tt.velocity)
		assert.Equal(t, tt.strength, strength, "velocity %v", tt.velocity)
		assert.GreaterOrEqual(t, count, 1)
		assert.LessOrEqual(t, count, 4)
		assert.GreaterOrEqual(t, spacing, m.cfg.SpacingFloor)
	}
}

func TestMomentum_PulseCountGrowsWithVelocity(t *testing.T) {
	m, _, _ := newTestMomentum()

	_, slow, _ := m.classify(0.3)
	_, fast, _ := m.classify(2.8)
	assert.Less(t, slow, fast)
	assert.Equal(t, 4, fast, "max pulses at the heavy threshold")
}

func TestMomentum_SpacingShrinksWithVelocity(t *testing.T) {
	m, _, _ := newTestMomentum()

	_, _, slowGap := m.classify(0.5)
	_, _, fastGap := m.classify(4.0)
	assert.Greater(t, slowGap, fastGap)
}

func TestMomentum_SampleBelowThresholdIsSilent(t *testing.T) {
	m, sched, haptics := newTestMomentum()

	at := time.Unix(0, 0)
	m.Sample(0, at)
	m.Sample(2, at.Add(16*time.Millisecond)) // |Δ| < MoveThreshold

	sched.runAll()
	assert.Zero(t, haptics.count())
}

func TestMomentum_SampleSchedulesBurst(t *testing.T) {
	m, sched, haptics := newTestMomentum()

	at := time.Unix(0, 0)
	m.Sample(0, at)
	m.Sample(40, at.Add(16*time.Millisecond)) // 2.5 cols/ms: medium tier

	sched.runAll()
	require.Greater(t, haptics.count(), 0)
	for _, p := range haptics.pulses {
		assert.Equal(t, ImpactMedium, p)
	}
}

func TestMomentum_MinPulseGapThrottlesBursts(t *testing.T) {
	m, sched, haptics := newTestMomentum()

	at := time.Unix(0, 0)
	m.Sample(0, at)
	m.Sample(40, at.Add(16*time.Millisecond))
	m.Sample(80, at.Add(32*time.Millisecond)) // inside the 90ms gap

	sched.runAll()
	first := haptics.count()

	m.Sample(120, at.Add(200*time.Millisecond)) // gap elapsed
	sched.runAll()
	assert.Greater(t, haptics.count(), first)
}
