package timeline

import (
	"io"
	"log/slog"
)

// EngineEvent captures lightweight execution telemetry for an engine
// operation: fetches, merges, queue mutations, flushes, deletions.
type EngineEvent struct {
	Op      string
	Success bool
	Err     error
	Fields  map[string]any
}

// EngineObserver receives engine events. Implementations must not block;
// a failing observer never affects engine behavior.
type EngineObserver interface {
	Observe(event EngineEvent)
}

// NoopEngineObserver ignores all events.
type NoopEngineObserver struct{}

func (NoopEngineObserver) Observe(EngineEvent) {}

type logEngineObserver struct {
	logger *slog.Logger
}

// NewLogEngineObserver writes engine events to the provided writer as
// structured log lines.
func NewLogEngineObserver(w io.Writer) EngineObserver {
	if w == nil {
		return NoopEngineObserver{}
	}
	return &logEngineObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logEngineObserver) Observe(event EngineEvent) {
	attrs := make([]any, 0, 6+len(event.Fields)*2)
	attrs = append(attrs, "op", event.Op, "success", event.Success)
	for k, v := range event.Fields {
		attrs = append(attrs, k, v)
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.Error("timeline_engine", attrs...)
		return
	}
	o.logger.Info("timeline_engine", attrs...)
}

// observerOrNoop returns the first non-nil observer, or a noop.
func observerOrNoop(obs EngineObserver) EngineObserver {
	if obs != nil {
		return obs
	}
	return NoopEngineObserver{}
}
