package llm

import "github.com/rs/zerolog"

// CallEvent records metadata about a single completion call.
type CallEvent struct {
	RequestID string
	Model     string
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives events about completion calls for logging and metrics.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver writes completion call events through a zerolog logger.
type LogObserver struct {
	log zerolog.Logger
}

// NewLogObserver creates an Observer that logs events to log.
func NewLogObserver(log zerolog.Logger) *LogObserver {
	return &LogObserver{log: log}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	evt := o.log.Info()
	if !event.Success {
		evt = o.log.Warn()
	}
	evt = evt.
		Str("request_id", event.RequestID).
		Str("model", event.Model).
		Int64("latency_ms", event.LatencyMs).
		Bool("success", event.Success)
	if event.ErrorCode != "" {
		evt = evt.Str("error_code", event.ErrorCode)
	}
	evt.Msg("completion call")
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}
