package summary

import (
	"fmt"
	"io"
	"time"
)

// CallEvent records one summarization call for audit: what was sent, what
// came back, and which outcome the call resolved to.
type CallEvent struct {
	CallID     string
	Outcome    Outcome
	HTTPStatus int
	LatencyMs  int64
	Payload    []byte
	Response   []byte
}

// Observer receives events about summarization calls for logging and metrics.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver writes summarization call events to an io.Writer, including
// the full request payload and response body.
type LogObserver struct {
	w io.Writer
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	fmt.Fprintf(o.w, "[%s] summary_call id=%s outcome=%s http=%d latency_ms=%d request_bytes=%d\n",
		ts, event.CallID, event.Outcome, event.HTTPStatus, event.LatencyMs, len(event.Payload))
	if len(event.Payload) > 0 {
		fmt.Fprintf(o.w, "[%s] summary_call id=%s request=%s\n", ts, event.CallID, event.Payload)
	}
	if len(event.Response) > 0 {
		fmt.Fprintf(o.w, "[%s] summary_call id=%s response=%s\n", ts, event.CallID, event.Response)
	}
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}
