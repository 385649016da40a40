package summary

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Kan-O435/studytimer-back/internal/report"
	"github.com/google/uuid"
)

// Outcome names the single path a summarization call took. Exactly one
// outcome is produced per call; every non-OK outcome carries a fixed
// fallback text instead of a generated summary.
type Outcome string

const (
	OutcomeOK             Outcome = "ok"
	OutcomeHTTPError      Outcome = "http_error"
	OutcomeParseError     Outcome = "parse_error"
	OutcomeBadFormat      Outcome = "bad_format"
	OutcomeTransportError Outcome = "transport_error"
)

// Fallback texts shown in place of a generated summary. Each failure
// category has its own fixed literal so a degraded summary is never
// mistaken for a real one.
const (
	// FallbackHTTPErrorFmt embeds the upstream status code.
	FallbackHTTPErrorFmt = "LLMからの要約の取得に失敗しました。(HTTP %d)"

	FallbackParseError = "LLMからの要約の解析に失敗しました。"
	FallbackBadFormat  = "LLMからの要約が取得できませんでした。"
	FallbackTransport  = "LLM要約サービスとの通信中にエラーが発生しました。"
)

// Result is the tagged outcome of one summarization call. Summarize never
// returns an error: Text always holds either the generated summary or the
// fallback for the outcome.
type Result struct {
	Text       string
	Outcome    Outcome
	HTTPStatus int // set for OutcomeOK and OutcomeHTTPError
}

// Client produces a natural-language recap of a week of bucketed data.
type Client interface {
	Summarize(ctx context.Context, data []report.DailyBucket) Result
}

// httpClient implements Client against the external summarization endpoint.
type httpClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewClient creates a Client for the configured endpoint. A nil observer
// disables audit recording.
func NewClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &httpClient{
		cfg:      cfg,
		http:     &http.Client{},
		observer: observer,
	}
}

// requestEnvelope is the JSON body sent to the summarization endpoint.
type requestEnvelope struct {
	Data []report.DailyBucket `json:"data"`
}

func (c *httpClient) Summarize(ctx context.Context, data []report.DailyBucket) Result {
	start := time.Now()
	callID := uuid.New().String()

	payload, err := json.Marshal(requestEnvelope{Data: data})
	if err != nil {
		return c.complete(callID, start, payload, nil, Result{
			Text:    FallbackTransport,
			Outcome: OutcomeTransportError,
		})
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return c.complete(callID, start, payload, nil, Result{
			Text:    FallbackTransport,
			Outcome: OutcomeTransportError,
		})
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		// Connection refused, DNS, TLS and deadline expiry all land here.
		return c.complete(callID, start, payload, nil, Result{
			Text:    FallbackTransport,
			Outcome: OutcomeTransportError,
		})
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.complete(callID, start, payload, nil, Result{
			Text:    FallbackTransport,
			Outcome: OutcomeTransportError,
		})
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.complete(callID, start, payload, body, Result{
			Text:       fmt.Sprintf(FallbackHTTPErrorFmt, resp.StatusCode),
			Outcome:    OutcomeHTTPError,
			HTTPStatus: resp.StatusCode,
		})
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return c.complete(callID, start, payload, body, Result{
			Text:       FallbackParseError,
			Outcome:    OutcomeParseError,
			HTTPStatus: resp.StatusCode,
		})
	}

	text, ok := parsed["summary"].(string)
	if !ok {
		return c.complete(callID, start, payload, body, Result{
			Text:       FallbackBadFormat,
			Outcome:    OutcomeBadFormat,
			HTTPStatus: resp.StatusCode,
		})
	}

	return c.complete(callID, start, payload, body, Result{
		Text:       text,
		Outcome:    OutcomeOK,
		HTTPStatus: resp.StatusCode,
	})
}

func (c *httpClient) complete(callID string, start time.Time, payload, response []byte, res Result) Result {
	c.observer.OnCallComplete(CallEvent{
		CallID:     callID,
		Outcome:    res.Outcome,
		HTTPStatus: res.HTTPStatus,
		LatencyMs:  time.Since(start).Milliseconds(),
		Payload:    payload,
		Response:   response,
	})
	return res
}
