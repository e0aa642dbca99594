package uos

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
)

// OutcomeKind tags the variant held by an Outcome.
type OutcomeKind int

const (
	// OutcomeResponse is a 2xx response with a decoded body.
	OutcomeResponse OutcomeKind = iota
	// OutcomeResponseError is a non-2xx response.
	OutcomeResponseError
	// OutcomeNoResponse means the request went out but no response came back.
	OutcomeNoResponse
	// OutcomeRequestError means the request could not be built or sent.
	OutcomeRequestError
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeResponse:
		return "response"
	case OutcomeResponseError:
		return "response-error"
	case OutcomeNoResponse:
		return "no-response"
	case OutcomeRequestError:
		return "request-error"
	}
	return fmt.Sprintf("OutcomeKind(%d)", int(k))
}

// Payload is a decoded JSON object as returned by the service.
type Payload = map[string]any

// Request describes one call to the service.
type Request struct {
	Method string
	URL    string
	Header http.Header
	// Body is marshaled as JSON. A nil Body is sent as {}.
	Body any
	// Timeout bounds the call. Zero means DefaultTimeout.
	Timeout time.Duration
}

// Outcome is the result of one HTTP call.
type Outcome struct {
	Kind OutcomeKind

	// Status and StatusText are set for OutcomeResponse and OutcomeResponseError.
	Status     int
	StatusText string

	// Body is the decoded JSON object, if the response carried one.
	Body Payload

	// RawBody holds the undecoded response body.
	RawBody []byte

	// Err is set for OutcomeNoResponse and OutcomeRequestError.
	Err error
}

// Sender performs a single HTTP call. It never retries.
type Sender interface {
	Send(ctx context.Context, req *Request) Outcome
}

// HTTPSender implements Sender on net/http.
type HTTPSender struct {
	client *http.Client
	logger hclog.Logger
}

// NewHTTPSender creates a Sender using client. A nil logger discards output.
func NewHTTPSender(client *http.Client, logger hclog.Logger) *HTTPSender {
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &HTTPSender{
		client: client,
		logger: logger.Named("transport"),
	}
}

// Send implements Sender.
func (s *HTTPSender) Send(ctx context.Context, req *Request) Outcome {
	timeout := req.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var body any = struct{}{}
	if req.Body != nil {
		body = req.Body
	}
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return Outcome{Kind: OutcomeRequestError, Err: fmt.Errorf("failed to marshal request body: %w", err)}
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, bytes.NewReader(bodyBytes))
	if err != nil {
		return Outcome{Kind: OutcomeRequestError, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	for k, vs := range req.Header {
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	requestID := uuid.NewString()
	httpReq.Header.Set("X-Request-Id", requestID)

	start := time.Now()
	resp, err := s.client.Do(httpReq)
	if err != nil {
		s.logger.Debug("no response",
			"method", req.Method,
			"url", req.URL,
			"request_id", requestID,
			"error", err,
		)
		return Outcome{Kind: OutcomeNoResponse, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Outcome{Kind: OutcomeNoResponse, Status: resp.StatusCode, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	s.logger.Debug("response",
		"method", req.Method,
		"url", req.URL,
		"request_id", requestID,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	out := Outcome{
		Kind:       OutcomeResponse,
		Status:     resp.StatusCode,
		StatusText: http.StatusText(resp.StatusCode),
		Body:       decodeObject(raw),
		RawBody:    raw,
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		out.Kind = OutcomeResponseError
	}
	return out
}

// decodeObject returns the JSON object in raw, an empty object for an empty
// body, and nil for anything else.
func decodeObject(raw []byte) Payload {
	if len(bytes.TrimSpace(raw)) == 0 {
		return Payload{}
	}
	var obj Payload
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil
	}
	if obj == nil {
		return nil
	}
	return obj
}

// isTimeout reports whether err came from a deadline.
func isTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}
