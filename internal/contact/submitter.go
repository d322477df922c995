package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/oklog/ulid/v2"
)

const (
	// DefaultDelay stands in for network latency when no endpoint is configured.
	DefaultDelay    = 1500 * time.Millisecond
	defaultTimeout  = 8 * time.Second
	referencePrefix = "lead_"
)

// Submission is a validated lead handed to a Submitter.
type Submission struct {
	Reference   string    `json:"reference"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	Subject     string    `json:"subject"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// NewSubmission stamps values with a fresh reference and time.
func NewSubmission(v Values) Submission {
	return Submission{
		Reference:   newReference(),
		Name:        v.Name,
		Email:       v.Email,
		Phone:       v.Phone,
		Subject:     v.Subject,
		Message:     v.Message,
		SubmittedAt: time.Now().UTC(),
	}
}

func newReference() string {
	return referencePrefix + strings.ToLower(ulid.Make().String())
}

// Submitter delivers a lead to wherever leads go.
type Submitter interface {
	Submit(ctx context.Context, s Submission) error
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(context.Context, Submission) error

// Submit calls f.
func (f SubmitterFunc) Submit(ctx context.Context, s Submission) error { return f(ctx, s) }

// Simulated waits Delay and reports success. No external I/O happens.
type Simulated struct {
	Delay time.Duration
}

// Submit blocks for the configured delay or until ctx is done.
func (s Simulated) Submit(ctx context.Context, _ Submission) error {
	d := s.Delay
	if d < 0 {
		d = 0
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// HTTPSubmitter posts submissions as JSON to an external endpoint.
type HTTPSubmitter struct {
	endpoint string
	client   *retryablehttp.Client
}

// NewHTTPSubmitter builds a client for endpoint. retries is the number of
// additional attempts after a failed request; 0 disables retrying.
func NewHTTPSubmitter(endpoint string, retries int) (*HTTPSubmitter, error) {
	endpoint = strings.TrimSpace(endpoint)
	u, err := url.Parse(endpoint)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("contact: invalid endpoint %q", endpoint)
	}
	if retries < 0 {
		retries = 0
	}
	rc := retryablehttp.NewClient()
	rc.Logger = log.New(io.Discard, "", 0)
	rc.RetryMax = retries
	rc.RetryWaitMin = 200 * time.Millisecond
	rc.RetryWaitMax = 2 * time.Second
	rc.HTTPClient.Timeout = defaultTimeout
	return &HTTPSubmitter{endpoint: u.String(), client: rc}, nil
}

// Endpoint returns the configured URL.
func (h *HTTPSubmitter) Endpoint() string { return h.endpoint }

// Submit posts s and treats any non-2xx status as failure.
func (h *HTTPSubmitter) Submit(ctx context.Context, s Submission) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return err
	}
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, h.endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Idempotency-Key", s.Reference)

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("contact: deliver %s: %w", s.Reference, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("contact: endpoint status %d: %s", resp.StatusCode, drainError(resp.Body))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func drainError(r io.Reader) string {
	if r == nil {
		return ""
	}
	b, _ := io.ReadAll(io.LimitReader(r, 256))
	return strings.TrimSpace(string(b))
}
