package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Result is the outcome of a submission as shown to the visitor.
type Result struct {
	Success      bool
	Status       int
	Error        string
	SubmissionID string
}

// Client posts submissions to a relay endpoint.
type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient returns a client for the relay at endpoint. A nil http client
// uses one with DefaultTimeout.
func NewClient(endpoint string, hc *http.Client) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{endpoint: endpoint, http: hc}
}

// Submit sends s. Any response from the relay, success or not, is returned
// as a Result with a nil error. Transport failures return a Result whose
// Error is displayable text together with the underlying error.
func (c *Client) Submit(ctx context.Context, s Submission) (Result, error) {
	body, err := json.Marshal(s)
	if err != nil {
		return Result{Error: "Could not encode your message."}, fmt.Errorf("encode submission: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return Result{Error: "Could not send your message."}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Result{Error: "Network error. Please check your connection and try again."}, fmt.Errorf("submit: %w", err)
	}
	defer resp.Body.Close()

	res := Result{Status: resp.StatusCode, SubmissionID: resp.Header.Get(SubmissionHeader)}
	data, _ := io.ReadAll(io.LimitReader(resp.Body, DefaultMaxBodyBytes))
	var payload struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		payload.Error = fmt.Sprintf("Unexpected response (%d).", resp.StatusCode)
	}
	res.Success = resp.StatusCode == http.StatusOK && payload.Success
	if !res.Success {
		res.Error = payload.Error
		if res.Error == "" {
			res.Error = fmt.Sprintf("Request failed (%d).", resp.StatusCode)
		}
	}
	return res, nil
}
