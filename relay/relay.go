// Package relay forwards contact form submissions to an outbound webhook.
//
// The Handler accepts a JSON object, forwards the exact request bytes to the
// configured webhook, and translates the outcome:
//
//	200 {"success":true}                         webhook answered 2xx
//	<status> {"error":"Webhook failed: ..."}      webhook answered non-2xx
//	500 {"error":"Internal Server Error: ..."}   bad body or transport failure
package relay

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SubmissionHeader carries the id assigned to every submission.
const SubmissionHeader = "X-Submission-ID"

// Defaults for Config fields left zero.
const (
	DefaultTimeout      = 15 * time.Second
	DefaultMaxBodyBytes = 64 << 10
)

// Submission is the contact form payload.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Config configures a Handler.
type Config struct {
	WebhookURL   string
	Timeout      time.Duration
	MaxBodyBytes int64
	// HTTPClient overrides the client used to call the webhook. Its own
	// timeout applies instead of Timeout.
	HTTPClient *http.Client
}

// Handler serves POST /api/contact.
type Handler struct {
	webhook string
	client  *http.Client
	maxBody int64
	log     *zap.Logger
}

// NewHandler returns a relay handler. A nil logger discards logs.
func NewHandler(cfg Config, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	return &Handler{
		webhook: cfg.WebhookURL,
		client:  client,
		maxBody: cfg.MaxBodyBytes,
		log:     log,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := uuid.NewString()
	w.Header().Set(SubmissionHeader, id)
	log := h.log.With(zap.String("submission_id", id))

	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeJSON(w, http.StatusMethodNotAllowed, errorBody("Method Not Allowed"))
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBody))
	if err != nil {
		h.fail(w, log, fmt.Errorf("read body: %w", err))
		return
	}
	if err := checkObject(body); err != nil {
		h.fail(w, log, err)
		return
	}

	status, text, err := h.forward(r, body)
	if err != nil {
		h.fail(w, log, err)
		return
	}
	if status >= 200 && status < 300 {
		log.Info("submission relayed", zap.Int("webhook_status", status))
		writeJSON(w, http.StatusOK, map[string]bool{"success": true})
		return
	}
	log.Warn("webhook rejected submission", zap.Int("webhook_status", status), zap.String("body", text))
	writeJSON(w, status, errorBody(fmt.Sprintf("Webhook failed: %d %s", status, text)))
}

// forward posts body to the webhook and returns its status and body text.
func (h *Handler) forward(r *http.Request, body []byte) (int, string, error) {
	if h.webhook == "" {
		return 0, "", errors.New("webhook URL is not configured")
	}
	req, err := http.NewRequestWithContext(r.Context(), http.MethodPost, h.webhook, bytes.NewReader(body))
	if err != nil {
		return 0, "", fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if id := r.Header.Get("X-Request-Id"); id != "" {
		req.Header.Set("X-Request-Id", id)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return 0, "", fmt.Errorf("call webhook: %w", err)
	}
	defer resp.Body.Close()
	text, err := io.ReadAll(io.LimitReader(resp.Body, h.maxBody))
	if err != nil {
		return 0, "", fmt.Errorf("read webhook response: %w", err)
	}
	return resp.StatusCode, strings.TrimSpace(string(text)), nil
}

func (h *Handler) fail(w http.ResponseWriter, log *zap.Logger, err error) {
	log.Error("relay failed", zap.Error(err))
	writeJSON(w, http.StatusInternalServerError, errorBody("Internal Server Error: "+err.Error()))
}

// checkObject verifies body is a single JSON object.
func checkObject(body []byte) error {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil {
		return fmt.Errorf("decode submission: %w", err)
	}
	if obj == nil {
		return errors.New("decode submission: body is not a JSON object")
	}
	return nil
}

func errorBody(msg string) map[string]string {
	return map[string]string{"error": msg}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
