// Package client is the HTTP client for the HealthTrack API used by healthctl.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	// DefaultBaseURL is used when neither --api nor HEALTH_API_URL is set.
	DefaultBaseURL = "http://localhost:8080"
	// EnvBaseURL overrides the API base URL.
	EnvBaseURL = "HEALTH_API_URL"

	defaultTimeout = 15 * time.Second
)

// ErrNotLoggedIn is returned by protected calls when no session token is stored.
var ErrNotLoggedIn = errors.New("not logged in")

// APIError is a non-2xx response decoded from the server's {error, code} body.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("api: %d %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: %d %s: %s", e.Status, e.Code, e.Message)
}

// ResolveBaseURL picks the flag value, then HEALTH_API_URL, then the default.
func ResolveBaseURL(flagValue string) string {
	url := flagValue
	if url == "" {
		url = os.Getenv(EnvBaseURL)
	}
	if url == "" {
		url = DefaultBaseURL
	}
	return strings.TrimRight(url, "/")
}

// Client talks to the API and keeps the session in a SessionStore.
type Client struct {
	baseURL  string
	http     *http.Client
	sessions *SessionStore
	log      *logrus.Logger
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger sets the logger used for degraded-mode warnings.
func WithLogger(log *logrus.Logger) Option {
	return func(c *Client) { c.log = log }
}

// New creates a client for baseURL storing its session in sessions.
func New(baseURL string, sessions *SessionStore, opts ...Option) *Client {
	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: defaultTimeout},
		sessions: sessions,
		log:      logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Sessions returns the client's session store.
func (c *Client) Sessions() *SessionStore {
	return c.sessions
}

// do sends a JSON request. Protected calls read the token first and fail with
// ErrNotLoggedIn before any network traffic.
func (c *Client) do(ctx context.Context, method, path string, protected bool, body, out interface{}) error {
	var token string
	if protected {
		s, err := c.sessions.Load()
		if err != nil {
			return err
		}
		token = s.Token
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeAPIError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	var body struct {
		Error string `json:"error"`
		Code  string `json:"code"`
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if json.Unmarshal(raw, &body) == nil && body.Error != "" {
		apiErr.Message = body.Error
		apiErr.Code = body.Code
	}
	return apiErr
}

// Register creates an account. It does not log in.
func (c *Client) Register(ctx context.Context, in RegisterInput) (*User, error) {
	var resp struct {
		User User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", false, in, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Login authenticates and persists the returned token and identity.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	var resp struct {
		Token string   `json:"token"`
		User  Identity `json:"user"`
	}
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", false, body, &resp); err != nil {
		return nil, err
	}
	s := &Session{Token: resp.Token, User: resp.User}
	if err := c.sessions.Save(s); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return s, nil
}

// CurrentUser returns the identity of the stored session.
func (c *Client) CurrentUser() (Identity, error) {
	s, err := c.sessions.Load()
	if err != nil {
		return Identity{}, err
	}
	return s.User, nil
}

// Logout discards the stored session. The server keeps no session state.
func (c *Client) Logout() error {
	return c.sessions.Clear()
}

func (c *Client) Profile(ctx context.Context) (*User, error) {
	var resp struct {
		User User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/user/profile", true, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// UpdateProfile sends only the non-nil fields of in.
func (c *Client) UpdateProfile(ctx context.Context, in ProfileUpdate) (*User, error) {
	var resp struct {
		User User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPut, "/api/user/profile", true, in, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

func (c *Client) Symptoms(ctx context.Context) ([]Symptom, error) {
	var resp struct {
		Symptoms []Symptom `json:"symptoms"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/health/symptoms", true, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Symptoms, nil
}

func (c *Client) CreateSymptom(ctx context.Context, in SymptomInput) (*Symptom, error) {
	var resp struct {
		Symptom Symptom `json:"symptom"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/health/symptoms", true, in, &resp); err != nil {
		return nil, err
	}
	return &resp.Symptom, nil
}

func (c *Client) Metrics(ctx context.Context) (*Metrics, error) {
	var m Metrics
	if err := c.do(ctx, http.MethodGet, "/api/health/metrics", true, nil, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (c *Client) Score(ctx context.Context) (*Score, error) {
	var s Score
	if err := c.do(ctx, http.MethodGet, "/api/health/score", true, nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Client) Recommendations(ctx context.Context) ([]string, error) {
	var resp struct {
		Recommendations []string `json:"recommendations"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/health/ai-recommendations", true, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Recommendations, nil
}

func (c *Client) Diagnose(ctx context.Context, symptoms []string) (*Diagnosis, error) {
	var d Diagnosis
	body := map[string][]string{"symptoms": symptoms}
	if err := c.do(ctx, http.MethodPost, "/api/health/ai-diagnosis", true, body, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (c *Client) Appointments(ctx context.Context) ([]DiagnosticTest, error) {
	var resp struct {
		Appointments []DiagnosticTest `json:"appointments"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/health/appointments", true, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Appointments, nil
}

func (c *Client) Tests(ctx context.Context) ([]DiagnosticTest, error) {
	var resp struct {
		Tests []DiagnosticTest `json:"tests"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/diagnostic-tests", true, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Tests, nil
}

func (c *Client) CreateTest(ctx context.Context, in DiagnosticTestInput) (*DiagnosticTest, error) {
	var resp struct {
		Test DiagnosticTest `json:"test"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/diagnostic-tests", true, in, &resp); err != nil {
		return nil, err
	}
	return &resp.Test, nil
}

func (c *Client) DeleteTest(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/diagnostic-tests/%d", id), true, nil, nil)
}

func (c *Client) Alerts(ctx context.Context) ([]Alert, error) {
	var resp struct {
		Alerts []Alert `json:"alerts"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/alerts", true, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Alerts, nil
}

func (c *Client) SetAlertStatus(ctx context.Context, id uint, status string) (*Alert, error) {
	var resp struct {
		Alert Alert `json:"alert"`
	}
	body := map[string]string{"status": status}
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/alerts/%d/status", id), true, body, &resp); err != nil {
		return nil, err
	}
	return &resp.Alert, nil
}
