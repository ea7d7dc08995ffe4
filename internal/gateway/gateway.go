package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/Botopia-Tecnology/EZDocu-frontend-sub001/internal/logutil"
	"github.com/Botopia-Tecnology/EZDocu-frontend-sub001/internal/metrics"
	"github.com/Botopia-Tecnology/EZDocu-frontend-sub001/pkg/models"
)

// Client forwards JSON requests to one upstream service. It holds no
// per-request state; a single Client is shared by all concurrent requests.
type Client struct {
	log     *slog.Logger
	name    string
	baseURL string
	http    *http.Client
}

// New returns a Client for the upstream at baseURL. name labels the
// upstream in logs and metrics. timeout bounds every call; exceeding it
// surfaces as an error to the caller rather than hanging.
func New(logger *slog.Logger, name, baseURL string, timeout time.Duration) *Client {
	return &Client{
		log:     logger,
		name:    name,
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// Response is an upstream reply: the status code and the raw body, relayed
// to the browser verbatim by the handlers.
type Response struct {
	Status int
	Body   json.RawMessage
}

// OK reports whether the upstream returned a 2xx status.
func (r *Response) OK() bool {
	return r.Status >= 200 && r.Status < 300
}

// Forward sends method+path to the upstream with the given JSON body and
// optional bearer credential, and returns the upstream's status and body.
// A non-2xx status is not an error; network failures and timeouts are.
func (c *Client) Forward(ctx context.Context, method, path string, body any, bearer string) (*Response, error) {
	start := time.Now()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, logutil.LogAndWrapErr(c.log, "encoding upstream request body", err, "upstream", c.name, "path", path)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("building upstream request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.UpstreamRequestSeconds.WithLabelValues(c.name, "error").Observe(time.Since(start).Seconds())
		return nil, logutil.DebugAndWrapErr(c.log, "upstream request failed", err, "upstream", c.name, "method", method, "path", path)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.UpstreamRequestSeconds.WithLabelValues(c.name, "error").Observe(time.Since(start).Seconds())
		return nil, logutil.DebugAndWrapErr(c.log, "reading upstream response", err, "upstream", c.name, "path", path)
	}

	metrics.UpstreamRequestSeconds.WithLabelValues(c.name, strconv.Itoa(resp.StatusCode)).Observe(time.Since(start).Seconds())
	c.log.Debug("upstream call", "upstream", c.name, "method", method, "path", path, "status", resp.StatusCode, "duration", time.Since(start).String())

	return &Response{Status: resp.StatusCode, Body: raw}, nil
}

// AuthResult is the reply shape of the external auth service for both login
// and registration. A Status other than "success" or a missing User means
// the attempt failed and Message says why.
type AuthResult struct {
	Status      string           `json:"status"`
	Message     string           `json:"message,omitempty"`
	User        *models.User     `json:"user"`
	UserType    models.Role      `json:"userType"`
	Team        *models.Account  `json:"team,omitempty"`
	Accounts    []models.Account `json:"accounts,omitempty"`
	AccessToken string           `json:"accessToken"`
}

// Succeeded reports whether the auth service accepted the attempt. A reply
// without a user or a recognized role is a failure even when the status
// field claims otherwise.
func (a *AuthResult) Succeeded() bool {
	return a.Status == "success" && a.User != nil && a.UserType.IsValid()
}

type credentials struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	InviteID *string `json:"inviteId,omitempty"`
}

// Login authenticates against the external auth service. The returned
// status is the upstream HTTP status, relayed by the handler when the
// attempt is rejected with a structured body.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResult, int, error) {
	return c.authCall(ctx, "/auth/login", credentials{Email: email, Password: password})
}

// Register creates an account via the external auth service. inviteID is
// optional and joins the new user to an existing team.
func (c *Client) Register(ctx context.Context, email, password string, inviteID *string) (*AuthResult, int, error) {
	return c.authCall(ctx, "/auth/register", credentials{Email: email, Password: password, InviteID: inviteID})
}

func (c *Client) authCall(ctx context.Context, path string, creds credentials) (*AuthResult, int, error) {
	resp, err := c.Forward(ctx, http.MethodPost, path, creds, "")
	if err != nil {
		return nil, 0, err
	}

	var result AuthResult
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, resp.Status, logutil.DebugAndWrapErr(c.log, "decoding auth response", err, "path", path, "status", resp.Status)
	}
	return &result, resp.Status, nil
}
