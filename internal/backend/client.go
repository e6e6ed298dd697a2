// Package backend is the REST client for the the-404 backend API, plus
// the machine-scoped API of whichever machine is currently connected.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Config selects the backend endpoints. InternalBaseURL is used for
// server-side proxied calls (login) when set; BaseURL for everything
// else. UseMockData substitutes in-memory fixtures for every call.
type Config struct {
	BaseURL         string `mapstructure:"base_url"`
	InternalBaseURL string `mapstructure:"internal_base_url"`
	UseMockData     bool   `mapstructure:"use_mock_data"`
}

type Client struct {
	cfg  Config
	http *http.Client
	mock *mockState
}

func NewClient(cfg Config) *Client {
	c := &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: 15 * time.Second},
	}
	if cfg.UseMockData {
		c.mock = newMockState()
		slog.Info("Backend client running in mock-data mode")
	}
	return c
}

func (c *Client) loginBase() string {
	if c.cfg.InternalBaseURL != "" {
		return c.cfg.InternalBaseURL
	}
	return c.cfg.BaseURL
}

// Login authenticates against POST /users/login.
func (c *Client) Login(ctx context.Context, email, password string) (LoginResponse, error) {
	if c.mock != nil {
		return c.mock.login(email)
	}

	var resp LoginResponse
	err := c.doJSON(ctx, http.MethodPost, c.loginBase()+"/users/login", "",
		map[string]string{"email": email, "password": password}, &resp)
	if err != nil {
		return LoginResponse{}, err
	}
	if resp.Token == "" {
		return LoginResponse{}, ErrInvalidFormat
	}
	return resp, nil
}

// ForgotPassword requests a reset email. The backend answers 2xx whether
// or not the account exists.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	if c.mock != nil {
		return nil
	}
	return c.doJSON(ctx, http.MethodPost, c.cfg.BaseURL+"/users/forgot-password", "",
		map[string]string{"email": email}, nil)
}

// ResetPassword exchanges a reset token and a new password.
func (c *Client) ResetPassword(ctx context.Context, token, newPassword string) error {
	if c.mock != nil {
		return nil
	}
	return c.doJSON(ctx, http.MethodPost, c.cfg.BaseURL+"/users/reset-password-with-new-password", "",
		map[string]string{"token": token, "newPassword": newPassword}, nil)
}

// ListMachines fetches the registered machine collection.
func (c *Client) ListMachines(ctx context.Context, token string) ([]Machine, error) {
	if token == "" {
		return nil, ErrNoToken
	}
	if c.mock != nil {
		return c.mock.listMachines(), nil
	}

	var resp MachinesResponse
	if err := c.doJSON(ctx, http.MethodGet, c.cfg.BaseURL+"/machines", token, nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Result || resp.ExistingMachines == nil {
		return nil, ErrInvalidFormat
	}
	return resp.ExistingMachines, nil
}

// AddMachine registers a new machine and returns the created object.
func (c *Client) AddMachine(ctx context.Context, token string, m NewMachine) (Machine, error) {
	if token == "" {
		return Machine{}, ErrNoToken
	}
	if c.mock != nil {
		return c.mock.addMachine(m), nil
	}

	var created Machine
	if err := c.doJSON(ctx, http.MethodPost, c.cfg.BaseURL+"/machines", token, m, &created); err != nil {
		return Machine{}, err
	}
	if created.ID == "" {
		return Machine{}, ErrInvalidFormat
	}
	return created, nil
}

// DeleteMachine removes a machine by id.
func (c *Client) DeleteMachine(ctx context.Context, token, id string) error {
	if token == "" {
		return ErrNoToken
	}
	if c.mock != nil {
		return c.mock.deleteMachine(id)
	}
	return c.doJSON(ctx, http.MethodDelete, c.cfg.BaseURL+"/machines/"+id, token, nil, nil)
}

// ListApps fetches the PM2 apps of the connected machine. machineURL is
// the machine's urlFor404Api.
func (c *Client) ListApps(ctx context.Context, token, machineURL string) ([]Pm2App, error) {
	if token == "" {
		return nil, ErrNoToken
	}
	if c.mock != nil {
		return c.mock.listApps(), nil
	}

	var resp AppsResponse
	if err := c.doJSON(ctx, http.MethodGet, machineURL+"/pm2/apps", token, nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Result || resp.Apps == nil {
		return nil, ErrInvalidFormat
	}
	return resp.Apps, nil
}

// ToggleApp asks PM2 to stop an online app or start a stopped one.
func (c *Client) ToggleApp(ctx context.Context, token, machineURL, name string) error {
	if token == "" {
		return ErrNoToken
	}
	if c.mock != nil {
		return c.mock.toggleApp(name)
	}
	return c.doJSON(ctx, http.MethodPost, machineURL+"/pm2/apps/"+name+"/toggle", token, nil, nil)
}

// AppLogs fetches the recent log lines of one PM2 app.
func (c *Client) AppLogs(ctx context.Context, token, machineURL, name string) ([]string, error) {
	if token == "" {
		return nil, ErrNoToken
	}
	if c.mock != nil {
		return c.mock.appLogs(name), nil
	}

	var resp AppLogsResponse
	if err := c.doJSON(ctx, http.MethodGet, machineURL+"/pm2/apps/"+name+"/logs", token, nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Result {
		return nil, ErrInvalidFormat
	}
	return resp.Lines, nil
}

// doJSON issues one request and decodes the response. Non-2xx responses
// become an APIError carrying the backend's "error" text when the body
// has one; transport failures become a ConnectionError.
func (c *Client) doJSON(ctx context.Context, method, url, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewBuffer(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &ConnectionError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &ConnectionError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apiError(resp.StatusCode, errorText(resp, raw))
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return ErrInvalidFormat
		}
	}
	return nil
}

// errorText extracts the JSON "error" field from a failure body. Non-JSON
// bodies yield "" so the caller falls back to the templated message.
func errorText(resp *http.Response, raw []byte) string {
	if !strings.Contains(resp.Header.Get("Content-Type"), "application/json") {
		return ""
	}
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return ""
	}
	return payload.Error
}

func newMockMachineID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:24]
}
