// Package gateway talks to the external WhatsApp messaging gateway.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// Config carries the gateway connection settings. The client is constructed
// once at process start and shared across requests.
type Config struct {
	BaseURL string
	APIKey  string // optional; sent as a bearer token when set
	Timeout time.Duration
}

// Client issues single-attempt calls against the gateway HTTP API. There is
// no retry or backoff; callers treat each call as best-effort.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: timeout},
	}
}

// StatusInfo reports the gateway's session state.
type StatusInfo struct {
	Connected bool   `json:"connected"`
	State     string `json:"state"`
}

// PairingInfo carries the QR payload used to pair the gateway with a device.
type PairingInfo struct {
	QRCode string `json:"qr"`
}

// SendResult is the per-call outcome of a message send. Transport and gateway
// failures are folded into Success=false; SendMessage never returns an error.
type SendResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (c *Client) Status(ctx context.Context) (StatusInfo, error) {
	var info StatusInfo
	if err := c.getJSON(ctx, "/status", &info); err != nil {
		return StatusInfo{}, err
	}
	return info, nil
}

// Connected reports the session state in the shape the monitoring service
// consumes.
func (c *Client) Connected(ctx context.Context) (bool, string, error) {
	info, err := c.Status(ctx)
	if err != nil {
		return false, "", err
	}
	return info.Connected, info.State, nil
}

func (c *Client) Connect(ctx context.Context) (PairingInfo, error) {
	var info PairingInfo
	if err := c.getJSON(ctx, "/connect", &info); err != nil {
		return PairingInfo{}, err
	}
	return info, nil
}

// SendMessage posts one message to one normalized address. A single attempt
// is made; any failure is reported through the result, never panicked or
// returned as an error.
func (c *Client) SendMessage(ctx context.Context, to, message string) SendResult {
	payload, err := json.Marshal(map[string]string{"to": to, "message": message})
	if err != nil {
		return SendResult{Success: false, Message: fmt.Sprintf("encode payload: %v", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/send-message", bytes.NewReader(payload))
	if err != nil {
		return SendResult{Success: false, Message: fmt.Sprintf("build request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return SendResult{Success: false, Message: fmt.Sprintf("gateway unreachable: %v", err)}
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return SendResult{Success: false, Message: fmt.Sprintf("gateway returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))}
	}

	var result SendResult
	if err := json.Unmarshal(body, &result); err != nil {
		// 2xx with an unparseable body still counts as delivered to the gateway.
		return SendResult{Success: true, Message: "sent"}
	}
	return result
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request for %s: %w", path, err)
	}
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("gateway request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("gateway %s returned status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode gateway %s response: %w", path, err)
	}
	return nil
}

func (c *Client) authorize(req *http.Request) {
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
}
