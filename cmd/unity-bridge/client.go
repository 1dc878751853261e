package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// ErrNotConnected indicates the editor-side HTTP server is not
// reachable, usually because the editor is closed or the bridge
// plugin is not loaded.
var ErrNotConnected = errors.New("unity editor not reachable")

// Client talks to the HTTP server the editor plugin runs inside the
// Unity editor process.
type Client struct {
	baseURL string
	httpc   *http.Client
}

func NewClient(host string, port int, timeout time.Duration) *Client {
	return &Client{
		baseURL: fmt.Sprintf("http://%s:%d", host, port),
		httpc:   &http.Client{Timeout: timeout},
	}
}

func (c *Client) request(ctx context.Context, method, path string, params url.Values) (map[string]any, error) {
	u := c.baseURL + path
	if method == http.MethodGet && len(params) > 0 {
		u += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.httpc.Do(req)
	if err != nil {
		var opErr *net.OpError
		if errors.As(err, &opErr) {
			return nil, fmt.Errorf("%w: %s", ErrNotConnected, c.baseURL)
		}
		return nil, err
	}
	defer resp.Body.Close()
	d, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var res map[string]any
	if err := json.Unmarshal(d, &res); err != nil {
		return nil, fmt.Errorf("bad response from %s: %w", path, err)
	}
	return res, nil
}

func (c *Client) Status(ctx context.Context) (map[string]any, error) {
	return c.request(ctx, http.MethodGet, "/status", nil)
}

func (c *Client) Refresh(ctx context.Context) (map[string]any, error) {
	return c.request(ctx, http.MethodPost, "/refresh", nil)
}

func (c *Client) Logs(ctx context.Context, count int, level string) (map[string]any, error) {
	params := url.Values{"count": []string{strconv.Itoa(count)}}
	if level != "" {
		params.Set("level", level)
	}
	return c.request(ctx, http.MethodGet, "/logs", params)
}

func (c *Client) ClearLogs(ctx context.Context) (map[string]any, error) {
	return c.request(ctx, http.MethodPost, "/logs/clear", nil)
}

func (c *Client) CompileStatus(ctx context.Context) (map[string]any, error) {
	return c.request(ctx, http.MethodGet, "/compile/status", nil)
}

func (c *Client) Play(ctx context.Context) (map[string]any, error) {
	return c.request(ctx, http.MethodPost, "/play", nil)
}

func (c *Client) Stop(ctx context.Context) (map[string]any, error) {
	return c.request(ctx, http.MethodPost, "/stop", nil)
}

func (c *Client) Pause(ctx context.Context) (map[string]any, error) {
	return c.request(ctx, http.MethodPost, "/pause", nil)
}

func (c *Client) PingAsset(ctx context.Context, assetPath string) (map[string]any, error) {
	return c.request(ctx, http.MethodGet, "/ping", url.Values{"path": []string{assetPath}})
}

func (c *Client) Selection(ctx context.Context) (map[string]any, error) {
	return c.request(ctx, http.MethodGet, "/selection", nil)
}

func (c *Client) ProjectPath(ctx context.Context) (map[string]any, error) {
	return c.request(ctx, http.MethodGet, "/project/path", nil)
}

func (c *Client) CurrentScene(ctx context.Context) (map[string]any, error) {
	return c.request(ctx, http.MethodGet, "/scene/current", nil)
}

// IsConnected reports whether the editor answers /status with success.
func (c *Client) IsConnected(ctx context.Context) bool {
	status, err := c.Status(ctx)
	if err != nil {
		return false
	}
	ok, _ := status["success"].(bool)
	return ok
}
