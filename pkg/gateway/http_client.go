// pkg/gateway/http_client.go

package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

type httpClient struct {
	endpoint string
	key      string
	httpc    *http.Client
}

func NewHTTP(endpoint, key string) Client {
	return &httpClient{
		endpoint: endpoint,
		key:      key,
		httpc:    &http.Client{Timeout: 20 * time.Second},
	}
}

func (c *httpClient) do(ctx context.Context, method, path string, p Payload) (*http.Response, error) {
	b, _ := json.Marshal(p)
	req, err := http.NewRequestWithContext(ctx, method, strings.TrimRight(c.endpoint, "/")+path, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	if c.key != "" {
		req.Header.Set("Authorization", "Bearer "+c.key)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.httpc.Do(req)
}

func (c *httpClient) CreatePath(ctx context.Context, p Payload) (string, error) {
	resp, err := c.do(ctx, "POST", "/learning-paths", p)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("backend: status %d", resp.StatusCode)
	}
	var out struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode backend response: %w", err)
	}
	return out.ID, nil
}

func (c *httpClient) UpdatePath(ctx context.Context, id string, p Payload) error {
	resp, err := c.do(ctx, "PUT", "/learning-paths/"+id, p)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("backend: status %d", resp.StatusCode)
	}
	return nil
}
