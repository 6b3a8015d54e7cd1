// Package catalog submits finished records to the catalog HTTP API.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/tmarchand/gunindex/internal/frt"
	"github.com/tmarchand/gunindex/internal/listing"
)

// Client talks to the catalog API. Submissions are one POST per batch;
// failures are reported to the caller and never retried here.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

func NewClient(baseURL string, timeout time.Duration, log *slog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SubmitRecords posts a batch of firearm reference records.
func (c *Client) SubmitRecords(ctx context.Context, records []frt.Record) error {
	return c.post(ctx, "/api/v1/frt", records)
}

// SubmitListings posts a batch of normalized classifieds listings.
func (c *Client) SubmitListings(ctx context.Context, listings []listing.Record) error {
	return c.post(ctx, "/api/v1/external-listings", listings)
}

func (c *Client) post(ctx context.Context, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal batch: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("post %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("post %s: status %d: %s", path, resp.StatusCode, string(respBody))
	}

	var decoded any
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		c.log.Warn("catalog response is not valid JSON", "path", path, "error", err)
	}
	return nil
}

// Close releases idle connections.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}
