package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/krishisahayak/app-backend/internal/types"
)

// StatusSuccess is the pump controller's success marker.
const StatusSuccess = "success"

// PumpClient talks to the irrigation pump controller. It is a distinct
// client because the pump API may run on a separate host from the main
// backend.
type PumpClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewPumpClient creates a new pump controller client.
func NewPumpClient(baseURL string, opts ...Option) *PumpClient {
	// Reuse Client options by building through a throwaway Client.
	c := NewClient(baseURL, opts...)
	return &PumpClient{baseURL: c.baseURL, httpClient: c.httpClient}
}

// PumpError is a command the controller accepted but refused to execute.
type PumpError struct {
	Message string
}

func (e *PumpError) Error() string {
	if e.Message == "" {
		return "pump: command rejected"
	}
	return "pump: " + e.Message
}

// Start turns the pump on.
func (c *PumpClient) Start(ctx context.Context) (*types.PumpStatus, error) {
	return c.command(ctx, "start")
}

// Stop turns the pump off.
func (c *PumpClient) Stop(ctx context.Context) (*types.PumpStatus, error) {
	return c.command(ctx, "stop")
}

func (c *PumpClient) command(ctx context.Context, action string) (*types.PumpStatus, error) {
	url := fmt.Sprintf("%s/iot/pump/%s", c.baseURL, action)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pump: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var status types.PumpStatus
	if err := json.Unmarshal(body, &status); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	if status.Status != StatusSuccess {
		return nil, &PumpError{Message: status.Message}
	}
	return &status, nil
}
