// Package orders aggregates a user's orders from the peer order service.
package orders

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopnet/user-service/internal/model"
)

// listEnvelope mirrors the peer service's response wrapper. Only the data
// field matters here; message and success are informational.
type listEnvelope struct {
	Message string        `json:"message"`
	Success bool          `json:"success"`
	Data    []model.Order `json:"data"`
}

// Client calls the peer order service. The peer exposes a single bulk-list
// endpoint, GET {baseURL}/all, so filtering happens client-side: cost is
// O(total orders across all users) per call. That ceiling is accepted for
// the scale this system targets.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a Client around a single shared HTTP client with an
// explicit timeout. The same client is reused for every call.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// ForUser fetches the peer's full order list and keeps only the orders
// belonging to userID, preserving their order from the source. A transport
// or decode failure surfaces as model.ErrOrdersUnavailable.
func (c *Client) ForUser(ctx context.Context, userID int64) ([]model.Order, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/all", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrOrdersUnavailable, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrOrdersUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", model.ErrOrdersUnavailable, resp.StatusCode)
	}

	var envelope listEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrOrdersUnavailable, err)
	}

	var filtered []model.Order
	for _, order := range envelope.Data {
		if order.UserID == userID {
			filtered = append(filtered, order)
		}
	}
	return filtered, nil
}
