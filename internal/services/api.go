package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Renal37/order-dashboard/internal/logger"
	"github.com/Renal37/order-dashboard/internal/models"
	"go.uber.org/zap"
)

const DefaultRequestTimeout = 30 * time.Second

// APIClient talks to the remote order API. Errors are returned unchanged to
// the caller after being logged.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewAPIClient(baseURL string, timeout time.Duration) *APIClient {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	return &APIClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *APIClient) ListOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order

	if err := c.do(ctx, http.MethodGet, "/orders", nil, &orders); err != nil {
		return nil, err
	}

	if orders == nil {
		orders = []models.Order{}
	}

	return orders, nil
}

func (c *APIClient) CreateOrder(ctx context.Context, order models.NewOrder) (*models.Order, error) {
	var created models.Order

	if err := c.do(ctx, http.MethodPost, "/orders", order, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

func (c *APIClient) UpdateOrderStatus(ctx context.Context, orderID string, status models.OrderStatus) (*models.Order, error) {
	var updated models.Order

	path := fmt.Sprintf("/orders/%s/status", url.PathEscape(orderID))
	if err := c.do(ctx, http.MethodPatch, path, models.StatusUpdate{Status: status}, &updated); err != nil {
		return nil, err
	}

	return &updated, nil
}

func (c *APIClient) DeleteOrder(ctx context.Context, orderID string) (*models.DeleteConfirmation, error) {
	var confirmation models.DeleteConfirmation

	path := fmt.Sprintf("/orders/%s", url.PathEscape(orderID))
	body, err := c.send(ctx, http.MethodDelete, path, nil)
	if err != nil {
		return nil, err
	}

	// Only the status code matters here; a body that is not JSON is kept as text.
	if json.Unmarshal(body, &confirmation) != nil {
		confirmation.Message = strings.TrimSpace(string(body))
	}

	return &confirmation, nil
}

func (c *APIClient) CheckHealth(ctx context.Context) (*models.HealthStatus, error) {
	var status models.HealthStatus

	body, err := c.send(ctx, http.MethodGet, "/health", nil)
	if err != nil {
		return nil, err
	}

	// Any 2xx is healthy, whatever the body says.
	if json.Unmarshal(body, &status) != nil {
		status.Status = strings.TrimSpace(string(body))
	}

	return &status, nil
}

func (c *APIClient) FetchNotifications(ctx context.Context) ([]models.Notification, error) {
	var notifications []models.Notification

	if err := c.do(ctx, http.MethodGet, "/notifications", nil, &notifications); err != nil {
		return nil, err
	}

	return notifications, nil
}

type errorResponse struct {
	Error string `json:"error"`
}

// do sends the request and decodes a 2xx body into out.
func (c *APIClient) do(ctx context.Context, method, path string, payload, out any) error {
	body, err := c.send(ctx, method, path, payload)
	if err != nil {
		return err
	}

	if out == nil || len(body) == 0 {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to unmarshal %s %s response: %w", method, path, err)
	}

	return nil
}

// send performs the request and returns the body of a 2xx response. Any other
// status becomes an *APIError.
func (c *APIClient) send(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var body io.Reader

	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	logger.Log.Debug("api request", zap.String("method", method), zap.String("path", path))

	startTime := time.Now()
	res, err := c.httpClient.Do(req)
	if err != nil {
		logger.Log.Error("api request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to send %s %s: %w", method, path, err)
	}

	defer res.Body.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(res.Body); err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	logger.Log.Debug("api response",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", res.StatusCode),
		zap.Duration("duration", time.Since(startTime)),
	)

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		apiErr := &APIError{Method: method, Path: path, StatusCode: res.StatusCode}

		var parsed errorResponse
		if json.Unmarshal(buf.Bytes(), &parsed) == nil {
			apiErr.Message = parsed.Error
		}

		logger.Log.Error("api error response",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", res.StatusCode),
			zap.String("message", apiErr.Message),
		)

		return nil, apiErr
	}

	return buf.Bytes(), nil
}
