package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"pricing-bot/internal/pricing"
)

// Client fetches the pricing catalog from the platform's pricing API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(baseURL, token string, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

func (c *Client) GetCasinoPricing(ctx context.Context) ([]pricing.CasinoPriceRow, error) {
	var rows []pricing.CasinoPriceRow
	if err := c.getJSON(ctx, "/api/pricing/casino", &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) GetSportsbookPricing(ctx context.Context) ([]pricing.SportsbookPriceRow, error) {
	var rows []pricing.SportsbookPriceRow
	if err := c.getJSON(ctx, "/api/pricing/sportsbook", &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) LoadCatalog(ctx context.Context) (*pricing.Catalog, error) {
	const operation = "api.LoadCatalog"

	casino, err := c.GetCasinoPricing(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: casino: %w", operation, err)
	}
	sportsbook, err := c.GetSportsbookPricing(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: sportsbook: %w", operation, err)
	}

	c.logger.Info("Loaded pricing catalog from API",
		zap.String("base_url", c.baseURL),
		zap.Int("casino_rows", len(casino)),
		zap.Int("sportsbook_rows", len(sportsbook)))

	return &pricing.Catalog{Casino: casino, Sportsbook: sportsbook}, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		c.baseURL+path,
		nil,
	)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
