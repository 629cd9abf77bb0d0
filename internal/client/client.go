package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/julianstephens/adhan/internal/constants"
	apperrors "github.com/julianstephens/adhan/internal/errors"
	"github.com/julianstephens/adhan/internal/logger"
	"github.com/julianstephens/adhan/internal/models"
)

// Config holds the backend settings for a Client.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client reads prayer timings and the day label from the backend. Each call
// issues exactly one request; there are no retries and nothing is cached.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(cfg Config) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = constants.DefaultBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, http: httpClient}
}

// BaseURL returns the normalized backend URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// FetchTimings returns today's prayer timings for the location.
func (c *Client) FetchTimings(ctx context.Context, city, country string) (models.Timings, error) {
	var timings models.Timings

	body, reqURL, err := c.get(ctx, constants.TodayPath, city, country, "application/json")
	if err != nil {
		return timings, err
	}

	if err := json.Unmarshal(body, &timings); err != nil {
		return timings, &apperrors.NetworkError{Op: "decode", URL: reqURL, Err: err}
	}
	return timings, nil
}

// FetchDayLabel returns today's calendar-day label verbatim.
func (c *Client) FetchDayLabel(ctx context.Context, city, country string) (string, error) {
	body, _, err := c.get(ctx, constants.DayLabelPath, city, country, "text/plain")
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func (c *Client) get(ctx context.Context, path, city, country, accept string) ([]byte, string, error) {
	if city == "" {
		city = constants.DefaultCity
	}
	if country == "" {
		country = constants.DefaultCountry
	}

	query := url.Values{}
	query.Set("city", city)
	query.Set("country", country)
	reqURL := c.baseURL + path + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, reqURL, &apperrors.NetworkError{Op: http.MethodGet, URL: reqURL, Err: err}
	}

	requestID := uuid.New().String()
	req.Header.Set("Accept", accept)
	req.Header.Set(constants.RequestIDHeader, requestID)

	logger.Debug("Fetching", "url", reqURL, "request_id", requestID)

	res, err := c.http.Do(req)
	if err != nil {
		logger.Debug("Fetch failed", "url", reqURL, "request_id", requestID, "error", err)
		return nil, reqURL, &apperrors.NetworkError{Op: http.MethodGet, URL: reqURL, Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, res.Body)
		logger.Debug("Fetch returned error status", "url", reqURL, "request_id", requestID, "status", res.StatusCode)
		return nil, reqURL, &apperrors.NetworkError{
			Op:         http.MethodGet,
			URL:        reqURL,
			StatusCode: res.StatusCode,
			Err:        fmt.Errorf("unexpected status %d", res.StatusCode),
		}
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, reqURL, &apperrors.NetworkError{Op: "read", URL: reqURL, Err: err}
	}

	logger.Debug("Fetch complete", "url", reqURL, "request_id", requestID, "bytes", len(body))
	return body, reqURL, nil
}
