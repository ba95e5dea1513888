// Package client is a Go binding for the electric cars REST API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const defaultTimeout = 30 * time.Second

// HTTPDoer defines http.Client interface subset.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// APIError is returned for every non-2xx reply.
type APIError struct {
	StatusCode int
	Message    string
	Err        string
}

func (e *APIError) Error() string {
	if e.Err != "" {
		return fmt.Sprintf("api error %d: %s: %s", e.StatusCode, e.Message, e.Err)
	}
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

type envelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Count      *int            `json:"count"`
	Data       json.RawMessage `json:"data"`
	Pagination *Pagination     `json:"pagination"`
	IsFavorite *bool           `json:"isFavorite"`
	Error      string          `json:"error"`
}

// Client calls the API at a base URL
type Client struct {
	baseURL string
	http    HTTPDoer
	userID  string
	token   string
}

type Option func(*Client)

// WithHTTPClient replaces the traced default HTTP client.
func WithHTTPClient(doer HTTPDoer) Option {
	return func(c *Client) { c.http = doer }
}

// WithUserID sends userId on every favorites call.
func WithUserID(userID string) Option {
	return func(c *Client) { c.userID = userID }
}

// WithToken sends a bearer token on every call.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   defaultTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(payload)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return c.http.Do(req)
}

// call performs a JSON request and decodes the envelope. A non-2xx status
// becomes an *APIError.
func (c *Client) call(ctx context.Context, method, path string, query url.Values, body interface{}) (*envelope, error) {
	resp, err := c.do(ctx, method, path, query, body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			return nil, &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: env.Message, Err: env.Error}
	}
	return &env, nil
}

func decodeData(env *envelope, target interface{}) error {
	if len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, target); err != nil {
		return fmt.Errorf("decode data: %w", err)
	}
	return nil
}

func (c *Client) userQuery() url.Values {
	if c.userID == "" {
		return nil
	}
	return url.Values{"userId": {c.userID}}
}

func carPath(id uint) string {
	return "/api/electric-cars/" + strconv.FormatUint(uint64(id), 10)
}

// ListCars fetches one page. Zero page or limit leaves the server default.
func (c *Client) ListCars(ctx context.Context, page, limit int) (*CarPage, error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	env, err := c.call(ctx, http.MethodGet, "/api/electric-cars", q, nil)
	if err != nil {
		return nil, err
	}
	result := &CarPage{}
	if err := decodeData(env, &result.Cars); err != nil {
		return nil, err
	}
	if env.Pagination != nil {
		result.Pagination = *env.Pagination
	}
	return result, nil
}

func (c *Client) GetCar(ctx context.Context, id uint) (*Car, error) {
	env, err := c.call(ctx, http.MethodGet, carPath(id), nil, nil)
	if err != nil {
		return nil, err
	}
	var car Car
	if err := decodeData(env, &car); err != nil {
		return nil, err
	}
	return &car, nil
}

func (c *Client) DeleteCar(ctx context.Context, id uint) error {
	_, err := c.call(ctx, http.MethodDelete, carPath(id), nil, nil)
	return err
}

func (c *Client) SearchCars(ctx context.Context, term string) ([]Car, error) {
	env, err := c.call(ctx, http.MethodGet, "/api/electric-cars/search/query", url.Values{"q": {term}}, nil)
	if err != nil {
		return nil, err
	}
	var cars []Car
	return cars, decodeData(env, &cars)
}

func (c *Client) FilterCars(ctx context.Context, filters []Filter) ([]Car, error) {
	body := struct {
		Filters []Filter `json:"filters"`
	}{Filters: filters}

	env, err := c.call(ctx, http.MethodPost, "/api/electric-cars/filter", nil, body)
	if err != nil {
		return nil, err
	}
	var cars []Car
	return cars, decodeData(env, &cars)
}

// ExportCSV downloads the whole catalogue as CSV.
func (c *Client) ExportCSV(ctx context.Context) ([]byte, error) {
	return c.download(ctx, "/api/electric-cars/export/csv")
}

// ExportExcel downloads the whole catalogue as an XLSX workbook.
func (c *Client) ExportExcel(ctx context.Context) ([]byte, error) {
	return c.download(ctx, "/api/electric-cars/export/excel")
}

func (c *Client) download(ctx context.Context, path string) ([]byte, error) {
	resp, err := c.do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var env envelope
		if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
			return nil, &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: env.Message, Err: env.Error}
	}
	return io.ReadAll(resp.Body)
}

func (c *Client) ListFavorites(ctx context.Context) ([]FavoriteCar, error) {
	env, err := c.call(ctx, http.MethodGet, "/api/favorites", c.userQuery(), nil)
	if err != nil {
		return nil, err
	}
	var cars []FavoriteCar
	return cars, decodeData(env, &cars)
}

func (c *Client) AddFavorite(ctx context.Context, carID uint) error {
	_, err := c.call(ctx, http.MethodPost, "/api/favorites/"+strconv.FormatUint(uint64(carID), 10), c.userQuery(), nil)
	return err
}

func (c *Client) RemoveFavorite(ctx context.Context, carID uint) error {
	_, err := c.call(ctx, http.MethodDelete, "/api/favorites/"+strconv.FormatUint(uint64(carID), 10), c.userQuery(), nil)
	return err
}

func (c *Client) IsFavorite(ctx context.Context, carID uint) (bool, error) {
	env, err := c.call(ctx, http.MethodGet, "/api/favorites/check/"+strconv.FormatUint(uint64(carID), 10), c.userQuery(), nil)
	if err != nil {
		return false, err
	}
	return env.IsFavorite != nil && *env.IsFavorite, nil
}

// Health calls the liveness endpoint, which is not enveloped.
func (c *Client) Health(ctx context.Context) (*Health, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/health", nil, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}
	var h Health
	if err := json.NewDecoder(resp.Body).Decode(&h); err != nil {
		return nil, fmt.Errorf("decode health: %w", err)
	}
	return &h, nil
}
