package geoservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/velalaser/VLL-SchedulingService/internal/domain"
)

// Client клиент геокодирования почтовых индексов (Nominatim API)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента геокодера
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// ResolvePostalCode переводит 8-значный CEP в координаты.
// Возвращает (nil, nil), когда геокодер не нашёл индекс - это
// нормальный исход ("не удалось определить"), а не ошибка.
func (c *Client) ResolvePostalCode(ctx context.Context, digits string) (*domain.Coordinate, error) {
	if len(digits) != domain.PostalCodeDigits {
		return nil, ErrInvalidPostalCode
	}

	params := url.Values{}
	params.Set("format", "json")
	params.Set("countrycodes", "br")
	params.Set("postalcode", digits)
	params.Set("limit", "1")

	reqURL := fmt.Sprintf("%s/search?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept-Language", "pt-BR")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if len(results) == 0 {
		c.log.Info("ResolvePostalCode: no match for cep=%s", digits)
		return nil, nil
	}

	lat, latErr := strconv.ParseFloat(results[0].Lat, 64)
	lon, lonErr := strconv.ParseFloat(results[0].Lon, 64)
	if latErr != nil || lonErr != nil {
		return nil, fmt.Errorf("%w: non-numeric coordinates for cep=%s", ErrInvalidResponse, digits)
	}

	return &domain.Coordinate{Lat: lat, Lon: lon}, nil
}
