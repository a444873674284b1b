package unoservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/velalaser/VLL-SchedulingService/internal/domain"
	"github.com/velalaser/VLL-SchedulingService/pkg/types"
)

// Client клиент внешней системы бронирования (UNO)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента UNO
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetAvailableHours получает свободные часы юнита на дату.
// Дата передаётся в формате dd/mm/yyyy - так требует контракт UNO.
// Часы возвращаются отсортированными по возрастанию: формат "HH:mm"
// с ведущими нулями делает лексикографический порядок хронологическим.
func (c *Client) GetAvailableHours(ctx context.Context, externalID string, dateBR string) (*domain.Availability, error) {
	params := url.Values{}
	params.Set("date", dateBR)

	reqURL := fmt.Sprintf("%s/franchises/%s/schedule/hours?%s",
		c.baseURL, url.PathEscape(externalID), params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrUnitNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var raw hoursResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	availability := &domain.Availability{
		ServiceID: raw.ServiceID,
		Slots:     make([]domain.TimeSlot, 0, len(raw.Hours)),
	}

	for _, h := range raw.Hours {
		hour, err := types.NewTimeStringFromString(h.Hour)
		if err != nil {
			c.log.Warn("GetAvailableHours: skipping malformed hour %q for franchise=%s", h.Hour, externalID)
			continue
		}
		availability.Slots = append(availability.Slots, domain.TimeSlot{
			Hour:   hour,
			RoomID: h.RoomID,
		})
	}

	sort.Slice(availability.Slots, func(i, j int) bool {
		return availability.Slots[i].Hour.IsBefore(availability.Slots[j].Hour)
	})

	return availability, nil
}

// CreateSchedule отправляет бронь во внешнюю систему.
// Отказ с человекочитаемой причиной возвращается как результат с
// OK=false и Message - это штатный ответ, а не транспортная ошибка.
func (c *Client) CreateSchedule(ctx context.Context, externalID string, payload *CreateScheduleRequest) (*CreateScheduleResult, error) {
	reqURL := fmt.Sprintf("%s/franchises/%s/schedule", c.baseURL, url.PathEscape(externalID))

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal payload: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		var result CreateScheduleResult
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
		}
		return &result, nil
	}

	// Пытаемся извлечь причину отказа из тела ответа
	var rejection errorBody
	raw, _ := io.ReadAll(resp.Body)
	_ = json.Unmarshal(raw, &rejection)

	message := rejection.Detail
	if message == "" {
		message = rejection.Message
	}
	if message != "" {
		c.log.Warn("CreateSchedule: rejected for franchise=%s: %s", externalID, message)
		return &CreateScheduleResult{OK: false, Message: message}, nil
	}

	return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
}

// CreateLead создает лид во внешней системе
func (c *Client) CreateLead(ctx context.Context, payload *CreateLeadRequest) (*CreateLeadResult, error) {
	reqURL := fmt.Sprintf("%s/Leads", c.baseURL)

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal payload: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
	}

	var result CreateLeadResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &result, nil
}
