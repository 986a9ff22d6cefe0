package catalogservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент для работы с CatalogService (барберы и услуги)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента CatalogService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetBarber получает барбера по ID
func (c *Client) GetBarber(ctx context.Context, barberID int64) (*Barber, error) {
	url := fmt.Sprintf("%s/internal/barbers/%d", c.baseURL, barberID)

	var barber Barber
	if err := c.getJSON(ctx, url, &barber, ErrBarberNotFound); err != nil {
		return nil, err
	}
	return &barber, nil
}

// GetService получает услугу по ID
// Цена услуги из этого ответа снапшотится в revenue бронирования
func (c *Client) GetService(ctx context.Context, serviceID int64) (*Service, error) {
	url := fmt.Sprintf("%s/internal/services/%d", c.baseURL, serviceID)

	var service Service
	if err := c.getJSON(ctx, url, &service, ErrServiceNotFound); err != nil {
		return nil, err
	}
	return &service, nil
}

// GetBarberWithGracefulDegradation получает барбера с graceful degradation.
// При недоступности CatalogService возвращает ErrServiceDegraded, чтобы
// вызывающий код мог отдать голую ссылку вместо развёрнутой записи.
func (c *Client) GetBarberWithGracefulDegradation(ctx context.Context, barberID int64) (*Barber, error) {
	barber, err := c.GetBarber(ctx, barberID)
	if err != nil {
		if err == ErrBarberNotFound {
			return nil, err
		}
		c.log.Error("CatalogService unavailable, applying graceful degradation for barber_id=%d: %v", barberID, err)
		return nil, fmt.Errorf("%w: barber_id=%d, error=%v", ErrServiceDegraded, barberID, err)
	}
	return barber, nil
}

// GetServiceWithGracefulDegradation получает услугу с graceful degradation
func (c *Client) GetServiceWithGracefulDegradation(ctx context.Context, serviceID int64) (*Service, error) {
	service, err := c.GetService(ctx, serviceID)
	if err != nil {
		if err == ErrServiceNotFound {
			return nil, err
		}
		c.log.Error("CatalogService unavailable, applying graceful degradation for service_id=%d: %v", serviceID, err)
		return nil, fmt.Errorf("%w: service_id=%d, error=%v", ErrServiceDegraded, serviceID, err)
	}
	return service, nil
}

// getJSON выполняет GET запрос и декодирует ответ
func (c *Client) getJSON(ctx context.Context, url string, out interface{}, notFound error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return notFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
