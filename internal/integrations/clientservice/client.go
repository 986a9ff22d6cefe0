package clientservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент для работы с ClientService (записи клиентов салона)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента ClientService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreateClient создает запись клиента и возвращает её с присвоенным ID.
// Дедупликация по имени и телефону не выполняется: каждый сабмит формы
// создает новую запись (поведение исходного продукта).
func (c *Client) CreateClient(ctx context.Context, req *CreateClientRequest) (*ClientRecord, error) {
	url := fmt.Sprintf("%s/internal/clients", c.baseURL)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: client service rejected the record", ErrInvalidResponse)
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	var record ClientRecord
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	c.log.Info("ClientService: created client id=%d", record.ID)
	return &record, nil
}

// GetClient получает запись клиента по ID
func (c *Client) GetClient(ctx context.Context, clientID int64) (*ClientRecord, error) {
	url := fmt.Sprintf("%s/internal/clients/%d", c.baseURL, clientID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
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
		return nil, ErrClientNotFound
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	var record ClientRecord
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &record, nil
}

// GetClientWithGracefulDegradation получает клиента с graceful degradation
func (c *Client) GetClientWithGracefulDegradation(ctx context.Context, clientID int64) (*ClientRecord, error) {
	record, err := c.GetClient(ctx, clientID)
	if err != nil {
		if err == ErrClientNotFound {
			return nil, err
		}
		c.log.Error("ClientService unavailable, applying graceful degradation for client_id=%d: %v", clientID, err)
		return nil, fmt.Errorf("%w: client_id=%d, error=%v", ErrServiceDegraded, clientID, err)
	}
	return record, nil
}
