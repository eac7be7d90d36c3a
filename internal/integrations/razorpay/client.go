package razorpay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/harbourline/yacht-booking-service/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент Razorpay Orders API
// Сервис потребляет только контракт создания заказа; подтверждение платежа
// обрабатывается отдельным webhook-сервисом
type Client struct {
	baseURL    string
	keyID      string
	keySecret  string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента платежного шлюза
func NewClient(baseURL, keyID, keySecret string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:   baseURL,
		keyID:     keyID,
		keySecret: keySecret,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreateOrder создает заказ на сумму amount (в рупиях) с receipt'ом бронирования.
// Сумма конвертируется в пайсы (amount * 100)
func (c *Client) CreateOrder(ctx context.Context, amount float64, receipt string) (*Order, error) {
	reqBody := CreateOrderRequest{
		Amount:   toMinorUnits(amount),
		Currency: domain.Currency,
		Receipt:  receipt,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	url := fmt.Sprintf("%s/orders", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.keyID, c.keySecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrOrderCreation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		c.log.Error("CreateOrder: gateway returned status %d: %s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("%w: status %d: %s", ErrOrderCreation, resp.StatusCode, gatewayMessage(body))
	}

	var order Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	c.log.Info("CreateOrder: created order id=%s amount=%d receipt=%s", order.ID, order.Amount, order.Receipt)
	return &order, nil
}

// CancelOrder best-effort компенсация: помечает заказ как отмененный,
// если бронирование не удалось сохранить после создания заказа.
// Ошибка только логируется - неоплаченный заказ истекает на стороне шлюза
func (c *Client) CancelOrder(ctx context.Context, orderID string) {
	url := fmt.Sprintf("%s/orders/%s/cancel", c.baseURL, orderID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		c.log.Error("CancelOrder: failed to create request for order=%s: %v", orderID, err)
		return
	}
	req.SetBasicAuth(c.keyID, c.keySecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("CancelOrder: failed to cancel order=%s: %v", orderID, err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.log.Error("CancelOrder: gateway returned status %d for order=%s: %s", resp.StatusCode, orderID, string(body))
		return
	}

	c.log.Info("CancelOrder: cancelled orphaned order id=%s", orderID)
}

// toMinorUnits конвертирует рупии в пайсы с округлением до ближайшего
func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func gatewayMessage(body []byte) string {
	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Description != "" {
		return errResp.Error.Description
	}
	return string(body)
}
