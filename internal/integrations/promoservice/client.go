package promoservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
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

// Client клиент сервиса валидации промокодов
// Правила использования промокодов (лимиты, сроки) живут на стороне сервиса;
// этот клиент потребляет только контракт validate-and-apply
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента промо-сервиса
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// ValidateAndApplyPromo валидирует промокод против текущей суммы бронирования
// и возвращает сумму скидки. Отклоненный код возвращается как ErrPromoRejected
// с сообщением сервиса
func (c *Client) ValidateAndApplyPromo(ctx context.Context, code string, userID int64, role domain.Role, amount float64) (*PromoResult, error) {
	reqBody := ValidatePromoRequest{
		Code:   code,
		UserID: userID,
		Role:   string(role),
		Amount: amount,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	url := fmt.Sprintf("%s/internal/promos/validate", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var result PromoResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if !result.IsValid {
		c.log.Warn("ValidateAndApplyPromo: code=%s rejected for user=%d: %s", code, userID, result.Message)
		return nil, fmt.Errorf("%w: %s", ErrPromoRejected, result.Message)
	}

	c.log.Info("ValidateAndApplyPromo: code=%s valid for user=%d, discount=%.2f type=%s",
		code, userID, result.Discount, result.DiscountType)
	return &result, nil
}
