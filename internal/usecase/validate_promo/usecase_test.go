package validate_promo

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harbourline/yacht-booking-service/internal/domain"
	bookingStorage "github.com/harbourline/yacht-booking-service/internal/infra/storage/booking"
	"github.com/harbourline/yacht-booking-service/internal/integrations/promoservice"
	"github.com/harbourline/yacht-booking-service/internal/integrations/razorpay"
)

// Fakes

type fakeBookingRepo struct {
	booking *domain.Booking
	getErr  error

	updateErr   error
	updateCalls int
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.booking, nil
}

func (f *fakeBookingRepo) UpdateTotalAndOrder(_ context.Context, _ int64, totalAmount float64, orderID string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updateCalls++
	f.booking.TotalAmount = totalAmount
	f.booking.RazorpayOrderID = orderID
	return nil
}

// fakePromoClient считает скидку как процент от переданной суммы -
// так виден эффект повторного применения кода
type fakePromoClient struct {
	percent float64
	err     error
	calls   int
}

func (f *fakePromoClient) ValidateAndApplyPromo(_ context.Context, _ string, _ int64, _ domain.Role, amount float64) (*promoservice.PromoResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &promoservice.PromoResult{
		IsValid:      true,
		Discount:     amount * f.percent / 100,
		DiscountType: "percent",
	}, nil
}

type fakeGateway struct {
	createErr   error
	createCalls int
	lastAmount  float64
	lastReceipt string
	canceled    []string
}

func (f *fakeGateway) CreateOrder(_ context.Context, amount float64, receipt string) (*razorpay.Order, error) {
	f.createCalls++
	f.lastAmount = amount
	f.lastReceipt = receipt
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &razorpay.Order{ID: fmt.Sprintf("order_promo_%d", f.createCalls), Receipt: receipt, Status: "created"}, nil
}

func (f *fakeGateway) CancelOrder(_ context.Context, orderID string) {
	f.canceled = append(f.canceled, orderID)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Fixture

func newEnv() (*UseCase, *fakeBookingRepo, *fakePromoClient, *fakeGateway) {
	bookings := &fakeBookingRepo{booking: &domain.Booking{
		ID:              42,
		UserID:          1,
		TotalAmount:     400,
		RazorpayOrderID: "order_initial",
		Status:          domain.StatusConfirmed,
	}}
	promo := &fakePromoClient{percent: 10}
	gateway := &fakeGateway{}

	uc := NewUseCase(bookings, promo, gateway, nopLogger{})
	return uc, bookings, promo, gateway
}

func validRequest() *Request {
	return &Request{
		BookingID: 42,
		UserID:    1,
		Role:      "customer",
		PromoCode: "SUMMER10",
	}
}

// Tests

func TestExecute_AppliesDiscount(t *testing.T) {
	uc, bookings, _, gateway := newEnv()

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.InDelta(t, 40.0, resp.Discount, 1e-9)
	assert.InDelta(t, 360.0, resp.TotalAmount, 1e-9)
	assert.Equal(t, "order_promo_1", resp.OrderID)

	// Новый заказ на сниженную сумму, receipt = ID бронирования
	assert.InDelta(t, 360.0, gateway.lastAmount, 1e-9)
	assert.Equal(t, "42", gateway.lastReceipt)

	// Бронирование обновлено одним запросом
	assert.Equal(t, 1, bookings.updateCalls)
	assert.InDelta(t, 360.0, bookings.booking.TotalAmount, 1e-9)
	assert.Equal(t, "order_promo_1", bookings.booking.RazorpayOrderID)
}

// Повторное применение кода пересчитывает скидку от уже сниженного
// итога - суммы компаундятся. Тест фиксирует текущее поведение:
// его изменение должно быть осознанным решением, а не побочным эффектом
func TestExecute_TwiceCompounds(t *testing.T) {
	uc, bookings, _, _ := newEnv()

	first, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.InDelta(t, 360.0, first.TotalAmount, 1e-9)

	second, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.InDelta(t, 324.0, second.TotalAmount, 1e-9) // 360 - 36, не 400 - 80

	assert.InDelta(t, 324.0, bookings.booking.TotalAmount, 1e-9)
}

func TestExecute_RejectedPromoLeavesBookingUntouched(t *testing.T) {
	uc, bookings, promo, gateway := newEnv()
	promo.err = fmt.Errorf("%w: code expired", promoservice.ErrPromoRejected)

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrInvalidPromo)

	// Сообщение промо-сервиса сохраняется в цепочке ошибки
	assert.Contains(t, err.Error(), "code expired")

	assert.Zero(t, gateway.createCalls)
	assert.Zero(t, bookings.updateCalls)
	assert.InDelta(t, 400.0, bookings.booking.TotalAmount, 1e-9)
	assert.Equal(t, "order_initial", bookings.booking.RazorpayOrderID)
}

func TestExecute_DiscountExceedsTotal(t *testing.T) {
	uc, bookings, promo, gateway := newEnv()
	promo.percent = 150

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrInvalidPromo)

	assert.Zero(t, gateway.createCalls)
	assert.Zero(t, bookings.updateCalls)
}

func TestExecute_UpdateFailureCancelsNewOrder(t *testing.T) {
	uc, bookings, _, gateway := newEnv()
	bookings.updateErr = errors.New("connection reset")

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrInternal)

	// Созданный заказ отменен, бронирование осталось на старом заказе
	assert.Equal(t, []string{"order_promo_1"}, gateway.canceled)
	assert.Equal(t, "order_initial", bookings.booking.RazorpayOrderID)
}

func TestExecute_BookingNotFound(t *testing.T) {
	uc, bookings, _, _ := newEnv()
	bookings.getErr = bookingStorage.ErrBookingNotFound

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_AccessDenied(t *testing.T) {
	uc, _, promo, _ := newEnv()

	req := validRequest()
	req.UserID = 2 // бронирование принадлежит пользователю 1

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrAccessDenied)
	assert.Zero(t, promo.calls)
}
