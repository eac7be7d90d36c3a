package create_agent_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harbourline/yacht-booking-service/internal/domain"
	"github.com/harbourline/yacht-booking-service/internal/integrations/razorpay"
	"github.com/harbourline/yacht-booking-service/internal/integrations/userservice"
	"github.com/harbourline/yacht-booking-service/internal/service/pricing"
)

// Fakes

type fakeYachtRepo struct {
	yacht *domain.Yacht
	err   error
}

func (f *fakeYachtRepo) GetByID(_ context.Context, _ int64) (*domain.Yacht, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.yacht, nil
}

type fakeBookingRepo struct {
	overlapping []*domain.Booking
	created     *domain.Booking
}

func (f *fakeBookingRepo) FindOverlapping(_ context.Context, _ int64, _ domain.Interval) ([]*domain.Booking, error) {
	return f.overlapping, nil
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	created := *booking
	created.ID = 77
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.created = &created
	return &created, nil
}

func (f *fakeBookingRepo) SetOrderRef(_ context.Context, _ int64, orderID string) error {
	f.created.RazorpayOrderID = orderID
	return nil
}

type fakeUserClient struct {
	agent *userservice.Agent
	err   error
}

func (f *fakeUserClient) GetAgent(_ context.Context, _ int64) (*userservice.Agent, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.agent, nil
}

type fakeGateway struct {
	lastAmount  float64
	lastReceipt string
	canceled    []string
}

func (f *fakeGateway) CreateOrder(_ context.Context, amount float64, receipt string) (*razorpay.Order, error) {
	f.lastAmount = amount
	f.lastReceipt = receipt
	return &razorpay.Order{ID: "order_agent_1", Receipt: receipt, Status: "created"}, nil
}

func (f *fakeGateway) CancelOrder(_ context.Context, orderID string) {
	f.canceled = append(f.canceled, orderID)
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Fixture

var testNow = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

// Среда, 14:00 - non-peak
var testStart = time.Date(2026, 9, 9, 14, 0, 0, 0, time.UTC)

func newEnv() (*UseCase, *fakeBookingRepo, *fakeGateway, *fakeUserClient) {
	bookings := &fakeBookingRepo{}
	gateway := &fakeGateway{}
	users := &fakeUserClient{agent: &userservice.Agent{
		ID:             9,
		Name:           "Rahul Mehta",
		Phone:          "+971500000009",
		CommissionRate: 10,
	}}
	yachts := &fakeYachtRepo{yacht: &domain.Yacht{
		ID:        7,
		Name:      "Sea Pearl",
		YachtType: "catamaran",
		Location:  domain.LocationDubaiMarina,
		Capacity:  10,
		Price: domain.PriceTable{
			Sailing:   domain.RatePair{PeakTime: 100, NonPeakTime: 80},
			Anchoring: domain.RatePair{PeakTime: 60, NonPeakTime: 40},
		},
		Addons: []domain.Addon{
			{Service: domain.AddonCatering, PricePerHour: 50},
		},
		Availability: true,
	}}

	calc := pricing.NewCalculator(pricing.Config{
		TaxPercent:    18,
		PeakStartHour: 17,
		PeakEndHour:   21,
		WeekendIsPeak: true,
	})

	uc := NewUseCase(bookings, yachts, users, gateway, calc, fakeTxManager{}, nopLogger{})
	uc.timeProvider = &fixedTime{now: testNow}
	return uc, bookings, gateway, users
}

func validRequest() *Request {
	return &Request{
		AgentID:       9,
		YachtID:       7,
		Package:       domain.Package3Hr1,
		StartDate:     testStart,
		PeopleNo:      4,
		Addons:        []domain.AddonService{domain.AddonCatering},
		CustomerName:  "Anita Desai",
		CustomerPhone: "+971500000042",
		CustomerEmail: "anita@example.com",
	}
}

// Tests

func TestExecute_CommissionAppliedPostTax(t *testing.T) {
	uc, bookings, gateway, _ := newEnv()

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Полный итог 413, скидка агента 10% после налога: 413 - 41.3 = 371.7
	assert.InDelta(t, 413.0, resp.PackageAmount+resp.AddonCost+resp.GstAmount, 1e-9)
	assert.InDelta(t, 371.7, resp.TotalAmount, 1e-9)
	assert.InDelta(t, 10.0, resp.CommissionRate, 1e-9)

	// Заказ шлюза на сумму после скидки
	assert.InDelta(t, 371.7, gateway.lastAmount, 1e-9)
	assert.Equal(t, "77", gateway.lastReceipt)

	// Налог в снапшоте не пересчитывается от сниженной суммы
	assert.InDelta(t, 63.0, bookings.created.GstAmount, 1e-9)
}

func TestExecute_CustomerContactSnapshot(t *testing.T) {
	uc, bookings, _, _ := newEnv()

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Контакты конечного клиента, не агента
	assert.Equal(t, "Anita Desai", bookings.created.CustomerName)
	assert.Equal(t, "+971500000042", bookings.created.CustomerPhone)

	assert.True(t, bookings.created.IsAgentBooking)
	require.NotNil(t, bookings.created.AgentID)
	assert.Equal(t, int64(9), *bookings.created.AgentID)
	assert.Equal(t, int64(9), bookings.created.UserID)

	assert.True(t, resp.Booking.IsAgentBooking)
}

func TestExecute_MissingCustomerContact(t *testing.T) {
	uc, _, _, _ := newEnv()

	req := validRequest()
	req.CustomerPhone = ""

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_AgentNotFound(t *testing.T) {
	uc, _, gateway, users := newEnv()
	users.err = userservice.ErrAgentNotFound

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrAgentNotFound)
	assert.Empty(t, gateway.lastReceipt)
}

func TestExecute_OverlapConflict(t *testing.T) {
	uc, bookings, gateway, _ := newEnv()
	bookings.overlapping = []*domain.Booking{{ID: 5, Status: domain.StatusConfirmed}}

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrUnavailable)
	assert.Empty(t, gateway.lastReceipt)
}

func TestExecute_ZeroCommissionKeepsFullTotal(t *testing.T) {
	uc, _, gateway, users := newEnv()
	users.agent.CommissionRate = 0

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.InDelta(t, 413.0, resp.TotalAmount, 1e-9)
	assert.InDelta(t, 413.0, gateway.lastAmount, 1e-9)
}
