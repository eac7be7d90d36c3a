package create_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harbourline/yacht-booking-service/internal/api/middleware"
	bookingmodels "github.com/harbourline/yacht-booking-service/internal/service/bookings/models"
	createBooking "github.com/harbourline/yacht-booking-service/internal/usecase/create_booking"
)

type fakeUseCase struct {
	resp    *createBooking.Response
	err     error
	lastReq *createBooking.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(uc *fakeUseCase, body string, withAuth bool) *httptest.ResponseRecorder {
	handler := middleware.Auth(http.HandlerFunc(NewHandler(uc, nopLogger{}).Handle))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewBufferString(body))
	if withAuth {
		req.Header.Set(middleware.HeaderUserID, "1")
		req.Header.Set(middleware.HeaderUserRole, "customer")
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

const validBody = `{
	"yachtId": 7,
	"package": "2_hours_sailing_1_hour_anchorage",
	"startDate": "2026-09-09T14:00:00Z",
	"peopleNo": 4,
	"addonServices": ["catering"]
}`

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{resp: &createBooking.Response{
		Booking:     &bookingmodels.BookingResponse{ID: 42, Status: "confirmed"},
		OrderID:     "order_test_1",
		TotalAmount: 413,
	}}

	rec := serve(uc, validBody, true)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp CreateBookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.Booking.ID)
	assert.Equal(t, "order_test_1", resp.OrderID)
	assert.InDelta(t, 413.0, resp.TotalAmount, 1e-9)

	// userID берется из заголовков аутентификации, не из тела
	require.NotNil(t, uc.lastReq)
	assert.Equal(t, int64(1), uc.lastReq.UserID)
}

func TestHandle_MissingAuth(t *testing.T) {
	uc := &fakeUseCase{}

	rec := serve(uc, validBody, false)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, uc.lastReq)
}

func TestHandle_InvalidBody(t *testing.T) {
	rec := serve(&fakeUseCase{}, `{"yachtId": "seven"}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidStartDate(t *testing.T) {
	body := `{"yachtId": 7, "package": "2_hours_sailing_1_hour_anchorage", "startDate": "tomorrow", "peopleNo": 4}`
	rec := serve(&fakeUseCase{}, body, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"unavailable conflicts", createBooking.ErrUnavailable, http.StatusConflict},
		{"yacht not found", createBooking.ErrYachtNotFound, http.StatusNotFound},
		{"user not found", createBooking.ErrUserNotFound, http.StatusNotFound},
		{"capacity exceeded", createBooking.ErrCapacityExceeded, http.StatusBadRequest},
		{"invalid package", createBooking.ErrInvalidPackage, http.StatusBadRequest},
		{"gateway error", createBooking.ErrGateway, http.StatusBadGateway},
		{"internal error", createBooking.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeUseCase{err: tt.err}, validBody, true)
			assert.Equal(t, tt.wantStatus, rec.Code)

			var resp map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp["message"])
		})
	}
}
