package search_yachts

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harbourline/yacht-booking-service/internal/domain"
)

// Fakes

type fakeYachtRepo struct {
	yachts       []*domain.Yacht
	lastCriteria domain.YachtSearchCriteria
}

func (f *fakeYachtRepo) Search(_ context.Context, criteria domain.YachtSearchCriteria) ([]*domain.Yacht, error) {
	f.lastCriteria = criteria
	return f.yachts, nil
}

type fakeBookingRepo struct {
	// Занятость по ID яхты
	busy map[int64][]*domain.Booking

	intervals []domain.Interval
}

func (f *fakeBookingRepo) FindOverlapping(_ context.Context, yachtID int64, interval domain.Interval) ([]*domain.Booking, error) {
	f.intervals = append(f.intervals, interval)
	return f.busy[yachtID], nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Fixture

// Среда, 14:00
var testStart = time.Date(2026, 9, 9, 14, 0, 0, 0, time.UTC)

func testYacht(id int64) *domain.Yacht {
	return &domain.Yacht{
		ID:        id,
		Name:      "Sea Pearl",
		YachtType: "catamaran",
		Location:  domain.LocationDubaiMarina,
		Capacity:  10,
		Price: domain.PriceTable{
			Sailing:   domain.RatePair{PeakTime: 100, NonPeakTime: 80},
			Anchoring: domain.RatePair{PeakTime: 60, NonPeakTime: 40},
		},
		Availability: true,
	}
}

func validRequest() *Request {
	return &Request{
		Location:  domain.LocationDubaiMarina,
		PeopleNo:  4,
		Package:   domain.Package3Hr1, // 3 часа суммарно
		StartDate: testStart,
	}
}

// Tests

func TestExecute_FiltersBusyYachts(t *testing.T) {
	yachts := &fakeYachtRepo{yachts: []*domain.Yacht{testYacht(1), testYacht(2), testYacht(3)}}
	bookings := &fakeBookingRepo{busy: map[int64][]*domain.Booking{
		2: {{ID: 9, Status: domain.StatusConfirmed}},
	}}

	uc := NewUseCase(yachts, bookings, 30*time.Minute, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.Len(t, resp.Yachts, 2)
	assert.Equal(t, int64(1), resp.Yachts[0].ID)
	assert.Equal(t, int64(3), resp.Yachts[1].ID)

	assert.Equal(t, testStart, resp.StartDate)
	assert.Equal(t, testStart.Add(3*time.Hour), resp.EndDate)
}

func TestExecute_AppliesSearchBuffer(t *testing.T) {
	yachts := &fakeYachtRepo{yachts: []*domain.Yacht{testYacht(1)}}
	bookings := &fakeBookingRepo{}

	uc := NewUseCase(yachts, bookings, 30*time.Minute, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Проверка занятости идет с запасом на швартовку: [start, start+3h+30m)
	require.Len(t, bookings.intervals, 1)
	assert.Equal(t, testStart, bookings.intervals[0].Start)
	assert.Equal(t, testStart.Add(3*time.Hour+30*time.Minute), bookings.intervals[0].End)
}

func TestExecute_PassesCriteriaToCatalog(t *testing.T) {
	yachts := &fakeYachtRepo{}
	bookings := &fakeBookingRepo{}

	uc := NewUseCase(yachts, bookings, 30*time.Minute, nopLogger{})

	req := validRequest()
	req.YachtType = "motor"
	req.Addons = []domain.AddonService{domain.AddonCatering}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, resp.Yachts)

	assert.Equal(t, domain.LocationDubaiMarina, yachts.lastCriteria.Location)
	assert.Equal(t, "motor", yachts.lastCriteria.YachtType)
	assert.Equal(t, 4, yachts.lastCriteria.PeopleNo)
	assert.Equal(t, []domain.AddonService{domain.AddonCatering}, yachts.lastCriteria.Addons)
}

func TestExecute_UnknownLocation(t *testing.T) {
	uc := NewUseCase(&fakeYachtRepo{}, &fakeBookingRepo{}, 30*time.Minute, nopLogger{})

	req := validRequest()
	req.Location = "Atlantis"

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_UnknownPackage(t *testing.T) {
	uc := NewUseCase(&fakeYachtRepo{}, &fakeBookingRepo{}, 30*time.Minute, nopLogger{})

	req := validRequest()
	req.Package = "mystery_cruise"

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidPackage)
}
