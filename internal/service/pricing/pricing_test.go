package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/harbourline/yacht-booking-service/internal/domain"
)

func testConfig() Config {
	return Config{
		TaxPercent:    18,
		PeakStartHour: 17,
		PeakEndHour:   21,
		WeekendIsPeak: true,
	}
}

func testYacht() *domain.Yacht {
	return &domain.Yacht{
		ID:       1,
		Capacity: 10,
		Price: domain.PriceTable{
			Sailing:   domain.RatePair{PeakTime: 100, NonPeakTime: 80},
			Anchoring: domain.RatePair{PeakTime: 60, NonPeakTime: 40},
		},
		Addons: []domain.Addon{
			{Service: domain.AddonCatering, PricePerHour: 50},
		},
		Availability: true,
	}
}

// Среда, 14:00 - вне peak-окна и не выходной
var nonPeakStart = time.Date(2026, 9, 9, 14, 0, 0, 0, time.UTC)

func TestQuote_NonPeakPackage(t *testing.T) {
	calc := NewCalculator(testConfig())

	duration := domain.PackageDuration{SailingHours: 2, AnchorHours: 1}
	quote := calc.Quote(testYacht(), duration, nonPeakStart, nil)

	assert.False(t, quote.IsPeak)
	assert.InDelta(t, 200.0, quote.PackageAmount, 1e-9) // 2*80 + 1*40
	assert.InDelta(t, 0.0, quote.AddonCost, 1e-9)
	assert.InDelta(t, 36.0, quote.GstAmount, 1e-9)
	assert.InDelta(t, 236.0, quote.TotalAmount, 1e-9)
}

func TestQuote_WithAddonFullDuration(t *testing.T) {
	calc := NewCalculator(testConfig())

	duration := domain.PackageDuration{SailingHours: 2, AnchorHours: 1}
	quote := calc.Quote(testYacht(), duration, nonPeakStart, []domain.AddonService{domain.AddonCatering})

	// Услуга тарифицируется на полные 3 часа поездки, не на под-интервал
	assert.InDelta(t, 200.0, quote.PackageAmount, 1e-9)
	assert.InDelta(t, 150.0, quote.AddonCost, 1e-9)
	assert.InDelta(t, 63.0, quote.GstAmount, 1e-9)
	assert.InDelta(t, 413.0, quote.TotalAmount, 1e-9)
}

func TestQuote_UnknownAddonContributesZero(t *testing.T) {
	calc := NewCalculator(testConfig())

	duration := domain.PackageDuration{SailingHours: 2, AnchorHours: 1}
	quote := calc.Quote(testYacht(), duration, nonPeakStart, []domain.AddonService{domain.AddonDrone})

	assert.InDelta(t, 0.0, quote.AddonCost, 1e-9)
	assert.InDelta(t, 236.0, quote.TotalAmount, 1e-9)
}

func TestQuote_PeakRates(t *testing.T) {
	calc := NewCalculator(testConfig())

	// Среда, 18:00 - внутри peak-окна
	peakStart := time.Date(2026, 9, 9, 18, 0, 0, 0, time.UTC)

	duration := domain.PackageDuration{SailingHours: 2, AnchorHours: 1}
	quote := calc.Quote(testYacht(), duration, peakStart, nil)

	assert.True(t, quote.IsPeak)
	assert.InDelta(t, 260.0, quote.PackageAmount, 1e-9) // 2*100 + 1*60
}

func TestIsPeak(t *testing.T) {
	calc := NewCalculator(testConfig())

	tests := []struct {
		name  string
		start time.Time
		want  bool
	}{
		{
			name:  "weekday before window",
			start: time.Date(2026, 9, 9, 16, 59, 0, 0, time.UTC),
			want:  false,
		},
		{
			name:  "weekday at window start",
			start: time.Date(2026, 9, 9, 17, 0, 0, 0, time.UTC),
			want:  true,
		},
		{
			name:  "weekday at window end is exclusive",
			start: time.Date(2026, 9, 9, 21, 0, 0, 0, time.UTC),
			want:  false,
		},
		{
			name:  "saturday morning is peak",
			start: time.Date(2026, 9, 12, 9, 0, 0, 0, time.UTC),
			want:  true,
		},
		{
			name:  "sunday is peak",
			start: time.Date(2026, 9, 13, 14, 0, 0, 0, time.UTC),
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calc.IsPeak(tt.start))
		})
	}
}

func TestIsPeak_WeekendDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.WeekendIsPeak = false
	calc := NewCalculator(cfg)

	// Суббота утром без weekend-правила - не peak
	assert.False(t, calc.IsPeak(time.Date(2026, 9, 12, 9, 0, 0, 0, time.UTC)))
	// Суббота вечером попадает в часовое окно
	assert.True(t, calc.IsPeak(time.Date(2026, 9, 12, 18, 0, 0, 0, time.UTC)))
}

func TestApplyCommission_PostTax(t *testing.T) {
	// Скидка применяется к итогу после налога: 413 - 41.3 = 371.7
	assert.InDelta(t, 371.7, ApplyCommission(413, 10), 1e-9)

	assert.InDelta(t, 413.0, ApplyCommission(413, 0), 1e-9)
	assert.InDelta(t, 0.0, ApplyCommission(413, 100), 1e-9)
}
