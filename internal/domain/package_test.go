package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPackageType_Duration(t *testing.T) {
	tests := []struct {
		name        string
		pkg         PackageType
		wantSailing float64
		wantAnchor  float64
	}{
		{
			name:        "two hours sailing one hour anchorage",
			pkg:         Package3Hr1,
			wantSailing: 2,
			wantAnchor:  1,
		},
		{
			name:        "fractional hours",
			pkg:         Package2Hr2,
			wantSailing: 1.5,
			wantAnchor:  0.5,
		},
		{
			name:        "zero anchorage",
			pkg:         Package2Hr3,
			wantSailing: 2,
			wantAnchor:  0,
		},
		{
			name:        "free text with no numbers",
			pkg:         PackageType("sunset cruise"),
			wantSailing: 0,
			wantAnchor:  0,
		},
		{
			name:        "single number only",
			pkg:         PackageType("3_hours_sailing"),
			wantSailing: 3,
			wantAnchor:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := tt.pkg.Duration()
			assert.Equal(t, tt.wantSailing, d.SailingHours)
			assert.Equal(t, tt.wantAnchor, d.AnchorHours)
		})
	}
}

func TestPackageType_IsValid(t *testing.T) {
	for _, pkg := range PackageCatalog {
		assert.True(t, pkg.IsValid(), "catalog package %q must be valid", pkg)
	}

	assert.False(t, PackageType("5_hours_sailing_5_hours_anchorage").IsValid())
	assert.False(t, PackageType("").IsValid())
}

func TestInterval_Overlaps(t *testing.T) {
	day := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
	at := func(h, m int) time.Time {
		return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
	}

	existing := Interval{Start: at(10, 0), End: at(12, 0)}

	tests := []struct {
		name string
		next Interval
		want bool
	}{
		{
			name: "touching boundary does not conflict",
			next: Interval{Start: at(12, 0), End: at(13, 0)},
			want: false,
		},
		{
			name: "one minute overlap conflicts",
			next: Interval{Start: at(11, 59), End: at(12, 1)},
			want: true,
		},
		{
			name: "fully inside conflicts",
			next: Interval{Start: at(10, 30), End: at(11, 30)},
			want: true,
		},
		{
			name: "fully covering conflicts",
			next: Interval{Start: at(9, 0), End: at(13, 0)},
			want: true,
		},
		{
			name: "before with touching end does not conflict",
			next: Interval{Start: at(9, 0), End: at(10, 0)},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, existing.Overlaps(tt.next))
			assert.Equal(t, tt.want, tt.next.Overlaps(existing))
		})
	}
}

func TestInterval_WithBuffer(t *testing.T) {
	start := time.Date(2026, 9, 12, 14, 0, 0, 0, time.UTC)
	i := Interval{Start: start, End: start.Add(3 * time.Hour)}

	buffered := i.WithBuffer(30 * time.Minute)

	assert.Equal(t, start, buffered.Start)
	assert.Equal(t, start.Add(3*time.Hour+30*time.Minute), buffered.End)

	// Поездка, начинающаяся впритык после буфера, не конфликтует
	next := Interval{Start: buffered.End, End: buffered.End.Add(time.Hour)}
	assert.False(t, buffered.Overlaps(next))
}

func TestBooking_IsOccupying(t *testing.T) {
	b := &Booking{Status: StatusConfirmed}
	assert.True(t, b.IsOccupying())

	b.Status = StatusCanceled
	assert.False(t, b.IsOccupying())

	b.Status = StatusCompleted
	assert.False(t, b.IsOccupying())
}
