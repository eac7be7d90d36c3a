package domain

import "time"

// RatePair two-tier hourly rate keyed to peak/non-peak time of day
type RatePair struct {
	PeakTime    float64
	NonPeakTime float64
}

// Rate returns the rate cell for the given peak determination
func (r RatePair) Rate(isPeak bool) float64 {
	if isPeak {
		return r.PeakTime
	}
	return r.NonPeakTime
}

// PriceTable per-segment pricing of a yacht
type PriceTable struct {
	Sailing   RatePair
	Anchoring RatePair
}

// IsComplete returns true if all four rate cells are populated
func (p PriceTable) IsComplete() bool {
	return p.Sailing.PeakTime > 0 && p.Sailing.NonPeakTime > 0 &&
		p.Anchoring.PeakTime > 0 && p.Anchoring.NonPeakTime > 0
}

// Addon an optional extra service offered by a yacht, priced per hour
type Addon struct {
	Service      AddonService `json:"service"`
	PricePerHour float64      `json:"pricePerHour"`
}

// Yacht represents a bookable asset
type Yacht struct {
	ID           int64
	OwnerID      int64
	Name         string
	YachtType    string
	Location     LocationType
	PickupAt     string
	Capacity     int
	Price        PriceTable
	Addons       []Addon
	Availability bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsBookable returns true if the yacht can accept bookings
func (y *Yacht) IsBookable() bool {
	return y.Availability && y.Capacity > 0 && y.Price.IsComplete()
}

// AddonRate возвращает почасовую ставку услуги из прайс-листа яхты.
// Неизвестная для яхты услуга дает (0, false) - это не ошибка,
// такие услуги просто не добавляют стоимости
func (y *Yacht) AddonRate(service AddonService) (float64, bool) {
	for _, a := range y.Addons {
		if a.Service == service {
			return a.PricePerHour, true
		}
	}
	return 0, false
}

// YachtSearchCriteria фильтр для подбора яхт под запрос клиента
type YachtSearchCriteria struct {
	Location  LocationType
	YachtType string
	PeopleNo  int
	Addons    []AddonService // Опционально: яхта должна предлагать хотя бы одну из услуг
}
