package search_yachts

import (
	"time"

	"github.com/harbourline/yacht-booking-service/internal/domain"
)

// Request модель запроса подбора яхт
type Request struct {
	Location  domain.LocationType // Район выхода
	YachtType string              // Опционально: тип яхты
	PeopleNo  int                 // Количество гостей
	Package   domain.PackageType  // Метка пакета, задает длительность
	StartDate time.Time           // Желаемое время начала аренды

	Addons []domain.AddonService // Опционально: желаемые дополнительные услуги
}

// RateResponse пара ставок peak/non-peak
type RateResponse struct {
	PeakTime    float64 `json:"peakTime"`
	NonPeakTime float64 `json:"nonPeakTime"`
}

// AddonResponse дополнительная услуга яхты
type AddonResponse struct {
	Service      string  `json:"service"`
	PricePerHour float64 `json:"pricePerHour"`
}

// YachtResponse яхта, свободная на запрошенный интервал
type YachtResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	YachtType string `json:"yachtType"`
	Location  string `json:"location"`
	PickupAt  string `json:"pickupAt,omitempty"`
	Capacity  int    `json:"capacity"`

	SailingRate   RateResponse `json:"sailingRate"`
	AnchoringRate RateResponse `json:"anchoringRate"`

	Addons []AddonResponse `json:"addonServices"`
}

// Response модель ответа подбора яхт
type Response struct {
	StartDate time.Time       `json:"startDate"`
	EndDate   time.Time       `json:"endDate"`
	Yachts    []YachtResponse `json:"yachts"`
}

// fromDomainYacht конвертирует domain модель в DTO
func fromDomainYacht(y *domain.Yacht) YachtResponse {
	addons := make([]AddonResponse, len(y.Addons))
	for i, a := range y.Addons {
		addons[i] = AddonResponse{
			Service:      string(a.Service),
			PricePerHour: a.PricePerHour,
		}
	}

	return YachtResponse{
		ID:        y.ID,
		Name:      y.Name,
		YachtType: y.YachtType,
		Location:  string(y.Location),
		PickupAt:  y.PickupAt,
		Capacity:  y.Capacity,
		SailingRate: RateResponse{
			PeakTime:    y.Price.Sailing.PeakTime,
			NonPeakTime: y.Price.Sailing.NonPeakTime,
		},
		AnchoringRate: RateResponse{
			PeakTime:    y.Price.Anchoring.PeakTime,
			NonPeakTime: y.Price.Anchoring.NonPeakTime,
		},
		Addons: addons,
	}
}
