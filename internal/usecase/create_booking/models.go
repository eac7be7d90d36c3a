package create_booking

import (
	"time"

	"github.com/harbourline/yacht-booking-service/internal/domain"
	bookingmodels "github.com/harbourline/yacht-booking-service/internal/service/bookings/models"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID  int64              // ID пользователя (из заголовков аутентификации)
	YachtID int64              // ID яхты
	Package domain.PackageType // Метка пакета (например, "2_hours_sailing_1_hour_anchorage")

	StartDate time.Time // Время начала аренды

	PeopleNo int                   // Количество гостей
	Addons   []domain.AddonService // Выбранные дополнительные услуги

	SpecialEvent   string // Опционально: повод (день рождения и т.п.)
	SpecialRequest string // Опционально: пожелания клиента
}

// Response модель ответа с созданным бронированием
// Детализация стоимости дублируется на верхнем уровне,
// чтобы клиент мог показать разбивку без разбора вложенного объекта
type Response struct {
	Booking *bookingmodels.BookingResponse // Созданное бронирование

	OrderID       string  // ID заказа платежного шлюза
	PackageAmount float64 // Стоимость пакета
	AddonCost     float64 // Стоимость дополнительных услуг
	GstAmount     float64 // Налог
	TotalAmount   float64 // Итоговая сумма к оплате
}
