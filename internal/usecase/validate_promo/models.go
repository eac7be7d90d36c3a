package validate_promo

// Request модель запроса применения промокода к бронированию
type Request struct {
	BookingID int64  // ID бронирования
	UserID    int64  // ID пользователя (из заголовков аутентификации)
	Role      string // Роль пользователя (из заголовков аутентификации)
	PromoCode string // Промокод
}

// Response модель ответа с примененной скидкой
type Response struct {
	BookingID    int64   `json:"bookingId"`
	Discount     float64 `json:"discount"`
	DiscountType string  `json:"discountType"`
	TotalAmount  float64 `json:"totalAmount"` // Итог после скидки
	OrderID      string  `json:"orderId"`     // Новый заказ платежного шлюза
}
