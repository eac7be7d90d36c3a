package promoservice

import "errors"

var (
	// ErrPromoRejected возвращается, когда сервис отклонил промокод
	// (невалидный, истекший или не подходящий пользователю).
	// Сообщение сервиса сохраняется в обертке для показа пользователю
	ErrPromoRejected = errors.New("promo code rejected")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("promoservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе сервиса
	ErrInvalidResponse = errors.New("promoservice client: invalid response")
)
