package razorpay

import "errors"

var (
	// ErrOrderCreation возвращается, когда шлюз не смог создать заказ
	// Любая ошибка создания заказа фатальна для запроса бронирования
	ErrOrderCreation = errors.New("razorpay client: failed to create order")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("razorpay client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе шлюза
	ErrInvalidResponse = errors.New("razorpay client: invalid response")
)
