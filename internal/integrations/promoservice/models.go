package promoservice

// ValidatePromoRequest запрос валидации промокода
type ValidatePromoRequest struct {
	Code   string  `json:"code"`
	UserID int64   `json:"userId"`
	Role   string  `json:"role"`
	Amount float64 `json:"amount"`
}

// PromoResult результат валидации промокода
// Discount - абсолютная сумма скидки от текущего total
type PromoResult struct {
	IsValid      bool    `json:"isValid"`
	Discount     float64 `json:"discount"`
	DiscountType string  `json:"discountType"`
	Message      string  `json:"message"`
}
