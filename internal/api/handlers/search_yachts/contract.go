package search_yachts

import (
	"context"

	searchYachts "github.com/harbourline/yacht-booking-service/internal/usecase/search_yachts"
)

type SearchYachtsUseCase interface {
	Execute(ctx context.Context, req *searchYachts.Request) (*searchYachts.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
