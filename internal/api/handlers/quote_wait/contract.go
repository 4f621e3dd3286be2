package quote_wait

import (
	"context"

	quoteWait "github.com/m04kA/SMC-BarberQueue/internal/usecase/quote_wait"
)

type QuoteWaitUseCase interface {
	Execute(ctx context.Context, req *quoteWait.Request) (*quoteWait.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
