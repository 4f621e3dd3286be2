package call_next

import (
	"context"

	callNext "github.com/m04kA/SMC-BarberQueue/internal/usecase/call_next"
)

type CallNextUseCase interface {
	Execute(ctx context.Context, req *callNext.Request) (*callNext.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
