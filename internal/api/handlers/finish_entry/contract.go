package finish_entry

import (
	"context"

	finishEntry "github.com/m04kA/SMC-BarberQueue/internal/usecase/finish_entry"
)

type FinishEntryUseCase interface {
	Execute(ctx context.Context, req *finishEntry.Request) (*finishEntry.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
