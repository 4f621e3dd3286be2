package catalog

import "github.com/m04kA/SMC-BarberQueue/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
