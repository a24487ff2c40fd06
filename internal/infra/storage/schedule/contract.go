package schedule

import (
	"github.com/m04kA/CleanHome-BookingService/pkg/dbmetrics"
)

type DBExecutor = dbmetrics.DBExecutor
