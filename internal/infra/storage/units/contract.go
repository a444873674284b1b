package units

import "github.com/velalaser/VLL-SchedulingService/pkg/dbmetrics"

// Переиспользуем интерфейс исполнителя запросов из dbmetrics
// Поддерживает *sql.DB и *dbmetrics.DB
type DBExecutor = dbmetrics.DBExecutor
