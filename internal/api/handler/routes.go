package handler

import (
	"net/http"

	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/infrastructure/database/postgres"
	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/infrastructure/repository"
	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/internal/api/handler/router"
	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/internal/scheduler"
)

func Healthcheck(conn postgres.Conn) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(conn),
		},
	}
}

func Loads(
	loadSyncService *scheduler.LoadSyncService,
	loadRunRepo repository.LoadRunRepository,
	db postgres.Queryer,
) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/loads/run",
			Method:  http.MethodPost,
			Handler: RunLoad(loadSyncService),
		},
		{
			Path:    "/v1/loads/status",
			Method:  http.MethodGet,
			Handler: GetLoadStatus(loadSyncService),
		},
		{
			Path:    "/v1/loads/runs",
			Method:  http.MethodGet,
			Handler: ListLoadRuns(loadRunRepo, db),
		},
	}
}
