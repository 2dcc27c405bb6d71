package handler

import (
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/infrastructure/database/postgres"
	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/infrastructure/repository"
	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/internal/scheduler"
	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const defaultRunsLimit = 20

// RunLoad triggers a warehouse load outside the cron schedule. The trigger is
// asynchronous; callers poll the status endpoint for the outcome.
func RunLoad(service *scheduler.LoadSyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunLoad")

		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "load service unavailable", nil)
			return
		}

		status := service.Status()
		if status.Running {
			apiErrors.WriteError(w, apiErrors.ErrConflict, "a load is already in progress", nil)
			return
		}

		service.TriggerManualSync()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]any{
			"message": "load triggered",
		})
	}
}

// GetLoadStatus reports the scheduler state and the outcome of the last run.
func GetLoadStatus(service *scheduler.LoadSyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetLoadStatus")

		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "load service unavailable", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(service.Status())
	}
}

// ListLoadRuns returns the most recent audit rows, newest first.
func ListLoadRuns(repo repository.LoadRunRepository, db postgres.Queryer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ListLoadRuns")

		limit := defaultRunsLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 || parsed > 200 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "limit must be an integer between 1 and 200", nil)
				return
			}
			limit = parsed
		}

		runs, err := repo.ListRecent(r.Context(), db, limit)
		if err != nil {
			logrus.WithError(err).Error("error listing load runs")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "could not list load runs", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"runs": runs,
		})
	}
}
