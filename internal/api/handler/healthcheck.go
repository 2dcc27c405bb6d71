package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/infrastructure/database/postgres"
	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/pkg/apiErrors"
)

func HealthcheckHandler(conn postgres.Conn) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := conn.Ping(ctx); err != nil {
			logrus.WithError(err).Warn("healthcheck: warehouse unreachable")
			apiErrors.WriteError(w, apiErrors.ErrServiceUnavailable, "warehouse unreachable", nil)
			return
		}

		if _, err := w.Write([]byte(time.Now().String())); err != nil {
			logrus.WithError(err).Warn("error responding to healthcheck")
		}
	})
}
