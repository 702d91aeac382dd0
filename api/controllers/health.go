package controllers

import (
	"context"
	"net/http"

	"github.com/ballinwear/assistant-backend/api/responses"
	"github.com/ballinwear/assistant-backend/pkg/config"
	"github.com/ballinwear/assistant-backend/pkg/logger"
	"github.com/ballinwear/assistant-backend/pkg/types"
)

// Pinger is anything whose connectivity can be probed.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Ballin-Env", cfg.App.Env)
		responses.WriteSuccess(w, types.StatusResponse{Status: "live"})
	}
}

// HealthReady pings every named dependency; nil entries are skipped.
func HealthReady(cfg *config.Config, logg *logger.Logger, deps map[string]Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Ballin-Env", cfg.App.Env)
		ctx := r.Context()

		status := http.StatusOK
		checks := map[string]string{}
		for name, dep := range deps {
			if dep == nil {
				continue
			}
			if err := dep.Ping(ctx); err != nil {
				status = http.StatusServiceUnavailable
				checks[name] = "unavailable"
				if logg != nil {
					logg.Error(logg.WithField(ctx, "dependency", name), "readiness check failed", err)
				}
				continue
			}
			checks[name] = "ok"
		}

		body := types.StatusResponse{Status: "ready", Checks: checks}
		if status != http.StatusOK {
			body.Status = "unavailable"
		}
		responses.WriteSuccessStatus(w, status, body)
	}
}
