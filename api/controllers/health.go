package controllers

import (
	"net/http"

	"go.uber.org/multierr"

	"github.com/threadline/storefront-backend/api/responses"
	"github.com/threadline/storefront-backend/pkg/config"
	"github.com/threadline/storefront-backend/pkg/db"
	pkgerrors "github.com/threadline/storefront-backend/pkg/errors"
	"github.com/threadline/storefront-backend/pkg/logger"
	"github.com/threadline/storefront-backend/pkg/redis"
)

const envHeader = "X-Threadline-Env"

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings every hard dependency and reports the first set of
// failures together, so one probe call shows everything that is down.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger, redisP redis.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)

		var err error
		failing := []string{}
		if dbP != nil {
			if pingErr := dbP.Ping(r.Context()); pingErr != nil {
				err = multierr.Append(err, pingErr)
				failing = append(failing, "database")
			}
		}
		if redisP != nil {
			if pingErr := redisP.Ping(r.Context()); pingErr != nil {
				err = multierr.Append(err, pingErr)
				failing = append(failing, "redis")
			}
		}

		if err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.Wrap(pkgerrors.CodeDependency, err, "dependencies unavailable").
					WithDetails(map[string]any{"failing": failing}))
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
