package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/aussiebroadwan/notecards/internal/sharing/store"
	"github.com/aussiebroadwan/notecards/pkg/decksdk"
	"github.com/aussiebroadwan/notecards/pkg/httpx"
	"github.com/aussiebroadwan/notecards/pkg/jwtx"
)

const readyzTimeout = 2 * time.Second

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness check. Checks database connectivity and that verification keys are loaded.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	decksdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	decksdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(
	startTime time.Time,
	version string,
	st store.Store,
	keys *jwtx.KeySet,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readyzTimeout)
		defer cancel()

		checks := &decksdk.HealthChecks{Database: "ok", Keys: "ok"}

		// Each check records its own result, so the group never cancels early.
		var g errgroup.Group
		g.Go(func() error {
			if err := st.Ping(ctx); err != nil {
				checks.Database = "error: " + err.Error()
				return err
			}
			return nil
		})
		g.Go(func() error {
			if !keys.IsReady() {
				checks.Keys = "error: no keys loaded"
				return errors.New("no keys loaded")
			}
			return nil
		})

		status, code := "ok", http.StatusOK
		if err := g.Wait(); err != nil {
			status, code = "degraded", http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, code, decksdk.HealthResponse{
			Status:  status,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
