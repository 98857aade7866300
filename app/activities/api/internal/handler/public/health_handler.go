package public

import (
	"net/http"
	"time"

	"school-activities/app/activities/api/internal/svc"
	"school-activities/app/activities/api/internal/types"

	"github.com/zeromicro/go-zero/rest/httpx"
)

// HealthHandler liveness probe
// GET /health
func HealthHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.OkJsonCtx(r.Context(), w, types.HealthResponse{
			Status:    "healthy",
			Timestamp: time.Now().Format(time.RFC3339),
			Uptime:    time.Since(svcCtx.StartTime).String(),
		})
	}
}
