// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package public

import (
	"net/http"

	"school-activities/app/activities/api/internal/logic/public"
	"school-activities/app/activities/api/internal/svc"

	"github.com/zeromicro/go-zero/rest/httpx"
)

// Full activity catalog
func ListActivitiesHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := public.NewListActivitiesLogic(r.Context(), svcCtx)
		resp, err := l.ListActivities()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
