// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package signup

import (
	"net/http"

	"school-activities/app/activities/api/internal/logic/signup"
	"school-activities/app/activities/api/internal/svc"
	"school-activities/app/activities/api/internal/types"

	"github.com/zeromicro/go-zero/rest/httpx"
)

// Remove a student from an activity
func UnregisterHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.UnregisterRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := signup.NewUnregisterLogic(r.Context(), svcCtx)
		resp, err := l.Unregister(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
