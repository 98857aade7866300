package public

import (
	"net/http"

	"school-activities/app/activities/api/internal/svc"
)

// IndexHandler redirects the site root to the bundled frontend.
// GET /
func IndexHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
	}
}
