// ============================================================================
// Route registration
// ============================================================================
//
// Middleware order: CORS -> RequestID -> Handler
//
// Routes:
//   GET  /                                        307 to /static/index.html
//   GET  /health                                  liveness probe
//   GET  /activities                              full catalog
//   POST /activities/:activityName/signup         email via query string
//   POST /activities/:activityName/unregister     email via query string
//
// Path segments arrive URL-decoded from net/http, so "Tennis%20Club" matches
// the registry key "Tennis Club".
//
// ============================================================================

package handler

import (
	"net/http"

	"school-activities/app/activities/api/internal/handler/public"
	"school-activities/app/activities/api/internal/handler/signup"
	"school-activities/app/activities/api/internal/svc"

	"github.com/zeromicro/go-zero/rest"
)

// RegisterHandlers registers the middleware stack and every route.
func RegisterHandlers(server *rest.Server, ctx *svc.ServiceContext) {
	server.Use(func(next http.HandlerFunc) http.HandlerFunc {
		return ctx.CorsMiddleware.Handle(next)
	})
	server.Use(func(next http.HandlerFunc) http.HandlerFunc {
		return ctx.RequestIDMiddleware.Handle(next)
	})

	server.AddRoutes([]rest.Route{
		{
			Method:  http.MethodGet,
			Path:    "/",
			Handler: public.IndexHandler(ctx),
		},
		{
			Method:  http.MethodGet,
			Path:    "/health",
			Handler: public.HealthHandler(ctx),
		},
		{
			Method:  http.MethodGet,
			Path:    "/activities",
			Handler: public.ListActivitiesHandler(ctx),
		},
		{
			Method:  http.MethodPost,
			Path:    "/activities/:activityName/signup",
			Handler: signup.SignupHandler(ctx),
		},
		{
			Method:  http.MethodPost,
			Path:    "/activities/:activityName/unregister",
			Handler: signup.UnregisterHandler(ctx),
		},
	})
}
