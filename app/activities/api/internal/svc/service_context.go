// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package svc

import (
	"time"

	"school-activities/app/activities/api/internal/config"
	"school-activities/app/activities/api/internal/middleware"
	"school-activities/app/activities/model"

	"github.com/zeromicro/go-zero/core/logx"
)

// ServiceContext holds everything the handlers need: the config, the shared
// activity registry and the middleware instances. The registry is owned here
// and injected into the logic layer; it is never package-level state, so tests
// construct isolated contexts with their own registries.
type ServiceContext struct {
	Config    config.Config
	Registry  *model.Registry
	StartTime time.Time

	CorsMiddleware      *middleware.CorsMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// NewServiceContext creates the service context and seeds the registry. A
// malformed seed (duplicate activity or participant) aborts startup.
func NewServiceContext(c config.Config) *ServiceContext {
	seed := c.Seed
	if len(seed) == 0 {
		seed = model.DefaultSeed()
	}
	registry, err := model.NewRegistry(seed)
	logx.Must(err)

	return &ServiceContext{
		Config:    c,
		Registry:  registry,
		StartTime: time.Now(),

		CorsMiddleware: middleware.NewCorsMiddleware(
			orDefault(c.Cors.AllowOrigins, []string{"*"}),
			orDefault(c.Cors.AllowMethods, []string{"GET", "POST", "OPTIONS"}),
			orDefault(c.Cors.AllowHeaders, []string{"Content-Type", "X-Request-ID"}),
		),
		RequestIDMiddleware: middleware.NewRequestIDMiddleware(),
	}
}

func orDefault(values, fallback []string) []string {
	if len(values) == 0 {
		return fallback
	}
	return values
}
