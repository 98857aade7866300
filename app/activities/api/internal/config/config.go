// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package config

import (
	"school-activities/app/activities/model"

	"github.com/zeromicro/go-zero/rest"
)

type Config struct {
	rest.RestConf

	// Directory the bundled frontend is served from under /static.
	StaticDir string `json:",default=static"`

	// CORS configuration for browser clients not served from this process.
	Cors CorsConfig `json:",optional"`

	// Seed is the activity catalog loaded at startup. When empty the
	// compiled-in catalog (model.DefaultSeed) is used.
	Seed []model.SeedActivity `json:",optional"`
}

// CorsConfig CORS settings. Empty slices fall back to the defaults applied in
// the service context.
type CorsConfig struct {
	AllowOrigins []string `json:",optional"`
	AllowMethods []string `json:",optional"`
	AllowHeaders []string `json:",optional"`
}
