package main

import (
	"flag"
	"fmt"
	"net/http"

	"school-activities/app/activities/api/internal/config"
	"school-activities/app/activities/api/internal/handler"
	"school-activities/app/activities/api/internal/svc"
	"school-activities/common/response"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/rest"
)

var configFile = flag.String("f", "etc/activities-api.yaml", "config file path")

func main() {
	flag.Parse()

	// Must run before server.Start so failures render as {"detail": ...}.
	response.SetupGlobalErrorHandler()

	var c config.Config
	conf.MustLoad(*configFile, &c)

	server := rest.MustNewServer(c.RestConf,
		rest.WithFileServer("/static", http.Dir(c.StaticDir)))
	defer server.Stop()

	ctx := svc.NewServiceContext(c)
	handler.RegisterHandlers(server, ctx)

	fmt.Printf("Starting activities-api server at %s:%d...\n", c.Host, c.Port)
	server.Start()
}

// Activities service API entry point.
//
// activities-api is the HTTP surface of the school activities signup site:
//   - activity catalog
//   - signup / unregister by email
//   - the static frontend under /static
//
// Run:
//   go run activities.go -f etc/activities-api.yaml
