package handler

import (
	"net/http"
	"sync"

	"todos/config"
	"todos/di"
	"todos/shared/logger"
)

var (
	serverless http.Handler
	setupOnce  sync.Once
)

// Handler is the entrypoint for serverless deployments. The router and its
// connections are built on the first invocation and reused while warm.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	setupOnce.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		serverless = di.InitializeService().Handler()
	})

	serverless.ServeHTTP(w, r)
}
