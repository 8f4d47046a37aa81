// Package function adapts the API for per-request function platforms. It
// exposes the same router the long-running server uses as a plain
// http.Handler, so both deployment targets share one set of route handlers
// instead of maintaining parallel implementations.
package function

import (
	"context"
	"net/http"
	"sync"

	"github.com/blkboxlogictc/AtlanteRealty/internal/api"
	"github.com/blkboxlogictc/AtlanteRealty/internal/config"
	"github.com/blkboxlogictc/AtlanteRealty/internal/infrastructure/fixtures"
	"github.com/blkboxlogictc/AtlanteRealty/internal/infrastructure/memstore"
	"github.com/blkboxlogictc/AtlanteRealty/internal/infrastructure/webhook"
	"github.com/blkboxlogictc/AtlanteRealty/pkg/logger"
)

var (
	once sync.Once
	app  http.Handler
)

// Handler serves one request. Initialisation runs on the first call and is
// reused across warm invocations; the in-memory store therefore lives only
// as long as the platform keeps the instance warm.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(setup)
	app.ServeHTTP(w, r)
}

func setup() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel})

	store := memstore.New()
	loader := fixtures.NewLoader(cfg.DataDir, log)

	forwarder := webhook.NewForwarder(cfg.Webhooks.Timeout, cfg.Webhooks.Workers, log)
	forwarder.Start(context.Background())

	app = api.NewRouter(cfg, store, store, loader, forwarder, log)
}
