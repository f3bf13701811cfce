package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/cbodonnell/spinwheel/pkg/api/handlers"
	"github.com/cbodonnell/spinwheel/pkg/api/middleware"
	"github.com/cbodonnell/spinwheel/pkg/feed"
	"github.com/cbodonnell/spinwheel/pkg/log"
	"github.com/cbodonnell/spinwheel/pkg/random"
	"github.com/cbodonnell/spinwheel/pkg/repositories"
	"github.com/gorilla/mux"
)

type APIServer struct {
	server *http.Server
	tls    *TLSConfig
}

type TLSConfig struct {
	CertFile string
	KeyFile  string
}

type NewAPIServerOptions struct {
	Port        int
	AllowOrigin string
	TLS         *TLSConfig
	Repository  repositories.Repository
	Feed        *feed.Feed
	Rand        random.Source
}

// NewAPIServer creates a new http.Server for handling spin requests
func NewAPIServer(opts NewAPIServerOptions) *APIServer {
	r := mux.NewRouter()
	r.Use(middleware.RequestLogging)
	r.Use(middleware.NewCORSMiddleware(opts.AllowOrigin))
	r.Use(middleware.Gzip)

	// The feed route is registered before the {spinID} route so that
	// "feed" is not matched as a spin ID.
	r.HandleFunc("/spins/feed", opts.Feed.Handler()).Methods(http.MethodGet)
	r.HandleFunc("/spins", handlers.HandleCreateSpin(opts.Repository, opts.Feed, opts.Rand)).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/spins", handlers.HandleListSpins(opts.Repository)).Methods(http.MethodGet)
	r.HandleFunc("/spins/{spinID}", handlers.HandleGetSpin(opts.Repository)).Methods(http.MethodGet)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", opts.Port),
		Handler: r,
	}
	return &APIServer{
		server: server,
		tls:    opts.TLS,
	}
}

// Start starts the APIServer
func (s *APIServer) Start() {
	var listenAndServe func() error
	if s.tls != nil {
		log.Info("API server listening on %s with TLS", s.server.Addr)
		listenAndServe = func() error {
			return s.server.ListenAndServeTLS(s.tls.CertFile, s.tls.KeyFile)
		}
	} else {
		log.Info("API server listening on %s", s.server.Addr)
		listenAndServe = s.server.ListenAndServe
	}
	if err := listenAndServe(); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			log.Info("API server closed")
			return
		}
		log.Error("API server error: %v", err)
	}
}

// Stop stops the APIServer
func (s *APIServer) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
