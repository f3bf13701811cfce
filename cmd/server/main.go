package main

import (
	"context"
	"flag"
	"fmt"
	"net/url"
	"os"
	"os/signal"

	"github.com/cbodonnell/spinwheel/pkg/api"
	"github.com/cbodonnell/spinwheel/pkg/feed"
	"github.com/cbodonnell/spinwheel/pkg/log"
	"github.com/cbodonnell/spinwheel/pkg/random"
	"github.com/cbodonnell/spinwheel/pkg/repositories"
	"github.com/cbodonnell/spinwheel/pkg/version"
)

func main() {
	port := flag.Int("port", 9090, "port to listen on")
	allowOrigin := flag.String("allow-origin", "*", "allowed CORS origin")
	logLevel := flag.String("log-level", "info", "Log level")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting server version %s", version.Get())
	ctx := context.Background()

	connStr := os.Getenv("SPINWHEEL_DATABASE_URL")
	if connStr == "" {
		connStr = "sqlite://spinwheel.db"
	}

	u, err := url.Parse(connStr)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse connection string: %v", err))
	}

	var repository repositories.Repository
	switch u.Scheme {
	case "sqlite":
		repository, err = repositories.NewSQLiteRepository(ctx, u.Host, "./migrations/sqlite")
		if err != nil {
			panic(fmt.Sprintf("Failed to create SQLite repository: %v", err))
		}
	case "postgresql":
		repository, err = repositories.NewPostgresRepository(ctx, u.String())
		if err != nil {
			panic(fmt.Sprintf("Failed to create Postgres repository: %v", err))
		}
	default:
		panic(fmt.Sprintf("Unknown database type %s", u.Scheme))
	}
	defer repository.Close(ctx)

	spinFeed := feed.NewFeed()

	apiServerOpts := api.NewAPIServerOptions{
		Port:        *port,
		AllowOrigin: *allowOrigin,
		Repository:  repository,
		Feed:        spinFeed,
		Rand:        random.NewTimeSource(),
	}
	tlsCertFile := os.Getenv("SPINWHEEL_API_TLS_CERT_FILE")
	tlsKeyFile := os.Getenv("SPINWHEEL_API_TLS_KEY_FILE")
	if tlsCertFile != "" && tlsKeyFile != "" {
		apiServerOpts.TLS = &api.TLSConfig{
			CertFile: tlsCertFile,
			KeyFile:  tlsKeyFile,
		}
	}
	server := api.NewAPIServer(apiServerOpts)
	go server.Start()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	<-interrupt
	if err := server.Stop(ctx); err != nil {
		log.Error("Failed to stop server: %v", err)
	}
}
