// Package main implements the localtime web server, a JSON API over the
// display bundle renderer.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/codeGROOVE-dev/localtime/pkg/constants"
	"github.com/codeGROOVE-dev/localtime/pkg/localtime"
	"github.com/codeGROOVE-dev/localtime/pkg/tzconvert"
)

var (
	port    = flag.String("port", "", "Port for web server (or set PORT, default 8080)")
	tz      = flag.String("tz", "", "Zone treated as local (or set LOCALTIME_TZ)")
	verbose = flag.Bool("verbose", false, "Enable verbose logging")
	version = flag.Bool("version", false, "Show version")
)

func main() {
	flag.Parse()

	if *version {
		fmt.Printf("localtime Server %s\n", constants.Version)
		return
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if *port == "" {
		*port = os.Getenv("PORT")
	}
	if *port == "" {
		*port = "8080"
	}
	if *tz == "" {
		*tz = os.Getenv("LOCALTIME_TZ")
	}

	loc, err := tzconvert.Location(*tz)
	if err != nil {
		logger.Error("Invalid timezone", "tz", *tz, "error", err)
		os.Exit(1)
	}

	logger.Info("Server configuration",
		"port", *port,
		"verbose", *verbose,
		"local_zone", loc.String())

	limiter, err := newRateLimiter(constants.RateLimitPerMinute)
	if err != nil {
		logger.Error("Failed to build rate limiter", "error", err)
		os.Exit(1)
	}
	defer limiter.close()

	s := &server{
		presenter: localtime.NewWithLogger(logger, localtime.WithLocation(loc)),
		limiter:   limiter,
		logger:    logger,
	}

	srv := &http.Server{
		Addr:              ":" + *port,
		Handler:           s.handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		logger.Info("Server starting", "port", *port)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Shutdown failed", "error", err)
	}
	logger.Info("Server stopped")
}
