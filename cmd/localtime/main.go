// Package main implements the localtime CLI, which prints a friendly
// rendering of an instant.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"gopkg.in/yaml.v3"

	"github.com/codeGROOVE-dev/localtime/pkg/calendar"
	"github.com/codeGROOVE-dev/localtime/pkg/constants"
	"github.com/codeGROOVE-dev/localtime/pkg/localtime"
	"github.com/codeGROOVE-dev/localtime/pkg/timeline"
	"github.com/codeGROOVE-dev/localtime/pkg/tzconvert"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type config struct {
	at       string
	tz       string
	format   string
	utc      bool
	noYear   bool
	timeline bool
	verbose  bool
	version  bool
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	fs := flag.NewFlagSet("localtime", flag.ContinueOnError)
	fs.SetOutput(stderr)

	cfg := &config{}
	fs.StringVar(&cfg.at, "at", "", "Instant to render, RFC 3339 (default now)")
	fs.StringVar(&cfg.tz, "tz", "", "Zone treated as local: Local, UTC, UTC+1 or an IANA name (or set LOCALTIME_TZ)")
	fs.StringVar(&cfg.format, "format", "", "Output format: text, json or yaml (or set LOCALTIME_FORMAT)")
	fs.BoolVar(&cfg.utc, "utc", false, "Render in UTC instead of the local zone")
	fs.BoolVar(&cfg.noYear, "no-year", false, "Leave the year out of the date")
	fs.BoolVar(&cfg.timeline, "timeline", false, "Show the day-period layout after the result")
	fs.BoolVar(&cfg.verbose, "verbose", false, "Enable verbose logging")
	fs.BoolVar(&cfg.version, "version", false, "Show version")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	// Get settings from environment if not provided as flags
	if cfg.tz == "" {
		cfg.tz = os.Getenv("LOCALTIME_TZ")
	}
	if cfg.format == "" {
		cfg.format = os.Getenv("LOCALTIME_FORMAT")
	}
	if cfg.format == "" {
		cfg.format = "text"
	}

	return cfg, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "Usage: localtime [flags]\n%v\n", err)
		return 2
	}

	if cfg.version {
		fmt.Fprintf(stdout, "localtime CLI %s\n", constants.Version)
		return 0
	}

	// Configure logging
	level := slog.LevelError
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: level,
	}))

	instant := time.Now()
	if cfg.at != "" {
		if instant, err = calendar.ParseInstant(cfg.at); err != nil {
			logger.Error("Invalid instant", "at", cfg.at, "error", err)
			return 1
		}
	}

	loc, err := tzconvert.Location(cfg.tz)
	if err != nil {
		logger.Error("Invalid timezone", "tz", cfg.tz, "error", err)
		return 1
	}
	logger.Debug("Rendering instant",
		"instant", instant.Format(time.RFC3339),
		"local_zone", loc.String(),
		"utc", cfg.utc,
		"show_year", !cfg.noYear)

	presenter := localtime.NewWithLogger(logger, localtime.WithLocation(loc))
	display, err := presenter.Present(instant, localtime.InUTC(cfg.utc), localtime.ShowYear(!cfg.noYear))
	if err != nil {
		logger.Error("Rendering failed", "error", err)
		return 1
	}

	if err := writeDisplay(stdout, display, cfg.format); err != nil {
		logger.Error("Writing output failed", "format", cfg.format, "error", err)
		return 1
	}

	if cfg.timeline && strings.EqualFold(cfg.format, "text") {
		fmt.Fprintln(stdout)
		fmt.Fprint(stdout, timeline.Strip(display.Parts.Hour24))
	}
	return 0
}

func writeDisplay(w io.Writer, d *localtime.Display, format string) error {
	switch strings.ToLower(format) {
	case "text":
		_, err := io.WriteString(w, timeline.Render(d))
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
