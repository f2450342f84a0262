// Command vs is a terminal client for the VibeStage booking API.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vibestage/vibestage-client/internal/app"
	"github.com/vibestage/vibestage-client/internal/config"
	"github.com/vibestage/vibestage-client/internal/result"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func usage() {
	fmt.Fprintf(os.Stderr, `vs — VibeStage client
Usage:
  vs [-api URL] [-v] <cmd> [args]

Commands:
  version
  register      -name N -email E -password P [-role artist|promoter]
  login         -email E -password P                  (saves session)
  logout                                              (clears session)
  whoami                                              (prints stored identity)
  shows         [-genre G] [-location L] [-from D] [-to D] [-page N] [-limit N]
  show          -id N
  show-add      -title T -desc D -location L -date D [-genre G]   (promoter)
  show-edit     -id N [-title T] [-desc D] [-location L] [-date D] [-genre G] [-available true|false]
  show-rm       -id N                                 (promoter)
  apply         -event N -message M                   (artist)
  applications                                        (my applications)
  event-apps    -event N                              (applications for a show)
  accept        -id N
  reject        -id N
  withdraw      -id N
  dashboard     [-filter Todos|Rock|Jazz|Indie|Acústico|Urgente]
`)
	os.Exit(2)
}

// main parses global flags, wires the app and dispatches the subcommand.
func main() {
	apiURL := flag.String("api", "", "API base URL (overrides VIBESTAGE_API_URL)")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
	}
	cmd := flag.Arg(0)
	args := flag.Args()[1:]

	if cmd == "version" {
		fmt.Printf("vs %s (%s)\n", version, buildDate)
		return
	}

	cfg, err := config.Load(context.Background())
	if err != nil {
		fail(err)
	}
	if *apiURL != "" {
		cfg.APIURL = *apiURL
	}
	if *verbose {
		cfg.LogLevel = "debug"
	}

	logger := newLogger(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	a, err := app.New(cfg, logger)
	if err != nil {
		fail(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout+5*time.Second)
	defer cancel()

	switch cmd {
	case "register":
		cmdRegister(ctx, a, args)
	case "login":
		cmdLogin(ctx, a, args)
	case "logout":
		cmdLogout(a)
	case "whoami":
		cmdWhoami(a)
	case "shows":
		cmdShows(ctx, a, args)
	case "show":
		cmdShow(ctx, a, args)
	case "show-add":
		cmdShowAdd(ctx, a, args)
	case "show-edit":
		cmdShowEdit(ctx, a, args)
	case "show-rm":
		cmdShowRm(ctx, a, args)
	case "apply":
		cmdApply(ctx, a, args)
	case "applications":
		cmdApplications(ctx, a)
	case "event-apps":
		cmdEventApps(ctx, a, args)
	case "accept":
		cmdAccept(ctx, a, args)
	case "reject":
		cmdReject(ctx, a, args)
	case "withdraw":
		cmdWithdraw(ctx, a, args)
	case "dashboard":
		cmdDashboard(ctx, a, args)
	default:
		usage()
	}
}

// ---- helpers ----

func newLogger(level string) *zap.Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

// await consumes one operation's stream: Loading is noted on stderr, Success
// yields the payload, Failure exits with the reason.
func await[T any](s result.Stream[T]) T {
	for r := range s {
		switch r.State {
		case result.StateLoading:
			fmt.Fprintln(os.Stderr, "loading...")
		case result.StateSuccess:
			return r.Data
		case result.StateFailure:
			fail(fmt.Errorf("%s", r.Reason))
		}
	}
	// Unreachable while the producer honors its contract.
	fail(fmt.Errorf("operation ended without a result"))
	var zero T
	return zero
}
