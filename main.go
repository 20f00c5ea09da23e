package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rook-computer/tiergen/internal/app"
	"github.com/rook-computer/tiergen/internal/assets"
	"github.com/rook-computer/tiergen/internal/config"
	"github.com/rook-computer/tiergen/internal/logging"
	"github.com/rook-computer/tiergen/internal/render"
)

const envStdioLog = "TIERGEN_STDIO_LOG"

func main() {
	os.Exit(run())
}

func run() int {
	debug := flag.Bool("debug", false, "enable debug logging to ./tiergen-debug.log")
	keepGoing := flag.Bool("keep-going", false, "keep rendering other identities after a failure")
	stdioLog := flag.String("stdio-log", "", "redirect stdout+stderr (including panics) to this file; also configurable via "+envStdioLog)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [config.toml]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	logPath := *stdioLog
	if logPath == "" {
		logPath = os.Getenv(envStdioLog)
	}
	if logPath != "" {
		if err := redirectStdIO(logPath); err != nil {
			fmt.Println("stdio log redirect error:", err)
		}
	}

	var logger logging.Logger = logging.NoopLogger{}
	if *debug {
		f, err := os.OpenFile("./tiergen-debug.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			defer f.Close()
			logger = logging.NewFileLogger(f)
			logger.Infof("main", "debug logging enabled")
		} else {
			fmt.Println("debug log open error:", err)
		}
	}

	fmt.Println("Generating images...")

	cfg, err := config.Load(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		return 2
	}
	logger.Infof("main", "config loaded: %d sinner(s), input=%s output=%s assets=%s",
		len(cfg.Sinners), cfg.InputFolder, cfg.OutputFolder, cfg.AssetFolder)

	fontTTF, err := assets.LoadFont(cfg.Font)
	if err != nil {
		fmt.Fprintln(os.Stderr, "font error:", err)
		return 2
	}
	compositor, err := render.NewCompositor(fontTTF, render.DefaultLayout)
	if err != nil {
		fmt.Fprintln(os.Stderr, "font error:", err)
		return 2
	}
	compositor.Logger = logger

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.New(cfg, compositor)
	a.Logger = logger
	a.Out = os.Stdout
	a.KeepGoing = *keepGoing

	_, err = a.Run(ctx)
	snap := a.Store.Snapshot()
	app.WriteSummary(os.Stdout, snap)
	if err != nil {
		// Render failures are already listed in the summary.
		if len(snap.Failures) == 0 {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		return 1
	}
	return 0
}

// writeRunHeader separates batches appended to the same stdio log.
func writeRunHeader(w io.Writer) {
	fmt.Fprintf(w, "--- tiergen %s: %s ---\n", time.Now().Format(time.RFC3339), strings.Join(os.Args[1:], " "))
}
